package sqlite

import (
	"testing"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(comments []*model.Comment) []string {
	result := make([]string, 0, len(comments))
	for _, c := range comments {
		result = append(result, c.ID)
	}
	return result
}

func TestStorage_Comments(t *testing.T) {
	s := setupTestStorage(t)

	t.Run("All comments", func(t *testing.T) {
		comments, err := s.ListComments()
		require.NoError(t, err)
		assert.Equal(t, []string{"100", "200", "300", "400"}, ids(comments))
	})

	t.Run("By post", func(t *testing.T) {
		comments, err := s.GetCommentsByPost("10")
		require.NoError(t, err)
		assert.Equal(t, []string{"200", "400"}, ids(comments))
	})

	t.Run("By author", func(t *testing.T) {
		comments, err := s.GetCommentsByAuthor("2")
		require.NoError(t, err)
		assert.Equal(t, []string{"300", "400"}, ids(comments))
	})

	t.Run("Unknown foreign key", func(t *testing.T) {
		comments, err := s.GetCommentsByPost("missing")
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}
