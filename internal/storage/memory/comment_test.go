package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ListComments(t *testing.T) {
	s := newTestStore()

	comments, err := s.ListComments()
	require.NoError(t, err)
	require.Len(t, comments, 4)

	var ids []string
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"100", "200", "300", "400"}, ids)
}

func TestStore_GetCommentsByPost(t *testing.T) {
	s := newTestStore()

	t.Run("Post with two comments", func(t *testing.T) {
		comments, err := s.GetCommentsByPost("10")
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "200", comments[0].ID)
		assert.Equal(t, "400", comments[1].ID)
	})

	t.Run("Unknown post yields empty", func(t *testing.T) {
		comments, err := s.GetCommentsByPost("999")
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}

func TestStore_GetCommentsByAuthor(t *testing.T) {
	s := newTestStore()

	comments, err := s.GetCommentsByAuthor("1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "100", comments[0].ID)
	assert.Equal(t, "200", comments[1].ID)

	comments, err = s.GetCommentsByAuthor("3")
	require.NoError(t, err)
	assert.Empty(t, comments)
}
