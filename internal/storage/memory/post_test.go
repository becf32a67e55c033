package memory

import (
	"errors"
	"testing"

	"github.com/VitaminP8/blogql/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ListPosts(t *testing.T) {
	s := newTestStore()

	t.Run("Without query returns all posts", func(t *testing.T) {
		posts, err := s.ListPosts("")
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, "10", posts[0].ID)
		assert.Equal(t, "20", posts[1].ID)
		assert.Equal(t, "30", posts[2].ID)
	})

	t.Run("Match on body", func(t *testing.T) {
		posts, err := s.ListPosts("Post 1")
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "10", posts[0].ID)
		assert.Equal(t, "Post 1", posts[0].Body)
	})

	t.Run("Match on title", func(t *testing.T) {
		posts, err := s.ListPosts("thrid")
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "30", posts[0].ID)
	})

	t.Run("Query matching every post", func(t *testing.T) {
		posts, err := s.ListPosts("post")
		require.NoError(t, err)
		assert.Len(t, posts, 3)
	})

	t.Run("No match", func(t *testing.T) {
		posts, err := s.ListPosts("ZZZ")
		require.NoError(t, err)
		assert.Empty(t, posts)
	})
}

func TestStore_GetPostByID(t *testing.T) {
	s := newTestStore()

	p, err := s.GetPostByID("20")
	require.NoError(t, err)
	assert.Equal(t, "Second Post", p.Title)
	assert.True(t, p.Published)
	assert.Equal(t, "2", p.AuthorID)

	p, err = s.GetPostByID("missing")
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestStore_GetPostsByAuthor(t *testing.T) {
	s := newTestStore()

	t.Run("Posts of user 2 in store order", func(t *testing.T) {
		posts, err := s.GetPostsByAuthor("2")
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "20", posts[0].ID)
		assert.Equal(t, "30", posts[1].ID)
	})

	t.Run("User without posts", func(t *testing.T) {
		posts, err := s.GetPostsByAuthor("3")
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})
}
