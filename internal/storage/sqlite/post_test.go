package sqlite

import (
	"errors"
	"testing"

	"github.com/VitaminP8/blogql/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_ListPosts(t *testing.T) {
	s := setupTestStorage(t)

	posts, err := s.ListPosts("")
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "10", posts[0].ID)
	assert.False(t, posts[0].Published)
	assert.True(t, posts[1].Published)

	posts, err = s.ListPosts("Post 1")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "10", posts[0].ID)
}

func TestStorage_GetPostByID(t *testing.T) {
	s := setupTestStorage(t)

	p, err := s.GetPostByID("30")
	require.NoError(t, err)
	assert.Equal(t, "Thrid Post", p.Title)

	_, err = s.GetPostByID("31")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestStorage_GetPostsByAuthor(t *testing.T) {
	s := setupTestStorage(t)

	posts, err := s.GetPostsByAuthor("2")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "20", posts[0].ID)
	assert.Equal(t, "30", posts[1].ID)

	posts, err = s.GetPostsByAuthor("3")
	require.NoError(t, err)
	assert.Empty(t, posts)
}
