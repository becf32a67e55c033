package mocks

import (
	"sync"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/storage"
)

// MockPostStorage реализует интерфейс post.PostStorage для тестирования
type MockPostStorage struct {
	mu    sync.Mutex
	posts []*model.Post

	Err error
}

func NewMockPostStorage(posts ...*model.Post) *MockPostStorage {
	m := &MockPostStorage{}
	for _, p := range posts {
		m.posts = append(m.posts, storage.ClonePost(p))
	}
	return m
}

func (m *MockPostStorage) ListPosts(query string) ([]*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	return storage.FilterPosts(m.posts, query), nil
}

func (m *MockPostStorage) GetPostByID(id string) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	for _, p := range m.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *MockPostStorage) GetPostsByAuthor(authorID string) ([]*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	var result []*model.Post
	for _, p := range m.posts {
		if p.AuthorID == authorID {
			result = append(result, p)
		}
	}
	return result, nil
}
