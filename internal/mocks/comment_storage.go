package mocks

import (
	"sync"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/storage"
)

// MockCommentStorage реализует интерфейс comment.CommentStorage для тестирования
type MockCommentStorage struct {
	mu       sync.Mutex
	comments []*model.Comment

	Err error
}

func NewMockCommentStorage(comments ...*model.Comment) *MockCommentStorage {
	m := &MockCommentStorage{}
	for _, c := range comments {
		m.comments = append(m.comments, storage.CloneComment(c))
	}
	return m
}

func (m *MockCommentStorage) ListComments() ([]*model.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*model.Comment, len(m.comments))
	copy(out, m.comments)
	return out, nil
}

func (m *MockCommentStorage) GetCommentsByPost(postID string) ([]*model.Comment, error) {
	return m.filter(func(c *model.Comment) bool { return c.PostID == postID })
}

func (m *MockCommentStorage) GetCommentsByAuthor(authorID string) ([]*model.Comment, error) {
	return m.filter(func(c *model.Comment) bool { return c.AuthorID == authorID })
}

func (m *MockCommentStorage) filter(keep func(*model.Comment) bool) ([]*model.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	var result []*model.Comment
	for _, c := range m.comments {
		if keep(c) {
			result = append(result, c)
		}
	}
	return result, nil
}
