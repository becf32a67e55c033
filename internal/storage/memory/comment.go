package memory

import (
	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/storage"
)

func (s *Store) ListComments() ([]*model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := make([]*model.Comment, 0, len(s.comments))
	for _, c := range s.comments {
		comments = append(comments, storage.CloneComment(c))
	}
	return comments, nil
}

func (s *Store) GetCommentsByPost(postID string) ([]*model.Comment, error) {
	return s.filterComments(func(c *model.Comment) bool {
		return c.PostID == postID
	}), nil
}

func (s *Store) GetCommentsByAuthor(authorID string) ([]*model.Comment, error) {
	return s.filterComments(func(c *model.Comment) bool {
		return c.AuthorID == authorID
	}), nil
}

func (s *Store) filterComments(match func(*model.Comment) bool) []*model.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := make([]*model.Comment, 0)
	for _, c := range s.comments {
		if match(c) {
			comments = append(comments, storage.CloneComment(c))
		}
	}
	return comments
}
