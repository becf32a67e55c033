package memory

import (
	"fmt"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/storage"
)

func (s *Store) ListPosts(query string) ([]*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := storage.FilterPosts(s.posts, query)

	posts := make([]*model.Post, 0, len(matched))
	for _, p := range matched {
		posts = append(posts, storage.ClonePost(p))
	}
	return posts, nil
}

func (s *Store) GetPostByID(id string) (*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.ID == id {
			return storage.ClonePost(p), nil
		}
	}

	return nil, fmt.Errorf("post %s: %w", id, storage.ErrNotFound)
}

func (s *Store) GetPostsByAuthor(authorID string) ([]*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]*model.Post, 0)
	for _, p := range s.posts {
		if p.AuthorID == authorID {
			posts = append(posts, storage.ClonePost(p))
		}
	}
	return posts, nil
}
