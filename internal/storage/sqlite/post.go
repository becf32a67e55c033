package sqlite

import (
	"fmt"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/storage"
	"github.com/VitaminP8/blogql/models"
	"github.com/jinzhu/gorm"
)

func (s *Storage) ListPosts(query string) ([]*model.Post, error) {
	var rows []models.Post
	err := s.db.Order("seq").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("could not list posts: %w", err)
	}

	return storage.FilterPosts(postsFromRows(rows), query), nil
}

func (s *Storage) GetPostByID(id string) (*model.Post, error) {
	var row models.Post
	err := s.db.Where("record_id = ?", id).First(&row).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("post %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get post by id: %w", err)
	}

	return fromPostRow(&row), nil
}

func (s *Storage) GetPostsByAuthor(authorID string) ([]*model.Post, error) {
	var rows []models.Post
	err := s.db.Where("author_id = ?", authorID).Order("seq").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("could not get posts by author: %w", err)
	}

	return postsFromRows(rows), nil
}

func postsFromRows(rows []models.Post) []*model.Post {
	posts := make([]*model.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, fromPostRow(&rows[i]))
	}
	return posts
}
