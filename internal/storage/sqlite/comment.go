package sqlite

import (
	"fmt"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/models"
)

func (s *Storage) ListComments() ([]*model.Comment, error) {
	var rows []models.Comment
	err := s.db.Order("seq").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("could not list comments: %w", err)
	}

	return commentsFromRows(rows), nil
}

func (s *Storage) GetCommentsByPost(postID string) ([]*model.Comment, error) {
	var rows []models.Comment
	err := s.db.Where("post_id = ?", postID).Order("seq").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("could not get comments by post: %w", err)
	}

	return commentsFromRows(rows), nil
}

func (s *Storage) GetCommentsByAuthor(authorID string) ([]*model.Comment, error) {
	var rows []models.Comment
	err := s.db.Where("author_id = ?", authorID).Order("seq").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("could not get comments by author: %w", err)
	}

	return commentsFromRows(rows), nil
}

func commentsFromRows(rows []models.Comment) []*model.Comment {
	comments := make([]*model.Comment, 0, len(rows))
	for i := range rows {
		comments = append(comments, fromCommentRow(&rows[i]))
	}
	return comments
}
