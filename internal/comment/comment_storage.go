package comment

import (
	"github.com/VitaminP8/blogql/graph/model"
)

type CommentStorage interface {
	ListComments() ([]*model.Comment, error)
	GetCommentsByPost(postID string) ([]*model.Comment, error)
	GetCommentsByAuthor(authorID string) ([]*model.Comment, error)
}
