package post

import (
	"github.com/VitaminP8/blogql/graph/model"
)

type PostStorage interface {
	ListPosts(query string) ([]*model.Post, error)
	GetPostByID(id string) (*model.Post, error)
	GetPostsByAuthor(authorID string) ([]*model.Post, error)
}
