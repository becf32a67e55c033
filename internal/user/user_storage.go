package user

import (
	"github.com/VitaminP8/blogql/graph/model"
)

type UserStorage interface {
	ListUsers(query string) ([]*model.User, error)
	GetUserByID(id string) (*model.User, error)
	CreateUser(name, email string, age *int) (*model.User, error)
}
