package storage

import (
	"errors"

	"github.com/VitaminP8/blogql/graph/model"
)

var (
	ErrDuplicateEmail = errors.New("email is already taken")
	ErrNotFound       = errors.New("record not found")
)

// Dataset - начальное содержимое хранилища, в порядке вставки
type Dataset struct {
	Users    []*model.User
	Posts    []*model.Post
	Comments []*model.Comment
}

// SampleData возвращает демонстрационные данные, которыми сервер заполняется при старте.
// Каждый вызов возвращает новые экземпляры записей.
func SampleData() Dataset {
	return Dataset{
		Users: []*model.User{
			{ID: "1", Name: "Joao", Email: "joao.com"},
			{ID: "2", Name: "Maria", Email: "maria.com"},
			{ID: "3", Name: "Ana", Email: "ana.com"},
		},
		Posts: []*model.Post{
			{ID: "10", Title: "First Post", Body: "Post 1", Published: false, AuthorID: "1"},
			{ID: "20", Title: "Second Post", Body: "Post 2", Published: true, AuthorID: "2"},
			{ID: "30", Title: "Thrid Post", Body: "Post 3", Published: false, AuthorID: "2"},
		},
		Comments: []*model.Comment{
			{ID: "100", Text: "Comment 1", AuthorID: "1", PostID: "30"},
			{ID: "200", Text: "Comment 2", AuthorID: "1", PostID: "10"},
			{ID: "300", Text: "Comment 3", AuthorID: "2", PostID: "20"},
			{ID: "400", Text: "Comment 4", AuthorID: "2", PostID: "10"},
		},
	}
}

func CloneUser(u *model.User) *model.User {
	c := *u
	if u.Age != nil {
		age := *u.Age
		c.Age = &age
	}
	return &c
}

func ClonePost(p *model.Post) *model.Post {
	c := *p
	return &c
}

func CloneComment(cm *model.Comment) *model.Comment {
	c := *cm
	return &c
}
