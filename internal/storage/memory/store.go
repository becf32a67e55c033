package memory

import (
	"sync"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/comment"
	"github.com/VitaminP8/blogql/internal/ident"
	"github.com/VitaminP8/blogql/internal/post"
	"github.com/VitaminP8/blogql/internal/storage"
	"github.com/VitaminP8/blogql/internal/user"
)

var (
	_ user.UserStorage       = (*Store)(nil)
	_ post.PostStorage       = (*Store)(nil)
	_ comment.CommentStorage = (*Store)(nil)
)

// Store хранит пользователей, посты и комментарии в памяти процесса.
// Один RWMutex на все три последовательности: чтения идут параллельно,
// CreateUser держит блокировку на запись на время проверки и добавления.
type Store struct {
	mu       sync.RWMutex
	users    []*model.User
	posts    []*model.Post
	comments []*model.Comment
	ids      ident.Generator
}

// NewStore копирует записи из data, порядок вставки сохраняется.
// Без генератора идентификаторов используется ident.UUID.
func NewStore(data storage.Dataset, ids ident.Generator) *Store {
	if ids == nil {
		ids = ident.UUID{}
	}

	s := &Store{
		users:    make([]*model.User, 0, len(data.Users)),
		posts:    make([]*model.Post, 0, len(data.Posts)),
		comments: make([]*model.Comment, 0, len(data.Comments)),
		ids:      ids,
	}

	for _, u := range data.Users {
		s.users = append(s.users, storage.CloneUser(u))
	}
	for _, p := range data.Posts {
		s.posts = append(s.posts, storage.ClonePost(p))
	}
	for _, c := range data.Comments {
		s.comments = append(s.comments, storage.CloneComment(c))
	}

	return s
}
