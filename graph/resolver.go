//go:generate go run github.com/99designs/gqlgen generate

package graph

import (
	"github.com/VitaminP8/blogql/internal/comment"
	"github.com/VitaminP8/blogql/internal/metrics"
	"github.com/VitaminP8/blogql/internal/post"
	"github.com/VitaminP8/blogql/internal/user"
)

// Resolver служит корневой точкой для всех резолверов.
// Хранилища внедряются снаружи, поэтому тесты могут подставить свои экземпляры.
type Resolver struct {
	UserStore    user.UserStorage
	PostStore    post.PostStorage
	CommentStore comment.CommentStorage
	Metrics      *metrics.Metrics // может быть nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
