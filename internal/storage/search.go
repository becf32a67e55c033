package storage

import (
	"strings"

	"github.com/VitaminP8/blogql/graph/model"
	"golang.org/x/text/cases"
)

// ContainsFold сообщает, содержит ли s подстроку substr без учета регистра.
// Обе строки приводятся через Unicode case folding.
func ContainsFold(s, substr string) bool {
	// cases.Caser хранит состояние, поэтому создаем новый на каждый вызов
	return strings.Contains(cases.Fold().String(s), cases.Fold().String(substr))
}

// FilterUsers оставляет пользователей, чье имя содержит query. Пустой query - без фильтра.
func FilterUsers(users []*model.User, query string) []*model.User {
	if query == "" {
		return users
	}

	result := make([]*model.User, 0, len(users))
	for _, u := range users {
		if ContainsFold(u.Name, query) {
			result = append(result, u)
		}
	}
	return result
}

// FilterPosts оставляет посты, у которых title или body содержит query
func FilterPosts(posts []*model.Post, query string) []*model.Post {
	if query == "" {
		return posts
	}

	result := make([]*model.Post, 0, len(posts))
	for _, p := range posts {
		if ContainsFold(p.Title, query) || ContainsFold(p.Body, query) {
			result = append(result, p)
		}
	}
	return result
}
