package memory

import (
	"fmt"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/storage"
)

func (s *Store) ListUsers(query string) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := storage.FilterUsers(s.users, query)

	users := make([]*model.User, 0, len(matched))
	for _, u := range matched {
		users = append(users, storage.CloneUser(u))
	}
	return users, nil
}

func (s *Store) GetUserByID(id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return storage.CloneUser(u), nil
		}
	}

	return nil, fmt.Errorf("user %s: %w", id, storage.ErrNotFound)
}

func (s *Store) CreateUser(name, email string, age *int) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return nil, fmt.Errorf("user with email %s: %w", email, storage.ErrDuplicateEmail)
		}
	}

	user := &model.User{
		ID:    s.ids.NewID(),
		Name:  name,
		Email: email,
	}
	if age != nil {
		a := *age
		user.Age = &a
	}

	s.users = append(s.users, user)
	return storage.CloneUser(user), nil
}
