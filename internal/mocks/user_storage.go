package mocks

import (
	"strconv"
	"sync"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/storage"
)

// MockUserStorage реализует интерфейс user.UserStorage для тестирования
type MockUserStorage struct {
	mu     sync.Mutex
	users  []*model.User
	nextID int

	// Err, если задана, возвращается из всех методов
	Err error
	// Calls считает вызовы по имени метода
	Calls map[string]int
}

// NewMockUserStorage создает мок с заданными пользователями.
// Новые пользователи получают id "u1", "u2", ...
func NewMockUserStorage(users ...*model.User) *MockUserStorage {
	m := &MockUserStorage{
		nextID: 1,
		Calls:  make(map[string]int),
	}
	for _, u := range users {
		m.users = append(m.users, storage.CloneUser(u))
	}
	return m
}

func (m *MockUserStorage) ListUsers(query string) ([]*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls["ListUsers"]++
	if m.Err != nil {
		return nil, m.Err
	}
	return storage.FilterUsers(m.users, query), nil
}

func (m *MockUserStorage) GetUserByID(id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls["GetUserByID"]++
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *MockUserStorage) CreateUser(name, email string, age *int) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls["CreateUser"]++
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.users {
		if u.Email == email {
			return nil, storage.ErrDuplicateEmail
		}
	}

	user := &model.User{
		ID:    "u" + strconv.Itoa(m.nextID),
		Name:  name,
		Email: email,
		Age:   age,
	}
	m.nextID++
	m.users = append(m.users, user)

	return user, nil
}

// Users возвращает текущее содержимое мока
func (m *MockUserStorage) Users() []*model.User {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*model.User, len(m.users))
	copy(out, m.users)
	return out
}
