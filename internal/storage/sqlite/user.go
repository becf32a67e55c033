package sqlite

import (
	"fmt"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/storage"
	"github.com/VitaminP8/blogql/models"
	"github.com/jinzhu/gorm"
)

func (s *Storage) ListUsers(query string) ([]*model.User, error) {
	var rows []models.User
	err := s.db.Order("seq").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}

	users := make([]*model.User, 0, len(rows))
	for i := range rows {
		users = append(users, fromUserRow(&rows[i]))
	}
	return storage.FilterUsers(users, query), nil
}

func (s *Storage) GetUserByID(id string) (*model.User, error) {
	var row models.User
	err := s.db.Where("record_id = ?", id).First(&row).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("user %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get user by id: %w", err)
	}

	return fromUserRow(&row), nil
}

func (s *Storage) CreateUser(name, email string, age *int) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", tx.Error)
	}

	// проверка - существует ли пользователь с таким email
	var existing models.User
	err := tx.Where("email = ?", email).First(&existing).Error
	if err == nil {
		tx.Rollback()
		return nil, fmt.Errorf("user with email %s: %w", email, storage.ErrDuplicateEmail)
	}
	if !gorm.IsRecordNotFoundError(err) {
		tx.Rollback()
		return nil, fmt.Errorf("could not check email: %w", err)
	}

	row := toUserRow(&model.User{
		ID:    s.ids.NewID(),
		Name:  name,
		Email: email,
		Age:   age,
	})

	err = tx.Create(row).Error
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	err = tx.Commit().Error
	if err != nil {
		return nil, fmt.Errorf("failed to commit user: %w", err)
	}

	return fromUserRow(row), nil
}
