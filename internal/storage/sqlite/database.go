package sqlite

import (
	"fmt"
	"sync"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/comment"
	"github.com/VitaminP8/blogql/internal/ident"
	"github.com/VitaminP8/blogql/internal/post"
	"github.com/VitaminP8/blogql/internal/storage"
	"github.com/VitaminP8/blogql/internal/user"
	"github.com/VitaminP8/blogql/models"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var (
	_ user.UserStorage       = (*Storage)(nil)
	_ post.PostStorage       = (*Storage)(nil)
	_ comment.CommentStorage = (*Storage)(nil)
)

// Storage - хранилище записей поверх gorm и SQLite в памяти процесса.
// Данные живут, пока открыто соединение; на диск ничего не пишется.
type Storage struct {
	mu  sync.Mutex // сериализует проверку email и вставку в CreateUser
	db  *gorm.DB
	ids ident.Generator
}

// Open создает базу ":memory:", мигрирует схему и загружает data
func Open(data storage.Dataset, ids ident.Generator) (*Storage, error) {
	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// у каждого соединения с ":memory:" своя база, поэтому соединение одно
	db.DB().SetMaxOpenConns(1)
	db.LogMode(false)

	s, err := NewWithConnection(db, data, ids)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewWithConnection использует готовое соединение (для тестирования)
func NewWithConnection(db *gorm.DB, data storage.Dataset, ids ident.Generator) (*Storage, error) {
	err := db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if ids == nil {
		ids = ident.UUID{}
	}

	s := &Storage{db: db, ids: ids}
	if err := s.seed(data); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Storage) seed(data storage.Dataset) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", tx.Error)
	}

	for _, u := range data.Users {
		if err := tx.Create(toUserRow(u)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to seed user %s: %w", u.ID, err)
		}
	}
	for _, p := range data.Posts {
		if err := tx.Create(toPostRow(p)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to seed post %s: %w", p.ID, err)
		}
	}
	for _, c := range data.Comments {
		if err := tx.Create(toCommentRow(c)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to seed comment %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

// Close закрывает соединение; содержимое базы при этом теряется
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	if err != nil {
		return fmt.Errorf("failed to close the database connection: %v", err)
	}
	return nil
}

func toUserRow(u *model.User) *models.User {
	row := &models.User{
		RecordID: u.ID,
		Name:     u.Name,
		Email:    u.Email,
	}
	if u.Age != nil {
		age := *u.Age
		row.Age = &age
	}
	return row
}

func fromUserRow(row *models.User) *model.User {
	return &model.User{
		ID:    row.RecordID,
		Name:  row.Name,
		Email: row.Email,
		Age:   row.Age,
	}
}

func toPostRow(p *model.Post) *models.Post {
	return &models.Post{
		RecordID:  p.ID,
		Title:     p.Title,
		Body:      p.Body,
		Published: p.Published,
		AuthorID:  p.AuthorID,
	}
}

func fromPostRow(row *models.Post) *model.Post {
	return &model.Post{
		ID:        row.RecordID,
		Title:     row.Title,
		Body:      row.Body,
		Published: row.Published,
		AuthorID:  row.AuthorID,
	}
}

func toCommentRow(c *model.Comment) *models.Comment {
	return &models.Comment{
		RecordID: c.ID,
		Text:     c.Text,
		AuthorID: c.AuthorID,
		PostID:   c.PostID,
	}
}

func fromCommentRow(row *models.Comment) *model.Comment {
	return &model.Comment{
		ID:       row.RecordID,
		Text:     row.Text,
		AuthorID: row.AuthorID,
		PostID:   row.PostID,
	}
}
