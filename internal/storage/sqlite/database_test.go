package sqlite

import (
	"testing"

	"github.com/VitaminP8/blogql/internal/ident"
	"github.com/VitaminP8/blogql/internal/storage"
	"github.com/VitaminP8/blogql/models"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStorage создает хранилище на SQLite в памяти с демонстрационными данными
func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := Open(storage.SampleData(), ident.NewSequence("new-", 1))
	require.NoError(t, err, "Failed to open in-memory SQLite")
	t.Cleanup(func() {
		s.Close()
	})
	return s
}

func TestOpen(t *testing.T) {
	s := setupTestStorage(t)

	var count int
	require.NoError(t, s.db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, 3, count)

	require.NoError(t, s.db.Model(&models.Post{}).Count(&count).Error)
	assert.Equal(t, 3, count)

	require.NoError(t, s.db.Model(&models.Comment{}).Count(&count).Error)
	assert.Equal(t, 4, count)
}

func TestNewWithConnection(t *testing.T) {
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.DB().SetMaxOpenConns(1)
	db.LogMode(false)

	s, err := NewWithConnection(db, storage.Dataset{}, ident.UUID{})
	require.NoError(t, err)

	users, err := s.ListUsers("")
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestNewWithConnection_NilGenerator(t *testing.T) {
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.DB().SetMaxOpenConns(1)
	db.LogMode(false)

	s, err := NewWithConnection(db, storage.Dataset{}, nil)
	require.NoError(t, err)

	user, err := s.CreateUser("Bob", "bob@x.com", nil)
	require.NoError(t, err)

	_, err = uuid.Parse(user.ID)
	assert.NoError(t, err, "ожидался uuid, получено %q", user.ID)
}

func TestNewWithConnection_DuplicateSeed(t *testing.T) {
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.DB().SetMaxOpenConns(1)
	db.LogMode(false)

	data := storage.SampleData()
	data.Users = append(data.Users, storage.CloneUser(data.Users[0]))

	_, err = NewWithConnection(db, data, ident.UUID{})
	assert.Error(t, err)
}

func TestClose_NilDB(t *testing.T) {
	s := &Storage{}
	assert.NoError(t, s.Close())
}
