package memory

import (
	"errors"
	"sync"
	"testing"

	"github.com/VitaminP8/blogql/internal/ident"
	"github.com/VitaminP8/blogql/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore(storage.SampleData(), ident.NewSequence("new-", 1))
}

func userNames(t *testing.T, s *Store, query string) []string {
	t.Helper()

	users, err := s.ListUsers(query)
	require.NoError(t, err)

	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Name)
	}
	return names
}

func TestStore_ListUsers(t *testing.T) {
	s := newTestStore()

	t.Run("Without query returns all users in insertion order", func(t *testing.T) {
		users, err := s.ListUsers("")
		require.NoError(t, err)
		require.Len(t, users, 3)
		assert.Equal(t, "1", users[0].ID)
		assert.Equal(t, "2", users[1].ID)
		assert.Equal(t, "3", users[2].ID)
	})

	t.Run("Case insensitive substring of name", func(t *testing.T) {
		assert.Equal(t, []string{"Ana"}, userNames(t, s, "an"))
		assert.Equal(t, []string{"Joao", "Maria", "Ana"}, userNames(t, s, "A"))
		assert.Equal(t, []string{"Maria"}, userNames(t, s, "MAR"))
	})

	t.Run("No match", func(t *testing.T) {
		assert.Empty(t, userNames(t, s, "ZZZ"))
	})

	t.Run("Repeated calls return identical results", func(t *testing.T) {
		first, err := s.ListUsers("a")
		require.NoError(t, err)
		second, err := s.ListUsers("a")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Returned records are copies", func(t *testing.T) {
		users, err := s.ListUsers("")
		require.NoError(t, err)
		users[0].ID = "mutated"

		u, err := s.GetUserByID("1")
		require.NoError(t, err)
		assert.Equal(t, "Joao", u.Name)
	})
}

func TestStore_GetUserByID(t *testing.T) {
	s := newTestStore()

	t.Run("Existing user", func(t *testing.T) {
		u, err := s.GetUserByID("2")
		require.NoError(t, err)
		assert.Equal(t, "Maria", u.Name)
		assert.Equal(t, "maria.com", u.Email)
	})

	t.Run("Unknown id", func(t *testing.T) {
		u, err := s.GetUserByID("42")
		assert.Nil(t, u)
		assert.True(t, errors.Is(err, storage.ErrNotFound))
	})
}

func TestStore_CreateUser(t *testing.T) {
	t.Run("Successful creation appends at the end", func(t *testing.T) {
		s := newTestStore()
		age := 30

		user, err := s.CreateUser("Bob", "bob@x.com", &age)
		require.NoError(t, err)
		assert.Equal(t, "new-1", user.ID)
		assert.Equal(t, "Bob", user.Name)
		assert.Equal(t, "bob@x.com", user.Email)
		require.NotNil(t, user.Age)
		assert.Equal(t, 30, *user.Age)

		users, err := s.ListUsers("")
		require.NoError(t, err)
		require.Len(t, users, 4)
		assert.Equal(t, user, users[3])
	})

	t.Run("Age is optional", func(t *testing.T) {
		s := newTestStore()

		user, err := s.CreateUser("Bob", "bob@x.com", nil)
		require.NoError(t, err)
		assert.Nil(t, user.Age)
	})

	t.Run("Duplicate email leaves store unchanged", func(t *testing.T) {
		s := newTestStore()
		age := 30

		user, err := s.CreateUser("Bob", "joao.com", &age)
		assert.Nil(t, user)
		assert.True(t, errors.Is(err, storage.ErrDuplicateEmail))

		users, err := s.ListUsers("")
		require.NoError(t, err)
		assert.Len(t, users, 3)
	})

	t.Run("Email comparison is case sensitive", func(t *testing.T) {
		s := newTestStore()

		_, err := s.CreateUser("Bob", "JOAO.com", nil)
		assert.NoError(t, err)
	})

	t.Run("Caller cannot change stored age through the argument", func(t *testing.T) {
		s := newTestStore()
		age := 20

		user, err := s.CreateUser("Bob", "bob@x.com", &age)
		require.NoError(t, err)
		age = 99

		stored, err := s.GetUserByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, 20, *stored.Age)
	})
}

func TestNewStore_NilGenerator(t *testing.T) {
	s := NewStore(storage.Dataset{}, nil)

	user, err := s.CreateUser("Bob", "bob@x.com", nil)
	require.NoError(t, err)

	_, err = uuid.Parse(user.ID)
	assert.NoError(t, err, "ожидался uuid, получено %q", user.ID)
}

func TestStore_CreateUser_Concurrent(t *testing.T) {
	s := newTestStore()

	const workers = 20

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// все горутины пытаются занять один и тот же email
			_, err := s.CreateUser("Racer", "race@x.com", nil)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	created := 0
	for err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.True(t, errors.Is(err, storage.ErrDuplicateEmail))
	}
	assert.Equal(t, 1, created)

	users, err := s.ListUsers("")
	require.NoError(t, err)
	assert.Len(t, users, 4)

	ids := make(map[string]bool)
	emails := make(map[string]bool)
	for _, u := range users {
		assert.False(t, ids[u.ID])
		assert.False(t, emails[u.Email])
		ids[u.ID] = true
		emails[u.Email] = true
	}
}
