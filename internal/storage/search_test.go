package storage

import (
	"testing"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/stretchr/testify/assert"
)

func TestContainsFold(t *testing.T) {
	cases := []struct {
		s, substr string
		want      bool
	}{
		{"Maria", "an", false},
		{"Maria", "AR", true},
		{"Ana", "an", true},
		{"Joao", "", true},
		{"Straße", "STRASSE", true},
		{"Post 1", "post 2", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ContainsFold(tc.s, tc.substr), "%q in %q", tc.substr, tc.s)
	}
}

func TestFilterUsers(t *testing.T) {
	data := SampleData()

	t.Run("Empty query returns everything in order", func(t *testing.T) {
		result := FilterUsers(data.Users, "")
		assert.Equal(t, data.Users, result)
	})

	t.Run("Case insensitive match on name", func(t *testing.T) {
		result := FilterUsers(data.Users, "A")

		var names []string
		for _, u := range result {
			names = append(names, u.Name)
		}
		assert.Equal(t, []string{"Joao", "Maria", "Ana"}, names)
	})

	t.Run("No match returns empty slice", func(t *testing.T) {
		result := FilterUsers(data.Users, "ZZZ")
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestFilterPosts(t *testing.T) {
	data := SampleData()

	t.Run("Match on body", func(t *testing.T) {
		result := FilterPosts(data.Posts, "Post 1")
		if assert.Len(t, result, 1) {
			assert.Equal(t, "10", result[0].ID)
		}
	})

	t.Run("Match on title", func(t *testing.T) {
		result := FilterPosts(data.Posts, "second")
		if assert.Len(t, result, 1) {
			assert.Equal(t, "20", result[0].ID)
		}
	})

	t.Run("Title or body", func(t *testing.T) {
		posts := []*model.Post{
			{ID: "a", Title: "golang", Body: "x"},
			{ID: "b", Title: "x", Body: "GoLang"},
			{ID: "c", Title: "x", Body: "x"},
		}
		result := FilterPosts(posts, "GOLANG")
		assert.Equal(t, []*model.Post{posts[0], posts[1]}, result)
	})
}

func TestCloneUser(t *testing.T) {
	age := 30
	u := &model.User{ID: "1", Name: "Bob", Email: "bob@x.com", Age: &age}

	c := CloneUser(u)
	*c.Age = 31
	c.Name = "Alice"

	assert.Equal(t, 30, *u.Age)
	assert.Equal(t, "Bob", u.Name)
}
