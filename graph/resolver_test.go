package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/metrics"
	"github.com/VitaminP8/blogql/internal/mocks"
	"github.com/VitaminP8/blogql/internal/storage"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

type mockStores struct {
	users    *mocks.MockUserStorage
	posts    *mocks.MockPostStorage
	comments *mocks.MockCommentStorage
}

func newMockResolver() (*Resolver, mockStores) {
	data := storage.SampleData()
	stores := mockStores{
		users:    mocks.NewMockUserStorage(data.Users...),
		posts:    mocks.NewMockPostStorage(data.Posts...),
		comments: mocks.NewMockCommentStorage(data.Comments...),
	}
	return &Resolver{
		UserStore:    stores.users,
		PostStore:    stores.posts,
		CommentStore: stores.comments,
	}, stores
}

func errorCode(t *testing.T, err error) string {
	t.Helper()

	var gqlErr *gqlerror.Error
	require.True(t, errors.As(err, &gqlErr), "expected *gqlerror.Error, got %T", err)
	code, _ := gqlErr.Extensions["code"].(string)
	return code
}

func userIDs(users []*model.User) []string {
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

func postIDs(posts []*model.Post) []string {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

func commentIDs(comments []*model.Comment) []string {
	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestQueryResolver_Users(t *testing.T) {
	resolver, _ := newMockResolver()
	ctx := context.Background()

	t.Run("Without query returns all users in order", func(t *testing.T) {
		users, err := resolver.Query().Users(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}, userIDs(users))
	})

	t.Run("Case-insensitive substring of name", func(t *testing.T) {
		q := "AN"
		users, err := resolver.Query().Users(ctx, &q)
		require.NoError(t, err)
		assert.Equal(t, []string{"3"}, userIDs(users))
	})

	t.Run("No match returns empty list", func(t *testing.T) {
		q := "ZZZ"
		users, err := resolver.Query().Users(ctx, &q)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("Storage failure is internal error", func(t *testing.T) {
		broken, stores := newMockResolver()
		stores.users.Err = errors.New("disk on fire")

		users, err := broken.Query().Users(ctx, nil)
		assert.Nil(t, users)
		assert.Equal(t, CodeInternal, errorCode(t, err))
		assert.NotContains(t, err.Error(), "disk on fire")
	})
}

func TestQueryResolver_Posts(t *testing.T) {
	resolver, _ := newMockResolver()
	ctx := context.Background()

	t.Run("Match by body", func(t *testing.T) {
		q := "post 1"
		posts, err := resolver.Query().Posts(ctx, &q)
		require.NoError(t, err)
		assert.Equal(t, []string{"10"}, postIDs(posts))
	})

	t.Run("Match by title", func(t *testing.T) {
		q := "thrid"
		posts, err := resolver.Query().Posts(ctx, &q)
		require.NoError(t, err)
		assert.Equal(t, []string{"30"}, postIDs(posts))
	})

	t.Run("Empty query returns everything", func(t *testing.T) {
		q := ""
		posts, err := resolver.Query().Posts(ctx, &q)
		require.NoError(t, err)
		assert.Equal(t, []string{"10", "20", "30"}, postIDs(posts))
	})
}

func TestQueryResolver_Comments(t *testing.T) {
	resolver, stores := newMockResolver()

	comments, err := resolver.Query().Comments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"100", "200", "300", "400"}, commentIDs(comments))

	stores.comments.Err = errors.New("boom")
	_, err = resolver.Query().Comments(context.Background())
	assert.Equal(t, CodeInternal, errorCode(t, err))
}

func TestMutationResolver_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful user creation", func(t *testing.T) {
		resolver, stores := newMockResolver()
		resolver.Metrics = metrics.New()
		age := 30

		user, err := resolver.Mutation().CreateUser(ctx, "Bob", "bob@x.com", &age)
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "Bob", user.Name)
		assert.Equal(t, "bob@x.com", user.Email)
		require.NotNil(t, user.Age)
		assert.Equal(t, 30, *user.Age)

		all := stores.users.Users()
		require.Len(t, all, 4)
		assert.Equal(t, user, all[3])
		assert.Equal(t, float64(1), testutil.ToFloat64(resolver.Metrics.UsersCreatedTotal))
	})

	t.Run("Duplicate email", func(t *testing.T) {
		resolver, stores := newMockResolver()
		resolver.Metrics = metrics.New()

		user, err := resolver.Mutation().CreateUser(ctx, "Other", "joao.com", nil)
		assert.Nil(t, user)
		assert.Equal(t, CodeDuplicateEmail, errorCode(t, err))
		assert.Contains(t, err.Error(), "Email is already taken")

		assert.Len(t, stores.users.Users(), 3)
		assert.Equal(t, float64(0), testutil.ToFloat64(resolver.Metrics.UsersCreatedTotal))
	})

	t.Run("Email comparison is exact", func(t *testing.T) {
		resolver, _ := newMockResolver()

		user, err := resolver.Mutation().CreateUser(ctx, "Joao", "JOAO.com", nil)
		require.NoError(t, err)
		assert.Equal(t, "JOAO.com", user.Email)
	})

	t.Run("Storage failure", func(t *testing.T) {
		resolver, stores := newMockResolver()
		stores.users.Err = errors.New("boom")

		_, err := resolver.Mutation().CreateUser(ctx, "Bob", "bob@x.com", nil)
		assert.Equal(t, CodeInternal, errorCode(t, err))
	})
}

func TestUserResolver(t *testing.T) {
	resolver, _ := newMockResolver()
	ctx := context.Background()
	maria := &model.User{ID: "2", Name: "Maria", Email: "maria.com"}

	posts, err := resolver.User().Posts(ctx, maria)
	require.NoError(t, err)
	assert.Equal(t, []string{"20", "30"}, postIDs(posts))

	comments, err := resolver.User().Comments(ctx, maria)
	require.NoError(t, err)
	assert.Equal(t, []string{"300", "400"}, commentIDs(comments))

	ana := &model.User{ID: "3"}
	posts, err = resolver.User().Posts(ctx, ana)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostResolver(t *testing.T) {
	resolver, _ := newMockResolver()
	ctx := context.Background()

	t.Run("Author is looked up by id", func(t *testing.T) {
		post := &model.Post{ID: "20", AuthorID: "2"}

		author, err := resolver.Post().Author(ctx, post)
		require.NoError(t, err)
		assert.Equal(t, "Maria", author.Name)
		assert.Equal(t, "2", post.AuthorID)
	})

	t.Run("Comments of post", func(t *testing.T) {
		comments, err := resolver.Post().Comments(ctx, &model.Post{ID: "10"})
		require.NoError(t, err)
		assert.Equal(t, []string{"200", "400"}, commentIDs(comments))
	})

	t.Run("Dangling author", func(t *testing.T) {
		author, err := resolver.Post().Author(ctx, &model.Post{ID: "99", AuthorID: "404"})
		assert.Nil(t, author)
		assert.Equal(t, CodeRelationshipNotFound, errorCode(t, err))
		assert.Contains(t, err.Error(), "Post 99")
	})
}

func TestCommentResolver(t *testing.T) {
	resolver, stores := newMockResolver()
	ctx := context.Background()
	comment := &model.Comment{ID: "100", AuthorID: "1", PostID: "30"}

	author, err := resolver.Comment().Author(ctx, comment)
	require.NoError(t, err)
	assert.Equal(t, "1", author.ID)

	post, err := resolver.Comment().Post(ctx, comment)
	require.NoError(t, err)
	assert.Equal(t, "30", post.ID)

	t.Run("Dangling post", func(t *testing.T) {
		_, err := resolver.Comment().Post(ctx, &model.Comment{ID: "1", PostID: "missing"})
		assert.Equal(t, CodeRelationshipNotFound, errorCode(t, err))
	})

	t.Run("Storage failure is not a dangling key", func(t *testing.T) {
		stores.posts.Err = errors.New("boom")
		_, err := resolver.Comment().Post(ctx, comment)
		assert.Equal(t, CodeInternal, errorCode(t, err))
	})
}
