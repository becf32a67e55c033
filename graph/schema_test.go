package graph

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/99designs/gqlgen/client"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/VitaminP8/blogql/graph/generated"
	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/ident"
	"github.com/VitaminP8/blogql/internal/mocks"
	"github.com/VitaminP8/blogql/internal/storage"
	"github.com/VitaminP8/blogql/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, resolver *Resolver) *client.Client {
	t.Helper()

	srv := handler.New(generated.NewExecutableSchema(generated.Config{Resolvers: resolver}))
	srv.AddTransport(transport.POST{})
	return client.New(srv)
}

func newMemoryClient(t *testing.T) (*client.Client, *memory.Store) {
	t.Helper()

	store := memory.NewStore(storage.SampleData(), ident.NewSequence("new-", 1))
	return newClient(t, &Resolver{
		UserStore:    store,
		PostStore:    store,
		CommentStore: store,
	}), store
}

type responseError struct {
	Message    string
	Path       []interface{}
	Extensions map[string]interface{}
}

func rawErrors(t *testing.T, c *client.Client, query string, options ...client.Option) (interface{}, []responseError) {
	t.Helper()

	resp, err := c.RawPost(query, options...)
	require.NoError(t, err)

	var errs []responseError
	if len(resp.Errors) > 0 {
		require.NoError(t, json.Unmarshal(resp.Errors, &errs))
	}
	return resp.Data, errs
}

func TestSchema_Loads(t *testing.T) {
	schema := generated.NewExecutableSchema(generated.Config{Resolvers: &Resolver{}}).Schema()

	for _, name := range []string{"Query", "Mutation", "User", "Post", "Comment"} {
		assert.NotNil(t, schema.Types[name], name)
	}
	assert.NotNil(t, schema.Mutation.Fields.ForName("createUser"))
}

func TestQuery_Users(t *testing.T) {
	c, _ := newMemoryClient(t)

	t.Run("All users", func(t *testing.T) {
		var resp struct {
			Users []struct {
				ID    string
				Name  string
				Email string
				Age   *int
			}
		}
		c.MustPost(`{ users { id name email age } }`, &resp)

		require.Len(t, resp.Users, 3)
		assert.Equal(t, "1", resp.Users[0].ID)
		assert.Equal(t, "Joao", resp.Users[0].Name)
		assert.Equal(t, "joao.com", resp.Users[0].Email)
		assert.Nil(t, resp.Users[0].Age)
		assert.Equal(t, "Maria", resp.Users[1].Name)
		assert.Equal(t, "Ana", resp.Users[2].Name)
	})

	t.Run("Filtered by name", func(t *testing.T) {
		var resp struct {
			Users []struct{ Name string }
		}
		c.MustPost(`query($q: String) { users(query: $q) { name } }`, &resp, client.Var("q", "an"))

		require.Len(t, resp.Users, 1)
		assert.Equal(t, "Ana", resp.Users[0].Name)
	})

	t.Run("No match", func(t *testing.T) {
		var resp struct {
			Users []struct{ ID string }
		}
		c.MustPost(`{ users(query: "ZZZ") { id } }`, &resp)

		assert.NotNil(t, resp.Users)
		assert.Empty(t, resp.Users)
	})
}

func TestQuery_Posts(t *testing.T) {
	c, _ := newMemoryClient(t)

	var resp struct {
		Posts []struct {
			ID        string
			Title     string
			Published bool
		}
	}
	c.MustPost(`{ posts(query: "Post 1") { id title published } }`, &resp)

	require.Len(t, resp.Posts, 1)
	assert.Equal(t, "10", resp.Posts[0].ID)
	assert.Equal(t, "First Post", resp.Posts[0].Title)
	assert.False(t, resp.Posts[0].Published)
}

func TestQuery_Relationships(t *testing.T) {
	c, _ := newMemoryClient(t)

	t.Run("User posts and comments", func(t *testing.T) {
		var resp struct {
			Users []struct {
				ID       string
				Posts    []struct{ ID string }
				Comments []struct{ ID string }
			}
		}
		c.MustPost(`{ users { id posts { id } comments { id } } }`, &resp)

		require.Len(t, resp.Users, 3)
		maria := resp.Users[1]
		require.Len(t, maria.Posts, 2)
		assert.Equal(t, "20", maria.Posts[0].ID)
		assert.Equal(t, "30", maria.Posts[1].ID)
		require.Len(t, maria.Comments, 2)
		assert.Equal(t, "300", maria.Comments[0].ID)

		ana := resp.Users[2]
		assert.Empty(t, ana.Posts)
		assert.Empty(t, ana.Comments)
	})

	t.Run("Comment author and post", func(t *testing.T) {
		var resp struct {
			Comments []struct {
				ID     string
				Author struct{ ID string }
				Post   struct {
					ID     string
					Author struct{ Name string }
				}
			}
		}
		c.MustPost(`{ comments { id author { id } post { id author { name } } } }`, &resp)

		require.Len(t, resp.Comments, 4)
		assert.Equal(t, "100", resp.Comments[0].ID)
		assert.Equal(t, "1", resp.Comments[0].Author.ID)
		assert.Equal(t, "30", resp.Comments[0].Post.ID)
		assert.Equal(t, "Maria", resp.Comments[0].Post.Author.Name)
	})

	t.Run("Post author does not change stored data", func(t *testing.T) {
		query := `{ posts { id author { id } } }`

		var first, second struct {
			Posts []struct {
				ID     string
				Author struct{ ID string }
			}
		}
		c.MustPost(query, &first)
		c.MustPost(query, &second)

		assert.Equal(t, first, second)
		require.Len(t, first.Posts, 3)
		assert.Equal(t, "1", first.Posts[0].Author.ID)
		assert.Equal(t, "2", first.Posts[1].Author.ID)
		assert.Equal(t, "2", first.Posts[2].Author.ID)
	})

	t.Run("Post comments", func(t *testing.T) {
		var resp struct {
			Posts []struct {
				Comments []struct{ Text string }
			}
		}
		c.MustPost(`{ posts(query: "first") { comments { text } } }`, &resp)

		require.Len(t, resp.Posts, 1)
		require.Len(t, resp.Posts[0].Comments, 2)
		assert.Equal(t, "Comment 2", resp.Posts[0].Comments[0].Text)
		assert.Equal(t, "Comment 4", resp.Posts[0].Comments[1].Text)
	})
}

func TestMutation_CreateUser(t *testing.T) {
	t.Run("Appends a new user", func(t *testing.T) {
		c, store := newMemoryClient(t)

		var resp struct {
			CreateUser struct {
				ID       string
				Name     string
				Email    string
				Age      *int
				Posts    []struct{ ID string }
				Comments []struct{ ID string }
			}
		}
		c.MustPost(`mutation($age: Int) { createUser(name: "Bob", email: "bob@x.com", age: $age) { id name email age posts { id } comments { id } } }`,
			&resp, client.Var("age", 42))

		assert.Equal(t, "new-1", resp.CreateUser.ID)
		assert.Equal(t, "Bob", resp.CreateUser.Name)
		assert.Equal(t, "bob@x.com", resp.CreateUser.Email)
		require.NotNil(t, resp.CreateUser.Age)
		assert.Equal(t, 42, *resp.CreateUser.Age)
		assert.Empty(t, resp.CreateUser.Posts)
		assert.Empty(t, resp.CreateUser.Comments)

		users, err := store.ListUsers("")
		require.NoError(t, err)
		require.Len(t, users, 4)
		assert.Equal(t, "new-1", users[3].ID)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		c, store := newMemoryClient(t)

		data, errs := rawErrors(t, c, `mutation { createUser(name: "X", email: "joao.com") { id } }`)
		require.Len(t, errs, 1)
		assert.Equal(t, "Email is already taken", errs[0].Message)
		assert.Equal(t, CodeDuplicateEmail, errs[0].Extensions["code"])
		assert.Equal(t, []interface{}{"createUser"}, errs[0].Path)
		assert.Nil(t, data)

		users, err := store.ListUsers("")
		require.NoError(t, err)
		assert.Len(t, users, 3)
	})

	t.Run("Missing required argument", func(t *testing.T) {
		c, _ := newMemoryClient(t)

		var resp map[string]interface{}
		err := c.Post(`mutation { createUser(name: "X") { id } }`, &resp)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("Concurrent duplicates create one user", func(t *testing.T) {
		c, store := newMemoryClient(t)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				var resp map[string]interface{}
				_ = c.Post(`mutation { createUser(name: "Eve", email: "eve@x.com") { id } }`, &resp)
			}()
		}
		wg.Wait()

		users, err := store.ListUsers("Eve")
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})
}

func TestQuery_DanglingRelationship(t *testing.T) {
	resolver, _ := newMockResolver()
	resolver.PostStore = mocks.NewMockPostStorage(&model.Post{ID: "77", Title: "Orphan", Body: "?", AuthorID: "404"})
	c := newClient(t, resolver)

	data, errs := rawErrors(t, c, `{ posts { id author { id } } }`)
	require.Len(t, errs, 1)
	assert.Equal(t, CodeRelationshipNotFound, errs[0].Extensions["code"])
	assert.Equal(t, []interface{}{"posts", float64(0), "author"}, errs[0].Path)

	// posts non-null, поэтому null поднимается до корня
	assert.Nil(t, data)
}

func TestQuery_TypenameAndAliases(t *testing.T) {
	c, _ := newMemoryClient(t)

	var resp struct {
		First []struct {
			Typename string `json:"__typename"`
			ID       string
		}
		Named []struct {
			Name string
		}
	}
	c.MustPost(`{
		first: users(query: "ana") { __typename id }
		named: users(query: "maria") { name }
	}`, &resp)

	require.Len(t, resp.First, 1)
	assert.Equal(t, "User", resp.First[0].Typename)
	assert.Equal(t, "3", resp.First[0].ID)
	require.Len(t, resp.Named, 1)
	assert.Equal(t, "Maria", resp.Named[0].Name)
}
