package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/VitaminP8/blogql/graph"
	"github.com/VitaminP8/blogql/graph/generated"
	"github.com/VitaminP8/blogql/internal/config"
	"github.com/VitaminP8/blogql/internal/ident"
	"github.com/VitaminP8/blogql/internal/log"
	"github.com/VitaminP8/blogql/internal/metrics"
	"github.com/VitaminP8/blogql/internal/storage"
	"github.com/VitaminP8/blogql/internal/storage/memory"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg config.Config) *Server {
	t.Helper()

	store := memory.NewStore(storage.SampleData(), ident.NewSequence("u", 1))
	m := metrics.New()
	schema := generated.NewExecutableSchema(generated.Config{Resolvers: &graph.Resolver{
		UserStore:    store,
		PostStore:    store,
		CommentStore: store,
		Metrics:      m,
	}})

	srv, err := New(cfg, schema, m, logr.Discard())
	require.NoError(t, err)
	return srv
}

func postQuery(t *testing.T, h http.Handler, query string) (int, map[string]interface{}) {
	t.Helper()

	body, err := json.Marshal(map[string]string{"query": query})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, QueryPath, strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestNew_Validation(t *testing.T) {
	_, err := New(config.Default(), nil, nil, logr.Discard())
	assert.Error(t, err)

	srv := newTestServer(t, config.Default())
	cfg := config.Default()
	cfg.Storage = "redis"
	_, err = New(cfg, srv.schema, nil, logr.Discard())
	assert.Error(t, err)
}

func TestServer_Query(t *testing.T) {
	srv := newTestServer(t, config.Default())

	code, resp := postQuery(t, srv.Handler(), `{ users(query: "an") { id name } }`)
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, resp["errors"])
	assert.Equal(t, map[string]interface{}{
		"users": []interface{}{
			map[string]interface{}{"id": "3", "name": "Ana"},
		},
	}, resp["data"])

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `blogql_graphql_operations_total{operation="query",status="ok"} 1`)
}

func TestServer_QueryOverGET(t *testing.T) {
	srv := newTestServer(t, config.Default())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, QueryPath+"?query="+`%7Bcomments%7Bid%7D%7D`, nil)
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"comments":[{"id":"100"},{"id":"200"},{"id":"300"},{"id":"400"}]}}`, rec.Body.String())
}

func TestServer_DuplicateEmail(t *testing.T) {
	srv := newTestServer(t, config.Default())

	_, resp := postQuery(t, srv.Handler(), `mutation { createUser(name: "X", email: "joao.com") { id } }`)

	errs, ok := resp["errors"].([]interface{})
	require.True(t, ok)
	require.Len(t, errs, 1)
	first := errs[0].(map[string]interface{})
	assert.Equal(t, "Email is already taken", first["message"])
	assert.Equal(t, graph.CodeDuplicateEmail, first["extensions"].(map[string]interface{})["code"])

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `blogql_graphql_operations_total{operation="mutation",status="error"} 1`)
	assert.Contains(t, rec.Body.String(), "blogql_users_created_total 0")
}

func TestServer_Introspection(t *testing.T) {
	t.Run("Enabled", func(t *testing.T) {
		srv := newTestServer(t, config.Default())
		_, resp := postQuery(t, srv.Handler(), `{ __type(name: "User") { name } }`)
		assert.Nil(t, resp["errors"])
		assert.Equal(t, map[string]interface{}{"__type": map[string]interface{}{"name": "User"}}, resp["data"])
	})

	t.Run("Disabled", func(t *testing.T) {
		cfg := config.Default()
		cfg.Introspection = false
		srv := newTestServer(t, cfg)
		_, resp := postQuery(t, srv.Handler(), `{ __type(name: "User") { name } }`)
		assert.NotNil(t, resp["errors"])
	})
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t, config.Default())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestHandleHealth_WriteError(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req = req.WithContext(log.WithLogger(req.Context(), logger))
	handleHealth(brokenWriter{httptest.NewRecorder()}, req)

	if assert.Len(t, lines, 1) {
		assert.Contains(t, lines[0], `"msg"="failed to write health response"`)
		assert.Contains(t, lines[0], "connection reset")
	}
}

func TestServer_Playground(t *testing.T) {
	t.Run("Enabled", func(t *testing.T) {
		srv := newTestServer(t, config.Default())
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "GraphQL Playground")
	})

	t.Run("Disabled", func(t *testing.T) {
		cfg := config.Default()
		cfg.Playground = false
		srv := newTestServer(t, cfg)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestServer_Run(t *testing.T) {
	cfg := config.Default()
	cfg.Port = freePort(t)
	cfg.ShutdownTimeout = time.Second
	srv := newTestServer(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	url := "http://127.0.0.1:" + strconv.Itoa(cfg.Port) + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
