package log

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
)

func TestFromContext_Discard(t *testing.T) {
	logger := FromContext(context.Background())
	assert.NotPanics(t, func() {
		logger.Info("dropped")
	})
}

func TestMiddleware(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{})

	h := Middleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		FromContext(r.Context()).Info("handled")
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/query", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	if assert.Len(t, lines, 1) {
		assert.Contains(t, lines[0], `"msg"="handled"`)
		assert.Contains(t, lines[0], `"path"="/query"`)
	}
}
