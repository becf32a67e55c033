package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_UserCreated(t *testing.T) {
	m := New()

	m.UserCreated()
	m.UserCreated()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.UsersCreatedTotal))
}

func TestMetrics_UserCreated_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.UserCreated()
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.UserCreated()
	m.OperationsTotal.WithLabelValues("query", "ok").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "blogql_users_created_total 1")
	assert.Contains(t, body, `blogql_graphql_operations_total{operation="query",status="ok"} 1`)
}

func TestTracer_ExtensionName(t *testing.T) {
	tracer := New().Extension()
	assert.Equal(t, "Metrics", tracer.ExtensionName())
	assert.NoError(t, tracer.Validate(nil))
}
