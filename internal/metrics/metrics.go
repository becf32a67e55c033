package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "blogql"

// Metrics содержит метрики GraphQL API и собственный реестр
type Metrics struct {
	registry *prometheus.Registry

	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	UsersCreatedTotal prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		OperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "graphql",
				Name:      "operations_total",
				Help:      "Total number of executed GraphQL operations",
			},
			[]string{"operation", "status"},
		),

		OperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "graphql",
				Name:      "operation_duration_seconds",
				Help:      "GraphQL operation duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		UsersCreatedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "users_created_total",
				Help:      "Total number of users created through the createUser mutation",
			},
		),
	}

	m.registry.MustRegister(m.OperationsTotal, m.OperationDuration, m.UsersCreatedTotal)
	return m
}

// Handler отдает метрики в текстовом формате prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) UserCreated() {
	if m == nil {
		return
	}
	m.UsersCreatedTotal.Inc()
}

// Extension возвращает расширение gqlgen, которое считает операции
func (m *Metrics) Extension() *Tracer {
	return &Tracer{metrics: m}
}

var (
	_ graphql.HandlerExtension    = (*Tracer)(nil)
	_ graphql.ResponseInterceptor = (*Tracer)(nil)
)

type Tracer struct {
	metrics *Metrics
}

func (t *Tracer) ExtensionName() string {
	return "Metrics"
}

func (t *Tracer) Validate(schema graphql.ExecutableSchema) error {
	return nil
}

func (t *Tracer) InterceptResponse(ctx context.Context, next graphql.ResponseHandler) *graphql.Response {
	if !graphql.HasOperationContext(ctx) {
		return next(ctx)
	}

	oc := graphql.GetOperationContext(ctx)
	operation := "unknown"
	if oc.Operation != nil {
		operation = string(oc.Operation.Operation)
	}

	start := time.Now()
	resp := next(ctx)

	status := "ok"
	if resp != nil && len(resp.Errors) > 0 {
		status = "error"
	}

	t.metrics.OperationsTotal.WithLabelValues(operation, status).Inc()
	t.metrics.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	return resp
}
