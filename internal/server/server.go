package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/VitaminP8/blogql/internal/config"
	"github.com/VitaminP8/blogql/internal/log"
	"github.com/VitaminP8/blogql/internal/metrics"
	"github.com/go-logr/logr"
	"github.com/gorilla/mux"
)

const QueryPath = "/query"

// Server отдает GraphQL API, playground, health и метрики
type Server struct {
	cfg        config.Config
	schema     graphql.ExecutableSchema
	logger     logr.Logger
	router     *mux.Router
	httpServer *http.Server
}

func New(cfg config.Config, schema graphql.ExecutableSchema, m *metrics.Metrics, logger logr.Logger) (*Server, error) {
	if schema == nil {
		return nil, fmt.Errorf("executable schema is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	s := &Server{
		cfg:    cfg,
		schema: schema,
		logger: logger.WithName("server"),
		router: mux.NewRouter(),
	}

	s.router.Use(log.Middleware(logger))
	s.router.Use(s.accessLog)

	s.router.Handle(QueryPath, newGraphQLHandler(schema, cfg.Introspection, m)).Methods(http.MethodGet, http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/health", handleHealth).Methods(http.MethodGet)
	if m != nil {
		s.router.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	}
	if cfg.Playground {
		s.router.Handle("/", playground.Handler("GraphQL Playground", QueryPath)).Methods(http.MethodGet)
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s, nil
}

func newGraphQLHandler(schema graphql.ExecutableSchema, introspection bool, m *metrics.Metrics) *handler.Server {
	srv := handler.New(schema)

	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})

	if introspection {
		srv.Use(extension.Introspection{})
	}
	if m != nil {
		srv.Use(m.Extension())
	}

	return srv
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run слушает адрес из конфигурации до отмены ctx, затем корректно
// останавливает сервер с таймаутом ShutdownTimeout
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		s.logger.Info("Сервер запущен", "addr", s.httpServer.Addr, "playground", s.cfg.Playground)
		// блокируется до Shutdown или фатальной ошибки
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Завершение...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	s.logger.Info("Сервер остановлен корректно")
	return nil
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.FromContext(r.Context()).V(1).Info("request served", "status", rec.status, "duration", time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		log.FromContext(r.Context()).Error(err, "failed to write health response")
	}
}
