package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/VitaminP8/blogql/graph"
	"github.com/VitaminP8/blogql/graph/generated"
	"github.com/VitaminP8/blogql/internal/comment"
	"github.com/VitaminP8/blogql/internal/config"
	"github.com/VitaminP8/blogql/internal/ident"
	"github.com/VitaminP8/blogql/internal/log"
	"github.com/VitaminP8/blogql/internal/metrics"
	"github.com/VitaminP8/blogql/internal/post"
	"github.com/VitaminP8/blogql/internal/server"
	"github.com/VitaminP8/blogql/internal/storage"
	"github.com/VitaminP8/blogql/internal/storage/memory"
	"github.com/VitaminP8/blogql/internal/storage/sqlite"
	"github.com/VitaminP8/blogql/internal/user"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "blogql",
	Short:         "GraphQL API для пользователей, постов и комментариев",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.Int("port", 8080, "Порт HTTP сервера")
	flags.String("storage", config.StorageMemory, "Тип хранилища: memory или sqlite")
	flags.Bool("playground", true, "Отдавать GraphQL Playground на /")
	flags.Bool("introspection", true, "Разрешить introspection-запросы")
	flags.IntP("verbosity", "v", 0, "Уровень детализации логов")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	// загружаем .env, если он есть
	if err := config.LoadEnv(); err != nil {
		return err
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}

	logger := log.New(cfg.LogVerbosity)

	var userStore user.UserStorage
	var postStore post.PostStorage
	var commentStore comment.CommentStorage

	switch cfg.Storage {
	case config.StorageSQLite:
		db, err := sqlite.Open(storage.SampleData(), ident.UUID{})
		if err != nil {
			return fmt.Errorf("failed to open sqlite storage: %w", err)
		}
		defer db.Close()

		logger.Info("Используется sqlite хранилище (in-memory)")
		userStore, postStore, commentStore = db, db, db

	default:
		store := memory.NewStore(storage.SampleData(), ident.UUID{})

		logger.Info("Используется in-memory хранилище")
		userStore, postStore, commentStore = store, store, store
	}

	m := metrics.New()

	// Инициализация резолвера
	resolver := &graph.Resolver{
		UserStore:    userStore,
		PostStore:    postStore,
		CommentStore: commentStore,
		Metrics:      m,
	}

	srv, err := server.New(cfg, generated.NewExecutableSchema(generated.Config{Resolvers: resolver}), m, logger)
	if err != nil {
		return err
	}

	// Ожидание SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}

// applyFlags переопределяет значения из окружения явно заданными флагами
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error

	if flags.Changed("port") {
		if cfg.Port, err = flags.GetInt("port"); err != nil {
			return err
		}
	}
	if flags.Changed("storage") {
		if cfg.Storage, err = flags.GetString("storage"); err != nil {
			return err
		}
	}
	if flags.Changed("playground") {
		if cfg.Playground, err = flags.GetBool("playground"); err != nil {
			return err
		}
	}
	if flags.Changed("introspection") {
		if cfg.Introspection, err = flags.GetBool("introspection"); err != nil {
			return err
		}
	}
	if flags.Changed("verbosity") {
		if cfg.LogVerbosity, err = flags.GetInt("verbosity"); err != nil {
			return err
		}
	}

	return cfg.Validate()
}
