package main

import (
	"testing"

	"github.com/VitaminP8/blogql/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().AddFlagSet(rootCmd.Flags())
	return cmd
}

func TestApplyFlags(t *testing.T) {
	t.Run("Unchanged flags keep env values", func(t *testing.T) {
		cmd := &cobra.Command{Use: "test"}
		cmd.Flags().Int("port", 8080, "")
		cmd.Flags().String("storage", "memory", "")
		cmd.Flags().Bool("playground", true, "")
		cmd.Flags().Bool("introspection", true, "")
		cmd.Flags().IntP("verbosity", "v", 0, "")
		require.NoError(t, cmd.Flags().Parse(nil))

		cfg := config.Default()
		cfg.Port = 9090
		require.NoError(t, applyFlags(cmd, &cfg))
		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("Explicit flags win", func(t *testing.T) {
		cmd := newCommand()
		require.NoError(t, cmd.Flags().Parse([]string{"--port", "7000", "--storage", "sqlite", "--playground=false", "-v", "2"}))

		cfg := config.Default()
		require.NoError(t, applyFlags(cmd, &cfg))
		assert.Equal(t, 7000, cfg.Port)
		assert.Equal(t, config.StorageSQLite, cfg.Storage)
		assert.False(t, cfg.Playground)
		assert.True(t, cfg.Introspection)
		assert.Equal(t, 2, cfg.LogVerbosity)
	})

	t.Run("Unknown storage", func(t *testing.T) {
		cmd := &cobra.Command{Use: "test"}
		cmd.Flags().String("storage", "memory", "")
		require.NoError(t, cmd.Flags().Parse([]string{"--storage", "postgres"}))

		cfg := config.Default()
		assert.Error(t, applyFlags(cmd, &cfg))
	})

	t.Run("Flag overrides invalid env storage", func(t *testing.T) {
		t.Setenv("STORAGE", "bogus")
		cfg, err := config.FromEnv()
		require.NoError(t, err)

		cmd := &cobra.Command{Use: "test"}
		cmd.Flags().String("storage", "memory", "")
		require.NoError(t, cmd.Flags().Parse([]string{"--storage", "memory"}))

		require.NoError(t, applyFlags(cmd, &cfg))
		assert.Equal(t, config.StorageMemory, cfg.Storage)
	})
}
