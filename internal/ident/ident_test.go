package ident

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID_NewID(t *testing.T) {
	gen := UUID{}

	first := gen.NewID()
	second := gen.NewID()

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestSequence_NewID(t *testing.T) {
	t.Run("Ids follow the counter", func(t *testing.T) {
		seq := NewSequence("u-", 1)

		assert.Equal(t, "u-1", seq.NewID())
		assert.Equal(t, "u-2", seq.NewID())
		assert.Equal(t, "u-3", seq.NewID())
	})

	t.Run("Concurrent callers get distinct ids", func(t *testing.T) {
		seq := NewSequence("", 0)

		const workers = 50
		ids := make(chan string, workers)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ids <- seq.NewID()
			}()
		}
		wg.Wait()
		close(ids)

		seen := make(map[string]bool)
		for id := range ids {
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
		assert.Len(t, seen, workers)
	})
}
