package idgen_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-idle/internal/pkg/idgen"
)

func TestTimestampGeneratorUnique(t *testing.T) {
	gen := idgen.NewTimestamp()

	const workers, perWorker = 8, 500
	ids := make(chan string, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids <- gen.Generate()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, workers*perWorker)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
		assert.Len(t, strings.Split(id, "_"), 3)
	}
	assert.Len(t, seen, workers*perWorker)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("item")
	assert.Equal(t, "item_1", gen.Generate())
	assert.Equal(t, "item_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("char")
	id := gen.Generate()
	assert.True(t, strings.HasPrefix(id, "char_"))
	assert.NotEqual(t, id, gen.Generate())
}
