package ledger

import (
	"sort"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySequential(t *testing.T) {
	reg := NewRegistry(DefaultSeed)

	a, err := Open(reg, decimal.Zero)
	require.NoError(t, err)
	b, err := Open(reg, decimal.Zero)
	require.NoError(t, err)

	assert.Equal(t, DefaultSeed, a.ID())
	assert.Equal(t, a.ID()+1, b.ID())
	assert.Equal(t, DefaultSeed+2, reg.Peek())
}

func TestRegistryConcurrent(t *testing.T) {
	reg := NewRegistry(1)

	const n = 500
	ids := make([]int64, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			ids[i] = reg.NextID()
		}(i)
	}
	wg.Wait()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, id := range ids {
		assert.Equal(t, int64(i+1), id)
	}
	assert.Equal(t, int64(n+1), reg.Peek())
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := NewRegistry(10)
	b := NewRegistry(10)

	assert.Equal(t, int64(10), a.NextID())
	assert.Equal(t, int64(11), a.NextID())
	assert.Equal(t, int64(10), b.NextID())
}
