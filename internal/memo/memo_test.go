package memo

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCompute_ComputesOnce(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	var calls atomic.Int64
	compute := func(context.Context) (string, error) {
		calls.Add(1)
		return "v", nil
	}

	v, cached, err := GetOrCompute(ctx, s, 1, compute)
	require.NoError(t, err)
	assert.Equal(t, "v", v)
	assert.False(t, cached)

	v, cached, err = GetOrCompute(ctx, s, 1, compute)
	require.NoError(t, err)
	assert.Equal(t, "v", v)
	assert.True(t, cached)

	assert.Equal(t, int64(1), calls.Load())

	hits, misses := s.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestGetOrCompute_DistinctIDsIndependent(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	var calls atomic.Int64
	for _, id := range []int64{1, 2} {
		v, _, err := GetOrCompute(ctx, s, id, func(context.Context) (int64, error) {
			calls.Add(1)
			return id * 10, nil
		})
		require.NoError(t, err)
		assert.Equal(t, id*10, v)
	}
	assert.Equal(t, int64(2), calls.Load())
	assert.Equal(t, 2, s.Len())
}

func TestGetOrCompute_ConcurrentSameID(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	var calls atomic.Int64
	gate := make(chan struct{})

	const n = 32
	var wg sync.WaitGroup
	results := make([]string, n)
	errs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-gate
			v, _, err := GetOrCompute(ctx, s, 7, func(context.Context) (string, error) {
				calls.Add(1)
				return "once", nil
			})
			results[i], errs[i] = v, err
		}()
	}
	close(gate)
	wg.Wait()

	for i := range n {
		require.NoError(t, errs[i])
		assert.Equal(t, "once", results[i])
	}
	assert.Equal(t, int64(1), calls.Load(), "racing callers must collapse into one compute")
}

func TestGetOrCompute_ErrorNotStored(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	boom := errors.New("scan failed")
	_, _, err := GetOrCompute(ctx, s, 1, func(context.Context) (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, s.Len())

	// A later call retries and succeeds.
	v, cached, err := GetOrCompute(ctx, s, 1, func(context.Context) (string, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, "ok", v)
}

func TestGetOrCompute_TypeMismatch(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, _, err := GetOrCompute(ctx, s, 1, func(context.Context) (string, error) {
		return "text", nil
	})
	require.NoError(t, err)

	_, _, err = GetOrCompute(ctx, s, 1, func(context.Context) (int, error) {
		return 42, nil
	})
	require.Error(t, err)

	var tme *TypeMismatchError
	require.ErrorAs(t, err, &tme)
	assert.Equal(t, int64(1), tme.ID)
	assert.Equal(t, "int", tme.Want)
	assert.Equal(t, "string", tme.Got)
}

func TestSeed(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	assert.True(t, Seed(s, 1, "seeded"))
	assert.False(t, Seed(s, 1, "other"), "seeding must not overwrite")

	v, cached, err := GetOrCompute(ctx, s, 1, func(context.Context) (string, error) {
		t.Fatal("compute must not run for a seeded id")
		return "", nil
	})
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, "seeded", v)
}

func TestInvalidateAndReset(t *testing.T) {
	s := NewStore()

	Seed(s, 1, "a")
	Seed(s, 2, "b")
	assert.ElementsMatch(t, []int64{1, 2}, s.Keys())

	assert.True(t, s.Invalidate(1))
	assert.False(t, s.Invalidate(1))
	assert.Equal(t, 1, s.Len())

	s.Reset()
	assert.Equal(t, 0, s.Len())
}
