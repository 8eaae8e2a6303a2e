// Package dataset models the partitioned collections that stats are computed
// over, together with the parallel per-partition execution driver.
//
// A Dataset is immutable once constructed: its identity, partition count and
// partition contents never change. Identity is the cache key for computed
// stats, so reusing an identity for different data silently serves stale
// results. Constructors in this package assign fresh identities, and callers
// implementing Dataset themselves must do the same.
package dataset

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Dataset is a partitioned collection of elements of type T.
//
// Implementations must be safe for concurrent use: partitions are read from
// one goroutine each during a scan.
type Dataset[T any] interface {
	// ID returns the stable identity of this collection instance.
	ID() int64
	// NumPartitions returns the number of partitions.
	NumPartitions() int
	// Partition returns the local element sequence of partition i, in
	// encounter order. i must be in [0, NumPartitions()). The returned slice
	// must be treated as read-only.
	Partition(i int) []T
}

// Segment identifies one child of a concatenated dataset: its identity and
// how many of the parent's partitions it contributes.
type Segment struct {
	ID            int64
	NumPartitions int
}

// Concatenation is optional introspection for datasets whose partitions are
// exactly the ordered, non-interleaved concatenation of child datasets'
// partitions. Datasets that implement it make their per-child stats
// derivable from a single parent scan.
type Concatenation interface {
	// Children returns the child segments in partition order.
	Children() []Segment
}

// MapPartitions runs fn once per partition, in parallel, and gathers the
// results ordered by partition index. parallelism bounds the number of
// concurrent partition scans; values < 1 default to GOMAXPROCS.
//
// The gather is all-or-nothing: the first fn error cancels ctx for the
// remaining partitions and is returned unmodified, discarding all results.
func MapPartitions[T, R any](ctx context.Context, ds Dataset[T], parallelism int, fn func(idx int, part []T) (R, error)) ([]R, error) {
	if parallelism < 1 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	out := make([]R, ds.NumPartitions())

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i := range out {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := fn(i, ds.Partition(i))
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Collect materializes the whole dataset as one slice in partition order.
func Collect[T any](ctx context.Context, ds Dataset[T]) ([]T, error) {
	parts, err := MapPartitions(ctx, ds, 0, func(_ int, part []T) ([]T, error) {
		return part, nil
	})
	if err != nil {
		return nil, err
	}
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]T, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}
