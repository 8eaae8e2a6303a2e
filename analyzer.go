package partstat

import (
	"context"
	"time"

	"github.com/partstat/partstat/dataset"
	"github.com/partstat/partstat/internal/memo"
	"github.com/partstat/partstat/order"
)

// Analyzer computes and caches dataset statistics. It owns the identity
// cache explicitly, with no ambient process-wide state, so tests and
// hosts control its lifecycle.
//
// An Analyzer is safe for concurrent use. Requests for the same dataset
// identity collapse into one computation; requests for different identities
// proceed independently.
type Analyzer struct {
	store       *memo.Store
	logger      *Logger
	metrics     MetricsCollector
	parallelism int
	decompose   bool
}

// New creates an Analyzer.
func New(opts ...Option) *Analyzer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Analyzer{
		store:       memo.NewStore(),
		logger:      o.logger,
		metrics:     o.metrics,
		parallelism: o.parallelism,
		decompose:   o.decompose,
	}
}

// Stats returns the statistics of ds under ord, serving from the Analyzer's
// cache when the identity has been computed before. On a miss every
// partition is scanned in parallel, results are gathered in partition order
// and merged, and the outcome is stored under the dataset's identity. If ds
// is a dataset.Concatenation, the gathered scan records additionally seed
// stats for each child that has none cached yet.
//
// Stats is a function rather than a method because Go methods cannot
// introduce the element type parameter.
func Stats[T any](ctx context.Context, a *Analyzer, ds dataset.Dataset[T], ord order.Ordering[T]) (*DatasetStats[T], error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	if ord == nil {
		return nil, ErrNilOrdering
	}

	start := time.Now()
	st, cached, err := memo.GetOrCompute(ctx, a.store, ds.ID(), func(ctx context.Context) (*DatasetStats[T], error) {
		return compute(ctx, a, ds, ord)
	})
	err = translateError(err)

	a.metrics.RecordStats(ds.ID(), ds.NumPartitions(), cached, time.Since(start), err)
	a.logger.LogStats(ctx, ds.ID(), ds.NumPartitions(), cached, err)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// compute runs the scatter/gather pass for one dataset. Scans execute in
// parallel; the gather barrier, merge and decomposition run on the calling
// goroutine.
func compute[T any](ctx context.Context, a *Analyzer, ds dataset.Dataset[T], ord order.Ordering[T]) (*DatasetStats[T], error) {
	parts, err := dataset.MapPartitions(ctx, ds, a.parallelism, func(_ int, part []T) (PartitionStat[T], error) {
		return ScanPartition(part, ord), nil
	})
	if err != nil {
		// Worker failures surface at the gather barrier and propagate
		// unmodified.
		return nil, err
	}

	st := MergeStats(parts, ord)

	if a.decompose {
		if concat, ok := ds.(dataset.Concatenation); ok {
			decompose(ctx, a, ds.ID(), concat.Children(), parts, ord)
		}
	}

	return st, nil
}

// decompose slices a concatenation parent's gathered scan records into one
// contiguous run per child, merges each run in isolation, and seeds the
// cache for children without stored stats. Purely an optimization: the
// parent's result is unaffected.
func decompose[T any](ctx context.Context, a *Analyzer, parentID int64, children []dataset.Segment, parts []PartitionStat[T], ord order.Ordering[T]) {
	var total int
	for _, c := range children {
		total += c.NumPartitions
	}
	if total != len(parts) {
		a.logger.LogDecomposeSkipped(ctx, parentID, total, len(parts))
		return
	}

	seeded := 0
	offset := 0
	for _, c := range children {
		child := MergeStats(parts[offset:offset+c.NumPartitions], ord)
		if memo.Seed(a.store, c.ID, child) {
			seeded++
		}
		offset += c.NumPartitions
	}

	a.metrics.RecordDecompose(parentID, len(children), seeded)
	a.logger.LogDecompose(ctx, parentID, len(children), seeded)
}

// Invalidate drops the cached stats for id, reporting whether any were
// present. Hosts must call it before reusing an identity for a different
// physical collection.
func (a *Analyzer) Invalidate(ctx context.Context, id int64) bool {
	present := a.store.Invalidate(id)
	a.logger.LogInvalidate(ctx, id, present)
	return present
}

// ResetCache drops all cached stats.
func (a *Analyzer) ResetCache() {
	a.store.Reset()
}

// CachedIDs returns the dataset identities with cached stats, in no
// particular order.
func (a *Analyzer) CachedIDs() []int64 {
	return a.store.Keys()
}

// CacheLen returns the number of cached entries.
func (a *Analyzer) CacheLen() int {
	return a.store.Len()
}

// CacheStats returns cache hit/miss counters.
func (a *Analyzer) CacheStats() (hits, misses int64) {
	return a.store.Stats()
}
