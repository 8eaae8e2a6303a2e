// Package partstat computes structural statistics over partitioned datasets
// without materializing the full collection anywhere.
//
// A single parallel pass over a dataset yields, per partition, the first and
// last elements, the size, and a local sortedness flag. An ordered merge
// combines those into dataset-level stats, including a global sortedness
// verdict that accounts for partition boundaries. Results are memoized by
// dataset identity with at-most-once computation, and a scan of a
// concatenated (union) dataset also populates the stats of each child
// dataset for free.
//
// # Quick Start
//
//	ctx := context.Background()
//	a := partstat.New()
//
//	var ds dataset.Dataset[int] = dataset.FromPartitions(
//	    []int{1, 2}, []int{3, 5}, []int{6},
//	)
//
//	st, _ := partstat.Stats(ctx, a, ds, order.Natural[int]())
//	fmt.Println(st.Sorted)             // true
//	fmt.Println(st.PartitionSizes)     // [2 2 1]
//	fmt.Println(st.CountStats().Mean)  // 1.666...
//
// # Orderings
//
// Scans compare elements through an order.Ordering, which is not assumed to
// be total. See the order package for the exact semantics of incomparable
// pairs.
//
// # Caching
//
// Stats are cached per dataset identity for the lifetime of the Analyzer.
// There is no eviction: an identity must never be reused for different data
// while cached, and callers that re-derive a collection under the same
// identity must call Analyzer.Invalidate first.
//
// # Union decomposition
//
// Datasets implementing dataset.Concatenation get their children's stats
// derived from the parent's scan records, without rescanning. Disabling the
// optimization (WithUnionDecomposition(false)) changes nothing about the
// parent's own stats.
package partstat
