package partstat

import "github.com/partstat/partstat/order"

// ScanPartition computes the local statistics of one partition in a single
// pass. It is pure and runs inside one worker goroutine with no shared
// state; results are only meaningful if ord matches the intended comparison
// semantics.
func ScanPartition[T any](part []T, ord order.Ordering[T]) PartitionStat[T] {
	if len(part) == 0 {
		return PartitionStat[T]{Count: 0, Sorted: true}
	}

	first := part[0]
	prev := first
	count := int64(1)
	sorted := true
	for _, cur := range part[1:] {
		count++
		if ord.GreaterThan(prev, cur) {
			// Sticky: one inversion marks the whole partition.
			sorted = false
		}
		prev = cur
	}

	return PartitionStat[T]{
		Bounds: &Bounds[T]{First: first, Last: prev},
		Count:  count,
		Sorted: sorted,
	}
}

// MergeStats folds per-partition results, ordered by ascending partition
// index, into dataset-level stats. The input may be a contiguous sub-range
// of a larger dataset's results, as when deriving a union child's stats.
//
// Global sortedness requires every partition to be locally sorted and every
// nonempty-to-nonempty boundary to be non-decreasing: the last element of
// the previous nonempty partition must be LessOrEqual the first element of
// the next. Empty partitions neither violate sortedness nor reset the
// boundary reference. An all-empty (or empty) input is sorted.
func MergeStats[T any](parts []PartitionStat[T], ord order.Ordering[T]) *DatasetStats[T] {
	out := &DatasetStats[T]{
		PartitionBounds: make([]*Bounds[T], 0, len(parts)),
		PartitionSizes:  make([]int64, 0, len(parts)),
	}

	var lastUpper *T
	sorted := true
	for _, p := range parts {
		boundaryOK := lastUpper == nil || p.Bounds == nil || ord.LessOrEqual(*lastUpper, p.Bounds.First)
		sorted = sorted && p.Sorted && boundaryOK

		out.PartitionBounds = append(out.PartitionBounds, p.Bounds)
		out.PartitionSizes = append(out.PartitionSizes, p.Count)

		if p.Bounds != nil {
			last := p.Bounds.Last
			lastUpper = &last
		}
	}
	out.Sorted = sorted

	return out
}
