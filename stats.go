package partstat

import (
	"sync"

	"github.com/partstat/partstat/summary"
)

// Bounds holds the first and last elements observed while scanning a
// partition in encounter order. For a sorted partition these are its minimum
// and maximum.
type Bounds[T any] struct {
	First T `json:"first"`
	Last  T `json:"last"`
}

// PartitionStat is the result of scanning a single partition.
//
// Bounds is nil exactly when Count is zero.
type PartitionStat[T any] struct {
	Bounds *Bounds[T] `json:"bounds,omitempty"`
	Count  int64      `json:"count"`
	// Sorted reports local sortedness: no adjacent pair within the partition
	// is out of order. An empty partition is sorted.
	Sorted bool `json:"sorted"`
}

// DatasetStats are the merged statistics of one dataset. Both slices are
// indexed by partition index and have length equal to the dataset's
// partition count at computation time.
//
// A DatasetStats is immutable after construction and safe for concurrent
// use. It must not be copied once the derived summaries have been accessed.
type DatasetStats[T any] struct {
	// PartitionBounds holds each partition's bounds; nil entries are empty
	// partitions.
	PartitionBounds []*Bounds[T]
	// PartitionSizes holds each partition's element count.
	PartitionSizes []int64
	// Sorted reports global sortedness: every partition is locally sorted
	// and every nonempty-to-nonempty partition boundary is non-decreasing.
	Sorted bool

	countOnce     sync.Once
	countStats    *summary.Summary
	nonEmptyOnce  sync.Once
	nonEmptyStats *summary.Summary
}

// NumPartitions returns the partition count at computation time.
func (s *DatasetStats[T]) NumPartitions() int {
	return len(s.PartitionSizes)
}

// TotalCount returns the total number of elements across all partitions.
func (s *DatasetStats[T]) TotalCount() int64 {
	var total int64
	for _, n := range s.PartitionSizes {
		total += n
	}
	return total
}

// CountStats returns descriptive statistics over all partition sizes.
// Computed on first access and cached on the receiver.
func (s *DatasetStats[T]) CountStats() *summary.Summary {
	s.countOnce.Do(func() {
		s.countStats = summary.Describe(s.PartitionSizes)
	})
	return s.countStats
}

// NonEmptyCountStats returns descriptive statistics over the sizes of
// nonempty partitions only. Computed on first access and cached on the
// receiver.
func (s *DatasetStats[T]) NonEmptyCountStats() *summary.Summary {
	s.nonEmptyOnce.Do(func() {
		nonEmpty := make([]int64, 0, len(s.PartitionSizes))
		for _, n := range s.PartitionSizes {
			if n > 0 {
				nonEmpty = append(nonEmpty, n)
			}
		}
		s.nonEmptyStats = summary.Describe(nonEmpty)
	})
	return s.nonEmptyStats
}
