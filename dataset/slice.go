package dataset

import "sync/atomic"

// Identities are dense and process-local, assigned once per constructed
// dataset, never reassigned.
var nextID atomic.Int64

// NextID returns a fresh dataset identity. Exposed for callers that
// implement Dataset themselves.
func NextID() int64 {
	return nextID.Add(1)
}

// Slices is an in-memory Dataset backed by one slice per partition.
type Slices[T any] struct {
	id    int64
	parts [][]T
}

// FromPartitions creates a dataset with one partition per argument slice.
// Partition contents are not copied; callers must not mutate them afterward.
func FromPartitions[T any](parts ...[]T) *Slices[T] {
	return &Slices[T]{
		id:    NextID(),
		parts: parts,
	}
}

// FromSlice creates a dataset by splitting data into numPartitions
// contiguous, near-equal chunks, preserving element order. numPartitions
// values < 1 are treated as 1.
func FromSlice[T any](data []T, numPartitions int) *Slices[T] {
	if numPartitions < 1 {
		numPartitions = 1
	}
	parts := make([][]T, numPartitions)
	n := len(data)
	for i := range parts {
		lo := i * n / numPartitions
		hi := (i + 1) * n / numPartitions
		parts[i] = data[lo:hi]
	}
	return &Slices[T]{
		id:    NextID(),
		parts: parts,
	}
}

// ID returns the dataset identity.
func (s *Slices[T]) ID() int64 { return s.id }

// NumPartitions returns the number of partitions.
func (s *Slices[T]) NumPartitions() int { return len(s.parts) }

// Partition returns partition i.
func (s *Slices[T]) Partition(i int) []T { return s.parts[i] }
