package dataset

// Union is the ordered concatenation of child datasets: its partitions are
// the children's partitions back to back, with no shuffling or interleaving.
// It implements Concatenation, so a stats scan of the union also yields
// stats for every child.
type Union[T any] struct {
	id       int64
	children []Dataset[T]
	// starts[i] is the index of child i's first partition; the final entry
	// is the total partition count.
	starts []int
}

// Concat creates the ordered concatenation of children.
func Concat[T any](children ...Dataset[T]) *Union[T] {
	starts := make([]int, len(children)+1)
	for i, c := range children {
		starts[i+1] = starts[i] + c.NumPartitions()
	}
	return &Union[T]{
		id:       NextID(),
		children: children,
		starts:   starts,
	}
}

// ID returns the dataset identity.
func (u *Union[T]) ID() int64 { return u.id }

// NumPartitions returns the total partition count across all children.
func (u *Union[T]) NumPartitions() int { return u.starts[len(u.children)] }

// Partition returns partition i, resolved to the owning child.
func (u *Union[T]) Partition(i int) []T {
	// Children are few; a linear probe beats binary search bookkeeping.
	for c := range u.children {
		if i < u.starts[c+1] {
			return u.children[c].Partition(i - u.starts[c])
		}
	}
	// Out of range; make the panic message match slice semantics.
	return u.children[len(u.children)-1].Partition(i - u.starts[len(u.children)-1])
}

// Children returns the child segments in partition order.
func (u *Union[T]) Children() []Segment {
	segs := make([]Segment, len(u.children))
	for i, c := range u.children {
		segs[i] = Segment{ID: c.ID(), NumPartitions: c.NumPartitions()}
	}
	return segs
}
