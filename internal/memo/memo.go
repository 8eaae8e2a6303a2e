// Package memo provides the identity-keyed memoization store backing stats
// requests.
//
// The store guarantees at-most-once computation per identity: concurrent
// callers for the same identity collapse into a single execution and all
// observe the one stored value, while callers for different identities never
// contend. Values are type-erased in storage; lookups downcast with an
// explicit check.
//
// Entries are never evicted implicitly. Owners must call Invalidate when the
// engine reuses an identity for a different physical collection.
package memo

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"
	"resenje.org/singleflight"
)

// TypeMismatchError reports a lookup whose stored value does not have the
// element type the caller expects. This is a programmer error: two call
// sites disagree about the element type of the same collection identity.
type TypeMismatchError struct {
	ID   int64
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("memo: stats for id %d are %s, not %s", e.ID, e.Got, e.Want)
}

// Store is a concurrency-safe, identity-keyed memoization store.
// The zero value is not usable; construct with NewStore.
type Store struct {
	entries *xsync.Map[int64, any]
	group   singleflight.Group[int64, any]

	hits   atomic.Int64
	misses atomic.Int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entries: xsync.NewMap[int64, any](),
	}
}

// GetOrCompute returns the value stored under id, computing and storing it
// with compute on a miss. The boolean reports whether this call was served
// without executing compute (a cache hit, or a ride on another caller's
// in-flight computation). Concurrent callers with the same id run compute at
// most once between them; a failed compute stores nothing, so a later call
// retries.
func GetOrCompute[V any](ctx context.Context, s *Store, id int64, compute func(context.Context) (V, error)) (V, bool, error) {
	var zero V

	if v, ok := s.entries.Load(id); ok {
		s.hits.Add(1)
		return cast[V](id, v)
	}

	ran := false
	v, _, err := s.group.Do(ctx, id, func(ctx context.Context) (any, error) {
		// A compute that finished between the fast-path Load and joining the
		// flight must not run again.
		if v, ok := s.entries.Load(id); ok {
			return v, nil
		}
		ran = true
		s.misses.Add(1)
		val, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		actual, _ := s.entries.LoadOrStore(id, val)
		return actual, nil
	})
	if err != nil {
		return zero, false, err
	}
	out, _, err := cast[V](id, v)
	return out, !ran, err
}

// Seed stores v under id only if no value is present. It reports whether v
// was stored. Used to pre-populate derived results without disturbing
// entries a direct request already produced.
func Seed[V any](s *Store, id int64, v V) bool {
	_, loaded := s.entries.LoadOrStore(id, v)
	return !loaded
}

func cast[V any](id int64, v any) (V, bool, error) {
	out, ok := v.(V)
	if !ok {
		var zero V
		return zero, false, &TypeMismatchError{
			ID:   id,
			Want: fmt.Sprintf("%T", zero),
			Got:  fmt.Sprintf("%T", v),
		}
	}
	return out, true, nil
}

// Invalidate removes the entry for id, reporting whether one was present.
func (s *Store) Invalidate(id int64) bool {
	_, loaded := s.entries.LoadAndDelete(id)
	return loaded
}

// Reset removes all entries.
func (s *Store) Reset() {
	s.entries.Clear()
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return s.entries.Size()
}

// Keys returns the identities currently stored, in no particular order.
func (s *Store) Keys() []int64 {
	keys := make([]int64, 0, s.entries.Size())
	s.entries.Range(func(id int64, _ any) bool {
		keys = append(keys, id)
		return true
	})
	return keys
}

// Stats returns hit/miss counters. A hit is a lookup served from the map; a
// miss is a lookup that ran the compute function.
func (s *Store) Stats() (hits, misses int64) {
	return s.hits.Load(), s.misses.Load()
}
