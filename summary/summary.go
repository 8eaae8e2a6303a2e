// Package summary provides descriptive statistics over sequences of
// non-negative counts, such as per-partition sizes.
//
// Exact moments (count, sum, mean, standard deviation, min, max) are tracked
// directly; quantiles come from a DDSketch and are rank-approximate within
// the configured relative accuracy.
package summary

import (
	"errors"
	"math"

	"github.com/DataDog/sketches-go/ddsketch"
)

// RelativeAccuracy is the DDSketch relative accuracy used for quantiles.
const RelativeAccuracy = 0.01

// ErrNoValues is returned when a quantile is requested from an empty summary.
var ErrNoValues = errors.New("summary: no values")

// ErrInvalidQuantile is returned when q is outside [0, 1].
var ErrInvalidQuantile = errors.New("summary: quantile must be in [0, 1]")

// Summary holds descriptive statistics over a sequence of values.
// A Summary is immutable after construction except through Merge.
type Summary struct {
	Count  int64
	Sum    float64
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64

	sumSq  float64
	sketch *ddsketch.DDSketch
}

// Describe computes a Summary over values.
// An empty input yields a Summary with Count == 0 and zeroed moments.
func Describe(values []int64) *Summary {
	s := &Summary{}
	// Sketch construction only fails for an out-of-range accuracy; with the
	// package constant it cannot. A nil sketch degrades Quantile to an error.
	if sk, err := ddsketch.NewDefaultDDSketch(RelativeAccuracy); err == nil {
		s.sketch = sk
	}
	for _, v := range values {
		s.add(float64(v))
	}
	s.finalize()
	return s
}

func (s *Summary) add(v float64) {
	if s.Count == 0 || v < s.Min {
		s.Min = v
	}
	if s.Count == 0 || v > s.Max {
		s.Max = v
	}
	s.Count++
	s.Sum += v
	s.sumSq += v * v
	if s.sketch != nil {
		_ = s.sketch.Add(v)
	}
}

// finalize derives mean and population standard deviation from the moments.
func (s *Summary) finalize() {
	if s.Count == 0 {
		s.Mean, s.StdDev = 0, 0
		return
	}
	n := float64(s.Count)
	s.Mean = s.Sum / n
	variance := s.sumSq/n - s.Mean*s.Mean
	if variance < 0 {
		// Rounding can push the difference of near-equal terms below zero.
		variance = 0
	}
	s.StdDev = math.Sqrt(variance)
}

// Quantile returns the approximate q-quantile of the summarized values.
func (s *Summary) Quantile(q float64) (float64, error) {
	if q < 0 || q > 1 {
		return 0, ErrInvalidQuantile
	}
	if s.Count == 0 || s.sketch == nil {
		return 0, ErrNoValues
	}
	return s.sketch.GetValueAtQuantile(q)
}

// Merge folds other into s, as when combining per-worker partial summaries
// on a coordinator. The receiver is updated in place.
func (s *Summary) Merge(other *Summary) error {
	if other == nil || other.Count == 0 {
		return nil
	}
	if s.Count == 0 {
		s.Min, s.Max = other.Min, other.Max
	} else {
		s.Min = math.Min(s.Min, other.Min)
		s.Max = math.Max(s.Max, other.Max)
	}
	s.Count += other.Count
	s.Sum += other.Sum
	s.sumSq += other.sumSq
	if s.sketch != nil && other.sketch != nil {
		if err := s.sketch.MergeWith(other.sketch); err != nil {
			return err
		}
	}
	s.finalize()
	return nil
}
