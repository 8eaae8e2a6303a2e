package partstat

import (
	"errors"
	"fmt"

	"github.com/partstat/partstat/internal/memo"
)

var (
	// ErrNilDataset is returned when a stats request names no dataset.
	ErrNilDataset = errors.New("dataset must not be nil")

	// ErrNilOrdering is returned when a stats request carries no ordering.
	ErrNilOrdering = errors.New("ordering must not be nil")

	// ErrTypeMismatch is returned when cached stats for an identity were
	// computed for a different element type than the caller expects. This is
	// a programmer error: two call sites disagree about the element type of
	// the same dataset.
	ErrTypeMismatch = errors.New("cached stats element type mismatch")
)

// translateError converts internal errors into the public error contract.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var tme *memo.TypeMismatchError
	if errors.As(err, &tme) {
		return fmt.Errorf("%w: %w", ErrTypeMismatch, err)
	}

	return err
}
