package backend

import (
	"errors"
	"fmt"
)

// MaxLeafRange is the maximum number of leaves a single query may span.
// Requests spanning exactly this many indices or more are rejected before any
// leaf is fetched, bounding per-call work regardless of how the state engine
// is implemented.
const MaxLeafRange = 512

// RangeTooLargeError is a typed error returned when the requested span meets
// or exceeds MaxLeafRange. It carries the maximum for client diagnostics.
type RangeTooLargeError struct {
	Span uint64
	Max  uint64
}

func NewRangeTooLargeError(span uint64) error {
	return RangeTooLargeError{Span: span, Max: MaxLeafRange}
}

func (e RangeTooLargeError) Error() string {
	return fmt.Sprintf("requested leaf range (%d) exceeds maximum (%d)", e.Span, e.Max)
}

func IsRangeTooLargeError(err error) bool {
	var errRangeTooLarge RangeTooLargeError
	return errors.As(err, &errRangeTooLarge)
}

// InvalidRangeError is a typed error returned when the requested range is
// inverted (to < from). Inverted ranges are rejected explicitly rather than
// treated as empty, so a caller that mixed up its bounds hears about it.
type InvalidRangeError struct {
	From uint64
	To   uint64
}

func NewInvalidRangeError(from uint64, to uint64) error {
	return InvalidRangeError{From: from, To: to}
}

func (e InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid leaf range: from (%d) is greater than to (%d)", e.From, e.To)
}

func IsInvalidRangeError(err error) bool {
	var errInvalidRange InvalidRangeError
	return errors.As(err, &errInvalidRange)
}
