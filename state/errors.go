package state

import (
	"errors"
	"fmt"

	"github.com/merklequery/merkled/model/merkle"
)

// ErrUnknownSnapshot is a sentinel error returned when a snapshot reference
// does not resolve to any committed snapshot.
var ErrUnknownSnapshot = errors.New("unknown snapshot")

// InvalidExtensionError is a typed error returned when a candidate snapshot
// does not form a valid extension of the current state.
type InvalidExtensionError struct {
	err error
}

func NewInvalidExtensionErrorf(msg string, args ...interface{}) error {
	return InvalidExtensionError{
		err: fmt.Errorf(msg, args...),
	}
}

func (e InvalidExtensionError) Unwrap() error {
	return e.err
}

func (e InvalidExtensionError) Error() string {
	return e.err.Error()
}

func IsInvalidExtensionError(err error) bool {
	var errInvalidExtension InvalidExtensionError
	return errors.As(err, &errInvalidExtension)
}

// UnknownSnapshotError wraps ErrUnknownSnapshot with the reference that
// failed to resolve.
func UnknownSnapshotError(stateID merkle.StateID) error {
	return fmt.Errorf("state id %x: %w", stateID, ErrUnknownSnapshot)
}
