package dynarrx

import (
	"errors"
	"fmt"
)

// Failure taxonomy for fallible container operations. Both sentinels
// propagate to the caller wrapped with context; the container never logs,
// retries, or swallows them. Precondition violations (index out of range,
// PopBack on empty, Erase at End) are not errors — they are undefined
// behavior, checked only in builds carrying the "assert" tag.
var (
	// ErrAllocation reports that the raw-storage source refused a request.
	ErrAllocation = errors.New("dynarrx: allocation failure")

	// ErrElementConstruction reports that an element hook (default
	// construction, copy, move, or assignment) failed during a container
	// operation.
	ErrElementConstruction = errors.New("dynarrx: element construction failure")
)

func wrapAlloc(n int, err error) error {
	if errors.Is(err, ErrAllocation) {
		return err
	}
	return fmt.Errorf("%w: %d slots: %w", ErrAllocation, n, err)
}

func wrapConstruct(op string, err error) error {
	if errors.Is(err, ErrElementConstruction) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrElementConstruction, op, err)
}
