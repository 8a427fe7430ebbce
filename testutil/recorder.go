// Package testutil provides instrumented element policies shared by the
// container tests and benchmarks. This allows asserting the exact operation
// counts (constructions, relocations, assignments, destructions) and failure
// behavior the container contracts promise.
package testutil

import (
	"errors"

	"github.com/comalice/dynarrx"
)

// ErrInjected is the failure returned by a Recorder hook programmed to fail.
var ErrInjected = errors.New("testutil: injected failure")

// Counts tallies element-hook invocations.
type Counts struct {
	Defaults int
	Copies   int
	Moves    int
	Assigns  int
	Destroys int
	Allocs   int
}

// Recorder builds dynarrx Options whose hooks count every invocation and can
// be programmed to fail at the k-th call of a given kind (1-based, counted
// from the last Reset; 0 means never fail). The value semantics of the hooks
// are the trivial defaults, so element values behave like plain Go values.
type Recorder[T any] struct {
	Counts

	FailDefaultAt int
	FailCopyAt    int
	FailMoveAt    int
	FailAssignAt  int
	FailAllocAt   int
}

// Reset clears the counters; failure points are left untouched.
func (r *Recorder[T]) Reset() {
	r.Counts = Counts{}
}

// Options returns the instrumented element policy. nothrowMove declares
// whether the recorded move counts as non-failing for relocation-strategy
// selection; a Recorder with FailMoveAt set should pass false.
func (r *Recorder[T]) Options(nothrowMove bool) []dynarrx.Option[T] {
	return []dynarrx.Option[T]{
		dynarrx.WithDefault[T](func() (T, error) {
			r.Defaults++
			var zero T
			if r.FailDefaultAt != 0 && r.Defaults == r.FailDefaultAt {
				return zero, ErrInjected
			}
			return zero, nil
		}),
		dynarrx.WithCopy[T](func(v T) (T, error) {
			r.Copies++
			if r.FailCopyAt != 0 && r.Copies == r.FailCopyAt {
				var zero T
				return zero, ErrInjected
			}
			return v, nil
		}),
		dynarrx.WithMove[T](func(src *T) (T, error) {
			r.Moves++
			var zero T
			if r.FailMoveAt != 0 && r.Moves == r.FailMoveAt {
				return zero, ErrInjected
			}
			v := *src
			*src = zero
			return v, nil
		}, nothrowMove),
		dynarrx.WithAssign[T](func(dst *T, v T) error {
			r.Assigns++
			if r.FailAssignAt != 0 && r.Assigns == r.FailAssignAt {
				return ErrInjected
			}
			*dst = v
			return nil
		}),
		dynarrx.WithDestroy[T](func(p *T) {
			r.Destroys++
			var zero T
			*p = zero
		}),
		dynarrx.WithAlloc[T](func(n int) ([]T, error) {
			r.Allocs++
			if r.FailAllocAt != 0 && r.Allocs == r.FailAllocAt {
				return nil, ErrInjected
			}
			return make([]T, n), nil
		}),
	}
}

// NoCopyOptions returns the instrumented policy for a non-copyable element
// type: relocation must always move.
func (r *Recorder[T]) NoCopyOptions(nothrowMove bool) []dynarrx.Option[T] {
	return append(r.Options(nothrowMove), dynarrx.WithNoCopy[T]())
}
