package dynarrx

import (
	"fmt"

	"github.com/comalice/dynarrx/internal/rawblock"
)

// Constructor builds one element value directly at its destination slot,
// so Emplace-style operations avoid a separate construct-then-copy step.
// A failed Constructor aborts the enclosing operation with
// ErrElementConstruction.
type Constructor[T any] func() (T, error)

// Traits is the element capability policy an Array is instantiated with:
// which lifecycle operations the element type supports and whether its move
// is guaranteed not to fail. The relocation strategy (move vs copy) and the
// exception-safety class of every mutating operation follow from it.
//
// The zero value is not usable; New fills in trivial, never-failing defaults
// suitable for plain value types and applies Options on top.
type Traits[T any] struct {
	// Default produces a default-constructed element.
	Default func() (T, error)
	// Copy produces an independent copy of an element. nil means the
	// element type is not copyable; relocation then always moves.
	Copy func(T) (T, error)
	// Move transfers the value out of *src, leaving *src in a destroyed,
	// reusable state.
	Move func(src *T) (T, error)
	// Assign overwrites an existing live element with v.
	Assign func(dst *T, v T) error
	// Destroy ends the element's lifetime. Vacated slots must not keep
	// element values (or references held by them) alive, so the default
	// zeroes the slot. Never fails.
	Destroy func(p *T)
	// NothrowMove declares that Move never fails. Together with Copy == nil
	// it selects the move path of the relocation policy.
	NothrowMove bool
	// Alloc supplies raw slot storage. nil uses make, which does not fail.
	Alloc rawblock.AllocFunc[T]
}

// relocateByMove reports whether relocation uses Move: either the move is
// declared non-failing, or moving is the only option because the element
// type has no copy.
func (t *Traits[T]) relocateByMove() bool {
	return t.NothrowMove || t.Copy == nil
}

func (t *Traits[T]) construct() (T, error) {
	return t.Default()
}

func (t *Traits[T]) copyOf(v T) (T, error) {
	if t.Copy == nil {
		var zero T
		return zero, fmt.Errorf("%w: element type is not copyable", ErrElementConstruction)
	}
	return t.Copy(v)
}

func (t *Traits[T]) moveOut(src *T) (T, error) {
	return t.Move(src)
}

func (t *Traits[T]) assign(dst *T, v T) error {
	return t.Assign(dst, v)
}

func (t *Traits[T]) destroy(p *T) {
	t.Destroy(p)
}

func defaultTraits[T any]() Traits[T] {
	return Traits[T]{
		Default: func() (T, error) {
			var zero T
			return zero, nil
		},
		Copy: func(v T) (T, error) {
			return v, nil
		},
		Move: func(src *T) (T, error) {
			v := *src
			var zero T
			*src = zero
			return v, nil
		},
		Assign: func(dst *T, v T) error {
			*dst = v
			return nil
		},
		Destroy: func(p *T) {
			var zero T
			*p = zero
		},
		NothrowMove: true,
	}
}

// Option configures the Traits of a new Array.
type Option[T any] func(*Traits[T])

// WithDefault overrides default construction.
func WithDefault[T any](fn func() (T, error)) Option[T] {
	return func(t *Traits[T]) {
		t.Default = fn
	}
}

// WithCopy overrides copy construction.
func WithCopy[T any](fn func(T) (T, error)) Option[T] {
	return func(t *Traits[T]) {
		t.Copy = fn
	}
}

// WithNoCopy declares the element type non-copyable. Operations that need a
// copy (Clone, PushBack, copy assignment into a shorter container) fail with
// ErrElementConstruction, and relocation always moves.
func WithNoCopy[T any]() Option[T] {
	return func(t *Traits[T]) {
		t.Copy = nil
	}
}

// WithMove overrides move construction. nothrow declares whether the move is
// guaranteed not to fail; a false value downgrades relocating operations to
// the basic guarantee unless the element type is copyable.
func WithMove[T any](fn func(*T) (T, error), nothrow bool) Option[T] {
	return func(t *Traits[T]) {
		t.Move = fn
		t.NothrowMove = nothrow
	}
}

// WithAssign overrides element assignment.
func WithAssign[T any](fn func(*T, T) error) Option[T] {
	return func(t *Traits[T]) {
		t.Assign = fn
	}
}

// WithDestroy overrides element destruction.
func WithDestroy[T any](fn func(*T)) Option[T] {
	return func(t *Traits[T]) {
		t.Destroy = fn
	}
}

// WithAlloc overrides the raw-storage source.
func WithAlloc[T any](fn rawblock.AllocFunc[T]) Option[T] {
	return func(t *Traits[T]) {
		t.Alloc = fn
	}
}

// WithCapacityLimit refuses storage requests above limit slots with
// ErrAllocation, on top of whatever Alloc is configured at this point.
// Primarily used to exercise allocation-failure paths.
func WithCapacityLimit[T any](limit int) Option[T] {
	return func(t *Traits[T]) {
		base := t.Alloc
		t.Alloc = func(n int) ([]T, error) {
			if n > limit {
				return nil, fmt.Errorf("%w: request for %d slots exceeds limit %d", ErrAllocation, n, limit)
			}
			if base == nil {
				return make([]T, n), nil
			}
			return base(n)
		}
	}
}
