package dynarrx

import (
	"iter"

	"github.com/comalice/dynarrx/internal/assert"
)

// Cursor is a position within an Array, an index-based stand-in for
// pointer iterators. Begin is position 0, End is one past the last live
// element. A Cursor is invalidated by any operation that reallocates or
// shifts elements; using an invalidated Cursor is undefined behavior,
// checked only in assert builds.
type Cursor[T any] struct {
	arr *Array[T]
	idx int
}

// Begin returns a cursor at the first live element (== End when empty).
func (a *Array[T]) Begin() Cursor[T] {
	return Cursor[T]{arr: a, idx: 0}
}

// End returns the one-past-the-end cursor. It is a valid insertion position
// but not dereferenceable.
func (a *Array[T]) End() Cursor[T] {
	return Cursor[T]{arr: a, idx: a.size}
}

// CursorAt returns a cursor at index i. Precondition: 0 <= i <= Len().
func (a *Array[T]) CursorAt(i int) Cursor[T] {
	assert.That(i >= 0 && i <= a.size, "dynarrx: cursor index out of range")
	return Cursor[T]{arr: a, idx: i}
}

// Index returns the position within the container.
func (c Cursor[T]) Index() int {
	return c.idx
}

// Valid reports whether the cursor is dereferenceable.
func (c Cursor[T]) Valid() bool {
	return c.arr != nil && c.idx >= 0 && c.idx < c.arr.size
}

// Value returns the element at the cursor. Precondition: dereferenceable.
func (c Cursor[T]) Value() T {
	assert.That(c.Valid(), "dynarrx: dereferencing invalid cursor")
	return *c.arr.block.At(c.idx)
}

// Ptr returns a pointer to the element at the cursor. Precondition:
// dereferenceable. The pointer is invalidated together with the cursor.
func (c Cursor[T]) Ptr() *T {
	assert.That(c.Valid(), "dynarrx: dereferencing invalid cursor")
	return c.arr.block.At(c.idx)
}

// Next returns the cursor advanced by one position.
func (c Cursor[T]) Next() Cursor[T] {
	return Cursor[T]{arr: c.arr, idx: c.idx + 1}
}

// Prev returns the cursor retreated by one position.
func (c Cursor[T]) Prev() Cursor[T] {
	return Cursor[T]{arr: c.arr, idx: c.idx - 1}
}

// All ranges over (index, value) pairs of the live elements, front to back.
// The container must not be mutated during iteration.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, *a.block.At(i)) {
				return
			}
		}
	}
}

// Values ranges over the live element values, front to back.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(*a.block.At(i)) {
				return
			}
		}
	}
}
