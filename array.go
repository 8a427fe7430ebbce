// Package dynarrx implements a generic, contiguous, resizable sequence
// container with value semantics and explicit control over raw storage.
//
// The container is built from two pieces: a raw storage block
// (internal/rawblock) that owns slot storage and tracks no element liveness,
// and Array, which owns one block plus a live-element count and performs all
// element construction and destruction inside it. Slots [0, Len()) hold live
// values; slots [Len(), Cap()) are raw and their contents unspecified.
//
// Every mutating operation documents its complexity and its failure-safety
// class. Operations that relocate elements choose between moving and copying
// once per operation, driven by the element Traits: move when the move is
// declared non-failing or when no copy is available, copy otherwise (the
// originals stay intact until every copy has succeeded). Failures surface as
// errors wrapping ErrAllocation or ErrElementConstruction; precondition
// violations are undefined behavior, checked only in assert builds.
//
// An Array must not be mutated concurrently; there is no internal
// synchronization.
package dynarrx

import (
	"github.com/comalice/dynarrx/internal/assert"
	"github.com/comalice/dynarrx/internal/rawblock"
)

// Array is a contiguous dynamic array of T.
//
// Invariant: 0 <= size <= capacity at every observable point, including
// after a failed mutating operation. The zero-value Array is not usable;
// construct with New, NewWithSize, or FromSlice.
type Array[T any] struct {
	block  rawblock.Block[T]
	size   int
	traits Traits[T]
}

// New returns an empty Array (size 0, capacity 0) with the element policy
// built from opts. O(1), never fails.
func New[T any](opts ...Option[T]) *Array[T] {
	t := defaultTraits[T]()
	for _, opt := range opts {
		opt(&t)
	}
	return &Array[T]{traits: t}
}

// NewWithSize returns an Array of exactly n default-constructed elements
// (size == capacity == n). O(n). If default construction fails partway, all
// elements constructed by this call are destroyed before the error
// propagates.
func NewWithSize[T any](n int, opts ...Option[T]) (*Array[T], error) {
	assert.That(n >= 0, "dynarrx: negative size")
	a := New[T](opts...)
	if n == 0 {
		return a, nil
	}
	blk, err := a.acquire(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		v, err := a.traits.construct()
		if err != nil {
			a.destroyRange(&blk, 0, i)
			blk.Release()
			return nil, wrapConstruct("default construction", err)
		}
		*blk.At(i) = v
	}
	a.block.MoveFrom(&blk)
	a.size = n
	return a, nil
}

// FromSlice returns an Array holding copies of vals, with capacity exactly
// len(vals). O(n), same partial-failure cleanup as NewWithSize.
func FromSlice[T any](vals []T, opts ...Option[T]) (*Array[T], error) {
	a := New[T](opts...)
	if len(vals) == 0 {
		return a, nil
	}
	blk, err := a.acquire(len(vals))
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		c, err := a.traits.copyOf(v)
		if err != nil {
			a.destroyRange(&blk, 0, i)
			blk.Release()
			return nil, wrapConstruct("copy construction", err)
		}
		*blk.At(i) = c
	}
	a.block.MoveFrom(&blk)
	a.size = len(vals)
	return a, nil
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	return a.size
}

// Cap returns the number of slots the owned block can hold.
func (a *Array[T]) Cap() int {
	return a.block.Cap()
}

// At returns the element at index i. Precondition: 0 <= i < Len().
func (a *Array[T]) At(i int) T {
	assert.That(i >= 0 && i < a.size, "dynarrx: index out of range")
	return *a.block.At(i)
}

// Ptr returns a pointer to the element at index i. Precondition:
// 0 <= i < Len(). The pointer is invalidated by reallocation.
func (a *Array[T]) Ptr(i int) *T {
	assert.That(i >= 0 && i < a.size, "dynarrx: index out of range")
	return a.block.At(i)
}

// Set assigns v over the live element at index i. Precondition:
// 0 <= i < Len().
func (a *Array[T]) Set(i int, v T) error {
	assert.That(i >= 0 && i < a.size, "dynarrx: index out of range")
	if err := a.traits.assign(a.block.At(i), v); err != nil {
		return wrapConstruct("assignment", err)
	}
	return nil
}

// Front returns the first element. Precondition: Len() > 0.
func (a *Array[T]) Front() T {
	assert.That(a.size > 0, "dynarrx: Front of empty array")
	return *a.block.At(0)
}

// Back returns the last element. Precondition: Len() > 0.
func (a *Array[T]) Back() T {
	assert.That(a.size > 0, "dynarrx: Back of empty array")
	return *a.block.At(a.size - 1)
}

// Slice returns the live-element range [0, Len()) as a contiguous slice,
// sharing storage with the container. It is invalidated by any mutation.
func (a *Array[T]) Slice() []T {
	if a.size == 0 {
		return nil
	}
	return a.block.Slice(0, a.size)
}

// Clone returns a value-semantics copy with capacity exactly Len() (no
// spare). O(n); if copying fails partway, everything constructed by this
// call is destroyed before the error propagates. The original is never
// affected.
func (a *Array[T]) Clone() (*Array[T], error) {
	dst := &Array[T]{traits: a.traits}
	if a.size == 0 {
		return dst, nil
	}
	blk, err := a.acquire(a.size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.size; i++ {
		c, err := a.traits.copyOf(*a.block.At(i))
		if err != nil {
			a.destroyRange(&blk, 0, i)
			blk.Release()
			return nil, wrapConstruct("copy construction", err)
		}
		*blk.At(i) = c
	}
	dst.block.MoveFrom(&blk)
	dst.size = a.size
	return dst, nil
}

// MoveFrom is move assignment: destroys a's current contents, adopts other's
// block, size, and traits, and leaves other empty (size 0, capacity 0).
// O(1) in relocations, never fails. Self-move is a no-op.
func (a *Array[T]) MoveFrom(other *Array[T]) {
	if a == other {
		return
	}
	a.destroyRange(&a.block, 0, a.size)
	a.block.MoveFrom(&other.block)
	a.size = other.size
	a.traits = other.traits
	other.size = 0
}

// Swap exchanges the contents (block, size, traits) of a and other.
// O(1), never fails.
func (a *Array[T]) Swap(other *Array[T]) {
	a.block.Swap(&other.block)
	a.size, other.size = other.size, a.size
	a.traits, other.traits = other.traits, a.traits
}

// Reserve ensures capacity for at least n elements. A no-op when
// n <= Cap(); otherwise allocates a fresh block of exactly n slots,
// relocates all live elements, destroys the originals, and adopts the new
// block. O(Len()). On failure the container is unchanged when relocation
// copies (element type copyable, move not declared non-failing); with a
// failing move it keeps the old block with moved-from values (basic
// guarantee).
func (a *Array[T]) Reserve(n int) error {
	if n <= a.Cap() {
		return nil
	}
	blk, err := a.acquire(n)
	if err != nil {
		return err
	}
	if err := a.relocateRange(&a.block, 0, a.size, &blk, 0); err != nil {
		blk.Release()
		return err
	}
	a.adopt(&blk)
	return nil
}

// Resize sets the live-element count to n. Shrinking destroys the trailing
// Len()-n elements, O(Len()-n). Growing reserves capacity if needed (O(Len())
// relocations) and default-constructs the trailing n-Len() elements,
// O(n-Len()); a construction failure destroys only the elements this call
// created, leaving the prior contents (though possibly an enlarged capacity)
// in place.
func (a *Array[T]) Resize(n int) error {
	assert.That(n >= 0, "dynarrx: negative size")
	switch {
	case n < a.size:
		a.destroyRange(&a.block, n, a.size)
		a.size = n
	case n > a.size:
		if err := a.Reserve(n); err != nil {
			return err
		}
		for i := a.size; i < n; i++ {
			v, err := a.traits.construct()
			if err != nil {
				a.destroyRange(&a.block, a.size, i)
				return wrapConstruct("default construction", err)
			}
			*a.block.At(i) = v
		}
		a.size = n
	}
	return nil
}

// PushBack appends a copy of v. Amortized O(1); growth allocates a fresh
// block of max(1, Cap()*2), constructs the new element into it first, then
// relocates the existing elements. Strong guarantee when the element move is
// non-failing or the type is copyable; basic otherwise.
func (a *Array[T]) PushBack(v T) error {
	_, err := a.EmplaceBack(func() (T, error) {
		return a.traits.copyOf(v)
	})
	return err
}

// EmplaceBack appends an element built by ctor directly in its final slot
// and returns a pointer to it. Same complexity and guarantees as PushBack.
func (a *Array[T]) EmplaceBack(ctor Constructor[T]) (*T, error) {
	if a.size == a.Cap() {
		blk, err := a.acquire(a.grownCapacity())
		if err != nil {
			return nil, err
		}
		v, err := ctor()
		if err != nil {
			blk.Release()
			return nil, wrapConstruct("emplace", err)
		}
		*blk.At(a.size) = v
		if err := a.relocateRange(&a.block, 0, a.size, &blk, 0); err != nil {
			a.traits.destroy(blk.At(a.size))
			blk.Release()
			return nil, err
		}
		a.adopt(&blk)
	} else {
		v, err := ctor()
		if err != nil {
			return nil, wrapConstruct("emplace", err)
		}
		*a.block.At(a.size) = v
	}
	a.size++
	return a.block.At(a.size - 1), nil
}

// PopBack destroys the last element. O(1), never fails.
// Precondition: Len() > 0.
func (a *Array[T]) PopBack() {
	assert.That(a.size > 0, "dynarrx: PopBack of empty array")
	a.traits.destroy(a.block.At(a.size - 1))
	a.size--
}

// Insert inserts a copy of v before pos and returns a cursor at the new
// element. Inserting at End is equivalent to PushBack. Precondition: pos
// belongs to this container and 0 <= pos.Index() <= Len().
func (a *Array[T]) Insert(pos Cursor[T], v T) (Cursor[T], error) {
	return a.Emplace(pos, func() (T, error) {
		return a.traits.copyOf(v)
	})
}

// Emplace inserts an element built by ctor before pos.
//
// At End it delegates to EmplaceBack. With reallocation, the new element is
// constructed directly into its final slot of a fresh block, then the prefix
// and suffix are relocated around it: exactly Len() relocations of existing
// elements plus one construction; on failure the originals are untouched
// when relocation copies (strong), or left moved-from when it moves (basic).
// Without reallocation, exactly End().Index()-pos.Index() existing elements
// shift one slot toward the end plus one move of the new value into place;
// this path offers the strong guarantee only up to the first mutation, and
// the basic guarantee once shifting has begun (a failing move or assignment
// mid-shift leaves valid but unspecified contents).
func (a *Array[T]) Emplace(pos Cursor[T], ctor Constructor[T]) (Cursor[T], error) {
	assert.That(pos.arr == a, "dynarrx: cursor from another container")
	assert.That(pos.idx >= 0 && pos.idx <= a.size, "dynarrx: insert position out of range")
	if pos.idx == a.size {
		if _, err := a.EmplaceBack(ctor); err != nil {
			return Cursor[T]{}, err
		}
		return Cursor[T]{arr: a, idx: a.size - 1}, nil
	}
	if a.size == a.Cap() {
		return a.emplaceWithRealloc(pos.idx, ctor)
	}
	return a.emplaceInPlace(pos.idx, ctor)
}

// Erase removes the element at pos, shifting every subsequent element down
// one slot by assignment: exactly one element destruction and exactly
// Len()-1-pos.Index() assignments. Returns a cursor at the element after the
// removed one. Precondition: pos is a valid, dereferenceable cursor into
// this container (not End).
func (a *Array[T]) Erase(pos Cursor[T]) (Cursor[T], error) {
	assert.That(pos.arr == a, "dynarrx: cursor from another container")
	assert.That(pos.idx >= 0 && pos.idx < a.size, "dynarrx: erase position out of range")
	for j := pos.idx; j < a.size-1; j++ {
		v, err := a.traits.moveOut(a.block.At(j + 1))
		if err != nil {
			return Cursor[T]{}, wrapConstruct("erase shift", err)
		}
		if err := a.traits.assign(a.block.At(j), v); err != nil {
			return Cursor[T]{}, wrapConstruct("erase shift", err)
		}
	}
	a.traits.destroy(a.block.At(a.size - 1))
	a.size--
	return Cursor[T]{arr: a, idx: pos.idx}, nil
}

// Assign is copy assignment: makes a's contents equal to rhs's without
// changing rhs. a keeps its own lifecycle hooks on every path; only the
// element values come from rhs. When rhs does not fit the current capacity,
// a full copy is built first and swapped in (strong guarantee via
// copy-and-swap). Otherwise existing storage is reused: the overlapping
// prefix is assigned element by element, then the remaining tail is
// copy-constructed (rhs longer) or the excess destroyed (rhs shorter) —
// basic guarantee on this path. O(max(Len(), rhs.Len())).
// Self-assignment is a no-op.
func (a *Array[T]) Assign(rhs *Array[T]) error {
	if a == rhs {
		return nil
	}
	if rhs.size > a.Cap() {
		blk, err := a.acquire(rhs.size)
		if err != nil {
			return err
		}
		for i := 0; i < rhs.size; i++ {
			c, err := a.traits.copyOf(*rhs.block.At(i))
			if err != nil {
				a.destroyRange(&blk, 0, i)
				blk.Release()
				return wrapConstruct("copy construction", err)
			}
			*blk.At(i) = c
		}
		a.adopt(&blk)
		a.size = rhs.size
		return nil
	}
	common := min(a.size, rhs.size)
	for i := 0; i < common; i++ {
		if err := a.traits.assign(a.block.At(i), *rhs.block.At(i)); err != nil {
			return wrapConstruct("copy assignment", err)
		}
	}
	switch {
	case rhs.size > a.size:
		for i := a.size; i < rhs.size; i++ {
			c, err := a.traits.copyOf(*rhs.block.At(i))
			if err != nil {
				a.destroyRange(&a.block, a.size, i)
				return wrapConstruct("copy construction", err)
			}
			*a.block.At(i) = c
		}
		a.size = rhs.size
	case rhs.size < a.size:
		a.destroyRange(&a.block, rhs.size, a.size)
		a.size = rhs.size
	}
	return nil
}

// Destroy ends the lifetime of every live element and releases the block,
// returning the Array to the empty state. O(Len()), never fails, idempotent.
// The Array remains usable afterwards.
func (a *Array[T]) Destroy() {
	a.destroyRange(&a.block, 0, a.size)
	a.size = 0
	a.block.Release()
}

//
// Internal helpers
//

// grownCapacity is the doubling policy: the first growth from empty yields
// capacity 1, every later growth exactly doubles.
func (a *Array[T]) grownCapacity() int {
	c := a.Cap() * 2
	if c == 0 {
		c = 1
	}
	return c
}

func (a *Array[T]) acquire(n int) (rawblock.Block[T], error) {
	blk, err := rawblock.Acquire(n, a.traits.Alloc)
	if err != nil {
		return rawblock.Block[T]{}, wrapAlloc(n, err)
	}
	return blk, nil
}

// adopt destroys the originals, swaps the freshly populated block in, and
// drops the old storage. Callers have already relocated all live elements
// into blk.
func (a *Array[T]) adopt(blk *rawblock.Block[T]) {
	a.destroyRange(&a.block, 0, a.size)
	a.block.Swap(blk)
	blk.Release()
}

func (a *Array[T]) destroyRange(blk *rawblock.Block[T], lo, hi int) {
	for i := lo; i < hi; i++ {
		a.traits.destroy(blk.At(i))
	}
}

// relocateRange constructs the n elements at from[fromOff:] into
// to[toOff:], moving or copying per the relocation policy. On failure it
// destroys only what it constructed in the destination and returns the
// error; the source range is never destroyed here. On the copy path the
// source is untouched until every copy has succeeded, which is what lets
// callers offer the strong guarantee.
func (a *Array[T]) relocateRange(from *rawblock.Block[T], fromOff, n int, to *rawblock.Block[T], toOff int) error {
	if a.traits.relocateByMove() {
		for i := 0; i < n; i++ {
			v, err := a.traits.moveOut(from.At(fromOff + i))
			if err != nil {
				a.destroyRange(to, toOff, toOff+i)
				return wrapConstruct("relocation (move)", err)
			}
			*to.At(toOff + i) = v
		}
		return nil
	}
	for i := 0; i < n; i++ {
		v, err := a.traits.copyOf(*from.At(fromOff + i))
		if err != nil {
			a.destroyRange(to, toOff, toOff+i)
			return wrapConstruct("relocation (copy)", err)
		}
		*to.At(toOff + i) = v
	}
	return nil
}

func (a *Array[T]) emplaceWithRealloc(idx int, ctor Constructor[T]) (Cursor[T], error) {
	blk, err := a.acquire(a.grownCapacity())
	if err != nil {
		return Cursor[T]{}, err
	}
	v, err := ctor()
	if err != nil {
		blk.Release()
		return Cursor[T]{}, wrapConstruct("emplace", err)
	}
	*blk.At(idx) = v
	if err := a.relocateRange(&a.block, 0, idx, &blk, 0); err != nil {
		a.traits.destroy(blk.At(idx))
		blk.Release()
		return Cursor[T]{}, err
	}
	if err := a.relocateRange(&a.block, idx, a.size-idx, &blk, idx+1); err != nil {
		a.destroyRange(&blk, 0, idx+1)
		blk.Release()
		return Cursor[T]{}, err
	}
	a.adopt(&blk)
	a.size++
	return Cursor[T]{arr: a, idx: idx}, nil
}

func (a *Array[T]) emplaceInPlace(idx int, ctor Constructor[T]) (Cursor[T], error) {
	tmp, err := ctor()
	if err != nil {
		// Nothing mutated yet: strong.
		return Cursor[T]{}, wrapConstruct("emplace", err)
	}
	last, err := a.traits.moveOut(a.block.At(a.size - 1))
	if err != nil {
		a.traits.destroy(&tmp)
		return Cursor[T]{}, wrapConstruct("emplace shift", err)
	}
	// The slot past the last element is raw; constructing into it first makes
	// room, then the range [idx, size-1) shifts one slot right.
	*a.block.At(a.size) = last
	a.size++
	for j := a.size - 2; j > idx; j-- {
		v, err := a.traits.moveOut(a.block.At(j - 1))
		if err != nil {
			a.traits.destroy(&tmp)
			return Cursor[T]{}, wrapConstruct("emplace shift", err)
		}
		if err := a.traits.assign(a.block.At(j), v); err != nil {
			a.traits.destroy(&tmp)
			return Cursor[T]{}, wrapConstruct("emplace shift", err)
		}
	}
	if err := a.traits.assign(a.block.At(idx), tmp); err != nil {
		a.traits.destroy(&tmp)
		return Cursor[T]{}, wrapConstruct("emplace", err)
	}
	return Cursor[T]{arr: a, idx: idx}, nil
}
