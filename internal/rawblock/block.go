package rawblock

import (
	"github.com/comalice/dynarrx/internal/assert"
)

// AllocFunc requests backing storage for n element slots. Implementations
// return a slice of length exactly n, or an error when the request cannot be
// satisfied. The returned slice is owned exclusively by the acquiring Block.
type AllocFunc[T any] func(n int) ([]T, error)

// Block owns a storage region for up to Cap() elements of type T.
// The zero Block is the valid empty state (no storage, capacity 0).
//
// Block values are moved, never copied: use MoveFrom or Swap to transfer
// ownership. Passing a Block by value aliases the region and breaks the
// exclusive-ownership contract.
type Block[T any] struct {
	buf []T // len(buf) == capacity; nil when capacity == 0
}

// Acquire requests storage for capacity element slots via alloc.
// A nil alloc uses the default source (make), which does not fail.
// capacity == 0 deterministically yields the empty Block without touching
// the allocation source.
func Acquire[T any](capacity int, alloc AllocFunc[T]) (Block[T], error) {
	assert.That(capacity >= 0, "rawblock: negative capacity")
	if capacity == 0 {
		return Block[T]{}, nil
	}
	if alloc == nil {
		return Block[T]{buf: make([]T, capacity)}, nil
	}
	buf, err := alloc(capacity)
	if err != nil {
		return Block[T]{}, err
	}
	assert.That(len(buf) == capacity, "rawblock: alloc returned wrong slot count")
	return Block[T]{buf: buf}, nil
}

// Cap returns the number of element slots the region can hold.
func (b *Block[T]) Cap() int {
	return len(b.buf)
}

// IsEmpty reports whether the Block is in the empty state.
func (b *Block[T]) IsEmpty() bool {
	return b.buf == nil
}

// At returns a typed pointer to slot i. Precondition: 0 <= i < Cap().
func (b *Block[T]) At(i int) *T {
	assert.That(i >= 0 && i < len(b.buf), "rawblock: slot index out of range")
	return &b.buf[i]
}

// Slice returns the slot range [lo, hi) as a slice. Cap() is a valid
// one-past-end bound. Precondition: 0 <= lo <= hi <= Cap().
func (b *Block[T]) Slice(lo, hi int) []T {
	assert.That(lo >= 0 && lo <= hi && hi <= len(b.buf), "rawblock: slot range out of bounds")
	return b.buf[lo:hi:hi]
}

// Swap exchanges the owned regions of b and other in O(1). Never fails.
func (b *Block[T]) Swap(other *Block[T]) {
	b.buf, other.buf = other.buf, b.buf
}

// MoveFrom releases b's current region and takes ownership of other's,
// leaving other in the empty state. O(1), never fails. Self-move is a no-op.
func (b *Block[T]) MoveFrom(other *Block[T]) {
	if b == other {
		return
	}
	b.buf = other.buf
	other.buf = nil
}

// Release gives the region back without touching any contained values.
// Destroying live elements first is the owner's responsibility. The Block
// returns to the empty state; releasing an empty Block is a no-op.
func (b *Block[T]) Release() {
	b.buf = nil
}
