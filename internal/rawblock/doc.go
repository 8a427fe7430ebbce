// Package rawblock provides the raw-storage primitive underneath the
// dynarrx container.
//
// A Block owns a single contiguous region sized for a fixed number of
// element slots. It deliberately knows nothing about which slots hold live
// values: liveness bookkeeping belongs to the owning container, never to the
// storage. For the same reason a Block cannot be copied — a byte-for-byte
// duplicate is meaningless without a live-element count — but it can be
// swapped and moved in O(1), and both of those never fail.
//
// Core invariants:
//   - capacity == 0 implies no backing storage
//   - slot contents are never read, written, or cleared by this package
//   - ownership transfer (MoveFrom, Swap) is constant time
package rawblock
