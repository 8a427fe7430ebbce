package dynarrx_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/comalice/dynarrx"
	"github.com/comalice/dynarrx/testutil"
)

func TestAssignLargerRebuilds(t *testing.T) {
	dst, err := dynarrx.FromSlice([]int{9, 9})
	if err != nil {
		t.Fatal(err)
	}
	rhs, err := dynarrx.FromSlice([]int{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatal(err)
	}

	if err := dst.Assign(rhs); err != nil {
		t.Fatal(err)
	}
	if got := dst.Slice(); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("dst = %v", got)
	}
	// Copy-and-swap builds a copy with no spare capacity.
	if dst.Cap() != 5 {
		t.Errorf("dst Cap = %d, want 5", dst.Cap())
	}
	// rhs untouched.
	if got := rhs.Slice(); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("rhs = %v", got)
	}
}

// The rebuild path must not adopt rhs's lifecycle hooks: the destination's
// own copy/alloc hooks build the new block, and its policy (here a capacity
// limit) survives the assignment.
func TestAssignRebuildKeepsOwnLifecycleHooks(t *testing.T) {
	var r testutil.Recorder[int]
	opts := append(r.Options(true), dynarrx.WithCapacityLimit[int](4))
	dst, err := dynarrx.FromSlice([]int{9, 9}, opts...)
	if err != nil {
		t.Fatal(err)
	}
	rhs, err := dynarrx.FromSlice([]int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	r.Reset()

	if err := dst.Assign(rhs); err != nil {
		t.Fatal(err)
	}
	if got := dst.Slice(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("dst = %v", got)
	}
	// dst's hooks did the work: one allocation, three copies, two destroys
	// of the old contents.
	if r.Allocs != 1 || r.Copies != 3 || r.Destroys != 2 {
		t.Errorf("Allocs/Copies/Destroys = %d/%d/%d, want 1/3/2",
			r.Allocs, r.Copies, r.Destroys)
	}
	// dst's capacity limit is still in force after the rebuild.
	if err := dst.Reserve(10); !errors.Is(err, dynarrx.ErrAllocation) {
		t.Errorf("Reserve(10) error = %v, want ErrAllocation", err)
	}
	// An oversized rhs hits the limit instead of silently adopting rhs's
	// unlimited allocator.
	big, err := dynarrx.FromSlice([]int{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatal(err)
	}
	if err := dst.Assign(big); !errors.Is(err, dynarrx.ErrAllocation) {
		t.Errorf("Assign oversized error = %v, want ErrAllocation", err)
	}
	if got := dst.Slice(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("dst after failed Assign = %v, want unchanged", got)
	}
}

func TestAssignShorterReusesStorage(t *testing.T) {
	var r testutil.Recorder[int]
	dst, err := dynarrx.FromSlice([]int{1, 2, 3, 4, 5}, r.Options(true)...)
	if err != nil {
		t.Fatal(err)
	}
	rhs, err := dynarrx.FromSlice([]int{7, 8}, r.Options(true)...)
	if err != nil {
		t.Fatal(err)
	}
	r.Reset()

	if err := dst.Assign(rhs); err != nil {
		t.Fatal(err)
	}
	if got := dst.Slice(); !slices.Equal(got, []int{7, 8}) {
		t.Errorf("dst = %v", got)
	}
	if dst.Cap() != 5 {
		t.Errorf("dst Cap = %d, want 5 (storage reused)", dst.Cap())
	}
	if r.Assigns != 2 {
		t.Errorf("Assigns = %d, want 2 (overlapping prefix)", r.Assigns)
	}
	if r.Destroys != 3 {
		t.Errorf("Destroys = %d, want 3 (excess tail)", r.Destroys)
	}
	if r.Allocs != 0 {
		t.Errorf("Allocs = %d, want 0", r.Allocs)
	}
}

func TestAssignLongerWithinCapacity(t *testing.T) {
	var r testutil.Recorder[int]
	dst, err := dynarrx.FromSlice([]int{9, 9}, r.Options(true)...)
	if err != nil {
		t.Fatal(err)
	}
	if err := dst.Reserve(6); err != nil {
		t.Fatal(err)
	}
	rhs, err := dynarrx.FromSlice([]int{1, 2, 3, 4}, r.Options(true)...)
	if err != nil {
		t.Fatal(err)
	}
	r.Reset()

	if err := dst.Assign(rhs); err != nil {
		t.Fatal(err)
	}
	if got := dst.Slice(); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("dst = %v", got)
	}
	if dst.Cap() != 6 {
		t.Errorf("dst Cap = %d, want 6 (storage reused)", dst.Cap())
	}
	if r.Assigns != 2 {
		t.Errorf("Assigns = %d, want 2 (overlapping prefix)", r.Assigns)
	}
	if r.Copies != 2 {
		t.Errorf("Copies = %d, want 2 (constructed tail)", r.Copies)
	}
}

func TestAssignSelf(t *testing.T) {
	var r testutil.Recorder[int]
	arr, err := dynarrx.FromSlice([]int{1, 2, 3}, r.Options(true)...)
	if err != nil {
		t.Fatal(err)
	}
	capBefore := arr.Cap()
	r.Reset()

	if err := arr.Assign(arr); err != nil {
		t.Fatal(err)
	}
	if got := arr.Slice(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("contents changed on self-assign: %v", got)
	}
	if arr.Cap() != capBefore {
		t.Errorf("Cap changed on self-assign: %d -> %d", capBefore, arr.Cap())
	}
	if r.Counts != (testutil.Counts{}) {
		t.Errorf("self-assign did work: %+v", r.Counts)
	}
}

func TestAssignFromEmpty(t *testing.T) {
	dst, err := dynarrx.FromSlice([]int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if err := dst.Assign(dynarrx.New[int]()); err != nil {
		t.Fatal(err)
	}
	if dst.Len() != 0 {
		t.Errorf("Len = %d, want 0", dst.Len())
	}
	if dst.Cap() != 3 {
		t.Errorf("Cap = %d, want 3 (storage kept)", dst.Cap())
	}
}

func TestAssignEqualSizes(t *testing.T) {
	dst, err := dynarrx.FromSlice([]int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	rhs, err := dynarrx.FromSlice([]int{4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}
	if err := dst.Assign(rhs); err != nil {
		t.Fatal(err)
	}
	if got := dst.Slice(); !slices.Equal(got, []int{4, 5, 6}) {
		t.Errorf("dst = %v", got)
	}
}
