package halfedge

import "testing"

func TestArenaCreateAppend(t *testing.T) {
	var a arena[int]
	i0 := a.createAppend(1)
	i1 := a.createAppend(2)
	if i0 != 0 || i1 != 1 {
		t.Fatalf("createAppend indices = %d, %d, want 0, 1", i0, i1)
	}
	if a.len() != 2 {
		t.Errorf("len() = %d, want 2", a.len())
	}
}

func TestArenaRemoveAndReuse(t *testing.T) {
	var a arena[int]
	i0 := a.createAppend(1)
	a.createAppend(2)

	if !a.remove(i0) {
		t.Fatal("remove() on live slot returned false")
	}
	if a.len() != 1 {
		t.Errorf("len() after remove = %d, want 1", a.len())
	}
	if a.remove(i0) {
		t.Error("remove() on already-tombstoned slot returned true, want false")
	}

	reused := a.createReuse(3)
	if reused != i0 {
		t.Errorf("createReuse() = %d, want reused index %d", reused, i0)
	}
	if a.len() != 2 {
		t.Errorf("len() after reuse = %d, want 2", a.len())
	}
	if a.id(reused) != 3 {
		t.Errorf("id() of reused slot = %d, want 3 (monotonic, never reused)", a.id(reused))
	}
}

func TestArenaRemoveOutOfRange(t *testing.T) {
	var a arena[int]
	a.createAppend(1)
	if a.remove(99) {
		t.Error("remove() of out-of-range index returned true, want false")
	}
}

func TestArenaCreateReuseWithoutFreeList(t *testing.T) {
	var a arena[int]
	idx := a.createReuse(1)
	if idx != 0 {
		t.Errorf("createReuse() with empty free list = %d, want 0 (append behavior)", idx)
	}
}
