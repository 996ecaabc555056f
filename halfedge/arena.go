package halfedge

// slot is one arena cell: a value, its globally unique identifier assigned
// at creation (and preserved across compaction), and a tombstone bit.
type slot[V any] struct {
	id    uint64
	tomb  bool
	value V
}

// arena is an append-mostly store with lazy tombstone deletion and a free
// list of reusable indices, grounded on the original jjyouLib
// HalfedgeMesh<FP>'s per-kind vector-plus-removed-index-list pair.
type arena[V any] struct {
	slots []slot[V]
	free  []uint32
}

// createAppend appends a new slot, always growing the arena, and assigns
// it id.
func (a *arena[V]) createAppend(id uint64) uint32 {
	index := uint32(len(a.slots))
	var zero V
	a.slots = append(a.slots, slot[V]{id: id, value: zero})
	return index
}

// createReuse pops a freed index and reinitializes it if the free list is
// non-empty; otherwise it behaves exactly like createAppend.
func (a *arena[V]) createReuse(id uint64) uint32 {
	if n := len(a.free); n > 0 {
		index := a.free[n-1]
		a.free = a.free[:n-1]
		var zero V
		a.slots[index] = slot[V]{id: id, value: zero}
		return index
	}
	return a.createAppend(id)
}

// remove tombstones the slot at index and pushes it onto the free list.
// Reports false if index does not reference a live slot.
func (a *arena[V]) remove(index uint32) bool {
	if int(index) >= len(a.slots) || a.slots[index].tomb {
		return false
	}
	a.slots[index].tomb = true
	a.free = append(a.free, index)
	return true
}

// len reports the live slot count: total slots minus the free list size.
func (a *arena[V]) len() int {
	return len(a.slots) - len(a.free)
}

func (a *arena[V]) valid(index uint32) bool {
	return int(index) < len(a.slots) && !a.slots[index].tomb
}

func (a *arena[V]) get(index uint32) *V {
	return &a.slots[index].value
}

func (a *arena[V]) id(index uint32) uint64 {
	return a.slots[index].id
}

func (a *arena[V]) removed(index uint32) bool {
	return a.slots[index].tomb
}

func (a *arena[V]) reserve(n int) {
	if cap(a.slots) >= n {
		return
	}
	grown := make([]slot[V], len(a.slots), n)
	copy(grown, a.slots)
	a.slots = grown
}

func (a *arena[V]) reset() {
	a.slots = a.slots[:0]
	a.free = a.free[:0]
}
