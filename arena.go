package digitring

// nodeIndex addresses a slot within a ring's arena.
type nodeIndex int32

// none marks a missing link or an unallocated reference.
const none nodeIndex = -1

// slot is one digit node: a nibble value and index links to its ring
// neighbors. Freed slots chain through next to form the free list.
type slot struct {
	value byte
	next  nodeIndex
	prev  nodeIndex
}

// arena stores ring nodes in a growable slot slice linked by index instead
// of by pointer. Removal pushes the slot onto a free list so subsequent
// allocations reuse it; there are no pointer cycles to collect.
type arena struct {
	slots []slot
	free  nodeIndex // head of the free list, chained through slot.next
	live  int
}

// alloc returns the index of a slot holding v, reusing a freed slot when
// one is available. The slot's links are initialized to none.
func (a *arena) alloc(v byte) nodeIndex {
	a.live++
	if a.free != none {
		i := a.free
		a.free = a.slots[i].next
		a.slots[i] = slot{value: v, next: none, prev: none}
		return i
	}
	a.slots = append(a.slots, slot{value: v, next: none, prev: none})
	return nodeIndex(len(a.slots) - 1)
}

// release returns slot i to the free list. The slot's value is not cleared;
// it becomes meaningless until the slot is reallocated.
func (a *arena) release(i nodeIndex) {
	a.slots[i].next = a.free
	a.slots[i].prev = none
	a.free = i
	a.live--
}

// at returns the slot at index i. The index must have come from alloc and
// not yet been released.
func (a *arena) at(i nodeIndex) *slot {
	return &a.slots[i]
}

// reset discards every slot, live or free, in O(1).
func (a *arena) reset() {
	a.slots = a.slots[:0]
	a.free = none
	a.live = 0
}

// newArena creates an empty arena.
func newArena() arena {
	return arena{free: none}
}
