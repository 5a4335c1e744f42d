package digitring

// Ring is a circular doubly linked list of digit values (nibbles, 0-15)
// together with a radix tag saying whether those digits should be read as
// base 10 or base 16 when the ring is interpreted as a number.
//
// Nodes live in an index-linked arena rather than behind raw pointers, so
// the cycle has no pointer loops and clearing is O(1). The head index names
// the most significant digit; the node before head in cycle order is the
// least significant.
//
// A Ring is not safe for concurrent use. Node relinking is not atomic, so
// callers sharing a ring across goroutines must serialize access
// externally.
type Ring struct {
	arena arena
	head  nodeIndex
	size  int
	radix int
}

// DefaultRadix is the radix tag assigned to freshly constructed and
// cleared rings.
const DefaultRadix = 10

// HexRadix is the radix tag assigned to rings produced by ChangeScale.
const HexRadix = 16

// New returns an empty ring with the default decimal radix tag.
func New() *Ring {
	return &Ring{arena: newArena(), head: none, radix: DefaultRadix}
}

// Len returns the number of digits in the ring.
func (r *Ring) Len() int {
	return r.size
}

// IsEmpty reports whether the ring has no digits.
func (r *Ring) IsEmpty() bool {
	return r.size == 0
}

// Radix returns the ring's radix tag, 10 or 16.
func (r *Ring) Radix() int {
	return r.radix
}

// Append inserts v as the new last digit, just before head in cycle order.
// O(1). On an empty ring the new node becomes head and links to itself in
// both directions.
func (r *Ring) Append(v byte) {
	n := r.arena.alloc(v)
	if r.head == none {
		r.arena.at(n).next = n
		r.arena.at(n).prev = n
		r.head = n
	} else {
		tail := r.arena.at(r.head).prev
		r.arena.at(tail).next = n
		r.arena.at(n).prev = tail
		r.arena.at(n).next = r.head
		r.arena.at(r.head).prev = n
	}
	r.size++
}

// InsertAt splices v in before the digit currently at index i, so that the
// new digit occupies index i. i == Len() appends. Returns
// ErrIndexOutOfRange when i is outside [0, Len()].
func (r *Ring) InsertAt(i int, v byte) error {
	if i < 0 || i > r.size {
		return ErrIndexOutOfRange
	}
	if i == r.size {
		r.Append(v)
		return nil
	}
	at := r.slotAt(i)
	prev := r.arena.at(at).prev
	n := r.arena.alloc(v)
	r.arena.at(prev).next = n
	r.arena.at(n).prev = prev
	r.arena.at(n).next = at
	r.arena.at(at).prev = n
	if i == 0 {
		r.head = n
	}
	r.size++
	return nil
}

// Get returns the digit at index i.
func (r *Ring) Get(i int) (byte, error) {
	if i < 0 || i >= r.size {
		return 0, ErrIndexOutOfRange
	}
	return r.arena.at(r.slotAt(i)).value, nil
}

// Set replaces the digit at index i with v and returns the old value.
func (r *Ring) Set(i int, v byte) (byte, error) {
	if i < 0 || i >= r.size {
		return 0, ErrIndexOutOfRange
	}
	s := r.arena.at(r.slotAt(i))
	old := s.value
	s.value = v
	return old, nil
}

// RemoveAt unlinks the digit at index i and returns its value. Removing the
// only digit empties the ring; removing the head advances head to its
// successor.
func (r *Ring) RemoveAt(i int) (byte, error) {
	if i < 0 || i >= r.size {
		return 0, ErrIndexOutOfRange
	}
	n := r.slotAt(i)
	v := r.arena.at(n).value
	r.unlink(n)
	return v, nil
}

// RemoveValue unlinks the first digit equal to v, scanning from head.
// It reports whether a digit was removed.
func (r *Ring) RemoveValue(v byte) bool {
	if r.size == 0 {
		return false
	}
	n := r.head
	for i := 0; i < r.size; i++ {
		if r.arena.at(n).value == v {
			r.unlink(n)
			return true
		}
		n = r.arena.at(n).next
	}
	return false
}

// unlink removes node n from the cycle and releases its slot.
func (r *Ring) unlink(n nodeIndex) {
	if r.size == 1 {
		r.head = none
	} else {
		s := r.arena.at(n)
		r.arena.at(s.prev).next = s.next
		r.arena.at(s.next).prev = s.prev
		if n == r.head {
			r.head = s.next
		}
	}
	r.arena.release(n)
	r.size--
}

// Contains reports whether some digit equals v.
func (r *Ring) Contains(v byte) bool {
	return r.IndexOf(v) >= 0
}

// IndexOf returns the index of the first digit equal to v, or -1.
func (r *Ring) IndexOf(v byte) int {
	n := r.head
	for i := 0; i < r.size; i++ {
		if r.arena.at(n).value == v {
			return i
		}
		n = r.arena.at(n).next
	}
	return -1
}

// LastIndexOf returns the index of the last digit equal to v, or -1. It
// scans backward from the tail.
func (r *Ring) LastIndexOf(v byte) int {
	if r.size == 0 {
		return -1
	}
	n := r.arena.at(r.head).prev
	for i := r.size - 1; i >= 0; i-- {
		if r.arena.at(n).value == v {
			return i
		}
		n = r.arena.at(n).prev
	}
	return -1
}

// Swap exchanges the values at indices i and j, leaving the nodes in
// place. It reports success: false means an index was out of range and the
// ring was not touched. Swapping an index with itself succeeds as a no-op.
func (r *Ring) Swap(i, j int) bool {
	if i < 0 || i >= r.size || j < 0 || j >= r.size {
		return false
	}
	if i == j {
		return true
	}
	a := r.arena.at(r.slotAt(i))
	b := r.arena.at(r.slotAt(j))
	a.value, b.value = b.value, a.value
	return true
}

// SortAscending reorders the ring's values into non-decreasing order.
// Values move between nodes; the nodes themselves stay linked as they are.
func (r *Ring) SortAscending() {
	r.bubbleSort(func(a, b byte) bool { return a > b })
}

// SortDescending reorders the ring's values into non-increasing order.
func (r *Ring) SortDescending() {
	r.bubbleSort(func(a, b byte) bool { return a < b })
}

// bubbleSort runs full head-to-tail passes, swapping adjacent values
// wherever outOfOrder holds, until a pass is clean. The wraparound edge
// from tail back to head is never compared: the ring is treated as a
// linear sequence for ordering purposes.
func (r *Ring) bubbleSort(outOfOrder func(a, b byte) bool) {
	if r.size < 2 {
		return
	}
	for swapped := true; swapped; {
		swapped = false
		n := r.head
		for i := 0; i < r.size-1; i++ {
			s := r.arena.at(n)
			next := r.arena.at(s.next)
			if outOfOrder(s.value, next.value) {
				s.value, next.value = next.value, s.value
				swapped = true
			}
			n = s.next
		}
	}
}

// ShiftLeft rotates the head one position forward: the old second digit
// becomes the new first. No node or value moves. No-op when Len() <= 1.
func (r *Ring) ShiftLeft() {
	if r.size > 1 {
		r.head = r.arena.at(r.head).next
	}
}

// ShiftRight rotates the head one position backward: the old last digit
// becomes the new first. No-op when Len() <= 1.
func (r *Ring) ShiftRight() {
	if r.size > 1 {
		r.head = r.arena.at(r.head).prev
	}
}

// Clear empties the ring and resets its radix tag to decimal.
func (r *Ring) Clear() {
	r.arena.reset()
	r.head = none
	r.size = 0
	r.radix = DefaultRadix
}

// Values returns the digits in traversal order as a fresh slice.
func (r *Ring) Values() []byte {
	out := make([]byte, 0, r.size)
	n := r.head
	for i := 0; i < r.size; i++ {
		out = append(out, r.arena.at(n).value)
		n = r.arena.at(n).next
	}
	return out
}

// SubRing returns a deep copy of the digits in [from, to) as an
// independent decimal-tagged ring. The copy shares no storage with r;
// later mutation of either side does not affect the other.
func (r *Ring) SubRing(from, to int) (*Ring, error) {
	if from < 0 || to > r.size || from > to {
		return nil, ErrIndexOutOfRange
	}
	sub := New()
	if from == to {
		return sub, nil
	}
	n := r.slotAt(from)
	for i := from; i < to; i++ {
		s := r.arena.at(n)
		sub.Append(s.value)
		n = s.next
	}
	return sub, nil
}

// Equal reports whether r and other hold the same digits in the same
// traversal order. The radix tag is a presentation detail and is excluded
// from equality.
func (r *Ring) Equal(other *Ring) bool {
	if other == nil || r.size != other.size {
		return false
	}
	a, b := r.head, other.head
	for i := 0; i < r.size; i++ {
		if r.arena.at(a).value != other.arena.at(b).value {
			return false
		}
		a = r.arena.at(a).next
		b = other.arena.at(b).next
	}
	return true
}

// Hash returns an order-sensitive combination of the digit values,
// consistent with Equal: equal rings hash equally.
func (r *Ring) Hash() uint64 {
	h := uint64(1)
	n := r.head
	for i := 0; i < r.size; i++ {
		h = 31*h + uint64(r.arena.at(n).value)
		n = r.arena.at(n).next
	}
	return h
}

// slotAt returns the node at index i, which must be in [0, size).
// Traversal is bidirectional: forward from head for indices in the first
// half, backward from the tail otherwise, so the walk is at most size/2
// steps.
func (r *Ring) slotAt(i int) nodeIndex {
	if i <= r.size/2 {
		n := r.head
		for ; i > 0; i-- {
			n = r.arena.at(n).next
		}
		return n
	}
	n := r.arena.at(r.head).prev
	for j := r.size - 1; j > i; j-- {
		n = r.arena.at(n).prev
	}
	return n
}
