package digitring

// Cursor is a bidirectional position within a ring, sitting between
// elements: position p means "before the digit at index p", so valid
// positions run 0 through Len() inclusive. The cursor walks node links
// directly, so each step is O(1). It remembers the last digit it yielded
// so that Set and Remove can target it; Insert and Remove keep the
// position consistent so traversal continues correctly.
//
// A cursor does not track structural mutations made behind its back. Use
// one cursor at a time per ring, and re-create cursors after direct ring
// mutation.
type Cursor struct {
	ring *Ring
	pos  int
	cur  nodeIndex // slot at index pos, none when pos == ring size
	last int       // index of the last yielded digit, -1 when none
}

// Cursor returns a new cursor positioned before the first digit.
func (r *Ring) Cursor() *Cursor {
	cur := none
	if r.size > 0 {
		cur = r.head
	}
	return &Cursor{ring: r, cur: cur, last: -1}
}

// CursorAt returns a new cursor positioned before index i, so the first
// Next yields the digit at i. i may be Len(), giving a cursor at the end.
func (r *Ring) CursorAt(i int) (*Cursor, error) {
	if i < 0 || i > r.size {
		return nil, ErrIndexOutOfRange
	}
	cur := none
	if i < r.size {
		cur = r.slotAt(i)
	}
	return &Cursor{ring: r, pos: i, cur: cur, last: -1}, nil
}

// HasNext reports whether a forward step would yield a digit.
func (c *Cursor) HasNext() bool {
	return c.pos < c.ring.size
}

// HasPrev reports whether a backward step would yield a digit.
func (c *Cursor) HasPrev() bool {
	return c.pos > 0 && c.pos <= c.ring.size
}

// NextIndex returns the index of the digit a forward step would yield,
// Len() when the cursor is at the end.
func (c *Cursor) NextIndex() int {
	return c.pos
}

// PrevIndex returns the index of the digit a backward step would yield,
// -1 when the cursor is at the start.
func (c *Cursor) PrevIndex() int {
	return c.pos - 1
}

// Next yields the digit after the cursor and advances past it. Returns
// ErrCursorExhausted at the end of the ring, or ErrCursorDetached when
// the ring shrank underneath the cursor.
func (c *Cursor) Next() (byte, error) {
	if c.pos > c.ring.size {
		return 0, ErrCursorDetached
	}
	if c.pos == c.ring.size {
		return 0, ErrCursorExhausted
	}
	v := c.ring.arena.at(c.cur).value
	c.last = c.pos
	c.pos++
	if c.pos == c.ring.size {
		c.cur = none
	} else {
		c.cur = c.ring.arena.at(c.cur).next
	}
	return v, nil
}

// Prev yields the digit before the cursor and retreats past it. Returns
// ErrCursorExhausted at the start of the ring, or ErrCursorDetached when
// the ring shrank underneath the cursor.
func (c *Cursor) Prev() (byte, error) {
	if c.pos == 0 {
		return 0, ErrCursorExhausted
	}
	if c.pos > c.ring.size {
		return 0, ErrCursorDetached
	}
	if c.cur == none {
		// Cursor is at the end; step back onto the tail.
		c.cur = c.ring.arena.at(c.ring.head).prev
	} else {
		c.cur = c.ring.arena.at(c.cur).prev
	}
	c.pos--
	c.last = c.pos
	return c.ring.arena.at(c.cur).value, nil
}

// Set replaces the last yielded digit with v and invalidates the
// last-yielded state: a second Set, or a Remove, requires an intervening
// movement. Returns ErrCursorState when no digit has been yielded since
// the last state-invalidating operation, or ErrCursorDetached when the
// ring shrank underneath the cursor.
func (c *Cursor) Set(v byte) error {
	if c.last < 0 {
		return ErrCursorState
	}
	if c.last >= c.ring.size {
		return ErrCursorDetached
	}
	if _, err := c.ring.Set(c.last, v); err != nil {
		return err
	}
	c.last = -1
	return nil
}

// Remove unlinks the last yielded digit and adjusts the cursor so that
// traversal picks up where it left off. Calling Remove before any
// movement, or twice without an intervening movement, returns
// ErrCursorState.
func (c *Cursor) Remove() error {
	if c.last < 0 {
		return ErrCursorState
	}
	if c.last >= c.ring.size {
		return ErrCursorDetached
	}
	// When the last yielded digit came from Prev, it is the one the
	// cursor currently sits on; remember its successor before unlinking.
	removingCur := c.last == c.pos
	var succ nodeIndex
	if removingCur {
		succ = c.ring.arena.at(c.cur).next
	}
	if _, err := c.ring.RemoveAt(c.last); err != nil {
		return err
	}
	if removingCur {
		if c.pos == c.ring.size {
			c.cur = none
		} else {
			c.cur = succ
		}
	} else {
		c.pos--
	}
	c.last = -1
	return nil
}

// Insert splices v in at the cursor position and advances past it, so the
// new digit would be yielded by Prev but not by Next. Insert invalidates
// the last-yielded state for Set and Remove.
func (c *Cursor) Insert(v byte) {
	// pos is always within [0, size], so InsertAt cannot fail here. The
	// node the cursor sits on keeps its identity; only its index shifts,
	// which the pos increment accounts for.
	_ = c.ring.InsertAt(c.pos, v)
	c.pos++
	c.last = -1
}
