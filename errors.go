// Package digitring stores the digits of a non-negative integer as a
// circular doubly linked list and interprets them as a number in a tracked
// radix (decimal or hexadecimal), with base conversion and a modulo
// operation between two rings.
package digitring

import "errors"

// Index errors
var (
	// ErrIndexOutOfRange indicates that an index is outside the valid range
	// for the operation. Direct indexed access treats this as a contract
	// violation and returns it immediately without mutating the ring.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Cursor errors
var (
	// ErrCursorExhausted indicates an attempt to advance past the last
	// element or retreat before the first.
	ErrCursorExhausted = errors.New("cursor exhausted")

	// ErrCursorState indicates that Set or Remove was called before any
	// movement, or twice without an intervening movement.
	ErrCursorState = errors.New("cursor has no current element")

	// ErrCursorDetached indicates that the cursor's ring was cleared or
	// mutated out from under it.
	ErrCursorDetached = errors.New("cursor detached from ring")
)
