package digitring

import (
	"math/big"
	"strings"
)

// Variant identifies the parameter set this package implements: a circular
// doubly linked digit list, decimal and hexadecimal bases, and modulo as
// the additional operation.
const Variant = 3518

// Parse builds a decimal-tagged ring from a digit string, one node per
// character, most significant first. An empty string yields an empty ring.
// A leading minus sign yields an empty ring: negative numbers are
// unsupported. Any character that is not a hexadecimal digit aborts the
// parse and clears the ring, so malformed input never leaves partial
// state.
func Parse(text string) *Ring {
	r := New()
	if text == "" {
		return r
	}
	if strings.HasPrefix(text, "-") {
		return r
	}
	for _, ch := range text {
		v, ok := hexDigitValue(ch)
		if !ok {
			r.Clear()
			return r
		}
		r.Append(v)
	}
	return r
}

// parseRadix parses text and tags the resulting ring with the given radix.
// A failed parse leaves the default decimal tag on the empty ring.
func parseRadix(text string, radix int) *Ring {
	r := Parse(text)
	if !r.IsEmpty() {
		r.radix = radix
	}
	return r
}

// String renders the stored digits as uppercase hexadecimal characters,
// head to tail, "" when empty. This is the raw digit form: the radix tag
// does not influence it.
func (r *Ring) String() string {
	var sb strings.Builder
	sb.Grow(r.size)
	n := r.head
	for i := 0; i < r.size; i++ {
		sb.WriteByte(hexDigitChar(r.arena.at(n).value))
		n = r.arena.at(n).next
	}
	return sb.String()
}

// ToInt interprets the ring as a non-negative integer: the digit string in
// traversal order, read in the tracked radix. An empty ring is zero. A
// decimal-tagged ring carrying digits above 9 has no defined value and
// also reads as zero.
func (r *Ring) ToInt() *big.Int {
	if r.size == 0 {
		return new(big.Int)
	}
	n, ok := new(big.Int).SetString(r.String(), r.radix)
	if !ok {
		return new(big.Int)
	}
	return n
}

// ToDecimalString renders the ring's numeric value in base 10. A
// decimal-tagged ring prints its digits directly; a hex-tagged ring is
// converted through its integer value. Empty rings render as "".
func (r *Ring) ToDecimalString() string {
	if r.size == 0 {
		return ""
	}
	if r.radix == DefaultRadix {
		return r.String()
	}
	return r.ToInt().Text(10)
}

// ChangeScale returns a new ring holding the same numeric value expressed
// in base 16, tagged with the hexadecimal radix. The receiver is not
// modified. An empty ring rescales to an empty ring.
func (r *Ring) ChangeScale() *Ring {
	if r.size == 0 {
		return New()
	}
	hex := strings.ToUpper(r.ToInt().Text(16))
	return parseRadix(hex, HexRadix)
}

// Mod returns a new ring holding the truncating remainder of r divided by
// other: the magnitude is below the divisor and the sign follows the
// dividend, which for this package is always non-negative.
//
// The divisor's digits are read as plain base-10 characters regardless of
// its radix tag. A degenerate divisor - empty, holding a digit above 9, or
// equal to zero - produces the single-digit ring "0" rather than an error.
func (r *Ring) Mod(other *Ring) *Ring {
	var sb strings.Builder
	for _, v := range other.Values() {
		if v > 9 {
			return Parse("0")
		}
		sb.WriteByte('0' + v)
	}
	if sb.Len() == 0 {
		return Parse("0")
	}
	div, ok := new(big.Int).SetString(sb.String(), 10)
	if !ok || div.Sign() == 0 {
		return Parse("0")
	}
	rem := new(big.Int).Rem(r.ToInt(), div)
	return Parse(rem.String())
}

// hexDigitValue converts an ASCII hexadecimal digit to its value.
func hexDigitValue(ch rune) (byte, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return byte(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return byte(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'F':
		return byte(ch-'A') + 10, true
	}
	return 0, false
}

// hexDigitChar renders a nibble as its uppercase hexadecimal character.
func hexDigitChar(v byte) byte {
	if v < 10 {
		return '0' + v
	}
	return 'A' + v - 10
}
