package board

import (
	"fmt"
	"math/bits"
	"strings"
)

// Candidates is the set of digits still possible for an unsolved cell,
// stored as a bitmask: bit v is set iff digit v (1-9) is a member.
// The zero value is the empty set. Set algebra is plain bit arithmetic:
// union is |, intersection is &.
type Candidates uint16

// AllCandidates holds every digit 1-9. A freshly created cell starts here.
const AllCandidates Candidates = 0b1111111110

// Of builds a candidate set from the given digits.
func Of(values ...uint8) Candidates {
	var c Candidates
	for _, v := range values {
		c = c.Add(v)
	}
	return c
}

// Has reports whether v is in the set.
func (c Candidates) Has(v uint8) bool {
	return v >= 1 && v <= 9 && c&(1<<v) != 0
}

// Add returns the set with v included. Digits outside 1-9 are ignored.
func (c Candidates) Add(v uint8) Candidates {
	if v < 1 || v > 9 {
		return c
	}
	return c | 1<<v
}

// Remove returns the set with v excluded.
func (c Candidates) Remove(v uint8) Candidates {
	return c &^ (1 << v)
}

// Count returns the number of digits in the set.
func (c Candidates) Count() int {
	return bits.OnesCount16(uint16(c))
}

// Single returns the sole member of a one-element set.
func (c Candidates) Single() (uint8, bool) {
	if c.Count() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(c))), true
}

// Values returns the members in ascending order.
func (c Candidates) Values() []uint8 {
	vs := make([]uint8, 0, c.Count())
	for v := uint8(1); v <= 9; v++ {
		if c.Has(v) {
			vs = append(vs, v)
		}
	}
	return vs
}

// Descending returns the members in descending order. The backtracking
// engine pops trial values from the end of this list, so trials run 1-9.
func (c Candidates) Descending() []uint8 {
	vs := make([]uint8, 0, c.Count())
	for v := uint8(9); v >= 1; v-- {
		if c.Has(v) {
			vs = append(vs, v)
		}
	}
	return vs
}

// String renders the set as "{4 8}".
func (c Candidates) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range c.Values() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	sb.WriteByte('}')
	return sb.String()
}
