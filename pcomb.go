package pcomb

import "fmt"

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input characters. A span
// denotes a start position and the position just behind the end, both counted
// in runes from the start of the input.
type Span [2]uint64 // (x…y)

// MakeSpan creates a span from two stream positions. Positions are
// normalized, i.e. the smaller one will become the start of the span.
func MakeSpan(from, to int) Span {
	if from < 0 {
		from = 0
	}
	if to < from {
		from, to = to, from
	}
	return Span{uint64(from), uint64(to)}
}

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for spans covering no input.
func (s Span) IsNull() bool {
	return s[0] == s[1]
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
