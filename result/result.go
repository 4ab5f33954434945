package result

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
)

// Type is the kind of a result.
type Type int8

// Results are tagged with one of these types. The zero value of Result is a
// failure.
const (
	FailureType Type = iota
	EmptyType
	AtomType
	SequenceType
)

func (t Type) String() string {
	switch t {
	case FailureType:
		return "failure"
	case EmptyType:
		return "empty"
	case AtomType:
		return "atom"
	case SequenceType:
		return "sequence"
	}
	return "<unknown>"
}

// Result is the outcome of a parse run.
type Result struct {
	typ   Type
	text  string   // payload of atoms
	items []Result // payload of sequences; never contains failures or empty atoms
}

// Failure returns the failure result. It carries no payload.
func Failure() Result {
	return Result{}
}

// Empty returns a success holding the empty atom.
func Empty() Result {
	return Result{typ: EmptyType}
}

// Atom returns a success holding a string token.
func Atom(text string) Result {
	return Result{typ: AtomType, text: text}
}

// Char returns a success holding a single character token.
func Char(r rune) Result {
	return Result{typ: AtomType, text: string(r)}
}

// List creates a sequence from successes. Empty atoms are dropped; a failure
// anywhere in items makes the whole list a failure. Sequences in items are kept
// as nested elements. List() is the empty sequence, which is different from the
// empty atom.
func List(items ...Result) Result {
	seq := Result{typ: SequenceType, items: make([]Result, 0, len(items))}
	for _, item := range items {
		if item.IsFailure() {
			return Failure()
		}
		if item.IsEmpty() {
			continue
		}
		seq.items = append(seq.items, item)
	}
	return seq
}

// Merge combines two successes into one. The rules are:
//
//    ε  ⊕ ε   = ε
//    ε  ⊕ x   = x ⊕ ε = x
//    a  ⊕ b   = [a, b]
//    [A] ⊕ b  = [A…, b]       (sequences are spliced, not nested)
//    a  ⊕ [B] = [a, B…]
//
// If either operand is a failure, Merge returns a failure.
func Merge(r0, r1 Result) Result {
	if r0.IsFailure() || r1.IsFailure() {
		return Failure()
	}
	if r0.IsEmpty() {
		return r1
	}
	if r1.IsEmpty() {
		return r0
	}
	items := make([]Result, 0, r0.width()+r1.width())
	items = r0.spliceInto(items)
	items = r1.spliceInto(items)
	return Result{typ: SequenceType, items: items}
}

// Append returns a sequence with item added as the last element. It is used
// for accumulating repetitions: in contrast to Merge, a sequence item is
// nested, not spliced. Appending an empty atom leaves the sequence unchanged.
// r has to be a sequence.
func (r Result) Append(item Result) Result {
	if r.typ != SequenceType || item.IsFailure() {
		return Failure()
	}
	if item.IsEmpty() {
		return r
	}
	items := make([]Result, len(r.items), len(r.items)+1)
	copy(items, r.items)
	return Result{typ: SequenceType, items: append(items, item)}
}

func (r Result) width() int {
	if r.typ == SequenceType {
		return len(r.items)
	}
	return 1
}

func (r Result) spliceInto(items []Result) []Result {
	if r.typ == SequenceType {
		return append(items, r.items...)
	}
	return append(items, r)
}

// --- Inspection ------------------------------------------------------------

// Type returns the kind of a result.
func (r Result) Type() Type {
	return r.typ
}

// IsSuccess is true for every result except failures.
func (r Result) IsSuccess() bool {
	return r.typ != FailureType
}

// IsFailure is true for failures.
func (r Result) IsFailure() bool {
	return r.typ == FailureType
}

// IsEmpty is true for the empty atom.
func (r Result) IsEmpty() bool {
	return r.typ == EmptyType
}

// IsAtom is true for atoms, excluding the empty atom.
func (r Result) IsAtom() bool {
	return r.typ == AtomType
}

// IsSequence is true for sequences, including the empty sequence.
func (r Result) IsSequence() bool {
	return r.typ == SequenceType
}

// Text returns the token of an atom, or "" for any other result.
func (r Result) Text() string {
	return r.text
}

// Len returns the number of elements of a sequence, or 0.
func (r Result) Len() int {
	return len(r.items)
}

// Items returns a copy of the elements of a sequence.
func (r Result) Items() []Result {
	if len(r.items) == 0 {
		return nil
	}
	items := make([]Result, len(r.items))
	copy(items, r.items)
	return items
}

// Item returns the i-th element of a sequence, or a failure if i is out of range.
func (r Result) Item(i int) Result {
	if i < 0 || i >= len(r.items) {
		return Failure()
	}
	return r.items[i]
}

// Strings returns the tokens of all atoms in r, depth-first.
func (r Result) Strings() []string {
	var tokens []string
	r.walk(func(atom Result) {
		tokens = append(tokens, atom.text)
	})
	return tokens
}

// Join collapses a success into a single atom, concatenating all of its
// tokens. The empty atom and sequences without any atoms join to the empty
// atom. Failures stay failures.
func (r Result) Join() Result {
	switch r.typ {
	case FailureType, EmptyType, AtomType:
		return r
	}
	var b strings.Builder
	r.walk(func(atom Result) {
		b.WriteString(atom.text)
	})
	if b.Len() == 0 {
		return Empty()
	}
	return Atom(b.String())
}

func (r Result) walk(f func(Result)) {
	switch r.typ {
	case AtomType:
		f(r)
	case SequenceType:
		for _, item := range r.items {
			item.walk(f)
		}
	}
}

// Equal compares two results structurally.
func (r Result) Equal(other Result) bool {
	if r.typ != other.typ || r.text != other.text || len(r.items) != len(other.items) {
		return false
	}
	for i := range r.items {
		if !r.items[i].Equal(other.items[i]) {
			return false
		}
	}
	return true
}

// String renders atoms as their token and sequences as a bracketed,
// comma-separated list of their elements, e.g. "[0, x, [1, A]]".
func (r Result) String() string {
	switch r.typ {
	case FailureType:
		return "<failure>"
	case EmptyType:
		return "ε"
	case AtomType:
		return r.text
	}
	var b strings.Builder
	r.writeTo(&b)
	return b.String()
}

func (r Result) writeTo(b *strings.Builder) {
	if r.typ != SequenceType {
		b.WriteString(r.String())
		return
	}
	b.WriteByte('[')
	for i, item := range r.items {
		if i > 0 {
			b.WriteString(", ")
		}
		item.writeTo(b)
	}
	b.WriteByte(']')
}
