package comb

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/npillmayer/pcomb/result"
	"github.com/npillmayer/pcomb/stream"
)

// --- Characters ------------------------------------------------------------

// Literal matches a single character.
func Literal(r rune) Parser {
	return literal{r}
}

type literal struct {
	r rune
}

func (l literal) Parse(s stream.Stream) result.Result {
	if r, ok := s.Peek(); ok && r == l.r {
		s.Advance()
		return result.Char(r)
	}
	return result.Failure()
}

// LiteralString matches a string, character by character. The result is a
// single atom holding the string. LiteralString("") matches the empty input.
func LiteralString(str string) Parser {
	if str == "" {
		return Empty()
	}
	return literalString{[]rune(str)}
}

type literalString struct {
	runes []rune
}

func (l literalString) Parse(s stream.Stream) result.Result {
	m := s.Mark()
	for _, expected := range l.runes {
		if r, ok := s.Advance(); !ok || r != expected {
			s.Reset(m)
			return result.Failure()
		}
	}
	return result.Atom(string(l.runes))
}

// Any matches any character. It fails at end of input.
func Any() Parser {
	return anyChar{}
}

type anyChar struct{}

func (anyChar) Parse(s stream.Stream) result.Result {
	if r, ok := s.Advance(); ok {
		return result.Char(r)
	}
	return result.Failure()
}

// Satisfy matches a character for which pred holds.
func Satisfy(pred func(rune) bool) Parser {
	if pred == nil {
		panic("attempt to create Satisfy parser without predicate")
	}
	return satisfy{pred}
}

type satisfy struct {
	pred func(rune) bool
}

func (sat satisfy) Parse(s stream.Stream) result.Result {
	if r, ok := s.Peek(); ok && sat.pred(r) {
		s.Advance()
		return result.Char(r)
	}
	return result.Failure()
}

// Choose matches any character contained in chars. Duplicates in chars do not
// matter. Choose("") never matches.
func Choose(chars string) Parser {
	set := treeset.NewWith(utils.RuneComparator)
	for _, r := range chars {
		set.Add(r)
	}
	if set.Empty() {
		return Fail()
	}
	members := set.Values()
	var p Parser = Literal(members[len(members)-1].(rune))
	for i := len(members) - 2; i >= 0; i-- {
		p = Or(Literal(members[i].(rune)), p)
	}
	return p
}

// --- Matching nothing ------------------------------------------------------

// Empty always succeeds with the empty result and consumes nothing.
func Empty() Parser {
	return empty{}
}

type empty struct{}

func (empty) Parse(stream.Stream) result.Result {
	return result.Empty()
}

// Fail never matches.
func Fail() Parser {
	return fail{}
}

type fail struct{}

func (fail) Parse(stream.Stream) result.Result {
	return result.Failure()
}

// --- Result shaping --------------------------------------------------------

// Chomp matches whatever p matches, but discards p's result. On success the
// result is the empty result, which will vanish in sequences.
func Chomp(p Parser) Parser {
	return chomp{mustParser(p)}
}

type chomp struct {
	p Parser
}

func (c chomp) Parse(s stream.Stream) result.Result {
	if c.p.Parse(s).IsFailure() {
		return result.Failure()
	}
	return result.Empty()
}

// Join matches whatever p matches and collapses p's result into a single atom,
// concatenating all of its tokens. Join(OnePlus(Digit())) will produce "123"
// instead of [1, 2, 3].
func Join(p Parser) Parser {
	return join{mustParser(p)}
}

type join struct {
	p Parser
}

func (j join) Parse(s stream.Stream) result.Result {
	return j.p.Parse(s).Join()
}
