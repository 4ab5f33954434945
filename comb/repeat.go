package comb

import (
	"fmt"

	"github.com/npillmayer/pcomb/result"
	"github.com/npillmayer/pcomb/stream"
)

// AtLeast matches p as often as possible and succeeds if p matched at least n
// times. The result is a sequence with one element per match of p (matches of
// p producing the empty result do not add an element). AtLeast(p, 0) never
// fails.
//
// If p matches without consuming any input, it would match forever. AtLeast
// will stop repeating at that point and succeed.
//
// AtLeast panics if n is negative.
func AtLeast(p Parser, n int) Parser {
	if n < 0 {
		panic(fmt.Sprintf("attempt to create repetition with negative count %d", n))
	}
	return repetition{p: mustParser(p), n: n}
}

// Exactly matches p n times. It fails if p fails before n matches are
// reached. Input following the n-th match is not looked at.
//
// Exactly panics if n is negative.
func Exactly(p Parser, n int) Parser {
	if n < 0 {
		panic(fmt.Sprintf("attempt to create repetition with negative count %d", n))
	}
	return repetition{p: mustParser(p), n: n, exact: true}
}

// OnePlus is AtLeast(p, 1).
func OnePlus(p Parser) Parser {
	return AtLeast(p, 1)
}

// ZeroPlus is AtLeast(p, 0).
func ZeroPlus(p Parser) Parser {
	return AtLeast(p, 0)
}

// Maybe matches p or nothing. It never fails.
func Maybe(p Parser) Parser {
	return Or(p, Empty())
}

type repetition struct {
	p     Parser
	n     int
	exact bool // stop after n matches
}

func (rep repetition) Parse(s stream.Stream) result.Result {
	start := s.Mark()
	var items []result.Result
	count := 0
	saturated := false
	for !rep.exact || count < rep.n {
		m := s.Mark()
		r := rep.p.Parse(s)
		if r.IsFailure() {
			s.Reset(m)
			break
		}
		items = append(items, r)
		count++
		if !rep.exact && s.Mark() == m {
			tracer().Debugf("repetition stuck at position %d after %d matches", m, count)
			saturated = true
			break
		}
	}
	if count == rep.n || (!rep.exact && (count > rep.n || saturated)) {
		return result.List(items...)
	}
	s.Reset(start)
	return result.Failure()
}
