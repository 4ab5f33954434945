package comb

import (
	"github.com/npillmayer/pcomb/result"
	"github.com/npillmayer/pcomb/stream"
)

// --- Alternation -----------------------------------------------------------

// Or tries its parsers in order and returns the result of the first one
// matching. If none matches, Or fails.
//
// Or is left-biased: if p0 matches, p1 will not be tried, even if p1 would
// have matched a longer prefix of the input.
func Or(p0, p1 Parser, more ...Parser) Parser {
	if len(more) > 0 {
		p1 = Or(p1, more[0], more[1:]...)
	}
	return alternation{mustParser(p0), mustParser(p1)}
}

type alternation struct {
	p0, p1 Parser
}

func (alt alternation) Parse(s stream.Stream) result.Result {
	m := s.Mark()
	if r := alt.p0.Parse(s); r.IsSuccess() {
		return r
	}
	s.Reset(m)
	r := alt.p1.Parse(s)
	if r.IsFailure() {
		s.Reset(m)
	}
	return r
}

// --- Sequencing ------------------------------------------------------------

// And runs its parsers one after another, each one starting where the
// previous one stopped. If all of them match, the results are merged (see
// result.Merge), producing a flat list. If any parser fails, And fails and the
// stream is rewound to where the first parser started.
func And(p0, p1 Parser, more ...Parser) Parser {
	if len(more) > 0 {
		p1 = And(p1, more[0], more[1:]...)
	}
	return sequence{mustParser(p0), mustParser(p1)}
}

type sequence struct {
	p0, p1 Parser
}

func (seq sequence) Parse(s stream.Stream) result.Result {
	m := s.Mark()
	r0 := seq.p0.Parse(s)
	if r0.IsFailure() {
		s.Reset(m)
		return result.Failure()
	}
	r1 := seq.p1.Parse(s)
	if r1.IsFailure() {
		s.Reset(m)
		return result.Failure()
	}
	return result.Merge(r0, r1)
}

// --- Bracketing ------------------------------------------------------------

// Between matches open, body and close in sequence. The result is the result
// of body; the results of open and close are dropped. If any of them fails,
// the stream is rewound to where open started.
func Between(open, body, close Parser) Parser {
	return between{mustParser(open), mustParser(body), mustParser(close)}
}

type between struct {
	open, body, close Parser
}

func (b between) Parse(s stream.Stream) result.Result {
	m := s.Mark()
	if b.open.Parse(s).IsFailure() {
		s.Reset(m)
		return result.Failure()
	}
	r := b.body.Parse(s)
	if r.IsFailure() || b.close.Parse(s).IsFailure() {
		s.Reset(m)
		return result.Failure()
	}
	return r
}
