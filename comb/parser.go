package comb

import (
	"sync"

	"github.com/npillmayer/pcomb/result"
	"github.com/npillmayer/pcomb/stream"
)

// Parser is the interface all parsers implement. Parse reads from s, starting
// at its current read position. On success the read position is moved behind
// the matched input; on failure it is left where it was.
type Parser interface {
	Parse(s stream.Stream) result.Result
}

// Func is an adapter to use ordinary functions as parsers. Functions are
// expected to follow the contract of Parser, i.e. to restore the stream when
// they fail.
type Func func(stream.Stream) result.Result

// Parse calls f(s).
func (f Func) Parse(s stream.Stream) result.Result {
	return f(s)
}

// Run applies a parser to a stream. A nil stream fails.
func Run(p Parser, s stream.Stream) result.Result {
	if s == nil {
		return result.Failure()
	}
	return p.Parse(s)
}

// ParseString applies a parser to a string input. It returns the result and
// the read position after the parse.
func ParseString(p Parser, input string) (result.Result, stream.Mark) {
	s := stream.FromString(input)
	r := p.Parse(s)
	return r, s.Mark()
}

func mustParser(p Parser) Parser {
	if p == nil {
		panic("attempt to compose a nil parser")
	}
	return p
}

// --- Forward references ----------------------------------------------------

// Lazy creates a parser from a constructor function, which will be called on
// first use. It is used for recursive grammars, where a parser has to refer
// to itself:
//
//    var nested Parser
//    nested = Or(Between(Literal('('), Lazy(func() Parser { return nested }), Literal(')')), Empty())
//
func Lazy(build func() Parser) Parser {
	if build == nil {
		panic("attempt to create lazy parser without constructor")
	}
	return &lazy{build: build}
}

type lazy struct {
	once  sync.Once
	build func() Parser
	p     Parser
}

func (l *lazy) Parse(s stream.Stream) result.Result {
	l.once.Do(func() {
		l.p = mustParser(l.build())
	})
	return l.p.Parse(s)
}
