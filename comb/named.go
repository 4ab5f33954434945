package comb

import (
	"github.com/npillmayer/pcomb"
	"github.com/npillmayer/pcomb/result"
	"github.com/npillmayer/pcomb/stream"
)

// Named wraps a parser with a name. The wrapper does not change what p
// matches or returns, but traces every run of p with key 'pcomb.comb' at
// debug level. It is meant for debugging grammars.
func Named(name string, p Parser) Parser {
	return named{name: name, p: mustParser(p)}
}

type named struct {
	name string
	p    Parser
}

func (n named) Parse(s stream.Stream) result.Result {
	m := s.Mark()
	r := n.p.Parse(s)
	span := pcomb.MakeSpan(int(m), int(s.Mark()))
	if r.IsFailure() {
		tracer().Debugf("%s: no match at %d", n.name, m)
	} else {
		tracer().Debugf("%s: matched %s ⇒ %s", n.name, span, r)
	}
	return r
}

// String returns the name of the parser.
func (n named) String() string {
	return n.name
}

// Name returns the name of a parser created with Named, or "".
func Name(p Parser) string {
	if n, ok := p.(named); ok {
		return n.name
	}
	return ""
}
