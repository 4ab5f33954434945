/*
Package comb implements parser combinators.

A parser is a value implementing the Parser interface. Primitive parsers match
single characters or strings; combinators build new parsers from existing
ones:

    sign   := comb.Maybe(comb.Choose("+-"))
    hexint := comb.And(sign, comb.Literal('0'), comb.Choose("xX"), comb.HexDigits())
    r, _   := comb.ParseString(hexint, "-0x1A")   // r renders as [-, 0, x, 1A]

Building a parser does not read any input. Parsers are immutable and may be
reused in any number of compositions and parse runs, including concurrent runs
on distinct streams.

Backtracking

Every parser leaves the stream untouched if it fails: a failure anywhere
inside a sequence rewinds the stream to where the sequence started.
Alternation is first-match: Or(p0, p1) returns p0's result whenever p0
matches, without ever trying p1.

Results

Parsers return values of type result.Result. Sequences of parsers produce flat
lists, e.g. And(a, b, c) yields [a, b, c] rather than [a, [b, c]]. The empty
result of parsers like Empty() or Maybe(…) vanishes when merged into a
sequence. Repetitions collect one element per match.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package comb

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.comb'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.comb")
}
