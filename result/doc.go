/*
Package result implements the values produced by parse runs.

A parse run either fails or succeeds. A failure carries nothing. A success
carries one of

■ the empty atom, produced by parsers which match without consuming input,

■ an atom, i.e. a single character or a string token,

■ a sequence of successes, each of them an atom or a nested sequence.

Results are merged when parsers are run one after another. Merging is where
the shape of results is decided: empty atoms vanish and sequences are spliced
into each other, so that a chain of n parsers produces a flat list of n items
instead of a tree of pairs.

Results are values. Operations never modify their operands, therefore results
may be copied and shared freely.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.result'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.result")
}
