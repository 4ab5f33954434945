/*
Package registry implements a table of named parsers.

Parsers are values without names. Tools which let users select a parser,
like the pcomb command line tool, need to look them up by name. A Table maps
names to entries, each holding a parser and a short description.

Standard() returns a table pre-loaded with the character classes and number
grammars of package comb.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package registry

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.registry'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.registry")
}
