/*
Command pcomb is a command line tool for experimenting with the pre-built
parsers of package comb.

    pcomb list                      list the named parsers
    pcomb parse -p hexint 0x1A      parse the arguments (or stdin) with a parser
    pcomb repl                      parse lines interactively

Settings may be given in a TOML file (flag --config):

    parser = "hexint"   # parser to start with
    prompt = "pcomb> "
    trace  = "Info"     # Debug | Info | Error
    tree   = true       # render sequences as a tree
    init   = "lines.txt"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.cli'
func tracer() tracing.Trace {
	return tracing.Select("pcomb.cli")
}
