/*
Package stream defines the input streams parsers read from.

A parser needs three things from its input: look at the next character without
consuming it, consume it, and return to an earlier position after a failed
attempt. Stream captures exactly this. Positions are represented by marks,
which are cheap to take and to restore.

RuneStream is the default implementation. It reads runes lazily from an
io.Reader and keeps every rune read so far, so a stream may be reset to any
mark taken earlier.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stream

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.stream'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.stream")
}
