package result

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// Dump is a debugging helper. It prints a result as an indented tree to the
// tracer, using the trace level given.
func (r Result) Dump(level tracing.TraceLevel) {
	logf := tracer().Debugf
	switch level {
	case tracing.LevelError:
		logf = tracer().Errorf
	case tracing.LevelInfo:
		logf = tracer().Infof
	}
	for _, line := range r.IndentedLines() {
		logf("%s", line)
	}
}

// IndentedLines renders a result as lines of text, one line per atom, with
// nested sequences indented. Sequences are introduced by a line "[n]", n being
// the number of elements.
func (r Result) IndentedLines() []string {
	return r.indented(nil, 0)
}

func (r Result) indented(lines []string, level int) []string {
	indent := strings.Repeat("  ", level)
	if r.typ != SequenceType {
		return append(lines, indent+r.String())
	}
	lines = append(lines, fmt.Sprintf("%s[%d]", indent, len(r.items)))
	for _, item := range r.items {
		lines = item.indented(lines, level+1)
	}
	return lines
}
