package stream

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/pcomb"
)

// Mark is a saved read position of a stream, counted in runes.
type Mark int

// Stream is the input interface for parsers.
//
// Peek returns the next rune without consuming it, Advance consumes and returns
// it. Both return false at end of input. Mark saves the current read position,
// Reset restores a position saved earlier.
//
// Streams are not safe for concurrent use.
type Stream interface {
	Peek() (rune, bool)
	Advance() (rune, bool)
	Mark() Mark
	Reset(Mark)
}

// --- Rune streams ----------------------------------------------------------

// RuneStream is a stream over an io.Reader. Create one with New or FromString.
type RuneStream struct {
	reader io.RuneReader
	buf    []rune // every rune read so far
	pos    int    // read position as index into buf
	isEOF  bool
	err    error // read error other than io.EOF
}

var _ Stream = (*RuneStream)(nil)

// New creates a stream reading from r. If r is not an io.RuneReader, it will
// be wrapped into a bufio.Reader.
func New(r io.Reader) *RuneStream {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &RuneStream{reader: rr}
}

// FromString creates a stream reading from a string.
func FromString(input string) *RuneStream {
	return New(strings.NewReader(input))
}

// Peek is part of the Stream interface.
func (rs *RuneStream) Peek() (rune, bool) {
	return rs.lookahead()
}

// Advance is part of the Stream interface.
func (rs *RuneStream) Advance() (rune, bool) {
	r, ok := rs.lookahead()
	if ok {
		rs.pos++
	}
	return r, ok
}

// Mark is part of the Stream interface.
func (rs *RuneStream) Mark() Mark {
	if rs == nil {
		return 0
	}
	return Mark(rs.pos)
}

// Reset is part of the Stream interface. It will panic if m has not been
// produced by this stream.
func (rs *RuneStream) Reset(m Mark) {
	if rs == nil {
		return
	}
	if m < 0 || int(m) > len(rs.buf) {
		panic(fmt.Sprintf("attempt to reset stream to invalid mark %d", m))
	}
	rs.pos = int(m)
}

// Pos returns the current read position.
func (rs *RuneStream) Pos() int {
	return int(rs.Mark())
}

// Span returns the span of input between a mark and the current read position.
func (rs *RuneStream) Span(from Mark) pcomb.Span {
	return pcomb.MakeSpan(int(from), rs.Pos())
}

// Consumed returns the input up to the current read position.
func (rs *RuneStream) Consumed() string {
	if rs == nil {
		return ""
	}
	return string(rs.buf[:rs.pos])
}

// Rest reads the remaining input and returns it. The read position does not
// change.
func (rs *RuneStream) Rest() string {
	if rs == nil {
		return ""
	}
	pos := rs.pos
	for {
		if _, ok := rs.Advance(); !ok {
			break
		}
	}
	rest := string(rs.buf[pos:])
	rs.pos = pos
	return rest
}

// AtEOF is true if there is no more input.
func (rs *RuneStream) AtEOF() bool {
	_, ok := rs.lookahead()
	return !ok
}

// Err returns the first error the underlying reader reported, if any.
// io.EOF is not reported.
func (rs *RuneStream) Err() error {
	if rs == nil {
		return nil
	}
	return rs.err
}

func (rs *RuneStream) lookahead() (rune, bool) {
	if rs == nil {
		return 0, false
	}
	if rs.pos < len(rs.buf) {
		return rs.buf[rs.pos], true
	}
	if rs.isEOF {
		return 0, false
	}
	r, _, err := rs.reader.ReadRune()
	if err == io.EOF {
		tracer().Debugf("stream reached end of input at %d", len(rs.buf))
		rs.isEOF = true
		return 0, false
	} else if err != nil {
		tracer().Errorf("stream read error: %v", err)
		rs.err = fmt.Errorf("stream cannot read input at position %d (%w)", len(rs.buf), err)
		rs.isEOF = true
		return 0, false
	}
	tracer().Debugf("read rune %#U", r)
	rs.buf = append(rs.buf, r)
	return r, true
}
