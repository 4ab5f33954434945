package registry

import (
	"github.com/npillmayer/pcomb/comb"
)

// Standard returns a new table holding the pre-built parsers of package comb.
func Standard() *Table {
	t := NewTable()
	t.Define("digit", comb.Digit(), "a decimal digit")
	t.Define("hexdigit", comb.HexDigit(), "a hexadecimal digit")
	t.Define("lower", comb.Lower(), "a lower case letter a…z")
	t.Define("upper", comb.Upper(), "an upper case letter A…Z")
	t.Define("alpha", comb.Alpha(), "a letter")
	t.Define("alphanum", comb.AlphaNum(), "a letter or a decimal digit")
	t.Define("whitespace", comb.Whitespace(), "a blank, tab or newline")
	t.Define("digits", comb.Digits(), "a run of decimal digits")
	t.Define("hexdigits", comb.HexDigits(), "a run of hexadecimal digits")
	t.Define("int", comb.Int(), "an optionally signed decimal integer")
	t.Define("hexint", comb.HexInt(), "an optionally signed hexadecimal integer, 0x…")
	t.Define("word", comb.Join(comb.OnePlus(comb.Alpha())), "a run of letters")
	t.Define("any", comb.Any(), "any character")
	return t
}
