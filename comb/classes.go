package comb

// Pre-built character classes and small grammars. They are built once, at
// package initialization, and shared by all callers.
var (
	digit      = Choose("0123456789")
	hexdigit   = Choose("0123456789abcdefABCDEF")
	lower      = Choose("abcdefghijklmnopqrstuvwxyz")
	upper      = Choose("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	whitespace = Choose(" \t\n")
	alpha      = Or(lower, upper)
	alphanum   = Or(alpha, digit)
	digits     = Join(OnePlus(digit))
	hexdigits  = Join(OnePlus(hexdigit))
	sign       = Maybe(Choose("+-"))
	integer    = And(sign, digits)
	hexinteger = And(sign, Literal('0'), Or(Literal('x'), Literal('X')), hexdigits)
)

// Digit matches a decimal digit.
func Digit() Parser { return digit }

// HexDigit matches a hexadecimal digit, upper or lower case.
func HexDigit() Parser { return hexdigit }

// Lower matches an ASCII lower case letter.
func Lower() Parser { return lower }

// Upper matches an ASCII upper case letter.
func Upper() Parser { return upper }

// Alpha matches an ASCII letter.
func Alpha() Parser { return alpha }

// AlphaNum matches an ASCII letter or a decimal digit.
func AlphaNum() Parser { return alphanum }

// Whitespace matches a blank, a tab or a newline.
func Whitespace() Parser { return whitespace }

// Digits matches a run of decimal digits. The result is a single atom.
func Digits() Parser { return digits }

// HexDigits matches a run of hexadecimal digits. The result is a single atom.
func HexDigits() Parser { return hexdigits }

// Int matches an optionally signed decimal integer, e.g. "-42" ⇒ [-, 42].
func Int() Parser { return integer }

// HexInt matches an optionally signed hexadecimal integer with prefix 0x or
// 0X, e.g. "0x1A" ⇒ [0, x, 1A].
func HexInt() Parser { return hexinteger }
