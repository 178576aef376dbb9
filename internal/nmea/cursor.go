package nmea

import "strconv"

// Cursor walks a sentence payload left to right. Every step either
// consumes input and returns a value or returns a *SyntaxError and
// leaves the position untouched. Cursors are cheap values; copy one to
// keep a checkpoint.
type Cursor struct {
	input string
	pos   int
}

// NewCursor returns a cursor positioned at the start of payload.
func NewCursor(payload string) Cursor {
	return Cursor{input: payload}
}

// Offset returns the byte offset of the next unread character.
func (c *Cursor) Offset() int { return c.pos }

// Rest returns the unconsumed input.
func (c *Cursor) Rest() string { return c.input[c.pos:] }

// Done reports whether the whole payload has been consumed.
func (c *Cursor) Done() bool { return c.pos >= len(c.input) }

// Char consumes exactly one byte equal to want.
func (c *Cursor) Char(want byte) error {
	if c.pos < len(c.input) && c.input[c.pos] == want {
		c.pos++
		return nil
	}
	return c.fail(strconv.QuoteRune(rune(want)), nil)
}

// OptFloat32 consumes a decimal floating point literal if one starts at
// the current position. An empty field yields nil without error; a
// literal that does not fit a float32 is a syntax error.
func (c *Cursor) OptFloat32() (*float32, error) {
	n := scanFloat(c.input[c.pos:])
	if n == 0 {
		return nil, nil
	}
	v, err := strconv.ParseFloat(c.input[c.pos:c.pos+n], 32)
	if err != nil {
		return nil, c.fail("number", err)
	}
	c.pos += n
	f := float32(v)
	return &f, nil
}

func (c *Cursor) fail(expected string, err error) error {
	return &SyntaxError{
		Offset:    c.pos,
		Expected:  expected,
		Remaining: c.input[c.pos:],
		Err:       err,
	}
}

// scanFloat returns the length of the longest prefix of s of the form
// [+-]digits[.digits][(e|E)[+-]digits]. At least one mantissa digit is
// required; an incomplete exponent is left unconsumed.
func scanFloat(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}
	return i
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

