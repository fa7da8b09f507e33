package tnfa

import "unicode/utf8"

// Cursor iterates codepoints forward and backward over an immutable
// byte buffer, tracking a byte-offset position. It backs both the
// pattern reader used by the parser and the subject reader used by the
// virtual machine, so both walk UTF-8 the same way. Invalid UTF-8
// decodes as utf8.RuneError occupying a single byte, which keeps the
// cursor's byte offset in sync with the codepoint stream instead of
// desynchronizing later anchor checks.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor returns a Cursor positioned at the start of data.
func NewCursor(data []byte) Cursor {
	return Cursor{data: data}
}

// Pos returns the current byte offset into data.
func (c Cursor) Pos() int { return c.pos }

// AtStart reports whether the cursor is at the beginning of data.
func (c Cursor) AtStart() bool { return c.pos == 0 }

// AtEnd reports whether the cursor is at the end of data.
func (c Cursor) AtEnd() bool { return c.pos >= len(c.data) }

// Peek returns the codepoint at the current position without
// consuming it.
func (c Cursor) Peek() (rune, bool) {
	if c.AtEnd() {
		return 0, false
	}
	r, _ := utf8.DecodeRune(c.data[c.pos:])
	return r, true
}

// Invalid reports whether the byte at the current position begins an
// invalid UTF-8 encoding, as opposed to a genuine U+FFFD (which always
// decodes with a width greater than one). The parser uses this to
// reject a malformed pattern outright; the virtual machine does not,
// since a malformed subject decodes as a one-byte U+FFFD by design.
func (c Cursor) Invalid() bool {
	if c.AtEnd() {
		return false
	}
	r, size := utf8.DecodeRune(c.data[c.pos:])
	return r == utf8.RuneError && size == 1
}

// PeekAt returns the codepoint n codepoints ahead of the current one
// (PeekAt(0) is equivalent to Peek), without consuming anything.
func (c Cursor) PeekAt(n int) (rune, bool) {
	pos := c.pos
	var r rune
	for i := 0; i <= n; i++ {
		if pos >= len(c.data) {
			return 0, false
		}
		var size int
		r, size = utf8.DecodeRune(c.data[pos:])
		pos += size
	}
	return r, true
}

// Next consumes and returns the codepoint at the current position,
// advancing forward.
func (c *Cursor) Next() (rune, bool) {
	if c.AtEnd() {
		return 0, false
	}
	r, size := utf8.DecodeRune(c.data[c.pos:])
	c.pos += size
	return r, true
}

// Prev moves backward past, and returns, the codepoint immediately
// before the current position.
func (c *Cursor) Prev() (rune, bool) {
	if c.AtStart() {
		return 0, false
	}
	r, size := utf8.DecodeLastRune(c.data[:c.pos])
	c.pos -= size
	return r, true
}
