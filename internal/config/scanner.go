package config

// isWhitespace reports whether b is a space, tab, CR or LF.
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// cursor is a read position inside an immutable line buffer.
type cursor struct {
	buf string
	pos int
}

func newCursor(s string) cursor {
	return cursor{buf: s}
}

// remaining returns the number of unread bytes.
func (c cursor) remaining() int {
	if c.pos >= len(c.buf) {
		return 0
	}
	return len(c.buf) - c.pos
}

// rest returns the unread part of the buffer.
func (c cursor) rest() string {
	if c.pos >= len(c.buf) {
		return ""
	}
	return c.buf[c.pos:]
}

// skipWhitespace advances past a run of whitespace. The returned bool is
// false when the input ran out before a non-whitespace byte was found.
func skipWhitespace(c cursor) (cursor, bool) {
	return skipWhile(c, true)
}

// skipNonWhitespace advances past a run of non-whitespace bytes. The
// returned bool is false when the input ran out before whitespace was
// found.
func skipNonWhitespace(c cursor) (cursor, bool) {
	return skipWhile(c, false)
}

func skipWhile(c cursor, ws bool) (cursor, bool) {
	if c.remaining() == 0 {
		return c, false
	}
	for c.pos < len(c.buf) && isWhitespace(c.buf[c.pos]) == ws {
		c.pos++
	}
	return c, c.remaining() > 0
}
