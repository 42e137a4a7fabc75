package config

import "strings"

// PreprocessValue turns the raw text after '=' into a clean value: leading
// whitespace is dropped, a '#' comment is cut off, the value ends after a
// closing double quote or at the first whitespace, and one surrounding pair
// of double quotes is removed.
//
// An opening quote without a closing one is kept in the result. The input
// is never modified; the result is a substring of raw.
func PreprocessValue(raw string) (string, error) {
	start, ok := skipWhitespace(newCursor(raw))
	if !ok {
		return "", ErrOnlyWhitespaceValue
	}
	value := start.rest()

	if i := strings.IndexByte(value, '#'); i >= 0 {
		value = value[:i]
		if value == "" {
			return "", ErrOnlyCommentsValue
		}
	}

	value = value[:valueEnd(value)]

	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}

	return value, nil
}

// valueEnd returns the offset just past the value token at the start of s.
func valueEnd(s string) int {
	if s[0] == '"' {
		if len(s) == 1 {
			return 0
		}
		if i := strings.IndexByte(s[1:], '"'); i >= 0 {
			return i + 2
		}
	}

	end, ok := skipNonWhitespace(newCursor(s))
	if !ok {
		return len(s)
	}
	return end.pos
}
