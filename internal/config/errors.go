package config

import (
	"errors"
	"fmt"
)

// Errors returned while reading a directive file. Every error except
// ErrEmptyValue aborts the parse; match them with errors.Is.
var (
	ErrSyntax           = errors.New("syntax error")
	ErrMissingSeparator = fmt.Errorf("%w: missing '=' separator", ErrSyntax)
	ErrEmptyTagName     = fmt.Errorf("%w: empty tag name", ErrSyntax)

	ErrValue               = errors.New("bad value")
	ErrOnlyWhitespaceValue = fmt.Errorf("%w: only whitespace found in the value", ErrValue)
	ErrOnlyCommentsValue   = fmt.Errorf("%w: value has only comments", ErrValue)
	ErrRangeViolation      = fmt.Errorf("%w: out of range", ErrValue)
	ErrInvalidNumber       = fmt.Errorf("%w: not an integer", ErrValue)
	ErrEmptyURL            = fmt.Errorf("%w: empty url", ErrValue)

	ErrUnknownTag           = errors.New("unknown tag")
	ErrMissingColonInHeader = errors.New("HTTP headers require a ':' separator")
	ErrHeaderLimitExceeded  = fmt.Errorf("number of custom HTTP headers is limited to %d", MaxCustomHeaders)

	ErrFileNotFound = errors.New("config file not found")
	ErrFileOpen     = errors.New("failed to open config file")

	// ErrEmptyValue marks a directive whose value is empty once comments,
	// quotes and whitespace are removed. It is reported as a warning.
	ErrEmptyValue = errors.New("empty value")
)

// DirectiveError is a fatal error tied to one line of the config file.
type DirectiveError struct {
	Line  int
	Tag   string
	Value string
	Err   error
}

func (e *DirectiveError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: tag %s with value %q: %v", e.Line, e.Tag, e.Value, e.Err)
}

func (e *DirectiveError) Unwrap() error {
	return e.Err
}

// ErrorLine returns the 1-based line number carried by err, or 0 when
// err did not come from a specific line.
func ErrorLine(err error) int {
	var de *DirectiveError
	if errors.As(err, &de) {
		return de.Line
	}
	return 0
}

// Warning is a non-fatal condition recorded while parsing.
type Warning struct {
	Line int
	Tag  string
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: tag %s: %v", w.Line, w.Tag, w.Err)
}
