package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// ValidatorFunc checks a preprocessed value and applies it to cc. A
// returned error wrapping ErrEmptyValue is a warning; any other error is
// fatal.
type ValidatorFunc func(cc *ClientContext, value string) error

// Connection setup timer bounds, in seconds.
const (
	minConnectTimeout = 1
	maxConnectTimeout = 50
)

func validateRunName(cc *ClientContext, value string) error {
	cc.RunName = truncate(value, RunNameSize-1)
	return nil
}

func validateNumTries(cc *ClientContext, value string) error {
	n, err := parseInt(value)
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: number of tries (%d) is not valid", ErrRangeViolation, n)
	}
	cc.NumTries = n
	return nil
}

func validateUserAgent(cc *ClientContext, value string) error {
	if value == "" {
		return fmt.Errorf("%w: USER_AGENT is empty, keeping %q", ErrEmptyValue, cc.UserAgent)
	}
	cc.UserAgent = truncate(value, UserAgentSize-1)
	return nil
}

func validateURL(cc *ClientContext, value string) error {
	if value == "" {
		return ErrEmptyURL
	}
	cc.URL = strings.Clone(value)
	return nil
}

// AppendHeader adds one "Name: value" header to cc. The header must contain
// a colon and cc must hold fewer than MaxCustomHeaders headers. Appending
// the same header twice stores it twice.
func AppendHeader(cc *ClientContext, value string) error {
	if value == "" {
		return fmt.Errorf("%w: empty header", ErrMissingColonInHeader)
	}
	name, _, ok := strings.Cut(value, ":")
	if !ok {
		return ErrMissingColonInHeader
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty header name in %q", ErrMissingColonInHeader, value)
	}
	if cc.HeaderCount() >= MaxCustomHeaders {
		return ErrHeaderLimitExceeded
	}
	cc.Headers = append(cc.Headers, strings.Clone(value))
	return nil
}

func validateConnectTimeout(cc *ClientContext, value string) error {
	n, err := parseInt(value)
	if err != nil {
		return err
	}
	if n < minConnectTimeout || n > maxConnectTimeout {
		return fmt.Errorf("%w: timer is expected to be from %d up to %d seconds, got %d",
			ErrRangeViolation, minConnectTimeout, maxConnectTimeout, n)
	}
	cc.ConnectTimeout = time.Duration(n) * time.Second
	return nil
}

func validateKeepAlive(cc *ClientContext, value string) error {
	n, err := parseInt(value)
	if err != nil {
		return err
	}
	if n != 0 && n != 1 {
		return fmt.Errorf("%w: boolean input 0 or 1 is expected, got %d", ErrRangeViolation, n)
	}
	cc.FreshConnect = n == 1
	return nil
}

// validateReserved accepts tags that are recognised but not acted upon.
func validateReserved(*ClientContext, string) error {
	return nil
}

func parseInt(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %s does not fit in an integer", ErrRangeViolation, value)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, value)
	}
	return n, nil
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) > n {
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
		s = s[:n]
	}
	return strings.Clone(s)
}
