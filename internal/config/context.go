package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	// RunNameSize is the storage capacity of a run name, terminator included.
	RunNameSize = 64

	// UserAgentSize is the storage capacity of a user agent, terminator included.
	UserAgentSize = 256

	// MaxCustomHeaders limits the number of custom HTTP headers per context.
	MaxCustomHeaders = 1024

	// DefaultUserAgent is sent when the file has no USER_AGENT directive.
	DefaultUserAgent = "samk/0.1.0"
)

// RequestType is the HTTP method used for fetching the URL.
type RequestType int

const (
	RequestGET RequestType = iota + 1
	RequestPOST
	RequestPUT
	RequestHEAD
	RequestDELETE
)

// Method returns the HTTP method name.
func (t RequestType) Method() string {
	switch t {
	case RequestPOST:
		return "POST"
	case RequestPUT:
		return "PUT"
	case RequestHEAD:
		return "HEAD"
	case RequestDELETE:
		return "DELETE"
	default:
		return "GET"
	}
}

func (t RequestType) String() string {
	return t.Method()
}

// ParseRequestType maps a method name, in any case, to a RequestType.
func ParseRequestType(s string) (RequestType, error) {
	switch strings.ToUpper(s) {
	case "GET":
		return RequestGET, nil
	case "POST":
		return RequestPOST, nil
	case "PUT":
		return RequestPUT, nil
	case "HEAD":
		return RequestHEAD, nil
	case "DELETE":
		return RequestDELETE, nil
	}
	return 0, fmt.Errorf("%w: unsupported request type %q", ErrValue, s)
}

// ClientContext holds the settings of one benchmark, filled from a
// directive file.
type ClientContext struct {
	// General section
	RunName   string
	NumTries  int
	UserAgent string

	// Resource section
	URL         string
	Headers     []string
	RequestType RequestType

	// FreshConnect opens a new connection for every run and forbids its
	// reuse. Set by KEEP_ALIVE = 1.
	FreshConnect bool

	// ConnectTimeout bounds connection setup, name resolution included.
	// Zero means the command-line default applies.
	ConnectTimeout time.Duration
}

// NewClientContext returns a context populated with defaults.
func NewClientContext() *ClientContext {
	return &ClientContext{
		UserAgent:   DefaultUserAgent,
		RequestType: RequestGET,
	}
}

// HeaderCount returns the number of custom headers appended so far.
func (cc *ClientContext) HeaderCount() int {
	return len(cc.Headers)
}
