package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Request represents one benchmark fetch
type Request struct {
	Method  string
	URL     string
	Headers http.Header
}

// NewRequest creates a new HTTP request
func NewRequest(method, rawURL string) *Request {
	return &Request{
		Method:  method,
		URL:     rawURL,
		Headers: make(http.Header),
	}
}

// WithHeader adds a header to the request
func (r *Request) WithHeader(key, value string) *Request {
	r.Headers.Add(key, value)
	return r
}

// WithRawHeader adds a header given as a single "Name: value" line.
func (r *Request) WithRawHeader(line string) error {
	key, value, ok := strings.Cut(line, ":")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("malformed header %q", line)
	}
	r.WithHeader(key, strings.TrimSpace(value))
	return nil
}

// WithRawHeaders adds every "Name: value" line in order.
func (r *Request) WithRawHeaders(lines []string) error {
	for _, line := range lines {
		if err := r.WithRawHeader(line); err != nil {
			return err
		}
	}
	return nil
}

// Build constructs an http.Request from the Request
func (r *Request) Build(ctx context.Context) (*http.Request, error) {
	reqURL, err := url.Parse(r.URL)
	if err != nil {
		return nil, err
	}
	if reqURL.Scheme == "" || reqURL.Host == "" {
		return nil, fmt.Errorf("url %q must be absolute", r.URL)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, reqURL.String(), nil)
	if err != nil {
		return nil, err
	}

	for key, values := range r.Headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	return req, nil
}
