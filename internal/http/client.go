package http

import (
	"context"
	"crypto/tls"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptrace"
	"time"
)

// DefaultConnectTimeout is used when no connect timeout is configured.
const DefaultConnectTimeout = 4 * time.Second

// Client represents an HTTP client tuned for repeated timing of one URL
type Client struct {
	httpClient     *http.Client
	userAgent      string
	timeout        time.Duration
	connectTimeout time.Duration
	keepAlive      bool
	insecure       bool
	logger         *slog.Logger
}

// ClientOption is a function that configures a Client
type ClientOption func(*Client)

// NewClient creates a new HTTP client with the given options
func NewClient(options ...ClientOption) *Client {
	client := &Client{
		timeout:        30 * time.Second,
		connectTimeout: DefaultConnectTimeout,
		keepAlive:      true,
		insecure:       true,
		logger:         slog.Default(),
	}

	// Apply options
	for _, option := range options {
		option(client)
	}

	dialer := &net.Dialer{
		Timeout:   client.connectTimeout,
		KeepAlive: 30 * time.Second,
	}

	client.httpClient = &http.Client{
		Timeout: client.timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			// IPv4 only, name resolution is part of the connect timeout.
			DialContext: func(ctx context.Context, _, addr string) (net.Conn, error) {
				return dialer.DialContext(ctx, "tcp4", addr)
			},
			DisableKeepAlives:   !client.keepAlive,
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: client.insecure}, //nolint:gosec
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}

	return client
}

// WithTimeout sets the overall timeout of one request
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithConnectTimeout sets the maximum time to resolve and connect
func WithConnectTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.connectTimeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithKeepAlive controls connection reuse between requests
func WithKeepAlive(keepAlive bool) ClientOption {
	return func(c *Client) {
		c.keepAlive = keepAlive
	}
}

// WithInsecureTLS controls TLS certificate verification
func WithInsecureTLS(insecure bool) ClientOption {
	return func(c *Client) {
		c.insecure = insecure
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Do executes an HTTP request and returns the response with detailed timing information
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := req.Build(ctx)
	if err != nil {
		return nil, err
	}

	if c.userAgent != "" && httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	timing := TimingInfo{
		StartTime: time.Now(),
	}

	var dnsStart, connectStart, tlsHandshakeStart time.Time
	var dnsDone, connectDone bool
	var serverIP string
	var reused bool
	lastPhaseEnd := timing.StartTime

	trace := &httptrace.ClientTrace{
		DNSStart: func(info httptrace.DNSStartInfo) {
			dnsStart = time.Now()
		},
		DNSDone: func(info httptrace.DNSDoneInfo) {
			now := time.Now()
			timing.DNSLookupTime = now.Sub(dnsStart)
			timing.NameLookupDone = now.Sub(timing.StartTime)
			dnsDone = true
			lastPhaseEnd = now
		},
		ConnectStart: func(network, addr string) {
			connectStart = time.Now()
			if !dnsDone {
				// Literal IP addresses skip resolution.
				timing.NameLookupDone = connectStart.Sub(timing.StartTime)
			}
		},
		ConnectDone: func(network, addr string, err error) {
			if err != nil {
				return
			}
			now := time.Now()
			timing.TCPConnectTime = now.Sub(connectStart)
			timing.ConnectDone = now.Sub(timing.StartTime)
			connectDone = true
			lastPhaseEnd = now
		},
		TLSHandshakeStart: func() {
			if connectDone {
				tlsHandshakeStart = time.Now()
			}
		},
		TLSHandshakeDone: func(state tls.ConnectionState, err error) {
			if err == nil && !tlsHandshakeStart.IsZero() {
				now := time.Now()
				timing.TLSHandshakeTime = now.Sub(tlsHandshakeStart)
				lastPhaseEnd = now
			}
		},
		GotConn: func(info httptrace.GotConnInfo) {
			reused = info.Reused
			if host, _, err := net.SplitHostPort(info.Conn.RemoteAddr().String()); err == nil {
				serverIP = host
			}
		},
		GotFirstResponseByte: func() {
			now := time.Now()
			timing.TimeToFirstByte = now.Sub(lastPhaseEnd)
			timing.StartTransfer = now.Sub(timing.StartTime)
		},
	}

	httpReq = httpReq.WithContext(httptrace.WithClientTrace(httpReq.Context(), trace))

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	contentTransferStart := time.Now()
	n, err := io.Copy(io.Discard, httpResp.Body)
	if err != nil {
		return nil, err
	}
	timing.ContentTransferTime = time.Since(contentTransferStart)
	timing.TotalTime = time.Since(timing.StartTime)

	c.logger.Debug("request completed",
		"method", httpReq.Method,
		"url", httpReq.URL.String(),
		"status", httpResp.StatusCode,
		"server_ip", serverIP,
		"reused", reused,
		"bytes", n,
		"total", timing.TotalTime)

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    httpResp.Header,
		ServerIP:   serverIP,
		BytesRead:  n,
		Reused:     reused,
		Timing:     timing,
	}, nil
}
