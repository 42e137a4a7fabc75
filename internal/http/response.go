package http

import (
	"net/http"
	"time"
)

// TimingInfo stores detailed timing information for an HTTP request.
//
// The phase fields hold the time spent in each phase. The *Done fields
// are measured from StartTime, so they grow along the request.
type TimingInfo struct {
	// StartTime is when the request started
	StartTime time.Time

	DNSLookupTime       time.Duration
	TCPConnectTime      time.Duration
	TLSHandshakeTime    time.Duration
	TimeToFirstByte     time.Duration
	ContentTransferTime time.Duration

	// NameLookupDone is when name resolution completed
	NameLookupDone time.Duration
	// ConnectDone is when the TCP connection was established
	ConnectDone time.Duration
	// StartTransfer is when the first response byte arrived
	StartTransfer time.Duration

	// TotalTime is the total time from request start to the end of the body
	TotalTime time.Duration
}

// Response represents the outcome of one fetch. The body is drained and
// discarded; only its size is kept.
type Response struct {
	StatusCode int
	Status     string
	Headers    http.Header
	ServerIP   string
	BytesRead  int64
	Reused     bool
	Timing     TimingInfo
}

// IsSuccess returns true if the response status code is in the 2xx range
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
