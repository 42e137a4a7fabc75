package bench

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/samk/internal/config"
	"github.com/wesleyorama2/samk/internal/http"
)

// recordingServer records the custom header count of every request.
func recordingServer(t *testing.T) (*httptest.Server, func() []int) {
	t.Helper()
	var mu sync.Mutex
	var counts []int

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		n := 0
		for i := 0; ; i++ {
			if r.Header.Get(fmt.Sprintf("Header-name-%d", i)) == "" {
				break
			}
			n++
		}
		mu.Lock()
		counts = append(counts, n)
		mu.Unlock()
		w.Write([]byte("hello"))
	}))
	t.Cleanup(server.Close)

	return server, func() []int {
		mu.Lock()
		defer mu.Unlock()
		return append([]int(nil), counts...)
	}
}

func TestRunner_Run(t *testing.T) {
	server, counts := recordingServer(t)

	cc := config.NewClientContext()
	cc.RunName = "smoke"
	cc.URL = server.URL
	cc.NumTries = 3
	require.NoError(t, config.AppendHeader(cc, "X-From-File: 1"))

	result, err := NewRunner(http.NewClient(), cc).Run(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, result.ID)
	assert.Equal(t, "smoke", result.RunName)
	assert.Equal(t, "GET", result.Method)
	require.Len(t, result.Samples, 3)
	for i, s := range result.Samples {
		assert.Equal(t, i, s.Run)
		assert.Equal(t, 200, s.StatusCode)
		assert.Equal(t, int64(5), s.BytesRead)
		assert.Positive(t, s.Total)
	}
	assert.Zero(t, result.NonSuccess)
	assert.Equal(t, []int{0, 0, 0}, counts())
	assert.Equal(t, 1, cc.HeaderCount())
}

func TestRunner_SyntheticHeaders(t *testing.T) {
	server, counts := recordingServer(t)

	cc := config.NewClientContext()
	cc.URL = server.URL
	cc.NumTries = 4

	_, err := NewRunner(http.NewClient(), cc, WithSyntheticHeaders(true)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, counts())
	assert.Equal(t, []string{
		"Header-name-0: Header-value-0",
		"Header-name-1: Header-value-1",
		"Header-name-2: Header-value-2",
	}, cc.Headers)
}

func TestRunner_SyntheticHeadersRespectLimit(t *testing.T) {
	cc := config.NewClientContext()
	cc.URL = "http://127.0.0.1:1"
	cc.NumTries = 2
	for i := 0; i < config.MaxCustomHeaders; i++ {
		require.NoError(t, config.AppendHeader(cc, fmt.Sprintf("X-%d: v", i)))
	}

	fake := &fakeDoer{}
	_, err := NewRunner(fake, cc, WithSyntheticHeaders(true)).Run(context.Background())

	assert.ErrorIs(t, err, config.ErrHeaderLimitExceeded)
	assert.Equal(t, 1, fake.calls, "the first run happens before any header is injected")
}

func TestRunner_NoURL(t *testing.T) {
	cc := config.NewClientContext()
	cc.NumTries = 1

	_, err := NewRunner(&fakeDoer{}, cc).Run(context.Background())
	assert.ErrorIs(t, err, ErrNoURL)
}

func TestRunner_NoRuns(t *testing.T) {
	cc := config.NewClientContext()
	cc.URL = "http://example.invalid"

	fake := &fakeDoer{}
	_, err := NewRunner(fake, cc).Run(context.Background())
	assert.ErrorIs(t, err, ErrNoRuns)
	assert.Zero(t, fake.calls)
}

func TestRunner_FetchErrorAborts(t *testing.T) {
	boom := errors.New("connection refused")
	fake := &fakeDoer{failAt: 2, err: boom}

	cc := config.NewClientContext()
	cc.URL = "http://example.invalid"
	cc.NumTries = 5

	_, err := NewRunner(fake, cc).Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "run 1")
	assert.Equal(t, 2, fake.calls)
}

func TestRunner_CountsNonSuccess(t *testing.T) {
	fake := &fakeDoer{statuses: []int{200, 503, 404, 204}}

	cc := config.NewClientContext()
	cc.URL = "http://example.invalid"
	cc.NumTries = 4

	result, err := NewRunner(fake, cc).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.NonSuccess)
	assert.Equal(t, 204, result.Samples[3].StatusCode)
}

func TestRunner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cc := config.NewClientContext()
	cc.URL = "http://example.invalid"
	cc.NumTries = 3

	_, err := NewRunner(&fakeDoer{}, cc).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

type fakeDoer struct {
	calls    int
	failAt   int
	err      error
	statuses []int
}

func (f *fakeDoer) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	f.calls++
	if f.err != nil && f.calls == f.failAt {
		return nil, f.err
	}
	status := 200
	if f.calls <= len(f.statuses) {
		status = f.statuses[f.calls-1]
	}
	return &http.Response{StatusCode: status, Timing: http.TimingInfo{TotalTime: 1}}, nil
}
