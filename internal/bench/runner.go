// Package bench repeatedly fetches the configured URL and records timings.
package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wesleyorama2/samk/internal/config"
	"github.com/wesleyorama2/samk/internal/http"
	"github.com/wesleyorama2/samk/internal/metrics"
)

var (
	// ErrNoURL is returned when the context has no URL to fetch.
	ErrNoURL = errors.New("empty url provided")
	// ErrNoRuns is returned when the context asks for zero fetches.
	ErrNoRuns = errors.New("number of runs must be at least 1")
)

// Doer executes one request. *http.Client implements it.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Result is the outcome of a benchmark.
type Result struct {
	ID      uuid.UUID
	RunName string
	URL     string
	Method  string
	Samples []metrics.Sample

	// NonSuccess counts runs answered with a status outside 2xx.
	NonSuccess int
}

// Runner performs the fetches of one ClientContext sequentially.
type Runner struct {
	client    Doer
	cc        *config.ClientContext
	logger    *slog.Logger
	synthetic bool
}

// Option is a function that configures a Runner
type Option func(*Runner)

// WithLogger sets the logger used for per-run output
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithSyntheticHeaders makes run k send k extra headers named
// "Header-name-<i>", appended to the context before the run.
func WithSyntheticHeaders(enabled bool) Option {
	return func(r *Runner) {
		r.synthetic = enabled
	}
}

// NewRunner creates a runner fetching cc.URL through client.
func NewRunner(client Doer, cc *config.ClientContext, options ...Option) *Runner {
	r := &Runner{
		client: client,
		cc:     cc,
		logger: slog.Default(),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Run fetches the URL cc.NumTries times. The first failed fetch aborts the
// benchmark.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if r.cc.URL == "" {
		return nil, ErrNoURL
	}
	if r.cc.NumTries < 1 {
		return nil, ErrNoRuns
	}

	result := &Result{
		ID:      uuid.New(),
		RunName: r.cc.RunName,
		URL:     r.cc.URL,
		Method:  r.cc.RequestType.Method(),
		Samples: make([]metrics.Sample, 0, r.cc.NumTries),
	}
	logger := r.logger.With("run_id", result.ID.String())

	for run := 0; run < r.cc.NumTries; run++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if r.synthetic && run > 0 {
			header := fmt.Sprintf("Header-name-%d: Header-value-%d", run-1, run-1)
			if err := config.AppendHeader(r.cc, header); err != nil {
				return nil, fmt.Errorf("run %d: failed to add custom header: %w", run, err)
			}
		}

		sample, ok, err := r.fetch(ctx, run)
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", run, err)
		}
		if !ok {
			result.NonSuccess++
			logger.Warn("non-success status", "run", run, "status", sample.StatusCode)
		}

		logger.Debug("run completed",
			"run", run,
			"status", sample.StatusCode,
			"total", sample.Total,
			"headers", r.cc.HeaderCount())

		result.Samples = append(result.Samples, sample)
	}

	return result, nil
}

func (r *Runner) fetch(ctx context.Context, run int) (metrics.Sample, bool, error) {
	req := http.NewRequest(r.cc.RequestType.Method(), r.cc.URL)
	if err := req.WithRawHeaders(r.cc.Headers); err != nil {
		return metrics.Sample{}, false, err
	}

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		return metrics.Sample{}, false, err
	}

	return metrics.Sample{
		Run:           run,
		StatusCode:    resp.StatusCode,
		ServerIP:      resp.ServerIP,
		BytesRead:     resp.BytesRead,
		NameLookup:    resp.Timing.NameLookupDone,
		Connect:       resp.Timing.ConnectDone,
		StartTransfer: resp.Timing.StartTransfer,
		Total:         resp.Timing.TotalTime,
	}, resp.IsSuccess(), nil
}
