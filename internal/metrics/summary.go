package metrics

import (
	"slices"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Sample is the timing of one fetch. Durations are measured from the start
// of the request.
type Sample struct {
	Run           int
	StatusCode    int
	ServerIP      string
	BytesRead     int64
	NameLookup    time.Duration
	Connect       time.Duration
	StartTransfer time.Duration
	Total         time.Duration
}

// SeriesStats describes one timing series across all runs.
//
// Median is exact. The other figures come from an HDR histogram with
// microsecond resolution and 3 significant figures.
type SeriesStats struct {
	Count  int64
	Median time.Duration
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	P90    time.Duration
	P99    time.Duration
}

// Summary aggregates the samples of one benchmark.
type Summary struct {
	Runs          int
	ServerIP      string
	StatusCode    int
	TotalBytes    int64
	Total         SeriesStats
	Connect       SeriesStats
	StartTransfer SeriesStats
	NameLookup    SeriesStats
}

// HistogramConfig bounds the values recorded in histograms.
type HistogramConfig struct {
	// Min is the minimum recordable value in microseconds (default: 1)
	Min int64
	// Max is the maximum recordable value in microseconds (default: 1 hour)
	Max int64
	// SigFigs is the number of significant figures (default: 3)
	SigFigs int
}

// DefaultHistogramConfig returns the default configuration.
func DefaultHistogramConfig() HistogramConfig {
	return HistogramConfig{
		Min:     1,
		Max:     3600000000, // 1 hour in microseconds
		SigFigs: 3,
	}
}

// Summarize computes statistics over samples. The server IP and status
// code are taken from the last sample.
func Summarize(samples []Sample) Summary {
	return SummarizeWithConfig(samples, DefaultHistogramConfig())
}

// SummarizeWithConfig is Summarize with custom histogram bounds.
func SummarizeWithConfig(samples []Sample, config HistogramConfig) Summary {
	s := Summary{Runs: len(samples)}
	if len(samples) == 0 {
		return s
	}

	last := samples[len(samples)-1]
	s.ServerIP = last.ServerIP
	s.StatusCode = last.StatusCode

	series := func(get func(Sample) time.Duration) SeriesStats {
		values := make([]time.Duration, len(samples))
		for i, sample := range samples {
			values[i] = get(sample)
		}
		return seriesStats(values, config)
	}

	for _, sample := range samples {
		s.TotalBytes += sample.BytesRead
	}
	s.Total = series(func(x Sample) time.Duration { return x.Total })
	s.Connect = series(func(x Sample) time.Duration { return x.Connect })
	s.StartTransfer = series(func(x Sample) time.Duration { return x.StartTransfer })
	s.NameLookup = series(func(x Sample) time.Duration { return x.NameLookup })

	return s
}

// Median returns the middle value of values, or the mean of the two middle
// values when the count is even. values is not modified.
func Median(values []time.Duration) time.Duration {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	if n%2 == 0 {
		return (sorted[(n-1)/2] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

func seriesStats(values []time.Duration, config HistogramConfig) SeriesStats {
	hist := hdrhistogram.New(config.Min, config.Max, config.SigFigs)

	for _, v := range values {
		micros := v.Microseconds()
		// Clamp to valid range
		if micros < config.Min {
			micros = config.Min
		}
		if micros > config.Max {
			micros = config.Max
		}
		hist.RecordValue(micros)
	}

	return SeriesStats{
		Count:  hist.TotalCount(),
		Median: Median(values),
		Min:    time.Duration(hist.Min()) * time.Microsecond,
		Max:    time.Duration(hist.Max()) * time.Microsecond,
		Mean:   time.Duration(hist.Mean()) * time.Microsecond,
		P90:    time.Duration(hist.ValueAtQuantile(90)) * time.Microsecond,
		P99:    time.Duration(hist.ValueAtQuantile(99)) * time.Microsecond,
	}
}
