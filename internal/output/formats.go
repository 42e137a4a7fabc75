package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wesleyorama2/samk/internal/bench"
	"github.com/wesleyorama2/samk/internal/metrics"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the available output formats
type OutputFormat string

const (
	// FormatText is the default human-readable text format
	FormatText OutputFormat = "text"
	// FormatJSON outputs in JSON format
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs in YAML format
	FormatYAML OutputFormat = "yaml"
)

// ParseFormat converts a flag value into an OutputFormat.
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// FormatProvider is an interface for different output formatters
type FormatProvider interface {
	FormatSummary(result *bench.Result, summary metrics.Summary) (string, error)
}

// SeriesData is one timing series in seconds.
type SeriesData struct {
	Median float64 `json:"median" yaml:"median"`
	Min    float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Mean   float64 `json:"mean,omitempty" yaml:"mean,omitempty"`
	P90    float64 `json:"p90,omitempty" yaml:"p90,omitempty"`
	P99    float64 `json:"p99,omitempty" yaml:"p99,omitempty"`
	Max    float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// SampleData is one fetch in seconds.
type SampleData struct {
	Run           int     `json:"run" yaml:"run"`
	StatusCode    int     `json:"statusCode" yaml:"statusCode"`
	Bytes         int64   `json:"bytes" yaml:"bytes"`
	Total         float64 `json:"total" yaml:"total"`
	Connect       float64 `json:"connect" yaml:"connect"`
	StartTransfer float64 `json:"startTransfer" yaml:"startTransfer"`
	NameLookup    float64 `json:"nameLookup" yaml:"nameLookup"`
}

// Report is the structured form of a benchmark summary
type Report struct {
	ID            string       `json:"id" yaml:"id"`
	RunName       string       `json:"runName,omitempty" yaml:"runName,omitempty"`
	Method        string       `json:"method" yaml:"method"`
	URL           string       `json:"url" yaml:"url"`
	ServerIP      string       `json:"serverIp" yaml:"serverIp"`
	StatusCode    int          `json:"statusCode" yaml:"statusCode"`
	Runs          int          `json:"runs" yaml:"runs"`
	NonSuccess    int          `json:"nonSuccess,omitempty" yaml:"nonSuccess,omitempty"`
	TotalBytes    int64        `json:"totalBytes" yaml:"totalBytes"`
	Total         SeriesData   `json:"total" yaml:"total"`
	Connect       SeriesData   `json:"connect" yaml:"connect"`
	StartTransfer SeriesData   `json:"startTransfer" yaml:"startTransfer"`
	NameLookup    SeriesData   `json:"nameLookup" yaml:"nameLookup"`
	Samples       []SampleData `json:"samples,omitempty" yaml:"samples,omitempty"`
}

// NewReport builds a Report. Spread figures and individual samples are
// only included when verbose is set.
func NewReport(result *bench.Result, summary metrics.Summary, verbose bool) Report {
	report := Report{
		ID:            result.ID.String(),
		RunName:       result.RunName,
		Method:        result.Method,
		URL:           result.URL,
		ServerIP:      summary.ServerIP,
		StatusCode:    summary.StatusCode,
		Runs:          summary.Runs,
		NonSuccess:    result.NonSuccess,
		TotalBytes:    summary.TotalBytes,
		Total:         seriesData(summary.Total, verbose),
		Connect:       seriesData(summary.Connect, verbose),
		StartTransfer: seriesData(summary.StartTransfer, verbose),
		NameLookup:    seriesData(summary.NameLookup, verbose),
	}

	if verbose {
		for _, s := range result.Samples {
			report.Samples = append(report.Samples, SampleData{
				Run:           s.Run,
				StatusCode:    s.StatusCode,
				Bytes:         s.BytesRead,
				Total:         s.Total.Seconds(),
				Connect:       s.Connect.Seconds(),
				StartTransfer: s.StartTransfer.Seconds(),
				NameLookup:    s.NameLookup.Seconds(),
			})
		}
	}

	return report
}

func seriesData(s metrics.SeriesStats, verbose bool) SeriesData {
	data := SeriesData{Median: s.Median.Seconds()}
	if verbose {
		data.Min = s.Min.Seconds()
		data.Mean = s.Mean.Seconds()
		data.P90 = s.P90.Seconds()
		data.P99 = s.P99.Seconds()
		data.Max = s.Max.Seconds()
	}
	return data
}

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	Verbose bool
	Pretty  bool
}

// FormatSummary formats a benchmark summary as JSON
func (f *JSONFormatter) FormatSummary(result *bench.Result, summary metrics.Summary) (string, error) {
	report := NewReport(result, summary, f.Verbose)

	var out []byte
	var err error
	if f.Pretty {
		out, err = json.MarshalIndent(report, "", "  ")
	} else {
		out, err = json.Marshal(report)
	}
	if err != nil {
		return "", fmt.Errorf("error formatting summary as JSON: %w", err)
	}
	return string(out) + "\n", nil
}

// YAMLFormatter formats output as YAML
type YAMLFormatter struct {
	Verbose bool
}

// FormatSummary formats a benchmark summary as YAML
func (f *YAMLFormatter) FormatSummary(result *bench.Result, summary metrics.Summary) (string, error) {
	out, err := yaml.Marshal(NewReport(result, summary, f.Verbose))
	if err != nil {
		return "", fmt.Errorf("error formatting summary as YAML: %w", err)
	}
	return string(out), nil
}

// GetFormatter returns the appropriate formatter for the given format
func GetFormatter(format OutputFormat, verbose bool, noColor bool) FormatProvider {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Verbose: verbose, Pretty: true}
	case FormatYAML:
		return &YAMLFormatter{Verbose: verbose}
	default:
		return NewFormatter(verbose, noColor)
	}
}
