package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"junit", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestGetFormatter(t *testing.T) {
	assert.IsType(t, &Formatter{}, GetFormatter(FormatText, false, true))
	assert.IsType(t, &JSONFormatter{}, GetFormatter(FormatJSON, false, true))
	assert.IsType(t, &YAMLFormatter{}, GetFormatter(FormatYAML, false, true))
	assert.IsType(t, &Formatter{}, GetFormatter("other", false, true))
}

func TestJSONFormatter(t *testing.T) {
	result, summary := sampleResult()

	out, err := (&JSONFormatter{Pretty: true}).FormatSummary(result, summary)
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "6f1c3c1e-8d3a-4b2a-9a55-1f0c2d3e4f50", report.ID)
	assert.Equal(t, "127.0.0.1", report.ServerIP)
	assert.Equal(t, 200, report.StatusCode)
	assert.Equal(t, 3, report.Runs)
	assert.Zero(t, report.NonSuccess)
	assert.InDelta(t, 0.030, report.Total.Median, 1e-9)
	assert.Zero(t, report.Total.Max, "spread is verbose only")
	assert.Empty(t, report.Samples)
}

func TestJSONFormatter_Verbose(t *testing.T) {
	result, summary := sampleResult()

	out, err := (&JSONFormatter{Verbose: true}).FormatSummary(result, summary)
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Samples, 3)
	assert.Equal(t, 2, report.Samples[1].Run)
	assert.InDelta(t, 0.040, report.Total.Max, 0.001)
}

func TestYAMLFormatter(t *testing.T) {
	result, summary := sampleResult()

	out, err := (&YAMLFormatter{}).FormatSummary(result, summary)
	require.NoError(t, err)

	var report Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, "smoke", report.RunName)
	assert.Equal(t, "GET", report.Method)
	assert.InDelta(t, 0.003, report.Connect.Median, 1e-9)
}
