package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/wesleyorama2/samk/internal/bench"
	"github.com/wesleyorama2/samk/internal/metrics"
)

// Formatter renders a benchmark summary as human-readable text
type Formatter struct {
	Verbose bool
	NoColor bool
	colors  *ColorScheme
}

// NewFormatter creates a new formatter with the given options
func NewFormatter(verbose, noColor bool) *Formatter {
	return &Formatter{
		Verbose: verbose,
		NoColor: noColor,
	}
}

func (f *Formatter) scheme() *ColorScheme {
	if f.colors == nil {
		if f.NoColor {
			f.colors = NoColorScheme()
		} else {
			f.colors = DefaultColorScheme()
		}
	}
	return f.colors
}

// FormatSummary formats the result of a benchmark. The first lines always
// carry the server address, the status code and the medians in seconds.
func (f *Formatter) FormatSummary(result *bench.Result, summary metrics.Summary) (string, error) {
	c := f.scheme()
	var buf strings.Builder

	if f.Verbose {
		name := result.RunName
		if name == "" {
			name = "-"
		}
		buf.WriteString(fmt.Sprintf("%s %s %s\n",
			c.Method.Sprint(result.Method), c.URL.Sprint(result.URL), c.Highlight.Sprintf("(%s)", name)))
		buf.WriteString(fmt.Sprintf("%s %s\n", c.Label.Sprint("Run ID:"), result.ID))
	}

	buf.WriteString(fmt.Sprintf("Ip= %s; Response code = %s;\n",
		c.Value.Sprint(summary.ServerIP), c.Status(summary.StatusCode).Sprint(summary.StatusCode)))
	buf.WriteString("Median of: \n")
	buf.WriteString(fmt.Sprintf("Total time = %s secs; Connect time = %s secs ; Start time = %s secs; Name lookup time = %s secs;\n",
		c.Value.Sprint(secs(summary.Total.Median)),
		c.Value.Sprint(secs(summary.Connect.Median)),
		c.Value.Sprint(secs(summary.StartTransfer.Median)),
		c.Value.Sprint(secs(summary.NameLookup.Median))))

	if result.NonSuccess > 0 {
		buf.WriteString(fmt.Sprintf("%s %d of %d runs returned a non-2xx status\n",
			WarningIcon(f.NoColor), result.NonSuccess, summary.Runs))
	}

	if f.Verbose {
		buf.WriteString(fmt.Sprintf("\n%s %d runs, %d bytes\n", c.Label.Sprint("Samples:"), summary.Runs, summary.TotalBytes))
		buf.WriteString(fmt.Sprintf("  %-16s %10s %10s %10s %10s %10s\n", "", "min", "mean", "p90", "p99", "max"))
		f.writeSeries(&buf, "Total", summary.Total)
		f.writeSeries(&buf, "Connect", summary.Connect)
		f.writeSeries(&buf, "Start transfer", summary.StartTransfer)
		f.writeSeries(&buf, "Name lookup", summary.NameLookup)
	}

	return buf.String(), nil
}

func (f *Formatter) writeSeries(buf *strings.Builder, label string, s metrics.SeriesStats) {
	buf.WriteString(fmt.Sprintf("  %-16s %10s %10s %10s %10s %10s\n",
		label, secs(s.Min), secs(s.Mean), secs(s.P90), secs(s.P99), secs(s.Max)))
}

// secs formats d as seconds with microsecond precision.
func secs(d time.Duration) string {
	return fmt.Sprintf("%06f", d.Seconds())
}
