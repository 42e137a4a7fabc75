package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/samk/internal/bench"
	"github.com/wesleyorama2/samk/internal/config"
	"github.com/wesleyorama2/samk/internal/http"
	"github.com/wesleyorama2/samk/internal/logging"
	"github.com/wesleyorama2/samk/internal/metrics"
	"github.com/wesleyorama2/samk/internal/output"
)

var version = "0.1.0"

// ErrUsage marks invalid command line values.
var ErrUsage = errors.New("invalid usage")

// NewRootCmd creates the samk command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "samk -f FILE",
		Short:   "Measure HTTP fetch timings of a URL",
		Version: version,
		Long: `samk fetches the URL named in a directive file a number of times and
reports the median total, connect, start-transfer and name lookup times.

The directive file holds one TAG = value pair per line, for example:

  RUN_NAME = "homepage"
  NUM_TRIES = 10
  URL = http://localhost:8080/
  HEADER = "Accept: text/html"
  TIMER_TCP_CONN_SETUP = 4`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBenchmark,
	}

	cmd.Flags().StringP("file", "f", "", "Directive file to read (required)")
	cmd.Flags().IntP("connect-timeout", "c", int(http.DefaultConnectTimeout/time.Second), "Connect timeout in seconds when TIMER_TCP_CONN_SETUP is unset")
	cmd.Flags().IntP("num-runs", "n", 0, "Number of fetches, overrides NUM_TRIES")
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "Overall timeout of one fetch")
	cmd.Flags().Bool("verify-tls", false, "Verify TLS certificates")
	cmd.Flags().StringP("request", "X", "", "Request method (GET, POST, PUT, HEAD, DELETE)")
	cmd.Flags().StringP("output", "o", string(output.FormatText), "Output format (text, json, yaml)")
	cmd.Flags().CountP("verbose", "v", "Increase verbosity (-v info, -vv debug)")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().Bool("synthetic-headers", false, "Add one generated header per run after the first")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// options holds the validated command line.
type options struct {
	file           string
	connectTimeout time.Duration
	timeout        time.Duration
	verifyTLS      bool
	numRuns        int
	requestType    config.RequestType
	format         output.OutputFormat
	verbosity      int
	noColor        bool
	synthetic      bool
}

func parseOptions(cmd *cobra.Command) (options, error) {
	var opts options
	flags := cmd.Flags()

	opts.file, _ = flags.GetString("file")
	opts.verbosity, _ = flags.GetCount("verbose")
	opts.noColor, _ = flags.GetBool("no-color")
	opts.synthetic, _ = flags.GetBool("synthetic-headers")
	opts.verifyTLS, _ = flags.GetBool("verify-tls")

	opts.timeout, _ = flags.GetDuration("timeout")
	if opts.timeout <= 0 {
		return opts, fmt.Errorf("%w: timeout must be greater than 0, got %s", ErrUsage, opts.timeout)
	}

	seconds, _ := flags.GetInt("connect-timeout")
	if seconds <= 0 {
		return opts, fmt.Errorf("%w: connect timeout must be greater than 0, got %d", ErrUsage, seconds)
	}
	opts.connectTimeout = time.Duration(seconds) * time.Second

	opts.numRuns, _ = flags.GetInt("num-runs")
	if opts.numRuns < 0 {
		return opts, fmt.Errorf("%w: number of runs must not be negative, got %d", ErrUsage, opts.numRuns)
	}

	if method, _ := flags.GetString("request"); method != "" {
		rt, err := config.ParseRequestType(method)
		if err != nil {
			return opts, fmt.Errorf("%w: %v", ErrUsage, err)
		}
		opts.requestType = rt
	}

	format, _ := flags.GetString("output")
	f, err := output.ParseFormat(format)
	if err != nil {
		return opts, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	opts.format = f

	return opts, nil
}

func runBenchmark(cmd *cobra.Command, _ []string) error {
	opts, err := parseOptions(cmd)
	if err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), logging.LevelForVerbosity(opts.verbosity))

	cc := config.NewClientContext()
	report, err := config.NewParser(config.WithLogger(logger)).ParseFile(opts.file, cc)
	if err != nil {
		return err
	}
	logger.Info("configuration loaded",
		"file", opts.file,
		"lines", report.Lines,
		"applied", report.Applied,
		"warnings", len(report.Warnings))

	if opts.numRuns > 0 {
		cc.NumTries = opts.numRuns
	}
	if opts.requestType != 0 {
		cc.RequestType = opts.requestType
	}
	if cc.URL != "" {
		cc.URL = normalizeURL(cc.URL)
	}

	connectTimeout := cc.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = opts.connectTimeout
	}

	client := http.NewClient(
		http.WithTimeout(opts.timeout),
		http.WithConnectTimeout(connectTimeout),
		http.WithInsecureTLS(!opts.verifyTLS),
		http.WithUserAgent(cc.UserAgent),
		http.WithKeepAlive(!cc.FreshConnect),
		http.WithLogger(logger),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runner := bench.NewRunner(client, cc,
		bench.WithLogger(logger),
		bench.WithSyntheticHeaders(opts.synthetic))

	result, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	noColor := output.ColorDisabled(cmd.OutOrStdout(), opts.noColor)
	formatter := output.GetFormatter(opts.format, opts.verbosity > 0, noColor)

	text, err := formatter.FormatSummary(result, metrics.Summarize(result.Samples))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

// Execute runs the samk command with the process arguments.
func Execute() error {
	return ExecuteContext(context.Background(), os.Args[1:])
}

// ExecuteContext runs the samk command with args.
func ExecuteContext(ctx context.Context, args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
