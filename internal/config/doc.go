// Package config reads samk directive files into a ClientContext.
//
// A directive file holds one "TAG = value" directive per line:
//
//	# full-line comment
//	RUN_NAME = "nightly run"
//	NUM_TRIES = 5            # trailing comment
//	URL = https://example.com/health
//	HEADER = "X-Trace: on"
//	TIMER_TCP_CONN_SETUP = 10
//	KEEP_ALIVE = 1           # new connection for every run
//
// Values end at the first whitespace unless they are wrapped in double
// quotes, which are removed. A '#' anywhere in the value starts a comment.
//
// Parsing stops at the first fatal error, reported as a *DirectiveError
// carrying the line number. A directive whose value turns out empty is
// skipped with a warning.
//
//	cc := config.NewClientContext()
//	report, err := config.ParseFile("bench.conf", cc)
//	if err != nil {
//	    log.Fatalf("line %d: %v", config.ErrorLine(err), err)
//	}
package config
