package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Outcome is the result of processing one line of a directive file.
type Outcome int

const (
	// OutcomeFailed means the line produced a fatal error.
	OutcomeFailed Outcome = iota
	// OutcomeSkipped means the line was blank or a comment.
	OutcomeSkipped
	// OutcomeApplied means the directive was validated and stored.
	OutcomeApplied
	// OutcomeEmptyValue means the directive had an empty value and was
	// ignored with a warning.
	OutcomeEmptyValue
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeApplied:
		return "applied"
	case OutcomeEmptyValue:
		return "empty-value"
	default:
		return "failed"
	}
}

// Directive is one "TAG = value" pair split from a line.
type Directive struct {
	Tag      string
	RawValue string
}

// Report summarises a successful parse.
type Report struct {
	Lines    int
	Applied  int
	Warnings []Warning
}

// Parser reads directive files into a ClientContext.
type Parser struct {
	logger *slog.Logger
}

// ParserOption is a function that configures a Parser
type ParserOption func(*Parser)

// WithLogger sets the logger used for warnings and debug output
func WithLogger(logger *slog.Logger) ParserOption {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser creates a new Parser with the given options
func NewParser(options ...ParserOption) *Parser {
	p := &Parser{logger: slog.Default()}
	for _, option := range options {
		option(p)
	}
	return p
}

// ParseFile parses the directive file at path into cc using a default Parser.
func ParseFile(path string, cc *ClientContext) (*Report, error) {
	return NewParser().ParseFile(path, cc)
}

// ParseFile parses the directive file at path into cc. On error cc may be
// partially populated and must not be used.
func (p *Parser) ParseFile(path string, cc *ClientContext) (*Report, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileOpen, path, err)
	}
	defer f.Close()

	report, err := p.Parse(f, cc)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	return report, nil
}

// Parse reads directives from r line by line and stops at the first fatal
// error.
func (p *Parser) Parse(r io.Reader, cc *ClientContext) (*Report, error) {
	report := &Report{}
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		report.Lines++
		outcome, warning, err := p.parseLine(scanner.Text(), report.Lines, cc)
		switch outcome {
		case OutcomeFailed:
			return nil, err
		case OutcomeApplied:
			report.Applied++
		case OutcomeEmptyValue:
			report.Warnings = append(report.Warnings, *warning)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &DirectiveError{Line: report.Lines + 1, Err: err}
	}

	p.logger.Debug("config parsed",
		"lines", report.Lines,
		"applied", report.Applied,
		"warnings", len(report.Warnings))

	return report, nil
}

// ParseLine processes a single line. lineNo is only used for reporting.
// Warnings are logged; the returned error is always fatal.
func (p *Parser) ParseLine(line string, lineNo int, cc *ClientContext) (Outcome, error) {
	outcome, _, err := p.parseLine(line, lineNo, cc)
	return outcome, err
}

func (p *Parser) parseLine(line string, lineNo int, cc *ClientContext) (Outcome, *Warning, error) {
	if _, ok := skipWhitespace(newCursor(line)); !ok || line[0] == '#' {
		return OutcomeSkipped, nil, nil
	}

	d, err := SplitDirective(line)
	if err != nil {
		return OutcomeFailed, nil, &DirectiveError{Line: lineNo, Err: err}
	}

	fail := func(err error) (Outcome, *Warning, error) {
		return OutcomeFailed, nil, &DirectiveError{Line: lineNo, Tag: d.Tag, Value: d.RawValue, Err: err}
	}

	entry, err := findEntry(d.Tag)
	if err != nil {
		return fail(err)
	}

	value, err := PreprocessValue(d.RawValue)
	if err != nil && !errors.Is(err, ErrOnlyWhitespaceValue) {
		return fail(err)
	}
	if err != nil || value == "" {
		if err == nil {
			err = ErrEmptyValue
		} else {
			err = fmt.Errorf("%w: %w", ErrEmptyValue, err)
		}
		return p.warn(lineNo, d.Tag, err)
	}

	if entry.reserved {
		p.logger.Debug("reserved tag accepted without effect", "line", lineNo, "tag", d.Tag, "value", value)
	}

	if err := entry.validate(cc, value); err != nil {
		if errors.Is(err, ErrEmptyValue) {
			return p.warn(lineNo, d.Tag, err)
		}
		return fail(err)
	}

	return OutcomeApplied, nil, nil
}

func (p *Parser) warn(lineNo int, tag string, err error) (Outcome, *Warning, error) {
	w := &Warning{Line: lineNo, Tag: tag, Err: err}
	p.logger.Warn("directive ignored", "line", lineNo, "tag", tag, "reason", err)
	return OutcomeEmptyValue, w, nil
}

// SplitDirective splits line at its first '='. The tag is the first run of
// non-whitespace before the separator; the raw value is everything after it.
func SplitDirective(line string) (Directive, error) {
	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return Directive{}, ErrMissingSeparator
	}

	start, ok := skipWhitespace(newCursor(line[:eq]))
	if !ok {
		return Directive{}, ErrEmptyTagName
	}
	end, _ := skipNonWhitespace(start)

	return Directive{
		Tag:      line[start.pos:end.pos],
		RawValue: line[eq+1:],
	}, nil
}
