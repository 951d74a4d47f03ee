package todo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/nibzard/agenda-go/internal/agenda"
	"github.com/nibzard/agenda-go/internal/utils"
)

const (
	keywordTodo = "TODO"
	keywordDone = "DONE"
	propDue     = "due"
	propDeps    = "deps"
)

// ErrMissingName is returned for a task line without a "name:" token.
var ErrMissingName = errors.New("missing task name")

// ParseError reports a task line that could not be turned into a record.
type ParseError struct {
	Source string
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// LineParser decodes the task-line syntax of one source.
type LineParser struct {
	source string
	scope  string
	logger *log.Logger

	// Warnings collects problems that did not prevent a task from being
	// declared, such as unknown properties or bad dates.
	Warnings []string
}

// NewLineParser creates a parser for the named source. Records are tagged
// with scope. A nil logger discards warnings from the log; they are still
// collected in Warnings.
func NewLineParser(source, scope string, logger *log.Logger) *LineParser {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &LineParser{source: source, scope: scope, logger: logger}
}

// Parse reads every task line from r. Lines that cannot be decoded are
// returned as *ParseError values and skipped; the returned error is only
// set when reading fails.
func (p *LineParser) Parse(r io.Reader) ([]agenda.Record, []error, error) {
	var (
		recs      []agenda.Record
		parseErrs []error
		pending   string
		startLine int
	)

	flush := func() {
		if pending == "" {
			return
		}
		rec, err := p.ParseLine(pending, startLine)
		if err != nil {
			parseErrs = append(parseErrs, err)
		} else {
			recs = append(recs, rec)
		}
		pending = ""
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if pending != "" && startsWithSpace(line) {
			pending += " " + trimmed
			continue
		}
		flush()
		pending = trimmed
		startLine = lineNo
	}
	flush()

	if err := scanner.Err(); err != nil {
		return recs, parseErrs, fmt.Errorf("read %s: %w", p.source, err)
	}
	return recs, parseErrs, nil
}

// ParseLine decodes a single, already joined task line.
func (p *LineParser) ParseLine(line string, lineNo int) (agenda.Record, error) {
	rec := agenda.Record{Scope: p.scope}

	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	if rest, ok := cutKeyword(line, keywordTodo); ok {
		line = rest
	} else if rest, ok := cutKeyword(line, keywordDone); ok {
		rec.Done = true
		line = rest
	}

	name, rest, ok := cutName(line)
	if !ok {
		return agenda.Record{}, &ParseError{Source: p.source, Line: lineNo, Err: ErrMissingName}
	}
	rec.Name = name
	line = strings.TrimLeftFunc(rest, unicode.IsSpace)

	if len(line) >= 3 && line[0] == '(' && line[2] == ')' && line[1] >= 'A' && line[1] <= 'C' {
		pri, _ := agenda.ParsePriority(line[1:2])
		rec.Priority = pri
		line = strings.TrimLeftFunc(line[3:], unicode.IsSpace)
	}

	// Properties are the trailing key:value words; scanning stops at the
	// first word without a colon.
	var depGroups [][]string
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	for line != "" {
		i := strings.LastIndexFunc(line, unicode.IsSpace)
		word := line[i+1:]
		key, val, found := strings.Cut(word, ":")
		if !found {
			break
		}
		switch key {
		case propDue:
			due, err := utils.ParseDay(val)
			if err != nil {
				p.warn(lineNo, "improper time format", "value", val)
				break
			}
			rec.Due = &due
		case propDeps:
			depGroups = append([][]string{utils.SplitAndTrim(val, ",")}, depGroups...)
		default:
			p.warn(lineNo, "unknown property", "property", key)
		}
		line = strings.TrimRightFunc(line[:i+1], unicode.IsSpace)
	}
	for _, group := range depGroups {
		rec.Deps = append(rec.Deps, group...)
	}

	rec.Description = line
	return rec, nil
}

func (p *LineParser) warn(lineNo int, msg string, keyvals ...any) {
	fields := append([]any{"source", p.source, "line", lineNo}, keyvals...)
	p.logger.Warn(msg, fields...)

	detail := msg
	for i := 0; i+1 < len(keyvals); i += 2 {
		detail += fmt.Sprintf(" %v=%q", keyvals[i], fmt.Sprint(keyvals[i+1]))
	}
	p.Warnings = append(p.Warnings, fmt.Sprintf("%s:%d: %s", p.source, lineNo, detail))
}

// cutKeyword strips a leading status keyword followed by whitespace or the
// end of the line.
func cutKeyword(line, keyword string) (string, bool) {
	if !strings.HasPrefix(line, keyword) {
		return line, false
	}
	rest := line[len(keyword):]
	if rest != "" && !startsWithSpace(rest) {
		return line, false
	}
	return strings.TrimLeftFunc(rest, unicode.IsSpace), true
}

// cutName splits "name: rest". The name is the first word and must end with
// a colon.
func cutName(line string) (name, rest string, ok bool) {
	for i, r := range line {
		if unicode.IsSpace(r) {
			return "", line, false
		}
		if r == ':' {
			if i == 0 {
				return "", line, false
			}
			return line[:i], line[i+1:], true
		}
	}
	return "", line, false
}

func startsWithSpace(s string) bool {
	for _, r := range s {
		return unicode.IsSpace(r)
	}
	return false
}
