package extract

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/bibleload/pkg/bibleload"
)

// maxLineBytes bounds a single source line.
const maxLineBytes = 1024 * 1024

// Options controls line filtering.
type Options struct {
	// SkipComments drops lines whose trimmed form starts with '#'
	SkipComments bool
}

// DefaultOptions skips comment lines.
func DefaultOptions() Options {
	return Options{SkipComments: true}
}

// Extract applies rule to every non-empty, non-comment line.
//
// Lines that do not match are collected in ParseResult.Unparsed and extraction
// continues. A rule error aborts immediately and no partial result is returned.
func Extract(lines []string, rule Rule, opts Options) (bibleload.ParseResult, error) {
	var result bibleload.ParseResult

	for i, raw := range lines {
		lineNumber := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if opts.SkipComments && strings.HasPrefix(line, "#") {
			continue
		}

		row, ok, err := rule.Match(line)
		if err != nil {
			return bibleload.ParseResult{}, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		if !ok {
			result.Unparsed = append(result.Unparsed, bibleload.UnparsedLine{
				LineNumber: lineNumber,
				Raw:        strings.TrimRight(raw, "\r\n"),
			})
			continue
		}
		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

// ExtractReader reads all lines from r and extracts them.
func ExtractReader(r io.Reader, rule Rule, opts Options) (bibleload.ParseResult, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return bibleload.ParseResult{}, err
	}
	return Extract(lines, rule, opts)
}

// ReadLines splits r into lines without their terminators.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if len(lines) == 0 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read source lines: %w", err)
	}
	return lines, nil
}

// CheckStrict fails when result holds any unparsed line. It is meant to run
// after extraction so the full list of unparsed lines is available to report.
func CheckStrict(result bibleload.ParseResult) error {
	if n := len(result.Unparsed); n > 0 {
		return fmt.Errorf("%w: %d unparsed line(s)", bibleload.ErrStrictMode, n)
	}
	return nil
}
