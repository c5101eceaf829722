package bibleload_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/bibleload/pkg/bibleload"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, bibleload.ExitSuccess},
		{"general error", errors.New("something went wrong"), bibleload.ExitGeneralError},
		{"unknown flag", errors.New("unknown flag: --foo"), bibleload.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), bibleload.ExitUsageError},
		{"accepts args", errors.New("accepts between 2 and 3 arg(s), received 1"), bibleload.ExitUsageError},
		{"required flag", errors.New(`required flag(s) "input" not set`), bibleload.ExitUsageError},
		{"invalid argument", errors.New(`invalid argument "abc" for "--batch-size" flag`), bibleload.ExitUsageError},
		{"invalid config", fmt.Errorf("missing required connection settings: host: %w", bibleload.ErrInvalidConfig), bibleload.ExitConfigError},
		{"invalid pattern", fmt.Errorf("compile: %w", bibleload.ErrInvalidPattern), bibleload.ExitConfigError},
		{"unsupported format", bibleload.ErrUnsupportedFormat, bibleload.ExitConfigError},
		{"invalid book map", bibleload.ErrInvalidBookMap, bibleload.ExitConfigError},
		{"connection failed", bibleload.ErrConnectionFailed, bibleload.ExitConnectionError},
		{"connection refused text", errors.New("dial tcp: connection refused"), bibleload.ExitConnectionError},
		{"empty input", bibleload.ErrEmptyInput, bibleload.ExitInputError},
		{"invalid row", fmt.Errorf("line 3: %w", bibleload.ErrInvalidRow), bibleload.ExitInputError},
		{"strict mode", fmt.Errorf("%w: 2 unparsed line(s)", bibleload.ErrStrictMode), bibleload.ExitStrictParse},
		{"unmapped book", fmt.Errorf("book 'Genesis': %w", bibleload.ErrUnmappedBook), bibleload.ExitMappingError},
		{"book resolution", bibleload.ErrBookResolution, bibleload.ExitLoadFailed},
		{"load failed joined with rollback", errors.Join(fmt.Errorf("batch 1: %w", bibleload.ErrLoadFailed), errors.New("rollback: conn closed")), bibleload.ExitLoadFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bibleload.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
