// Package rowio serializes normalized rows to and from the JSONL and CSV exchange formats.
package rowio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vvka-141/bibleload/pkg/bibleload"
)

// Format is a row exchange format.
type Format string

const (
	FormatJSONL Format = "jsonl"
	FormatCSV   Format = "csv"
)

// Header is the fixed CSV header and the JSONL key set.
var Header = []string{"book", "chapter", "verse", "text"}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatJSONL:
		return FormatJSONL, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("format %q (use jsonl or csv): %w", name, bibleload.ErrUnsupportedFormat)
	}
}

// FormatFromPath picks the format from a .jsonl or .csv extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl":
		return FormatJSONL, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("input extension of %q (use .jsonl or .csv): %w", path, bibleload.ErrUnsupportedFormat)
	}
}

// Write renders rows to w in order.
func Write(w io.Writer, format Format, rows []bibleload.Row) error {
	switch format {
	case FormatJSONL:
		return WriteJSONL(w, rows)
	case FormatCSV:
		return WriteCSV(w, rows)
	default:
		return fmt.Errorf("format %q: %w", format, bibleload.ErrUnsupportedFormat)
	}
}

// Read parses every row from r. Rows are normalized (book and text trimmed) and
// chapter/verse must be positive integers; violations wrap bibleload.ErrInvalidRow.
func Read(r io.Reader, format Format) ([]bibleload.Row, error) {
	switch format {
	case FormatJSONL:
		return ReadJSONL(r)
	case FormatCSV:
		return ReadCSV(r)
	default:
		return nil, fmt.Errorf("format %q: %w", format, bibleload.ErrUnsupportedFormat)
	}
}

func normalize(book, text string, chapter, verse int, line int) (bibleload.Row, error) {
	row := bibleload.Row{
		Book:    strings.TrimSpace(book),
		Chapter: chapter,
		Verse:   verse,
		Text:    strings.TrimSpace(text),
	}
	switch {
	case row.Book == "":
		return row, fmt.Errorf("line %d: book is empty: %w", line, bibleload.ErrInvalidRow)
	case row.Chapter < 1:
		return row, fmt.Errorf("line %d: chapter must be >= 1, got %d: %w", line, row.Chapter, bibleload.ErrInvalidRow)
	case row.Verse < 1:
		return row, fmt.Errorf("line %d: verse must be >= 1, got %d: %w", line, row.Verse, bibleload.ErrInvalidRow)
	}
	return row, nil
}
