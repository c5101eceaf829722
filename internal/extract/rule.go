package extract

import (
	"strconv"
	"strings"

	"github.com/vvka-141/bibleload/pkg/bibleload"
)

// Rule maps one trimmed, non-empty line to a row.
//
// ok is false when the line does not match; that is a per-line failure the
// caller records and moves past. A non-nil error means the rule itself is
// misconfigured and extraction must stop.
type Rule interface {
	Match(line string) (row bibleload.Row, ok bool, err error)
}

// buildRow trims the text fields and converts chapter/verse.
// Non-numeric or non-positive numbers make the line a non-match.
func buildRow(book, chapter, verse, text string) (bibleload.Row, bool) {
	c, err := strconv.Atoi(strings.TrimSpace(chapter))
	if err != nil || c < 1 {
		return bibleload.Row{}, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(verse))
	if err != nil || v < 1 {
		return bibleload.Row{}, false
	}

	row := bibleload.Row{
		Book:    strings.TrimSpace(book),
		Chapter: c,
		Verse:   v,
		Text:    strings.TrimSpace(text),
	}
	if row.Book == "" || row.Text == "" {
		return bibleload.Row{}, false
	}
	return row, true
}
