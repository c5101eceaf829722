package extract

import (
	"fmt"
	"strings"

	"github.com/vvka-141/bibleload/pkg/bibleload"
)

// DelimitedRule extracts rows from "book<sep>chapter<sep>verse<sep>text" lines.
// Separators after the third one belong to the text.
type DelimitedRule struct {
	sep string
}

// NewDelimitedRule returns a rule splitting on sep.
func NewDelimitedRule(sep string) (*DelimitedRule, error) {
	if sep == "" {
		return nil, fmt.Errorf("delimiter must not be empty: %w", bibleload.ErrInvalidPattern)
	}
	return &DelimitedRule{sep: sep}, nil
}

// Match implements Rule.
func (r *DelimitedRule) Match(line string) (bibleload.Row, bool, error) {
	parts := strings.SplitN(line, r.sep, 4)
	if len(parts) != 4 {
		return bibleload.Row{}, false, nil
	}
	row, ok := buildRow(parts[0], parts[1], parts[2], parts[3])
	return row, ok, nil
}
