package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vvka-141/bibleload/pkg/bibleload"
)

// RequiredGroups are the named capture groups every line pattern must define.
var RequiredGroups = []string{"book", "chapter", "verse", "text"}

// RegexRule extracts rows with a regular expression using named groups.
type RegexRule struct {
	re    *regexp.Regexp
	index map[string]int
}

// NewRegexRule compiles pattern and checks that it defines all RequiredGroups.
func NewRegexRule(pattern string) (*RegexRule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile line pattern: %v: %w", err, bibleload.ErrInvalidPattern)
	}

	index := make(map[string]int, len(RequiredGroups))
	for i, name := range re.SubexpNames() {
		if name != "" {
			index[name] = i
		}
	}

	var missing []string
	for _, name := range RequiredGroups {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("line pattern is missing named groups: %s: %w", strings.Join(missing, ", "), bibleload.ErrInvalidPattern)
	}

	return &RegexRule{re: re, index: index}, nil
}

// MustDefaultRule returns a RegexRule for bibleload.DefaultLinePattern.
func MustDefaultRule() *RegexRule {
	r, err := NewRegexRule(bibleload.DefaultLinePattern)
	if err != nil {
		panic(err)
	}
	return r
}

// Pattern returns the source pattern.
func (r *RegexRule) Pattern() string {
	return r.re.String()
}

// Match applies the pattern at the start of the line; an unanchored pattern
// that only matches after a prefix is a non-match. A match in which a
// required group did not participate (e.g. "(?P<verse>\d+)?") is reported as
// ErrInvalidPattern.
func (r *RegexRule) Match(line string) (bibleload.Row, bool, error) {
	loc := r.re.FindStringSubmatchIndex(line)
	if loc == nil || loc[0] != 0 {
		return bibleload.Row{}, false, nil
	}

	values := make(map[string]string, len(RequiredGroups))
	var missing []string
	for _, name := range RequiredGroups {
		i := r.index[name]
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 {
			missing = append(missing, name)
			continue
		}
		values[name] = line[start:end]
	}
	if len(missing) > 0 {
		return bibleload.Row{}, false, fmt.Errorf("line pattern matched but missing named groups: %s: %w", strings.Join(missing, ", "), bibleload.ErrInvalidPattern)
	}

	row, ok := buildRow(values["book"], values["chapter"], values["verse"], values["text"])
	return row, ok, nil
}
