// Package bookmap reads the book-name to metadata mapping consumed by the loader.
//
// The file is a single JSON object keyed by the book name exactly as it appears
// in rows:
//
//	{
//	  "Genesis": {"testament": "OLD", "sort_order": 1, "display_name": "Genesis"},
//	  "Matthew": {"testament": "NEW", "sort_order": 1}
//	}
//
// testament and sort_order are required; display_name defaults to the key.
package bookmap

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/vvka-141/bibleload/internal/files/filesystem"
	"github.com/vvka-141/bibleload/pkg/bibleload"
)

//go:embed default_book_map.json
var defaultBookMap []byte

type entry struct {
	Testament   *string      `json:"testament"`
	SortOrder   *json.Number `json:"sort_order"`
	DisplayName *string      `json:"display_name"`
}

// Parse decodes and validates a book map document.
func Parse(data []byte) (bibleload.BookMapping, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("book map must be a JSON object keyed by book name: %w", bibleload.ErrInvalidBookMap)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("decode book map: %v: %w", err, bibleload.ErrInvalidBookMap)
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	mapping := make(bibleload.BookMapping, len(raw))
	for _, name := range names {
		meta, err := parseEntry(raw[name])
		if err != nil {
			return nil, fmt.Errorf("book '%s': %v: %w", name, err, bibleload.ErrInvalidBookMap)
		}
		mapping[name] = meta
	}

	return mapping, nil
}

func parseEntry(data json.RawMessage) (bibleload.BookMeta, error) {
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return bibleload.BookMeta{}, fmt.Errorf("entry must be an object with testament and sort_order: %v", err)
	}
	if e.Testament == nil {
		return bibleload.BookMeta{}, fmt.Errorf("testament is required")
	}
	if e.SortOrder == nil {
		return bibleload.BookMeta{}, fmt.Errorf("sort_order is required")
	}

	testament, err := bibleload.ParseTestament(*e.Testament)
	if err != nil {
		return bibleload.BookMeta{}, err
	}
	sortOrder, err := e.SortOrder.Int64()
	if err != nil {
		return bibleload.BookMeta{}, fmt.Errorf("sort_order must be an integer, got %s", e.SortOrder.String())
	}

	meta := bibleload.BookMeta{Testament: testament, SortOrder: int(sortOrder)}
	if e.DisplayName != nil {
		meta.DisplayName = strings.TrimSpace(*e.DisplayName)
	}
	return meta, nil
}

// Load reads and parses the book map at path.
func Load(fsProvider filesystem.FileSystemProvider, path string) (bibleload.BookMapping, error) {
	data, err := fsProvider.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read book map '%s': %w", path, err)
	}
	mapping, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mapping, nil
}

// Default returns the built-in 66-book Protestant canon keyed by common English names.
func Default() bibleload.BookMapping {
	mapping, err := Parse(defaultBookMap)
	if err != nil {
		panic(fmt.Sprintf("embedded book map is invalid: %v", err))
	}
	return mapping
}

// DefaultJSON returns the embedded default map document.
func DefaultJSON() []byte {
	out := make([]byte, len(defaultBookMap))
	copy(out, defaultBookMap)
	return out
}

// Missing returns the names without a mapping entry, sorted and de-duplicated.
func Missing(mapping bibleload.BookMapping, names []string) []string {
	seen := make(map[string]bool)
	var missing []string
	for _, name := range names {
		if _, ok := mapping[name]; ok || seen[name] {
			continue
		}
		seen[name] = true
		missing = append(missing, name)
	}
	sort.Strings(missing)
	return missing
}
