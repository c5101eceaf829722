// Package fixtures builds in-memory input files for extraction and load tests.
package fixtures

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vvka-141/bibleload/internal/files/filesystem"
	"github.com/vvka-141/bibleload/pkg/bibleload"
)

// SourceFixtureBuilder provides a fluent API for building source text files
// and book maps in a MemoryFileSystem.
//
// Example usage:
//
//	fs := NewSourceFixtureBuilder().
//	    AddVerse("Genesis", 1, 1, "In the beginning God created the heaven and the earth.").
//	    AddComment("heading").
//	    AddBook("Genesis", bibleload.TestamentOld, 1).
//	    Build()
type SourceFixtureBuilder struct {
	lines   []string
	mapping bibleload.BookMapping
	files   map[string]string
}

// NewSourceFixtureBuilder creates an empty builder.
func NewSourceFixtureBuilder() *SourceFixtureBuilder {
	return &SourceFixtureBuilder{
		mapping: bibleload.BookMapping{},
		files:   map[string]string{},
	}
}

// AddVerse appends a line in the default "Book C:V Text" layout.
func (b *SourceFixtureBuilder) AddVerse(book string, chapter, verse int, text string) *SourceFixtureBuilder {
	b.lines = append(b.lines, fmt.Sprintf("%s %d:%d %s", book, chapter, verse, text))
	return b
}

// AddLine appends a raw source line.
func (b *SourceFixtureBuilder) AddLine(line string) *SourceFixtureBuilder {
	b.lines = append(b.lines, line)
	return b
}

// AddComment appends a "#" comment line.
func (b *SourceFixtureBuilder) AddComment(text string) *SourceFixtureBuilder {
	b.lines = append(b.lines, "# "+text)
	return b
}

// AddBook adds a book map entry written to book-map.json on Build.
func (b *SourceFixtureBuilder) AddBook(name string, testament bibleload.Testament, sortOrder int) *SourceFixtureBuilder {
	b.mapping[name] = bibleload.BookMeta{Testament: testament, SortOrder: sortOrder}
	return b
}

// AddFile adds an arbitrary file at the specified path.
func (b *SourceFixtureBuilder) AddFile(path, content string) *SourceFixtureBuilder {
	b.files[path] = content
	return b
}

// Source returns the accumulated source text.
func (b *SourceFixtureBuilder) Source() string {
	if len(b.lines) == 0 {
		return ""
	}
	return strings.Join(b.lines, "\n") + "\n"
}

// Build writes source.txt, book-map.json (when books were added) and any extra
// files into a MemoryFileSystem.
func (b *SourceFixtureBuilder) Build() *filesystem.MemoryFileSystem {
	fs := filesystem.NewMemoryFileSystem()

	fs.AddFile(SourcePath, b.Source())
	if len(b.mapping) > 0 {
		fs.AddFile(BookMapPath, BookMapJSON(b.mapping))
	}
	for path, content := range b.files {
		fs.AddFile(path, content)
	}

	return fs
}

const (
	SourcePath  = "source.txt"
	BookMapPath = "book-map.json"
)

// BookMapJSON renders a mapping in the book map file format.
func BookMapJSON(mapping bibleload.BookMapping) string {
	type entry struct {
		Testament   string `json:"testament"`
		SortOrder   int    `json:"sort_order"`
		DisplayName string `json:"display_name,omitempty"`
	}
	out := make(map[string]entry, len(mapping))
	for name, meta := range mapping {
		out[name] = entry{Testament: string(meta.Testament), SortOrder: meta.SortOrder, DisplayName: meta.DisplayName}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(data)
}

// ============================================================================
// Pre-built Fixtures
// ============================================================================

// GenesisAndMatthew creates a small two-testament source with a comment, a
// blank line and one line that does not match the default pattern.
func GenesisAndMatthew() *SourceFixtureBuilder {
	return NewSourceFixtureBuilder().
		AddComment("King James Version, excerpt").
		AddVerse("Genesis", 1, 1, "In the beginning God created the heaven and the earth.").
		AddVerse("Genesis", 1, 2, "And the earth was without form, and void.").
		AddLine("").
		AddLine("THE GOSPEL ACCORDING TO ST. MATTHEW").
		AddVerse("Matthew", 1, 1, "The book of the generation of Jesus Christ, the son of David, the son of Abraham.").
		AddBook("Genesis", bibleload.TestamentOld, 1).
		AddBook("Matthew", bibleload.TestamentNew, 1)
}

// NumberedBooks creates a source whose book names start with a digit.
func NumberedBooks() *SourceFixtureBuilder {
	return NewSourceFixtureBuilder().
		AddVerse("1 John", 1, 1, "That which was from the beginning.").
		AddVerse("2 Kings", 2, 11, "Elijah went up by a whirlwind into heaven.").
		AddBook("1 John", bibleload.TestamentNew, 23).
		AddBook("2 Kings", bibleload.TestamentOld, 12)
}
