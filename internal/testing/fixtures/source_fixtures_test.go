package fixtures

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/bibleload/internal/bookmap"
	"github.com/vvka-141/bibleload/pkg/bibleload"
)

func TestGenesisAndMatthew_Build(t *testing.T) {
	fs := GenesisAndMatthew().Build()

	source, err := fs.ReadFile(SourcePath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(source), "\n"), "\n")
	assert.Len(t, lines, 6)
	assert.Equal(t, "# King James Version, excerpt", lines[0])
	assert.Equal(t, "Genesis 1:1 In the beginning God created the heaven and the earth.", lines[1])

	data, err := fs.ReadFile(BookMapPath)
	require.NoError(t, err)
	mapping, err := bookmap.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, bibleload.TestamentOld, mapping["Genesis"].Testament)
	assert.Equal(t, bibleload.TestamentNew, mapping["Matthew"].Testament)
}

func TestBuild_WithoutBooksOmitsBookMap(t *testing.T) {
	fs := NewSourceFixtureBuilder().AddVerse("Jude", 1, 1, "Jude, the servant").Build()

	_, err := fs.ReadFile(BookMapPath)
	assert.Error(t, err)
	assert.Equal(t, []string{SourcePath}, fs.Paths())
}

func TestBuild_EmptySource(t *testing.T) {
	fs := NewSourceFixtureBuilder().AddFile("extra.txt", "x").Build()

	source, err := fs.ReadFile(SourcePath)
	require.NoError(t, err)
	assert.Empty(t, source)
	assert.ElementsMatch(t, []string{SourcePath, "extra.txt"}, fs.Paths())
}
