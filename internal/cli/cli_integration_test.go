package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/bibleload/internal/store"
	testhelpers "github.com/vvka-141/bibleload/internal/testing"
	"github.com/vvka-141/bibleload/internal/testing/fixtures"
	"github.com/vvka-141/bibleload/pkg/bibleload"
)

func TestParseLoadShow_EndToEnd(t *testing.T) {
	pool := testhelpers.NewTestPool(t, store.Schema)
	connString := pool.Config().ConnString()

	isolateConfig(t)
	clearConnectionEnv(t)
	fs := fixtures.GenesisAndMatthew().Build()
	useFS(t, fs)

	resetParseFlags()
	parseFlags.input = fixtures.SourcePath
	parseFlags.output = "build/rows.jsonl"
	_, _, err := runCommand(parseCmd, runParse)
	require.NoError(t, err)

	resetLoadFlags()
	loadFlags.input = "build/rows.jsonl"
	loadFlags.bookMap = fixtures.BookMapPath
	loadFlags.batchSize = 2
	loadFlags.conn.connection = connString

	stdout, _, err := runCommand(loadCmd, runLoad)
	require.NoError(t, err)
	assert.Equal(t, "Committed 3 verse row(s) across 2 book(s).\n", stdout)

	// A second load is an upsert and reports the same counts
	stdout, _, err = runCommand(loadCmd, runLoad)
	require.NoError(t, err)
	assert.Equal(t, "Committed 3 verse row(s) across 2 book(s).\n", stdout)

	resetReadFlags()
	booksFlags.conn.connection = connString
	stdout, _, err = runCommand(booksCmd, runBooks)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ORDER"))
	assert.Contains(t, lines[1], "Genesis")
	assert.Contains(t, lines[2], "Matthew")

	showFlags.conn.connection = connString
	stdout, _, err = runCommand(showCmd, runShow, "Genesis", "1")
	require.NoError(t, err)
	assert.Equal(t, "Genesis 1\n"+
		"1 In the beginning God created the heaven and the earth.\n"+
		"2 And the earth was without form, and void.\n", stdout)

	stdout, _, err = runCommand(showCmd, runShow, "Matthew", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "Matthew 1:1 The book of the generation of Jesus Christ, the son of David, the son of Abraham.\n", stdout)

	_, _, err = runCommand(showCmd, runShow, "Genesis", "50")
	assert.ErrorIs(t, err, bibleload.ErrVerseNotFound)

	_, _, err = runCommand(showCmd, runShow, "Tobit", "1")
	assert.ErrorIs(t, err, bibleload.ErrBookNotFound)
}

func TestBooksCmd_EmptyStore(t *testing.T) {
	pool := testhelpers.NewTestPool(t, store.Schema)

	isolateConfig(t)
	clearConnectionEnv(t)
	resetReadFlags()
	booksFlags.conn.connection = pool.Config().ConnString()

	stdout, _, err := runCommand(booksCmd, runBooks)
	require.NoError(t, err)
	assert.Equal(t, "No books stored. Run 'bibleload load' first.\n", stdout)
}
