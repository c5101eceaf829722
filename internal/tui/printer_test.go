package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainPrinter_Lines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlainPrinter(&buf)

	p.Success("Committed %d verse row(s) across %d book(s).", 3, 2)
	p.Warning("Skipped %d unparsed line(s)", 1)
	p.Failure("load failed")
	p.Title("Genesis 1")
	p.Verse("Genesis 1:1", "In the beginning")

	assert.False(t, p.Styled())
	assert.Equal(t, strings.Join([]string{
		"Committed 3 verse row(s) across 2 book(s).",
		"Skipped 1 unparsed line(s)",
		"load failed",
		"Genesis 1",
		"Genesis 1:1 In the beginning",
		"",
	}, "\n"), buf.String())
}

func TestPlainPrinter_TableIsTabAligned(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlainPrinter(&buf)

	p.Table([]string{"ORDER", "TESTAMENT", "NAME"}, [][]string{
		{"1", "OLD", "Genesis"},
		{"27", "NEW", "Revelation"},
	})

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "ORDER  TESTAMENT  NAME", lines[0])
	assert.Equal(t, "1      OLD        Genesis", lines[1])
	assert.Equal(t, "27     NEW        Revelation", lines[2])
}

func TestNewPrinter_BufferIsPlain(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, NewPrinter(&buf).Styled())
}
