package tui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Printer writes command summaries and listings. Styled output uses lipgloss;
// plain output is stable text suitable for scripts.
type Printer struct {
	out    io.Writer
	styled bool
}

// NewPrinter creates a Printer whose mode is detected from out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, styled: DetectMode(out) == ModeStyled}
}

// NewPlainPrinter creates a Printer that never styles.
func NewPlainPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Styled reports whether output is styled.
func (p *Printer) Styled() bool {
	return p.styled
}

func (p *Printer) line(style lipgloss.Style, symbol, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.styled {
		msg = style.Render(symbol + " " + msg)
	}
	fmt.Fprintln(p.out, msg)
}

// Success prints a completion summary.
func (p *Printer) Success(format string, args ...any) {
	p.line(SuccessStyle, SymbolCheck, format, args...)
}

// Warning prints a non-fatal notice.
func (p *Printer) Warning(format string, args ...any) {
	p.line(WarningStyle, SymbolWarn, format, args...)
}

// Failure prints a failure summary.
func (p *Printer) Failure(format string, args ...any) {
	p.line(ErrorStyle, SymbolCross, format, args...)
}

// Title prints a heading.
func (p *Printer) Title(text string) {
	if p.styled {
		text = TitleStyle.Render(text)
	}
	fmt.Fprintln(p.out, text)
}

// Verse prints one verse line: "<ref> <text>", with the reference emphasized
// when styled.
func (p *Printer) Verse(ref, text string) {
	if p.styled {
		ref = ReferenceStyle.Render(ref)
	}
	fmt.Fprintf(p.out, "%s %s\n", ref, text)
}

// Table prints rows under headers. Plain output is tab-aligned.
func (p *Printer) Table(headers []string, rows [][]string) {
	if !p.styled {
		tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(headers, "\t"))
		for _, row := range rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		tw.Flush()
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(TableBorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})
	fmt.Fprintln(p.out, t.Render())
}
