package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/heartmarshall/vocabtrainer/internal/domain"
)

var (
	headerColor = color.New(color.FgHiMagenta, color.Bold)
	okColor     = color.New(color.FgGreen)
	warnColor   = color.New(color.FgYellow)
	errColor    = color.New(color.FgRed)
	dimColor    = color.New(color.Faint)
)

// maxCellWidth is the display width after which a cell is truncated.
const maxCellWidth = 40

// table renders aligned columns. Widths are measured in terminal cells so
// Cyrillic text and IPA symbols line up.
type table struct {
	header []string
	rows   [][]string
}

func newTable(header ...string) *table {
	return &table{header: header}
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(w io.Writer) {
	widths := make([]int, len(t.header))
	measure := func(cells []string) {
		for i, c := range cells {
			if i < len(widths) {
				widths[i] = max(widths[i], min(runewidth.StringWidth(c), maxCellWidth))
			}
		}
	}
	measure(t.header)
	for _, r := range t.rows {
		measure(r)
	}

	line := func(cells []string) string {
		parts := make([]string, len(widths))
		for i := range widths {
			var c string
			if i < len(cells) {
				c = runewidth.Truncate(cells[i], maxCellWidth, "…")
			}
			parts[i] = runewidth.FillRight(c, widths[i])
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	headerColor.Fprintln(w, line(t.header))
	for _, r := range t.rows {
		fmt.Fprintln(w, line(r))
	}
}

func columnCell(c domain.ColumnRef) string {
	i, ok := c.Index()
	if !ok {
		return "-"
	}
	return fmt.Sprint(i)
}

func mappingCells(m domain.RoleMapping) []string {
	cells := make([]string, 0, 5)
	for _, r := range domain.AllRoles() {
		cells = append(cells, columnCell(m.Get(r)))
	}
	return cells
}

func roleHeader() []string {
	h := make([]string, 0, 5)
	for _, r := range domain.AllRoles() {
		h = append(h, r.String())
	}
	return h
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// printCard shows the Russian side of a card and, when reveal is set, the
// English side as well.
func printCard(w io.Writer, n int, card domain.Word, reveal bool) {
	dimColor.Fprintf(w, "%3d  %s\n", n, card.ID)
	fmt.Fprintf(w, "     %s\n", text(card.Rus))
	if ex := text(card.RusEx); ex != "" {
		dimColor.Fprintf(w, "     %s\n", ex)
	}
	if !reveal {
		return
	}
	okColor.Fprintf(w, "     %s", text(card.Eng))
	if tr := text(card.EngT); tr != "" {
		fmt.Fprintf(w, " %s", tr)
	}
	fmt.Fprintln(w)
	if ex := text(card.EngEx); ex != "" {
		dimColor.Fprintf(w, "     %s\n", ex)
	}
}
