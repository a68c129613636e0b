package tally

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// The reports rendered for tool results are fixed-width text. Handlers
// aggregate into a Report first and render as a final step, so tests can
// assert on rows before asserting on the formatted text.

// Align sets how a table cell is padded within its column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column describes one table column: header title, padded width, cell
// alignment. Headers are always padded left, matching the report layouts.
type Column struct {
	Title string
	Width int
	Align Align
}

// Table is an ordered grid of string cells under a fixed column layout.
type Table struct {
	cols []Column
	rows [][]string
}

// AddRow appends one row of cells. Missing trailing cells render empty.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Rows exposes the collected rows for assertions.
func (t *Table) Rows() [][]string {
	return t.rows
}

// LineWidth is the rendered width of one table line.
func (t *Table) LineWidth() int {
	w := 0
	for i, c := range t.cols {
		if i > 0 {
			w++
		}
		w += c.Width
	}
	return w
}

func (t *Table) render(sb *strings.Builder) {
	for i, c := range t.cols {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(pad(c.Title, c.Width, AlignLeft))
	}
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("-", t.LineWidth()))
	sb.WriteByte('\n')
	for _, row := range t.rows {
		for i, c := range t.cols {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(pad(cell, c.Width, c.Align))
		}
		sb.WriteByte('\n')
	}
}

// Section is an ordered run of lines, rules and tables, optionally titled.
type Section struct {
	title string
	parts []any // string lines or *Table
}

// Add appends a raw line.
func (s *Section) Add(line string) {
	s.parts = append(s.parts, line)
}

// Addf appends a formatted line.
func (s *Section) Addf(format string, args ...any) {
	s.parts = append(s.parts, fmt.Sprintf(format, args...))
}

// Rule appends a horizontal rule of width n drawn with ch.
func (s *Section) Rule(n int, ch byte) {
	s.parts = append(s.parts, strings.Repeat(string(ch), n))
}

// Blank appends an empty line.
func (s *Section) Blank() {
	s.parts = append(s.parts, "")
}

// Table starts a table with the given columns and returns it for rows.
func (s *Section) Table(cols ...Column) *Table {
	t := &Table{cols: cols}
	s.parts = append(s.parts, t)
	return t
}

// Report is an ordered list of sections under a one-line heading.
type Report struct {
	title    string
	sections []*Section
}

// NewReport starts a report. The title is rendered as the first line,
// followed by a blank line.
func NewReport(title string) *Report {
	return &Report{title: title}
}

// Section appends a section. A non-empty title renders as its own line
// before the section body.
func (r *Report) Section(title string) *Section {
	s := &Section{title: title}
	r.sections = append(r.sections, s)
	return s
}

// Render produces the final text.
func (r *Report) Render() string {
	var sb strings.Builder
	if r.title != "" {
		sb.WriteString(r.title)
		sb.WriteString("\n\n")
	}
	for _, sec := range r.sections {
		if sec.title != "" {
			sb.WriteString(sec.title)
			sb.WriteByte('\n')
		}
		for _, part := range sec.parts {
			switch p := part.(type) {
			case string:
				sb.WriteString(p)
				sb.WriteByte('\n')
			case *Table:
				p.render(&sb)
			}
		}
	}
	return sb.String()
}

func pad(s string, width int, align Align) string {
	if align == AlignRight {
		return fmt.Sprintf("%*s", width, s)
	}
	return fmt.Sprintf("%-*s", width, s)
}

// trunc limits s to at most n bytes without splitting a multi-byte rune.
// Column padding never truncates, so wide values are cut before they
// reach the table.
func trunc(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
