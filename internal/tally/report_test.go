package tally

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRender(t *testing.T) {
	r := NewReport("Demo Report:")
	sec := r.Section("DETAILS:")
	table := sec.Table(
		Column{"Name", 10, AlignLeft},
		Column{"Amount", 8, AlignRight},
	)
	table.AddRow("Cash", "100.00")
	table.AddRow("Bank", "-50.00")
	sec.Rule(table.LineWidth(), '-')
	sec.Addf("TOTAL %s", "50.00")

	out := r.Render()
	lines := strings.Split(out, "\n")

	require.GreaterOrEqual(t, len(lines), 7)
	assert.Equal(t, "Demo Report:", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "DETAILS:", lines[2])

	// Header padded per column, single space between cells.
	assert.Equal(t, "Name       Amount  ", lines[3])
	assert.Equal(t, strings.Repeat("-", table.LineWidth()), lines[4])
	assert.Equal(t, "Cash         100.00", lines[5])
	assert.Equal(t, "Bank         -50.00", lines[6])
}

func TestTableLineWidth(t *testing.T) {
	table := &Table{cols: []Column{{"A", 10, AlignLeft}, {"B", 5, AlignRight}}}
	// Widths plus one separating space.
	assert.Equal(t, 16, table.LineWidth())
}

func TestPad(t *testing.T) {
	assert.Equal(t, "abc   ", pad("abc", 6, AlignLeft))
	assert.Equal(t, "   abc", pad("abc", 6, AlignRight))
	// Content longer than the width is kept, not clipped.
	assert.Equal(t, "abcdef", pad("abcdef", 3, AlignLeft))
}

func TestTrunc(t *testing.T) {
	assert.Equal(t, "abc", trunc("abcdef", 3))
	assert.Equal(t, "abc", trunc("abc", 10))

	// The rupee sign is three bytes; a cut inside it backs up to the
	// rune boundary instead of emitting a broken sequence.
	assert.Equal(t, "ab", trunc("ab₹cd", 4))
	assert.True(t, utf8.ValidString(trunc("ab₹cd", 4)))
}

func TestSectionRuleAndBlank(t *testing.T) {
	r := NewReport("")
	sec := r.Section("")
	sec.Rule(5, '=')
	sec.Blank()
	sec.Add("end")

	assert.Equal(t, "=====\n\nend\n", r.Render())
}
