package report

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/walteh/incseq/pkg/match"
)

func TestPrinter_Print(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	p := NewPrinter(&buf, zerolog.Nop())

	p.Print(match.Report{
		Replacements: 3,
		LinesChanged: 2,
		First:        "item_002",
		Last:         "item_004",
		PerLine: []match.LineChange{
			{Line: 0, Before: "item_001 = a", After: "item_002 = a"},
			{Line: 3, Before: "item_001 = c", After: "item_004 = c"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "item_001 = a")
	assert.Contains(t, out, "→ item_002 = a")
	assert.Contains(t, out, "3 replacements")
	assert.Contains(t, out, "on 2 lines")
	assert.Contains(t, out, "item_002 .. item_004")
	// Line numbers are 1-based for display.
	assert.Contains(t, out, strconv.Itoa(4))
}

func TestPrinter_Summary(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	p := NewPrinter(&buf, zerolog.Nop())

	p.Summary(match.Report{Replacements: 1, LinesChanged: 1, First: "n_2", Last: "n_2"})
	assert.Contains(t, buf.String(), "1 replacements on 1 lines n_2 .. n_2")
}