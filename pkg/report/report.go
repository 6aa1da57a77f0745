// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package report renders multi-line replacement reports for the console: a
// per-line before/after listing plus a one-line summary.
package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/incseq/pkg/match"
)

// 🎨 Display configuration
const (
	lineIndent  = 4 // spaces to indent per-line entries
	numberWidth = 5 // width for the line number column
)

// 🖨️ Printer writes replacement reports to a console writer, mirroring
// structured fields into zerolog for debugging.
type Printer struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 NewPrinter creates a printer over the given console writer.
func NewPrinter(console io.Writer, zlog zerolog.Logger) *Printer {
	return &Printer{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 📝 formatLineChange formats one rewritten line for display.
func (p *Printer) formatLineChange(change match.LineChange) string {
	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", lineIndent, ""),
		color.New(color.FgBlue).Sprint("⟳"),
		color.New(color.Faint).Sprint(fmt.Sprintf("%*d", numberWidth, change.Line+1)),
		color.New(color.FgRed).Sprint(change.Before),
		color.New(color.FgGreen).Sprint("→ "+change.After))
}

// 📝 Print writes the detailed listing followed by the summary line.
func (p *Printer) Print(report match.Report) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, change := range report.PerLine {
		fmt.Fprintln(p.console, p.formatLineChange(change))
	}
	fmt.Fprintln(p.console, p.formatSummary(report))

	p.zlog.Info().
		Int("replacements", report.Replacements).
		Int("lines_changed", report.LinesChanged).
		Str("first", report.First).
		Str("last", report.Last).
		Msg("replacement report")
}

// 📝 Summary writes only the one-line summary.
func (p *Printer) Summary(report match.Report) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.console, p.formatSummary(report))
}

func (p *Printer) formatSummary(report match.Report) string {
	return fmt.Sprintf("%s %s %s %s",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprintf("%d replacements", report.Replacements),
		color.New(color.Faint).Sprintf("on %d lines", report.LinesChanged),
		color.New(color.FgYellow).Sprintf("%s .. %s", report.First, report.Last))
}
