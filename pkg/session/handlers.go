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

package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/incseq/pkg/host"
	"github.com/walteh/incseq/pkg/match"
	"github.com/walteh/incseq/pkg/template"
	"gitlab.com/tozd/go/errors"
)

// dispatch routes a trigger on an Active session to its mode handler. The
// recoverable match failures are turned into a single notification here and
// never propagate further; the counter is only ever advanced after a
// confirmed match or placement.
func (s *Session) dispatch(ctx context.Context, ev TriggerEvent) error {
	switch s.mode {
	case ModePaste:
		return s.handlePaste(ctx)
	case ModeReplaceLine:
		return s.handleReplaceLine(ctx, ev)
	case ModeReplaceMulti:
		return s.handleReplaceMulti(ctx, ev)
	}
	return errors.Errorf("unknown mode %d", s.mode)
}

// handlePaste advances the counter wholesale and emits the new text into the
// document, placed per the register's type tag and the force-linewise flag.
func (s *Session) handlePaste(ctx context.Context) error {
	value := s.counter.Advance()

	switch s.Placement() {
	case host.PlaceLinesBelow:
		if err := s.opts.Document.InsertLines(s.opts.Document.CursorLine(), strings.Split(value, "\n")); err != nil {
			return errors.Errorf("inserting pasted lines: %w", err)
		}
	case host.PlaceInline:
		if err := s.opts.Document.PlaceTextAtCursor(value); err != nil {
			return errors.Errorf("placing pasted text: %w", err)
		}
	}

	s.writeBackRegister()
	zerolog.Ctx(ctx).Debug().Str("value", value).Msg("pasted")
	s.opts.Notifier.Notify(host.LevelInfo, fmt.Sprintf("pasted %q", value))
	return nil
}

// handleReplaceLine finds the best structural match for the template on the
// trigger's line and substitutes the advanced value in place. A miss leaves
// the counter untouched so the same sequence continues on a retry elsewhere.
func (s *Session) handleReplaceLine(ctx context.Context, ev TriggerEvent) error {
	tmpl := template.Compile(s.counter.Current)
	line, err := s.opts.Document.Line(ev.Line)
	if err != nil {
		return errors.Errorf("reading line %d: %w", ev.Line, err)
	}

	cand, err := match.FindBest(ctx, tmpl, line, s.opts.Config.Threshold)
	switch {
	case errors.Is(err, match.ErrDegenerateTemplate):
		s.opts.Notifier.Notify(host.LevelError, "template has no number to increment")
		return nil
	case errors.Is(err, match.ErrNoStructuralMatch):
		s.opts.Notifier.Notify(host.LevelInfo, "no similar text on this line")
		return nil
	case err != nil:
		return err
	}

	value := s.counter.Advance()
	if err := s.opts.Document.SetLine(ev.Line, line[:cand.Start]+value+line[cand.End:]); err != nil {
		return errors.Errorf("writing line %d: %w", ev.Line, err)
	}

	s.writeBackRegister()
	zerolog.Ctx(ctx).Debug().Int("line", ev.Line).Str("replaced", cand.Text).Str("value", value).Msg("replaced on line")
	s.opts.Notifier.Notify(host.LevelInfo, fmt.Sprintf("replaced %q with %q", cand.Text, value))
	return nil
}

// handleReplaceMulti resolves the scope to an ordered line range and
// replaces every structural occurrence in it, advancing the counter once per
// occurrence. Zero matches leave the session untouched for a retry.
func (s *Session) handleReplaceMulti(ctx context.Context, ev TriggerEvent) error {
	tmpl := template.Compile(s.counter.Current)
	if tmpl.Slots() == 0 {
		s.opts.Notifier.Notify(host.LevelError, "template has no number to increment")
		return nil
	}

	doc := s.opts.Document
	if doc.LineCount() == 0 {
		s.opts.Notifier.Notify(host.LevelInfo, "no matches in scope")
		return nil
	}
	lines := make([]string, doc.LineCount())
	for i := range lines {
		line, err := doc.Line(i)
		if err != nil {
			return errors.Errorf("reading line %d: %w", i, err)
		}
		lines[i] = line
	}

	order := s.resolveScope(ev, len(lines))
	report, err := match.ReplaceAll(ctx, tmpl, lines, order, s.counter)
	switch {
	case errors.Is(err, match.ErrNoMatchesInScope):
		s.opts.Notifier.Notify(host.LevelInfo, "no matches in scope")
		return nil
	case err != nil:
		return err
	}

	for _, idx := range report.ModifiedLines {
		if err := doc.SetLine(idx, lines[idx]); err != nil {
			return errors.Errorf("writing line %d: %w", idx, err)
		}
	}

	s.writeBackRegister()
	if s.opts.Config.DetailedReport && s.opts.Report != nil {
		s.opts.Report(report)
	}
	s.opts.Notifier.Notify(host.LevelInfo, fmt.Sprintf(
		"%d replacements on %d lines (%s .. %s)",
		report.Replacements, report.LinesChanged, report.First, report.Last,
	))
	return nil
}

// resolveScope turns the configured scope (or the trigger's explicit
// selection range, which always wins) into an ordered line index list.
func (s *Session) resolveScope(ev TriggerEvent, lineCount int) []int {
	if ev.HasRange {
		return ascending(clamp(ev.RangeStart, lineCount), clamp(ev.RangeEnd, lineCount))
	}

	switch s.scope.Kind {
	case ScopeFromLine:
		start := clamp(s.scope.Line, lineCount)
		if s.scope.Up {
			return descending(start)
		}
		return ascending(start, lineCount-1)
	default:
		return ascending(0, lineCount-1)
	}
}

func clamp(i, lineCount int) int {
	if i < 0 {
		return 0
	}
	if i >= lineCount {
		return lineCount - 1
	}
	return i
}

func ascending(from, to int) []int {
	if to < from {
		from, to = to, from
	}
	order := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		order = append(order, i)
	}
	return order
}

func descending(from int) []int {
	order := make([]int, 0, from+1)
	for i := from; i >= 0; i-- {
		order = append(order, i)
	}
	return order
}
