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

package match

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/incseq/pkg/sequence"
	"github.com/walteh/incseq/pkg/similarity"
	"github.com/walteh/incseq/pkg/template"
	"gitlab.com/tozd/go/errors"
)

// DefaultThreshold is the similarity score a best candidate must reach for
// FindBest to accept it.
const DefaultThreshold = 0.5

var (
	// ErrDegenerateTemplate means the template has no numeric slot. It is
	// reported before any scan, distinctly from "no match".
	ErrDegenerateTemplate = errors.Base("template has no numeric slot")

	// ErrNoStructuralMatch means no candidate reached the similarity
	// threshold. The caller must not advance the sequence counter.
	ErrNoStructuralMatch = errors.Base("no structural match above threshold")

	// ErrNoMatchesInScope means a multi-line replacement found zero
	// occurrences across the whole resolved line range.
	ErrNoMatchesInScope = errors.Base("no matches in scope")
)

// 🎯 Candidate is a located occurrence of a template's shape inside a target
// string. End is exclusive.
type Candidate struct {
	Start int
	End   int
	Text  string
}

// 🔁 LineChange records one rewritten line for the detailed report.
type LineChange struct {
	Line   int
	Before string
	After  string
}

// 📊 Report accumulates the outcome of a multi-line replacement.
type Report struct {
	Replacements  int          // total occurrences replaced
	LinesChanged  int          // lines with at least one replacement
	First         string       // first emitted value
	Last          string       // last emitted value
	ModifiedLines []int        // indices of rewritten lines, in replacement order
	PerLine       []LineChange // before/after per rewritten line
}

// 🔍 FindBest enumerates every occurrence of tmpl's shape in targetLine,
// trying each start offset in turn so that overlapping candidates starting at
// different offsets are all considered, scores each candidate against the
// original template text and keeps the highest-scoring one. The result is
// accepted only when its score reaches threshold; otherwise
// ErrNoStructuralMatch is returned and the caller's counter stays untouched,
// preserving the sequence for a retry on a different line.
func FindBest(ctx context.Context, tmpl template.Template, targetLine string, threshold float64) (Candidate, error) {
	if tmpl.Slots() == 0 {
		return Candidate{}, errors.WithStack(ErrDegenerateTemplate)
	}

	logger := zerolog.Ctx(ctx)

	best := Candidate{Start: -1}
	bestScore := -1.0
	for i := 0; i < len(targetLine); i++ {
		end, ok := tmpl.MatchAt(targetLine, i)
		if !ok {
			continue
		}
		cand := Candidate{Start: i, End: end, Text: targetLine[i:end]}
		s := similarity.Score(tmpl.Source(), cand.Text)
		logger.Trace().Int("start", i).Str("text", cand.Text).Float64("score", s).Msg("candidate")
		if s > bestScore {
			best = cand
			bestScore = s
		}
	}

	if best.Start < 0 || bestScore < threshold {
		logger.Debug().Float64("best_score", bestScore).Float64("threshold", threshold).Msg("no acceptable candidate")
		return Candidate{}, errors.WithStack(ErrNoStructuralMatch)
	}

	logger.Debug().Int("start", best.Start).Str("text", best.Text).Float64("score", bestScore).Msg("best candidate")
	return best, nil
}

// 🔁 ReplaceAll scans the lines named by order (an ordered sequence of
// indices into lines) for every occurrence of tmpl's shape. Occurrences are
// replaced in strict left-to-right, line-by-line order: the counter advances
// exactly once per occurrence and the occurrence is substituted with the
// counter's new value, with scanning resuming after the substituted text.
// No per-occurrence scoring happens here: once a template is compiled, a
// structural shape match is sufficient in multi-line mode.
//
// lines is modified in place. A zero-occurrence scan returns
// ErrNoMatchesInScope instead of a zero-filled report.
func ReplaceAll(ctx context.Context, tmpl template.Template, lines []string, order []int, counter *sequence.Counter) (Report, error) {
	if tmpl.Slots() == 0 {
		return Report{}, errors.WithStack(ErrDegenerateTemplate)
	}

	logger := zerolog.Ctx(ctx)

	var report Report
	for _, idx := range order {
		if idx < 0 || idx >= len(lines) {
			return Report{}, errors.Errorf("line index %d out of range [0,%d)", idx, len(lines))
		}
		before := lines[idx]
		line := before
		changed := false

		pos := 0
		for pos < len(line) {
			end, ok := tmpl.MatchAt(line, pos)
			if !ok {
				pos++
				continue
			}
			value := counter.Advance()
			line = line[:pos] + value + line[end:]
			if report.Replacements == 0 {
				report.First = value
			}
			report.Last = value
			report.Replacements++
			changed = true
			pos += len(value)
		}

		if changed {
			lines[idx] = line
			report.LinesChanged++
			report.ModifiedLines = append(report.ModifiedLines, idx)
			report.PerLine = append(report.PerLine, LineChange{Line: idx, Before: before, After: line})
			logger.Debug().Int("line", idx).Str("after", line).Msg("line rewritten")
		}
	}

	if report.Replacements == 0 {
		return Report{}, errors.WithStack(ErrNoMatchesInScope)
	}
	return report, nil
}
