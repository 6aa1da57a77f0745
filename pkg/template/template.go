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

package template

import (
	"github.com/walteh/incseq/pkg/numeric"
)

// SegmentKind distinguishes the two segment types of a compiled template.
type SegmentKind int

const (
	// Literal is a span of text that must match exactly.
	Literal SegmentKind = iota
	// NumberSlot matches any maximal numeric run.
	NumberSlot
)

// 🧩 Segment is one element of a compiled template: either a literal span or
// a numeric slot. Text is only meaningful for Literal segments.
type Segment struct {
	Kind SegmentKind
	Text string
}

// 📐 Template is the compiled form of a source string: an ordered sequence of
// alternating literal spans and numeric slots. Keeping the shape as a real
// segment list (instead of compiling to a second textual pattern language)
// lets the match engine reason about slot positions directly and sidesteps
// escaping bugs entirely.
type Template struct {
	source   string
	segments []Segment
	slots    int
}

// 🏭 Compile scans templateText left to right and turns every maximal
// numeric run into a NumberSlot, with the text between and around runs kept
// as literal segments. Runs are found greedily and non-overlapping, so there
// is no partial-match ambiguity. A zero-slot template compiles fine; it is
// valid but inert, and callers that need at least one slot reject it.
func Compile(templateText string) Template {
	t := Template{source: templateText}

	i := 0
	for i < len(templateText) {
		start, end := numeric.NextRun(templateText, i)
		if start < 0 {
			t.segments = append(t.segments, Segment{Kind: Literal, Text: templateText[i:]})
			break
		}
		if start > i {
			t.segments = append(t.segments, Segment{Kind: Literal, Text: templateText[i:start]})
		}
		t.segments = append(t.segments, Segment{Kind: NumberSlot})
		t.slots++
		i = end
	}

	return t
}

// Source returns the original template text.
func (t Template) Source() string {
	return t.source
}

// Segments returns the compiled literal/slot sequence.
func (t Template) Segments() []Segment {
	return t.segments
}

// Slots returns the number of numeric slots in the template.
func (t Template) Slots() int {
	return t.slots
}

// 🔍 MatchAt attempts to match the template's shape against target starting
// at offset start. On success it returns the exclusive end offset of the
// match. Literal segments must match byte for byte; a NumberSlot consumes the
// maximal numeric run beginning at the current position and fails when no run
// starts there. A slot refuses to begin mid-run: when the byte just before
// the slot is a digit the candidate would split a longer number, so the match
// is rejected.
func (t Template) MatchAt(target string, start int) (end int, ok bool) {
	pos := start
	for _, seg := range t.segments {
		switch seg.Kind {
		case Literal:
			if pos+len(seg.Text) > len(target) || target[pos:pos+len(seg.Text)] != seg.Text {
				return 0, false
			}
			pos += len(seg.Text)
		case NumberSlot:
			runStart, runEnd := numeric.NextRun(target, pos)
			if runStart != pos {
				return 0, false
			}
			if pos > 0 && numeric.IsDigit(target[pos-1]) {
				return 0, false
			}
			pos = runEnd
		}
	}
	return pos, true
}
