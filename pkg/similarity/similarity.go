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

// Package similarity scores how confidently two strings share the same
// structural shape. The metric is fixed: exact equality, then skeleton
// equality (all numeric runs deleted), then a positional character-overlap
// ratio. The positional fallback is not alignment-aware; a proper edit
// distance would change emitted scores, so it stays as-is for compatibility.
package similarity

import (
	"strings"

	"github.com/walteh/incseq/pkg/numeric"
)

// Score bands returned for the structural cases.
const (
	scoreEqual    = 1.0
	scoreSkeleton = 0.9
)

// 🎯 Score returns a confidence in [0,1] that candidate is "the same text
// shape" as template:
//
//	1.0  exact equality
//	0.0  either string empty
//	0.9  equal skeletons: structurally identical, only the numbers differ
//	else fraction of positions (from the start) holding equal bytes,
//	     over the length of the longer string
//
// The skeleton tier is the common case and is what separates "same shape"
// from a coincidental digit match, without paying for an edit distance.
func Score(template, candidate string) float64 {
	if template == candidate {
		return scoreEqual
	}
	if template == "" || candidate == "" {
		return 0.0
	}
	if Skeleton(template) == Skeleton(candidate) {
		return scoreSkeleton
	}

	shorter := len(template)
	longer := len(candidate)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	equal := 0
	for i := 0; i < shorter; i++ {
		if template[i] == candidate[i] {
			equal++
		}
	}
	return float64(equal) / float64(longer)
}

// 💀 Skeleton deletes every maximal numeric run from text, leaving only its
// literal shape.
func Skeleton(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	i := 0
	for i < len(text) {
		start, end := numeric.NextRun(text, i)
		if start < 0 {
			b.WriteString(text[i:])
			break
		}
		b.WriteString(text[i:start])
		i = end
	}
	return b.String()
}
