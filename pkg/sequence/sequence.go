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

package sequence

import (
	"github.com/walteh/incseq/pkg/numeric"
	"gitlab.com/tozd/go/errors"
)

// 🔢 Counter holds the numeric baseline of a session: the advance rule
// (sign, step) and the last emitted text. Every numeric run in Current is
// advanced by the same sign and step on each call; there is no independent
// per-slot counter.
type Counter struct {
	Sign    int    // +1 or -1
	Step    int    // positive step amount
	Current string // last emitted increment of the tracked content
}

// 🏭 New creates a counter. sign must be +1 or -1 and step must be positive;
// initial becomes the baseline that the first Advance builds on.
func New(sign, step int, initial string) (*Counter, error) {
	if sign != 1 && sign != -1 {
		return nil, errors.Errorf("sign must be +1 or -1, got %d", sign)
	}
	if step < 1 {
		return nil, errors.Errorf("step must be positive, got %d", step)
	}
	return &Counter{Sign: sign, Step: step, Current: initial}, nil
}

// ➕ Advance increments every numeric run in Current by sign*step, stores the
// result as the new baseline and returns it. Callers must only invoke this
// once a replacement or placement is confirmed; a failed match leaves the
// counter untouched so a retry on a different line continues the sequence.
func (c *Counter) Advance() string {
	c.Current = numeric.IncrementAll(c.Current, c.Sign, c.Step)
	return c.Current
}

// 👀 Peek returns what the next Advance would emit without mutating the
// counter. Used for prompt previews.
func (c *Counter) Peek() string {
	return numeric.IncrementAll(c.Current, c.Sign, c.Step)
}
