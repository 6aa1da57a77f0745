package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		template  string
		candidate string
		want      float64
	}{
		{name: "exact_equality", template: "item_001", candidate: "item_001", want: 1.0},
		{name: "empty_template", template: "", candidate: "item_001", want: 0.0},
		{name: "empty_candidate", template: "item_001", candidate: "", want: 0.0},
		{name: "skeleton_equal", template: "item_001", candidate: "item_005", want: 0.9},
		{name: "skeleton_equal_different_widths", template: "item_001", candidate: "item_12345", want: 0.9},
		{name: "skeleton_equal_negative", template: "t_-5", candidate: "t_12", want: 0.9},
		{name: "disjoint_strings", template: "abc", candidate: "xyz", want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.template, tt.candidate), 1e-9)
		})
	}
}

func TestScore_PositionalFallback(t *testing.T) {
	// "item_001" vs "itym_001": skeletons differ at one literal byte, so the
	// fallback counts 7 equal positions out of 8.
	assert.InDelta(t, 7.0/8.0, Score("item_001", "itym_001"), 1e-9)

	// Different lengths divide by the longer string.
	assert.InDelta(t, 3.0/6.0, Score("abc", "abcxyz"), 1e-9)
}

func TestSkeleton(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "single_run", text: "item_001", want: "item_"},
		{name: "multiple_runs", text: "x=1 y=22", want: "x= y="},
		{name: "no_runs", text: "plain", want: "plain"},
		{name: "negative_run_removed", text: "t_-40c", want: "t_c"},
		{name: "only_digits", text: "12345", want: ""},
		{name: "empty", text: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Skeleton(tt.text))
		})
	}
}
