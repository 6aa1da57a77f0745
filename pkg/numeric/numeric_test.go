package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantValue int
		wantOK    bool
	}{
		{name: "plain_digits", text: "42", wantValue: 42, wantOK: true},
		{name: "leading_zeros", text: "007", wantValue: 7, wantOK: true},
		{name: "negative", text: "-3", wantValue: -3, wantOK: true},
		{name: "zero", text: "0", wantValue: 0, wantOK: true},
		{name: "empty", text: "", wantOK: false},
		{name: "bare_minus", text: "-", wantOK: false},
		{name: "trailing_garbage", text: "12x", wantOK: false},
		{name: "embedded_minus", text: "1-2", wantOK: false},
		{name: "alpha", text: "abc", wantOK: false},
		{name: "whitespace", text: " 5", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, ok := Parse(tt.text)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.text, tok.Raw)
				assert.Equal(t, tt.wantValue, tok.Value)
			}
		})
	}
}

func TestFormat_WidthPreservation(t *testing.T) {
	tests := []struct {
		name     string
		original string
		value    int
		want     string
	}{
		{name: "pad_to_original_width", original: "007", value: 8, want: "008"},
		{name: "overflow_width_unpadded", original: "007", value: 1007, want: "1007"},
		{name: "no_padding_needed", original: "42", value: 43, want: "43"},
		{name: "negative_keeps_digit_width", original: "-007", value: -8, want: "-008"},
		{name: "sign_flip_to_negative", original: "3", value: -2, want: "-2"},
		{name: "sign_flip_to_positive", original: "-3", value: 2, want: "2"},
		{name: "zero_value_padded", original: "000", value: 0, want: "000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.original, tt.value))
		})
	}
}

func TestIncrement(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		sign int
		step int
		want string
	}{
		{name: "basic_increment", raw: "007", sign: 1, step: 1, want: "008"},
		{name: "width_overflow", raw: "007", sign: 1, step: 1000, want: "1007"},
		{name: "negative_source_crosses_zero", raw: "-3", sign: 1, step: 5, want: "2"},
		{name: "decrement_crosses_zero", raw: "3", sign: -1, step: 5, want: "-2"},
		{name: "non_numeric_passthrough", raw: "abc", sign: 1, step: 1, want: "abc"},
		{name: "empty_passthrough", raw: "", sign: 1, step: 1, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Increment(tt.raw, tt.sign, tt.step))
		})
	}
}

func TestIncrementAll(t *testing.T) {
	tests := []struct {
		name string
		text string
		sign int
		step int
		want string
	}{
		{name: "single_run", text: "item_001", sign: 1, step: 1, want: "item_002"},
		{name: "every_run_advances", text: "x=1 y=2", sign: 1, step: 10, want: "x=11 y=12"},
		{name: "no_runs_untouched", text: "plain text", sign: 1, step: 1, want: "plain text"},
		{name: "negative_run", text: "offset -5 end", sign: -1, step: 1, want: "offset -6 end"},
		{name: "adjacent_literal_preserved", text: "a1b2c", sign: 1, step: 1, want: "a2b3c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IncrementAll(tt.text, tt.sign, tt.step))
		})
	}
}

func TestNextRun(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		from      int
		wantStart int
		wantEnd   int
	}{
		{name: "run_at_start", text: "12ab", from: 0, wantStart: 0, wantEnd: 2},
		{name: "run_after_literal", text: "ab12", from: 0, wantStart: 2, wantEnd: 4},
		{name: "minus_attaches_to_digits", text: "a-12b", from: 0, wantStart: 1, wantEnd: 4},
		{name: "lone_minus_skipped", text: "a-b3", from: 0, wantStart: 3, wantEnd: 4},
		{name: "resume_past_first_run", text: "1a2", from: 1, wantStart: 2, wantEnd: 3},
		{name: "no_run", text: "abc", from: 0, wantStart: -1, wantEnd: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := NextRun(tt.text, tt.from)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
