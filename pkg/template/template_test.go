package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name         string
		source       string
		wantSlots    int
		wantSegments []Segment
	}{
		{
			name:      "single_slot_with_prefix",
			source:    "item_001",
			wantSlots: 1,
			wantSegments: []Segment{
				{Kind: Literal, Text: "item_"},
				{Kind: NumberSlot},
			},
		},
		{
			name:      "two_slots",
			source:    "x=1 y=2",
			wantSlots: 2,
			wantSegments: []Segment{
				{Kind: Literal, Text: "x="},
				{Kind: NumberSlot},
				{Kind: Literal, Text: " y="},
				{Kind: NumberSlot},
			},
		},
		{
			name:      "slot_at_both_ends",
			source:    "1a2",
			wantSlots: 2,
			wantSegments: []Segment{
				{Kind: NumberSlot},
				{Kind: Literal, Text: "a"},
				{Kind: NumberSlot},
			},
		},
		{
			name:      "pattern_special_characters_stay_literal",
			source:    "v(1).*+?",
			wantSlots: 1,
			wantSegments: []Segment{
				{Kind: Literal, Text: "v("},
				{Kind: NumberSlot},
				{Kind: Literal, Text: ").*+?"},
			},
		},
		{
			name:      "zero_slots_compiles",
			source:    "no numbers here",
			wantSlots: 0,
			wantSegments: []Segment{
				{Kind: Literal, Text: "no numbers here"},
			},
		},
		{
			name:      "negative_run_is_one_slot",
			source:    "temp_-40",
			wantSlots: 1,
			wantSegments: []Segment{
				{Kind: Literal, Text: "temp_"},
				{Kind: NumberSlot},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := Compile(tt.source)
			assert.Equal(t, tt.source, tmpl.Source())
			assert.Equal(t, tt.wantSlots, tmpl.Slots())
			assert.Equal(t, tt.wantSegments, tmpl.Segments())
		})
	}
}

func TestTemplate_MatchAt(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		target  string
		start   int
		wantEnd int
		wantOK  bool
	}{
		{name: "self_match", source: "item_001", target: "item_001", start: 0, wantEnd: 8, wantOK: true},
		{name: "different_number_matches", source: "item_001", target: "item_005", start: 0, wantEnd: 8, wantOK: true},
		{name: "wider_number_consumed", source: "item_001", target: "item_12345 rest", start: 0, wantEnd: 10, wantOK: true},
		{name: "mid_string_offset", source: "item_001", target: "local item_005 = x", start: 6, wantEnd: 14, wantOK: true},
		{name: "literal_mismatch", source: "item_001", target: "item-005", start: 0, wantOK: false},
		{name: "missing_number", source: "item_001", target: "item_abc", start: 0, wantOK: false},
		{name: "slot_after_literal_boundary", source: "_001", target: "item12_345", start: 6, wantEnd: 10, wantOK: true},
		{name: "slot_refuses_mid_run_start", source: "001", target: "12345", start: 2, wantOK: false},
		{name: "target_too_short", source: "item_001", target: "item_", start: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := Compile(tt.source)
			end, ok := tmpl.MatchAt(tt.target, tt.start)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantEnd, end)
			}
		})
	}
}
