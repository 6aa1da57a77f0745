package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name      string
		sign      int
		step      int
		wantError string
	}{
		{name: "valid_positive", sign: 1, step: 1},
		{name: "valid_negative", sign: -1, step: 10},
		{name: "zero_sign", sign: 0, step: 1, wantError: "sign must be +1 or -1"},
		{name: "large_sign", sign: 2, step: 1, wantError: "sign must be +1 or -1"},
		{name: "zero_step", sign: 1, step: 0, wantError: "step must be positive"},
		{name: "negative_step", sign: 1, step: -3, wantError: "step must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.sign, tt.step, "item_001")
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "item_001", c.Current)
		})
	}
}

func TestCounter_Advance(t *testing.T) {
	c, err := New(1, 1, "item_001")
	require.NoError(t, err)

	assert.Equal(t, "item_002", c.Advance())
	assert.Equal(t, "item_003", c.Advance())
	assert.Equal(t, "item_003", c.Current)
}

func TestCounter_Advance_EverySlotSameStep(t *testing.T) {
	c, err := New(1, 5, "x=1 y=2")
	require.NoError(t, err)

	// Both runs advance by the same sign/step on each call.
	assert.Equal(t, "x=6 y=7", c.Advance())
	assert.Equal(t, "x=11 y=12", c.Advance())
}

func TestCounter_Advance_Decrement(t *testing.T) {
	c, err := New(-1, 2, "n_003")
	require.NoError(t, err)

	assert.Equal(t, "n_001", c.Advance())
	assert.Equal(t, "n_-001", c.Advance())
}

func TestCounter_Peek(t *testing.T) {
	c, err := New(1, 1, "item_007")
	require.NoError(t, err)

	assert.Equal(t, "item_008", c.Peek())
	assert.Equal(t, "item_007", c.Current, "peek must not mutate")
}
