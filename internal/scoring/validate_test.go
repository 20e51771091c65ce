package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	working := []Question{
		{ID: "a", Axis: AxisEI, Weight: 1},
		{ID: "b", Axis: AxisQuality, Weight: 1},
	}

	tests := []struct {
		name      string
		questions []Question
		answers   Answers
		wantErr   error
	}{
		{"valid", working, Answers{"a": 1, "b": 5}, nil},
		{"no answers is valid", working, Answers{}, nil},
		{"empty working set", nil, Answers{}, ErrEmptyWorkingSet},
		{"answer too low", working, Answers{"a": 0}, ErrInvalidAnswer},
		{"answer too high", working, Answers{"b": 6}, ErrInvalidAnswer},
		{"unknown question", working, Answers{"zzz": 3}, ErrUnknownQuestion},
		{"unknown axis", []Question{{ID: "x", Axis: "XX", Weight: 1}}, nil, ErrUnknownAxis},
		{"bad weight", []Question{{ID: "x", Axis: AxisSN, Weight: 2}}, nil, ErrInvalidWeight},
		{"zero weight", []Question{{ID: "x", Axis: AxisSN}}, nil, ErrInvalidWeight},
		{"duplicate id", []Question{working[0], working[0]}, nil, ErrDuplicateQuestion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.questions, tt.answers)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLookupAxis(t *testing.T) {
	a, ok := LookupAxis(AxisJP)
	assert.True(t, ok)
	d, isDichotomy := a.(Dichotomy)
	assert.True(t, isDichotomy)
	assert.Equal(t, PoleJ, d.PoleFor(0))
	assert.Equal(t, PoleP, d.PoleFor(-0.1))

	a, ok = LookupAxis(AxisLiquidity)
	assert.True(t, ok)
	assert.Equal(t, FamilyFactor, a.Family())

	_, ok = LookupAxis("NOPE")
	assert.False(t, ok)

	assert.Len(t, AxisKeys(), 12)
}
