package utils_test

import (
	"testing"

	"erlang-planner/utils"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	tests := map[string]struct {
		val, minVal, maxVal float64
		expected            float64
	}{
		"WithinRange": {0.5, 0.0, 1.0, 0.5},
		"BelowMin":    {-0.2, 0.0, 1.0, 0.0},
		"AboveMax":    {1.7, 0.0, 1.0, 1.0},
		"AtMin":       {0.0, 0.0, 1.0, 0.0},
		"AtMax":       {1.0, 0.0, 1.0, 1.0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utils.MinMax(tt.val, tt.minVal, tt.maxVal))
		})
	}
}

func TestIntCeiling(t *testing.T) {
	tests := map[string]struct {
		val      float64
		expected int
	}{
		"WholeNumber":    {2.0, 2},
		"RoundsUp":       {2.3, 3},
		"NegativeValue":  {-2.3, -3},
		"Zero":           {0.0, 0},
		"LargerWhole":    {20.0, 20},
		"JustAboveWhole": {5.0001, 6},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utils.IntCeiling(tt.val))
		})
	}
}

func TestSecs(t *testing.T) {
	tests := map[string]struct {
		amount   float64
		expected int
	}{
		"HalfInterval":  {0.5, 300},
		"SmallFraction": {0.0017, 1},
		"Zero":          {0.0, 0},
		"Negative":      {-0.25, -149},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utils.Secs(tt.amount))
		})
	}
}
