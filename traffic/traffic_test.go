package traffic_test

import (
	"testing"

	"erlang-planner/erlang"
	"erlang-planner/traffic"

	"github.com/stretchr/testify/assert"
)

func TestIntensity(t *testing.T) {
	tests := map[string]struct {
		servers, blocking float64
		expected          float64
	}{
		"TenTrunksTwoPercent":     {10, 0.02, 5.084},
		"TwentyFiveTrunksPercent": {25, 0.01, 16.124550000000006},
		"FractionalServers":       {0.5, 0.02, 0.0},
		"NegativeBlocking":        {10, -0.1, 0.0},
		"ZeroBlocking":            {10, 0, 0.0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, traffic.Intensity(tt.servers, tt.blocking), 1e-9)
		})
	}
}

func TestIntensityRoundTrip(t *testing.T) {
	// Feeding the solved intensity back into Erlang B must reproduce
	// the blocking target to within the search accuracy.
	tests := map[string]struct {
		servers, blocking float64
	}{
		"TenTrunks":        {10, 0.02},
		"TwentyFiveTrunks": {25, 0.01},
		"FiftyTrunks":      {50, 0.005},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			intensity := traffic.Intensity(tt.servers, tt.blocking)
			assert.Greater(t, intensity, 0.0)
			assert.InDelta(t, tt.blocking, erlang.B(tt.servers, intensity), 1e-5)
		})
	}
}

func TestApproximate(t *testing.T) {
	// Direct digit refinement over [0, 10] with a unit step reproduces
	// the full solve for ten trunks at 2% blocking.
	got := traffic.Approximate(10.0, 0.02, 1.0, 10.0, 0.0)
	assert.InDelta(t, 5.084, got, 1e-9)
}

func TestApproximateNeverOvershoots(t *testing.T) {
	got := traffic.Approximate(10.0, 0.02, 1.0, 10.0, 0.0)
	assert.LessOrEqual(t, erlang.B(10, got), 0.02)
}
