package erlang_test

import (
	"testing"

	"erlang-planner/erlang"

	"github.com/stretchr/testify/assert"
)

func TestB(t *testing.T) {
	tests := map[string]struct {
		servers, intensity float64
		expected           float64
	}{
		"TenServersFiveErlangs":  {10, 5, 0.01838457033664814},
		"TenServersHeavyLoad":    {10, 8.5, 0.1446080943128979},
		"FiveServersThreeErlang": {5, 3, 0.11005434782608696},
		"TwoServersOneErlang":    {2, 1, 0.2},
		"ZeroServersTotalBlock":  {0, 3, 1.0},
		"ZeroIntensity":          {10, 0, 0.0},
		"NegativeServers":        {-1, 5, 0.0},
		"NegativeIntensity":      {10, -5, 0.0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, erlang.B(tt.servers, tt.intensity), 1e-12)
		})
	}
}

func TestBTruncatesFractionalServers(t *testing.T) {
	assert.Equal(t, erlang.B(3, 2), erlang.B(3.7, 2))
}

func TestBNonIncreasingInServers(t *testing.T) {
	// Adding servers to a loss system can never increase blocking.
	prev := erlang.B(0, 5)
	for n := 1; n <= 30; n++ {
		cur := erlang.B(float64(n), 5)
		assert.LessOrEqual(t, cur, prev, "blocking increased from %d to %d servers", n-1, n)
		prev = cur
	}
}

func TestBExtended(t *testing.T) {
	tests := map[string]struct {
		servers, intensity, retry float64
		expected                  float64
	}{
		"ThirtyPercentRetry": {10, 8.5, 0.3, 0.17899306185301256},
		"HalfRetry":          {5, 3, 0.5, 0.14996338404495535},
		"RetryClampedToOne":  {5, 3, 1.5, 0.2198139580283101},
		"FullRetry":          {5, 3, 1.0, 0.2198139580283101},
		"NegativeServers":    {-1, 3, 0.5, 0.0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, erlang.BExtended(tt.servers, tt.intensity, tt.retry), 1e-12)
		})
	}
}

func TestBExtendedNeverBelowPlainB(t *testing.T) {
	// Retried calls re-offer blocked traffic, so blocking cannot drop.
	for _, intensity := range []float64{1, 3, 8.5} {
		plain := erlang.B(10, intensity)
		ext := erlang.BExtended(10, intensity, 0.4)
		assert.GreaterOrEqual(t, ext, plain, "intensity %v", intensity)
	}
}

func TestEngsetB(t *testing.T) {
	tests := map[string]struct {
		servers, events, intensity float64
		expected                   float64
	}{
		"TwentySources":    {10, 20, 0.5, 0.04169815085144972},
		"FifteenSources":   {5, 15, 0.3, 0.13442196614845253},
		"NegativeServers":  {-2, 20, 0.5, 0.0},
		"NegativeTraffic":  {10, 20, -0.5, 0.0},
		"ZeroServersBlock": {0, 20, 0.5, 1.0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, erlang.EngsetB(tt.servers, tt.events, tt.intensity), 1e-12)
		})
	}
}

func TestC(t *testing.T) {
	tests := map[string]struct {
		servers, intensity float64
		expected           float64
	}{
		"TenServersFiveErlangs": {10, 5, 0.0361053591583202},
		"TenServersHeavyLoad":   {10, 8.5, 0.5298613051159035},
		"TwoServersOneErlang":   {2, 1, 0.33333333333333337},
		"SixteenServers":        {16, 15, 0.7300759610864087},
		"ZeroIntensity":         {10, 0, 0.0},
		"NegativeServers":       {-1, 5, 0.0},
		"NegativeIntensity":     {10, -5, 0.0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, erlang.C(tt.servers, tt.intensity), 1e-12)
		})
	}
}

func TestCStaysInUnitRange(t *testing.T) {
	for servers := 1.0; servers <= 20; servers++ {
		for _, intensity := range []float64{0, 0.5, servers * 0.5, servers * 0.9} {
			c := erlang.C(servers, intensity)
			assert.GreaterOrEqual(t, c, 0.0)
			assert.LessOrEqual(t, c, 1.0)
		}
	}
}
