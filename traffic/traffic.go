// Package traffic inverts the Erlang B formula: given a trunk count and
// a target blocking probability it finds the traffic intensity that
// produces that blocking.
package traffic

import (
	"erlang-planner/config"
	"erlang-planner/erlang"
	"erlang-planner/metrics"
)

// maxLoops caps the refinement search. Together with the MaxAccuracy
// cutoff it bounds worst-case latency; changing it changes results near
// the boundary.
const maxLoops = 100

// Approximate refines a candidate intensity digit by digit: the
// candidate grows by increment until the blocking target is overshot,
// then the search resets to the last known-good value and moves to the
// next decimal digit by dividing the increment by 10. This is a decimal
// bisection, not a binary one; the two produce measurably different
// low-order digits. maxIntensity is accepted for symmetry with the
// search bounds but the digit reduction never revisits it.
func Approximate(trunks, blocking, increment, maxIntensity, minIntensity float64) float64 {
	minI := minIntensity
	intensity := minI
	loopNo := 0
	for increment >= config.MaxAccuracy && loopNo < maxLoops {
		if erlang.B(trunks, intensity) > blocking {
			increment /= 10
			intensity = minI
		}
		minI = intensity
		intensity += increment
		loopNo++
	}
	metrics.SearchIterations.WithLabelValues("traffic").Observe(float64(loopNo))
	return minI
}

// Intensity returns the traffic intensity in erlangs at which the given
// number of servers reaches the target blocking probability. It doubles
// an upper bound until the blocking target is exceeded, derives the
// initial decimal step from that bound, and hands over to Approximate.
// Returns 0 when servers < 1 or blocking is negative.
func Intensity(servers, blocking float64) float64 {
	trunksVal := float64(int(servers))
	if servers < 1 || blocking < 0 {
		return 0.0
	}
	maxI := trunksVal
	b := erlang.B(servers, maxI)
	for b < blocking {
		maxI *= 2
		b = erlang.B(servers, maxI)
	}
	incr := 1.0
	for incr <= maxI/100 {
		incr *= 10
	}
	return Approximate(trunksVal, blocking, incr, maxI, 0.0)
}
