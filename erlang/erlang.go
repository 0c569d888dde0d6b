// Package erlang implements the Erlang B, extended Erlang B, Engset B
// and Erlang C formulas using the standard recurrence evaluation. The
// recurrence form avoids the factorial overflow of the textbook
// definitions and is numerically stable for large server counts.
//
// The evaluators are permissive: negative inputs return 0 instead of an
// error. The search loops in the traffic package probe intensities at
// and below zero and rely on that behaviour.
package erlang

import "erlang-planner/utils"

// B returns the blocking probability of a loss system with the given
// number of servers offered the given traffic intensity in erlangs.
// Fractional server counts are truncated.
func B(servers, intensity float64) float64 {
	if servers < 0 || intensity < 0 {
		return 0.0
	}
	last := 1.0
	for count := 1; count <= int(servers); count++ {
		last = (intensity * last) / (float64(count) + intensity*last)
	}
	return utils.MinMax(last, 0.0, 1.0)
}

// BExtended returns the Erlang B blocking probability when the fraction
// retry of blocked callers immediately try again. Each recurrence step
// inflates the offered load by the resulting attempts multiplier.
// retry is clamped into [0, 1].
func BExtended(servers, intensity, retry float64) float64 {
	if servers < 0 || intensity < 0 {
		return 0.0
	}
	retries := utils.MinMax(retry, 0.0, 1.0)
	last := 1.0
	for count := 1; count <= int(servers); count++ {
		b := (intensity * last) / (float64(count) + intensity*last)
		attempts := 1.0 / (1 - b*retries)
		last = (intensity * last * attempts) / (float64(count) + intensity*last*attempts)
	}
	return utils.MinMax(last, 0.0, 1.0)
}

// EngsetB returns the blocking probability for a finite population of
// events sources each offering the given per-source intensity.
func EngsetB(servers, events, intensity float64) float64 {
	if servers < 0 || intensity < 0 {
		return 0.0
	}
	last := 1.0
	for count := 1; count <= int(servers); count++ {
		last = last*(float64(count)/((events-float64(count))*intensity)) + 1
	}
	if last == 0 {
		return 0.0
	}
	return utils.MinMax(1/last, 0.0, 1.0)
}

// C returns the probability that a call is queued in a delay system
// with the given number of servers and offered intensity. It is derived
// algebraically from Erlang B. The result is only meaningful when
// intensity < servers; callers must ensure stability before invoking.
func C(servers, intensity float64) float64 {
	if servers < 0 || intensity < 0 {
		return 0.0
	}
	b := B(servers, intensity)
	c := b / ((intensity/servers)*b + (1 - intensity/servers))
	return utils.MinMax(c, 0.0, 1.0)
}
