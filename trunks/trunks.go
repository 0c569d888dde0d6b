// Package trunks sizes the trunk lines in front of an agent pool: a
// queued call holds a trunk for its wait plus its talk time, so the
// offered trunk traffic is the call load inflated by the expected
// answer delay.
package trunks

import (
	"math"

	"erlang-planner/config"
	"erlang-planner/erlang"
	"erlang-planner/errors"
	"erlang-planner/metrics"
	"erlang-planner/utils"
)

// maxSearchTrunks bounds the trunk-count search.
const maxSearchTrunks = 65535

// blockingThreshold is the fixed 0.1% blocking a trunk group is sized
// for.
const blockingThreshold = 0.001

// utilisation at and past saturation is pinned here instead of
// dividing by zero.
const saturatedUtilisation = 0.99

func invalid(op string, cause error) error {
	metrics.ValidationFailuresTotal.WithLabelValues(op).Inc()
	return errors.Invalid(op, cause)
}

func calcFailed(op string, cause error) error {
	metrics.CalculationFailuresTotal.WithLabelValues(op).Inc()
	return errors.Calculation(op, cause)
}

// Number returns the smallest trunk count, at least the server count,
// whose Erlang B blocking for the given intensity falls under the 0.1%
// threshold. Fails when no count within the search bound qualifies.
func Number(servers, intensity float64) (int, error) {
	const op = "number of trunks"
	if servers < 0 {
		return 0, invalid(op, errors.ErrNegativeAgents)
	}
	if intensity < 0 {
		return 0, invalid(op, errors.ErrNegativeIntensity)
	}
	start := utils.IntCeiling(servers)
	for count := start; count <= maxSearchTrunks; count++ {
		if erlang.B(float64(count), intensity) < blockingThreshold {
			metrics.SearchIterations.WithLabelValues("trunks").Observe(float64(count - start + 1))
			return count, nil
		}
	}
	return 0, calcFailed(op, errors.ErrBoundExhausted)
}

// Required returns the trunk count for an agent pool handling the given
// call load. The expected answer wait is folded into the handle time,
// and the resulting effective intensity is passed to Number. The result
// is at least 1 whenever any traffic is offered.
func Required(agents, callsPerHour float64, aht int) (int, error) {
	const op = "trunks required"
	if agents < 0 {
		return 0, invalid(op, errors.ErrNegativeAgents)
	}
	if callsPerHour < 0 {
		return 0, invalid(op, errors.ErrNegativeRate)
	}
	if aht <= 0 {
		return 0, invalid(op, errors.ErrNonPositiveAHT)
	}
	deathRate := config.Interval / float64(aht)
	trafficRate := callsPerHour / deathRate
	utilisation := trafficRate / agents
	if utilisation >= 1 {
		utilisation = saturatedUtilisation
	}
	c := erlang.C(agents, trafficRate)
	answerTime := c / (agents * deathRate * (1 - utilisation))
	if math.IsNaN(answerTime) || math.IsInf(answerTime, 0) {
		return 0, calcFailed(op, errors.ErrNotFinite)
	}
	effective := callsPerHour / (config.Interval / float64(aht+utils.Secs(answerTime)))
	noTrunks, err := Number(agents, effective)
	if err != nil {
		return 0, calcFailed(op, err)
	}
	if noTrunks < 1 && trafficRate > 0 {
		noTrunks = 1
	}
	metrics.TrunksRequired.Observe(float64(noTrunks))
	return noTrunks, nil
}
