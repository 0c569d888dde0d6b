// Package agents answers the staffing questions of workforce planning:
// how many agents a call load needs to hit a service-level or
// answer-time target, and the inverse, how many calls a given head
// count can sustain.
//
// The solvers share one shape: estimate a starting head count from the
// offered traffic, walk it up until the system is stable, then climb
// one agent at a time until the target metric is met. Every climb is
// bounded; a search that exhausts its bound without an explicit failure
// policy returns the last head count it reached.
package agents

import (
	"math"

	"erlang-planner/config"
	"erlang-planner/erlang"
	"erlang-planner/errors"
	"erlang-planner/metrics"
	"erlang-planner/utils"
)

// maxSearchAgents bounds the brute-force head-count search.
const maxSearchAgents = 65535

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

// initialEstimate seeds the staffing ladder: the offered erlangs
// rounded half up, at least one agent, then walked up until
// utilisation drops below 1.
func initialEstimate(callsPerHour, trafficRate float64, aht int) int {
	erlangs := int((callsPerHour*float64(aht))/config.Interval + 0.5)
	noAgents := 1
	if erlangs >= 1 {
		noAgents = erlangs
	}
	for trafficRate/float64(noAgents) >= 1 {
		noAgents++
	}
	return noAgents
}

// Required returns the minimum whole number of agents needed to answer
// the given fraction of calls (sla) within serviceTime seconds.
func Required(sla float64, serviceTime int, callsPerHour float64, aht int) (int, error) {
	const op = "agents required"
	if sla < 0 {
		return 0, invalid(op, errors.ErrNegativeSLA)
	}
	if callsPerHour < 0 {
		return 0, invalid(op, errors.ErrNegativeRate)
	}
	if aht <= 0 {
		return 0, invalid(op, errors.ErrNonPositiveAHT)
	}
	if sla > 1 {
		sla = 1.0
	}
	deathRate := config.Interval / float64(aht)
	trafficRate := callsPerHour / deathRate
	noAgents := initialEstimate(callsPerHour, trafficRate, aht)

	maxIterate := noAgents * 100
	steps := 0
	for ; steps < maxIterate; steps++ {
		if trafficRate/float64(noAgents) < 1 {
			c := erlang.C(float64(noAgents), trafficRate)
			slQueued := 1 - c*math.Exp((trafficRate-float64(noAgents))*float64(serviceTime)/float64(aht))
			if slQueued < 0 {
				slQueued = 0.0
			}
			if slQueued >= sla || slQueued > 1-config.MaxAccuracy {
				break
			}
		}
		noAgents++
	}
	metrics.SearchIterations.WithLabelValues("agents_required").Observe(float64(steps))
	metrics.AgentsRequired.WithLabelValues("required").Observe(float64(noAgents))
	return noAgents, nil
}

// ASA returns the average speed of answer in seconds for a fixed
// number of agents.
func ASA(agents, callsPerHour float64, aht int) (int, error) {
	const op = "asa"
	if agents <= 0 {
		return 0, invalid(op, errors.ErrNonPositiveAgents)
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
	return utils.Secs(answerTime), nil
}

// RequiredASA returns the number of agents needed to bring the
// expected answer time at or below asaTarget seconds. The utilisation
// in the delay term is pinned at its value for the starting head
// count throughout the climb.
func RequiredASA(asaTarget, callsPerHour float64, aht int) (int, error) {
	const op = "agents for asa"
	if asaTarget < 0 {
		return 0, invalid(op, errors.ErrNegativeTarget)
	}
	if callsPerHour < 0 {
		return 0, invalid(op, errors.ErrNegativeRate)
	}
	if aht <= 0 {
		return 0, invalid(op, errors.ErrNonPositiveAHT)
	}
	deathRate := config.Interval / float64(aht)
	trafficRate := callsPerHour / deathRate
	noAgents := initialEstimate(callsPerHour, trafficRate, aht)
	utilisation := trafficRate / float64(noAgents)

	maxIterate := noAgents * 100
	steps := 0
	for ; steps < maxIterate; steps++ {
		c := erlang.C(float64(noAgents), trafficRate)
		answerTime := c / (float64(noAgents) * deathRate * (1 - utilisation))
		if answerTime*config.Interval <= asaTarget {
			break
		}
		noAgents++
	}
	metrics.SearchIterations.WithLabelValues("agents_asa").Observe(float64(steps))
	metrics.AgentsRequired.WithLabelValues("required_asa").Observe(float64(noAgents))
	return noAgents, nil
}

// MinimumForASA walks the head count up from one until the average
// speed of answer drops to avgASA seconds or below. Unlike the ladder
// searches it fails explicitly when the bound is exhausted.
func MinimumForASA(callsPerHour, avgASA float64, aht int) (int, error) {
	const op = "minimum agents for asa"
	if callsPerHour < 0 {
		return 0, invalid(op, errors.ErrNegativeRate)
	}
	if avgASA < 0 {
		return 0, invalid(op, errors.ErrNegativeTarget)
	}
	if aht <= 0 {
		return 0, invalid(op, errors.ErrNonPositiveAHT)
	}
	for count := 1; count <= maxSearchAgents; count++ {
		sa, err := ASA(float64(count), callsPerHour, aht)
		if err != nil {
			return 0, calcFailed(op, err)
		}
		if float64(sa) <= avgASA {
			metrics.SearchIterations.WithLabelValues("agents_min_asa").Observe(float64(count))
			metrics.AgentsRequired.WithLabelValues("minimum_asa").Observe(float64(count))
			return count, nil
		}
	}
	return 0, calcFailed(op, errors.ErrBoundExhausted)
}

// CallCapacity returns the largest whole call volume per interval that
// the given head count can answer within the service-level target. It
// starts from an optimistic upper bound and walks the volume down until
// Required stops asking for more agents than are available.
func CallCapacity(agents, sla float64, serviceTime, aht int) (float64, error) {
	const op = "call capacity"
	if agents < 0 {
		return 0, invalid(op, errors.ErrNegativeAgents)
	}
	if sla < 0 {
		return 0, invalid(op, errors.ErrNegativeSLA)
	}
	if serviceTime < 0 {
		return 0, invalid(op, errors.ErrNegativeServiceTime)
	}
	if aht <= 0 {
		return 0, invalid(op, errors.ErrNonPositiveAHT)
	}
	xNoAgent := int(agents)
	calls := utils.IntCeiling(config.Interval/float64(aht)) * xNoAgent
	xAgent, err := Required(sla, serviceTime, float64(calls), aht)
	if err != nil {
		return 0, calcFailed(op, err)
	}
	for xAgent > xNoAgent && calls > 0 {
		calls--
		xAgent, err = Required(sla, serviceTime, float64(calls), aht)
		if err != nil {
			return 0, calcFailed(op, err)
		}
	}
	return float64(calls), nil
}

// FractionalRequired is Required with sub-integer resolution: when the
// final ladder step overshoots the target, the result is interpolated
// linearly between the service levels of the last two head counts.
// Useful for capacity plans that pool part-time agents.
func FractionalRequired(sla float64, serviceTime int, callsPerHour float64, aht int) (float64, error) {
	const op = "fractional agents required"
	if sla < 0 {
		return 0, invalid(op, errors.ErrNegativeSLA)
	}
	if callsPerHour < 0 {
		return 0, invalid(op, errors.ErrNegativeRate)
	}
	if aht <= 0 {
		return 0, invalid(op, errors.ErrNonPositiveAHT)
	}
	if serviceTime < 0 {
		return 0, invalid(op, errors.ErrNegativeServiceTime)
	}
	if sla > 1 {
		sla = 1.0
	}
	deathRate := config.Interval / float64(aht)
	trafficRate := callsPerHour / deathRate
	noAgents := initialEstimate(callsPerHour, trafficRate, aht)

	slQueued := 0.0
	lastSlQueued := 0.0
	maxIterate := noAgents * 100
	for steps := 0; steps < maxIterate; steps++ {
		lastSlQueued = slQueued
		if trafficRate/float64(noAgents) < 1 {
			c := erlang.C(float64(noAgents), trafficRate)
			slQueued = 1 - c*math.Exp((trafficRate-float64(noAgents))*float64(serviceTime)/float64(aht))
			if slQueued < 0 {
				slQueued = 0.0
			}
			if slQueued > 1 {
				slQueued = 1.0
			}
			if slQueued >= sla || slQueued > 1-config.MaxAccuracy {
				break
			}
		}
		noAgents++
	}
	result := float64(noAgents)
	if slQueued > sla {
		oneAgentEffect := slQueued - lastSlQueued
		fract := sla - lastSlQueued
		result = (fract / oneAgentEffect) + float64(noAgents-1)
	}
	metrics.AgentsRequired.WithLabelValues("fractional").Observe(result)
	return result, nil
}

// FractionalCallCapacity is CallCapacity for a fractional head count,
// comparing against FractionalRequired instead of the integer solver.
func FractionalCallCapacity(agents, sla float64, serviceTime, aht int) (float64, error) {
	const op = "fractional call capacity"
	if agents < 0 {
		return 0, invalid(op, errors.ErrNegativeAgents)
	}
	if sla < 0 {
		return 0, invalid(op, errors.ErrNegativeSLA)
	}
	if serviceTime < 0 {
		return 0, invalid(op, errors.ErrNegativeServiceTime)
	}
	if aht <= 0 {
		return 0, invalid(op, errors.ErrNonPositiveAHT)
	}
	calls := utils.IntCeiling((config.Interval / float64(aht)) * agents)
	xAgent, err := FractionalRequired(sla, serviceTime, float64(calls), aht)
	if err != nil {
		return 0, calcFailed(op, err)
	}
	for xAgent > agents && calls > 0 {
		calls--
		xAgent, err = FractionalRequired(sla, serviceTime, float64(calls), aht)
		if err != nil {
			return 0, calcFailed(op, err)
		}
	}
	return float64(calls), nil
}
