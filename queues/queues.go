// Package queues derives closed-form delay-system metrics from the
// Erlang C formula: queueing probability, queue size, expected wait and
// achieved service level for a fixed agent count.
//
// Call volumes are per reporting interval (config.Interval seconds) and
// AHT is in seconds. Whenever utilisation reaches 1 the metrics
// substitute the fixed near-unity value 0.99 so the delay terms stay
// finite at and beyond saturation.
package queues

import (
	"math"

	"erlang-planner/config"
	"erlang-planner/erlang"
	"erlang-planner/errors"
	"erlang-planner/metrics"
	"erlang-planner/utils"
)

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

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validate(op string, agents, callsPerHour float64, aht int) error {
	if agents < 0 {
		return invalid(op, errors.ErrNegativeAgents)
	}
	if callsPerHour < 0 {
		return invalid(op, errors.ErrNegativeRate)
	}
	if aht <= 0 {
		return invalid(op, errors.ErrNonPositiveAHT)
	}
	return nil
}

// Queued returns the fraction of calls that will find every agent busy
// and wait in queue.
func Queued(agents, callsPerHour float64, aht int) (float64, error) {
	const op = "queued"
	if err := validate(op, agents, callsPerHour, aht); err != nil {
		return 0, err
	}
	deathRate := config.Interval / float64(aht)
	trafficRate := callsPerHour / deathRate
	q := erlang.C(agents, trafficRate)
	if !finite(q) {
		return 0, calcFailed(op, errors.ErrNotFinite)
	}
	return utils.MinMax(q, 0.0, 1.0), nil
}

// Size returns the average number of calls waiting in queue, rounded
// half up to the nearest whole call.
func Size(agents, callsPerHour float64, aht int) (int, error) {
	const op = "queue size"
	if err := validate(op, agents, callsPerHour, aht); err != nil {
		return 0, err
	}
	deathRate := config.Interval / float64(aht)
	trafficRate := callsPerHour / deathRate
	utilisation := trafficRate / agents
	if utilisation >= 1 {
		utilisation = saturatedUtilisation
	}
	c := erlang.C(agents, trafficRate)
	qsize := (utilisation * c) / (1 - utilisation)
	if !finite(qsize) {
		return 0, calcFailed(op, errors.ErrNotFinite)
	}
	return int(qsize + 0.5), nil
}

// Time returns the average queueing time in seconds for calls that
// wait.
func Time(agents, callsPerHour float64, aht int) (int, error) {
	const op = "queue time"
	if err := validate(op, agents, callsPerHour, aht); err != nil {
		return 0, err
	}
	deathRate := config.Interval / float64(aht)
	trafficRate := callsPerHour / deathRate
	utilisation := trafficRate / agents
	if utilisation >= 1 {
		utilisation = saturatedUtilisation
	}
	qtime := 1 / (agents * deathRate * (1 - utilisation))
	if !finite(qtime) {
		return 0, calcFailed(op, errors.ErrNotFinite)
	}
	return utils.Secs(qtime), nil
}

// ServiceTime inverts the service-level formula: it returns the wait
// time in seconds within which the given fraction of calls would be
// answered. It fails when the queueing probability is already below
// 1-sla, because too few calls queue for any wait-time policy to reach
// the target.
func ServiceTime(agents, sla, callsPerHour float64, aht int) (int, error) {
	const op = "service time"
	if agents < 0 {
		return 0, invalid(op, errors.ErrNegativeAgents)
	}
	if sla < 0 {
		return 0, invalid(op, errors.ErrNegativeSLA)
	}
	if callsPerHour < 0 {
		return 0, invalid(op, errors.ErrNegativeRate)
	}
	if aht <= 0 {
		return 0, invalid(op, errors.ErrNonPositiveAHT)
	}
	adjust := 0.0
	deathRate := config.Interval / float64(aht)
	trafficRate := callsPerHour / deathRate
	c := erlang.C(agents, trafficRate)
	if c < (1 - sla) {
		return 0, calcFailed(op, errors.ErrNoCallsQueued)
	}
	utilisation := trafficRate / agents
	if utilisation >= 1 {
		utilisation = saturatedUtilisation
	}
	qtime := 1 / (agents * deathRate * (1 - utilisation)) * config.Interval
	stime := qtime * (1 - ((1 - sla) / c))
	if !finite(stime) {
		return 0, calcFailed(op, errors.ErrNotFinite)
	}
	if stime < 0 {
		adjust = 1.0
	}
	return int(stime + adjust), nil
}

// SLA returns the achieved service level: the fraction of calls
// answered within serviceTime seconds by the given number of agents.
func SLA(agents, serviceTime, callsPerHour float64, aht int) (float64, error) {
	const op = "sla"
	if err := validate(op, agents, callsPerHour, aht); err != nil {
		return 0, err
	}
	if serviceTime < 0 {
		return 0, invalid(op, errors.ErrNegativeServiceTime)
	}
	deathRate := config.Interval / float64(aht)
	trafficRate := callsPerHour / deathRate
	c := erlang.C(agents, trafficRate)
	slQueued := 1 - c*math.Exp((trafficRate-agents)*serviceTime/float64(aht))
	if !finite(slQueued) {
		return 0, calcFailed(op, errors.ErrNotFinite)
	}
	return utils.MinMax(slQueued, 0.0, 1.0), nil
}
