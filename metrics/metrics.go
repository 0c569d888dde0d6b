// Package metrics provides Prometheus observability metrics for the
// planning calculations. It includes Critical and Important metrics for
// business and operational visibility.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// =============================================================================
// CRITICAL METRICS - Business Impact Visibility
// =============================================================================

// AgentsRequired tracks staffing results returned by the agent solvers.
var AgentsRequired = factory.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "solver",
	Name:      "agents_required",
	Help:      "Agent counts returned by the staffing solvers",
	Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
}, []string{"solver"})

// TrunksRequired tracks trunk counts returned by the trunk solver.
var TrunksRequired = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "solver",
	Name:      "trunks_required",
	Help:      "Trunk counts returned by the trunk solver",
	Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
})

// ValidationFailuresTotal tracks rejected inputs by operation.
var ValidationFailuresTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "solver",
	Name:      "validation_failures_total",
	Help:      "Total inputs rejected before computation, by operation",
}, []string{"operation"})

// CalculationFailuresTotal tracks failed calculations by operation.
var CalculationFailuresTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "solver",
	Name:      "calculation_failures_total",
	Help:      "Total calculations that failed (exhausted bound, unreachable target), by operation",
}, []string{"operation"})

// =============================================================================
// IMPORTANT METRICS - Operational Health
// =============================================================================

// SearchIterations tracks how many steps each search took to converge.
var SearchIterations = factory.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "solver",
	Name:      "search_iterations",
	Help:      "Iterations taken by a search before its stopping predicate held",
	Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 1000, 5000, 25000},
}, []string{"solver"})

// ScheduleAgentsDemanded tracks total agent demand across all hours.
var ScheduleAgentsDemanded = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "scheduler",
	Name:      "agents_demanded_total",
	Help:      "Total number of agents demanded across all customers and hours",
})

// ScheduleAgentsAllocated tracks total agents successfully allocated.
var ScheduleAgentsAllocated = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "scheduler",
	Name:      "agents_allocated_total",
	Help:      "Total number of agents successfully allocated",
})

// ScheduleAgentsUnmet tracks total unmet agent demand across all hours.
// High values indicate capacity planning issues.
var ScheduleAgentsUnmet = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "scheduler",
	Name:      "agents_unmet_total",
	Help:      "Total number of agents that could not be allocated due to capacity constraints",
})

// ScheduleHoursWithUnmetDemand tracks hours where capacity was exceeded.
var ScheduleHoursWithUnmetDemand = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "scheduler",
	Name:      "hours_with_unmet_demand",
	Help:      "Number of hours in the schedule where demand exceeded capacity",
})

// ScheduleTrunksDemanded tracks total trunk-line demand across all hours.
var ScheduleTrunksDemanded = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "scheduler",
	Name:      "trunks_demanded_total",
	Help:      "Total number of trunk lines demanded across all customers and hours",
})

// ScheduleUnmetByPriority tracks unmet agents by priority level.
var ScheduleUnmetByPriority = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "scheduler",
	Name:      "unmet_demand_by_priority",
	Help:      "Unmet agent demand broken down by priority level",
}, []string{"priority"})

// =============================================================================
// Helper Functions
// =============================================================================

// ResetSchedulerGauges resets all scheduler gauges before a new scheduling run.
// Call this at the start of Generate.
func ResetSchedulerGauges() {
	ScheduleAgentsDemanded.Set(0)
	ScheduleAgentsAllocated.Set(0)
	ScheduleAgentsUnmet.Set(0)
	ScheduleHoursWithUnmetDemand.Set(0)
	ScheduleTrunksDemanded.Set(0)
	ScheduleUnmetByPriority.Reset()
}
