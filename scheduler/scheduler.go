package scheduler

import (
	"fmt"
	"sort"

	"erlang-planner/agents"
	"erlang-planner/metrics"
	"erlang-planner/models"
	"erlang-planner/trunks"
)

// Generate builds the hourly staffing schedule for a set of call
// profiles. Each customer's window is staffed with the Erlang C
// service-level solver and its trunk lines are sized from the resulting
// head count. capacityPerHour caps the total agents available in any
// hour; 0 means unlimited.
func Generate(profiles []models.CallProfile, capacityPerHour int) (*models.Schedule, error) {
	metrics.ResetSchedulerGauges()

	hourlyRequests := make([][]models.CustomerRequirement, 24)
	for h := 0; h < 24; h++ {
		hourlyRequests[h] = make([]models.CustomerRequirement, 0)
	}

	for _, p := range profiles {
		hours := windowHours(p.StartHour, p.EndHour)
		if len(hours) == 0 {
			continue
		}
		callsPerHour := float64(p.NumberOfCalls) / float64(len(hours))

		agentsNeeded, err := agents.Required(p.SLATarget, p.ServiceTimeSeconds, callsPerHour, p.AHTSeconds)
		if err != nil {
			return nil, fmt.Errorf("staffing %q: %w", p.CustomerName, err)
		}
		trunksNeeded, err := trunks.Required(float64(agentsNeeded), callsPerHour, p.AHTSeconds)
		if err != nil {
			return nil, fmt.Errorf("sizing trunks for %q: %w", p.CustomerName, err)
		}

		for _, h := range hours {
			hourlyRequests[h] = append(hourlyRequests[h], models.CustomerRequirement{
				Name:         p.CustomerName,
				AgentsNeeded: agentsNeeded,
				TrunksNeeded: trunksNeeded,
				Priority:     p.Priority,
			})
		}
	}

	schedule := models.Schedule{
		HourlyRequirements: hourlyRequests,
		UnmetDemands:       make([]models.UnmetDemand, 0),
	}
	// Apply capacity constraints if capacityPerHour > 0
	if capacityPerHour > 0 {
		for h := 0; h < 24; h++ {
			allocated, unmet := allocateWithConstraints(hourlyRequests[h], capacityPerHour)
			schedule.HourlyRequirements[h] = allocated
			if unmet != nil {
				unmet.Hour = h
				schedule.UnmetDemands = append(schedule.UnmetDemands, *unmet)
			}
		}
	}

	observe(&schedule)
	return &schedule, nil
}

// windowHours expands a daily window into hours of day, wrapping past
// midnight when the end hour is not after the start.
func windowHours(startHour, endHour int) []int {
	if startHour < 0 || startHour > 23 || endHour < 0 || endHour > 23 {
		return nil
	}
	length := endHour - startHour
	if length <= 0 {
		length += 24
	}
	hours := make([]int, 0, length)
	for i := 0; i < length; i++ {
		hours = append(hours, (startHour+i)%24)
	}
	return hours
}

// allocateWithConstraints performs priority-based allocation.
// Time: O(n log n) for sort + O(n) for allocation = O(n log n)
// Space: O(n) for output slices (no extra map overhead)
func allocateWithConstraints(requests []models.CustomerRequirement, capacity int) ([]models.CustomerRequirement, *models.UnmetDemand) {
	if len(requests) == 0 {
		return nil, nil
	}

	// Calculate total demand: O(n)
	totalDemand := 0
	for _, req := range requests {
		totalDemand += req.AgentsNeeded
	}

	// Fast path: if capacity exceeds demand, no allocation logic needed
	if capacity >= totalDemand {
		return requests, nil
	}

	// Sort by priority (1 = highest): O(n log n)
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].Priority < requests[j].Priority
	})

	allocated := make([]models.CustomerRequirement, 0, len(requests))
	impactedClients := make([]models.ImpactedClient, 0)
	remaining := capacity

	// Single pass allocation: O(n)
	for _, req := range requests {
		if remaining <= 0 {
			// No capacity left - fully unmet
			impactedClients = append(impactedClients, models.ImpactedClient{
				Name:            req.Name,
				RequestedAgents: req.AgentsNeeded,
				AllocatedAgents: 0,
				UnmetAgents:     req.AgentsNeeded,
				Priority:        req.Priority,
			})
			continue
		}

		if remaining >= req.AgentsNeeded {
			// Full allocation
			allocated = append(allocated, req)
			remaining -= req.AgentsNeeded
		} else {
			// Partial allocation - give what's left
			allocated = append(allocated, models.CustomerRequirement{
				Name:         req.Name,
				AgentsNeeded: remaining,
				TrunksNeeded: req.TrunksNeeded,
				Priority:     req.Priority,
			})
			impactedClients = append(impactedClients, models.ImpactedClient{
				Name:            req.Name,
				RequestedAgents: req.AgentsNeeded,
				AllocatedAgents: remaining,
				UnmetAgents:     req.AgentsNeeded - remaining,
				Priority:        req.Priority,
			})
			remaining = 0
		}
	}

	// Only create UnmetDemand if there are impacted clients
	if len(impactedClients) > 0 {
		return allocated, &models.UnmetDemand{
			TotalDemand:     totalDemand,
			AllocatedAgents: capacity,
			UnmetAgents:     totalDemand - capacity,
			ImpactedClients: impactedClients,
		}
	}
	return allocated, nil
}

// observe publishes the schedule totals to the metrics registry.
func observe(schedule *models.Schedule) {
	allocated := 0
	trunksTotal := 0
	for _, reqs := range schedule.HourlyRequirements {
		for _, req := range reqs {
			allocated += req.AgentsNeeded
			trunksTotal += req.TrunksNeeded
		}
	}
	unmet := 0
	for _, u := range schedule.UnmetDemands {
		unmet += u.UnmetAgents
		for _, client := range u.ImpactedClients {
			metrics.ScheduleUnmetByPriority.WithLabelValues(fmt.Sprintf("%d", client.Priority)).Add(float64(client.UnmetAgents))
		}
	}
	metrics.ScheduleAgentsAllocated.Set(float64(allocated))
	metrics.ScheduleAgentsDemanded.Set(float64(allocated + unmet))
	metrics.ScheduleAgentsUnmet.Set(float64(unmet))
	metrics.ScheduleHoursWithUnmetDemand.Set(float64(len(schedule.UnmetDemands)))
	metrics.ScheduleTrunksDemanded.Set(float64(trunksTotal))
}
