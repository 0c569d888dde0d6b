package models

// CallProfile describes the expected call load for one customer queue
// over a daily window. It is shared across packages to build staffing
// schedules.
type CallProfile struct {
	CustomerName       string
	AHTSeconds         int
	SLATarget          float64 // fraction of calls to answer within ServiceTimeSeconds
	ServiceTimeSeconds int
	StartHour          int // inclusive, 0-23
	EndHour            int // exclusive, 0-23; a window wraps past midnight when EndHour <= StartHour
	NumberOfCalls      int // total calls across the window, spread evenly per hour
	Priority           int
}

// Schedule represents the agent and trunk requirements per hour.
type Schedule struct {
	// HourlyRequirements maps hour (0-23) to a list of customer requirements
	HourlyRequirements [][]CustomerRequirement
	// UnmetDemands tracks hours where capacity was exceeded
	UnmetDemands []UnmetDemand
}

// CustomerRequirement holds the staffing needed for a specific customer.
type CustomerRequirement struct {
	Name         string
	AgentsNeeded int
	TrunksNeeded int
	Priority     int
}

// UnmetDemand tracks when demand cannot be met due to capacity constraints
type UnmetDemand struct {
	Hour            int
	TotalDemand     int
	AllocatedAgents int
	UnmetAgents     int
	ImpactedClients []ImpactedClient
}

// ImpactedClient represents a customer whose demand was not fully met
type ImpactedClient struct {
	Name            string
	RequestedAgents int
	AllocatedAgents int
	UnmetAgents     int
	Priority        int
}
