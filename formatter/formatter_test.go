package formatter_test

import (
	"strings"
	"testing"

	"erlang-planner/formatter"
	"erlang-planner/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatText(t *testing.T) {
	tests := map[string]struct {
		schedule *models.Schedule
		contains []string
	}{
		"EmptySchedule": {
			schedule: &models.Schedule{
				HourlyRequirements: make([][]models.CustomerRequirement, 24),
			},
			contains: []string{
				"00:00 : agents=0 trunks=0 ; none",
				"12:00 : agents=0 trunks=0 ; none",
				"23:00 : agents=0 trunks=0 ; none",
			},
		},
		"SimpleSchedule": {
			schedule: &models.Schedule{
				HourlyRequirements: func() [][]models.CustomerRequirement {
					reqs := make([][]models.CustomerRequirement, 24)
					reqs[10] = []models.CustomerRequirement{
						{Name: "Cust1", AgentsNeeded: 5, TrunksNeeded: 9},
					}
					return reqs
				}(),
			},
			contains: []string{
				"10:00 : agents=5 trunks=9 ; [Cust1: agents=5, trunks=9]",
			},
		},
		"WithUnmetDemand": {
			schedule: &models.Schedule{
				HourlyRequirements: func() [][]models.CustomerRequirement {
					reqs := make([][]models.CustomerRequirement, 24)
					reqs[10] = []models.CustomerRequirement{
						{Name: "Cust1", AgentsNeeded: 5, TrunksNeeded: 9},
					}
					return reqs
				}(),
				UnmetDemands: []models.UnmetDemand{
					{
						Hour:            10,
						TotalDemand:     10,
						AllocatedAgents: 5,
						UnmetAgents:     5,
						ImpactedClients: []models.ImpactedClient{
							{Name: "Cust2", RequestedAgents: 5, AllocatedAgents: 0, UnmetAgents: 5, Priority: 2},
						},
					},
				},
			},
			contains: []string{
				"10:00 : agents=5 trunks=9 ; [Cust1: agents=5, trunks=9]",
				"⚠️  CAPACITY WARNING: Demand=10, Allocated=5, Unmet=5",
				"Impacted clients:",
				"• Cust2 [Priority 2]: Requested=5, Allocated=0, Unmet=5",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			output := formatter.FormatText(tt.schedule)
			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}
		})
	}
}

func TestFormatJSON(t *testing.T) {
	schedule := &models.Schedule{
		HourlyRequirements: func() [][]models.CustomerRequirement {
			reqs := make([][]models.CustomerRequirement, 24)
			reqs[10] = []models.CustomerRequirement{
				{Name: "Cust1", AgentsNeeded: 5, TrunksNeeded: 9},
			}
			return reqs
		}(),
	}

	output := formatter.FormatJSON(schedule)
	assert.Contains(t, output, `"hour": 10`)
	assert.Contains(t, output, `"total_agents": 5`)
	assert.Contains(t, output, `"total_trunks": 9`)
	assert.Contains(t, output, `"Cust1"`)
}

func TestFormatCSV(t *testing.T) {
	schedule := &models.Schedule{
		HourlyRequirements: func() [][]models.CustomerRequirement {
			reqs := make([][]models.CustomerRequirement, 24)
			reqs[10] = []models.CustomerRequirement{
				{Name: "Cust1", AgentsNeeded: 5, TrunksNeeded: 9},
				{Name: "Cust2", AgentsNeeded: 3, TrunksNeeded: 6},
			}
			return reqs
		}(),
	}

	output := formatter.FormatCSV(schedule)
	lines := strings.Split(strings.TrimSpace(output), "\n")
	assert.Len(t, lines, 25) // header + 24 hours

	assert.Contains(t, lines[0], "Hour")
	assert.Contains(t, lines[0], "Total Agents")
	assert.Contains(t, lines[0], "Total Trunks")
	assert.Contains(t, output, "10:00,8,15")
	assert.Contains(t, output, "Cust1(agents=5,trunks=9); Cust2(agents=3,trunks=6)")
}
