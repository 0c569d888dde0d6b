package formatter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"erlang-planner/models"
)

// ScheduleData holds prepared schedule data used by all formatters
type ScheduleData struct {
	Hours []HourlyData
}

// HourlyData groups staffing requirements for an hour
type HourlyData struct {
	Hour        int                     `json:"hour"`
	TotalAgents int                     `json:"total_agents"`
	TotalTrunks int                     `json:"total_trunks"`
	Customers   map[string]CustomerCell `json:"customers,omitempty"`
	UnmetDemand *UnmetDemandInfo        `json:"unmet_demand,omitempty"`
}

// CustomerCell holds one customer's staffing for an hour
type CustomerCell struct {
	Agents int `json:"agents"`
	Trunks int `json:"trunks"`
}

// UnmetDemandInfo represents unmet demand for a specific hour
type UnmetDemandInfo struct {
	TotalDemand     int                     `json:"total_demand"`
	AllocatedAgents int                     `json:"allocated_agents"`
	UnmetAgents     int                     `json:"unmet_agents"`
	ImpactedClients []models.ImpactedClient `json:"impacted_clients"`
}

// prepareScheduleData extracts and organizes schedule data for formatting
func prepareScheduleData(schedule *models.Schedule) *ScheduleData {
	unmetByHour := make(map[int]*models.UnmetDemand)
	for i := range schedule.UnmetDemands {
		unmetByHour[schedule.UnmetDemands[i].Hour] = &schedule.UnmetDemands[i]
	}

	hours := make([]HourlyData, 24)
	for h := 0; h < 24; h++ {
		hours[h] = processHour(schedule, h)

		if unmet, exists := unmetByHour[h]; exists {
			clients := make([]models.ImpactedClient, len(unmet.ImpactedClients))
			copy(clients, unmet.ImpactedClients)
			hours[h].UnmetDemand = &UnmetDemandInfo{
				TotalDemand:     unmet.TotalDemand,
				AllocatedAgents: unmet.AllocatedAgents,
				UnmetAgents:     unmet.UnmetAgents,
				ImpactedClients: clients,
			}
		}
	}

	return &ScheduleData{Hours: hours}
}

// FormatText returns the text representation of the schedule
func FormatText(schedule *models.Schedule) string {
	data := prepareScheduleData(schedule)
	var sb strings.Builder

	for _, hourData := range data.Hours {
		sb.WriteString(formatTextLine(hourData.Hour, hourData))
		sb.WriteString("\n")

		// Add unmet demand warning if exists
		if hourData.UnmetDemand != nil {
			unmet := hourData.UnmetDemand
			sb.WriteString(fmt.Sprintf("  ⚠️  CAPACITY WARNING: Demand=%d, Allocated=%d, Unmet=%d\n",
				unmet.TotalDemand, unmet.AllocatedAgents, unmet.UnmetAgents))
			sb.WriteString("  Impacted clients:\n")
			for _, client := range unmet.ImpactedClients {
				sb.WriteString(fmt.Sprintf("    • %s [Priority %d]: Requested=%d, Allocated=%d, Unmet=%d\n",
					client.Name, client.Priority, client.RequestedAgents,
					client.AllocatedAgents, client.UnmetAgents))
			}
		}
	}

	return sb.String()
}

// FormatJSON returns the JSON representation of the schedule
func FormatJSON(schedule *models.Schedule) string {
	data := prepareScheduleData(schedule)
	jsonBytes, _ := json.MarshalIndent(data.Hours, "", "  ")
	return string(jsonBytes)
}

// FormatCSV returns the CSV representation of the schedule
func FormatCSV(schedule *models.Schedule) string {
	data := prepareScheduleData(schedule)
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	// Write header
	writer.Write([]string{
		"Hour", "Total Agents", "Total Trunks", "Customer Details",
		"Capacity Warning", "Total Demand", "Allocated", "Unmet", "Impacted Clients",
	})

	for _, hourData := range data.Hours {
		writeHourToCSV(writer, hourData)
	}

	writer.Flush()
	return sb.String()
}

// writeHourToCSV writes a single hour's data to CSV
func writeHourToCSV(writer *csv.Writer, hourData HourlyData) {
	hour := hourData.Hour
	unmet := hourData.UnmetDemand

	if hourData.TotalAgents == 0 {
		// Empty hour
		writer.Write([]string{
			fmt.Sprintf("%02d:00", hour), "0", "0", "",
			"No", "", "", "", "",
		})
		return
	}

	// Build customer details with format: "Customer1(agents=5,trunks=9); ..."
	var customerDetails []string
	for _, customer := range sortedCustomers(hourData.Customers) {
		cell := hourData.Customers[customer]
		customerDetails = append(customerDetails,
			fmt.Sprintf("%s(agents=%d,trunks=%d)", customer, cell.Agents, cell.Trunks))
	}
	customerDetailsStr := strings.Join(customerDetails, "; ")

	// Build impacted clients string
	var impactedClientsStr string
	if unmet != nil {
		var impactedParts []string
		for _, client := range unmet.ImpactedClients {
			impactedParts = append(impactedParts,
				fmt.Sprintf("%s(priority=%d,requested=%d,allocated=%d,unmet=%d)",
					client.Name, client.Priority, client.RequestedAgents,
					client.AllocatedAgents, client.UnmetAgents))
		}
		impactedClientsStr = strings.Join(impactedParts, "; ")
	}

	// Build single row for this hour
	row := []string{
		fmt.Sprintf("%02d:00", hour),
		fmt.Sprintf("%d", hourData.TotalAgents),
		fmt.Sprintf("%d", hourData.TotalTrunks),
		customerDetailsStr,
	}

	if unmet != nil {
		row = append(row,
			"Yes",
			fmt.Sprintf("%d", unmet.TotalDemand),
			fmt.Sprintf("%d", unmet.AllocatedAgents),
			fmt.Sprintf("%d", unmet.UnmetAgents),
			impactedClientsStr,
		)
	} else {
		row = append(row, "No", "", "", "", "")
	}

	writer.Write(row)
}

// processHour collects requirements for a given hour
func processHour(schedule *models.Schedule, hour int) HourlyData {
	data := HourlyData{
		Hour:      hour,
		Customers: make(map[string]CustomerCell),
	}

	if hour >= len(schedule.HourlyRequirements) {
		return data
	}

	for _, req := range schedule.HourlyRequirements[hour] {
		data.Customers[req.Name] = CustomerCell{Agents: req.AgentsNeeded, Trunks: req.TrunksNeeded}
		data.TotalAgents += req.AgentsNeeded
		data.TotalTrunks += req.TrunksNeeded
	}

	return data
}

// formatTextLine formats a single hour line for text output
func formatTextLine(hour int, data HourlyData) string {
	if data.TotalAgents == 0 {
		return fmt.Sprintf("%02d:00 : agents=0 trunks=0 ; none", hour)
	}

	var parts []string
	for _, customer := range sortedCustomers(data.Customers) {
		cell := data.Customers[customer]
		parts = append(parts, fmt.Sprintf("%s: agents=%d, trunks=%d", customer, cell.Agents, cell.Trunks))
	}

	return fmt.Sprintf("%02d:00 : agents=%d trunks=%d ; [%s]",
		hour, data.TotalAgents, data.TotalTrunks, strings.Join(parts, ", "))
}

// sortedCustomers returns sorted customer names
func sortedCustomers(customers map[string]CustomerCell) []string {
	names := make([]string, 0, len(customers))
	for name := range customers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
