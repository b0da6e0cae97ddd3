// Package summary renders a deterministic textual report of a solved
// line planning problem: the parameters a run used, the demand it
// served, and the solution it produced.
package summary

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/WonJayne/ivt-line-planning-app/model"
	"github.com/WonJayne/ivt-line-planning-app/network"
	"github.com/WonJayne/ivt-line-planning-app/solution"
)

// Render builds the summary text block for scenario/params/sol: all
// parameter fields sorted by key, total demand and the number of
// positive OD relations, weighted hours per activity, active line
// numbers with their selected frequencies sorted by line number, and
// the used-vehicle count.
func Render(scenario model.PlanningScenario, params model.LinePlanningParameters, sol solution.Solution) string {
	var b strings.Builder

	b.WriteString("Parameters:\n")
	for _, line := range parameterLines(params) {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	totalDemand, positiveRelations := demandStats(scenario.DemandMatrix)
	fmt.Fprintf(&b, "Demand: total=%.2f pax, positive_relations=%d\n", totalDemand, positiveRelations)

	b.WriteString("Weighted hours per activity:\n")
	for _, activity := range sortedActivities(sol.WeightedTravelTime) {
		hours := sol.WeightedTravelTime[activity].Hours()
		fmt.Fprintf(&b, "  %s: %.4f\n", activity, hours)
	}

	b.WriteString("Active lines:\n")
	for _, line := range sortedActiveLines(sol.ActiveLines) {
		fmt.Fprintf(&b, "  line %d (%s): frequencies=%v\n", line.Number, line.Name, line.PermittedFrequencies)
	}

	fmt.Fprintf(&b, "Used vehicles: %d\n", sol.UsedVehicles)

	return b.String()
}

// parameterLines renders every LinePlanningParameters field as
// "key: value", sorted by key.
func parameterLines(p model.LinePlanningParameters) []string {
	fields := map[string]string{
		"demand_association_radius":     fmt.Sprintf("%v", p.DemandAssociationRadius),
		"demand_scaling":                fmt.Sprintf("%v", p.DemandScaling),
		"dwell_time_at_terminal":        p.DwellTimeAtTerminal.String(),
		"egress_time_weight":            fmt.Sprintf("%v", p.EgressTimeWeight),
		"in_vehicle_time_weight":        fmt.Sprintf("%v", p.InVehicleTimeWeight),
		"maximal_walking_distance":      fmt.Sprintf("%v", p.MaximalWalkingDistance),
		"period_duration":               p.PeriodDuration.String(),
		"permitted_frequencies":         fmt.Sprintf("%v", p.PermittedFrequencies),
		"vehicle_cost_per_period":       fmt.Sprintf("%v", p.VehicleCostPerPeriod),
		"waiting_time_weight":           fmt.Sprintf("%v", p.WaitingTimeWeight),
		"walking_speed_between_stations": fmt.Sprintf("%v", p.WalkingSpeedBetweenStations),
		"walking_time_weight":           fmt.Sprintf("%v", p.WalkingTimeWeight),
	}
	if p.MaximalNumberOfVehicles != nil {
		fields["maximal_number_of_vehicles"] = fmt.Sprintf("%d", *p.MaximalNumberOfVehicles)
	} else {
		fields["maximal_number_of_vehicles"] = "none"
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", k, fields[k]))
	}
	return lines
}

// demandStats returns the total demand across every OD relation and
// the count of relations with strictly positive demand.
func demandStats(d model.DemandMatrix) (total float64, positiveRelations int) {
	for _, origin := range d.AllOrigins() {
		for _, pax := range d.StartingFrom(origin) {
			total += pax
			if pax > 0 {
				positiveRelations++
			}
		}
	}
	return total, positiveRelations
}

func sortedActivities(m map[network.Activity]time.Duration) []network.Activity {
	activities := make([]network.Activity, 0, len(m))
	for a := range m {
		activities = append(activities, a)
	}
	sort.Slice(activities, func(i, j int) bool { return activities[i].String() < activities[j].String() })
	return activities
}

func sortedActiveLines(lines []model.BusLine) []model.BusLine {
	sorted := append([]model.BusLine(nil), lines...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Number < sorted[j].Number })
	return sorted
}
