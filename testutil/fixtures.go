// Package testutil provides scenario fixtures, a fluent solution
// assertion helper, and a fixed-answer fake Solver shared across the
// line planning packages' tests.
package testutil

import (
	"testing"
	"time"

	"github.com/WonJayne/ivt-line-planning-app/model"
)

// MustStation builds a Station with a single coordinate point,
// failing the test on error.
func MustStation(t *testing.T, name model.StationName) model.Station {
	t.Helper()
	st, err := model.NewStation(name, []model.PointIn2D{{Lat: 0, Long: 0}}, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewStation(%s): %v", name, err)
	}
	return st
}

// MustDirection builds a Direction, failing the test on error.
func MustDirection(t *testing.T, name model.DirectionName, stations []model.StationName, tripTimes []time.Duration) model.Direction {
	t.Helper()
	d, err := model.NewDirection(name, stations, tripTimes, nil)
	if err != nil {
		t.Fatalf("NewDirection(%s): %v", name, err)
	}
	return d
}

// MustBusLine builds a BusLine, failing the test on error.
func MustBusLine(t *testing.T, number model.LineNr, name model.LineName, a, b model.Direction, capacity model.Capacity, frequencies []model.LineFrequency) model.BusLine {
	t.Helper()
	l, err := model.NewBusLine(number, name, a, b, capacity, frequencies)
	if err != nil {
		t.Fatalf("NewBusLine(%d): %v", number, err)
	}
	return l
}

// DefaultParameters returns a LinePlanningParameters fixture with
// round, easy-to-check weights, matching spec.md §8's concrete
// scenarios.
func DefaultParameters() model.LinePlanningParameters {
	return model.LinePlanningParameters{
		EgressTimeWeight:            1.0 / 60,
		WaitingTimeWeight:           1.0 / 900,
		InVehicleTimeWeight:         1.0 / 300,
		WalkingTimeWeight:           1.0 / 300,
		DwellTimeAtTerminal:         300 * time.Second,
		PeriodDuration:              3600 * time.Second,
		VehicleCostPerPeriod:        100,
		PermittedFrequencies:        []model.LineFrequency{1, 2, 4},
		DemandScaling:               1.0,
		DemandAssociationRadius:     500,
		WalkingSpeedBetweenStations: 1.4,
		MaximalWalkingDistance:      750,
	}
}

// FourStopScenario builds the two-line, four-station scenario used as
// spec.md §8's first concrete scenario: a straight line A-B-C-D served
// by Line1 in both directions, and a second line skipping directly
// between the endpoints, with demand from A to D.
func FourStopScenario(t *testing.T) (model.PlanningScenario, model.LinePlanningParameters) {
	t.Helper()

	stations := []model.Station{
		MustStation(t, "A"), MustStation(t, "B"), MustStation(t, "C"), MustStation(t, "D"),
	}

	forward := MustDirection(t, "forward", []model.StationName{"A", "B", "C", "D"},
		[]time.Duration{300 * time.Second, 300 * time.Second, 300 * time.Second})
	backward := MustDirection(t, "backward", []model.StationName{"D", "C", "B", "A"},
		[]time.Duration{300 * time.Second, 300 * time.Second, 300 * time.Second})
	line1 := MustBusLine(t, 1, "Line1", forward, backward, 100, []model.LineFrequency{1, 2, 4})

	directAD := MustDirection(t, "AD", []model.StationName{"A", "D"}, []time.Duration{300 * time.Second})
	directDA := MustDirection(t, "DA", []model.StationName{"D", "A"}, []time.Duration{300 * time.Second})
	line2 := MustBusLine(t, 2, "Line2", directAD, directDA, 100, []model.LineFrequency{1, 2, 4})

	scenario := model.PlanningScenario{
		DemandMatrix: model.NewDemandMatrix(map[model.StationName]map[model.StationName]float64{
			"A": {"D": 40},
		}),
		BusLines: []model.BusLine{line1, line2},
		Stations: stations,
	}

	return scenario, DefaultParameters()
}

// WalkingScenario extends FourStopScenario with stations E and F, served
// only by their own Line3 (E-F), so E is reachable from D only by foot,
// and demand from A terminating at E — the "walking preferred" / "walking not preferred"
// family of scenarios from spec.md §8, parameterised by walkTime.
func WalkingScenario(t *testing.T, walkTime time.Duration) (model.PlanningScenario, model.LinePlanningParameters) {
	t.Helper()

	scenario, params := FourStopScenario(t)
	stationD := scenario.Stations[3]
	stationE := MustStation(t, "E")
	stationF := MustStation(t, "F")

	// Line3 gives E a line of its own, so CheckConsistency's rule that
	// every walk endpoint must also be served by some line still holds.
	ef := MustDirection(t, "EF", []model.StationName{"E", "F"}, []time.Duration{60 * time.Second})
	fe := MustDirection(t, "FE", []model.StationName{"F", "E"}, []time.Duration{60 * time.Second})
	line3 := MustBusLine(t, 3, "Line3", ef, fe, 100, []model.LineFrequency{1, 2, 4})

	scenario.Stations = append(scenario.Stations, stationE, stationF)
	scenario.BusLines = append(scenario.BusLines, line3)
	scenario.WalkableDistances = []model.WalkableDistance{
		{StartingAt: stationD, EndingAt: stationE, WalkingTime: walkTime},
	}
	scenario.DemandMatrix = model.NewDemandMatrix(map[model.StationName]map[model.StationName]float64{
		"A": {"E": 40},
	})

	return scenario, params
}

// FleetCappedScenario returns FourStopScenario with a fleet cap of
// zero vehicles, which must render the problem infeasible.
func FleetCappedScenario(t *testing.T) (model.PlanningScenario, model.LinePlanningParameters) {
	t.Helper()

	scenario, params := FourStopScenario(t)
	zero := 0
	params.MaximalNumberOfVehicles = &zero
	return scenario, params
}

// ZeroCapacityScenario returns FourStopScenario with every line's
// vehicle capacity set to zero, which must render the problem
// infeasible whenever demand is positive.
func ZeroCapacityScenario(t *testing.T) (model.PlanningScenario, model.LinePlanningParameters) {
	t.Helper()

	scenario, params := FourStopScenario(t)
	lines := make([]model.BusLine, len(scenario.BusLines))
	for i, l := range scenario.BusLines {
		l.Capacity = 0
		lines[i] = l
	}
	scenario.BusLines = lines
	return scenario, params
}
