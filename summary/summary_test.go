package summary

import (
	"strings"
	"testing"
	"time"

	"github.com/WonJayne/ivt-line-planning-app/model"
	"github.com/WonJayne/ivt-line-planning-app/network"
	"github.com/WonJayne/ivt-line-planning-app/solution"
)

func testScenario(t *testing.T) model.PlanningScenario {
	t.Helper()
	return model.PlanningScenario{
		DemandMatrix: model.NewDemandMatrix(map[model.StationName]map[model.StationName]float64{
			"A": {"D": 40, "C": 0},
			"B": {"D": 10},
		}),
	}
}

func testParams() model.LinePlanningParameters {
	maxVehicles := 5
	return model.LinePlanningParameters{
		EgressTimeWeight:            1.0 / 60,
		WaitingTimeWeight:           1.0 / 900,
		InVehicleTimeWeight:         1.0 / 300,
		WalkingTimeWeight:           0,
		DwellTimeAtTerminal:         300 * time.Second,
		PeriodDuration:              3600 * time.Second,
		VehicleCostPerPeriod:        100,
		PermittedFrequencies:        []model.LineFrequency{2, 4},
		DemandScaling:               1.0,
		DemandAssociationRadius:     500,
		WalkingSpeedBetweenStations: 1.4,
		MaximalWalkingDistance:      750,
		MaximalNumberOfVehicles:     &maxVehicles,
	}
}

func testSolution(t *testing.T) solution.Solution {
	t.Helper()
	forward, err := model.NewDirection("forward", []model.StationName{"A", "D"}, []time.Duration{300 * time.Second}, nil)
	if err != nil {
		t.Fatalf("NewDirection: %v", err)
	}
	backward, err := model.NewDirection("backward", []model.StationName{"D", "A"}, []time.Duration{300 * time.Second}, nil)
	if err != nil {
		t.Fatalf("NewDirection: %v", err)
	}
	line, err := model.NewBusLine(2, "Express", forward, backward, 80, []model.LineFrequency{4})
	if err != nil {
		t.Fatalf("NewBusLine: %v", err)
	}
	line1, err := model.NewBusLine(1, "Local", forward, backward, 80, []model.LineFrequency{2})
	if err != nil {
		t.Fatalf("NewBusLine: %v", err)
	}

	return solution.Solution{
		WeightedTravelTime: map[network.Activity]time.Duration{
			network.InVehicle:  2 * time.Hour,
			network.AccessLine: 30 * time.Minute,
		},
		UsedVehicles: 3,
		ActiveLines:  []model.BusLine{line, line1},
	}
}

func TestRender_ContainsSortedParameterKeys(t *testing.T) {
	out := Render(testScenario(t), testParams(), testSolution(t))

	idxDemandScaling := strings.Index(out, "demand_scaling:")
	idxWalkingTimeWeight := strings.Index(out, "walking_time_weight:")
	if idxDemandScaling == -1 || idxWalkingTimeWeight == -1 {
		t.Fatalf("expected both parameter keys present in output:\n%s", out)
	}
	if idxDemandScaling > idxWalkingTimeWeight {
		t.Errorf("expected parameter keys sorted alphabetically, demand_scaling should precede walking_time_weight")
	}
}

func TestRender_DemandStats(t *testing.T) {
	out := Render(testScenario(t), testParams(), testSolution(t))
	if !strings.Contains(out, "total=50.00") {
		t.Errorf("expected total demand 50.00 in output:\n%s", out)
	}
	if !strings.Contains(out, "positive_relations=2") {
		t.Errorf("expected 2 positive OD relations in output:\n%s", out)
	}
}

func TestRender_ActiveLinesSortedByNumber(t *testing.T) {
	out := Render(testScenario(t), testParams(), testSolution(t))
	idxLine1 := strings.Index(out, "line 1 (")
	idxLine2 := strings.Index(out, "line 2 (")
	if idxLine1 == -1 || idxLine2 == -1 {
		t.Fatalf("expected both lines present in output:\n%s", out)
	}
	if idxLine1 > idxLine2 {
		t.Error("expected line 1 to be rendered before line 2")
	}
}

func TestRender_UsedVehicles(t *testing.T) {
	out := Render(testScenario(t), testParams(), testSolution(t))
	if !strings.Contains(out, "Used vehicles: 3") {
		t.Errorf("expected used vehicle count in output:\n%s", out)
	}
}
