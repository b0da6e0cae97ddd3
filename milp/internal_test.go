package milp

import (
	"testing"
	"time"

	"github.com/WonJayne/ivt-line-planning-app/model"
	"github.com/WonJayne/ivt-line-planning-app/network"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.005, 1.0},
		{-40, -40},
		{12.3449, 12.34},
		{12.345, 12.35},
	}
	for _, c := range cases {
		if got := round2(c.in); got != c.want {
			t.Errorf("round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestVehiclesRequired_RoundsUp(t *testing.T) {
	forward, _ := model.NewDirection("fwd", []model.StationName{"A", "B"}, []time.Duration{600 * time.Second}, nil)
	backward, _ := model.NewDirection("bwd", []model.StationName{"B", "A"}, []time.Duration{600 * time.Second}, nil)
	line, err := model.NewBusLine(1, "L1", forward, backward, 50, []model.LineFrequency{1, 2})
	if err != nil {
		t.Fatalf("NewBusLine: %v", err)
	}

	params := model.LinePlanningParameters{
		DwellTimeAtTerminal: 300 * time.Second,
		PeriodDuration:      3600 * time.Second,
	}

	// circulation = 2*300 + 600 + 600 = 1800s; ratio at f=2: 1800/3600*2 = 1.0 -> 1 vehicle.
	if got := vehiclesRequired(line, 2, params); got != 1 {
		t.Errorf("vehiclesRequired(f=2) = %d, want 1", got)
	}
	// at f=4: 1800/3600*4 = 2.0 -> 2 vehicles.
	if got := vehiclesRequired(line, 4, params); got != 2 {
		t.Errorf("vehiclesRequired(f=4) = %d, want 2", got)
	}
	// at f=3: 1800/3600*3 = 1.5 -> rounds up to 2.
	if got := vehiclesRequired(line, 3, params); got != 2 {
		t.Errorf("vehiclesRequired(f=3) = %d, want 2 (round up)", got)
	}
}

func TestNetDemand_AccessAndEgressNodes(t *testing.T) {
	scenario := model.PlanningScenario{
		DemandMatrix: model.NewDemandMatrix(map[model.StationName]map[model.StationName]float64{
			"A": {"D": 40.001},
		}),
	}

	if got := netDemand(scenario, "A", network.AccessNodeName("A")); got != -40.0 {
		t.Errorf("access node net demand = %v, want -40", got)
	}
	if got := netDemand(scenario, "A", network.EgressNodeName("D")); got != 40.0 {
		t.Errorf("egress node net demand = %v, want 40", got)
	}
	if got := netDemand(scenario, "A", "5$A"); got != 0 {
		t.Errorf("unrelated node net demand = %v, want 0", got)
	}
}

func TestAssemble_RegistersOneVariablePerFrequencyAndFlow(t *testing.T) {
	scenario, params := scenarioFixture(t)

	net, err := network.Build(scenario, params)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	weights, err := network.Weights(net, params)
	if err != nil {
		t.Fatalf("Weights: %v", err)
	}

	p, err := Assemble(scenario, net, weights, params)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	wantLineVars := 0
	for _, l := range scenario.BusLines {
		wantLineVars += len(l.PermittedFrequencies)
	}
	if len(p.LineVar) != wantLineVars {
		t.Errorf("len(LineVar) = %d, want %d", len(p.LineVar), wantLineVars)
	}

	wantFlowVars := len(p.Origins) * net.LinkCount()
	if len(p.FlowVar) != wantFlowVars {
		t.Errorf("len(FlowVar) = %d, want %d", len(p.FlowVar), wantFlowVars)
	}
	if p.NumVars != wantLineVars+wantFlowVars {
		t.Errorf("NumVars = %d, want %d", p.NumVars, wantLineVars+wantFlowVars)
	}
}

func TestAssemble_SingleConfigConstraintPerLine(t *testing.T) {
	scenario, params := scenarioFixture(t)
	net, _ := network.Build(scenario, params)
	weights, _ := network.Weights(net, params)
	p, err := Assemble(scenario, net, weights, params)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	count := 0
	for _, c := range p.Constraints {
		if c.Label == "single_config" {
			count++
			if c.Relation != LE || c.RHS != 1 {
				t.Errorf("single_config constraint: relation=%v rhs=%v, want LE/1", c.Relation, c.RHS)
			}
		}
	}
	if count != len(scenario.BusLines) {
		t.Errorf("single_config constraints = %d, want %d", count, len(scenario.BusLines))
	}
}

func TestAssemble_FleetCapOmittedUnlessSet(t *testing.T) {
	scenario, params := scenarioFixture(t)
	net, _ := network.Build(scenario, params)
	weights, _ := network.Weights(net, params)
	p, err := Assemble(scenario, net, weights, params)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	for _, c := range p.Constraints {
		if c.Label == "fleet_cap" {
			t.Fatal("expected no fleet_cap constraint when MaximalNumberOfVehicles is nil")
		}
	}

	cap := 5
	params.MaximalNumberOfVehicles = &cap
	p, err = Assemble(scenario, net, weights, params)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	found := false
	for _, c := range p.Constraints {
		if c.Label == "fleet_cap" {
			found = true
			if c.Relation != LE || c.RHS != 5 {
				t.Errorf("fleet_cap: relation=%v rhs=%v, want LE/5", c.Relation, c.RHS)
			}
		}
	}
	if !found {
		t.Error("expected a fleet_cap constraint once MaximalNumberOfVehicles is set")
	}
}

// scenarioFixture mirrors testutil.FourStopScenario without importing
// testutil, avoiding an import cycle from this internal (whitebox)
// test file.
func scenarioFixture(t *testing.T) (model.PlanningScenario, model.LinePlanningParameters) {
	t.Helper()

	mkStation := func(name model.StationName) model.Station {
		st, err := model.NewStation(name, []model.PointIn2D{{Lat: 0, Long: 0}}, nil, nil, nil)
		if err != nil {
			t.Fatalf("NewStation(%s): %v", name, err)
		}
		return st
	}
	stations := []model.Station{mkStation("A"), mkStation("B"), mkStation("C"), mkStation("D")}

	forward, _ := model.NewDirection("forward", []model.StationName{"A", "B", "C", "D"},
		[]time.Duration{300 * time.Second, 300 * time.Second, 300 * time.Second}, nil)
	backward, _ := model.NewDirection("backward", []model.StationName{"D", "C", "B", "A"},
		[]time.Duration{300 * time.Second, 300 * time.Second, 300 * time.Second}, nil)
	line1, err := model.NewBusLine(1, "Line1", forward, backward, 100, []model.LineFrequency{1, 2, 4})
	if err != nil {
		t.Fatalf("NewBusLine line1: %v", err)
	}

	directAD, _ := model.NewDirection("AD", []model.StationName{"A", "D"}, []time.Duration{300 * time.Second}, nil)
	directDA, _ := model.NewDirection("DA", []model.StationName{"D", "A"}, []time.Duration{300 * time.Second}, nil)
	line2, err := model.NewBusLine(2, "Line2", directAD, directDA, 100, []model.LineFrequency{1, 2, 4})
	if err != nil {
		t.Fatalf("NewBusLine line2: %v", err)
	}

	scenario := model.PlanningScenario{
		DemandMatrix: model.NewDemandMatrix(map[model.StationName]map[model.StationName]float64{
			"A": {"D": 40},
		}),
		BusLines: []model.BusLine{line1, line2},
		Stations: stations,
	}

	params := model.LinePlanningParameters{
		EgressTimeWeight:     1.0 / 60,
		WaitingTimeWeight:    1.0 / 900,
		InVehicleTimeWeight:  1.0 / 300,
		WalkingTimeWeight:    1.0 / 300,
		DwellTimeAtTerminal:  300 * time.Second,
		PeriodDuration:       3600 * time.Second,
		VehicleCostPerPeriod: 100,
	}

	return scenario, params
}
