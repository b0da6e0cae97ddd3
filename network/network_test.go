package network

import (
	"testing"
	"time"

	"github.com/WonJayne/ivt-line-planning-app/model"
)

func fourStopScenario(t *testing.T) (model.PlanningScenario, model.LinePlanningParameters) {
	t.Helper()

	mkStation := func(name model.StationName) model.Station {
		st, err := model.NewStation(name, []model.PointIn2D{{Lat: 0, Long: 0}}, nil, nil, nil)
		if err != nil {
			t.Fatalf("NewStation(%s): %v", name, err)
		}
		return st
	}

	stations := []model.Station{mkStation("A"), mkStation("B"), mkStation("C"), mkStation("D")}

	forward, err := model.NewDirection("forward", []model.StationName{"A", "B", "C", "D"},
		[]time.Duration{300 * time.Second, 300 * time.Second, 300 * time.Second}, nil)
	if err != nil {
		t.Fatalf("NewDirection forward: %v", err)
	}
	backward, err := model.NewDirection("backward", []model.StationName{"D", "C", "B", "A"},
		[]time.Duration{300 * time.Second, 300 * time.Second, 300 * time.Second}, nil)
	if err != nil {
		t.Fatalf("NewDirection backward: %v", err)
	}

	line1, err := model.NewBusLine(1, "Line1", forward, backward, 100, []model.LineFrequency{1, 2})
	if err != nil {
		t.Fatalf("NewBusLine line1: %v", err)
	}

	directAD, err := model.NewDirection("AD", []model.StationName{"A", "D"}, []time.Duration{300 * time.Second}, nil)
	if err != nil {
		t.Fatalf("NewDirection AD: %v", err)
	}
	directDA, err := model.NewDirection("DA", []model.StationName{"D", "A"}, []time.Duration{300 * time.Second}, nil)
	if err != nil {
		t.Fatalf("NewDirection DA: %v", err)
	}
	line2, err := model.NewBusLine(2, "Line2", directAD, directDA, 100, []model.LineFrequency{1, 2})
	if err != nil {
		t.Fatalf("NewBusLine line2: %v", err)
	}

	scenario := model.PlanningScenario{
		BusLines: []model.BusLine{line1, line2},
		Stations: stations,
	}

	params := model.LinePlanningParameters{
		EgressTimeWeight:    1.0 / 60,
		WaitingTimeWeight:   1.0 / 900,
		InVehicleTimeWeight: 1.0 / 300,
		WalkingTimeWeight:   0,
		DwellTimeAtTerminal: 300 * time.Second,
		PeriodDuration:      3600 * time.Second,
	}

	return scenario, params
}

func TestBuild_NodeNaming(t *testing.T) {
	scenario, params := fourStopScenario(t)

	net, err := Build(scenario, params)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, name := range []string{"1$A", "4$A", "5$A", "1-forward-A", "2-AD-A"} {
		if !containsNodeName(net.AllNodeNames(), name) {
			t.Errorf("expected node %q to exist", name)
		}
	}
}

func TestBuild_InVehicleEdges(t *testing.T) {
	scenario, params := fourStopScenario(t)

	net, err := Build(scenario, params)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	idx, ok := net.GetLinkIndex("1-forward-A", "1-forward-B")
	if !ok {
		t.Fatal("expected an IN_VEHICLE link from 1-forward-A to 1-forward-B")
	}
	link := net.AllLinks()[idx]
	if link.Activity != InVehicle {
		t.Errorf("expected InVehicle activity, got %v", link.Activity)
	}
	if link.Duration != 300*time.Second {
		t.Errorf("expected 300s duration, got %v", link.Duration)
	}
	if link.LineID == nil || *link.LineID != 1 {
		t.Errorf("expected LineID 1, got %v", link.LineID)
	}
	if link.Frequency != nil {
		t.Errorf("expected nil frequency on IN_VEHICLE edge, got %v", link.Frequency)
	}
}

func TestBuild_AccessEdgeDurationAndFrequency(t *testing.T) {
	scenario, params := fourStopScenario(t)

	net, err := Build(scenario, params)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	idx, ok := net.GetLinkIndex("1$A", "1-forward-A")
	if !ok {
		t.Fatal("expected an ACCESS_LINE link from 1$A to 1-forward-A")
	}
	link := net.AllLinks()[idx]
	if link.Activity != AccessLine {
		t.Errorf("expected AccessLine activity, got %v", link.Activity)
	}
	if link.LineID == nil || link.Frequency == nil {
		t.Fatal("expected both LineID and Frequency set on ACCESS_LINE edge")
	}
	want := accessDuration(params.PeriodDuration, *link.Frequency)
	if link.Duration != want {
		t.Errorf("expected duration %v for frequency %v, got %v", want, *link.Frequency, link.Duration)
	}
}

func TestBuild_EgressEdgeFixedDuration(t *testing.T) {
	scenario, params := fourStopScenario(t)

	net, err := Build(scenario, params)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	idx, ok := net.GetLinkIndex("1-forward-A", "4$A")
	if !ok {
		t.Fatal("expected an EGRESS_LINE link from 1-forward-A to 4$A")
	}
	link := net.AllLinks()[idx]
	if link.Activity != EgressLine {
		t.Errorf("expected EgressLine activity, got %v", link.Activity)
	}
	if link.Duration != 60*time.Second {
		t.Errorf("expected 60s duration, got %v", link.Duration)
	}
	if link.LineID != nil || link.Frequency != nil {
		t.Errorf("expected both fields nil on EGRESS_LINE edge, got line=%v freq=%v", link.LineID, link.Frequency)
	}
}

func TestBuild_WalkingEdgesBothDirections(t *testing.T) {
	scenario, params := fourStopScenario(t)
	mkStation := func(name model.StationName) model.Station {
		st, _ := model.NewStation(name, []model.PointIn2D{{Lat: 0, Long: 0}}, nil, nil, nil)
		return st
	}
	scenario.WalkableDistances = []model.WalkableDistance{
		{StartingAt: mkStation("A"), EndingAt: mkStation("B"), WalkingTime: 200 * time.Second},
	}

	net, err := Build(scenario, params)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, pair := range [][2]string{{"5$A", "5$B"}, {"5$B", "5$A"}} {
		idx, ok := net.GetLinkIndex(pair[0], pair[1])
		if !ok {
			t.Fatalf("expected WALKING link %s -> %s", pair[0], pair[1])
		}
		link := net.AllLinks()[idx]
		if link.Activity != Walking {
			t.Errorf("expected Walking activity, got %v", link.Activity)
		}
		if link.Duration != 200*time.Second {
			t.Errorf("expected 200s duration, got %v", link.Duration)
		}
	}
}

func TestBuild_RejectsZeroFrequency(t *testing.T) {
	forward, _ := model.NewDirection("forward", []model.StationName{"A", "B"}, []time.Duration{60 * time.Second}, nil)
	backward, _ := model.NewDirection("backward", []model.StationName{"B", "A"}, []time.Duration{60 * time.Second}, nil)

	// Bypass the model-level constructor invariant to exercise the
	// network builder's own defensive check.
	line := model.BusLine{
		Number: 1, Name: "L1",
		DirectionA: forward, DirectionB: backward,
		Capacity:             50,
		PermittedFrequencies: []model.LineFrequency{0},
	}

	scenario := model.PlanningScenario{BusLines: []model.BusLine{line}}
	params := model.LinePlanningParameters{PeriodDuration: time.Hour}

	if _, err := Build(scenario, params); err == nil {
		t.Fatal("expected InvalidFrequency error for a zero permitted frequency")
	}
}

func TestWeights_MatchesActivity(t *testing.T) {
	scenario, params := fourStopScenario(t)

	net, err := Build(scenario, params)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	weights, err := Weights(net, params)
	if err != nil {
		t.Fatalf("Weights: %v", err)
	}
	if len(weights) != len(net.AllLinks()) {
		t.Fatalf("expected one weight per link, got %d weights for %d links", len(weights), len(net.AllLinks()))
	}

	for i, link := range net.AllLinks() {
		var wantWeight float64
		switch link.Activity {
		case InVehicle:
			wantWeight = params.InVehicleTimeWeight
		case AccessLine:
			wantWeight = params.WaitingTimeWeight
		case Walking:
			wantWeight = params.WalkingTimeWeight
		case EgressLine:
			wantWeight = params.EgressTimeWeight
		}
		want := link.Duration.Seconds() * wantWeight
		if weights[i] != want {
			t.Errorf("link %d (%v): weight = %v, want %v", i, link.Activity, weights[i], want)
		}
	}
}

func containsNodeName(names []string, target string) bool {
	for _, n := range names {
		if n == target {
			return true
		}
	}
	return false
}
