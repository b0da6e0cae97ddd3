package milp

import (
	"math"
	"sort"

	"github.com/WonJayne/ivt-line-planning-app/model"
	"github.com/WonJayne/ivt-line-planning-app/network"
)

// Relation is the comparison operator of a linear Constraint.
type Relation int

const (
	// LE is "less than or equal to".
	LE Relation = iota
	// EQ is "equal to".
	EQ
)

// Constraint is one row of the assembled linear model: a sparse
// variable-index -> coefficient map, a relation, and a right-hand side.
type Constraint struct {
	Coeffs   map[int]float64
	Relation Relation
	RHS      float64
	Label    string
}

// Problem is the solver-agnostic MILP emitted by Assemble: dense
// variable registries, a flat objective, and a constraint list. Nothing
// here names a concrete solver; Solve (the Solver interface) is the
// only boundary to one.
type Problem struct {
	Net      *network.LinePlanningNetwork
	Scenario model.PlanningScenario
	Params   model.LinePlanningParameters
	Weights  []float64

	// Origins is the deterministic, sorted list of demand origins the
	// flow variables range over.
	Origins []model.StationName

	LineVar map[LineVarKey]int
	FlowVar map[FlowVarKey]int
	NumVars int

	Objective   []float64
	Constraints []Constraint
}

// Assemble builds the MILP for scenario over net with per-link weights
// (as returned by network.Weights), under params.
func Assemble(scenario model.PlanningScenario, net *network.LinePlanningNetwork, weights []float64, params model.LinePlanningParameters) (*Problem, error) {
	origins := scenario.DemandMatrix.AllOrigins()
	sort.Slice(origins, func(i, j int) bool { return origins[i] < origins[j] })

	p := &Problem{
		Net:      net,
		Scenario: scenario,
		Params:   params,
		Weights:  weights,
		Origins:  origins,
		LineVar:  make(map[LineVarKey]int),
		FlowVar:  make(map[FlowVarKey]int),
	}

	p.registerVariables()
	p.buildObjective()
	p.buildConstraints()

	return p, nil
}

func (p *Problem) registerVariables() {
	for _, line := range p.Scenario.BusLines {
		for _, f := range line.PermittedFrequencies {
			key := LineVarKey{Line: line.Number, Frequency: f}
			p.LineVar[key] = p.NumVars
			p.NumVars++
		}
	}

	links := p.Net.AllLinks()
	for _, origin := range p.Origins {
		for edgeIdx := range links {
			key := FlowVarKey{Origin: origin, EdgeIndex: edgeIdx}
			p.FlowVar[key] = p.NumVars
			p.NumVars++
		}
	}
}

func (p *Problem) buildObjective() {
	p.Objective = make([]float64, p.NumVars)

	for edgeIdx, w := range p.Weights {
		for _, origin := range p.Origins {
			varIdx := p.FlowVar[FlowVarKey{Origin: origin, EdgeIndex: edgeIdx}]
			p.Objective[varIdx] += w
		}
	}

	for _, line := range p.Scenario.BusLines {
		for _, f := range line.PermittedFrequencies {
			varIdx := p.LineVar[LineVarKey{Line: line.Number, Frequency: f}]
			vehicles := vehiclesRequired(line, f, p.Params)
			p.Objective[varIdx] += float64(vehicles) * float64(p.Params.VehicleCostPerPeriod)
		}
	}
}

func (p *Problem) buildConstraints() {
	p.addSingleConfigConstraints()
	p.addFlowConservationConstraints()
	p.addInVehicleCapacityConstraints()
	p.addAccessCapacityConstraints()
	p.addFleetCapConstraint()
}

// addSingleConfigConstraints emits, per line, sum_f y[l,f] <= 1.
func (p *Problem) addSingleConfigConstraints() {
	for _, line := range p.Scenario.BusLines {
		coeffs := make(map[int]float64, len(line.PermittedFrequencies))
		for _, f := range line.PermittedFrequencies {
			coeffs[p.LineVar[LineVarKey{Line: line.Number, Frequency: f}]] = 1
		}
		p.Constraints = append(p.Constraints, Constraint{
			Coeffs: coeffs, Relation: LE, RHS: 1,
			Label: "single_config",
		})
	}
}

// addFlowConservationConstraints emits, per origin and node, the
// inflow-minus-outflow-equals-net-demand equation.
func (p *Problem) addFlowConservationConstraints() {
	for _, node := range p.Net.AllNodes() {
		for _, origin := range p.Origins {
			coeffs := make(map[int]float64)
			for _, edgeIdx := range p.Net.IncomingLinkIndices(node.Name) {
				varIdx := p.FlowVar[FlowVarKey{Origin: origin, EdgeIndex: edgeIdx}]
				coeffs[varIdx] += 1
			}
			for _, edgeIdx := range p.Net.OutgoingLinkIndices(node.Name) {
				varIdx := p.FlowVar[FlowVarKey{Origin: origin, EdgeIndex: edgeIdx}]
				coeffs[varIdx] -= 1
			}

			rhs := netDemand(p.Scenario, origin, node.Name)

			p.Constraints = append(p.Constraints, Constraint{
				Coeffs: coeffs, Relation: EQ, RHS: rhs,
				Label: "flow_conservation",
			})
		}
	}
}

// netDemand computes the right-hand side of the flow conservation
// equation at node for origin: +demand at an egress node for some
// destination, -total outbound demand at the origin's own access node,
// 0 elsewhere. The positive terms are driven off the demand matrix's
// own destinations for origin, not off scenario.Stations: C2 only
// requires every Station to be served, not every demand destination to
// be listed in scenario.Stations, so keying off scenario.Stations would
// silently drop a delivery term for a served-but-unlisted destination.
// Values are rounded to 2 decimals, preserving the historical
// noise-suppression convention.
func netDemand(scenario model.PlanningScenario, origin model.StationName, nodeName string) float64 {
	if nodeName == network.AccessNodeName(origin) {
		total := 0.0
		for _, pax := range scenario.DemandMatrix.StartingFrom(origin) {
			total += pax
		}
		return round2(-total)
	}

	for dest, pax := range scenario.DemandMatrix.StartingFrom(origin) {
		if nodeName == network.EgressNodeName(dest) {
			return round2(pax)
		}
	}

	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// addInVehicleCapacityConstraints emits, per IN_VEHICLE edge, the
// coupling between boarded flow and selected frequency's capacity.
func (p *Problem) addInVehicleCapacityConstraints() {
	lineByNr := make(map[model.LineNr]model.BusLine, len(p.Scenario.BusLines))
	for _, line := range p.Scenario.BusLines {
		lineByNr[line.Number] = line
	}

	for edgeIdx, link := range p.Net.AllLinks() {
		if link.Activity != network.InVehicle || link.LineID == nil {
			continue
		}
		line, ok := lineByNr[*link.LineID]
		if !ok {
			continue
		}

		coeffs := make(map[int]float64)
		for _, origin := range p.Origins {
			coeffs[p.FlowVar[FlowVarKey{Origin: origin, EdgeIndex: edgeIdx}]] = 1
		}
		for _, f := range line.PermittedFrequencies {
			varIdx := p.LineVar[LineVarKey{Line: line.Number, Frequency: f}]
			coeffs[varIdx] -= float64(line.Capacity) * float64(f)
		}

		p.Constraints = append(p.Constraints, Constraint{
			Coeffs: coeffs, Relation: LE, RHS: 0,
			Label: "in_vehicle_capacity",
		})
	}
}

// addAccessCapacityConstraints emits, per ACCESS_LINE edge, the
// coupling between boarding flow at one stop and the selected
// (line, frequency) pair's per-period supply.
func (p *Problem) addAccessCapacityConstraints() {
	lineByNr := make(map[model.LineNr]model.BusLine, len(p.Scenario.BusLines))
	for _, line := range p.Scenario.BusLines {
		lineByNr[line.Number] = line
	}

	for edgeIdx, link := range p.Net.AllLinks() {
		if link.Activity != network.AccessLine || link.LineID == nil || link.Frequency == nil {
			continue
		}
		line, ok := lineByNr[*link.LineID]
		if !ok {
			continue
		}

		coeffs := make(map[int]float64)
		for _, origin := range p.Origins {
			coeffs[p.FlowVar[FlowVarKey{Origin: origin, EdgeIndex: edgeIdx}]] = 1
		}
		varIdx := p.LineVar[LineVarKey{Line: line.Number, Frequency: *link.Frequency}]
		coeffs[varIdx] -= float64(line.Capacity) * float64(*link.Frequency)

		p.Constraints = append(p.Constraints, Constraint{
			Coeffs: coeffs, Relation: LE, RHS: 0,
			Label: "access_capacity",
		})
	}
}

// addFleetCapConstraint emits the optional total-vehicle cap, only if
// params.MaximalNumberOfVehicles is set.
func (p *Problem) addFleetCapConstraint() {
	if p.Params.MaximalNumberOfVehicles == nil {
		return
	}

	coeffs := make(map[int]float64)
	for _, line := range p.Scenario.BusLines {
		for _, f := range line.PermittedFrequencies {
			varIdx := p.LineVar[LineVarKey{Line: line.Number, Frequency: f}]
			coeffs[varIdx] += float64(vehiclesRequired(line, f, p.Params))
		}
	}

	p.Constraints = append(p.Constraints, Constraint{
		Coeffs: coeffs, Relation: LE, RHS: float64(*p.Params.MaximalNumberOfVehicles),
		Label: "fleet_cap",
	})
}
