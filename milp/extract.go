package milp

import (
	"time"

	"github.com/WonJayne/ivt-line-planning-app/model"
	"github.com/WonJayne/ivt-line-planning-app/network"
	"github.com/WonJayne/ivt-line-planning-app/perr"
	"github.com/WonJayne/ivt-line-planning-app/solution"
)

// Extract converts a solver Outcome for p into a solution.Result. Any
// status other than StatusOptimal produces a failed result; no other
// status is considered success, per spec.md §4.5.
func Extract(p *Problem, outcome Outcome) (solution.Result, error) {
	switch outcome.Status {
	case StatusInfeasible:
		return solution.FromError(perr.SolverInfeasible()), nil
	case StatusOptimal:
		// fall through to extraction below
	default:
		return solution.FromError(perr.SolverFailed(nil)), nil
	}

	activeLines, usedVehicles := extractActiveLines(p, outcome)
	weightedTravelTime := extractWeightedTravelTime(p, outcome)
	passengersPerLink := extractPassengersPerLink(p, outcome, activeLines)

	return solution.FromSuccess(solution.Solution{
		WeightedTravelTime: weightedTravelTime,
		UsedVehicles:       usedVehicles,
		ActiveLines:        activeLines,
		PassengersPerLink:  passengersPerLink,
	}), nil
}

// extractActiveLines returns, in scenario line order, every line with a
// selected frequency (y[l,f] > 0.5), restricted to that frequency, plus
// the total vehicle count across them. Lookup is always by line
// number, never by slice position.
func extractActiveLines(p *Problem, outcome Outcome) ([]model.BusLine, int) {
	var active []model.BusLine
	usedVehicles := 0

	for _, line := range p.Scenario.BusLines {
		for _, f := range line.PermittedFrequencies {
			varIdx, ok := p.LineVar[LineVarKey{Line: line.Number, Frequency: f}]
			if !ok {
				continue
			}
			if outcome.Primal[varIdx] > 0.5 {
				active = append(active, line.WithPermittedFrequencies(f))
				usedVehicles += vehiclesRequired(line, f, p.Params)
				break
			}
		}
	}

	return active, usedVehicles
}

func extractWeightedTravelTime(p *Problem, outcome Outcome) map[network.Activity]time.Duration {
	totals := make(map[network.Activity]float64)

	links := p.Net.AllLinks()
	for edgeIdx, link := range links {
		w := p.Weights[edgeIdx]
		if w == 0 {
			continue
		}
		var flow float64
		for _, origin := range p.Origins {
			varIdx := p.FlowVar[FlowVarKey{Origin: origin, EdgeIndex: edgeIdx}]
			flow += outcome.Primal[varIdx]
		}
		totals[link.Activity] += w * flow
	}

	out := make(map[network.Activity]time.Duration, len(totals))
	for activity, seconds := range totals {
		out[activity] = time.Duration(seconds * float64(time.Second))
	}
	return out
}

func extractPassengersPerLink(p *Problem, outcome Outcome, activeLines []model.BusLine) map[model.LineNr]map[model.DirectionName][]solution.PassengersPerLink {
	result := make(map[model.LineNr]map[model.DirectionName][]solution.PassengersPerLink, len(activeLines))

	for _, line := range activeLines {
		perDirection := make(map[model.DirectionName][]solution.PassengersPerLink, 2)

		for _, dir := range []model.Direction{line.DirectionA, line.DirectionB} {
			var links []solution.PassengersPerLink
			for _, pair := range dir.StationsAsPairs() {
				fromNode := network.ServiceNodeName(line.Number, dir.Name, pair.From)
				toNode := network.ServiceNodeName(line.Number, dir.Name, pair.To)
				edgeIdx, ok := p.Net.GetLinkIndex(fromNode, toNode)
				if !ok {
					continue
				}
				var flow float64
				for _, origin := range p.Origins {
					varIdx := p.FlowVar[FlowVarKey{Origin: origin, EdgeIndex: edgeIdx}]
					flow += outcome.Primal[varIdx]
				}
				links = append(links, solution.PassengersPerLink{Start: pair.From, End: pair.To, Pax: flow})
			}
			perDirection[dir.Name] = links
		}

		result[line.Number] = perDirection
	}

	return result
}
