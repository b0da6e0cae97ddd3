// Package solution holds the value types produced by the MILP solution
// extractor: the line planning solution itself and the pass/fail result
// wrapper callers branch on.
package solution

import (
	"time"

	"github.com/WonJayne/ivt-line-planning-app/model"
	"github.com/WonJayne/ivt-line-planning-app/network"
	"github.com/WonJayne/ivt-line-planning-app/perr"
)

// PassengersPerLink is the passenger load on one in-vehicle segment.
type PassengersPerLink struct {
	Start model.StationName
	End   model.StationName
	Pax   float64
}

// Solution is the extracted outcome of a successfully solved line
// planning problem.
type Solution struct {
	// WeightedTravelTime is a diagnostic aggregate per activity,
	// expressed as a Duration of weighted seconds, not a physical time.
	WeightedTravelTime map[network.Activity]time.Duration
	UsedVehicles       int
	ActiveLines        []model.BusLine
	// PassengersPerLink is indexed by line number, then direction name.
	PassengersPerLink map[model.LineNr]map[model.DirectionName][]PassengersPerLink
}

// Result wraps a Solution with pass/fail semantics so callers can
// branch without exception flow, mirroring spec.md §7's policy that
// solver outcomes are reified rather than propagated as errors.
type Result struct {
	solution *Solution
	err      error
}

// FromSuccess wraps a Solution as a successful Result.
func FromSuccess(sol Solution) Result {
	return Result{solution: &sol}
}

// FromError wraps a failure cause (SolverInfeasible, SolverFailed, …)
// as a failed Result.
func FromError(err error) Result {
	return Result{err: err}
}

// Success reports whether the result carries a usable Solution.
func (r Result) Success() bool {
	return r.err == nil
}

// Failed reports the negation of Success.
func (r Result) Failed() bool {
	return !r.Success()
}

// Solution returns the extracted solution, or perr.SolutionMissing if
// the result is a failure.
func (r Result) Solution() (Solution, error) {
	if r.solution == nil {
		return Solution{}, perr.SolutionMissing()
	}
	return *r.solution, nil
}

// Err returns the failure cause, nil on a successful result.
func (r Result) Err() error {
	return r.err
}
