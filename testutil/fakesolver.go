package testutil

import (
	"context"

	"github.com/WonJayne/ivt-line-planning-app/milp"
)

// FixedSolver is a Solver that always returns a pre-computed Outcome,
// regardless of the Problem it is asked to solve. It exists so package
// tests can exercise milp.Extract (and anything built on top of it)
// without depending on a real MILP backend.
type FixedSolver struct {
	Outcome milp.Outcome
	Err     error
}

// Solve returns s.Outcome and s.Err, ignoring p.
func (s FixedSolver) Solve(ctx context.Context, p *milp.Problem) (milp.Outcome, error) {
	return s.Outcome, s.Err
}

// InfeasibleSolver is a Solver that always reports infeasibility.
type InfeasibleSolver struct{}

// Solve returns a StatusInfeasible Outcome with no primal values.
func (InfeasibleSolver) Solve(ctx context.Context, p *milp.Problem) (milp.Outcome, error) {
	return milp.Outcome{Status: milp.StatusInfeasible}, nil
}

// ZeroSolver is a Solver that reports StatusOptimal with every
// variable held at zero, useful as a baseline fixture that always
// satisfies flow conservation only when demand is zero.
type ZeroSolver struct{}

// Solve returns an all-zero primal vector sized to p.NumVars.
func (ZeroSolver) Solve(ctx context.Context, p *milp.Problem) (milp.Outcome, error) {
	return milp.Outcome{Status: milp.StatusOptimal, Primal: make([]float64, p.NumVars)}, nil
}
