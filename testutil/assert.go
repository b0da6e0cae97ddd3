package testutil

import (
	"errors"
	"testing"

	"github.com/WonJayne/ivt-line-planning-app/model"
	"github.com/WonJayne/ivt-line-planning-app/solution"
)

// AssertSolution provides convenient, chainable assertions over a
// solution.Result.
type AssertSolution struct {
	t      *testing.T
	result solution.Result
}

// NewAssertSolution creates a new assertion helper.
func NewAssertSolution(t *testing.T, result solution.Result) *AssertSolution {
	t.Helper()
	return &AssertSolution{t: t, result: result}
}

// IsSuccess asserts that the result carries a usable solution.
func (a *AssertSolution) IsSuccess() *AssertSolution {
	a.t.Helper()
	if !a.result.Success() {
		a.t.Errorf("expected a successful solution, got error: %v", a.result.Err())
	}
	return a
}

// IsFailed asserts that the result is a failure.
func (a *AssertSolution) IsFailed() *AssertSolution {
	a.t.Helper()
	if a.result.Success() {
		a.t.Error("expected a failed solution, but it succeeded")
	}
	return a
}

// HasActiveLine asserts that lineNr appears among the active lines.
func (a *AssertSolution) HasActiveLine(lineNr model.LineNr) *AssertSolution {
	a.t.Helper()
	sol, err := a.result.Solution()
	if err != nil {
		a.t.Errorf("expected a solution to inspect active lines, got error: %v", err)
		return a
	}
	for _, l := range sol.ActiveLines {
		if l.Number == lineNr {
			return a
		}
	}
	a.t.Errorf("expected line %d to be active, active lines: %v", lineNr, sol.ActiveLines)
	return a
}

// HasActiveLineWithFrequency asserts that lineNr is active at exactly
// frequency f.
func (a *AssertSolution) HasActiveLineWithFrequency(lineNr model.LineNr, f model.LineFrequency) *AssertSolution {
	a.t.Helper()
	sol, err := a.result.Solution()
	if err != nil {
		a.t.Errorf("expected a solution to inspect active lines, got error: %v", err)
		return a
	}
	for _, l := range sol.ActiveLines {
		if l.Number != lineNr {
			continue
		}
		for _, got := range l.PermittedFrequencies {
			if got == f {
				return a
			}
		}
		a.t.Errorf("line %d active at %v, want frequency %d", lineNr, l.PermittedFrequencies, f)
		return a
	}
	a.t.Errorf("expected line %d to be active", lineNr)
	return a
}

// HasUsedVehicles asserts the solution's total vehicle count.
func (a *AssertSolution) HasUsedVehicles(want int) *AssertSolution {
	a.t.Helper()
	sol, err := a.result.Solution()
	if err != nil {
		a.t.Errorf("expected a solution to inspect used vehicles, got error: %v", err)
		return a
	}
	if sol.UsedVehicles != want {
		a.t.Errorf("expected %d used vehicles, got %d", want, sol.UsedVehicles)
	}
	return a
}

// HasErrorKind asserts that a failed result's cause matches target.
func (a *AssertSolution) HasErrorKind(target error) *AssertSolution {
	a.t.Helper()
	if a.result.Success() {
		a.t.Error("expected a failed solution to check its error kind")
		return a
	}
	if !errors.Is(a.result.Err(), target) {
		a.t.Errorf("expected error matching %v, got %v", target, a.result.Err())
	}
	return a
}
