// Package perr defines the typed error taxonomy used across the line
// planning core, in place of bare fmt.Errorf strings.
package perr

import (
	"fmt"
	"strings"
)

// Kind classifies the failure mode of an Error so callers can branch on
// it with errors.Is/errors.As instead of matching message text.
type Kind int

const (
	// KindStationsNotServed indicates a scenario Station that no line's
	// stop sequence visits.
	KindStationsNotServed Kind = iota
	// KindDemandNotServed indicates a demand matrix origin or destination
	// that no line's stop sequence visits.
	KindDemandNotServed
	// KindWalkEndpointsNotServed indicates a WalkableDistance references a
	// station that no line visits.
	KindWalkEndpointsNotServed
	// KindInvalidGraph indicates the underlying graph violates an
	// invariant the network builder relies on (e.g. not directed).
	KindInvalidGraph
	// KindInvalidFrequency indicates a line's permitted frequencies
	// include a value that is not strictly positive.
	KindInvalidFrequency
	// KindUnweightedActivity indicates an activity edge is missing a cost
	// weight required before assembly.
	KindUnweightedActivity
	// KindSolverInfeasible indicates the solver returned INFEASIBLE.
	KindSolverInfeasible
	// KindSolverFailed indicates the solver returned a status other than
	// OPTIMAL or INFEASIBLE, or returned a transport-level error.
	KindSolverFailed
	// KindSolutionMissing indicates a Result was read for its solution
	// when Success() is false.
	KindSolutionMissing
)

// String returns a human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case KindStationsNotServed:
		return "stations_not_served"
	case KindDemandNotServed:
		return "demand_not_served"
	case KindWalkEndpointsNotServed:
		return "walk_endpoints_not_served"
	case KindInvalidGraph:
		return "invalid_graph"
	case KindInvalidFrequency:
		return "invalid_frequency"
	case KindUnweightedActivity:
		return "unweighted_activity"
	case KindSolverInfeasible:
		return "solver_infeasible"
	case KindSolverFailed:
		return "solver_failed"
	case KindSolutionMissing:
		return "solution_missing"
	default:
		return "unknown"
	}
}

// Error is the structured error type of the line planning core's
// consistency, network, weighting and solver failures. The model
// constructors and the config package return plain fmt errors instead.
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// Message is the primary, human-readable description.
	Message string
	// Context carries structured detail (station names, line numbers,
	// edge indices) useful for diagnosis and logging.
	Context map[string]any
	// Suggestions offers actionable next steps.
	Suggestions []string
	// Cause is the underlying error, if any.
	Cause error
}

// New creates an Error of the given Kind.
func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Context: make(map[string]any),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("[%s]", e.Kind))
	parts = append(parts, e.Message)

	if len(e.Context) > 0 {
		var kv []string
		for k, v := range e.Context {
			kv = append(kv, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(kv, ", ")))
	}

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("caused by: %s", e.Cause.Error()))
	}

	return strings.Join(parts, " ")
}

// Unwrap allows errors.Is/errors.As to traverse into Cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same Kind, letting
// errors.Is(err, perr.New(perr.KindSolverInfeasible, "")) match.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// GetFormattedMessage returns a multi-line, operator-friendly rendering
// with context and suggestions spelled out.
func (e *Error) GetFormattedMessage() string {
	var b strings.Builder

	fmt.Fprintf(&b, "❌ %s: %s\n", e.Kind, e.Message)

	if len(e.Context) > 0 {
		b.WriteString("🔧 Context:\n")
		for k, v := range e.Context {
			fmt.Fprintf(&b, "   • %s: %v\n", k, v)
		}
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("💡 Suggestions:\n")
		for i, s := range e.Suggestions {
			fmt.Fprintf(&b, "   %d. %s\n", i+1, s)
		}
	}

	if e.Cause != nil {
		fmt.Fprintf(&b, "⚠️  Underlying cause: %s\n", e.Cause.Error())
	}

	return b.String()
}

// WithContext adds a structured context key/value pair.
func (e *Error) WithContext(key string, value any) *Error {
	e.Context[key] = value
	return e
}

// WithSuggestion appends one actionable suggestion.
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions appends several actionable suggestions.
func (e *Error) WithSuggestions(suggestions ...string) *Error {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithCause attaches the underlying error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// StationsNotServed reports a station absent from every line's stop sequence.
func StationsNotServed(stationName string) *Error {
	return New(KindStationsNotServed, fmt.Sprintf("station %q is not served by any line", stationName)).
		WithContext("station", stationName).
		WithSuggestions(
			"add a line whose stop sequence includes this station",
			"remove the station from the scenario if it is genuinely unserved",
		)
}

// DemandNotServed reports a demand entry whose origin or destination the
// network cannot connect.
func DemandNotServed(origin, destination string) *Error {
	return New(KindDemandNotServed, fmt.Sprintf("demand %q -> %q cannot be routed by the network", origin, destination)).
		WithContext("origin", origin).
		WithContext("destination", destination)
}

// WalkEndpointsNotServed reports a WalkableDistance naming a station with
// no line node to attach to.
func WalkEndpointsNotServed(stationA, stationB string) *Error {
	return New(KindWalkEndpointsNotServed, fmt.Sprintf("walkable distance %q <-> %q references an unserved station", stationA, stationB)).
		WithContext("station_a", stationA).
		WithContext("station_b", stationB)
}

// InvalidGraph reports a violated graph-level invariant.
func InvalidGraph(detail string) *Error {
	return New(KindInvalidGraph, detail)
}

// InvalidFrequency reports a line frequency that is not strictly
// positive.
func InvalidFrequency(lineNumber int, frequency int) *Error {
	return New(KindInvalidFrequency, fmt.Sprintf("frequency %d is not permitted for line %d", frequency, lineNumber)).
		WithContext("line_number", lineNumber).
		WithContext("frequency", frequency)
}

// UnweightedActivity reports a link missing its cost weight.
func UnweightedActivity(activity string, from, to string) *Error {
	return New(KindUnweightedActivity, fmt.Sprintf("link %s -> %s of activity %s has no assigned weight", from, to, activity)).
		WithContext("activity", activity).
		WithContext("from", from).
		WithContext("to", to)
}

// SolverInfeasible reports that the solver proved no feasible solution
// exists for the assembled model.
func SolverInfeasible() *Error {
	return New(KindSolverInfeasible, "solver reported the model is infeasible").
		WithSuggestions(
			"relax capacity constraints or the fleet size cap",
			"verify every demand pair is reachable in the network",
		)
}

// SolverFailed reports a solver-side failure unrelated to infeasibility.
func SolverFailed(cause error) *Error {
	return New(KindSolverFailed, "solver failed to produce a usable outcome").WithCause(cause)
}

// SolutionMissing reports access to Result.Solution() on a failed result.
func SolutionMissing() *Error {
	return New(KindSolutionMissing, "no solution is available on a failed result")
}
