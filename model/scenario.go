package model

import (
	"sort"

	"github.com/WonJayne/ivt-line-planning-app/perr"
)

// PlanningScenario bundles everything a planning run needs: demand,
// candidate lines, walkability and the stations they reference.
type PlanningScenario struct {
	DemandMatrix       DemandMatrix
	BusLines           []BusLine
	WalkableDistances  []WalkableDistance
	Stations           []Station
}

// servedStations returns the set of station names visited by some
// line's direction A or direction B.
func (s PlanningScenario) servedStations() map[StationName]struct{} {
	served := make(map[StationName]struct{})
	for _, line := range s.BusLines {
		for _, name := range line.DirectionA.StationNames {
			served[name] = struct{}{}
		}
		for _, name := range line.DirectionB.StationNames {
			served[name] = struct{}{}
		}
	}
	return served
}

// CheckConsistency verifies that every station, demand endpoint and
// walkable-distance endpoint is served by at least one line. It is a
// pure precondition check: no mutation, no logging side effects.
func (s PlanningScenario) CheckConsistency() error {
	served := s.servedStations()

	stationNames := make([]StationName, 0, len(s.Stations))
	for _, st := range s.Stations {
		stationNames = append(stationNames, st.Name)
	}
	sort.Slice(stationNames, func(i, j int) bool { return stationNames[i] < stationNames[j] })
	for _, name := range stationNames {
		if _, ok := served[name]; !ok {
			return perr.StationsNotServed(string(name))
		}
	}

	origins := s.DemandMatrix.AllOrigins()
	sort.Slice(origins, func(i, j int) bool { return origins[i] < origins[j] })
	for _, origin := range origins {
		if _, ok := served[origin]; !ok {
			return perr.DemandNotServed(string(origin), "")
		}
		for dest := range s.DemandMatrix.StartingFrom(origin) {
			if _, ok := served[dest]; !ok {
				return perr.DemandNotServed(string(origin), string(dest))
			}
		}
	}

	for _, walk := range s.WalkableDistances {
		if _, ok := served[walk.StartingAt.Name]; !ok {
			return perr.WalkEndpointsNotServed(string(walk.StartingAt.Name), string(walk.EndingAt.Name))
		}
		if _, ok := served[walk.EndingAt.Name]; !ok {
			return perr.WalkEndpointsNotServed(string(walk.StartingAt.Name), string(walk.EndingAt.Name))
		}
	}

	return nil
}
