package model

import "time"

// Direction is one ordered traversal of a line's stop sequence.
type Direction struct {
	Name          DirectionName
	StationNames  []StationName
	TripTimes     []time.Duration
	RecordedTrips []RecordedTrip
}

// NewDirection validates |TripTimes| = |StationNames| - 1, or both are
// empty, per spec invariant 1.
func NewDirection(name DirectionName, stationNames []StationName, tripTimes []time.Duration, recordedTrips []RecordedTrip) (Direction, error) {
	wantTripTimes := 0
	if len(stationNames) > 0 {
		wantTripTimes = len(stationNames) - 1
	}
	if len(tripTimes) != wantTripTimes {
		return Direction{}, invalidf(
			"direction %q: got %d trip times, want %d for %d stations",
			name, len(tripTimes), wantTripTimes, len(stationNames),
		)
	}
	return Direction{
		Name:          name,
		StationNames:  append([]StationName(nil), stationNames...),
		TripTimes:     append([]time.Duration(nil), tripTimes...),
		RecordedTrips: append([]RecordedTrip(nil), recordedTrips...),
	}, nil
}

// StationPair is a consecutive pair of stations along a direction.
type StationPair struct {
	From StationName
	To   StationName
}

// StationsAsPairs returns the consecutive station pairs of the
// direction, in traversal order.
func (d Direction) StationsAsPairs() []StationPair {
	if len(d.StationNames) < 2 {
		return nil
	}
	pairs := make([]StationPair, 0, len(d.StationNames)-1)
	for i := 0; i < len(d.StationNames)-1; i++ {
		pairs = append(pairs, StationPair{From: d.StationNames[i], To: d.StationNames[i+1]})
	}
	return pairs
}
