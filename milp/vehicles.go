package milp

import (
	"math"
	"time"

	"github.com/WonJayne/ivt-line-planning-app/model"
)

// circulationTime is the round-trip time of line l: terminal dwell at
// both ends plus the trip time of both directions.
func circulationTime(l model.BusLine, params model.LinePlanningParameters) time.Duration {
	total := 2 * params.DwellTimeAtTerminal
	for _, t := range l.DirectionA.TripTimes {
		total += t
	}
	for _, t := range l.DirectionB.TripTimes {
		total += t
	}
	return total
}

// vehiclesRequired is the number of vehicles line l needs to sustain
// frequency f over one period, rounded up since a vehicle is
// indivisible.
func vehiclesRequired(l model.BusLine, f model.LineFrequency, params model.LinePlanningParameters) int {
	ratio := circulationTime(l, params).Seconds() / params.PeriodDuration.Seconds() * float64(f)
	return int(math.Ceil(ratio))
}
