package model

import "time"

// RecordedTrip is an opaque pass-through record of an observed vehicle
// run, attached to a Direction by the (out of scope) measurement
// enrichment collaborator. The core never reads its fields; it only
// must survive construction and copying unchanged.
type RecordedTrip struct {
	Number        TripNr
	CirculationID CirculationId
	Start         time.Time
	End           time.Time
	StopCount     int
}
