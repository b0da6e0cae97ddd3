package model

import "time"

// LinePlanningParameters carries every cost weight and timing constant
// a planning run needs; no value is implicit or environment-derived.
type LinePlanningParameters struct {
	EgressTimeWeight     float64
	WaitingTimeWeight    float64
	InVehicleTimeWeight  float64
	WalkingTimeWeight    float64
	DwellTimeAtTerminal  time.Duration
	PeriodDuration       time.Duration
	VehicleCostPerPeriod CHF

	// PermittedFrequencies is the default frequency menu; a BusLine may
	// override it with its own PermittedFrequencies field.
	PermittedFrequencies []LineFrequency

	DemandScaling               float64
	DemandAssociationRadius     Meter
	WalkingSpeedBetweenStations MeterPerSecond
	MaximalWalkingDistance      Meter

	// MaximalNumberOfVehicles is an optional fleet-size cap; nil means
	// unconstrained.
	MaximalNumberOfVehicles *int
}
