package model

import "time"

// WalkableDistance records that two stations are close enough to walk
// between directly, produced externally whenever the center-to-center
// geodesic distance is below maximal_walking_distance.
type WalkableDistance struct {
	StartingAt Station
	EndingAt   Station
	WalkingTime time.Duration
}
