package model

// PointIn2D is a WGS84 coordinate pair.
type PointIn2D struct {
	Lat  float64
	Long float64
}

// DistrictPoint pairs a district boundary point with its district name,
// carried for round-tripping to the (out of scope) plotting collaborator.
type DistrictPoint struct {
	Point        PointIn2D
	DistrictName string
}

// meanPoint returns the componentwise mean of points. Callers must
// ensure points is non-empty.
func meanPoint(points []PointIn2D) PointIn2D {
	var sumLat, sumLong float64
	for _, p := range points {
		sumLat += p.Lat
		sumLong += p.Long
	}
	n := float64(len(points))
	return PointIn2D{Lat: sumLat / n, Long: sumLong / n}
}
