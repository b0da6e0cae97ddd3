package model

// Station is a physical stop location, possibly visited by several
// lines. Points holds one or more coordinate samples for the stop; the
// center position is their componentwise mean.
type Station struct {
	Name          StationName
	Points        []PointIn2D
	Lines         []LineNr
	DistrictPoints []DistrictPoint
	DistrictNames  []string

	centerPosition      PointIn2D
	centerPositionValid bool
}

// NewStation constructs a Station, failing if no coordinate points are
// supplied.
func NewStation(name StationName, points []PointIn2D, lines []LineNr, districtPoints []DistrictPoint, districtNames []string) (Station, error) {
	if len(points) == 0 {
		return Station{}, invalidf("station %q must have at least one point", name)
	}
	return Station{
		Name:           name,
		Points:         append([]PointIn2D(nil), points...),
		Lines:          append([]LineNr(nil), lines...),
		DistrictPoints: append([]DistrictPoint(nil), districtPoints...),
		DistrictNames:  append([]string(nil), districtNames...),
	}, nil
}

// CenterPosition returns the componentwise mean of Points, computed once
// and cached on the receiver's first call.
func (s *Station) CenterPosition() PointIn2D {
	if !s.centerPositionValid {
		s.centerPosition = meanPoint(s.Points)
		s.centerPositionValid = true
	}
	return s.centerPosition
}
