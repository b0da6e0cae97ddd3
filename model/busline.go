package model

// BusLine is a candidate line: two directions sharing a number, a
// vehicle capacity, and the set of frequencies it may be operated at.
//
// direction_a and direction_b normally traverse mirrored stop
// sequences but this is not enforced here, matching the source's
// open question on the point.
type BusLine struct {
	Number               LineNr
	Name                 LineName
	DirectionA           Direction
	DirectionB           Direction
	Capacity             Capacity
	PermittedFrequencies []LineFrequency
}

// NewBusLine validates that PermittedFrequencies is non-empty and
// strictly positive.
func NewBusLine(number LineNr, name LineName, directionA, directionB Direction, capacity Capacity, permittedFrequencies []LineFrequency) (BusLine, error) {
	if len(permittedFrequencies) == 0 {
		return BusLine{}, invalidf("line %d (%s): permitted frequencies must be non-empty", number, name)
	}
	for _, f := range permittedFrequencies {
		if !f.Positive() {
			return BusLine{}, invalidf("line %d (%s): permitted frequency %d is not strictly positive", number, name, f)
		}
	}
	return BusLine{
		Number:               number,
		Name:                 name,
		DirectionA:           directionA,
		DirectionB:           directionB,
		Capacity:             capacity,
		PermittedFrequencies: append([]LineFrequency(nil), permittedFrequencies...),
	}, nil
}

// WithPermittedFrequencies returns a copy of the line restricted to the
// given frequencies, the shape the solution extractor produces for an
// active line's selected (now singleton) frequency.
func (l BusLine) WithPermittedFrequencies(frequencies ...LineFrequency) BusLine {
	l.PermittedFrequencies = append([]LineFrequency(nil), frequencies...)
	return l
}

// StationNames returns direction A's station names followed by direction
// B's. Duplicates are not removed: a station visited by both directions
// appears twice.
func (l BusLine) StationNames() []StationName {
	out := make([]StationName, 0, len(l.DirectionA.StationNames)+len(l.DirectionB.StationNames))
	out = append(out, l.DirectionA.StationNames...)
	out = append(out, l.DirectionB.StationNames...)
	return out
}
