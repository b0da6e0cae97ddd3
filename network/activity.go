package network

// Activity classifies an LPN edge by the kind of passenger action it
// represents. It is a closed enumeration: Weights gives every activity
// the builder produces a weight, and reports any other case (Transfer)
// as KindUnweightedActivity.
type Activity int

const (
	// InVehicle is riding between two consecutive stops of a line.
	InVehicle Activity = iota
	// Walking is moving directly between two stations' transfer nodes.
	Walking
	// AccessLine is boarding a line from an access or transfer node.
	AccessLine
	// EgressLine is alighting from a line to an egress or transfer node.
	EgressLine
	// Transfer is unused by the builder: transfers are realised through
	// the EgressLine -> AccessLine path via a shared transfer node. The
	// case is kept so Activity remains a complete enumeration of the
	// domain concept, per spec's note that it may be retained for
	// future use.
	Transfer
)

// String returns a stable lowercase name for the activity, used in
// diagnostics and the summary.
func (a Activity) String() string {
	switch a {
	case InVehicle:
		return "in_vehicle"
	case Walking:
		return "walking"
	case AccessLine:
		return "access_line"
	case EgressLine:
		return "egress_line"
	case Transfer:
		return "transfer"
	default:
		return "unknown"
	}
}
