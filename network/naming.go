package network

import (
	"fmt"

	"github.com/WonJayne/ivt-line-planning-app/model"
)

// AccessNodeName returns the deterministic name of the access node for
// station s: waiting side, where passengers enter the system.
func AccessNodeName(s model.StationName) string {
	return "1$" + string(s)
}

// EgressNodeName returns the deterministic name of the egress node for
// station s: alighting side, where passengers leave the system.
func EgressNodeName(s model.StationName) string {
	return "4$" + string(s)
}

// TransferNodeName returns the deterministic name of the transfer node
// for station s, shared across every line passing through it so
// transfers and walking share a single attachment point.
func TransferNodeName(s model.StationName) string {
	return "5$" + string(s)
}

// ServiceNodeName returns the deterministic name of the on-vehicle node
// for line l, direction d, station s.
func ServiceNodeName(l model.LineNr, d model.DirectionName, s model.StationName) string {
	return fmt.Sprintf("%d-%s-%s", l, d, s)
}
