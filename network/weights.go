package network

import (
	"github.com/WonJayne/ivt-line-planning-app/model"
	"github.com/WonJayne/ivt-line-planning-app/perr"
)

// Weights returns one objective coefficient per link of net, in link
// order, computed as link.Duration.Seconds() * weightFor(link.Activity).
// TRANSFER links are never produced by Build; encountering one is a
// bug, reported as KindUnweightedActivity rather than a panic.
func Weights(net *LinePlanningNetwork, params model.LinePlanningParameters) ([]float64, error) {
	links := net.AllLinks()
	weights := make([]float64, len(links))

	for i, link := range links {
		w, err := weightFor(link.Activity, params)
		if err != nil {
			return nil, err.WithContext("from", link.From).WithContext("to", link.To)
		}
		weights[i] = link.Duration.Seconds() * w
	}

	return weights, nil
}

func weightFor(a Activity, params model.LinePlanningParameters) (float64, *perr.Error) {
	switch a {
	case AccessLine:
		return params.WaitingTimeWeight, nil
	case InVehicle:
		return params.InVehicleTimeWeight, nil
	case Walking:
		return params.WalkingTimeWeight, nil
	case EgressLine:
		return params.EgressTimeWeight, nil
	default:
		return 0, perr.UnweightedActivity(a.String(), "", "")
	}
}
