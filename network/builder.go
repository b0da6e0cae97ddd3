package network

import (
	"time"

	"github.com/WonJayne/ivt-line-planning-app/model"
	"github.com/WonJayne/ivt-line-planning-app/perr"
)

const (
	// egressDuration is the fixed alighting time charged on every
	// EGRESS_LINE edge.
	egressDuration = 60 * time.Second
)

// Build constructs the Line Planning Network for scenario under the
// given planning parameters. Node and edge ordering is deterministic:
// bus line input order, then per-direction station order, then
// frequency order for access edges, then walkable distances in input
// order, matching spec.md §5's ordering guarantee.
func Build(scenario model.PlanningScenario, params model.LinePlanningParameters) (*LinePlanningNetwork, error) {
	net, err := newLinePlanningNetwork()
	if err != nil {
		return nil, err
	}

	for _, line := range scenario.BusLines {
		if err := buildLine(net, line, params); err != nil {
			return nil, err
		}
	}

	for _, walk := range scenario.WalkableDistances {
		if err := buildWalk(net, walk); err != nil {
			return nil, err
		}
	}

	return net, nil
}

func buildLine(net *LinePlanningNetwork, line model.BusLine, params model.LinePlanningParameters) error {
	frequencies := line.PermittedFrequencies
	if len(frequencies) == 0 {
		frequencies = params.PermittedFrequencies
	}
	for _, f := range frequencies {
		if !f.Positive() {
			return perr.InvalidFrequency(int(line.Number), int(f))
		}
	}

	directions := []struct {
		name model.DirectionName
		dir  model.Direction
	}{
		{line.DirectionA.Name, line.DirectionA},
		{line.DirectionB.Name, line.DirectionB},
	}

	for _, d := range directions {
		if err := buildDirection(net, line, d.name, d.dir, frequencies, params); err != nil {
			return err
		}
	}

	return nil
}

func buildDirection(net *LinePlanningNetwork, line model.BusLine, directionName model.DirectionName, dir model.Direction, frequencies []model.LineFrequency, params model.LinePlanningParameters) error {
	lineNr := line.Number
	dirName := directionName

	// Service nodes, one per station visited by this direction.
	serviceNodeNames := make([]string, len(dir.StationNames))
	for i, station := range dir.StationNames {
		name := ServiceNodeName(lineNr, dirName, station)
		if _, err := net.addNode(LPNNode{Name: name, LineID: &lineNr, Direction: &dirName}); err != nil {
			return err
		}
		serviceNodeNames[i] = name
	}

	// IN_VEHICLE edges between consecutive service nodes.
	for i, tripTime := range dir.TripTimes {
		link := LPNLink{
			From:     serviceNodeNames[i],
			To:       serviceNodeNames[i+1],
			Activity: InVehicle,
			Duration: tripTime,
			LineID:   &lineNr,
		}
		if err := net.addLink(link); err != nil {
			return err
		}
	}

	// Access/egress/transfer nodes and their edges, per station of this
	// direction.
	for i, station := range dir.StationNames {
		accessName := AccessNodeName(station)
		egressName := EgressNodeName(station)
		transferName := TransferNodeName(station)
		serviceName := serviceNodeNames[i]

		if _, err := net.addNode(LPNNode{Name: accessName}); err != nil {
			return err
		}
		if _, err := net.addNode(LPNNode{Name: egressName}); err != nil {
			return err
		}
		if _, err := net.addNode(LPNNode{Name: transferName}); err != nil {
			return err
		}

		for _, f := range frequencies {
			freq := f
			duration := accessDuration(params.PeriodDuration, f)

			if err := net.addLink(LPNLink{
				From: accessName, To: serviceName,
				Activity: AccessLine, Duration: duration,
				LineID: &lineNr, Frequency: &freq,
			}); err != nil {
				return err
			}
			if err := net.addLink(LPNLink{
				From: transferName, To: serviceName,
				Activity: AccessLine, Duration: duration,
				LineID: &lineNr, Frequency: &freq,
			}); err != nil {
				return err
			}
		}

		if err := net.addLink(LPNLink{
			From: serviceName, To: egressName,
			Activity: EgressLine, Duration: egressDuration,
		}); err != nil {
			return err
		}
		if err := net.addLink(LPNLink{
			From: serviceName, To: transferName,
			Activity: EgressLine, Duration: egressDuration,
		}); err != nil {
			return err
		}
	}

	return nil
}

func buildWalk(net *LinePlanningNetwork, walk model.WalkableDistance) error {
	from := TransferNodeName(walk.StartingAt.Name)
	to := TransferNodeName(walk.EndingAt.Name)

	if _, err := net.addNode(LPNNode{Name: from}); err != nil {
		return err
	}
	if _, err := net.addNode(LPNNode{Name: to}); err != nil {
		return err
	}

	if err := net.addLink(LPNLink{From: from, To: to, Activity: Walking, Duration: walk.WalkingTime}); err != nil {
		return err
	}
	if err := net.addLink(LPNLink{From: to, To: from, Activity: Walking, Duration: walk.WalkingTime}); err != nil {
		return err
	}
	return nil
}

// accessDuration is the average uniform-arrival waiting time for a line
// dispatched at frequency f over period_duration: period/(2f).
func accessDuration(period time.Duration, f model.LineFrequency) time.Duration {
	return time.Duration(int64(period) / (2 * int64(f)))
}
