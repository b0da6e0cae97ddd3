package main

import (
	"container/heap"
	"context"

	"github.com/WonJayne/ivt-line-planning-app/milp"
	"github.com/WonJayne/ivt-line-planning-app/network"
)

// demoSolver is a heuristic stand-in for a real MILP backend: it routes
// every origin's demand along shortest weighted paths, then picks the
// cheapest permitted frequency that covers the resulting load on each
// line. It exists only so this binary can exercise the pipeline
// end to end without a real solver dependency; it does not certify
// optimality or even feasibility and must never be mistaken for one.
type demoSolver struct{}

func (demoSolver) Solve(ctx context.Context, p *milp.Problem) (milp.Outcome, error) {
	primal := make([]float64, p.NumVars)

	links := p.Net.AllLinks()
	edgeLoad := make(map[int]float64, len(links))

	for _, origin := range p.Origins {
		demand := p.Scenario.DemandMatrix.StartingFrom(origin)
		for dest, pax := range demand {
			if pax <= 0 {
				continue
			}
			path := shortestPath(p.Net, p.Weights, network.AccessNodeName(origin), network.EgressNodeName(dest))
			for _, edgeIdx := range path {
				varIdx := p.FlowVar[milp.FlowVarKey{Origin: origin, EdgeIndex: edgeIdx}]
				primal[varIdx] += pax
				edgeLoad[edgeIdx] += pax
			}
		}
	}

	for _, line := range p.Scenario.BusLines {
		maxLoad := 0.0
		for edgeIdx, link := range links {
			if link.LineID == nil || *link.LineID != line.Number {
				continue
			}
			if link.Activity != network.InVehicle && link.Activity != network.AccessLine {
				continue
			}
			if load := edgeLoad[edgeIdx]; load > maxLoad {
				maxLoad = load
			}
		}

		chosen := line.PermittedFrequencies[len(line.PermittedFrequencies)-1]
		for _, f := range line.PermittedFrequencies {
			if line.Capacity == 0 {
				continue
			}
			if float64(line.Capacity)*float64(f) >= maxLoad {
				chosen = f
				break
			}
		}
		if line.Capacity == 0 && maxLoad > 0 {
			return milp.Outcome{Status: milp.StatusInfeasible}, nil
		}

		varIdx := p.LineVar[milp.LineVarKey{Line: line.Number, Frequency: chosen}]
		primal[varIdx] = 1
	}

	return milp.Outcome{Status: milp.StatusOptimal, Primal: primal}, nil
}

// shortestPath returns the edge indices of the minimum-weight path from
// source to target, using p.Weights as edge costs. Returns nil if no
// path exists.
func shortestPath(net *network.LinePlanningNetwork, weights []float64, source, target string) []int {
	if source == target {
		return nil
	}

	dist := map[string]float64{source: 0}
	viaEdge := map[string]int{}
	visited := map[string]bool{}

	pq := &nodeQueue{{name: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(nodeDist)
		if visited[cur.name] {
			continue
		}
		visited[cur.name] = true
		if cur.name == target {
			break
		}

		for _, edgeIdx := range net.OutgoingLinkIndices(cur.name) {
			link := net.AllLinks()[edgeIdx]
			nd := cur.dist + weights[edgeIdx]
			if best, ok := dist[link.To]; !ok || nd < best {
				dist[link.To] = nd
				viaEdge[link.To] = edgeIdx
				heap.Push(pq, nodeDist{name: link.To, dist: nd})
			}
		}
	}

	if _, ok := dist[target]; !ok {
		return nil
	}

	var path []int
	node := target
	for node != source {
		edgeIdx, ok := viaEdge[node]
		if !ok {
			return nil
		}
		path = append([]int{edgeIdx}, path...)
		node = net.AllLinks()[edgeIdx].From
	}
	return path
}

type nodeDist struct {
	name string
	dist float64
}

type nodeQueue []nodeDist

func (q nodeQueue) Len() int            { return len(q) }
func (q nodeQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(nodeDist)) }
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
