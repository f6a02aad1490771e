package routingalgorithm

import (
	"math"

	"lintang/ridecost/pkg/costfunction"
	"lintang/ridecost/pkg/datastructure"
	"lintang/ridecost/pkg/util"
)

// fatigueState node + apakah edge terakhir untuk sampai ke node ini long drive.
type fatigueState struct {
	City     string
	LastLong bool
}

// ShortestPathWithFatigue dijkstra di augmented state space dengan cost costfunction.FatigueCost.
func ShortestPathWithFatigue(start, target datastructure.City, nodes []datastructure.City,
	edges []datastructure.Edge) (Result, error) {
	graph, err := datastructure.NewGraph(nodes, edges)
	if err != nil {
		return Unreachable(), err
	}
	return NewRouteAlgorithm(graph).ShortestPathWithFatigue(start.ID, target.ID)
}

func (rt *RouteAlgorithm) ShortestPathWithFatigue(startID, targetID string) (Result, error) {
	return rt.ShortestPathWithHistory(startID, targetID, costfunction.FatigueCost)
}

// ShortestPathWithHistory search di state (city, lastLong). Tidak early exit waktu target di-pop karena target bisa dicapai dari dua state, queue dihabiskan dulu.
func (rt *RouteAlgorithm) ShortestPathWithHistory(startID, targetID string, costFn costfunction.HistoryCostFunc) (Result, error) {
	if costFn == nil {
		return Unreachable(), ErrUnimplemented
	}
	start, target, err := rt.endpoints(startID, targetID)
	if err != nil {
		return Unreachable(), err
	}
	if start.ID == target.ID {
		return Result{Path: []datastructure.City{start}, Cost: 0}, nil
	}

	r := newFatigueRunner(rt.graph, costFn)
	r.init(start.ID)
	r.process()
	return r.result(start.ID, target.ID), nil
}

type fatigueRunner struct {
	graph   *datastructure.Graph
	costFn  costfunction.HistoryCostFunc
	dist    map[fatigueState]float64
	prev    map[fatigueState]fatigueState
	visited map[fatigueState]struct{}
	pq      *MinHeap[fatigueState]
}

func newFatigueRunner(graph *datastructure.Graph, costFn costfunction.HistoryCostFunc) *fatigueRunner {
	return &fatigueRunner{
		graph:   graph,
		costFn:  costFn,
		dist:    make(map[fatigueState]float64, 2*graph.NumCities()),
		prev:    make(map[fatigueState]fatigueState, 2*graph.NumCities()),
		visited: make(map[fatigueState]struct{}, 2*graph.NumCities()),
		pq:      NewMinHeap[fatigueState](),
	}
}

func (r *fatigueRunner) distance(s fatigueState) float64 {
	if d, ok := r.dist[s]; ok {
		return d
	}
	return math.Inf(1)
}

func (r *fatigueRunner) init(start string) {
	s := fatigueState{City: start, LastLong: false}
	r.dist[s] = 0
	r.pq.Insert(0, s)
}

func (r *fatigueRunner) process() {
	for !r.pq.IsEmpty() {
		node, _ := r.pq.ExtractMin()
		u := node.Item
		if _, ok := r.visited[u]; ok {
			continue
		}
		r.visited[u] = struct{}{}
		r.relax(u)
	}
}

func (r *fatigueRunner) relax(u fatigueState) {
	from, _ := r.graph.City(u.City)
	for _, to := range r.graph.Neighbors(u.City) {
		next := fatigueState{City: to.ID, LastLong: costfunction.IsLongDrive(from, to)}
		if _, ok := r.visited[next]; ok {
			continue
		}
		newDist := r.dist[u] + r.costFn(from, to, u.LastLong)
		if newDist < r.distance(next) {
			r.dist[next] = newDist
			r.prev[next] = u
			r.pq.Insert(newDist, next)
		}
	}
}

// result pilih state target termurah, kalau sama pilih yang LastLong false.
func (r *fatigueRunner) result(start, target string) Result {
	best := fatigueState{City: target, LastLong: false}
	if long := (fatigueState{City: target, LastLong: true}); r.distance(long) < r.distance(best) {
		best = long
	}
	cost := r.distance(best)
	if math.IsInf(cost, 1) {
		return Unreachable()
	}

	startState := fatigueState{City: start, LastLong: false}
	path := make([]datastructure.City, 0)
	for curr := best; ; curr = r.prev[curr] {
		c, _ := r.graph.City(curr.City)
		path = append(path, c)
		if curr == startState {
			break
		}
	}
	util.ReverseG(path)
	return Result{Path: path, Cost: cost}
}
