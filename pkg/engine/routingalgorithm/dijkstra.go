package routingalgorithm

import (
	"errors"
	"fmt"
	"math"

	"lintang/ridecost/pkg/costfunction"
	"lintang/ridecost/pkg/datastructure"
	"lintang/ridecost/pkg/util"
)

var (
	// ErrUnimplemented cost function/engine variant belum ada. Beda dengan unreachable, unreachable bukan error.
	ErrUnimplemented = errors.New("routing: not implemented")
	ErrInvalidPath   = errors.New("routing: invalid path")
)

// Result hasil shortest path query. Unreachable: Path kosong dan Cost +Inf.
type Result struct {
	Path []datastructure.City
	Cost float64
}

func Unreachable() Result {
	return Result{Path: []datastructure.City{}, Cost: math.Inf(1)}
}

func (r Result) Found() bool {
	return len(r.Path) > 0
}

func (r Result) PathIDs() []string {
	return datastructure.PathIDs(r.Path)
}

type RouteAlgorithm struct {
	graph *datastructure.Graph
}

func NewRouteAlgorithm(graph *datastructure.Graph) *RouteAlgorithm {
	return &RouteAlgorithm{graph: graph}
}

func (rt *RouteAlgorithm) Graph() *datastructure.Graph {
	return rt.graph
}

// ShortestPath single pair dijkstra di atas nodes & edges yang diberikan caller.
func ShortestPath(start, target datastructure.City, nodes []datastructure.City, edges []datastructure.Edge,
	costFn costfunction.CostFunc) (Result, error) {
	graph, err := datastructure.NewGraph(nodes, edges)
	if err != nil {
		return Unreachable(), err
	}
	return NewRouteAlgorithm(graph).ShortestPath(start.ID, target.ID, costFn)
}

func (rt *RouteAlgorithm) endpoints(startID, targetID string) (datastructure.City, datastructure.City, error) {
	start, ok := rt.graph.City(startID)
	if !ok {
		return datastructure.City{}, datastructure.City{}, fmt.Errorf("%w: start %q", datastructure.ErrCityNotFound, startID)
	}
	target, ok := rt.graph.City(targetID)
	if !ok {
		return datastructure.City{}, datastructure.City{}, fmt.Errorf("%w: target %q", datastructure.ErrCityNotFound, targetID)
	}
	return start, target, nil
}

// ShortestPath minimum cost path dari startID ke targetID. Cost negatif tidak ditolak, tapi hasilnya bisa salah (node yang sudah di-pop tidak pernah di-relax ulang).
func (rt *RouteAlgorithm) ShortestPath(startID, targetID string, costFn costfunction.CostFunc) (Result, error) {
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

	r := newDijkstraRunner(rt.graph, costFn)
	r.init(start.ID)
	r.process(target.ID)
	return r.result(start.ID, target.ID), nil
}

// dijkstraRunner state satu kali query. Tidak di-share antar query.
type dijkstraRunner struct {
	graph   *datastructure.Graph
	costFn  costfunction.CostFunc
	dist    map[string]float64
	prev    map[string]string
	visited map[string]struct{}
	pq      *MinHeap[string]
}

func newDijkstraRunner(graph *datastructure.Graph, costFn costfunction.CostFunc) *dijkstraRunner {
	return &dijkstraRunner{
		graph:   graph,
		costFn:  costFn,
		dist:    make(map[string]float64, graph.NumCities()),
		prev:    make(map[string]string, graph.NumCities()),
		visited: make(map[string]struct{}, graph.NumCities()),
		pq:      NewMinHeap[string](),
	}
}

func (r *dijkstraRunner) init(start string) {
	for _, c := range r.graph.Cities() {
		r.dist[c.ID] = math.Inf(1)
	}
	r.dist[start] = 0
	r.pq.Insert(0, start)
}

// process pop node dengan dist terkecil sampai target di-pop atau queue habis.
func (r *dijkstraRunner) process(target string) {
	for !r.pq.IsEmpty() {
		node, _ := r.pq.ExtractMin()
		u := node.Item
		if _, ok := r.visited[u]; ok {
			// stale entry
			continue
		}
		r.visited[u] = struct{}{}
		if u == target {
			return
		}
		r.relax(u)
	}
}

func (r *dijkstraRunner) relax(u string) {
	from, _ := r.graph.City(u)
	for _, to := range r.graph.Neighbors(u) {
		if _, ok := r.visited[to.ID]; ok {
			continue
		}
		newDist := r.dist[u] + r.costFn(from, to)
		if newDist < r.dist[to.ID] {
			r.dist[to.ID] = newDist
			r.prev[to.ID] = u
			r.pq.Insert(newDist, to.ID)
		}
	}
}

func (r *dijkstraRunner) result(start, target string) Result {
	cost := r.dist[target]
	if math.IsInf(cost, 1) {
		return Unreachable()
	}

	path := make([]datastructure.City, 0)
	for curr := target; ; curr = r.prev[curr] {
		c, _ := r.graph.City(curr)
		path = append(path, c)
		if curr == start {
			break
		}
	}
	util.ReverseG(path)
	return Result{Path: path, Cost: cost}
}

// ValidatePath cek setiap pasangan city berurutan di path adalah edge di graph.
func (rt *RouteAlgorithm) ValidatePath(path []datastructure.City) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	for _, c := range path {
		if !rt.graph.HasCity(c.ID) {
			return fmt.Errorf("%w: %q", datastructure.ErrCityNotFound, c.ID)
		}
	}
	for i := 0; i+1 < len(path); i++ {
		if !rt.graph.HasEdge(path[i].ID, path[i+1].ID) {
			return fmt.Errorf("%w: no edge %s - %s", ErrInvalidPath, path[i].ID, path[i+1].ID)
		}
	}
	return nil
}

// Route dispatch strategy ke engine yang sesuai.
func (rt *RouteAlgorithm) Route(startID, targetID string, strategy costfunction.Strategy) (Result, error) {
	if strategy.Stateful() {
		return rt.ShortestPathWithHistory(startID, targetID, strategy.HistoryCostFunc())
	}
	return rt.ShortestPath(startID, targetID, strategy.CostFunc())
}
