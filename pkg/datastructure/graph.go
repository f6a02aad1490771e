package datastructure

import (
	"errors"
	"fmt"

	"github.com/twpayne/go-polyline"
)

var (
	ErrCityNotFound  = errors.New("city not found")
	ErrDuplicateCity = errors.New("duplicate city id")
)

// Graph immutable road network. adjacency index dibuat sekali di NewGraph.
type Graph struct {
	cities   []City
	cityIdx  map[string]int
	edges    []Edge
	adjacent map[string][]string
}

func NewGraph(cities []City, edges []Edge) (*Graph, error) {
	g := &Graph{
		cities:   make([]City, len(cities)),
		cityIdx:  make(map[string]int, len(cities)),
		edges:    make([]Edge, len(edges)),
		adjacent: make(map[string][]string, len(cities)),
	}
	copy(g.cities, cities)
	copy(g.edges, edges)

	for i, c := range g.cities {
		if _, ok := g.cityIdx[c.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCity, c.ID)
		}
		g.cityIdx[c.ID] = i
	}

	for _, e := range g.edges {
		if _, ok := g.cityIdx[e.U]; !ok {
			return nil, fmt.Errorf("%w: edge %s references %q", ErrCityNotFound, e, e.U)
		}
		if _, ok := g.cityIdx[e.V]; !ok {
			return nil, fmt.Errorf("%w: edge %s references %q", ErrCityNotFound, e, e.V)
		}
	}

	for _, c := range g.cities {
		g.adjacent[c.ID] = Neighbors(c.ID, g.edges)
	}
	return g, nil
}

func (g *Graph) City(id string) (City, bool) {
	idx, ok := g.cityIdx[id]
	if !ok {
		return City{}, false
	}
	return g.cities[idx], true
}

func (g *Graph) HasCity(id string) bool {
	_, ok := g.cityIdx[id]
	return ok
}

func (g *Graph) Cities() []City {
	cities := make([]City, len(g.cities))
	copy(cities, g.cities)
	return cities
}

func (g *Graph) Edges() []Edge {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

func (g *Graph) NumCities() int {
	return len(g.cities)
}

// Neighbors sama dengan package level Neighbors tapi pakai adjacency index.
func (g *Graph) Neighbors(id string) []City {
	ids := g.adjacent[id]
	neighbors := make([]City, 0, len(ids))
	for _, n := range ids {
		neighbors = append(neighbors, g.cities[g.cityIdx[n]])
	}
	return neighbors
}

func (g *Graph) NeighborIDs(id string) []string {
	return g.adjacent[id]
}

func (g *Graph) HasEdge(a, b string) bool {
	for _, n := range g.adjacent[a] {
		if n == b {
			return true
		}
	}
	return false
}

func RenderPath(path []City) string {
	coords := make([][]float64, 0, len(path))
	for _, c := range path {
		coords = append(coords, []float64{c.X, c.Y})
	}
	return string(polyline.EncodeCoords(coords))
}

func PathIDs(path []City) []string {
	ids := make([]string, 0, len(path))
	for _, c := range path {
		ids = append(ids, c.ID)
	}
	return ids
}
