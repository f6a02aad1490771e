package datastructure

import (
	"errors"
	"fmt"
)

var ErrInvalidEndpoint = errors.New("node is not an endpoint of edge")

// Edge undirected road antara 2 city, disimpan pakai city ID. Edge tidak punya weight sendiri, weight dihitung cost function saat traversal.
type Edge struct {
	U string `json:"u" yaml:"u"`
	V string `json:"v" yaml:"v"`
}

func NewEdge(u, v string) Edge {
	return Edge{U: u, V: v}
}

func (e Edge) Has(id string) bool {
	return e.U == id || e.V == id
}

// OtherEndpoint return endpoint lain dari edge.
func (e Edge) OtherEndpoint(id string) (string, error) {
	switch id {
	case e.U:
		return e.V, nil
	case e.V:
		return e.U, nil
	}
	return "", fmt.Errorf("%w: %q is not on %s", ErrInvalidEndpoint, id, e)
}

func (e Edge) String() string {
	return fmt.Sprintf("%s - %s", e.U, e.V)
}

// Neighbors scan edge list, return ID tetangga dari node id. Urutan sesuai kemunculan pertama di edges, duplicate dibuang.
func Neighbors(id string, edges []Edge) []string {
	neighbors := make([]string, 0)
	seen := make(map[string]struct{})
	for _, e := range edges {
		other, err := e.OtherEndpoint(id)
		if err != nil {
			continue
		}
		if _, ok := seen[other]; ok {
			continue
		}
		seen[other] = struct{}{}
		neighbors = append(neighbors, other)
	}
	return neighbors
}
