// Package experiment menjalankan dijkstra biasa di atas cost function yang punya edge negatif, lalu membandingkan hasilnya dengan route yang sebenarnya lebih murah.
package experiment

import (
	"fmt"

	"lintang/ridecost/pkg/costfunction"
	"lintang/ridecost/pkg/datastructure"
	"lintang/ridecost/pkg/engine/routingalgorithm"
)

type RouteAlgorithm interface {
	Graph() *datastructure.Graph
	ShortestPath(startID, targetID string, costFn costfunction.CostFunc) (routingalgorithm.Result, error)
}

// Scenario satu edge directed (SubsidyFrom -> SubsidyTo) yang cost nya diganti SubsidyAmount.
type Scenario struct {
	Start         string
	Target        string
	SubsidyFrom   string
	SubsidyTo     string
	SubsidyAmount float64
}

// NorthfieldSubsidy subsidy Lakeville -> Northfield -100 untuk query start -> target.
func NorthfieldSubsidy(start, target string) Scenario {
	return Scenario{
		Start:         start,
		Target:        target,
		SubsidyFrom:   costfunction.SubsidyFrom,
		SubsidyTo:     costfunction.SubsidyTo,
		SubsidyAmount: costfunction.SubsidyAmount,
	}
}

// DefaultScenario query Minneapolis -> Shakopee. Dijkstra sudah pop Shakopee sebelum sempat lewat Lakeville -> Northfield.
var DefaultScenario = NorthfieldSubsidy("Minneapolis", "Shakopee")

func (sc Scenario) CostFunc() costfunction.CostFunc {
	return costfunction.NegativeSubsidy(sc.SubsidyFrom, sc.SubsidyTo, sc.SubsidyAmount)
}

type Report struct {
	Scenario   Scenario
	Regular    routingalgorithm.Result // driver cost tanpa subsidy
	Subsidized routingalgorithm.Result // dijkstra dengan subsidy cost
	Witness    routingalgorithm.Result // route lewat edge subsidy, cost dihitung per edge dengan subsidy cost
}

// Missed true kalau ada route lewat edge subsidy yang lebih murah dari jawaban dijkstra.
func (r Report) Missed() bool {
	return r.Witness.Found() && r.Subsidized.Found() && r.Witness.Cost < r.Subsidized.Cost
}

// UsesSubsidy apakah path melewati edge subsidy dengan arah yang benar.
func (r Report) UsesSubsidy(path []datastructure.City) bool {
	for i := 0; i+1 < len(path); i++ {
		if path[i].ID == r.Scenario.SubsidyFrom && path[i+1].ID == r.Scenario.SubsidyTo {
			return true
		}
	}
	return false
}

// SameAsRegular dijkstra dengan subsidy mengembalikan path yang sama dengan tanpa subsidy.
func (r Report) SameAsRegular() bool {
	a, b := r.Regular.PathIDs(), r.Subsidized.PathIDs()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func Run(rt RouteAlgorithm, sc Scenario) (Report, error) {
	graph := rt.Graph()
	if !graph.HasEdge(sc.SubsidyFrom, sc.SubsidyTo) {
		return Report{}, fmt.Errorf("%w: subsidy edge %s -> %s", routingalgorithm.ErrInvalidPath, sc.SubsidyFrom, sc.SubsidyTo)
	}

	regular, err := rt.ShortestPath(sc.Start, sc.Target, costfunction.Driver)
	if err != nil {
		return Report{}, err
	}
	subsidized, err := rt.ShortestPath(sc.Start, sc.Target, sc.CostFunc())
	if err != nil {
		return Report{}, err
	}
	witness, err := witnessRoute(rt, sc)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Scenario:   sc,
		Regular:    regular,
		Subsidized: subsidized,
		Witness:    witness,
	}, nil
}

// witnessRoute start -> SubsidyFrom, edge subsidy, SubsidyTo -> target. Kedua potongan pakai driver cost yang non-negatif jadi dijkstra benar di sana. Kalau kedua potongan ketemu di city yang sama, tidak ada witness.
func witnessRoute(rt RouteAlgorithm, sc Scenario) (routingalgorithm.Result, error) {
	head, err := rt.ShortestPath(sc.Start, sc.SubsidyFrom, costfunction.Driver)
	if err != nil {
		return routingalgorithm.Unreachable(), err
	}
	tail, err := rt.ShortestPath(sc.SubsidyTo, sc.Target, costfunction.Driver)
	if err != nil {
		return routingalgorithm.Unreachable(), err
	}
	if !head.Found() || !tail.Found() {
		return routingalgorithm.Unreachable(), nil
	}
	if sharesCity(head.Path, tail.Path) {
		// gabungannya bukan simple path, muter lewat cycle negatif SubsidyTo -> SubsidyFrom -> SubsidyTo
		return routingalgorithm.Unreachable(), nil
	}

	path := make([]datastructure.City, 0, len(head.Path)+len(tail.Path))
	path = append(path, head.Path...)
	path = append(path, tail.Path...)
	return routingalgorithm.Result{
		Path: path,
		Cost: costfunction.PathCost(path, sc.CostFunc()),
	}, nil
}

func sharesCity(a, b []datastructure.City) bool {
	seen := make(map[string]struct{}, len(a))
	for _, c := range a {
		seen[c.ID] = struct{}{}
	}
	for _, c := range b {
		if _, ok := seen[c.ID]; ok {
			return true
		}
	}
	return false
}

func RunNorthfieldSubsidy(rt RouteAlgorithm, start, target string) (Report, error) {
	return Run(rt, NorthfieldSubsidy(start, target))
}
