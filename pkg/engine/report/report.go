// Package report menjalankan semua cost strategy untuk setiap pasangan city dan merangkum di mana route company dan driver berbeda.
package report

import (
	"cmp"
	"context"

	"lintang/ridecost/pkg/costfunction"
	"lintang/ridecost/pkg/datastructure"
	"lintang/ridecost/pkg/engine/routingalgorithm"

	"golang.org/x/exp/slices"
)

type RouteAlgorithm interface {
	Graph() *datastructure.Graph
	ManyToMany(ctx context.Context, sources, targets []string, strategy costfunction.Strategy,
		numWorkers int) (map[string]map[string]routingalgorithm.Result, error)
}

type StrategySummary struct {
	Strategy  costfunction.Strategy
	Reachable int
	MeanCost  float64
	MeanHops  float64
}

// Divergence pasangan city yang route company dan route driver nya beda.
type Divergence struct {
	From        string
	To          string
	CompanyPath []string
	DriverPath  []string
	CompanyCost float64
	DriverCost  float64
}

type Comparison struct {
	Pairs       int
	Summaries   []StrategySummary
	Divergences []Divergence
}

// Steps jumlah progress step yang akan dipanggil Build, satu per (strategy, source city).
func Steps(graph *datastructure.Graph, strategies []costfunction.Strategy) int {
	return graph.NumCities() * len(strategies)
}

func samePath(a, b []string) bool {
	return slices.Equal(a, b)
}

// Build onProgress dipanggil setiap satu source city selesai untuk satu strategy.
func Build(ctx context.Context, rt RouteAlgorithm, strategies []costfunction.Strategy, numWorkers int,
	onProgress func()) (Comparison, error) {
	cities := rt.Graph().Cities()
	ids := make([]string, 0, len(cities))
	for _, c := range cities {
		ids = append(ids, c.ID)
	}

	all := make(map[costfunction.Strategy]map[string]map[string]routingalgorithm.Result, len(strategies))
	for _, strategy := range strategies {
		all[strategy] = make(map[string]map[string]routingalgorithm.Result, len(ids))
		for _, src := range ids {
			spMap, err := rt.ManyToMany(ctx, []string{src}, ids, strategy, numWorkers)
			if err != nil {
				return Comparison{}, err
			}
			all[strategy][src] = spMap[src]
			if onProgress != nil {
				onProgress()
			}
		}
	}

	comparison := Comparison{Pairs: len(ids) * (len(ids) - 1)}
	for _, strategy := range strategies {
		summary := StrategySummary{Strategy: strategy}
		totalCost, totalHops := 0.0, 0
		for _, from := range ids {
			for _, to := range ids {
				if from == to {
					continue
				}
				res := all[strategy][from][to]
				if !res.Found() {
					continue
				}
				summary.Reachable++
				totalCost += res.Cost
				totalHops += len(res.Path) - 1
			}
		}
		if summary.Reachable > 0 {
			summary.MeanCost = totalCost / float64(summary.Reachable)
			summary.MeanHops = float64(totalHops) / float64(summary.Reachable)
		}
		comparison.Summaries = append(comparison.Summaries, summary)
	}

	company, okC := all[costfunction.StrategyCompany]
	driver, okD := all[costfunction.StrategyDriver]
	if okC && okD {
		for _, from := range ids {
			for _, to := range ids {
				if from == to {
					continue
				}
				c, d := company[from][to], driver[from][to]
				if samePath(c.PathIDs(), d.PathIDs()) {
					continue
				}
				comparison.Divergences = append(comparison.Divergences, Divergence{
					From:        from,
					To:          to,
					CompanyPath: c.PathIDs(),
					DriverPath:  d.PathIDs(),
					CompanyCost: c.Cost,
					DriverCost:  d.Cost,
				})
			}
		}
	}

	slices.SortFunc(comparison.Divergences, func(a, b Divergence) int {
		if a.From != b.From {
			return cmp.Compare(a.From, b.From)
		}
		return cmp.Compare(a.To, b.To)
	})
	return comparison, nil
}
