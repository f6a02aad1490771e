package routingalgorithm

import (
	"context"
	"fmt"

	"lintang/ridecost/pkg/concurrent"
	"lintang/ridecost/pkg/costfunction"
	"lintang/ridecost/pkg/datastructure"
)

const DefaultWorkers = 4

type PairResult struct {
	From   string
	To     string
	Result Result
	Err    error
}

// callRoute job yang diambil worker setelah ctx cancel tidak dijalankan, langsung return ctx.Err().
func (rt *RouteAlgorithm) callRoute(ctx context.Context, strategy costfunction.Strategy) concurrent.JobFunc[concurrent.Job[concurrent.RoutePair], PairResult] {
	return func(job concurrent.Job[concurrent.RoutePair]) PairResult {
		if err := ctx.Err(); err != nil {
			return PairResult{From: job.JobItem.From, To: job.JobItem.To, Result: Unreachable(), Err: err}
		}
		res, err := rt.Route(job.JobItem.From, job.JobItem.To, strategy)
		return PairResult{From: job.JobItem.From, To: job.JobItem.To, Result: res, Err: err}
	}
}

// ManyToMany shortest path dari setiap source ke setiap target. Setiap pasangan dijalankan sebagai satu dijkstra query sendiri di worker pool.
func (rt *RouteAlgorithm) ManyToMany(ctx context.Context, sources, targets []string, strategy costfunction.Strategy,
	numWorkers int) (map[string]map[string]Result, error) {
	for _, id := range append(append([]string{}, sources...), targets...) {
		if !rt.graph.HasCity(id) {
			return nil, fmt.Errorf("%w: %q", datastructure.ErrCityNotFound, id)
		}
	}

	spPair := make([]concurrent.RoutePair, 0, len(sources)*len(targets))
	for _, from := range sources {
		for _, to := range targets {
			spPair = append(spPair, concurrent.RoutePair{From: from, To: to})
		}
	}

	workers := concurrent.NewWorkerPool[concurrent.Job[concurrent.RoutePair], PairResult](numWorkers, len(spPair))
	for i, pair := range spPair {
		if ctx.Err() != nil {
			break
		}
		workers.AddJob(concurrent.Job[concurrent.RoutePair]{ID: i, JobItem: pair})
	}
	workers.Close()

	workers.Start(rt.callRoute(ctx, strategy))
	workers.Wait()

	spMap := make(map[string]map[string]Result, len(sources))
	for _, from := range sources {
		spMap[from] = make(map[string]Result, len(targets))
	}

	var firstErr error
	for curr := range workers.CollectResults() {
		if curr.Err != nil && firstErr == nil {
			firstErr = curr.Err
		}
		spMap[curr.From][curr.To] = curr.Result
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return spMap, nil
}

// AllPairs ManyToMany untuk semua city di graph.
func (rt *RouteAlgorithm) AllPairs(ctx context.Context, strategy costfunction.Strategy, numWorkers int) (map[string]map[string]Result, error) {
	ids := make([]string, 0, rt.graph.NumCities())
	for _, c := range rt.graph.Cities() {
		ids = append(ids, c.ID)
	}
	return rt.ManyToMany(ctx, ids, ids, strategy, numWorkers)
}
