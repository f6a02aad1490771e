package service

import (
	"context"
	"errors"

	"lintang/ridecost/pkg/costfunction"
	"lintang/ridecost/pkg/datastructure"
	"lintang/ridecost/pkg/engine/experiment"
	"lintang/ridecost/pkg/engine/routingalgorithm"
	"lintang/ridecost/pkg/guidance"
	"lintang/ridecost/pkg/server"

	"go.uber.org/zap"
)

type RoutingAlgorithm interface {
	Graph() *datastructure.Graph
	ShortestPath(startID, targetID string, costFn costfunction.CostFunc) (routingalgorithm.Result, error)
	Route(startID, targetID string, strategy costfunction.Strategy) (routingalgorithm.Result, error)
	ManyToMany(ctx context.Context, sources, targets []string, strategy costfunction.Strategy,
		numWorkers int) (map[string]map[string]routingalgorithm.Result, error)
}

type CityIndex interface {
	NearestCities(c datastructure.Coordinate, k int) ([]datastructure.City, error)
}

type RouteResult struct {
	Strategy  costfunction.Strategy
	Start     string
	Target    string
	Found     bool
	Cost      float64
	Path      []datastructure.City
	Itinerary guidance.Itinerary
}

type NavigationService struct {
	routing   RoutingAlgorithm
	cityIndex CityIndex
	log       *zap.Logger
	workers   int
}

func NewNavigationService(routing RoutingAlgorithm, cityIndex CityIndex, log *zap.Logger, workers int) *NavigationService {
	if workers < 1 {
		workers = routingalgorithm.DefaultWorkers
	}
	return &NavigationService{routing: routing, cityIndex: cityIndex, log: log, workers: workers}
}

// wrapRoutingError mapping error engine ke error service.
func wrapRoutingError(err error) error {
	switch {
	case errors.Is(err, datastructure.ErrCityNotFound):
		return server.WrapErrorf(err, server.ErrNotFound, "%s", err.Error())
	case errors.Is(err, costfunction.ErrUnknownStrategy):
		return server.WrapErrorf(err, server.ErrBadParamInput, "%s", err.Error())
	case errors.Is(err, routingalgorithm.ErrUnimplemented), errors.Is(err, guidance.ErrUnknownStrategy):
		return server.WrapErrorf(err, server.ErrNotImplemented, "routing strategy is not implemented")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return server.WrapErrorf(err, server.ErrBadParamInput, "request cancelled")
	default:
		return server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
}

func (uc *NavigationService) newRouteResult(start, target string, strategy costfunction.Strategy,
	res routingalgorithm.Result) (RouteResult, error) {
	itinerary, err := guidance.NewItinerary(res.Path, strategy)
	if err != nil {
		return RouteResult{}, err
	}
	return RouteResult{
		Strategy:  strategy,
		Start:     start,
		Target:    target,
		Found:     res.Found(),
		Cost:      res.Cost,
		Path:      res.Path,
		Itinerary: itinerary,
	}, nil
}

func (uc *NavigationService) ShortestPath(ctx context.Context, start, target, strategyName string) (RouteResult, error) {
	strategy, err := costfunction.ParseStrategy(strategyName)
	if err != nil {
		return RouteResult{}, wrapRoutingError(err)
	}

	res, err := uc.routing.Route(start, target, strategy)
	if err != nil {
		uc.log.Debug("shortest path query failed", zap.String("start", start), zap.String("target", target),
			zap.Stringer("strategy", strategy), zap.Error(err))
		return RouteResult{}, wrapRoutingError(err)
	}
	if !res.Found() {
		uc.log.Info("target unreachable", zap.String("start", start), zap.String("target", target),
			zap.Stringer("strategy", strategy))
	}

	rr, err := uc.newRouteResult(start, target, strategy, res)
	if err != nil {
		return RouteResult{}, wrapRoutingError(err)
	}
	return rr, nil
}

// Compare jalankan semua strategy untuk start -> target, urut sesuai costfunction.Strategies().
func (uc *NavigationService) Compare(ctx context.Context, start, target string) ([]RouteResult, error) {
	results := make([]RouteResult, 0, len(costfunction.Strategies()))
	for _, strategy := range costfunction.Strategies() {
		if err := ctx.Err(); err != nil {
			return nil, wrapRoutingError(err)
		}
		res, err := uc.routing.Route(start, target, strategy)
		if err != nil {
			return nil, wrapRoutingError(err)
		}
		rr, err := uc.newRouteResult(start, target, strategy, res)
		if err != nil {
			return nil, wrapRoutingError(err)
		}
		results = append(results, rr)
	}
	return results, nil
}

type TargetResult struct {
	Target string
	Route  RouteResult
}

func (uc *NavigationService) ManyToManyQuery(ctx context.Context, sources, targets []string,
	strategyName string) (map[string][]TargetResult, error) {
	strategy, err := costfunction.ParseStrategy(strategyName)
	if err != nil {
		return nil, wrapRoutingError(err)
	}

	spMap, err := uc.routing.ManyToMany(ctx, sources, targets, strategy, uc.workers)
	if err != nil {
		return nil, wrapRoutingError(err)
	}

	results := make(map[string][]TargetResult, len(spMap))
	for _, from := range sources {
		targetResults := make([]TargetResult, 0, len(targets))
		for _, to := range targets {
			rr, err := uc.newRouteResult(from, to, strategy, spMap[from][to])
			if err != nil {
				return nil, wrapRoutingError(err)
			}
			targetResults = append(targetResults, TargetResult{Target: to, Route: rr})
		}
		results[from] = targetResults
	}
	uc.log.Debug("many to many query done", zap.Int("sources", len(sources)), zap.Int("targets", len(targets)),
		zap.Stringer("strategy", strategy))
	return results, nil
}

func (uc *NavigationService) SubsidyExperiment(ctx context.Context, start, target string) (experiment.Report, error) {
	report, err := experiment.RunNorthfieldSubsidy(uc.routing, start, target)
	if err != nil {
		return experiment.Report{}, wrapRoutingError(err)
	}
	if report.Missed() {
		uc.log.Warn("dijkstra missed cheaper route through negative edge",
			zap.String("start", start), zap.String("target", target),
			zap.Float64("dijkstra_cost", report.Subsidized.Cost), zap.Float64("witness_cost", report.Witness.Cost))
	}
	return report, nil
}

func (uc *NavigationService) NearestCities(ctx context.Context, x, y float64, k int) ([]datastructure.City, error) {
	cities, err := uc.cityIndex.NearestCities(datastructure.NewCoordinate(x, y), k)
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrNotFound, "no city near (%.2f, %.2f)", x, y)
	}
	return cities, nil
}

func (uc *NavigationService) Cities(ctx context.Context) []datastructure.City {
	return uc.routing.Graph().Cities()
}
