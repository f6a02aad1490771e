package routingalgorithm_test

import (
	"errors"
	"math"
	"testing"

	"lintang/ridecost/pkg/costfunction"
	"lintang/ridecost/pkg/dataset"
	"lintang/ridecost/pkg/datastructure"
	"lintang/ridecost/pkg/engine/routingalgorithm"

	"github.com/stretchr/testify/assert"
)

func minnesota() *routingalgorithm.RouteAlgorithm {
	return routingalgorithm.NewRouteAlgorithm(dataset.Minnesota())
}

func unitCost(from, to datastructure.City) float64 {
	return 1
}

func TestShortestPathMinnesota(t *testing.T) {
	rt := minnesota()

	tests := []struct {
		name     string
		start    string
		target   string
		strategy costfunction.Strategy
		wantPath []string
		wantCost float64
	}{
		{"company to northfield", "Minneapolis", "Northfield", costfunction.StrategyCompany,
			[]string{"Minneapolis", "Bloomington", "Shakopee", "New Prague", "Lonsdale", "Northfield"}, 38.824973},
		{"driver to northfield", "Minneapolis", "Northfield", costfunction.StrategyDriver,
			[]string{"Minneapolis", "Eagan", "Rosemount", "Burnsville", "Lakeville", "Northfield"}, 21.306661},
		{"fairness to northfield", "Minneapolis", "Northfield", costfunction.StrategyFairness,
			[]string{"Minneapolis", "Bloomington", "Shakopee", "New Prague", "Lonsdale", "Northfield"}, 25.087553},
		{"weather to northfield", "Minneapolis", "Northfield", costfunction.StrategyWeather,
			[]string{"Minneapolis", "Bloomington", "Shakopee", "New Prague", "Lonsdale", "Northfield"}, 55.220972},
		{"company to stillwater", "Minneapolis", "Stillwater", costfunction.StrategyCompany,
			[]string{"Minneapolis", "St Paul", "Woodbury", "Stillwater"}, 33.639025},
		{"driver to stillwater", "Minneapolis", "Stillwater", costfunction.StrategyDriver,
			[]string{"Minneapolis", "Anoka", "Forest Lake", "Stillwater"}, 16.309243},
		{"fairness to stillwater", "Minneapolis", "Stillwater", costfunction.StrategyFairness,
			[]string{"Minneapolis", "Anoka", "Forest Lake", "Stillwater"}, 20.550853},
		{"company to hastings", "Minneapolis", "Hastings", costfunction.StrategyCompany,
			[]string{"Minneapolis", "St Paul", "Woodbury", "Cottage Grove", "Hastings"}, 39.621078},
		{"driver to hastings", "Minneapolis", "Hastings", costfunction.StrategyDriver,
			[]string{"Minneapolis", "Eagan", "Woodbury", "Cottage Grove", "Hastings"}, 22.120208},
		{"company edina to forest lake", "Edina", "Forest Lake", costfunction.StrategyCompany,
			[]string{"Edina", "Roseville", "Blaine", "Forest Lake"}, 32.4669},
		{"weather edina to forest lake", "Edina", "Forest Lake", costfunction.StrategyWeather,
			[]string{"Edina", "Bloomington", "Eagan", "Woodbury", "Stillwater", "Forest Lake"}, 62.6201},
		{"company anoka to bloomington", "Anoka", "Bloomington", costfunction.StrategyCompany,
			[]string{"Anoka", "Minneapolis", "Bloomington"}, 28.7797},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := rt.ShortestPath(tt.start, tt.target, tt.strategy.CostFunc())
			assert.NoError(t, err)
			assert.Equal(t, tt.wantPath, res.PathIDs())
			assert.InDelta(t, tt.wantCost, res.Cost, 1e-3)
			assert.NoError(t, rt.ValidatePath(res.Path))
			assert.InDelta(t, costfunction.PathCost(res.Path, tt.strategy.CostFunc()), res.Cost, 1e-9)
		})
	}
}

func TestShortestPathEdgeCases(t *testing.T) {
	rt := minnesota()

	t.Run("start equals target", func(t *testing.T) {
		for _, c := range rt.Graph().Cities() {
			for _, strategy := range costfunction.Strategies() {
				res, err := rt.Route(c.ID, c.ID, strategy)
				assert.NoError(t, err)
				assert.Equal(t, []string{c.ID}, res.PathIDs(), "%s %s", c.ID, strategy)
				assert.Equal(t, 0.0, res.Cost, "%s %s", c.ID, strategy)
			}
		}
	})

	t.Run("unknown city", func(t *testing.T) {
		_, err := rt.ShortestPath("Duluth", "Hastings", costfunction.Company)
		assert.True(t, errors.Is(err, datastructure.ErrCityNotFound))
		_, err = rt.ShortestPath("Hastings", "Duluth", costfunction.Company)
		assert.True(t, errors.Is(err, datastructure.ErrCityNotFound))
	})

	t.Run("nil cost function", func(t *testing.T) {
		_, err := rt.ShortestPath("Minneapolis", "Hastings", nil)
		assert.ErrorIs(t, err, routingalgorithm.ErrUnimplemented)
	})

	t.Run("unreachable", func(t *testing.T) {
		nodes := []datastructure.City{{ID: "A"}, {ID: "B"}, {ID: "Z"}}
		edges := []datastructure.Edge{datastructure.NewEdge("A", "B")}
		res, err := routingalgorithm.ShortestPath(nodes[0], nodes[2], nodes, edges, unitCost)
		assert.NoError(t, err)
		assert.False(t, res.Found())
		assert.Empty(t, res.Path)
		assert.True(t, math.IsInf(res.Cost, 1))
	})

	t.Run("ties follow edge order", func(t *testing.T) {
		nodes := []datastructure.City{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}}
		edges := []datastructure.Edge{
			datastructure.NewEdge("A", "B"),
			datastructure.NewEdge("A", "C"),
			datastructure.NewEdge("B", "D"),
			datastructure.NewEdge("C", "D"),
		}
		res, err := routingalgorithm.ShortestPath(nodes[0], nodes[3], nodes, edges, unitCost)
		assert.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "D"}, res.PathIDs())
		assert.Equal(t, 2.0, res.Cost)

		edges[0], edges[1] = edges[1], edges[0]
		res, err = routingalgorithm.ShortestPath(nodes[0], nodes[3], nodes, edges, unitCost)
		assert.NoError(t, err)
		assert.Equal(t, []string{"A", "C", "D"}, res.PathIDs())
	})

	t.Run("bad graph", func(t *testing.T) {
		nodes := []datastructure.City{{ID: "A"}}
		edges := []datastructure.Edge{datastructure.NewEdge("A", "Q")}
		_, err := routingalgorithm.ShortestPath(nodes[0], nodes[0], nodes, edges, unitCost)
		assert.ErrorIs(t, err, datastructure.ErrCityNotFound)
	})
}

func TestSubsidyStrategy(t *testing.T) {
	rt := minnesota()

	res, err := rt.Route("Minneapolis", "Northfield", costfunction.StrategySubsidy)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Minneapolis", "Eagan", "Rosemount", "Burnsville", "Lakeville", "Northfield"}, res.PathIDs())
	assert.InDelta(t, -80.785962, res.Cost, 1e-3)

	res, err = rt.Route("Minneapolis", "Shakopee", costfunction.StrategySubsidy)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Minneapolis", "Bloomington", "Shakopee"}, res.PathIDs())
	assert.InDelta(t, 13.265668, res.Cost, 1e-3)
}

func TestValidatePath(t *testing.T) {
	rt := minnesota()
	g := rt.Graph()
	city := func(id string) datastructure.City {
		c, _ := g.City(id)
		return c
	}

	assert.NoError(t, rt.ValidatePath([]datastructure.City{city("Minneapolis"), city("St Paul")}))
	assert.ErrorIs(t, rt.ValidatePath(nil), routingalgorithm.ErrInvalidPath)
	assert.ErrorIs(t, rt.ValidatePath([]datastructure.City{city("Minneapolis"), city("Northfield")}), routingalgorithm.ErrInvalidPath)
	assert.ErrorIs(t, rt.ValidatePath([]datastructure.City{{ID: "Duluth"}}), datastructure.ErrCityNotFound)
}
