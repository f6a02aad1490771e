package routingalgorithm_test

import (
	"math"
	"testing"

	"lintang/ridecost/pkg/costfunction"
	"lintang/ridecost/pkg/datastructure"
	"lintang/ridecost/pkg/engine/routingalgorithm"

	"github.com/stretchr/testify/assert"
)

func TestShortestPathWithFatigue(t *testing.T) {
	rt := minnesota()

	tests := []struct {
		name     string
		start    string
		target   string
		wantPath []string
		wantCost float64
	}{
		{"northfield", "Minneapolis", "Northfield",
			[]string{"Minneapolis", "Bloomington", "Shakopee", "New Prague", "Lonsdale", "Northfield"}, 38.824973},
		{"stillwater avoids back to back long drives", "Minneapolis", "Stillwater",
			[]string{"Minneapolis", "Roseville", "St Paul", "Woodbury", "Stillwater"}, 39.235273},
		{"hastings", "Minneapolis", "Hastings",
			[]string{"Minneapolis", "Roseville", "St Paul", "Woodbury", "Cottage Grove", "Hastings"}, 45.217327},
		{"edina to forest lake", "Edina", "Forest Lake",
			[]string{"Edina", "Minneapolis", "Anoka", "Forest Lake"}, 55.8542},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := rt.ShortestPathWithFatigue(tt.start, tt.target)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantPath, res.PathIDs())
			assert.InDelta(t, tt.wantCost, res.Cost, 1e-3)
			assert.InDelta(t, costfunction.HistoryPathCost(res.Path, costfunction.FatigueCost), res.Cost, 1e-9)

			viaRoute, err := rt.Route(tt.start, tt.target, costfunction.StrategyFatigue)
			assert.NoError(t, err)
			assert.Equal(t, res, viaRoute)
		})
	}

	t.Run("start equals target", func(t *testing.T) {
		res, err := rt.ShortestPathWithFatigue("Edina", "Edina")
		assert.NoError(t, err)
		assert.Equal(t, []string{"Edina"}, res.PathIDs())
		assert.Equal(t, 0.0, res.Cost)
	})

	t.Run("unknown city", func(t *testing.T) {
		_, err := rt.ShortestPathWithFatigue("Edina", "Duluth")
		assert.ErrorIs(t, err, datastructure.ErrCityNotFound)
	})

	t.Run("nil cost function", func(t *testing.T) {
		_, err := rt.ShortestPathWithHistory("Edina", "Anoka", nil)
		assert.ErrorIs(t, err, routingalgorithm.ErrUnimplemented)
	})
}

func TestFatigueNeverCheaperThanCompany(t *testing.T) {
	rt := minnesota()
	for _, from := range rt.Graph().Cities() {
		for _, to := range rt.Graph().Cities() {
			company, err := rt.ShortestPath(from.ID, to.ID, costfunction.Company)
			assert.NoError(t, err)
			fatigue, err := rt.ShortestPathWithFatigue(from.ID, to.ID)
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, fatigue.Cost, company.Cost-1e-9, "%s -> %s", from.ID, to.ID)

			// path dengan segment >= 10 selalu lebih mahal di fatigue
			path := company.Path
			long := false
			for i := 0; i+1 < len(path); i++ {
				long = long || costfunction.IsLongDrive(path[i], path[i+1])
			}
			companyCost := costfunction.PathCost(path, costfunction.Company)
			fatigueCost := costfunction.HistoryPathCost(path, costfunction.FatigueCost)
			if long {
				assert.GreaterOrEqual(t, fatigueCost, companyCost+costfunction.LongDrivePenalty-1e-9, "%s -> %s", from.ID, to.ID)
			} else {
				assert.InDelta(t, companyCost, fatigueCost, 1e-9)
			}
		}
	}
}

func TestShortestPathWithFatigueSmallGraph(t *testing.T) {
	// semua attribute 0, jadi cost edge cuma penalty fatigue
	nodes := []datastructure.City{
		{ID: "A", X: 0, Y: 0},
		{ID: "B", X: 10, Y: 0},
		{ID: "D", X: 20, Y: 0},
		{ID: "C", X: 0, Y: 10},
		{ID: "E", X: 0, Y: 15},
		{ID: "Z", X: 100, Y: 100},
	}
	edges := []datastructure.Edge{
		datastructure.NewEdge("A", "B"),
		datastructure.NewEdge("B", "D"),
		datastructure.NewEdge("A", "C"),
		datastructure.NewEdge("C", "E"),
		datastructure.NewEdge("E", "D"),
	}

	t.Run("short leg between long drives", func(t *testing.T) {
		// A-B-D: 15 + 65 = 80, A-C-E-D: 15 + 0 + 15 = 30
		res, err := routingalgorithm.ShortestPathWithFatigue(nodes[0], nodes[2], nodes, edges)
		assert.NoError(t, err)
		assert.Equal(t, []string{"A", "C", "E", "D"}, res.PathIDs())
		assert.Equal(t, 30.0, res.Cost)

		plain, err := routingalgorithm.ShortestPath(nodes[0], nodes[2], nodes, edges, costfunction.Company)
		assert.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "D"}, plain.PathIDs())
		assert.Equal(t, 0.0, plain.Cost)
	})

	t.Run("unreachable", func(t *testing.T) {
		res, err := routingalgorithm.ShortestPathWithFatigue(nodes[0], nodes[5], nodes, edges)
		assert.NoError(t, err)
		assert.False(t, res.Found())
		assert.True(t, math.IsInf(res.Cost, 1))
	})
}
