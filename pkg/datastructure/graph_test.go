package datastructure_test

import (
	"errors"
	"math"
	"testing"

	"lintang/ridecost/pkg/dataset"
	"lintang/ridecost/pkg/datastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-polyline"
)

func TestNewGraph(t *testing.T) {
	cities := []datastructure.City{{ID: "A"}, {ID: "B", X: 3, Y: 4}}

	t.Run("duplicate city id", func(t *testing.T) {
		_, err := datastructure.NewGraph(append(cities, datastructure.City{ID: "A"}), nil)
		assert.True(t, errors.Is(err, datastructure.ErrDuplicateCity))
	})

	t.Run("edge to unknown city", func(t *testing.T) {
		_, err := datastructure.NewGraph(cities, []datastructure.Edge{{U: "A", V: "Z"}})
		assert.True(t, errors.Is(err, datastructure.ErrCityNotFound))
	})

	t.Run("city lookup by id", func(t *testing.T) {
		g, err := datastructure.NewGraph(cities, []datastructure.Edge{{U: "A", V: "B"}})
		require.NoError(t, err)

		b, ok := g.City("B")
		assert.True(t, ok)
		assert.Equal(t, 3.0, b.X)
		_, ok = g.City("Z")
		assert.False(t, ok)
		assert.True(t, g.HasEdge("A", "B"))
		assert.True(t, g.HasEdge("B", "A"))
	})
}

func TestGraphNeighborsMatchEdgeScan(t *testing.T) {
	g := dataset.Minnesota()

	t.Run("minneapolis neighbors in edge order", func(t *testing.T) {
		got := datastructure.PathIDs(g.Neighbors("Minneapolis"))
		assert.Equal(t, []string{"Maple Grove", "St Paul", "Edina", "Roseville", "Bloomington", "Eagan", "Anoka"}, got)
	})

	t.Run("indexed neighbors equal the edge list scan for every city", func(t *testing.T) {
		for _, c := range g.Cities() {
			assert.Equal(t, datastructure.Neighbors(c.ID, g.Edges()), datastructure.PathIDs(g.Neighbors(c.ID)), c.ID)
		}
	})
}

func TestDistance(t *testing.T) {
	a := datastructure.City{ID: "A", X: 0, Y: 0}
	b := datastructure.City{ID: "B", X: 3, Y: 4}

	assert.Equal(t, 5.0, datastructure.Distance(a, b))
	assert.Equal(t, datastructure.Distance(b, a), datastructure.Distance(a, b))
	assert.Equal(t, 0.0, datastructure.Distance(a, a))

	g := dataset.Minnesota()
	mpls, _ := g.City("Minneapolis")
	edina, _ := g.City("Edina")
	assert.InDelta(t, math.Sqrt(52), datastructure.Distance(mpls, edina), 1e-9)
}

func TestCityIdentity(t *testing.T) {
	a := datastructure.City{ID: "Northfield", Traffic: 0.7}
	b := datastructure.City{ID: "Northfield", Traffic: 9.9}
	assert.True(t, a.SameAs(b))
	assert.Equal(t, a.Key(), b.Key())
}

func TestRenderPath(t *testing.T) {
	path := []datastructure.City{{ID: "A", X: 0, Y: 0}, {ID: "B", X: -2, Y: -8}, {ID: "C", X: -8, Y: -10}}
	encoded := datastructure.RenderPath(path)

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0}, {-2, -8}, {-8, -10}}, coords)
}
