package experiment_test

import (
	"testing"

	"lintang/ridecost/pkg/dataset"
	"lintang/ridecost/pkg/datastructure"
	"lintang/ridecost/pkg/engine/experiment"
	"lintang/ridecost/pkg/engine/routingalgorithm"

	"github.com/stretchr/testify/assert"
)

func newRouting() *routingalgorithm.RouteAlgorithm {
	return routingalgorithm.NewRouteAlgorithm(dataset.Minnesota())
}

func TestDefaultScenario(t *testing.T) {
	report, err := experiment.Run(newRouting(), experiment.DefaultScenario)
	assert.NoError(t, err)

	regular := []string{"Minneapolis", "Bloomington", "Shakopee"}
	assert.Equal(t, regular, report.Regular.PathIDs())
	assert.InDelta(t, 13.265668, report.Regular.Cost, 1e-3)

	// dijkstra tidak pernah sampai ke edge subsidy
	assert.Equal(t, regular, report.Subsidized.PathIDs())
	assert.InDelta(t, 13.265668, report.Subsidized.Cost, 1e-3)
	assert.True(t, report.SameAsRegular())
	assert.False(t, report.UsesSubsidy(report.Subsidized.Path))

	assert.Equal(t, []string{"Minneapolis", "Eagan", "Rosemount", "Burnsville", "Lakeville",
		"Northfield", "Lonsdale", "New Prague", "Shakopee"}, report.Witness.PathIDs())
	assert.InDelta(t, -64.9681, report.Witness.Cost, 1e-3)
	assert.True(t, report.UsesSubsidy(report.Witness.Path))
	assert.True(t, report.Missed())
	assert.NoError(t, newRouting().ValidatePath(report.Witness.Path))
}

func TestNorthfieldSubsidy(t *testing.T) {
	rt := newRouting()

	t.Run("lonsdale is found", func(t *testing.T) {
		report, err := experiment.RunNorthfieldSubsidy(rt, "Minneapolis", "Lonsdale")
		assert.NoError(t, err)
		want := []string{"Minneapolis", "Eagan", "Rosemount", "Burnsville", "Lakeville", "Northfield", "Lonsdale"}
		assert.Equal(t, want, report.Regular.PathIDs())
		assert.InDelta(t, 23.2790, report.Regular.Cost, 1e-3)
		assert.Equal(t, want, report.Subsidized.PathIDs())
		assert.InDelta(t, -78.8136, report.Subsidized.Cost, 1e-3)
		assert.Equal(t, report.Subsidized.PathIDs(), report.Witness.PathIDs())
		assert.False(t, report.Missed())
	})

	t.Run("northfield", func(t *testing.T) {
		report, err := experiment.RunNorthfieldSubsidy(rt, "Minneapolis", "Northfield")
		assert.NoError(t, err)
		assert.InDelta(t, -80.785962, report.Subsidized.Cost, 1e-3)
		assert.True(t, report.UsesSubsidy(report.Subsidized.Path))
		assert.False(t, report.Missed())
	})

	t.Run("witness never loops through the subsidy", func(t *testing.T) {
		queries := [][2]string{
			{"Northfield", "Lonsdale"},
			{"Northfield", "Minneapolis"},
			{"Minneapolis", "Lakeville"},
		}
		for _, q := range queries {
			report, err := experiment.RunNorthfieldSubsidy(rt, q[0], q[1])
			assert.NoError(t, err)
			assert.False(t, report.Witness.Found(), "%s -> %s", q[0], q[1])
			assert.True(t, report.Subsidized.Found())
			assert.False(t, report.Missed(), "%s -> %s", q[0], q[1])
		}
	})

	t.Run("witness visits each city once", func(t *testing.T) {
		g := rt.Graph()
		for _, from := range g.Cities() {
			for _, to := range g.Cities() {
				report, err := experiment.RunNorthfieldSubsidy(rt, from.ID, to.ID)
				assert.NoError(t, err)
				seen := map[string]bool{}
				for _, id := range report.Witness.PathIDs() {
					assert.False(t, seen[id], "%s -> %s repeats %s", from.ID, to.ID, id)
					seen[id] = true
				}
			}
		}
	})

	t.Run("unknown city", func(t *testing.T) {
		_, err := experiment.RunNorthfieldSubsidy(rt, "Duluth", "Lonsdale")
		assert.ErrorIs(t, err, datastructure.ErrCityNotFound)
	})

	t.Run("subsidy edge must exist", func(t *testing.T) {
		sc := experiment.Scenario{Start: "Minneapolis", Target: "Shakopee", SubsidyFrom: "Minneapolis",
			SubsidyTo: "Northfield", SubsidyAmount: -100}
		_, err := experiment.Run(rt, sc)
		assert.ErrorIs(t, err, routingalgorithm.ErrInvalidPath)
	})
}
