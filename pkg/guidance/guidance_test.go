package guidance

import (
	"testing"

	"lintang/ridecost/pkg/costfunction"
	"lintang/ridecost/pkg/dataset"
	"lintang/ridecost/pkg/datastructure"

	"github.com/stretchr/testify/assert"
)

func pathOf(t *testing.T, ids ...string) []datastructure.City {
	t.Helper()
	g := dataset.Minnesota()
	path := make([]datastructure.City, 0, len(ids))
	for _, id := range ids {
		c, ok := g.City(id)
		if !ok {
			t.Fatalf("city %q not in dataset", id)
		}
		path = append(path, c)
	}
	return path
}

func TestHeading(t *testing.T) {
	origin := datastructure.NewCoordinate(0, 0)
	assert.InDelta(t, 0.0, Heading(origin, datastructure.NewCoordinate(0, 5)), 1e-9)
	assert.InDelta(t, 90.0, Heading(origin, datastructure.NewCoordinate(5, 0)), 1e-9)
	assert.InDelta(t, 180.0, Heading(origin, datastructure.NewCoordinate(0, -5)), 1e-9)
	assert.InDelta(t, 270.0, Heading(origin, datastructure.NewCoordinate(-5, 0)), 1e-9)
	assert.InDelta(t, 45.0, Heading(origin, datastructure.NewCoordinate(3, 3)), 1e-9)
}

func TestGetTurnDirection(t *testing.T) {
	tests := []struct {
		name    string
		prev    float64
		heading float64
		want    int
	}{
		{"straight", 90, 95, CONTINUE_ON_STREET},
		{"slight right", 0, 30, TURN_SLIGHT_RIGHT},
		{"slight left across north", 10, 340, TURN_SLIGHT_LEFT},
		{"right", 0, 90, TURN_RIGHT},
		{"left", 180, 90, TURN_LEFT},
		{"sharp right", 0, 150, TURN_SHARP_RIGHT},
		{"sharp left", 0, 210, TURN_SHARP_LEFT},
		{"u-turn", 0, 180, U_TURN_RIGHT},
		{"u-turn left", 0, 185, U_TURN_LEFT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getTurnDirection(tt.prev, tt.heading))
		})
	}
}

func TestGetDrivingInstructions(t *testing.T) {
	t.Run("bloomington to shakopee", func(t *testing.T) {
		instructions := GetDrivingInstructions(pathOf(t, "Minneapolis", "Bloomington", "Shakopee"))
		assert.Len(t, instructions, 3)
		assert.Equal(t, "Head South toward Bloomington", instructions[0].Instruction)
		assert.Equal(t, "Minneapolis", instructions[0].City)
		assert.Equal(t, 8.25, instructions[0].Distance)
		assert.Equal(t, "Turn right toward Shakopee", instructions[1].Instruction)
		assert.Equal(t, "You have arrived at Shakopee", instructions[2].Instruction)
		assert.Equal(t, "Shakopee", instructions[2].City)
	})

	t.Run("too short", func(t *testing.T) {
		assert.Empty(t, GetDrivingInstructions(pathOf(t, "Edina")))
		assert.Empty(t, GetDrivingInstructions(nil))
	})
}

func TestNewItinerary(t *testing.T) {
	t.Run("company legs add up", func(t *testing.T) {
		path := pathOf(t, "Minneapolis", "Bloomington", "Shakopee")
		it, err := NewItinerary(path, costfunction.StrategyCompany)
		assert.NoError(t, err)
		assert.Len(t, it.Legs, 2)
		assert.InDelta(t, 22.737553, it.TotalCost, 1e-3)
		assert.Equal(t, datastructure.RenderPath(path), it.Polyline)
		assert.Equal(t, "Minneapolis", it.Legs[0].From)
		assert.Equal(t, "Bloomington", it.Legs[0].To)
		assert.InDelta(t, 8.246211, it.Legs[0].Distance, 1e-6)
		assert.False(t, it.Legs[0].LongDrive)
	})

	t.Run("fatigue carries previous leg", func(t *testing.T) {
		path := pathOf(t, "Minneapolis", "Roseville", "St Paul", "Woodbury", "Stillwater")
		it, err := NewItinerary(path, costfunction.StrategyFatigue)
		assert.NoError(t, err)
		assert.InDelta(t, 39.235273, it.TotalCost, 1e-3)
		assert.InDelta(t, costfunction.HistoryPathCost(path, costfunction.FatigueCost), it.TotalCost, 1e-9)
	})

	t.Run("worst weather on the leg", func(t *testing.T) {
		it, err := NewItinerary(pathOf(t, "Blaine", "Forest Lake"), costfunction.StrategyWeather)
		assert.NoError(t, err)
		assert.Equal(t, datastructure.WeatherSnow, it.Legs[0].Weather)
		assert.True(t, it.Legs[0].LongDrive)
		assert.Equal(t, 1, it.LongDrives)
		assert.InDelta(t, 34.16, it.TotalCost, 1e-9)
	})

	t.Run("single city", func(t *testing.T) {
		it, err := NewItinerary(pathOf(t, "Edina"), costfunction.StrategyDriver)
		assert.NoError(t, err)
		assert.Empty(t, it.Legs)
		assert.Empty(t, it.Instructions)
		assert.Equal(t, 0.0, it.TotalCost)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, err := NewItinerary(pathOf(t, "Edina", "Minneapolis"), costfunction.Strategy(99))
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})
}
