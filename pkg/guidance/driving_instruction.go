package guidance

import (
	"errors"

	"lintang/ridecost/pkg/costfunction"
	"lintang/ridecost/pkg/datastructure"
	"lintang/ridecost/pkg/util"
)

var ErrUnknownStrategy = errors.New("guidance: no cost function for strategy")

// Leg satu edge di route beserta cost nya.
type Leg struct {
	From      string                `json:"from"`
	To        string                `json:"to"`
	Distance  float64               `json:"distance"`
	Cost      float64               `json:"cost"`
	LongDrive bool                  `json:"long_drive"`
	Weather   datastructure.Weather `json:"weather"`
}

type DrivingInstruction struct {
	Instruction string                   `json:"instruction"`
	Point       datastructure.Coordinate `json:"point"`
	City        string                   `json:"city"`
	Distance    float64                  `json:"distance"`
}

type Itinerary struct {
	Legs          []Leg                `json:"legs"`
	Instructions  []DrivingInstruction `json:"navigations"`
	Polyline      string               `json:"polyline"`
	TotalDistance float64              `json:"total_distance"`
	TotalCost     float64              `json:"total_cost"`
	LongDrives    int                  `json:"long_drives"`
}

// worstWeather weather dengan multiplier terbesar di antara 2 city.
func worstWeather(a, b datastructure.City) datastructure.Weather {
	if b.Weather.Multiplier() > a.Weather.Multiplier() {
		return b.Weather
	}
	if a.Weather == "" {
		return datastructure.WeatherClear
	}
	return a.Weather
}

// BuildLegs breakdown route per edge. Cost fatigue dihitung dengan membawa flag long drive dari leg sebelumnya.
func BuildLegs(path []datastructure.City, strategy costfunction.Strategy) ([]Leg, error) {
	costFn := strategy.CostFunc()
	historyCostFn := strategy.HistoryCostFunc()
	if costFn == nil && historyCostFn == nil {
		return nil, ErrUnknownStrategy
	}

	legs := make([]Leg, 0, len(path))
	prevWasLong := false
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]
		var cost float64
		if historyCostFn != nil {
			cost = historyCostFn(from, to, prevWasLong)
		} else {
			cost = costFn(from, to)
		}
		long := costfunction.IsLongDrive(from, to)
		legs = append(legs, Leg{
			From:      from.ID,
			To:        to.ID,
			Distance:  datastructure.Distance(from, to),
			Cost:      cost,
			LongDrive: long,
			Weather:   worstWeather(from, to),
		})
		prevWasLong = long
	}
	return legs, nil
}

// GetDrivingInstructions instruksi belok di setiap city sepanjang path.
func GetDrivingInstructions(path []datastructure.City) []DrivingInstruction {
	if len(path) < 2 {
		return []DrivingInstruction{}
	}

	instructions := make([]DrivingInstruction, 0, len(path))
	prevHeading := 0.0
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]
		heading := Heading(from.Coordinate(), to.Coordinate())
		sign := START
		if i > 0 {
			sign = getTurnDirection(prevHeading, heading)
		}
		instr := NewInstruction(sign, to.Name, from.Coordinate(), heading)
		instructions = append(instructions, DrivingInstruction{
			Instruction: instr.GetTurnDescription(),
			Point:       from.Coordinate(),
			City:        from.ID,
			Distance:    util.RoundFloat(datastructure.Distance(from, to), 2),
		})
		prevHeading = heading
	}

	last := path[len(path)-1]
	finish := NewInstruction(FINISH, last.Name, last.Coordinate(), prevHeading)
	instructions = append(instructions, DrivingInstruction{
		Instruction: finish.GetTurnDescription(),
		Point:       last.Coordinate(),
		City:        last.ID,
	})
	return instructions
}

func NewItinerary(path []datastructure.City, strategy costfunction.Strategy) (Itinerary, error) {
	legs, err := BuildLegs(path, strategy)
	if err != nil {
		return Itinerary{}, err
	}

	it := Itinerary{
		Legs:         legs,
		Instructions: GetDrivingInstructions(path),
		Polyline:     datastructure.RenderPath(path),
	}
	for _, l := range legs {
		it.TotalDistance += l.Distance
		it.TotalCost += l.Cost
		if l.LongDrive {
			it.LongDrives++
		}
	}
	return it, nil
}
