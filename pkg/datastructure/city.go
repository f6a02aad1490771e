package datastructure

import "fmt"

type Region string

const (
	RegionUrban    Region = "urban"
	RegionSuburban Region = "suburban"
	RegionRural    Region = "rural"
)

func (r Region) Valid() bool {
	switch r {
	case RegionUrban, RegionSuburban, RegionRural:
		return true
	}
	return false
}

type Weather string

const (
	WeatherClear Weather = "clear"
	WeatherRain  Weather = "rain"
	WeatherSnow  Weather = "snow"
	WeatherStorm Weather = "storm"
)

// Multiplier safety multiplier for driving in this weather. Unknown weather counts as clear.
func (w Weather) Multiplier() float64 {
	switch w {
	case WeatherRain:
		return 2.0
	case WeatherSnow:
		return 3.5
	case WeatherStorm:
		return 5.0
	default:
		return 1.0
	}
}

func (w Weather) Valid() bool {
	switch w {
	case WeatherClear, WeatherRain, WeatherSnow, WeatherStorm:
		return true
	}
	return false
}

// City node di road network. Dua city dianggap sama kalau ID nya sama, attribute lain tidak dipakai untuk identity.
type City struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	X           float64 `json:"x" yaml:"x"`
	Y           float64 `json:"y" yaml:"y"`
	Region      Region  `json:"region" yaml:"region"`
	Traffic     float64 `json:"traffic_level" yaml:"traffic_level"`
	Parking     float64 `json:"parking_cost" yaml:"parking_cost"`
	Maintenance float64 `json:"maintenance_factor" yaml:"maintenance_factor"`
	Platform    float64 `json:"platform_cost" yaml:"platform_cost"`
	Fuel        float64 `json:"fuel_cost_per_mile" yaml:"fuel_cost_per_mile"`
	Weather     Weather `json:"weather" yaml:"weather"`
}

func (c City) Key() string {
	return c.ID
}

func (c City) Coordinate() Coordinate {
	return NewCoordinate(c.X, c.Y)
}

func (c City) IsRural() bool {
	return c.Region == RegionRural
}

// SameAs identity comparison by ID.
func (c City) SameAs(o City) bool {
	return c.ID == o.ID
}

func (c City) String() string {
	if c.Name != "" && c.Name != c.ID {
		return fmt.Sprintf("%s (%s)", c.Name, c.ID)
	}
	return c.ID
}

// Distance euclidean distance antara 2 city. Symmetric.
func Distance(a, b City) float64 {
	return a.Coordinate().DistanceTo(b.Coordinate())
}
