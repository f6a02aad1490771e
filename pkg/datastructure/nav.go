package datastructure

import "math"

// Coordinate planar position of a city on the map grid.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewCoordinate(x, y float64) Coordinate {
	return Coordinate{
		X: x,
		Y: y,
	}
}

// DistanceTo euclidean distance antara 2 coordinate.
func (c Coordinate) DistanceTo(o Coordinate) float64 {
	return math.Hypot(c.X-o.X, c.Y-o.Y)
}
