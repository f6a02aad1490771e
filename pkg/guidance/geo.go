package guidance

import (
	"math"

	"lintang/ridecost/pkg/datastructure"
)

func radToDeg(r float64) float64 {
	return 180.0 * r / math.Pi
}

/*
Heading. azimuth edge (from,to) di bidang datar dalam derajat [0, 360).
0 = utara (sumbu y positif), 90 = timur (sumbu x positif).
*/
func Heading(from, to datastructure.Coordinate) float64 {
	deg := radToDeg(math.Atan2(to.X-from.X, to.Y-from.Y))
	if deg < 0 {
		deg += 360
	}
	return deg
}
