package guidance

import "math"

// turnDelta selisih heading sekarang dengan heading sebelumnya, dinormalisasi ke (-180, 180]. Positif berarti belok kanan.
func turnDelta(prevHeading, heading float64) float64 {
	delta := math.Mod(heading-prevHeading, 360)
	if delta > 180 {
		delta -= 360
	} else if delta <= -180 {
		delta += 360
	}
	return delta
}

func getTurnDirection(prevHeading, heading float64) int {
	delta := turnDelta(prevHeading, heading)
	absDelta := math.Abs(delta)
	if absDelta < 12 {
		return CONTINUE_ON_STREET
	} else if absDelta < 40 {
		if delta < 0 {
			return TURN_SLIGHT_LEFT
		}
		return TURN_SLIGHT_RIGHT
	} else if absDelta < 105 {
		if delta < 0 {
			return TURN_LEFT
		}
		return TURN_RIGHT
	} else if absDelta < 170 {
		if delta < 0 {
			return TURN_SHARP_LEFT
		}
		return TURN_SHARP_RIGHT
	} else if delta < 0 {
		return U_TURN_LEFT
	}
	return U_TURN_RIGHT
}
