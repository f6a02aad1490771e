package guidance

import (
	"fmt"

	"lintang/ridecost/pkg/datastructure"
)

const (
	U_TURN_LEFT        = -8
	TURN_SHARP_LEFT    = -3
	TURN_LEFT          = -2
	TURN_SLIGHT_LEFT   = -1
	CONTINUE_ON_STREET = 0
	TURN_SLIGHT_RIGHT  = 1
	TURN_RIGHT         = 2
	TURN_SHARP_RIGHT   = 3
	FINISH             = 4
	U_TURN_RIGHT       = 8
	START              = 101
)

// Instruction satu maneuver di city Point menuju city Name.
type Instruction struct {
	Point   datastructure.Coordinate
	Sign    int
	Name    string
	Heading float64
}

func NewInstruction(sign int, name string, p datastructure.Coordinate, heading float64) Instruction {
	return Instruction{
		Sign:    sign,
		Name:    name,
		Point:   p,
		Heading: heading,
	}
}

func (instr *Instruction) GetTurnDescription() string {
	switch instr.Sign {
	case START:
		return fmt.Sprintf("Head %s toward %s", azimuthToCompass(instr.Heading), instr.Name)
	case FINISH:
		return fmt.Sprintf("You have arrived at %s", instr.Name)
	case CONTINUE_ON_STREET:
		return fmt.Sprintf("Continue toward %s", instr.Name)
	default:
		dir := getDirectionDescription(instr.Sign)
		if dir == "" {
			return fmt.Sprintf("unknown %d", instr.Sign)
		}
		return fmt.Sprintf("%s toward %s", dir, instr.Name)
	}
}

func azimuthToCompass(azimuth float64) string {
	if azimuth < 22.5 {
		return "North"
	} else if azimuth < 67.5 {
		return "North East"
	} else if azimuth < 112.5 {
		return "East"
	} else if azimuth < 157.5 {
		return "South East"
	} else if azimuth < 202.5 {
		return "South"
	} else if azimuth < 247.5 {
		return "South West"
	} else if azimuth < 292.5 {
		return "West"
	} else if azimuth < 337.5 {
		return "North West"
	}
	return "North"
}

func getDirectionDescription(sign int) string {
	switch sign {
	case U_TURN_RIGHT:
		return "Make U-turn right"
	case U_TURN_LEFT:
		return "Make U-turn left"
	case TURN_SHARP_LEFT:
		return "Turn sharp left"
	case TURN_LEFT:
		return "Turn left"
	case TURN_SLIGHT_LEFT:
		return "Turn slight left"
	case TURN_SLIGHT_RIGHT:
		return "Turn slight right"
	case TURN_RIGHT:
		return "Turn right"
	case TURN_SHARP_RIGHT:
		return "Turn sharp right"
	}
	return ""
}
