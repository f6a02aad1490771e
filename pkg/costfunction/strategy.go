package costfunction

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownStrategy = errors.New("unknown cost strategy")

// Strategy stakeholder perspective yang dipakai buat weight edge.
type Strategy int

const (
	StrategyCompany Strategy = iota
	StrategyDriver
	StrategyFairness
	StrategyWeather
	StrategyFatigue
	StrategySubsidy
)

// subsidy edge default buat StrategySubsidy
const (
	SubsidyFrom   = "Lakeville"
	SubsidyTo     = "Northfield"
	SubsidyAmount = -100.0
)

var strategyNames = map[Strategy]string{
	StrategyCompany:  "company",
	StrategyDriver:   "driver",
	StrategyFairness: "fairness",
	StrategyWeather:  "weather",
	StrategyFatigue:  "fatigue",
	StrategySubsidy:  "subsidy",
}

func Strategies() []Strategy {
	return []Strategy{StrategyCompany, StrategyDriver, StrategyFairness, StrategyWeather, StrategyFatigue, StrategySubsidy}
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Stateful true kalau cost strategy butuh history (augmented state search).
func (s Strategy) Stateful() bool {
	return s == StrategyFatigue
}

// CostFunc return nil untuk strategy stateful atau strategy yang tidak dikenal.
func (s Strategy) CostFunc() CostFunc {
	switch s {
	case StrategyCompany:
		return Company
	case StrategyDriver:
		return Driver
	case StrategyFairness:
		return Fairness
	case StrategyWeather:
		return WeatherSafety
	case StrategySubsidy:
		return NegativeSubsidy(SubsidyFrom, SubsidyTo, SubsidyAmount)
	default:
		return nil
	}
}

// HistoryCostFunc return nil untuk strategy yang tidak stateful.
func (s Strategy) HistoryCostFunc() HistoryCostFunc {
	if s == StrategyFatigue {
		return FatigueCost
	}
	return nil
}
