package costfunction

import (
	"math"

	"lintang/ridecost/pkg/datastructure"
)

// CostFunc weight edge (from, to) dari sudut pandang satu stakeholder. Harus pure, tidak boleh ubah city.
type CostFunc func(from, to datastructure.City) float64

// HistoryCostFunc cost function yang juga bergantung apakah edge sebelumnya long drive.
type HistoryCostFunc func(from, to datastructure.City, prevWasLong bool) float64

const (
	CompanyTrafficRate = 0.60
	MaintenanceRate    = 0.10

	RuralSubsidyAmount = 8.0
	MinimumFare        = 0.50

	LongDriveThreshold          = 10.0
	LongDrivePenalty            = 15.0
	ConsecutiveLongDrivePenalty = 50.0
)

func avg(a, b float64) float64 {
	return (a + b) / 2
}

// Company biaya operasional platform: rata-rata platform cost + distance * traffic * rate.
func Company(from, to datastructure.City) float64 {
	dist := datastructure.Distance(from, to)
	return avg(from.Platform, to.Platform) + dist*math.Max(from.Traffic, to.Traffic)*CompanyTrafficRate
}

// Driver biaya yang ditanggung driver: fuel, parking di tujuan, dan maintenance kendaraan.
func Driver(from, to datastructure.City) float64 {
	dist := datastructure.Distance(from, to)
	fuel := dist * avg(from.Fuel, to.Fuel) * math.Max(from.Traffic, to.Traffic)
	maintenance := dist * MaintenanceRate * avg(from.Maintenance, to.Maintenance)
	return fuel + to.Parking + maintenance
}

// RuralSubsidy kurangi base cost kalau tujuan rural, tidak pernah di bawah MinimumFare.
func RuralSubsidy(base float64, to datastructure.City, amount float64) float64 {
	if !to.IsRural() {
		return base
	}
	return math.Max(MinimumFare, base-amount)
}

func Fairness(from, to datastructure.City) float64 {
	return RuralSubsidy(Company(from, to), to, RuralSubsidyAmount)
}

// WeatherPenalty kalikan base cost dengan multiplier cuaca terburuk di kedua endpoint.
func WeatherPenalty(base float64, from, to datastructure.City) float64 {
	return base * math.Max(from.Weather.Multiplier(), to.Weather.Multiplier())
}

func WeatherSafety(from, to datastructure.City) float64 {
	return WeatherPenalty(Company(from, to), from, to)
}

func IsLongDrive(from, to datastructure.City) bool {
	return datastructure.Distance(from, to) >= LongDriveThreshold
}

// FatigueCost company cost + penalty long drive. Dua long drive berturut-turut kena penalty tambahan.
func FatigueCost(from, to datastructure.City, prevWasLong bool) float64 {
	cost := Company(from, to)
	if !IsLongDrive(from, to) {
		return cost
	}
	cost += LongDrivePenalty
	if prevWasLong {
		cost += ConsecutiveLongDrivePenalty
	}
	return cost
}

// NegativeSubsidy driver cost, kecuali edge subsidyFrom -> subsidyTo yang di-hardcode jadi amount (bisa negatif). Arahnya berpengaruh.
func NegativeSubsidy(subsidyFrom, subsidyTo string, amount float64) CostFunc {
	return func(from, to datastructure.City) float64 {
		if from.ID == subsidyFrom && to.ID == subsidyTo {
			return amount
		}
		return Driver(from, to)
	}
}

// PathCost jumlah cost tiap edge di path.
func PathCost(path []datastructure.City, costFn CostFunc) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		total += costFn(path[i], path[i+1])
	}
	return total
}

// HistoryPathCost sama seperti PathCost tapi bawa flag long drive antar edge.
func HistoryPathCost(path []datastructure.City, costFn HistoryCostFunc) float64 {
	total := 0.0
	prevWasLong := false
	for i := 0; i+1 < len(path); i++ {
		total += costFn(path[i], path[i+1], prevWasLong)
		prevWasLong = IsLongDrive(path[i], path[i+1])
	}
	return total
}
