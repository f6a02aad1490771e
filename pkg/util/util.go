package util

import (
	"math"
)

func RoundFloat(val float64, precision uint) float64 {
	if math.IsInf(val, 0) || math.IsNaN(val) {
		return val
	}
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

func ReverseG[T any](arr []T) {
	for i, j := 0, len(arr)-1; i < j; i, j = i+1, j-1 {
		arr[i], arr[j] = arr[j], arr[i]
	}
}
