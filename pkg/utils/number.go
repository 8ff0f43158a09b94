package utils

import "math"

// RoundWithOneDecimalPlace arredonda para uma casa decimal (média de posições)
func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}
