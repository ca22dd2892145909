package errors

import (
	"math"
)

// CheckNumericalStability checks if values contain NaN or Inf
// and returns an error if numerical instability is detected.
func CheckNumericalStability(operation string, values []float64, iteration int) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNumericalInstabilityError(operation, values, iteration)
		}
	}
	return nil
}

// CheckVector checks every component of a vector for numerical instability.
func CheckVector(operation string, vector interface {
	Len() int
	AtVec(int) float64
}, iteration int) error {
	values := make([]float64, vector.Len())
	for i := range values {
		values[i] = vector.AtVec(i)
	}
	return CheckNumericalStability(operation, values, iteration)
}
