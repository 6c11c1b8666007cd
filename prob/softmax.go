package prob

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// ErrEmptyVector is returned when an input vector has no entries.
var ErrEmptyVector = errors.New("prob: empty vector")

// Softmax returns y with y[i] = exp(x[i]) / sum(exp(x)). The maximum
// entry is subtracted before exponentiating, so the largest term is
// exp(0) = 1: large positive entries cannot overflow and the dominant
// term cannot underflow to zero. The entries of y sum to 1 and each
// lies in [0, 1]. x is not modified.
func Softmax(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyVector
	}

	y := make([]float64, len(x))
	shift := floats.Max(x)
	for i, v := range x {
		y[i] = math.Exp(v - shift)
	}

	vecmath.ScaleBlockInPlace(y, 1/vecmath.Sum(y))

	return y, nil
}
