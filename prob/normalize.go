package prob

import "github.com/cwbudde/algo-vecmath"

// SafeNormalize replaces x with x/sum(x) in place, preserving relative
// proportions. When the sum is not positive (for a nonnegative input
// that means every entry is zero and the vector carries no information)
// every entry is set to 1/n instead, so the result is always a valid
// probability vector. An empty vector is left as is.
func SafeNormalize(x []float64) {
	n := len(x)
	if n == 0 {
		return
	}

	sum := vecmath.Sum(x)
	if sum <= 0 {
		u := 1 / float64(n)
		for i := range x {
			x[i] = u
		}

		return
	}

	vecmath.ScaleBlockInPlace(x, 1/sum)
}
