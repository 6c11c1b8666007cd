// Package testutil provides deterministic input generators and
// comparison helpers shared by the package tests.
package testutil

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// RandomVector generates a vector with entries uniform in [-1, 1],
// reproducible for a fixed seed.
func RandomVector(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}

// RandomMatrix generates an r-by-c matrix with entries uniform in [-1, 1],
// reproducible for a fixed seed.
func RandomMatrix(seed int64, r, c int) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	return mat.NewDense(r, c, data)
}

// LowerFactor generates a random n-by-n lower-triangular matrix with
// strictly positive diagonal, i.e. a valid Cholesky factor. The
// diagonal is kept in [0.5, 1.5] so the factor stays well conditioned.
func LowerFactor(seed int64, n int) *mat.TriDense {
	rng := rand.New(rand.NewSource(seed))
	l := mat.NewTriDense(n, mat.Lower, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			l.SetTri(i, j, rng.Float64()*2-1)
		}
		l.SetTri(i, i, rng.Float64()+0.5)
	}
	return l
}

// Constant returns a slice of length n filled with v.
func Constant(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return Constant(1.0, n)
}
