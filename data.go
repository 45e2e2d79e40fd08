package main

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

const FeatureSize = 2

// makeMoons builds the two interleaved half-moons dataset: n points with
// FeatureSize coordinates each, packed into one n x FeatureSize tensor,
// plus a ±1 label per point.
func makeMoons(n int, noise float64, seed int64) (tensor.Tensor, []float64) {
	rng := rand.New(rand.NewSource(seed))
	backing := make([]float64, n*FeatureSize)
	labels := make([]float64, n)

	for i := 0; i < n; i++ {
		angle := rng.Float64() * math.Pi
		var x, y, label float64
		if i%2 == 0 {
			x = math.Cos(angle)
			y = math.Sin(angle)
			label = 1
		} else {
			x = 1 - math.Cos(angle)
			y = 0.5 - math.Sin(angle)
			label = -1
		}
		backing[i*FeatureSize] = x + rng.NormFloat64()*noise
		backing[i*FeatureSize+1] = y + rng.NormFloat64()*noise
		labels[i] = label
	}

	t := tensor.New(tensor.Of(tensor.Float64), tensor.WithShape(n, FeatureSize), tensor.WithBacking(backing))
	return t, labels
}

// sampleVec extracts row i of the dataset as a gonum vector.
func sampleVec(t tensor.Tensor, i int) *mat.VecDense {
	v := mat.NewVecDense(FeatureSize, nil)
	for j := 0; j < FeatureSize; j++ {
		x, err := t.At(i, j)
		if err != nil {
			panic(err)
		}
		v.SetVec(j, x.(float64))
	}
	return v
}
