package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine_IdenticalDirection(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float32{1, 0}, []float32{1, 0}), 1e-9)
	assert.InDelta(t, 1.0, Cosine([]float32{3, 4}, []float32{6, 8}), 1e-6)
}

func TestCosine_Orthogonal(t *testing.T) {
	assert.InDelta(t, 0.0, Cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
}

func TestCosine_Opposite(t *testing.T) {
	assert.InDelta(t, -1.0, Cosine([]float32{1, 0}, []float32{-1, 0}), 1e-6)
}

func TestCosine_FortyFiveDegrees(t *testing.T) {
	got := Cosine([]float32{1, 0}, []float32{0.7, 0.7})
	assert.InDelta(t, 1/math.Sqrt2, got, 1e-6)
}

func TestCosine_MagnitudeIndependent(t *testing.T) {
	a := []float32{0.2, 0.5, 0.1}
	scaled := []float32{2, 5, 1}
	assert.InDelta(t, 1.0, Cosine(a, scaled), 1e-6)
}

func TestCosine_DegenerateInputs(t *testing.T) {
	assert.Zero(t, Cosine(nil, nil))
	assert.Zero(t, Cosine([]float32{1, 2}, []float32{1}))
	assert.Zero(t, Cosine([]float32{0, 0}, []float32{1, 1}))
}
