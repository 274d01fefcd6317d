package services

import "math"

// Cosine calculates the cosine similarity between two vectors of the
// same length: their dot product divided by the product of their
// magnitudes. Returns a value between -1 and 1, where 1 means
// identical direction. Mismatched or empty inputs return 0; callers
// that care about dimension agreement must check it beforehand.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
