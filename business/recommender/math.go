// business/recommender/math.go
package recommender

import "math"

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func norm(a []float64) float64 {
	return math.Sqrt(dot(a, a))
}

// cosine is defined as 0 when either vector has zero magnitude,
// so a zero preference vector scores everything at 0 instead of NaN.
func cosine(a, b []float64) float64 {
	na := norm(a)
	nb := norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	return dot(a, b) / (na * nb)
}
