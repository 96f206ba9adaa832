package stats

import "math"

// Mean returns the arithmetic mean of the defined values. Unusable cells
// travel through the pipeline as NaN and are skipped here, the way the
// measurement sheets leave holes. Returns NaN when nothing is defined.
func Mean(data []float64) float64 {
	sum, n := 0.0, 0
	for _, v := range data {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// Std returns the sample standard deviation (n-1 denominator) of the
// defined values. Returns NaN when fewer than two are defined.
func Std(data []float64) float64 {
	m := Mean(data)
	if math.IsNaN(m) {
		return math.NaN()
	}
	sumSq, n := 0.0, 0
	for _, v := range data {
		if math.IsNaN(v) {
			continue
		}
		d := v - m
		sumSq += d * d
		n++
	}
	if n <= 1 {
		return math.NaN()
	}
	return math.Sqrt(sumSq / float64(n-1))
}
