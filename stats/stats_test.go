package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want float64
	}{
		{name: "simple", data: []float64{10, 20, 70}, want: 100.0 / 3},
		{name: "single value", data: []float64{42}, want: 42},
		{name: "skips NaN holes", data: []float64{10, math.NaN(), 20}, want: 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Mean(tt.data), 1e-9)
		})
	}
}

func TestMeanUndefined(t *testing.T) {
	assert.True(t, math.IsNaN(Mean(nil)))
	assert.True(t, math.IsNaN(Mean([]float64{math.NaN(), math.NaN()})))
}

func TestStd(t *testing.T) {
	// sample convention: n-1 denominator
	assert.InDelta(t, 32.1455, Std([]float64{10, 20, 70}), 1e-3)
	assert.InDelta(t, 32.1455, Std([]float64{10, math.NaN(), 20, 70}), 1e-3)
}

func TestStdUndefined(t *testing.T) {
	assert.True(t, math.IsNaN(Std(nil)), "empty input")
	assert.True(t, math.IsNaN(Std([]float64{5})), "single value has no sample SD")
	assert.True(t, math.IsNaN(Std([]float64{5, math.NaN()})), "one defined value")
}
