package fu

import (
	"testing"

	"gotest.tools/assert"
)

func TestFloats(t *testing.T) {
	assert.Equal(t, Mean([]float64{2, 4}), 3.0)
	assert.Equal(t, Mse([]float64{1, 2}, []float64{1, 4}), 2.0)
	assert.Equal(t, Mae([]float64{1, 2}, []float64{3, 4}), 2.0)
	assert.Equal(t, Indmaxd([]float64{1, 3, 2}), 1)
	assert.Equal(t, Indmaxd([]float64{5, 5, 5}), 0)
	assert.Equal(t, Maxi(2, 3), 3)
	assert.Equal(t, Mini(2, 3), 2)
	assert.Equal(t, Fnzi(0, 0, 7), 7)
	assert.Equal(t, Fnzi(0), 0)
}
