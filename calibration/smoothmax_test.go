package calibration

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogSumExp(t *testing.T) {

	type test struct {
		t, n  float64
		delta float64
	}

	// the smooth maximum approaches max(t , 1-t) as the sharpness grows
	tests := map[string]test{
		"soft":    {t: 0.2, n: 5, delta: 0.2},
		"sharper": {t: 0.2, n: 50, delta: 0.01},
		"sharp":   {t: 0.2, n: 500, delta: 0.001},
		"edge":    {t: 0.0, n: 500, delta: 0.001},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v := LogSumExp(tt.t, tt.n)
			m := math.Max(tt.t, 1-tt.t)
			assert.InDelta(t, m, v, tt.delta)
			// the approximation comes from above
			assert.True(t, v >= m)
		})
	}

}

func TestLogSumExp_Converges(t *testing.T) {
	// for fixed t the approximation error shrinks with the sharpness
	tt := 0.3
	last := math.Inf(1)
	for _, n := range []float64{5, 50, 500} {
		err := LogSumExp(tt, n) - math.Max(tt, 1-tt)
		assert.True(t, err >= 0)
		assert.True(t, err < last)
		last = err
	}
}

func TestNewSmoothMax(t *testing.T) {

	sm := NewSmoothMax([]float64{5, 50, 500}, 0.01)

	assert.Equal(t, 100, len(sm.T))
	assert.Equal(t, 3, len(sm.Curves))

	for _, c := range sm.Curves {
		assert.Equal(t, len(sm.T), len(c.Values))
	}

	// the sharpest curve is the closest to the true maximum at t=0
	assert.InDelta(t, 1.0, sm.Curves[2].Values[0], 0.002)
}

func TestNewSmoothMax_DefaultStep(t *testing.T) {
	sm := NewSmoothMax([]float64{5}, 0)
	assert.Equal(t, 100, len(sm.T))
}
