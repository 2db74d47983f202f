package buffer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Push(t *testing.T) {

	l := 1001

	type test struct {
		transform func(i int) float64
		avg       float64
		count     int
		min       float64
		max       float64
		stDev     float64
		variance  float64
		sum       float64
	}

	tests := map[string]test{
		"monotonically-increasing-+": {
			transform: func(i int) float64 {
				return float64(i)
			},
			avg:      float64(l / 2),
			count:    l,
			sum:      float64(l) * 500,
			min:      0,
			max:      float64(l) - 1,
			stDev:    289,
			variance: 83500,
		},
		"monotonically-increasing-0": {
			transform: func(i int) float64 {
				return float64(-1*l/2) + float64(i)
			},
			avg:   0,
			count: l,
			sum:   0,
			min:   -500,
			max:   500,
			// NOTE : these are the same as the one above
			stDev:    289,
			variance: 83500,
		},
		"constant": {
			transform: func(i int) float64 {
				return 0.5
			},
			avg:      0.5,
			count:    l,
			sum:      0.5 * float64(l),
			min:      0.5,
			max:      0.5,
			stDev:    0,
			variance: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stats := NewStats()
			for i := 0; i < l; i++ {
				stats.Push(tt.transform(i))
			}
			assert.InDelta(t, tt.avg, stats.Avg(), 1e-9)
			assert.Equal(t, tt.count, stats.Count())
			assert.InDelta(t, tt.sum, stats.Sum(), 1e-6)
			assert.Equal(t, tt.min, stats.Min())
			assert.Equal(t, tt.max, stats.Max())
			assert.InDelta(t, tt.stDev, stats.StDev(), 1)
			assert.InDelta(t, tt.variance, stats.Variance(), 100)
		})
	}

}

func TestStats_Empty(t *testing.T) {
	stats := NewStats()
	assert.Equal(t, 0, stats.Count())
	assert.True(t, math.IsNaN(stats.Avg()))
}

func TestStatsCollector(t *testing.T) {

	sc := NewStatsCollector(2)

	sc.Push(0.9, 1)
	sc.Push(0.8, 1)
	sc.Push(0.6, 0)

	assert.Equal(t, 3, sc.Size())

	stats := sc.Stats()
	assert.InDelta(t, (0.9+0.8+0.6)/3, stats[0].Avg(), 1e-12)
	assert.InDelta(t, 2.0/3, stats[1].Avg(), 1e-12)

	assert.Panics(t, func() {
		sc.Push(0.5)
	})
}
