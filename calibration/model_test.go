package calibration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {

	type test struct {
		y     []int
		pPred [][]float64
		yPred []int
		err   bool
	}

	tests := map[string]test{
		"derives-argmax": {
			y: []int{0, 1, 0, 1},
			pPred: [][]float64{
				{0.9, 0.1},
				{0.2, 0.8},
				{0.4, 0.6},
				{0.05, 0.95},
			},
			yPred: []int{0, 1, 1, 1},
		},
		"empty": {
			y:     []int{},
			pPred: [][]float64{},
			err:   true,
		},
		"length-mismatch": {
			y: []int{0, 1},
			pPred: [][]float64{
				{0.9, 0.1},
			},
			err: true,
		},
		"ragged-rows": {
			y: []int{0, 1},
			pPred: [][]float64{
				{0.9, 0.1},
				{0.2, 0.3, 0.5},
			},
			err: true,
		},
		"single-class": {
			y: []int{0},
			pPred: [][]float64{
				{1},
			},
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := New(tt.y, tt.pPred)
			if tt.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.yPred, s.Predictions())
			assert.Equal(t, len(tt.y), s.Len())
		})
	}

}

func TestSamples_Floor(t *testing.T) {

	type test struct {
		classes int
		floor   float64
	}

	tests := map[string]test{
		"binary":      {classes: 2, floor: 0.5},
		"multi-class": {classes: 4, floor: 0.25},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			row := make([]float64, tt.classes)
			for i := range row {
				row[i] = 1 / float64(tt.classes)
			}
			s, err := New([]int{0}, [][]float64{row})
			assert.NoError(t, err)
			assert.Equal(t, tt.classes, s.Classes())
			assert.InDelta(t, tt.floor, s.Floor(), 1e-12)
		})
	}

}

func TestSamples_Split(t *testing.T) {

	s, err := NewWithPredictions(
		[]int{0, 1, 0, 1},
		[]int{0, 1, 1, 1},
		[][]float64{
			{0.9, 0.1},
			{0.2, 0.8},
			{0.4, 0.6},
			{0.05, 0.95},
		})
	assert.NoError(t, err)

	correct, wrong := s.Split()
	assert.Equal(t, []float64{0.9, 0.8, 0.95}, correct)
	assert.Equal(t, []float64{0.6}, wrong)

	assert.Equal(t, []float64{1, 1, 0, 1}, s.Indicator())
	assert.Equal(t, []float64{0.9, 0.8, 0.6, 0.95}, s.MaxConfidence())
}
