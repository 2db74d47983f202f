package calibration

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTrajectories(t *testing.T) {

	rnd := rand.New(rand.NewSource(7))
	y, pPred := Synthetic(rnd, 2000, 2)
	s, err := New(y, pPred)
	assert.NoError(t, err)

	tr, err := NewTrajectories(s, 100, true)
	assert.NoError(t, err)

	assert.Equal(t, 100, len(tr.Thresholds))
	assert.Equal(t, 100, len(tr.AvgFalse))
	assert.Equal(t, 100, len(tr.Uncertainty))

	// thresholds span [floor , 1]
	assert.InDelta(t, s.Floor(), tr.Thresholds[0], 1e-12)
	assert.InDelta(t, 1.0, tr.Thresholds[len(tr.Thresholds)-1], 1e-12)

	// at the last threshold the running means cover all predictions ,
	// so the trajectory ends on the (overconfidence , underconfidence) point
	assert.InDelta(t, tr.Overconfidence, tr.AvgFalse[len(tr.AvgFalse)-1], 1e-9)
	assert.InDelta(t, tr.Underconfidence, tr.Uncertainty[len(tr.Uncertainty)-1], 1e-9)

	// corridor center follows the inverse odds of a correct prediction
	assert.NotNil(t, tr.Corridor)
	accuracy := 0.0
	for _, v := range s.Indicator() {
		accuracy += v
	}
	accuracy /= float64(s.Len())
	invOdds := (1 - accuracy) / accuracy
	for i, o := range tr.Corridor.Confidence {
		assert.InDelta(t, invOdds*o, tr.Corridor.Center[i], 1e-9)
		assert.True(t, tr.Corridor.Upper[i] >= tr.Corridor.Center[i])
		assert.True(t, tr.Corridor.Lower[i] <= tr.Corridor.Center[i])
	}
}

func TestNewTrajectories_NoFalsePredictions(t *testing.T) {

	s, err := NewWithPredictions(
		[]int{1, 1},
		[]int{1, 1},
		[][]float64{
			{0.1, 0.9},
			{0.05, 0.95},
		})
	assert.NoError(t, err)

	tr, err := NewTrajectories(s, 10, false)
	assert.NoError(t, err)

	for _, v := range tr.AvgFalse {
		assert.True(t, math.IsNaN(v))
	}
	assert.Nil(t, tr.Corridor)
}

func TestNewTrajectories_WithoutCorridor(t *testing.T) {
	s := testSamples(t)
	tr, err := NewTrajectories(s, 10, false)
	assert.NoError(t, err)
	assert.Nil(t, tr.Corridor)
}
