package calibration

import (
	"math"
	"math/rand"
)

// Synthetic generates a binary classifier output of the given size.
// The skew controls the calibration of the generated classifier :
// 1 produces a calibrated one, where the confidence matches the probability
// of a correct prediction by construction, larger values an overconfident one.
func Synthetic(rnd *rand.Rand, n int, skew float64) ([]int, [][]float64) {
	y := make([]int, n)
	pPred := make([][]float64, n)
	for i := 0; i < n; i++ {
		c := 0.5 + 0.5*rnd.Float64()
		// predicted class is always 1 , the label follows with probability c^skew
		y[i] = 0
		if rnd.Float64() < math.Pow(c, skew) {
			y[i] = 1
		}
		pPred[i] = []float64{1 - c, c}
	}
	return y, pPred
}
