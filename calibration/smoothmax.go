package calibration

import (
	"math"

	coinmath "github.com/drakos74/calib/internal/math"
	"gonum.org/v1/gonum/floats"
)

// SmoothMax is an illustrative evaluation of the log-sum-exp smooth maximum
// over the two-class probability rows [1-t , t].
// As the sharpness grows the curve approaches the true maximum max(t , 1-t).
// It has no dependency on sample data.
type SmoothMax struct {
	T      []float64        `json:"t"`
	Curves []SmoothMaxCurve `json:"curves"`
}

// SmoothMaxCurve is the smooth maximum at a fixed sharpness.
type SmoothMaxCurve struct {
	Sharpness float64   `json:"sharpness"`
	Values    []float64 `json:"values"`
}

// NewSmoothMax evaluates the smooth maximum for the given sharpness parameters
// over t in [0,1) with the given step.
func NewSmoothMax(sharpness []float64, step float64) SmoothMax {
	if step <= 0 {
		step = 0.01
	}
	t := coinmath.Series(0, step, int(math.Round(1/step)))

	curves := make([]SmoothMaxCurve, len(sharpness))
	for i, n := range sharpness {
		values := make([]float64, len(t))
		for j, tj := range t {
			values[j] = LogSumExp(tj, n)
		}
		curves[i] = SmoothMaxCurve{
			Sharpness: n,
			Values:    values,
		}
	}

	return SmoothMax{
		T:      t,
		Curves: curves,
	}
}

// LogSumExp is the smooth maximum of the pair (1-t , t)
// at the given sharpness, e.g. ln(exp(n(1-t)) + exp(nt)) / n.
func LogSumExp(t, n float64) float64 {
	return floats.LogSumExp([]float64{n * (1 - t), n * t}) / n
}
