package calibration

import (
	"github.com/drakos74/calib/internal/binning"
)

// OverUnderCurve is a precision/recall type tradeoff curve between
// over- and underconfidence : for each confidence bin it pairs the cumulative
// fraction of false predictions up to the bin ( false and uncertain ) with the
// remaining fraction of correct predictions above it ( correct and confident ).
type OverUnderCurve struct {
	Edges             []float64 `json:"edges"`
	FalseCumulative   []float64 `json:"false_cumulative"`
	CorrectCumulative []float64 `json:"correct_cumulative"`
	X                 []float64 `json:"x"`
	Y                 []float64 `json:"y"`
}

// NewOverUnderCurve computes the tradeoff curve over the given number of bins.
// Both cumulative series are non-decreasing and converge to 1.
// NOTE : with no false or no correct predictions the respective series is NaN,
// as there is no distribution to accumulate.
func NewOverUnderCurve(s Samples, bins int) (OverUnderCurve, error) {
	partition, err := binning.New(0, 1, bins)
	if err != nil {
		return OverUnderCurve{}, err
	}

	correct, wrong := s.Split()

	falseCum := partition.Cumulative(wrong)
	correctCum := partition.Cumulative(correct)

	x := make([]float64, bins)
	y := make([]float64, bins)
	for i := 0; i < bins; i++ {
		x[i] = falseCum[i]
		y[i] = 1 - correctCum[i]
	}

	return OverUnderCurve{
		Edges:             partition.Edges(),
		FalseCumulative:   falseCum,
		CorrectCumulative: correctCum,
		X:                 x,
		Y:                 y,
	}, nil
}
