// Package scoring exposes the calibration scores as pure functions of
// the raw label, prediction and probability sequences.
package scoring

import (
	"math"

	"github.com/drakos74/calib/internal/binning"
	"github.com/drakos74/calib/internal/buffer"
	coinmath "github.com/drakos74/calib/internal/math"
)

// DefaultBins is the bin count used for the expected calibration error
// when the caller has no preference.
const DefaultBins = 100

// Accuracy returns the fraction of correct predictions.
func Accuracy(y, yPred []int) float64 {
	if len(y) == 0 {
		return math.NaN()
	}
	correct := 0
	for i := range y {
		if y[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(y))
}

// ExpectedCalibrationError is the weighted mean absolute difference between
// the mean confidence and the empirical accuracy per bin,
// weighted by the fraction of samples falling into each bin.
// The bins partition the full probability range [0,1].
func ExpectedCalibrationError(y []int, pPred [][]float64, bins int) float64 {
	partition, err := binning.New(0, 1, bins)
	if err != nil {
		return math.NaN()
	}

	// track (confidence , correctness) per bin
	cells := make([]*buffer.StatsCollector, partition.Bins())
	for i := range cells {
		cells[i] = buffer.NewStatsCollector(2)
	}
	for i, row := range pPred {
		confidence := coinmath.Max(row)
		indicator := 0.0
		if y[i] == coinmath.ArgMax(row) {
			indicator = 1
		}
		if j := partition.Index(confidence); j >= 0 {
			cells[j].Push(confidence, indicator)
		}
	}

	ece := 0.0
	for _, cell := range cells {
		if cell.Size() == 0 {
			continue
		}
		stats := cell.Stats()
		w := float64(cell.Size()) / float64(len(pPred))
		ece += w * math.Abs(stats[0].Avg()-stats[1].Avg())
	}
	return ece
}

// Overconfidence is the average confidence of the false predictions.
// With no false predictions the score is undefined and we return NaN.
func Overconfidence(y, yPred []int, pPred [][]float64) float64 {
	wrong := make([]float64, 0)
	for i, row := range pPred {
		if y[i] != yPred[i] {
			wrong = append(wrong, coinmath.Max(row))
		}
	}
	return coinmath.Mean(wrong)
}

// Underconfidence is the average uncertainty of the correct predictions.
// With no correct predictions the score is undefined and we return NaN.
func Underconfidence(y, yPred []int, pPred [][]float64) float64 {
	correct := make([]float64, 0)
	for i, row := range pPred {
		if y[i] == yPred[i] {
			correct = append(correct, 1-coinmath.Max(row))
		}
	}
	return coinmath.Mean(correct)
}
