package calibration

import (
	"github.com/drakos74/calib/calibration/scoring"
	"github.com/drakos74/calib/internal/binning"
)

// ConfidenceSplit holds the confidence histograms of the correct and the
// false predictions, with the over- and underconfidence scores as markers.
type ConfidenceSplit struct {
	Edges         []float64 `json:"edges"`
	CorrectCounts []int     `json:"correct_counts"`
	FalseCounts   []int     `json:"false_counts"`
	// Overconfidence marks the average confidence of the false predictions.
	Overconfidence float64 `json:"overconfidence"`
	// Confidence marks the average confidence of the correct predictions,
	// e.g. 1 - underconfidence.
	Confidence float64 `json:"confidence"`
	Floor      float64 `json:"floor"`
}

// NewConfidenceSplit computes the confidence histograms
// over the given number of bins across the full probability range.
func NewConfidenceSplit(s Samples, bins int) (ConfidenceSplit, error) {
	partition, err := binning.New(0, 1, bins)
	if err != nil {
		return ConfidenceSplit{}, err
	}

	correct, wrong := s.Split()

	return ConfidenceSplit{
		Edges:          partition.Edges(),
		CorrectCounts:  partition.Histogram(correct),
		FalseCounts:    partition.Histogram(wrong),
		Overconfidence: scoring.Overconfidence(s.labels, s.pred, s.probs),
		Confidence:     1 - scoring.Underconfidence(s.labels, s.pred, s.probs),
		Floor:          s.Floor(),
	}, nil
}
