package calibration

import (
	"fmt"

	coinmath "github.com/drakos74/calib/internal/math"
)

// Samples holds parallel sequences of ground truth labels, predicted labels
// and per-class probability estimates for a set of classifier outputs.
// All sequences are indexed by sample.
type Samples struct {
	labels  []int
	pred    []int
	probs   [][]float64
	classes int
}

// New creates a new sample set deriving the predicted labels
// from the per-class probabilities.
func New(y []int, pPred [][]float64) (Samples, error) {
	yPred := make([]int, len(pPred))
	for i, row := range pPred {
		yPred[i] = coinmath.ArgMax(row)
	}
	return NewWithPredictions(y, yPred, pPred)
}

// NewWithPredictions creates a new sample set from explicit predicted labels.
func NewWithPredictions(y, yPred []int, pPred [][]float64) (Samples, error) {
	if len(y) == 0 {
		return Samples{}, fmt.Errorf("empty sample set")
	}
	if len(y) != len(yPred) || len(y) != len(pPred) {
		return Samples{}, fmt.Errorf("inconsistent lengths: labels %d, predictions %d, probabilities %d",
			len(y), len(yPred), len(pPred))
	}
	classes := len(pPred[0])
	if classes < 2 {
		return Samples{}, fmt.Errorf("need at least 2 classes: got %d", classes)
	}
	for i, row := range pPred {
		if len(row) != classes {
			return Samples{}, fmt.Errorf("ragged probability row %d: %d vs %d", i, len(row), classes)
		}
	}
	return Samples{
		labels:  y,
		pred:    yPred,
		probs:   pPred,
		classes: classes,
	}, nil
}

// Len returns the number of samples.
func (s Samples) Len() int {
	return len(s.labels)
}

// Classes returns the number of classes.
func (s Samples) Classes() int {
	return s.classes
}

// Floor is the default confidence floor of the classifier,
// e.g. the confidence of a uniform guess over the classes.
func (s Samples) Floor() float64 {
	return 1 / float64(s.classes)
}

// Labels returns the ground truth labels.
func (s Samples) Labels() []int {
	return s.labels
}

// Predictions returns the predicted labels.
func (s Samples) Predictions() []int {
	return s.pred
}

// Probabilities returns the per-class probability rows.
func (s Samples) Probabilities() [][]float64 {
	return s.probs
}

// MaxConfidence returns the max-class probability per sample.
func (s Samples) MaxConfidence() []float64 {
	cc := make([]float64, len(s.probs))
	for i, row := range s.probs {
		cc[i] = coinmath.Max(row)
	}
	return cc
}

// Indicator returns 1 for every correctly predicted sample, 0 otherwise.
func (s Samples) Indicator() []float64 {
	ind := make([]float64, len(s.labels))
	for i := range s.labels {
		if s.labels[i] == s.pred[i] {
			ind[i] = 1
		}
	}
	return ind
}

// Split partitions the max-class confidences into
// those of correct and those of false predictions.
func (s Samples) Split() (correct, wrong []float64) {
	correct = make([]float64, 0)
	wrong = make([]float64, 0)
	for i, c := range s.MaxConfidence() {
		if s.labels[i] == s.pred[i] {
			correct = append(correct, c)
		} else {
			wrong = append(wrong, c)
		}
	}
	return correct, wrong
}
