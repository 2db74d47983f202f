package calibration

import (
	"math"

	"github.com/drakos74/calib/calibration/scoring"
	"github.com/drakos74/calib/internal/binning"
)

// Reliability holds the derived series of a reliability diagram :
// the empirical accuracy of the classifier per confidence bin,
// together with the distribution of the max-class confidence.
type Reliability struct {
	Edges     []float64 `json:"edges"`
	Midpoints []float64 `json:"midpoints"`
	Accuracy  []float64 `json:"accuracy"`
	Counts    []int     `json:"counts"`
	Fractions []float64 `json:"fractions"`
	ECE       float64   `json:"ece"`
	Lo        float64   `json:"lo"`
	Hi        float64   `json:"hi"`
}

// NewReliability computes the reliability series over the given number of bins.
// A zero range defaults to [1/classes , 1] e.g. from the confidence floor up.
// Bins with no samples take the theoretical bin midpoint as accuracy,
// so that the drawn curve has no gaps.
func NewReliability(s Samples, bins int, lo, hi float64) (Reliability, error) {
	if lo == 0 && hi == 0 {
		lo = s.Floor()
		hi = 1
	}
	partition, err := binning.New(lo, hi, bins)
	if err != nil {
		return Reliability{}, err
	}

	confidence := s.MaxConfidence()

	accuracy, counts := partition.BinnedMean(confidence, s.Indicator())
	midpoints := partition.Midpoints()
	for i := range accuracy {
		if math.IsNaN(accuracy[i]) {
			accuracy[i] = midpoints[i]
		}
	}

	return Reliability{
		Edges:     partition.Edges(),
		Midpoints: midpoints,
		Accuracy:  accuracy,
		Counts:    counts,
		Fractions: partition.Fractions(confidence),
		ECE:       scoring.ExpectedCalibrationError(s.labels, s.probs, bins),
		Lo:        lo,
		Hi:        hi,
	}, nil
}
