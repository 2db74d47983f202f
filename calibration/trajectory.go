package calibration

import (
	"math"
	"sort"

	"github.com/drakos74/calib/calibration/scoring"
	coinmath "github.com/drakos74/calib/internal/math"
	"gonum.org/v1/gonum/floats"
)

// Trajectories pairs the running mean confidence of the false predictions
// with the running mean uncertainty of the correct ones,
// evaluated at increasing confidence thresholds.
// The trajectory converges to the (overconfidence , underconfidence) point.
type Trajectories struct {
	Thresholds []float64 `json:"thresholds"`
	// AvgFalse is the mean confidence of the false predictions up to each threshold.
	AvgFalse []float64 `json:"avg_false"`
	// Uncertainty is 1 minus the mean confidence of the correct predictions up to each threshold.
	Uncertainty     []float64 `json:"uncertainty"`
	Overconfidence  float64   `json:"overconfidence"`
	Underconfidence float64   `json:"underconfidence"`
	Floor           float64   `json:"floor"`
	Corridor        *Corridor `json:"corridor,omitempty"`
}

// Corridor is the theoretical calibration corridor :
// for a calibrated classifier the underconfidence relates to the
// overconfidence through the inverse odds of a correct prediction,
// up to the expected calibration error.
type Corridor struct {
	Confidence []float64 `json:"confidence"`
	Center     []float64 `json:"center"`
	Upper      []float64 `json:"upper"`
	Lower      []float64 `json:"lower"`
}

// NewTrajectories computes the confidence trajectories over the given number
// of threshold steps spanning [1/classes , 1].
// An empty prediction subset has no trajectory and yields NaN coordinates.
func NewTrajectories(s Samples, steps int, withCorridor bool) (Trajectories, error) {
	if steps < 2 {
		steps = 2
	}

	thresholds := make([]float64, steps)
	floats.Span(thresholds, s.Floor(), 1)

	correct, wrong := s.Split()
	sort.Float64s(correct)
	sort.Float64s(wrong)

	t := Trajectories{
		Thresholds:      thresholds,
		AvgFalse:        runningMeanAt(wrong, thresholds),
		Uncertainty:     runningMeanAt(correct, thresholds),
		Overconfidence:  scoring.Overconfidence(s.labels, s.pred, s.probs),
		Underconfidence: scoring.Underconfidence(s.labels, s.pred, s.probs),
		Floor:           s.Floor(),
	}
	for i, u := range t.Uncertainty {
		t.Uncertainty[i] = 1 - u
	}

	if withCorridor {
		t.Corridor = corridor(s)
	}

	return t, nil
}

// runningMeanAt evaluates the cumulative running mean of the sorted values
// at the largest element not exceeding each threshold.
func runningMeanAt(sorted, thresholds []float64) []float64 {
	out := make([]float64, len(thresholds))
	if len(sorted) == 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	cum := coinmath.CumMean(sorted)
	for i, threshold := range thresholds {
		out[i] = cum[coinmath.LastIndexBelow(sorted, threshold)]
	}
	return out
}

// corridor derives the calibration corridor from the accuracy implied
// inverse odds and the expected calibration error bounds.
func corridor(s Samples) *Corridor {
	accuracy := scoring.Accuracy(s.labels, s.pred)
	if accuracy == 0 {
		// no corridor without correct predictions
		return nil
	}
	invOdds := (1 - accuracy) / accuracy
	ece := scoring.ExpectedCalibrationError(s.labels, s.probs, scoring.DefaultBins)

	confidence := coinmath.Series(0.5, 0.01, 51)
	center := make([]float64, len(confidence))
	upper := make([]float64, len(confidence))
	lower := make([]float64, len(confidence))
	for i, o := range confidence {
		center[i] = invOdds * o
		upper[i] = center[i] + ece/accuracy
		lower[i] = center[i] - ece/accuracy
	}
	return &Corridor{
		Confidence: confidence,
		Center:     center,
		Upper:      upper,
		Lower:      lower,
	}
}
