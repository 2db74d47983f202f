package diagram

import (
	"fmt"
	"math"

	"github.com/drakos74/calib/calibration"
	coinmath "github.com/drakos74/calib/internal/math"
	"github.com/drakos74/calib/render"
)

// ConfidenceSplit plots the confidence histograms of the false and the
// correct predictions, with the over- and underconfidence scores as markers.
func (p *Plotter) ConfidenceSplit(y, yPred []int, pPred [][]float64, cfg Config) (render.Chart, error) {
	cfg = cfg.withDefaults("Prediction Confidence", DefaultConfidenceBins)

	s, err := calibration.NewWithPredictions(y, yPred, pPred)
	if err != nil {
		return render.Chart{}, fmt.Errorf("invalid sample set: %w", err)
	}

	c, err := calibration.NewConfidenceSplit(s, cfg.Bins)
	if err != nil {
		return render.Chart{}, fmt.Errorf("could not compute confidence split: %w", err)
	}

	chart := render.NewChart(cfg.Title)
	chart.X = render.Axis{Label: "Predicted Probability", Min: c.Floor, Max: 1, Fixed: true}
	chart.Y = render.Axis{Label: "Count"}

	midpoints := make([]float64, len(c.CorrectCounts))
	width := (c.Edges[len(c.Edges)-1] - c.Edges[0]) / float64(len(midpoints))
	for i := range midpoints {
		midpoints[i] = (c.Edges[i] + c.Edges[i+1]) / 2
	}

	falseBars := render.BarSeries("Confidence of false predictions",
		midpoints, coinmath.ToFloat(c.FalseCounts), width)
	correctBars := render.BarSeries("Confidence of correct predictions",
		midpoints, coinmath.ToFloat(c.CorrectCounts), width)

	chart.Series = []render.Series{
		falseBars,
		correctBars,
		marker("Overconfidence", c.Overconfidence, c.FalseCounts),
		marker("Confidence", c.Confidence, c.CorrectCounts),
	}

	return p.render("confidence", chart, c, cfg)
}

// marker builds a vertical marker at the given score,
// spanning the height of its histogram.
// An undefined score e.g. for an empty prediction subset has no marker.
func marker(name string, score float64, counts []int) render.Series {
	if math.IsNaN(score) {
		return render.Series{
			Name: name,
			Kind: render.VLine,
		}
	}
	height := 0.0
	for _, c := range counts {
		if float64(c) > height {
			height = float64(c)
		}
	}
	return render.Series{
		Name: name,
		Kind: render.VLine,
		Points: []render.Point{
			{X: score, Y: height},
		},
	}
}
