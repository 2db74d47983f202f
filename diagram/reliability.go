package diagram

import (
	"fmt"

	"github.com/drakos74/calib/calibration"
	coinmath "github.com/drakos74/calib/internal/math"
	"github.com/drakos74/calib/render"
)

// Reliability plots the reliability diagram for the given labels and
// probability estimates : the empirical accuracy per confidence bin against
// the calibrated diagonal, with the sample fraction histogram underneath.
// The predicted labels are derived from the probability rows.
func (p *Plotter) Reliability(y []int, pPred [][]float64, cfg Config) (render.Chart, error) {
	cfg = cfg.withDefaults("Reliability Diagram", DefaultReliabilityBins)

	s, err := calibration.New(y, pPred)
	if err != nil {
		return render.Chart{}, fmt.Errorf("invalid sample set: %w", err)
	}

	r, err := calibration.NewReliability(s, cfg.Bins, cfg.Lo, cfg.Hi)
	if err != nil {
		return render.Chart{}, fmt.Errorf("could not compute reliability: %w", err)
	}

	chart := render.NewChart(cfg.Title)
	chart.X = render.Axis{Label: "Maximum Probability", Min: r.Lo, Max: r.Hi, Fixed: true}
	chart.Y = render.Axis{Label: "Accuracy / Sample Fraction"}

	diagonal := render.LineSeries("Calibrated Output",
		[]float64{r.Lo, r.Hi},
		[]float64{r.Lo, r.Hi})
	diagonal.Dashed = true

	width := (r.Hi - r.Lo) / float64(len(r.Midpoints))
	chart.Series = []render.Series{
		diagonal,
		render.StepSeries("Classifier Output", r.Edges, r.Accuracy),
		render.BarSeries("Sample Fraction", r.Midpoints, r.Fractions, width),
	}

	if cfg.ShowECE {
		chart.Notes = append(chart.Notes, fmt.Sprintf("ECE = %s", coinmath.Format(r.ECE)))
	}

	return p.render("reliability", chart, r, cfg)
}
