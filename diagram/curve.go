package diagram

import (
	"fmt"

	"github.com/drakos74/calib/calibration"
	"github.com/drakos74/calib/render"
)

// OverUnderCurve plots the precision/recall type tradeoff curve between
// over- and underconfidence.
func (p *Plotter) OverUnderCurve(y, yPred []int, pPred [][]float64, cfg Config) (render.Chart, error) {
	cfg = cfg.withDefaults("Over-/Underconfidence Curve", DefaultCurveBins)

	s, err := calibration.NewWithPredictions(y, yPred, pPred)
	if err != nil {
		return render.Chart{}, fmt.Errorf("invalid sample set: %w", err)
	}

	c, err := calibration.NewOverUnderCurve(s, cfg.Bins)
	if err != nil {
		return render.Chart{}, fmt.Errorf("could not compute curve: %w", err)
	}

	chart := render.NewChart(cfg.Title)
	chart.X = render.Axis{Label: "false and uncertain", Min: 0, Max: 1, Fixed: true}
	chart.Y = render.Axis{Label: "correct and confident", Min: 0, Max: 1, Fixed: true}

	diagonal := render.LineSeries("",
		[]float64{0, 1},
		[]float64{1, 0})
	diagonal.Dashed = true

	chart.Series = []render.Series{
		diagonal,
		render.LineSeries("Classifier", c.X, c.Y),
	}

	return p.render("curve", chart, c, cfg)
}
