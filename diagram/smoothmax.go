package diagram

import (
	"fmt"

	"github.com/drakos74/calib/calibration"
	"github.com/drakos74/calib/render"
)

// the reference sharpness parameters of the smooth maximum illustration
var defaultSharpness = []float64{5, 50, 500}

// SmoothMax plots the log-sum-exp smooth maximum at increasing sharpness.
// It is purely illustrative and uses no sample data.
func (p *Plotter) SmoothMax(sharpness []float64, cfg Config) (render.Chart, error) {
	cfg = cfg.withDefaults("Smooth Maximum Approximation", 1)
	if len(sharpness) == 0 {
		sharpness = defaultSharpness
	}

	sm := calibration.NewSmoothMax(sharpness, 0.01)

	chart := render.NewChart(cfg.Title)
	chart.X = render.Axis{Label: "t", Min: 0, Max: 1, Fixed: true}
	chart.Y = render.Axis{Label: "max(t , 1-t)"}

	chart.Series = make([]render.Series, 0, len(sm.Curves))
	for _, c := range sm.Curves {
		chart.Series = append(chart.Series,
			render.LineSeries(fmt.Sprintf("N = %.0f", c.Sharpness), sm.T, c.Values))
	}

	return p.render("smoothmax", chart, sm, cfg)
}
