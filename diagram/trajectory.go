package diagram

import (
	"fmt"

	"github.com/drakos74/calib/calibration"
	"github.com/drakos74/calib/render"
)

// Trajectories plots the over- and underconfidence trajectories :
// the running mean confidence of the false predictions against the running
// mean uncertainty of the correct ones, with the theoretical calibration
// corridor when enabled.
func (p *Plotter) Trajectories(y, yPred []int, pPred [][]float64, cfg Config) (render.Chart, error) {
	cfg = cfg.withDefaults("Over- and Underconfidence Trajectories", DefaultTrajectorySteps)

	s, err := calibration.NewWithPredictions(y, yPred, pPred)
	if err != nil {
		return render.Chart{}, fmt.Errorf("invalid sample set: %w", err)
	}

	t, err := calibration.NewTrajectories(s, cfg.Bins, cfg.Corridor)
	if err != nil {
		return render.Chart{}, fmt.Errorf("could not compute trajectories: %w", err)
	}

	chart := render.NewChart(cfg.Title)
	chart.X = render.Axis{Label: "Avg. confidence of false", Min: t.Floor, Max: 1, Fixed: true}
	chart.Y = render.Axis{Label: "Avg. uncertainty of correct", Min: 0, Max: 1 - t.Floor, Fixed: true}

	chart.Series = make([]render.Series, 0, 4)

	if t.Corridor != nil {
		chart.Series = append(chart.Series,
			corridorArea(t.Corridor),
			corridorCenter(t.Corridor),
		)
	}

	chart.Series = append(chart.Series,
		render.LineSeries("Trajectory", t.AvgFalse, t.Uncertainty),
		render.ScatterSeries("",
			[]float64{t.Overconfidence},
			[]float64{t.Underconfidence}),
	)

	return p.render("trajectories", chart, t, cfg)
}

// corridorArea outlines the calibration corridor as a closed polygon :
// the upper bound left to right , then the lower bound back.
func corridorArea(c *calibration.Corridor) render.Series {
	points := make([]render.Point, 0, 2*len(c.Confidence))
	for i, o := range c.Confidence {
		points = append(points, render.Point{X: o, Y: c.Upper[i]})
	}
	for i := len(c.Confidence) - 1; i >= 0; i-- {
		points = append(points, render.Point{X: c.Confidence[i], Y: c.Lower[i]})
	}
	return render.Series{
		Name:   "Calibration corridor",
		Kind:   render.Area,
		Points: points,
	}
}

func corridorCenter(c *calibration.Corridor) render.Series {
	center := render.LineSeries("", c.Confidence, c.Center)
	center.Dashed = true
	return center
}
