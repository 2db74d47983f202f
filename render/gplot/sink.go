// Package gplot renders charts to image files with gonum plot.
package gplot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/drakos74/calib/render"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Sink renders charts to image files.
// The output format follows the file extension e.g. png , svg , pdf.
type Sink struct {
	width, height vg.Length
}

// New creates a new sink with the given dimensions in inches.
func New(width, height float64) *Sink {
	return &Sink{
		width:  vg.Length(width) * vg.Inch,
		height: vg.Length(height) * vg.Inch,
	}
}

func (s *Sink) Render(chart render.Chart, directive render.Directive) error {
	if directive.Path == "" {
		// nothing to do without an output file
		return nil
	}

	p, err := plot.New()
	if err != nil {
		return fmt.Errorf("could not create plot: %w", err)
	}

	p.Title.Text = chart.Title
	p.X.Label.Text = chart.X.Label
	p.Y.Label.Text = chart.Y.Label
	if chart.X.Fixed {
		p.X.Min = chart.X.Min
		p.X.Max = chart.X.Max
	}
	if chart.Y.Fixed {
		p.Y.Min = chart.Y.Min
		p.Y.Max = chart.Y.Max
	}

	for i, series := range chart.Series {
		if err := s.add(p, series, i); err != nil {
			return fmt.Errorf("could not draw series '%s': %w", series.Name, err)
		}
	}

	for _, note := range chart.Notes {
		p.Title.Text = fmt.Sprintf("%s (%s)", p.Title.Text, note)
	}

	dir := filepath.Dir(directive.Path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("could not make dir: %s: %w", dir, err)
	}

	if err := p.Save(s.width, s.height, directive.Path); err != nil {
		return fmt.Errorf("could not save chart '%s': %w", chart.Title, err)
	}
	log.Debug().
		Str("chart", chart.Title).
		Str("path", directive.Path).
		Msg("saved chart")
	return nil
}

func (s *Sink) add(p *plot.Plot, series render.Series, i int) error {
	switch series.Kind {
	case render.Line, render.Step:
		l, err := plotter.NewLine(xys(series.Points))
		if err != nil {
			return err
		}
		l.Color = plotutil.Color(i)
		if series.Dashed {
			l.Dashes = plotutil.Dashes(1)
		}
		p.Add(l)
		if series.Name != "" {
			p.Legend.Add(series.Name, l)
		}
	case render.Scatter:
		sc, err := plotter.NewScatter(xys(series.Points))
		if err != nil {
			return err
		}
		sc.Color = plotutil.Color(i)
		p.Add(sc)
		if series.Name != "" {
			p.Legend.Add(series.Name, sc)
		}
	case render.Area:
		poly, err := plotter.NewPolygon(xys(series.Points))
		if err != nil {
			return err
		}
		poly.Color = color.NRGBA{R: 128, G: 128, B: 128, A: 80}
		poly.LineStyle.Width = 0
		p.Add(poly)
	case render.Bars:
		for _, point := range series.Points {
			bar, err := plotter.NewPolygon(barOutline(point, series.Width))
			if err != nil {
				return err
			}
			bar.Color = color.NRGBA{R: 70, G: 130, B: 180, A: 160}
			bar.LineStyle.Width = 0
			p.Add(bar)
		}
	case render.VLine:
		for _, point := range series.Points {
			l, err := plotter.NewLine(plotter.XYs{
				{X: point.X, Y: 0},
				{X: point.X, Y: point.Y},
			})
			if err != nil {
				return err
			}
			l.Color = color.Black
			l.Width = vg.Points(2)
			p.Add(l)
		}
	default:
		return fmt.Errorf("unknown series kind: %s", series.Kind)
	}
	return nil
}

func xys(points []render.Point) plotter.XYs {
	xx := make(plotter.XYs, len(points))
	for i, p := range points {
		xx[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return xx
}

func barOutline(p render.Point, width float64) plotter.XYs {
	w := width / 2
	return plotter.XYs{
		{X: p.X - w, Y: 0},
		{X: p.X - w, Y: p.Y},
		{X: p.X + w, Y: p.Y},
		{X: p.X + w, Y: 0},
	}
}
