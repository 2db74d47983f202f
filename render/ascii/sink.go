// Package ascii previews charts in the terminal.
package ascii

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/drakos74/calib/render"
	"github.com/guptarohit/asciigraph"
)

// Sink prints a terminal preview of the line series of a chart.
// It is a quick inspection aid , not a faithful rendering.
type Sink struct {
	out    io.Writer
	height int
}

// New creates a new sink writing to stdout.
func New() *Sink {
	return &Sink{
		out:    os.Stdout,
		height: 10,
	}
}

// NewWithWriter creates a new sink writing to the given writer.
func NewWithWriter(out io.Writer) *Sink {
	return &Sink{
		out:    out,
		height: 10,
	}
}

func (s *Sink) Render(chart render.Chart, directive render.Directive) error {
	if !directive.Show {
		return nil
	}
	for _, series := range chart.Series {
		if series.Kind != render.Line && series.Kind != render.Step {
			continue
		}
		data := values(series.Points)
		if len(data) < 2 {
			continue
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(s.height),
			asciigraph.Caption(fmt.Sprintf("%s : %s", chart.Title, series.Name)))
		if _, err := fmt.Fprintf(s.out, "%s\n\n", graph); err != nil {
			return fmt.Errorf("could not write chart '%s': %w", chart.Title, err)
		}
	}
	return nil
}

func values(points []render.Point) []float64 {
	vv := make([]float64, 0, len(points))
	for _, p := range points {
		if math.IsNaN(p.Y) {
			continue
		}
		vv = append(vv, p.Y)
	}
	return vv
}
