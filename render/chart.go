// Package render defines the drawable chart model and the sink contract.
// The statistics produce charts , the sinks turn them into output.
package render

import (
	"math"

	"github.com/google/uuid"
)

// Kind defines how a series should be drawn.
type Kind string

const (
	// Line connects the points in order.
	Line Kind = "line"
	// Step draws a staircase through the points.
	Step Kind = "step"
	// Bars draws a vertical bar per point, using the series width.
	Bars Kind = "bars"
	// Scatter draws a marker per point.
	Scatter Kind = "scatter"
	// VLine draws a vertical line at the x of each point, up to its y.
	VLine Kind = "vline"
	// Area fills the polygon outlined by the points.
	Area Kind = "area"
)

// Point is a single chart coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series is a named sequence of points with a draw kind.
type Series struct {
	Name   string  `json:"name"`
	Kind   Kind    `json:"kind"`
	Points []Point `json:"points"`
	// Width is the bar width for Bars series.
	Width float64 `json:"width,omitempty"`
	// Dashed hints the renderer to use a dashed stroke.
	Dashed bool `json:"dashed,omitempty"`
}

// Axis describes a chart axis.
type Axis struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	// Fixed enforces the Min / Max range instead of auto-scaling.
	Fixed bool `json:"fixed"`
}

// Chart is a drawable set of series with axes and a title.
type Chart struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	X      Axis     `json:"x"`
	Y      Axis     `json:"y"`
	Series []Series `json:"series"`
	// Notes are free text annotations e.g. the ECE of a reliability diagram.
	Notes []string `json:"notes,omitempty"`
}

// NewChart creates a new chart with a unique id.
func NewChart(title string) Chart {
	return Chart{
		ID:    uuid.New().String(),
		Title: title,
	}
}

// LineSeries builds a line series from parallel coordinate slices,
// dropping undefined points.
func LineSeries(name string, x, y []float64) Series {
	return series(name, Line, x, y)
}

// ScatterSeries builds a scatter series from parallel coordinate slices.
func ScatterSeries(name string, x, y []float64) Series {
	return series(name, Scatter, x, y)
}

// StepSeries builds a staircase through the given bin edges and values,
// e.g. values[i] spans [edges[i] , edges[i+1]].
func StepSeries(name string, edges, values []float64) Series {
	points := make([]Point, 0, 2*len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		points = append(points,
			Point{X: edges[i], Y: v},
			Point{X: edges[i+1], Y: v},
		)
	}
	return Series{
		Name:   name,
		Kind:   Step,
		Points: points,
	}
}

// BarSeries builds a bar series from bin midpoints and values.
func BarSeries(name string, midpoints, values []float64, width float64) Series {
	s := series(name, Bars, midpoints, values)
	s.Width = width
	return s
}

func series(name string, kind Kind, x, y []float64) Series {
	points := make([]Point, 0, len(x))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		points = append(points, Point{X: x[i], Y: y[i]})
	}
	return Series{
		Name:   name,
		Kind:   kind,
		Points: points,
	}
}
