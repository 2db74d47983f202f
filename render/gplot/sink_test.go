package gplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/drakos74/calib/render"
	"github.com/stretchr/testify/assert"
)

func testChart() render.Chart {
	chart := render.NewChart("test")
	chart.X = render.Axis{Label: "x", Min: 0, Max: 1, Fixed: true}
	chart.Y = render.Axis{Label: "y"}
	chart.Series = []render.Series{
		render.LineSeries("line", []float64{0, 0.5, 1}, []float64{0, 0.25, 1}),
		render.StepSeries("step", []float64{0, 0.5, 1}, []float64{0.2, 0.8}),
		render.BarSeries("bars", []float64{0.25, 0.75}, []float64{1, 3}, 0.5),
		render.ScatterSeries("", []float64{0.6}, []float64{0.4}),
		{
			Name: "marker",
			Kind: render.VLine,
			Points: []render.Point{
				{X: 0.3, Y: 2},
			},
		},
		{
			Name: "area",
			Kind: render.Area,
			Points: []render.Point{
				{X: 0, Y: 0.1},
				{X: 1, Y: 0.2},
				{X: 1, Y: 0},
				{X: 0, Y: 0},
			},
		},
	}
	return chart
}

func TestSink_Render(t *testing.T) {

	path := filepath.Join(t.TempDir(), "charts", "test.png")

	sink := New(6, 6)
	err := sink.Render(testChart(), render.Directive{Path: path})
	assert.NoError(t, err)

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.True(t, info.Size() > 0)
}

func TestSink_Render_NoPath(t *testing.T) {
	// without an output file there is nothing to do
	sink := New(6, 6)
	assert.NoError(t, sink.Render(testChart(), render.Directive{Show: true}))
}

func TestSink_Render_UnknownKind(t *testing.T) {

	chart := render.NewChart("unknown")
	chart.Series = []render.Series{
		{
			Name: "bad",
			Kind: render.Kind("heatmap"),
		},
	}

	sink := New(4, 4)
	err := sink.Render(chart, render.Directive{Path: filepath.Join(t.TempDir(), "bad.png")})
	assert.Error(t, err)
}
