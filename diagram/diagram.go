// Package diagram assembles the calibration statistics into drawable charts
// and hands them to the configured rendering sink.
package diagram

import (
	"fmt"

	"github.com/drakos74/calib/internal/metrics"
	"github.com/drakos74/calib/internal/storage"
	"github.com/drakos74/calib/render"
	"github.com/rs/zerolog/log"
)

// Plotter renders calibration diagrams through a sink,
// optionally persisting the computed series.
type Plotter struct {
	sink  render.Sink
	store storage.Persistence
}

// New creates a new plotter with a void sink and no persistence.
func New() *Plotter {
	return &Plotter{
		sink:  render.NewVoid(),
		store: storage.NewVoidStorage(),
	}
}

// WithSink sets the rendering sink.
func (p *Plotter) WithSink(sink render.Sink) *Plotter {
	p.sink = sink
	return p
}

// WithStorage sets the persistence for the computed series.
func (p *Plotter) WithStorage(store storage.Persistence) *Plotter {
	p.store = store
	return p
}

// render persists the series and hands the chart to the sink.
func (p *Plotter) render(name string, chart render.Chart, series interface{}, cfg Config) (render.Chart, error) {
	if err := p.store.Store(storage.Key{Name: name, Label: chart.ID}, series); err != nil {
		// persistence is best effort , the chart is still rendered
		log.Warn().Err(err).Str("diagram", name).Msg("could not persist series")
	}

	if err := p.sink.Render(chart, render.Directive{Path: cfg.Path, Show: cfg.Show}); err != nil {
		return chart, fmt.Errorf("could not render %s: %w", name, err)
	}

	metrics.Observer.Increment(name, fmt.Sprintf("%T", p.sink))
	log.Info().
		Str("diagram", name).
		Str("id", chart.ID).
		Str("path", cfg.Path).
		Msg("rendered diagram")
	return chart, nil
}
