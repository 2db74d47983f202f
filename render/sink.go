package render

import "sync"

// Directive tells the sink what to do with a rendered chart.
type Directive struct {
	// Path is the output file for the chart , empty to skip saving.
	Path string `json:"path"`
	// Show displays the chart e.g. prints a preview to the terminal.
	Show bool `json:"show"`
}

// Sink renders a chart according to the given directive.
type Sink interface {
	Render(chart Chart, directive Directive) error
}

// Void is a dummy sink which ignores all render calls.
type Void struct {
}

// NewVoid creates a new void sink.
func NewVoid() *Void {
	return &Void{}
}

func (v Void) Render(chart Chart, directive Directive) error {
	return nil
}

// Local is an in-memory sink capturing the rendered charts.
// It allows the statistics to be asserted on without a display or file output.
type Local struct {
	mutex  *sync.RWMutex
	charts []Chart
}

// NewLocal creates a new local sink.
func NewLocal() *Local {
	return &Local{
		mutex:  new(sync.RWMutex),
		charts: make([]Chart, 0),
	}
}

func (l *Local) Render(chart Chart, directive Directive) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.charts = append(l.charts, chart)
	return nil
}

// Charts returns the captured charts.
func (l *Local) Charts() []Chart {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.charts
}
