package diagram

// the reference bin counts of the diagrams
const (
	DefaultReliabilityBins = 100
	DefaultConfidenceBins  = 20
	DefaultCurveBins       = 1000
	DefaultTrajectorySteps = 1000
)

// Config carries the scalar configuration of a diagram.
// The zero value defers to the per-diagram defaults.
type Config struct {
	// Title overrides the default chart title.
	Title string `json:"title"`
	// Bins is the number of confidence bins , or threshold steps for trajectories.
	Bins int `json:"bins"`
	// Lo , Hi override the confidence range.
	// Both zero defers to [1/classes , 1] where applicable.
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
	// ShowECE annotates the reliability diagram with the expected calibration error.
	ShowECE bool `json:"show_ece"`
	// Corridor draws the theoretical calibration corridor on the trajectories.
	Corridor bool `json:"corridor"`
	// Path is the output file for the rendered chart , empty to skip saving.
	Path string `json:"path"`
	// Show displays the chart through the sink.
	Show bool `json:"show"`
}

func (c Config) withDefaults(title string, bins int) Config {
	if c.Title == "" {
		c.Title = title
	}
	if c.Bins <= 0 {
		c.Bins = bins
	}
	return c
}
