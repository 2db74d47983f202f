package main

import (
	"flag"
	"math/rand"
	"path/filepath"

	"github.com/drakos74/calib/calibration"
	"github.com/drakos74/calib/diagram"
	"github.com/drakos74/calib/infra/config"
	json_storage "github.com/drakos74/calib/internal/storage/file/json"
	"github.com/drakos74/calib/render/ascii"
	"github.com/drakos74/calib/render/gplot"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

type defaults struct {
	Bins    int     `json:"bins"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Dir     string  `json:"dir"`
	ShowECE bool    `json:"show_ece"`
}

func main() {
	var (
		n       = flag.Int("n", 10000, "number of synthetic samples")
		skew    = flag.Float64("skew", 2, "calibration skew of the synthetic classifier , 1 is calibrated")
		seed    = flag.Int64("seed", 0, "random seed")
		dir     = flag.String("dir", "", "output directory for the charts , overrides the config")
		preview = flag.Bool("preview", false, "print a terminal preview of the charts")
	)
	flag.Parse()

	var cfg defaults
	config.MustLoad("diagram", &cfg)
	if *dir != "" {
		cfg.Dir = *dir
	}

	run := uuid.New().String()
	log.Info().
		Str("run", run).
		Int("samples", *n).
		Float64("skew", *skew).
		Msg("generating synthetic classifier output")

	rnd := rand.New(rand.NewSource(*seed))
	y, pPred := calibration.Synthetic(rnd, *n, *skew)
	s, err := calibration.New(y, pPred)
	if err != nil {
		log.Fatal().Err(err).Msg("could not build sample set")
	}
	yPred := s.Predictions()

	plotter := diagram.New().
		WithSink(gplot.New(cfg.Width, cfg.Height)).
		WithStorage(json_storage.NewStorage(filepath.Join(cfg.Dir, "series")))

	charts := map[string]func() error{
		"reliability.png": func() error {
			_, err := plotter.Reliability(y, pPred, diagram.Config{
				Bins:    cfg.Bins,
				ShowECE: cfg.ShowECE,
				Path:    filepath.Join(cfg.Dir, "reliability.png"),
			})
			return err
		},
		"confidence.png": func() error {
			_, err := plotter.ConfidenceSplit(y, yPred, pPred, diagram.Config{
				Path: filepath.Join(cfg.Dir, "confidence.png"),
			})
			return err
		},
		"curve.png": func() error {
			_, err := plotter.OverUnderCurve(y, yPred, pPred, diagram.Config{
				Path: filepath.Join(cfg.Dir, "curve.png"),
			})
			return err
		},
		"trajectories.png": func() error {
			_, err := plotter.Trajectories(y, yPred, pPred, diagram.Config{
				Corridor: true,
				Path:     filepath.Join(cfg.Dir, "trajectories.png"),
			})
			return err
		},
		"smoothmax.png": func() error {
			_, err := plotter.SmoothMax(nil, diagram.Config{
				Path: filepath.Join(cfg.Dir, "smoothmax.png"),
			})
			return err
		},
	}

	for name, plot := range charts {
		if err := plot(); err != nil {
			log.Error().Err(err).Str("chart", name).Msg("could not render chart")
		}
	}

	if *preview {
		term := diagram.New().WithSink(ascii.New())
		if _, err := term.Reliability(y, pPred, diagram.Config{Bins: 20, Show: true}); err != nil {
			log.Error().Err(err).Msg("could not preview reliability")
		}
	}

	log.Info().Str("run", run).Str("dir", cfg.Dir).Msg("done")
}
