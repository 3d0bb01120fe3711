// Command preview renders one sample PNG per figure kind from the synthetic
// dataset. It exists to eyeball palette and layout changes during
// development; nothing ships from here.
//
// Usage:
//
//	go run ./cmd/preview -out /tmp/viz
//
// Figure geometry comes from the VIZ_* environment variables; -width and
// -height override the environment when set.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/couchcryptid/storm-data-viz/internal/synthetic"
	"github.com/couchcryptid/storm-data-viz/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "out", "output directory for PNG figures")
	width := flag.Int("width", 0, "figure width in pixels (overrides VIZ_FIG_WIDTH)")
	height := flag.Int("height", 0, "figure height in pixels (overrides VIZ_FIG_HEIGHT)")
	flag.Parse()

	opts, err := render.OptionsFromEnv()
	if err != nil {
		return err
	}
	if *width > 0 {
		opts.Width = *width
	}
	if *height > 0 {
		opts.Height = *height
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	r, err := render.New(opts, logger)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	figures := []struct {
		name   string
		render func(io.Writer) error
	}{
		{"temperature_levels.png", func(w io.Writer) error {
			return r.ColorLevels(w, synthetic.Temperature(), "T", "2m temperature")
		}},
		{"temperature_shades.png", func(w io.Writer) error {
			return r.ColorShades(w, synthetic.Temperature(), "T", "2m temperature")
		}},
		{"wind_levels.png", func(w io.Writer) error {
			return r.ColorLevels(w, synthetic.WindSpeed(), "FF", "10m wind speed")
		}},
		{"precipitation_overlay.png", func(w io.Writer) error {
			return r.Overlay(w, synthetic.Temperature(), synthetic.Precipitation(),
				"T", "RR", "temperature and precipitation")
		}},
		{"observations_scatter.png", func(w io.Writer) error {
			return r.Scatter(w, synthetic.Observations(), "T", "station observations")
		}},
		{"comparison.png", func(w io.Writer) error {
			before := render.Scene{Base: synthetic.Temperature(), Over: synthetic.Precipitation()}
			after := render.Scene{Base: synthetic.WarmedTemperature(), Over: synthetic.HeavierPrecipitation()}
			return r.Comparison(w, before, after, "T", "RR", "run comparison")
		}},
		{"gust_plumes.png", func(w io.Writer) error {
			return r.Plumes(w, synthetic.GustEnsemble(), "gust plumes")
		}},
		{"gust_quantiles.png", func(w io.Writer) error {
			return r.Quantiles(w, synthetic.GustEnsemble(), nil, "gust quantiles")
		}},
	}

	for _, fig := range figures {
		path := filepath.Join(*out, fig.name)
		if err := writeFigure(path, fig.render); err != nil {
			return fmt.Errorf("%s: %w", fig.name, err)
		}
		log.Printf("wrote %s", path)
	}
	return nil
}

func writeFigure(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
