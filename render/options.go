package render

import (
	"errors"
	"os"
	"strconv"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

const (
	// colorbarGutter is the horizontal room reserved right of the map panel
	// for the colorbar, its clamp caps and its tick labels.
	colorbarGutter = 96

	// minPanelSize is the smallest map panel worth rasterizing.
	minPanelSize = 64
)

// Options holds figure settings shared by every renderer method.
type Options struct {
	// Width and Height are the output image size in pixels.
	Width  int
	Height int

	// Margin is the border around the map panel, in pixels. Titles render
	// inside the top margin and graticule labels inside the left and bottom
	// margins.
	Margin int

	// GraticuleStep is the spacing of graticule lines in degrees.
	GraticuleStep float64

	// Footer stamps a generation timestamp into the bottom margin.
	Footer bool
}

// DefaultOptions returns the settings used when no environment overrides
// are present.
func DefaultOptions() Options {
	return Options{
		Width:         900,
		Height:        700,
		Margin:        48,
		GraticuleStep: 5,
		Footer:        true,
	}
}

// Validate checks that a panel of useful size remains once the margins and
// the colorbar gutter are carved out of the figure.
func (o Options) Validate() error {
	if o.Margin < 24 {
		return errors.New("margin must be at least 24 pixels")
	}
	if o.Width-2*o.Margin-colorbarGutter < minPanelSize {
		return errors.New("width leaves no room for the map panel")
	}
	if o.Height-2*o.Margin < minPanelSize {
		return errors.New("height leaves no room for the map panel")
	}
	if o.GraticuleStep <= 0 {
		return errors.New("graticule step must be positive")
	}
	return nil
}

// OptionsFromEnv reads figure settings from environment variables, applying
// defaults where unset.
func OptionsFromEnv() (Options, error) {
	opts := DefaultOptions()

	var err error
	if opts.Width, err = parseEnvInt("VIZ_FIG_WIDTH", opts.Width); err != nil {
		return Options{}, err
	}
	if opts.Height, err = parseEnvInt("VIZ_FIG_HEIGHT", opts.Height); err != nil {
		return Options{}, err
	}
	if opts.Margin, err = parseEnvInt("VIZ_MARGIN", opts.Margin); err != nil {
		return Options{}, err
	}

	stepStr := sharedcfg.EnvOrDefault("VIZ_GRATICULE_STEP", strconv.FormatFloat(opts.GraticuleStep, 'g', -1, 64))
	step, err := strconv.ParseFloat(stepStr, 64)
	if err != nil {
		return Options{}, errors.New("invalid VIZ_GRATICULE_STEP")
	}
	opts.GraticuleStep = step

	if v := os.Getenv("VIZ_FOOTER"); v != "" {
		opts.Footer = v == "true"
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func parseEnvInt(key string, def int) (int, error) {
	s := sharedcfg.EnvOrDefault(key, strconv.Itoa(def))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("invalid " + key)
	}
	return n, nil
}
