package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"

	"github.com/couchcryptid/storm-data-viz/colormap"
)

// Renderer draws figures with a fixed set of options. The zero value is not
// usable; construct with [New].
type Renderer struct {
	opts   Options
	logger *slog.Logger
}

// New creates a Renderer. A nil logger disables logging.
func New(opts Options, logger *slog.Logger) (*Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("render options: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Renderer{opts: opts, logger: logger}, nil
}

// ColorShades writes a continuous-palette map of the field. The palette is
// chosen from varfamily; difference families get a range symmetric around
// zero so the neutral midpoint color lands on zero.
func (r *Renderer) ColorShades(w io.Writer, f Field, varfamily, title string) error {
	img, err := r.shadesFigure(f, varfamily, title)
	if err != nil {
		return err
	}
	return r.encode(w, "color_shades", title, img)
}

// ColorLevels writes a discrete-palette map of the field with a stepped
// colorbar. Fails if varfamily does not resolve to a discrete palette.
func (r *Renderer) ColorLevels(w io.Writer, f Field, varfamily, title string) error {
	img, err := r.levelsFigure(f, varfamily, title)
	if err != nil {
		return err
	}
	return r.encode(w, "color_levels", title, img)
}

// Overlay writes the base field as discrete levels with the over field
// layered on top of it. Bins of the over palette with a transparent color
// let the base show through, so sparse layers such as precipitation read as
// patches over the base map. The colorbar shows the base palette.
func (r *Renderer) Overlay(w io.Writer, base, over Field, baseFamily, overFamily, title string) error {
	img, err := r.overlayFigure(base, over, baseFamily, overFamily, title)
	if err != nil {
		return err
	}
	return r.encode(w, "overlay", title, img)
}

// Scatter writes point observations as filled dots over a labelled
// graticule, colored through the continuous palette for varfamily.
func (r *Renderer) Scatter(w io.Writer, pts []Point, varfamily, title string) error {
	img, err := r.scatterFigure(pts, varfamily, title)
	if err != nil {
		return err
	}
	return r.encode(w, "scatter", title, img)
}

// Comparison writes a 2x2 grid contrasting two scenes: the before and after
// overlays on the top row and the after-minus-before differences of both
// fields below, drawn with the symmetric difference palette.
func (r *Renderer) Comparison(w io.Writer, before, after Scene, baseFamily, overFamily, title string) error {
	img, err := r.comparisonFigure(before, after, baseFamily, overFamily, title)
	if err != nil {
		return err
	}
	return r.encode(w, "comparison", title, img)
}

func (r *Renderer) encode(w io.Writer, figure, title string, img *image.RGBA) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode %s figure: %w", figure, err)
	}
	b := img.Bounds()
	r.logger.Info("figure rendered", "figure", figure, "title", title,
		"width", b.Dx(), "height", b.Dy())
	return nil
}

// shadeRange picks the value range for a continuous palette. Difference
// families get a symmetric range so zero maps to the palette midpoint.
func shadeRange(varfamily string, rows ...[]float64) colormap.Range {
	if colormap.Classify(varfamily) == colormap.FamilyDifference {
		return colormap.SymmetricRange(rows...)
	}
	return colormap.RangeOf(rows...)
}
