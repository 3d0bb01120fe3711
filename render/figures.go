package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/couchcryptid/storm-data-viz/colormap"
)

const dotRadius = 3

// panelRect is the map panel: the figure minus the margins and the
// colorbar gutter on the right.
func (r *Renderer) panelRect() image.Rectangle {
	return image.Rect(
		r.opts.Margin,
		r.opts.Margin,
		r.opts.Width-r.opts.Margin-colorbarGutter,
		r.opts.Height-r.opts.Margin,
	)
}

// fieldFrame maps the field's full extent onto the panel.
func fieldFrame(rect image.Rectangle, f Field) frame {
	lonMin, lonMax := axisRange(f.Lons)
	latMin, latMax := axisRange(f.Lats)
	return frame{rect: rect, lonMin: lonMin, lonMax: lonMax, latMin: latMin, latMax: latMax}
}

func axisRange(xs []float64) (float64, float64) {
	lo, hi := xs[0], xs[len(xs)-1]
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

func (r *Renderer) levelsFigure(f Field, varfamily, title string) (*image.RGBA, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("color levels: %w", err)
	}
	lv, err := colormap.LevelsFor(varfamily)
	if err != nil {
		return nil, fmt.Errorf("color levels: %w", err)
	}
	r.logger.Debug("palette resolved", "figure", "color_levels",
		"varfamily", varfamily, "palette", lv.Name)

	img := newCanvas(r.opts.Width, r.opts.Height)
	panel := r.panelRect()
	fr := fieldFrame(panel, f)
	paintField(img, fr, f, lv.ColorAt)
	r.drawGraticule(img, fr)
	strokeRect(img, panel, colorAxis)
	drawLevelsBar(img, panel, lv)
	r.finishFigure(img, title)
	return img, nil
}

func (r *Renderer) shadesFigure(f Field, varfamily, title string) (*image.RGBA, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("color shades: %w", err)
	}
	sh := colormap.ShadeFor(varfamily)
	rng := shadeRange(varfamily, f.Values...)
	r.logger.Debug("palette resolved", "figure", "color_shades",
		"varfamily", varfamily, "palette", sh.Name, "min", rng.Min, "max", rng.Max)

	img := newCanvas(r.opts.Width, r.opts.Height)
	panel := r.panelRect()
	fr := fieldFrame(panel, f)
	paintField(img, fr, f, func(v float64) color.NRGBA {
		return toNRGBA(sh.ColorAt(v, rng))
	})
	r.drawGraticule(img, fr)
	strokeRect(img, panel, colorAxis)
	drawShadeBar(img, panel, sh, rng)
	r.finishFigure(img, title)
	return img, nil
}

func (r *Renderer) overlayFigure(base, over Field, baseFamily, overFamily, title string) (*image.RGBA, error) {
	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("overlay base: %w", err)
	}
	if err := over.Validate(); err != nil {
		return nil, fmt.Errorf("overlay over: %w", err)
	}
	baseLv, err := colormap.LevelsFor(baseFamily)
	if err != nil {
		return nil, fmt.Errorf("overlay base: %w", err)
	}
	overLv, err := colormap.LevelsFor(overFamily)
	if err != nil {
		return nil, fmt.Errorf("overlay over: %w", err)
	}
	r.logger.Debug("palette resolved", "figure", "overlay",
		"base", baseLv.Name, "over", overLv.Name)

	img := newCanvas(r.opts.Width, r.opts.Height)
	panel := r.panelRect()
	// The base field sets the extent; the over field is sampled into it and
	// simply stops where its own grid ends.
	fr := fieldFrame(panel, base)
	paintField(img, fr, base, baseLv.ColorAt)
	paintField(img, fr, over, overLv.ColorAt)
	r.drawGraticule(img, fr)
	strokeRect(img, panel, colorAxis)
	drawLevelsBar(img, panel, baseLv)
	r.finishFigure(img, title)
	return img, nil
}

func (r *Renderer) scatterFigure(pts []Point, varfamily, title string) (*image.RGBA, error) {
	if len(pts) == 0 {
		return nil, errors.New("scatter needs at least one point")
	}
	sh := colormap.ShadeFor(varfamily)

	lons := make([]float64, len(pts))
	lats := make([]float64, len(pts))
	vals := make([]float64, len(pts))
	for i, p := range pts {
		lons[i], lats[i], vals[i] = p.Lon, p.Lat, p.Value
	}
	rng := shadeRange(varfamily, vals)

	img := newCanvas(r.opts.Width, r.opts.Height)
	panel := r.panelRect()
	pad := r.opts.GraticuleStep / 2
	lonExt := colormap.RangeOf(lons)
	latExt := colormap.RangeOf(lats)
	fr := frame{
		rect:   panel,
		lonMin: lonExt.Min - pad, lonMax: lonExt.Max + pad,
		latMin: latExt.Min - pad, latMax: latExt.Max + pad,
	}
	r.logger.Debug("panel framed", "figure", "scatter", "points", len(pts),
		"lon_min", fr.lonMin, "lon_max", fr.lonMax, "lat_min", fr.latMin, "lat_max", fr.latMax)
	r.drawGraticule(img, fr)
	strokeRect(img, panel, colorAxis)
	for i, p := range pts {
		fillCircle(img, fr.xAt(p.Lon), fr.yAt(p.Lat), dotRadius, toNRGBA(sh.ColorAt(vals[i], rng)))
	}
	drawShadeBar(img, panel, sh, rng)
	r.finishFigure(img, title)
	return img, nil
}

// drawGraticule draws dotted meridians and parallels across the frame with
// degree labels in the left and bottom margins.
func (r *Renderer) drawGraticule(img *image.RGBA, fr frame) {
	step := r.opts.GraticuleStep
	for lon := math.Ceil(fr.lonMin/step) * step; lon <= fr.lonMax; lon += step {
		x := fr.xAt(lon)
		dottedVLine(img, x, fr.rect.Min.Y, fr.rect.Max.Y-1, colorGrid)
		drawCentered(img, x, fr.rect.Max.Y+16, formatDegrees(lon, "E", "W"), colorAxis)
	}
	for lat := math.Ceil(fr.latMin/step) * step; lat <= fr.latMax; lat += step {
		y := fr.yAt(lat)
		dottedHLine(img, fr.rect.Min.X, fr.rect.Max.X-1, y, colorGrid)
		label := formatDegrees(lat, "N", "S")
		drawString(img, fr.rect.Min.X-stringWidth(label)-6, y+4, label, colorAxis)
	}
}

// formatDegrees renders a coordinate with its hemisphere suffix; the zero
// line is bare.
func formatDegrees(v float64, pos, neg string) string {
	switch {
	case v > 0:
		return formatTick(v) + pos
	case v < 0:
		return formatTick(-v) + neg
	default:
		return "0"
	}
}
