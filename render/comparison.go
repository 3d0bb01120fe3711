package render

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/couchcryptid/storm-data-viz/colormap"
)

// comparisonFigure renders its four panels at full figure size, then scales
// them into the quadrants of one canvas under a shared title band.
func (r *Renderer) comparisonFigure(before, after Scene, baseFamily, overFamily, title string) (*image.RGBA, error) {
	baseDiff, err := Diff(after.Base, before.Base)
	if err != nil {
		return nil, fmt.Errorf("comparison base: %w", err)
	}
	overDiff, err := Diff(after.Over, before.Over)
	if err != nil {
		return nil, fmt.Errorf("comparison over: %w", err)
	}

	sub := r.subRenderer()
	cells := make([]*image.RGBA, 4)
	builders := []func() (*image.RGBA, error){
		func() (*image.RGBA, error) {
			return sub.overlayFigure(before.Base, before.Over, baseFamily, overFamily, "before")
		},
		func() (*image.RGBA, error) {
			return sub.overlayFigure(after.Base, after.Over, baseFamily, overFamily, "after")
		},
		func() (*image.RGBA, error) {
			return sub.shadesFigure(baseDiff, "diff", colormap.Classify(baseFamily).String()+" difference")
		},
		func() (*image.RGBA, error) {
			return sub.shadesFigure(overDiff, "diff", colormap.Classify(overFamily).String()+" difference")
		},
	}
	for k, build := range builders {
		cell, err := build()
		if err != nil {
			return nil, fmt.Errorf("comparison: %w", err)
		}
		cells[k] = cell
	}

	img := newCanvas(r.opts.Width, r.opts.Height)
	cellW := r.opts.Width / 2
	cellH := (r.opts.Height - r.opts.Margin) / 2
	for k, cell := range cells {
		x0 := (k % 2) * cellW
		y0 := r.opts.Margin + (k/2)*cellH
		dst := image.Rect(x0, y0, x0+cellW, y0+cellH)
		xdraw.BiLinear.Scale(img, dst, cell, cell.Bounds(), xdraw.Over, nil)
	}
	r.finishFigure(img, title)
	return img, nil
}

// subRenderer is a copy used for the cells of a composite figure: same
// geometry, no footer. The composite stamps one footer for the whole figure.
func (r *Renderer) subRenderer() *Renderer {
	sub := *r
	sub.opts.Footer = false
	return &sub
}
