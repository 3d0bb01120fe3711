package render

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var textFace = basicfont.Face7x13

var (
	colorBackground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorAxis       = color.NRGBA{R: 64, G: 64, B: 64, A: 0xff}
	colorGrid       = color.NRGBA{R: 205, G: 205, B: 205, A: 0xff}
	colorText       = color.NRGBA{R: 30, G: 30, B: 30, A: 0xff}
	colorFooter     = color.NRGBA{R: 120, G: 120, B: 120, A: 0xff}
)

// newCanvas allocates a white canvas of the given size.
func newCanvas(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)
	return img
}

// drawString renders s with its baseline starting at (x, y).
func drawString(img *image.RGBA, x, y int, s string, c color.NRGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: textFace,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(s)
}

// stringWidth returns the advance width of s in pixels.
func stringWidth(s string) int {
	return font.MeasureString(textFace, s).Ceil()
}

// drawCentered renders s horizontally centered on x with baseline y.
func drawCentered(img *image.RGBA, x, y int, s string, c color.NRGBA) {
	drawString(img, x-stringWidth(s)/2, y, s, c)
}

// stampFooter writes the generation timestamp in the bottom-left corner.
func stampFooter(img *image.RGBA) {
	stamp := "generated " + clock.Now().UTC().Format(time.RFC3339)
	b := img.Bounds()
	drawString(img, b.Min.X+8, b.Max.Y-6, stamp, colorFooter)
}

// finishFigure draws the centered title in the top margin and, when the
// options ask for it, the footer stamp.
func (r *Renderer) finishFigure(img *image.RGBA, title string) {
	if title != "" {
		drawCentered(img, r.opts.Width/2, r.opts.Margin-16, title, colorText)
	}
	if r.opts.Footer {
		stampFooter(img)
	}
}
