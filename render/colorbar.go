package render

import (
	"image"
	"image/color"
	"strconv"

	"github.com/couchcryptid/storm-data-viz/colormap"
)

const (
	barOffset = 18
	barWidth  = 14
	capHeight = 12
)

// drawLevelsBar draws a stepped colorbar right of the panel, one swatch per
// palette bin stacked bottom-up, with triangular clamp caps in the end
// colors and ticks at the interior bounds.
func drawLevelsBar(img *image.RGBA, panel image.Rectangle, lv colormap.Levels) {
	barX := panel.Max.X + barOffset
	barTop := panel.Min.Y + capHeight
	barBottom := panel.Max.Y - capHeight
	barH := barBottom - barTop
	n := len(lv.Colors)
	if n == 0 || barH < n {
		return
	}

	boundaryY := func(k int) int { return barBottom - k*barH/n }

	for k, c := range lv.Colors {
		fillRect(img, image.Rect(barX, boundaryY(k+1), barX+barWidth, boundaryY(k)), c)
	}
	drawCap(img, barX, barTop-1, -1, lv.Colors[n-1])
	drawCap(img, barX, barBottom, 1, lv.Colors[0])
	strokeRect(img, image.Rect(barX, barTop, barX+barWidth, barBottom), colorAxis)

	// Thin the labels when swatches are narrower than a text line; the tick
	// marks still show every boundary.
	every := 1
	if barH/n < 14 {
		every = (14*n + barH - 1) / barH
	}
	for k := 1; k < n; k++ {
		y := boundaryY(k)
		hline(img, barX+barWidth, barX+barWidth+4, y, colorAxis)
		if k%every == 0 {
			drawString(img, barX+barWidth+7, y+4, formatTick(lv.Bounds[k]), colorText)
		}
	}
}

// drawShadeBar draws a continuous colorbar right of the panel, sampled per
// row, with clamp caps in the end colors and value labels at the quarters
// of the range.
func drawShadeBar(img *image.RGBA, panel image.Rectangle, sh colormap.Shade, rng colormap.Range) {
	barX := panel.Max.X + barOffset
	barTop := panel.Min.Y + capHeight
	barBottom := panel.Max.Y - capHeight
	barH := barBottom - barTop
	if barH < 4 {
		return
	}

	for y := barTop; y < barBottom; y++ {
		t := float64(barBottom-1-y) / float64(barH-1)
		hline(img, barX, barX+barWidth-1, y, toNRGBA(sh.At(t)))
	}
	drawCap(img, barX, barTop-1, -1, toNRGBA(sh.At(1)))
	drawCap(img, barX, barBottom, 1, toNRGBA(sh.At(0)))
	strokeRect(img, image.Rect(barX, barTop, barX+barWidth, barBottom), colorAxis)

	for k := 0; k <= 4; k++ {
		t := float64(k) / 4
		y := barBottom - int(t*float64(barH))
		if k == 4 {
			y = barTop
		}
		hline(img, barX+barWidth, barX+barWidth+4, y, colorAxis)
		v := rng.Min + t*(rng.Max-rng.Min)
		drawString(img, barX+barWidth+7, y+4, formatTick(v), colorText)
	}
}

// drawCap fills a triangular clamp cap. start is the cap row touching the
// bar and dir is -1 to grow upward or 1 to grow downward.
func drawCap(img *image.RGBA, barX, start, dir int, c color.NRGBA) {
	for row := 0; row < capHeight; row++ {
		inset := row * barWidth / (2 * capHeight)
		hline(img, barX+inset, barX+barWidth-1-inset, start+dir*row, c)
	}
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
