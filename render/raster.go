package render

import (
	"image"
	"image/color"
	"math"
)

// frame maps a geographic extent onto a pixel rectangle. Latitude is
// flipped so the top row of the rectangle is the northern edge.
type frame struct {
	rect           image.Rectangle
	lonMin, lonMax float64
	latMin, latMax float64
}

// lonAt returns the longitude at pixel column x, sampled at the pixel center.
func (fr frame) lonAt(x int) float64 {
	t := (float64(x-fr.rect.Min.X) + 0.5) / float64(fr.rect.Dx())
	return fr.lonMin + t*(fr.lonMax-fr.lonMin)
}

// latAt returns the latitude at pixel row y, sampled at the pixel center.
func (fr frame) latAt(y int) float64 {
	t := (float64(y-fr.rect.Min.Y) + 0.5) / float64(fr.rect.Dy())
	return fr.latMax - t*(fr.latMax-fr.latMin)
}

// xAt returns the pixel column of a longitude.
func (fr frame) xAt(lon float64) int {
	t := (lon - fr.lonMin) / (fr.lonMax - fr.lonMin)
	return fr.rect.Min.X + int(math.Round(t*float64(fr.rect.Dx()-1)))
}

// yAt returns the pixel row of a latitude.
func (fr frame) yAt(lat float64) int {
	t := (fr.latMax - lat) / (fr.latMax - fr.latMin)
	return fr.rect.Min.Y + int(math.Round(t*float64(fr.rect.Dy()-1)))
}

// gridPos is a located sample along one axis: the lower cell index and the
// fraction through that cell.
type gridPos struct {
	i  int
	f  float64
	ok bool
}

// locate finds v along a strictly monotonic axis, in either direction.
// ok is false when v falls outside the axis beyond a small tolerance that
// absorbs floating-point drift at the grid edges.
func locate(axis []float64, v float64) (int, float64, bool) {
	if math.IsNaN(v) {
		return 0, 0, false
	}
	lo, hi := axis[0], axis[len(axis)-1]
	asc := hi > lo
	if !asc {
		lo, hi = hi, lo
	}
	tol := (hi - lo) * 1e-9
	if v < lo-tol || v > hi+tol {
		return 0, 0, false
	}
	v = math.Min(math.Max(v, lo), hi)
	if asc {
		for i := 1; i < len(axis); i++ {
			if v <= axis[i] {
				return i - 1, (v - axis[i-1]) / (axis[i] - axis[i-1]), true
			}
		}
	} else {
		for i := 1; i < len(axis); i++ {
			if v >= axis[i] {
				return i - 1, (axis[i-1] - v) / (axis[i-1] - axis[i]), true
			}
		}
	}
	return len(axis) - 2, 1, true
}

// lerp2 bilinearly interpolates the four grid values around a sample point.
// NaN in any corner poisons the result.
func lerp2(v00, v10, v01, v11, fx, fy float64) float64 {
	top := v00 + fx*(v10-v00)
	bot := v01 + fx*(v11-v01)
	return top + fy*(bot-top)
}

// paintField rasterizes a field into the frame. Every pixel is bilinearly
// sampled from the grid and classified through colorAt; pixels outside the
// grid or with NaN in their neighborhood stay untouched. Column positions
// are located once and reused across rows.
func paintField(img *image.RGBA, fr frame, f Field, colorAt func(float64) color.NRGBA) {
	cols := make([]gridPos, fr.rect.Dx())
	for k := range cols {
		i, fx, ok := locate(f.Lons, fr.lonAt(fr.rect.Min.X+k))
		cols[k] = gridPos{i, fx, ok}
	}

	for y := fr.rect.Min.Y; y < fr.rect.Max.Y; y++ {
		j, fy, ok := locate(f.Lats, fr.latAt(y))
		if !ok {
			continue
		}
		for x := fr.rect.Min.X; x < fr.rect.Max.X; x++ {
			cp := cols[x-fr.rect.Min.X]
			if !cp.ok {
				continue
			}
			v := lerp2(
				f.Values[j][cp.i], f.Values[j][cp.i+1],
				f.Values[j+1][cp.i], f.Values[j+1][cp.i+1],
				cp.f, fy,
			)
			if math.IsNaN(v) {
				continue
			}
			setOver(img, x, y, colorAt(v))
		}
	}
}

// setOver draws src over the pixel at (x, y) with source-over blending.
// Fully transparent sources and out-of-bounds pixels are skipped.
func setOver(img *image.RGBA, x, y int, src color.NRGBA) {
	if src.A == 0 || !(image.Point{X: x, Y: y}.In(img.Rect)) {
		return
	}
	if src.A == 0xff {
		img.SetRGBA(x, y, color.RGBA{R: src.R, G: src.G, B: src.B, A: 0xff})
		return
	}

	sr, sg, sb, sa := src.RGBA()
	d := img.RGBAAt(x, y)
	inv := 0xffff - sa
	out := color.RGBA{
		R: uint8((sr + uint32(d.R)*0x101*inv/0xffff) >> 8),
		G: uint8((sg + uint32(d.G)*0x101*inv/0xffff) >> 8),
		B: uint8((sb + uint32(d.B)*0x101*inv/0xffff) >> 8),
		A: uint8((sa + uint32(d.A)*0x101*inv/0xffff) >> 8),
	}
	img.SetRGBA(x, y, out)
}

func fillRect(img *image.RGBA, rect image.Rectangle, c color.NRGBA) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			setOver(img, x, y, c)
		}
	}
}

func hline(img *image.RGBA, x0, x1, y int, c color.NRGBA) {
	for x := x0; x <= x1; x++ {
		setOver(img, x, y, c)
	}
}

func vline(img *image.RGBA, x, y0, y1 int, c color.NRGBA) {
	for y := y0; y <= y1; y++ {
		setOver(img, x, y, c)
	}
}

// dottedHLine draws a horizontal line with 2-on 2-off dashing.
func dottedHLine(img *image.RGBA, x0, x1, y int, c color.NRGBA) {
	for x := x0; x <= x1; x++ {
		if (x-x0)%4 < 2 {
			setOver(img, x, y, c)
		}
	}
}

// dottedVLine draws a vertical line with 2-on 2-off dashing.
func dottedVLine(img *image.RGBA, x, y0, y1 int, c color.NRGBA) {
	for y := y0; y <= y1; y++ {
		if (y-y0)%4 < 2 {
			setOver(img, x, y, c)
		}
	}
}

// strokeRect outlines the rectangle with a 1-pixel border just inside it.
func strokeRect(img *image.RGBA, rect image.Rectangle, c color.NRGBA) {
	hline(img, rect.Min.X, rect.Max.X-1, rect.Min.Y, c)
	hline(img, rect.Min.X, rect.Max.X-1, rect.Max.Y-1, c)
	vline(img, rect.Min.X, rect.Min.Y, rect.Max.Y-1, c)
	vline(img, rect.Max.X-1, rect.Min.Y, rect.Max.Y-1, c)
}

// fillCircle fills a disc of the given radius centered at (cx, cy).
func fillCircle(img *image.RGBA, cx, cy, radius int, c color.NRGBA) {
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				setOver(img, cx+dx, cy+dy, c)
			}
		}
	}
}
