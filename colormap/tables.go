package colormap

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Built-in discrete palettes. Constructed once at package init and handed out
// by value through LevelsFor; nothing mutates them afterwards.
var (
	// temperatureLevels spans -32 °C to 42 °C in 2 °C bins on the ECMWF-style
	// ramp: gray below -20, purple to -10, blue to 0, green to 10, yellow to
	// 20, orange to 30, red above.
	temperatureLevels = Levels{
		Name: "temperature",
		Bounds: []float64{
			-32, -30, -28, -26, -24, -22, -20, -18, -16, -14,
			-12, -10, -8, -6, -4, -2, 0, 2, 4, 6,
			8, 10, 12, 14, 16, 18, 20, 22, 24, 26,
			28, 30, 32, 34, 36, 38, 40, 42,
		},
		Colors: []color.NRGBA{
			{R: 76, G: 76, B: 76, A: 255},
			{R: 102, G: 102, B: 102, A: 255},
			{R: 128, G: 128, B: 128, A: 255},
			{R: 153, G: 153, B: 153, A: 255},
			{R: 179, G: 179, B: 179, A: 255},
			{R: 204, G: 204, B: 204, A: 255},
			{R: 89, G: 0, B: 153, A: 255},
			{R: 128, G: 0, B: 230, A: 255},
			{R: 153, G: 51, B: 255, A: 255},
			{R: 191, G: 102, B: 255, A: 255},
			{R: 217, G: 153, B: 255, A: 255},
			{R: 0, G: 0, B: 191, A: 255},
			{R: 0, G: 0, B: 255, A: 255},
			{R: 51, G: 102, B: 255, A: 255},
			{R: 102, G: 179, B: 255, A: 255},
			{R: 153, G: 230, B: 255, A: 255},
			{R: 0, G: 140, B: 48, A: 255},
			{R: 38, G: 191, B: 25, A: 255},
			{R: 128, G: 217, B: 0, A: 255},
			{R: 166, G: 243, B: 0, A: 255},
			{R: 204, G: 255, B: 51, A: 255},
			{R: 166, G: 166, B: 0, A: 255},
			{R: 204, G: 204, B: 0, A: 255},
			{R: 235, G: 235, B: 0, A: 255},
			{R: 255, G: 255, B: 0, A: 255},
			{R: 255, G: 255, B: 153, A: 255},
			{R: 217, G: 115, B: 0, A: 255},
			{R: 255, G: 128, B: 0, A: 255},
			{R: 255, G: 158, B: 0, A: 255},
			{R: 255, G: 189, B: 0, A: 255},
			{R: 255, G: 217, B: 0, A: 255},
			{R: 153, G: 0, B: 0, A: 255},
			{R: 204, G: 0, B: 0, A: 255},
			{R: 255, G: 0, B: 0, A: 255},
			{R: 255, G: 102, B: 102, A: 255},
			{R: 255, G: 153, B: 153, A: 255},
			{R: 255, G: 191, B: 191, A: 255},
		},
	}

	// windLevels covers wind speed in knots. Bins widen at the top; the last
	// interval runs to 300 kt so any physically plausible gust still lands in
	// the black bin rather than clamping oddly.
	windLevels = Levels{
		Name:   "wind",
		Bounds: []float64{0, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70, 300},
		Colors: cssColors(
			"white", "lightblue", "lightsteelblue", "cornflowerblue",
			"royalblue", "yellowgreen", "limegreen", "yellow",
			"orange", "red", "brown", "black",
		),
	}

	// radarLevels covers rain rate in mm/h on the usual pseudo-logarithmic
	// thresholds. The first bin is fully transparent so dry areas disappear
	// when the palette is drawn over another field.
	radarLevels = Levels{
		Name:   "radar",
		Bounds: []float64{0, 0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 200},
		Colors: []color.NRGBA{
			{R: 255, G: 255, B: 255, A: 0},
			{R: 255, G: 163, B: 52, A: 255},
			{R: 116, G: 255, B: 78, A: 255},
			{R: 0, G: 205, B: 61, A: 255},
			{R: 0, G: 255, B: 254, A: 255},
			{R: 133, G: 207, B: 232, A: 255},
			{R: 30, G: 22, B: 246, A: 255},
			{R: 241, G: 129, B: 232, A: 255},
			{R: 211, G: 23, B: 140, A: 255},
			{R: 153, G: 153, B: 153, A: 255},
		},
	}
)

// cssColors resolves CSS color names through the SVG 1.1 table. Unknown names
// are a programmer error in the tables above, caught at init.
func cssColors(names ...string) []color.NRGBA {
	out := make([]color.NRGBA, len(names))
	for i, n := range names {
		c, ok := colornames.Map[n]
		if !ok {
			panic("colormap: unknown css color name " + n)
		}
		out[i] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return out
}
