package colormap

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/colorgrad"
)

// Continuous gradient names. ShadeNameFor hands these out and ShadeByName
// accepts them.
const (
	ShadeRainbow  = "rainbow"
	ShadeSpring   = "spring"
	ShadeBWR      = "bwr"
	ShadeViridis  = "viridis"
	ShadeTwilight = "twilight"
)

// Shade is a continuous palette: a named gradient sampled at normalized
// positions in [0, 1].
type Shade struct {
	Name string
	at   func(t float64) color.Color
}

// At samples the gradient at t. Positions outside [0, 1] clamp to the
// endpoint colors; NaN samples are fully transparent.
func (s Shade) At(t float64) color.Color {
	if math.IsNaN(t) {
		return color.NRGBA{}
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return s.at(t)
}

// ColorAt normalizes v against r and samples the gradient there. Values
// outside the range clamp to the endpoint colors.
func (s Shade) ColorAt(v float64, r Range) color.Color {
	return s.At(r.Normalize(v))
}

// ShadeNameFor resolves the continuous gradient name for a variable-family
// token. Unlike LevelsFor it never fails: radar has no continuous gradient of
// its own, so it falls back to the default together with unmatched tokens.
func ShadeNameFor(varfamily string) string {
	switch Classify(varfamily) {
	case FamilyTemperature:
		return ShadeRainbow
	case FamilyWind:
		return ShadeSpring
	case FamilyDifference:
		return ShadeBWR
	default:
		return ShadeViridis
	}
}

// ShadeFor resolves the continuous palette itself. Total for the same reason
// as ShadeNameFor.
func ShadeFor(varfamily string) Shade {
	return shades[ShadeNameFor(varfamily)]
}

// ShadeByName looks up a gradient in the registry.
func ShadeByName(name string) (Shade, bool) {
	s, ok := shades[name]
	return s, ok
}

// Range is the value interval a continuous palette spans.
type Range struct {
	Min, Max float64
}

// Normalize maps v into [0, 1] over the range, clamped at both ends. A
// degenerate range (Max <= Min) maps everything to the midpoint so uniform
// fields still pick up a definite color.
func (r Range) Normalize(v float64) float64 {
	if math.IsNaN(v) {
		return math.NaN()
	}
	if r.Max <= r.Min {
		return 0.5
	}
	t := (v - r.Min) / (r.Max - r.Min)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// RangeOf returns the min/max over the given rows, skipping NaNs. All-NaN or
// empty input yields the degenerate zero Range.
func RangeOf(rows ...[]float64) Range {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range rows {
		for _, v := range row {
			if math.IsNaN(v) {
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if lo > hi {
		return Range{}
	}
	return Range{Min: lo, Max: hi}
}

// SymmetricRange returns a zero-centered range covering ±max|v|, the
// difference-field convention: the neutral midpoint color always sits at
// zero. An all-zero input yields the degenerate zero Range, which still
// normalizes to the midpoint.
func SymmetricRange(rows ...[]float64) Range {
	var m float64
	for _, row := range rows {
		for _, v := range row {
			if math.IsNaN(v) {
				continue
			}
			if a := math.Abs(v); a > m {
				m = a
			}
		}
	}
	if m == 0 {
		return Range{}
	}
	return Range{Min: -m, Max: m}
}

// shades is the continuous palette registry, built once at init.
var shades = buildShades()

func buildShades() map[string]Shade {
	return map[string]Shade{
		ShadeRainbow: presetShade(ShadeRainbow, colorgrad.Rainbow()),
		ShadeViridis: presetShade(ShadeViridis, colorgrad.Viridis()),
		ShadeSpring: blendShade(ShadeSpring, []blendStop{
			{mustHex("#ff00ff"), 0},
			{mustHex("#ffff00"), 1},
		}),
		ShadeBWR: blendShade(ShadeBWR, []blendStop{
			{mustHex("#0000ff"), 0},
			{mustHex("#ffffff"), 0.5},
			{mustHex("#ff0000"), 1},
		}),
		// A compact five-stop approximation of the cyclic twilight scheme:
		// light at both ends, blue on the way down, red on the way back.
		ShadeTwilight: blendShade(ShadeTwilight, []blendStop{
			{mustHex("#e2d9e2"), 0},
			{mustHex("#5960a6"), 0.25},
			{mustHex("#2f1436"), 0.5},
			{mustHex("#a8595c"), 0.75},
			{mustHex("#e2d9e2"), 1},
		}),
	}
}

func presetShade(name string, grad colorgrad.Gradient) Shade {
	return Shade{Name: name, at: func(t float64) color.Color {
		return grad.At(t)
	}}
}

// blendStop is a gradient keypoint. Stops must be sorted by position, start
// at 0, and end at 1.
type blendStop struct {
	col colorful.Color
	pos float64
}

// blendShade interpolates between keypoints in HCL space, which keeps
// perceived lightness smooth between stops.
func blendShade(name string, stops []blendStop) Shade {
	return Shade{Name: name, at: func(t float64) color.Color {
		for i := 0; i < len(stops)-1; i++ {
			s1, s2 := stops[i], stops[i+1]
			if s1.pos <= t && t <= s2.pos {
				f := (t - s1.pos) / (s2.pos - s1.pos)
				return s1.col.BlendHcl(s2.col, f).Clamped()
			}
		}
		return stops[len(stops)-1].col
	}}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("colormap: bad hex literal " + s)
	}
	return c
}
