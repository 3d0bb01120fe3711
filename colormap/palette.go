package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"slices"
)

// ErrUnknownFamily is returned by LevelsFor when the token classifies to a
// category with no discrete palette. Discrete rendering needs an exact
// boundary table, so there is no generic fallback to reach for.
var ErrUnknownFamily = errors.New("unknown variable family")

// Levels is a discrete palette: N+1 strictly increasing boundaries and one
// color per half-open interval [Bounds[i], Bounds[i+1]).
type Levels struct {
	Name   string
	Bounds []float64
	Colors []color.NRGBA
}

// LevelsFor resolves the discrete palette for a variable-family token. Only
// temperature, wind, and radar carry discrete palettes; every other token,
// including "diff", fails with ErrUnknownFamily. The returned Levels is an
// independent copy, so callers can adjust it without affecting later
// resolutions.
func LevelsFor(varfamily string) (Levels, error) {
	switch Classify(varfamily) {
	case FamilyTemperature:
		return temperatureLevels.clone(), nil
	case FamilyWind:
		return windLevels.clone(), nil
	case FamilyRadar:
		return radarLevels.clone(), nil
	default:
		return Levels{}, fmt.Errorf("%w: %q", ErrUnknownFamily, varfamily)
	}
}

// ColorAt returns the color of the interval containing v. Values below the
// first boundary or at or above the last clamp to the extreme intervals,
// matching the "extend both ends" colorbar convention. NaN maps to a fully
// transparent color so missing data stays blank.
func (l Levels) ColorAt(v float64) color.NRGBA {
	if len(l.Colors) == 0 || math.IsNaN(v) {
		return color.NRGBA{}
	}
	if v < l.Bounds[0] {
		return l.Colors[0]
	}
	for i := 1; i < len(l.Bounds)-1; i++ {
		if v < l.Bounds[i] {
			return l.Colors[i-1]
		}
	}
	return l.Colors[len(l.Colors)-1]
}

// Validate checks the palette invariants: at least one interval, exactly one
// color per interval, and strictly increasing boundaries.
func (l Levels) Validate() error {
	if len(l.Bounds) < 2 {
		return fmt.Errorf("palette %q: need at least two boundaries, got %d", l.Name, len(l.Bounds))
	}
	if len(l.Colors) != len(l.Bounds)-1 {
		return fmt.Errorf("palette %q: %d colors for %d boundaries, want %d",
			l.Name, len(l.Colors), len(l.Bounds), len(l.Bounds)-1)
	}
	for i := 1; i < len(l.Bounds); i++ {
		if l.Bounds[i] <= l.Bounds[i-1] {
			return fmt.Errorf("palette %q: boundaries not strictly increasing at index %d (%g then %g)",
				l.Name, i, l.Bounds[i-1], l.Bounds[i])
		}
	}
	return nil
}

// Ticks returns the interior boundaries, the values a colorbar labels. The
// outermost boundaries are omitted because both ends extend past them.
func (l Levels) Ticks() []float64 {
	if len(l.Bounds) <= 2 {
		return nil
	}
	return slices.Clone(l.Bounds[1 : len(l.Bounds)-1])
}

func (l Levels) clone() Levels {
	return Levels{
		Name:   l.Name,
		Bounds: slices.Clone(l.Bounds),
		Colors: slices.Clone(l.Colors),
	}
}
