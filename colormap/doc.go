// Package colormap resolves color palettes for meteorological variable
// families.
//
// # Variable Families
//
// Callers name the variable they are plotting with a short token. Tokens are
// classified into a closed set of families by an ordered cascade; the first
// rule that fires wins:
//
//	1. Exact synonym sets (case-sensitive):
//	     "T", "temp", "temperature"        → temperature
//	     "FF", "wind", "wind_speed"        → wind
//	     "RR", "radar", "precipitation"    → radar
//	2. Prefix "air_temperature"            → temperature
//	     (catches CF standard names like "air_temperature_2m")
//	3. "diff", case-insensitive            → difference
//	4. anything else                       → default
//
// The two resolvers treat the tail of the cascade differently, and the
// asymmetry is deliberate. [LevelsFor] needs an exact boundary table and has
// none for difference or default, so it fails with [ErrUnknownFamily];
// that failure means the caller asked for discrete rendering of a family
// that does not support it. [ShadeNameFor] can always fall back to a
// generic gradient and therefore never fails.
//
// # Discrete Palettes
//
// A discrete palette ([Levels]) is N+1 strictly increasing boundaries with
// one color per half-open interval [b(i), b(i+1)). Out-of-range values saturate
// into the extreme intervals rather than erroring, the way a colorbar with
// pointed ends reads. Three palettes are built in:
//
//	temperature  2 °C bins from -32 °C to 42 °C, ECMWF-style ramp
//	wind         knots, thresholds 20..70 with a 300 kt cap bin
//	radar        rain rate in mm/h, 0.1..200; the dry bin is transparent
//
// The radar palette's transparent first bin is what makes precipitation
// overlays work: anywhere drier than 0.1 mm/h shows the field underneath.
//
// # Continuous Palettes
//
// A continuous palette ([Shade]) is a named gradient sampled at normalized
// positions. Families map to gradients as temperature → "rainbow", wind →
// "spring", difference → "bwr", everything else (radar included) →
// "viridis". Values are normalized against a [Range]; difference fields
// conventionally use [SymmetricRange] so the white midpoint of "bwr" sits
// exactly at zero.
//
// # Concurrency
//
// All palettes are immutable package-level constants built at init.
// Resolvers return copies and are safe for unsynchronized concurrent use.
package colormap
