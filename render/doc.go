// Package render draws forecast fields, observations and ensembles as PNG
// figures.
//
// # Figures
//
// A [Renderer] produces seven figure kinds:
//
//	ColorShades  continuous-palette map of one field
//	ColorLevels  discrete-palette map of one field with a stepped colorbar
//	Overlay      discrete base field with a second field layered on top
//	Scatter      located point observations over a graticule
//	Comparison   2x2 grid: before, after, and their differences
//	Plumes       ensemble member traces as a line chart
//	Quantiles    ensemble quantile traces as a line chart
//
// Map figures share one layout: a margin on all sides, the map panel
// inside it, and a colorbar in a gutter right of the panel. Titles render
// in the top margin and coordinate labels in the left and bottom margins.
//
// # Geometry
//
// Grids are treated as plate carrée: longitude and latitude map linearly
// onto pixel columns and rows, with latitude flipped so north is up. Each
// panel pixel is sampled from the field by bilinear interpolation, then
// classified through the palette. Sampling before classification keeps the
// crisp filled-level look on coarse grids without tracing contour polygons.
//
// # Missing Data
//
// NaN values are holes. A pixel whose bilinear neighborhood contains NaN is
// left unpainted, so the panel background shows through. Points and ensemble
// members are expected to be complete.
//
// # Concurrency
//
// A Renderer is stateless apart from its options and logger and is safe for
// concurrent use. Each call allocates its own canvas.
package render
