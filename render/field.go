package render

import (
	"errors"
	"fmt"
	"slices"
)

// Field is a scalar variable on a regular lon/lat grid. Values[j][i] is the
// sample at (Lats[j], Lons[i]). Axes must be strictly monotonic and may run
// in either direction. NaN marks missing data and renders as a blank pixel.
type Field struct {
	Lons   []float64
	Lats   []float64
	Values [][]float64
}

// Validate checks the grid shape: at least 2x2, one value row per latitude,
// one value per longitude in every row, strictly monotonic axes.
func (f Field) Validate() error {
	if len(f.Lons) < 2 || len(f.Lats) < 2 {
		return fmt.Errorf("field needs at least a 2x2 grid, got %dx%d", len(f.Lons), len(f.Lats))
	}
	if len(f.Values) != len(f.Lats) {
		return fmt.Errorf("field has %d value rows for %d latitudes", len(f.Values), len(f.Lats))
	}
	for j, row := range f.Values {
		if len(row) != len(f.Lons) {
			return fmt.Errorf("field row %d has %d values for %d longitudes", j, len(row), len(f.Lons))
		}
	}
	if err := monotonic("longitude", f.Lons); err != nil {
		return err
	}
	return monotonic("latitude", f.Lats)
}

func monotonic(axis string, xs []float64) error {
	asc := xs[len(xs)-1] > xs[0]
	for i := 1; i < len(xs); i++ {
		if asc && xs[i] <= xs[i-1] || !asc && xs[i] >= xs[i-1] {
			return fmt.Errorf("%s axis is not strictly monotonic at index %d", axis, i)
		}
	}
	return nil
}

// Diff returns a minus b. The grids must agree exactly; differencing across
// mismatched grids would silently compare different places.
func Diff(a, b Field) (Field, error) {
	if err := a.Validate(); err != nil {
		return Field{}, fmt.Errorf("diff: %w", err)
	}
	if err := b.Validate(); err != nil {
		return Field{}, fmt.Errorf("diff: %w", err)
	}
	if !slices.Equal(a.Lons, b.Lons) || !slices.Equal(a.Lats, b.Lats) {
		return Field{}, errors.New("diff: fields are on different grids")
	}

	out := Field{
		Lons:   slices.Clone(a.Lons),
		Lats:   slices.Clone(a.Lats),
		Values: make([][]float64, len(a.Values)),
	}
	for j := range a.Values {
		row := make([]float64, len(a.Values[j]))
		for i := range row {
			row[i] = a.Values[j][i] - b.Values[j][i]
		}
		out.Values[j] = row
	}
	return out, nil
}

// Scene pairs the two fields of a composite panel: Base is drawn as filled
// levels and Over is drawn on top of it. The grids need not agree; both are
// sampled into the base field's extent.
type Scene struct {
	Base Field
	Over Field
}

// Point is a single located observation for scatter figures.
type Point struct {
	Lon   float64
	Lat   float64
	Value float64
}

// Ensemble holds member forecasts over shared lead times. Members[m][s] is
// member m at Steps[s].
type Ensemble struct {
	Steps   []float64
	Members [][]float64
}

// Validate checks that the ensemble is rectangular and worth charting.
func (e Ensemble) Validate() error {
	if len(e.Steps) < 2 {
		return fmt.Errorf("ensemble needs at least two steps, got %d", len(e.Steps))
	}
	if len(e.Members) == 0 {
		return errors.New("ensemble has no members")
	}
	for m, row := range e.Members {
		if len(row) != len(e.Steps) {
			return fmt.Errorf("ensemble member %d has %d values for %d steps", m, len(row), len(e.Steps))
		}
	}
	return nil
}
