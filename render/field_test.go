package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testField() Field {
	return Field{
		Lons: []float64{0, 1, 2},
		Lats: []float64{50, 51},
		Values: [][]float64{
			{1, 2, 3},
			{4, 5, 6},
		},
	}
}

func TestFieldValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Field)
		wantErr string
	}{
		{name: "valid", mutate: func(f *Field) {}},
		{name: "descending axes valid", mutate: func(f *Field) {
			f.Lons = []float64{2, 1, 0}
			f.Lats = []float64{51, 50}
		}},
		{name: "too few longitudes", mutate: func(f *Field) { f.Lons = []float64{0} }, wantErr: "2x2"},
		{name: "row count mismatch", mutate: func(f *Field) { f.Values = f.Values[:1] }, wantErr: "value rows"},
		{name: "row length mismatch", mutate: func(f *Field) { f.Values[1] = []float64{4, 5} }, wantErr: "row 1"},
		{name: "non-monotonic longitudes", mutate: func(f *Field) { f.Lons = []float64{0, 2, 1} }, wantErr: "longitude"},
		{name: "repeated latitude", mutate: func(f *Field) { f.Lats = []float64{50, 50} }, wantErr: "latitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testField()
			tt.mutate(&f)

			err := f.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDiff(t *testing.T) {
	a := testField()
	b := testField()
	for j := range b.Values {
		for i := range b.Values[j] {
			b.Values[j][i] = 1
		}
	}

	d, err := Diff(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1, 2}, {3, 4, 5}}, d.Values)
	assert.Equal(t, a.Lons, d.Lons)
	assert.Equal(t, a.Lats, d.Lats)

	// The result is detached from its inputs.
	d.Values[0][0] = 99
	d.Lons[0] = -180
	assert.Equal(t, 1.0, a.Values[0][0])
	assert.Equal(t, 0.0, a.Lons[0])
}

func TestDiff_GridMismatch(t *testing.T) {
	a := testField()
	b := testField()
	b.Lons = []float64{0, 1, 2.5}

	_, err := Diff(a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "different grids")
}

func TestDiff_InvalidInput(t *testing.T) {
	bad := testField()
	bad.Lons = []float64{0}

	_, err := Diff(bad, testField())
	require.Error(t, err)

	_, err = Diff(testField(), bad)
	require.Error(t, err)
}

func TestDiff_NaNPropagates(t *testing.T) {
	a := testField()
	a.Values[0][1] = math.NaN()

	d, err := Diff(a, testField())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(d.Values[0][1]))
	assert.Equal(t, 0.0, d.Values[0][0])
}

func TestEnsembleValidate(t *testing.T) {
	e := Ensemble{
		Steps:   []float64{0, 3, 6},
		Members: [][]float64{{1, 2, 3}, {4, 5, 6}},
	}
	assert.NoError(t, e.Validate())

	short := e
	short.Steps = []float64{0}
	require.Error(t, short.Validate())

	empty := e
	empty.Members = nil
	require.Error(t, empty.Validate())

	ragged := e
	ragged.Members = [][]float64{{1, 2, 3}, {4, 5}}
	err := ragged.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "member 1")
}
