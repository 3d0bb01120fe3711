package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnsemble() Ensemble {
	return Ensemble{
		Steps: []float64{0, 3, 6, 9},
		Members: [][]float64{
			{10, 12, 11, 14},
			{11, 13, 15, 16},
			{9, 10, 12, 13},
			{12, 11, 13, 15},
			{10, 14, 16, 18},
		},
	}
}

func TestPlumes(t *testing.T) {
	r := testRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.Plumes(&buf, testEnsemble(), "gust plumes"))

	img := decodePNG(t, &buf)
	assert.Equal(t, 900, img.Bounds().Dx())
	assert.Equal(t, 700, img.Bounds().Dy())
}

func TestPlumes_InvalidEnsemble(t *testing.T) {
	r := testRenderer(t)

	var buf bytes.Buffer
	err := r.Plumes(&buf, Ensemble{Steps: []float64{0}}, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "steps")
}

func TestQuantiles_DefaultLevels(t *testing.T) {
	r := testRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.Quantiles(&buf, testEnsemble(), nil, "gust quantiles"))

	img := decodePNG(t, &buf)
	assert.Equal(t, 900, img.Bounds().Dx())
	assert.Equal(t, 700, img.Bounds().Dy())
}

func TestQuantiles_LevelOutOfRange(t *testing.T) {
	r := testRenderer(t)

	var buf bytes.Buffer
	err := r.Quantiles(&buf, testEnsemble(), []float64{0.5, 1.2}, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1.2")
	assert.Empty(t, buf.Bytes())
}

func TestQuantileRows(t *testing.T) {
	e := Ensemble{
		Steps:   []float64{0, 3},
		Members: [][]float64{{1, 10}, {2, 20}, {3, 30}, {4, 40}, {5, 50}},
	}

	rows := quantileRows(e, []float64{0, 0.5, 1})
	assert.Equal(t, []float64{1, 10}, rows[0])
	assert.Equal(t, []float64{3, 30}, rows[1])
	assert.Equal(t, []float64{5, 50}, rows[2])

	// Member order within a step must not matter.
	shuffled := Ensemble{
		Steps:   e.Steps,
		Members: [][]float64{{5, 30}, {3, 50}, {1, 40}, {4, 20}, {2, 10}},
	}
	assert.Equal(t, rows, quantileRows(shuffled, []float64{0, 0.5, 1}))
}

func TestYRange(t *testing.T) {
	lo, hi := yRange([][]float64{{1, 5}, {2, 9}})
	assert.InDelta(t, 0.6, lo, 1e-9)
	assert.InDelta(t, 9.4, hi, 1e-9)

	// Flat ensembles still get a usable range.
	lo, hi = yRange([][]float64{{7, 7}})
	assert.Less(t, lo, 7.0)
	assert.Greater(t, hi, 7.0)
}
