package synthetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/storm-data-viz/render"
)

func TestFieldsAreValid(t *testing.T) {
	tests := []struct {
		name  string
		field render.Field
	}{
		{name: "temperature", field: Temperature()},
		{name: "warmed temperature", field: WarmedTemperature()},
		{name: "precipitation", field: Precipitation()},
		{name: "heavier precipitation", field: HeavierPrecipitation()},
		{name: "wind speed", field: WindSpeed()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.field.Validate())
		})
	}
}

func TestEverythingIsDeterministic(t *testing.T) {
	assert.Equal(t, Temperature(), Temperature())
	assert.Equal(t, GustEnsemble(), GustEnsemble())
	assert.Equal(t, Observations(), Observations())
}

func TestComparisonPairSharesGrid(t *testing.T) {
	_, err := render.Diff(WarmedTemperature(), Temperature())
	require.NoError(t, err)

	_, err = render.Diff(HeavierPrecipitation(), Precipitation())
	require.NoError(t, err)
}

func TestPrecipitationMostlyDry(t *testing.T) {
	f := Precipitation()

	var dry, wet int
	var peak float64
	for _, row := range f.Values {
		for _, v := range row {
			if v == 0 {
				dry++
				continue
			}
			wet++
			if v > peak {
				peak = v
			}
		}
	}

	assert.Greater(t, dry, wet, "most of the window stays in the dry radar bin")
	assert.Positive(t, wet)
	assert.Greater(t, peak, 25.0, "the strongest cell reaches the heavy-rain bins")
}

func TestGustEnsembleShape(t *testing.T) {
	e := GustEnsemble()
	require.NoError(t, e.Validate())

	assert.Len(t, e.Steps, 16)
	assert.Len(t, e.Members, 20)
	assert.Equal(t, 0.0, e.Steps[0])
	assert.Equal(t, 45.0, e.Steps[15])
}

func TestObservationsInsideWindow(t *testing.T) {
	pts := Observations()
	require.Len(t, pts, 40)

	for _, p := range pts {
		assert.GreaterOrEqual(t, p.Lon, lonMin)
		assert.LessOrEqual(t, p.Lon, lonMax)
		assert.GreaterOrEqual(t, p.Lat, latMin)
		assert.LessOrEqual(t, p.Lat, latMax)
	}
}
