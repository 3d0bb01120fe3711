package colormap

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelsFor(t *testing.T) {
	t.Run("temperature tokens", func(t *testing.T) {
		for _, token := range []string{"T", "temp", "temperature", "air_temperature_2m"} {
			lv, err := LevelsFor(token)
			require.NoError(t, err, token)
			assert.Equal(t, "temperature", lv.Name)
			assert.Len(t, lv.Bounds, 38)
			assert.Len(t, lv.Colors, 37)
			assert.Equal(t, -32.0, lv.Bounds[0])
			assert.Equal(t, 42.0, lv.Bounds[len(lv.Bounds)-1])
		}
	})

	t.Run("wind tokens", func(t *testing.T) {
		for _, token := range []string{"FF", "wind", "wind_speed"} {
			lv, err := LevelsFor(token)
			require.NoError(t, err, token)
			assert.Equal(t, "wind", lv.Name)
			assert.Len(t, lv.Bounds, 13)
			assert.Len(t, lv.Colors, 12)
			assert.Equal(t, 300.0, lv.Bounds[len(lv.Bounds)-1])
		}
	})

	t.Run("radar tokens", func(t *testing.T) {
		for _, token := range []string{"RR", "radar", "precipitation"} {
			lv, err := LevelsFor(token)
			require.NoError(t, err, token)
			assert.Equal(t, "radar", lv.Name)
			assert.Len(t, lv.Bounds, 11)
			assert.Len(t, lv.Colors, 10)
		}
	})

	t.Run("unknown token fails", func(t *testing.T) {
		_, err := LevelsFor("bogus")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownFamily)
		assert.Contains(t, err.Error(), "bogus")
	})

	t.Run("diff has no discrete palette", func(t *testing.T) {
		for _, token := range []string{"diff", "Diff", "DIFF"} {
			_, err := LevelsFor(token)
			assert.ErrorIs(t, err, ErrUnknownFamily, token)
		}
	})

	t.Run("empty token fails", func(t *testing.T) {
		_, err := LevelsFor("")
		assert.ErrorIs(t, err, ErrUnknownFamily)
	})

	t.Run("idempotent", func(t *testing.T) {
		lv1, err := LevelsFor("RR")
		require.NoError(t, err)
		lv2, err := LevelsFor("RR")
		require.NoError(t, err)
		assert.Equal(t, lv1, lv2)
	})

	t.Run("returned palette is an independent copy", func(t *testing.T) {
		lv1, err := LevelsFor("T")
		require.NoError(t, err)
		lv1.Bounds[0] = -999
		lv1.Colors[0] = color.NRGBA{R: 1, G: 2, B: 3, A: 4}

		lv2, err := LevelsFor("T")
		require.NoError(t, err)
		assert.Equal(t, -32.0, lv2.Bounds[0])
		assert.Equal(t, color.NRGBA{R: 76, G: 76, B: 76, A: 255}, lv2.Colors[0])
	})
}

func TestBuiltinPaletteInvariants(t *testing.T) {
	for _, token := range []string{"T", "FF", "RR"} {
		lv, err := LevelsFor(token)
		require.NoError(t, err)

		t.Run(lv.Name, func(t *testing.T) {
			assert.NoError(t, lv.Validate())
			assert.Len(t, lv.Colors, len(lv.Bounds)-1)
			for i := 1; i < len(lv.Bounds); i++ {
				assert.Greater(t, lv.Bounds[i], lv.Bounds[i-1], "bound %d", i)
			}
		})
	}
}

func TestLevelsColorAt(t *testing.T) {
	wind, err := LevelsFor("FF")
	require.NoError(t, err)
	temp, err := LevelsFor("T")
	require.NoError(t, err)
	radar, err := LevelsFor("RR")
	require.NoError(t, err)

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	lightblue := color.NRGBA{R: 173, G: 216, B: 230, A: 255}

	tests := []struct {
		name     string
		levels   Levels
		value    float64
		expected color.NRGBA
	}{
		{"wind below range clamps low", wind, -5, white},
		{"wind first boundary", wind, 0, white},
		{"wind just under second boundary", wind, 19.9, white},
		{"wind boundary is inclusive on the left", wind, 20, lightblue},
		{"wind interior interval", wind, 27, color.NRGBA{R: 176, G: 196, B: 222, A: 255}},
		{"wind top interval", wind, 299, black},
		{"wind last boundary clamps high", wind, 300, black},
		{"wind above range clamps high", wind, 1200, black},
		{"temperature below range", temp, -40, color.NRGBA{R: 76, G: 76, B: 76, A: 255}},
		{"temperature zero", temp, 0, color.NRGBA{R: 0, G: 140, B: 48, A: 255}},
		{"temperature interior boundary", temp, 2, color.NRGBA{R: 38, G: 191, B: 25, A: 255}},
		{"temperature above range", temp, 43, color.NRGBA{R: 255, G: 191, B: 191, A: 255}},
		{"radar dry bin is transparent", radar, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 0}},
		{"radar drizzle still dry", radar, 0.05, color.NRGBA{R: 255, G: 255, B: 255, A: 0}},
		{"radar first wet bin", radar, 0.1, color.NRGBA{R: 255, G: 163, B: 52, A: 255}},
		{"radar extreme rate clamps high", radar, 250, color.NRGBA{R: 153, G: 153, B: 153, A: 255}},
		{"nan is transparent", temp, math.NaN(), color.NRGBA{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.levels.ColorAt(tt.value))
		})
	}
}

func TestLevelsValidate(t *testing.T) {
	tests := []struct {
		name    string
		levels  Levels
		errPart string
	}{
		{
			"missing color",
			Levels{Name: "p", Bounds: []float64{0, 1, 2}, Colors: []color.NRGBA{{}}},
			"colors",
		},
		{
			"too many colors",
			Levels{Name: "p", Bounds: []float64{0, 1}, Colors: []color.NRGBA{{}, {}}},
			"colors",
		},
		{
			"single boundary",
			Levels{Name: "p", Bounds: []float64{0}},
			"two boundaries",
		},
		{
			"decreasing bounds",
			Levels{Name: "p", Bounds: []float64{0, 2, 1}, Colors: []color.NRGBA{{}, {}}},
			"strictly increasing",
		},
		{
			"repeated bounds",
			Levels{Name: "p", Bounds: []float64{0, 1, 1}, Colors: []color.NRGBA{{}, {}}},
			"strictly increasing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.levels.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}

	t.Run("valid palette", func(t *testing.T) {
		lv := Levels{Name: "p", Bounds: []float64{0, 1, 2}, Colors: []color.NRGBA{{}, {}}}
		assert.NoError(t, lv.Validate())
	})
}

func TestLevelsTicks(t *testing.T) {
	t.Run("wind ticks are the interior boundaries", func(t *testing.T) {
		wind, err := LevelsFor("FF")
		require.NoError(t, err)

		ticks := wind.Ticks()
		assert.Equal(t, []float64{20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70}, ticks)
	})

	t.Run("two boundaries have no interior", func(t *testing.T) {
		lv := Levels{Bounds: []float64{0, 1}, Colors: []color.NRGBA{{}}}
		assert.Nil(t, lv.Ticks())
	})
}
