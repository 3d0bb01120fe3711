package colormap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected Family
	}{
		{"temperature short", "T", FamilyTemperature},
		{"temperature temp", "temp", FamilyTemperature},
		{"temperature full", "temperature", FamilyTemperature},
		{"cf name bare", "air_temperature", FamilyTemperature},
		{"cf name 2m", "air_temperature_2m", FamilyTemperature},
		{"cf name long", "air_temperature_at_cloud_top", FamilyTemperature},
		{"cf prefix truncated", "air_temperatur", FamilyDefault},
		{"wind short", "FF", FamilyWind},
		{"wind", "wind", FamilyWind},
		{"wind speed", "wind_speed", FamilyWind},
		{"radar short", "RR", FamilyRadar},
		{"radar", "radar", FamilyRadar},
		{"precipitation", "precipitation", FamilyRadar},
		{"diff lower", "diff", FamilyDifference},
		{"diff mixed case", "Diff", FamilyDifference},
		{"diff upper", "DIFF", FamilyDifference},
		{"diff with suffix", "DIFF_TYPO", FamilyDefault},
		{"uppercase temp rejected", "TEMP", FamilyDefault},
		{"mixed case wind rejected", "Wind", FamilyDefault},
		{"unknown token", "bogus", FamilyDefault},
		{"empty token", "", FamilyDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.token))
		})
	}
}

func TestFamilyString(t *testing.T) {
	tests := []struct {
		family   Family
		expected string
	}{
		{FamilyTemperature, "temperature"},
		{FamilyWind, "wind"},
		{FamilyRadar, "radar"},
		{FamilyDifference, "difference"},
		{FamilyDefault, "default"},
		{Family(99), "default"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.family.String())
		})
	}
}
