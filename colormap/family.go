package colormap

import "strings"

// Family is the closed set of variable-family categories a palette can be
// resolved for. The zero value is FamilyDefault.
type Family int

const (
	// FamilyDefault is the fallback for tokens no other rule claims. It has
	// a continuous gradient but no discrete palette.
	FamilyDefault Family = iota
	FamilyTemperature
	FamilyWind
	FamilyRadar
	// FamilyDifference marks difference fields, one run minus another. Like
	// FamilyDefault it exists only on the continuous side.
	FamilyDifference
)

// temperaturePrefix catches CF-style standard names such as
// "air_temperature_2m" or "air_temperature_at_cloud_top".
const temperaturePrefix = "air_temperature"

// Classify maps a variable-family token to its category. Matching is ordered
// and the first rule that fires wins: the exact synonym sets, then the CF
// prefix, then the case-insensitive "diff" marker, then FamilyDefault.
// Everything except the diff marker is case-sensitive, so "TEMP" and "Wind"
// fall through to FamilyDefault.
func Classify(varfamily string) Family {
	switch varfamily {
	case "T", "temp", "temperature":
		return FamilyTemperature
	case "FF", "wind", "wind_speed":
		return FamilyWind
	case "RR", "radar", "precipitation":
		return FamilyRadar
	}
	if strings.HasPrefix(varfamily, temperaturePrefix) {
		return FamilyTemperature
	}
	if strings.EqualFold(varfamily, "diff") {
		return FamilyDifference
	}
	return FamilyDefault
}

// String returns the category name used in logs and error messages.
func (f Family) String() string {
	switch f {
	case FamilyTemperature:
		return "temperature"
	case FamilyWind:
		return "wind"
	case FamilyRadar:
		return "radar"
	case FamilyDifference:
		return "difference"
	default:
		return "default"
	}
}
