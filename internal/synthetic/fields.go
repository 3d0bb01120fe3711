// Package synthetic generates deterministic demo data for the preview tool
// and the render tests. Everything is seeded; re-running produces identical
// fields, points and ensembles.
package synthetic

import (
	"math"
	"math/rand/v2"

	"github.com/couchcryptid/storm-data-viz/render"
)

// The window covers the eastern North Atlantic and western Europe.
const (
	lonMin, lonMax = -20.0, 3.0
	latMin, latMax = 45.0, 60.0
	gridLons       = 24
	gridLats       = 16
)

// Temperature is a smooth north-south gradient with a mild zonal wave,
// roughly 3 to 17 degrees C over the window.
func Temperature() render.Field {
	return newField(temperatureAt)
}

// WarmedTemperature is Temperature plus a warm anomaly over the Bay of
// Biscay, for before/after comparisons.
func WarmedTemperature() render.Field {
	return newField(func(lon, lat float64) float64 {
		return temperatureAt(lon, lat) + 3*gauss(lon, lat, -5, 47, 4)
	})
}

// rainFloor is the rate below which a cell counts as dry. Dry cells are
// exactly zero and land in the transparent first radar bin.
const rainFloor = 0.3

type rainCell struct{ lon, lat, sigma, peak float64 }

// Precipitation is a sparse rain field in mm/h: three compact cells over a
// dry background, so most of the map falls in the transparent radar bin.
func Precipitation() render.Field {
	return rainField([]rainCell{
		{-6, 52, 1.4, 12},
		{-2, 48.5, 0.9, 45},
		{-12, 55, 1.1, 6},
	})
}

// HeavierPrecipitation shifts the rain cells east and doubles the weakest
// one, paired with WarmedTemperature in comparison figures.
func HeavierPrecipitation() render.Field {
	return rainField([]rainCell{
		{-4.5, 52.5, 1.5, 16},
		{-0.5, 49, 1.0, 52},
		{-10, 55.5, 1.1, 12},
	})
}

func rainField(cells []rainCell) render.Field {
	return newField(func(lon, lat float64) float64 {
		var v float64
		for _, c := range cells {
			v += c.peak * gauss(lon, lat, c.lon, c.lat, c.sigma)
		}
		if v < rainFloor {
			return 0
		}
		return v
	})
}

// WindSpeed is a zonal jet centered near 53N, in knots.
func WindSpeed() render.Field {
	return newField(func(lon, lat float64) float64 {
		jet := 55 * math.Exp(-(lat-53)*(lat-53)/(2*3.5*3.5))
		return 8 + jet + 6*math.Sin(math.Pi*lon/10)
	})
}

// GustEnsemble is a random-walk gust forecast in knots: 20 members over 16
// lead times at 3-hour steps.
func GustEnsemble() render.Ensemble {
	const members, steps = 20, 16
	rng := rand.New(rand.NewPCG(11, 23))

	e := render.Ensemble{
		Steps:   make([]float64, steps),
		Members: make([][]float64, members),
	}
	for s := range e.Steps {
		e.Steps[s] = float64(3 * s)
	}
	for m := range e.Members {
		row := make([]float64, steps)
		v := 28 + 4*rng.Float64()
		for s := range row {
			row[s] = v
			v += rng.NormFloat64() * 2.5
		}
		e.Members[m] = row
	}
	return e
}

// Observations is a scatter of station temperature readings: random
// locations in the window, values on the Temperature surface plus noise.
func Observations() []render.Point {
	rng := rand.New(rand.NewPCG(7, 41))
	pts := make([]render.Point, 40)
	for i := range pts {
		lon := lonMin + rng.Float64()*(lonMax-lonMin)
		lat := latMin + rng.Float64()*(latMax-latMin)
		pts[i] = render.Point{
			Lon:   lon,
			Lat:   lat,
			Value: temperatureAt(lon, lat) + rng.NormFloat64(),
		}
	}
	return pts
}

func temperatureAt(lon, lat float64) float64 {
	return 30*math.Cos(math.Pi*lat/180) + 4*math.Sin(math.Pi*lon/12) - 8
}

func newField(at func(lon, lat float64) float64) render.Field {
	f := render.Field{
		Lons:   linspace(lonMin, lonMax, gridLons),
		Lats:   linspace(latMin, latMax, gridLats),
		Values: make([][]float64, gridLats),
	}
	for j, lat := range f.Lats {
		row := make([]float64, gridLons)
		for i, lon := range f.Lons {
			row[i] = at(lon, lat)
		}
		f.Values[j] = row
	}
	return f
}

func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + float64(i)*(hi-lo)/float64(n-1)
	}
	return xs
}

func gauss(lon, lat, clon, clat, sigma float64) float64 {
	d2 := (lon-clon)*(lon-clon) + (lat-clat)*(lat-clat)
	return math.Exp(-d2 / (2 * sigma * sigma))
}
