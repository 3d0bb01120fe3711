package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/couchcryptid/storm-data-viz/colormap"
)

// DefaultQuantiles are the levels charted when Quantiles is called with none.
var DefaultQuantiles = []float64{0.1, 0.25, 0.5, 0.75, 0.9}

// plumeColor is cornflowerblue at 20% alpha, so overlapping members darken.
var plumeColor = drawing.Color{R: 100, G: 149, B: 237, A: 51}

// Plumes writes the ensemble as a line chart, one translucent dashed trace
// per member.
func (r *Renderer) Plumes(w io.Writer, e Ensemble, title string) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("plumes: %w", err)
	}

	series := make([]chart.Series, 0, len(e.Members))
	for m, member := range e.Members {
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("member %d", m),
			XValues: e.Steps,
			YValues: member,
			Style: chart.Style{
				StrokeWidth:     1.5,
				StrokeColor:     plumeColor,
				StrokeDashArray: []float64{4, 3},
			},
		})
	}

	ch := r.newChart(title, series, e.Members)
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render plumes chart: %w", err)
	}
	r.logger.Info("figure rendered", "figure", "plumes", "title", title,
		"members", len(e.Members))
	return nil
}

// Quantiles writes per-step ensemble quantile traces. The median renders
// solid and the outer levels dashed, each colored by sampling the cyclic
// twilight palette at its level, with a legend. Levels default to
// [DefaultQuantiles].
func (r *Renderer) Quantiles(w io.Writer, e Ensemble, qs []float64, title string) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("quantiles: %w", err)
	}
	if len(qs) == 0 {
		qs = DefaultQuantiles
	}
	for _, q := range qs {
		if q < 0 || q > 1 {
			return fmt.Errorf("quantiles: level %g outside [0, 1]", q)
		}
	}

	rows := quantileRows(e, qs)
	shade, _ := colormap.ShadeByName(colormap.ShadeTwilight)

	series := make([]chart.Series, 0, len(qs))
	for qi, q := range qs {
		style := chart.Style{
			StrokeWidth:     1.5,
			StrokeColor:     toDrawing(shade.At(q)),
			StrokeDashArray: []float64{5, 4},
		}
		if q == 0.5 {
			style.StrokeWidth = 2
			style.StrokeDashArray = nil
		}
		series = append(series, chart.ContinuousSeries{
			Name:    "q" + formatTick(q),
			XValues: e.Steps,
			YValues: rows[qi],
			Style:   style,
		})
	}

	ch := r.newChart(title, series, rows)
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render quantiles chart: %w", err)
	}
	r.logger.Info("figure rendered", "figure", "quantiles", "title", title,
		"levels", len(qs))
	return nil
}

// quantileRows computes one trace per requested level, resorting the member
// values at each step.
func quantileRows(e Ensemble, qs []float64) [][]float64 {
	rows := make([][]float64, len(qs))
	for qi := range rows {
		rows[qi] = make([]float64, len(e.Steps))
	}
	buf := make([]float64, len(e.Members))
	for s := range e.Steps {
		for m := range e.Members {
			buf[m] = e.Members[m][s]
		}
		sort.Float64s(buf)
		for qi, q := range qs {
			rows[qi][s] = stat.Quantile(q, stat.Empirical, buf, nil)
		}
	}
	return rows
}

func (r *Renderer) newChart(title string, series []chart.Series, rows [][]float64) chart.Chart {
	lo, hi := yRange(rows)
	return chart.Chart{
		Title:  title,
		Width:  r.opts.Width,
		Height: r.opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 8},
		},
		XAxis: chart.XAxis{Name: "lead time (h)"},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: series,
	}
}

// yRange pads the trace envelope by 5% so lines do not hug the plot border,
// and keeps the range non-degenerate for flat ensembles.
func yRange(rows [][]float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range rows {
		lo = math.Min(lo, floats.Min(row))
		hi = math.Max(hi, floats.Max(row))
	}
	if hi == lo {
		hi = lo + 1
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

func toDrawing(c color.Color) drawing.Color {
	cr, cg, cb, ca := c.RGBA()
	return drawing.Color{R: uint8(cr >> 8), G: uint8(cg >> 8), B: uint8(cb >> 8), A: uint8(ca >> 8)}
}
