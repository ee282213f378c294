package source

import (
	"math"
	"math/rand"

	"github.com/opd-ai/chartkit/pkg/chartdata"
)

// syntheticCategories are the labels the categorical and heatmap models
// random-walk over.
var syntheticCategories = []string{"alpha", "beta", "gamma", "delta"}

// Synthetic generates smooth pseudo-random data. It stands in for the
// /proc samplers on platforms without them and drives demo dashboards
// with no live data behind them. Like the CPU sampler it maintains one
// model per chart family: a rolling time series, a categorical snapshot,
// a gauge, and a categories-by-time heatmap.
type Synthetic struct {
	history int
	tick    float64
	value   float64
	walks   []float64
	rng     *rand.Rand

	series     *chartdata.Numeric
	categories *chartdata.Categorical
	gauge      *chartdata.Gauge
	heatmap    *chartdata.Heatmap
	catHistory [][]float64
}

// NewSynthetic creates a generator keeping history samples. The seed
// fixes the walk, so demos replay identically.
func NewSynthetic(name string, history int, seed int64) *Synthetic {
	if history < 2 {
		history = 2
	}
	series := chartdata.NewNumeric(name)
	series.AddSeries(chartdata.NewNumericSeries(name, nil))

	gauge := chartdata.NewGauge(name)
	gauge.ValueFormat = "%.0f"

	walks := make([]float64, len(syntheticCategories))
	for i := range walks {
		walks[i] = 25 + 50*float64(i)/float64(len(walks))
	}

	return &Synthetic{
		history:    history,
		value:      50,
		walks:      walks,
		rng:        rand.New(rand.NewSource(seed)),
		series:     series,
		categories: chartdata.NewCategorical(name),
		gauge:      gauge,
		heatmap:    chartdata.NewHeatmap(name, nil, nil, nil),
	}
}

// Series returns the rolling time-series model.
func (s *Synthetic) Series() *chartdata.Numeric { return s.series }

// Categories returns the categorical snapshot model.
func (s *Synthetic) Categories() *chartdata.Categorical { return s.categories }

// Gauge returns the gauge model tracking the latest value.
func (s *Synthetic) Gauge() *chartdata.Gauge { return s.gauge }

// Heatmap returns the categories-by-time matrix.
func (s *Synthetic) Heatmap() *chartdata.Heatmap { return s.heatmap }

// Sample advances all models one step: a sine carrier with a bounded
// random walk on top for the main value, and independent walks per
// category, everything clamped to [0, 100].
func (s *Synthetic) Sample() error {
	s.value += s.rng.Float64()*10 - 5
	carrier := 50 + 30*math.Sin(s.tick/8)
	v := clampPercent(0.7*carrier + 0.3*s.value)

	points := s.series.Series[0].Data
	points = append(points, chartdata.NumericDataPoint{X: s.tick, Y: v})
	if len(points) > s.history {
		points = points[len(points)-s.history:]
	}

	next := chartdata.NewNumericSeries(s.series.Series[0].Name, points)
	next.Style = s.series.Series[0].Style
	s.series.UpdateSeries(0, next)

	s.gauge.SetValue(v)

	catPoints := make([]chartdata.DataPoint, len(s.walks))
	snapshot := make([]float64, len(s.walks))
	for i := range s.walks {
		s.walks[i] = clampPercent(s.walks[i] + s.rng.Float64()*8 - 4)
		snapshot[i] = s.walks[i]
		catPoints[i] = chartdata.DataPoint{
			Category: syntheticCategories[i],
			Value:    s.walks[i],
		}
	}
	s.categories.SetSeries([]chartdata.CategoricalSeries{
		chartdata.NewCategoricalSeries("values", catPoints),
	})

	s.pushHeatmap(snapshot)
	s.tick++
	return nil
}

func (s *Synthetic) pushHeatmap(snapshot []float64) {
	if len(s.catHistory) != len(snapshot) {
		s.catHistory = make([][]float64, len(snapshot))
	}
	for i, v := range snapshot {
		s.catHistory[i] = append(s.catHistory[i], v)
		if len(s.catHistory[i]) > s.history {
			s.catHistory[i] = s.catHistory[i][len(s.catHistory[i])-s.history:]
		}
	}

	values := make([][]float64, len(s.catHistory))
	for i, row := range s.catHistory {
		values[i] = append([]float64(nil), row...)
	}
	s.heatmap.SetRowLabels(append([]string(nil), syntheticCategories...))
	s.heatmap.SetValues(values)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
