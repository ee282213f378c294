package source

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/opd-ai/chartkit/pkg/chartdata"
)

// Memory samples memory usage from /proc/meminfo. It maintains a
// usage-percent gauge, a rolling usage time series, and a breakdown of
// used, buffers, cache, and free memory for pie and bar charts.
type Memory struct {
	procMemInfoPath string
	history         int
	tick            float64

	gauge     *chartdata.Gauge
	series    *chartdata.Numeric
	breakdown *chartdata.Categorical
}

// NewMemory creates a memory sampler keeping history usage samples.
func NewMemory(history int) *Memory {
	if history < 2 {
		history = 2
	}
	gauge := chartdata.NewGauge("Memory")
	gauge.ValueFormat = "%.0f%%"

	series := chartdata.NewNumeric("Memory usage")
	series.AddSeries(chartdata.NewNumericSeries("memory", nil))

	return &Memory{
		procMemInfoPath: "/proc/meminfo",
		history:         history,
		gauge:           gauge,
		series:          series,
		breakdown:       chartdata.NewCategorical("Memory breakdown"),
	}
}

// Gauge returns the usage-percent model.
func (m *Memory) Gauge() *chartdata.Gauge { return m.gauge }

// Series returns the rolling usage-percent model.
func (m *Memory) Series() *chartdata.Numeric { return m.series }

// Breakdown returns the used/buffers/cached/free split in gigabytes.
func (m *Memory) Breakdown() *chartdata.Categorical { return m.breakdown }

// Sample reads /proc/meminfo and refreshes all three models. Used memory
// counts neither buffers nor cache, matching free(1).
func (m *Memory) Sample() error {
	values, err := m.readMemInfo()
	if err != nil {
		return fmt.Errorf("sampling memory: %w", err)
	}

	total := values["MemTotal"]
	if total == 0 {
		return fmt.Errorf("sampling memory: MemTotal missing from %s", m.procMemInfoPath)
	}
	free := values["MemFree"]
	buffers := values["Buffers"]
	cached := values["Cached"]
	used := usedMemory(total, free, buffers, cached)
	percent := float64(used) / float64(total) * 100

	m.gauge.SetValue(percent)

	points := m.series.Series[0].Data
	points = append(points, chartdata.NumericDataPoint{X: m.tick, Y: percent})
	if len(points) > m.history {
		points = points[len(points)-m.history:]
	}
	m.tick++
	next := chartdata.NewNumericSeries("memory", points)
	next.Style = m.series.Series[0].Style
	m.series.UpdateSeries(0, next)

	const kbPerGB = 1024 * 1024
	m.breakdown.SetSeries([]chartdata.CategoricalSeries{
		chartdata.NewCategoricalSeries("memory", []chartdata.DataPoint{
			{Category: "used", Value: float64(used) / kbPerGB},
			{Category: "buffers", Value: float64(buffers) / kbPerGB},
			{Category: "cached", Value: float64(cached) / kbPerGB},
			{Category: "free", Value: float64(free) / kbPerGB},
		}),
	})
	return nil
}

func (m *Memory) readMemInfo() (map[string]uint64, error) {
	file, err := os.Open(m.procMemInfoPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	values := make(map[string]uint64)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		parts := strings.SplitN(scanner.Text(), ":", 2)
		if len(parts) != 2 {
			continue
		}
		raw := strings.TrimSuffix(strings.TrimSpace(parts[1]), " kB")
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			continue
		}
		values[strings.TrimSpace(parts[0])] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// usedMemory subtracts free, buffers, and cache stepwise so corrupt
// counters cannot underflow.
func usedMemory(total, free, buffers, cached uint64) uint64 {
	if total < free {
		return 0
	}
	used := total - free
	if used < buffers {
		return used
	}
	used -= buffers
	if used < cached {
		return used + buffers
	}
	return used - cached
}
