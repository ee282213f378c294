// Package source feeds the observable chart data models with live
// samples: CPU and memory readings from the /proc filesystem on Linux,
// and a synthetic generator everywhere else. Each sampler owns the model
// it mutates; chart widgets observe the model and repaint on change.
package source

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/opd-ai/chartkit/pkg/chartdata"
)

// cpuTimes holds one row of /proc/stat counters.
type cpuTimes struct {
	user    uint64
	nice    uint64
	system  uint64
	idle    uint64
	iowait  uint64
	irq     uint64
	softirq uint64
	steal   uint64
}

func (c cpuTimes) total() uint64 {
	return c.user + c.nice + c.system + c.idle + c.iowait + c.irq + c.softirq + c.steal
}

func (c cpuTimes) idleTime() uint64 {
	return c.idle + c.iowait
}

// CPU samples total and per-core CPU usage from /proc/stat. One sampler
// maintains several read-side models so any chart type can bind to it:
// a rolling total-usage time series, a per-core categorical snapshot, a
// total-usage gauge, and a cores-by-time heatmap.
type CPU struct {
	procStatPath string
	history      int
	tick         float64

	prevTotal cpuTimes
	prevCores []cpuTimes
	primed    bool

	series      *chartdata.Numeric
	cores       *chartdata.Categorical
	gauge       *chartdata.Gauge
	heatmap     *chartdata.Heatmap
	coreHistory [][]float64
}

// NewCPU creates a CPU sampler keeping history samples of total usage.
func NewCPU(history int) *CPU {
	if history < 2 {
		history = 2
	}
	series := chartdata.NewNumeric("CPU usage")
	series.AddSeries(chartdata.NewNumericSeries("cpu", nil))

	gauge := chartdata.NewGauge("CPU")
	gauge.ValueFormat = "%.0f%%"

	return &CPU{
		procStatPath: "/proc/stat",
		history:      history,
		series:       series,
		cores:        chartdata.NewCategorical("CPU cores"),
		gauge:        gauge,
		heatmap:      chartdata.NewHeatmap("CPU history", nil, nil, nil),
	}
}

// Series returns the rolling total-usage model.
func (c *CPU) Series() *chartdata.Numeric { return c.series }

// Cores returns the per-core usage model.
func (c *CPU) Cores() *chartdata.Categorical { return c.cores }

// Gauge returns the total-usage gauge model.
func (c *CPU) Gauge() *chartdata.Gauge { return c.gauge }

// Heatmap returns the cores-by-time usage matrix, one row per core and
// one column per retained sample, oldest first.
func (c *CPU) Heatmap() *chartdata.Heatmap { return c.heatmap }

// Sample reads /proc/stat and pushes the usage since the previous call
// into the models. The first call only primes the counters.
func (c *CPU) Sample() error {
	total, cores, err := c.readProcStat()
	if err != nil {
		return fmt.Errorf("sampling cpu: %w", err)
	}

	if c.primed {
		c.push(usageBetween(c.prevTotal, total), cores)
	}
	c.prevTotal = total
	c.prevCores = cores
	c.primed = true
	return nil
}

func (c *CPU) push(totalUsage float64, cores []cpuTimes) {
	points := c.series.Series[0].Data
	points = append(points, chartdata.NumericDataPoint{X: c.tick, Y: totalUsage})
	if len(points) > c.history {
		points = points[len(points)-c.history:]
	}
	c.tick++

	series := chartdata.NewNumericSeries("cpu", points)
	series.Style = c.series.Series[0].Style
	c.series.UpdateSeries(0, series)

	c.gauge.SetValue(totalUsage)

	corePoints := make([]chartdata.DataPoint, len(cores))
	coreUsage := make([]float64, len(cores))
	for i, core := range cores {
		var prev cpuTimes
		if i < len(c.prevCores) {
			prev = c.prevCores[i]
		}
		coreUsage[i] = usageBetween(prev, core)
		corePoints[i] = chartdata.DataPoint{
			Category: fmt.Sprintf("cpu%d", i),
			Value:    coreUsage[i],
		}
	}
	c.cores.SetSeries([]chartdata.CategoricalSeries{
		chartdata.NewCategoricalSeries("usage", corePoints),
	})

	c.pushHeatmap(coreUsage)
}

// pushHeatmap appends one column of per-core usage, trimming to the
// history window.
func (c *CPU) pushHeatmap(coreUsage []float64) {
	if len(c.coreHistory) != len(coreUsage) {
		c.coreHistory = make([][]float64, len(coreUsage))
	}
	for i, v := range coreUsage {
		c.coreHistory[i] = append(c.coreHistory[i], v)
		if len(c.coreHistory[i]) > c.history {
			c.coreHistory[i] = c.coreHistory[i][len(c.coreHistory[i])-c.history:]
		}
	}

	values := make([][]float64, len(c.coreHistory))
	rows := make([]string, len(c.coreHistory))
	for i, row := range c.coreHistory {
		values[i] = append([]float64(nil), row...)
		rows[i] = fmt.Sprintf("cpu%d", i)
	}
	c.heatmap.SetRowLabels(rows)
	c.heatmap.SetValues(values)
}

func (c *CPU) readProcStat() (cpuTimes, []cpuTimes, error) {
	file, err := os.Open(c.procStatPath)
	if err != nil {
		return cpuTimes{}, nil, err
	}
	defer file.Close()

	var total cpuTimes
	var cores []cpuTimes

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 8 || !strings.HasPrefix(fields[0], "cpu") {
			continue
		}
		t, err := parseCPULine(fields[1:])
		if err != nil {
			continue
		}
		if fields[0] == "cpu" {
			total = t
		} else {
			cores = append(cores, t)
		}
	}
	if err := scanner.Err(); err != nil {
		return cpuTimes{}, nil, err
	}
	return total, cores, nil
}

func parseCPULine(fields []string) (cpuTimes, error) {
	if len(fields) < 7 {
		return cpuTimes{}, fmt.Errorf("short cpu line: %d fields", len(fields))
	}
	values := make([]uint64, 8)
	for i := 0; i < len(values) && i < len(fields); i++ {
		v, err := strconv.ParseUint(fields[i], 10, 64)
		if err != nil {
			return cpuTimes{}, err
		}
		values[i] = v
	}
	return cpuTimes{
		user: values[0], nice: values[1], system: values[2], idle: values[3],
		iowait: values[4], irq: values[5], softirq: values[6], steal: values[7],
	}, nil
}

// usageBetween converts two counter snapshots into a usage percentage,
// clamped to [0, 100].
func usageBetween(prev, curr cpuTimes) float64 {
	totalDelta := curr.total() - prev.total()
	if totalDelta == 0 {
		return 0
	}
	idleDelta := curr.idleTime() - prev.idleTime()
	usage := float64(totalDelta-idleDelta) / float64(totalDelta) * 100
	if usage < 0 {
		return 0
	}
	if usage > 100 {
		return 100
	}
	return usage
}
