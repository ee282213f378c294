package render

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/opd-ai/chartkit/pkg/chart"
	"github.com/opd-ai/chartkit/pkg/geom"
)

// ErrDashboardTerminated is returned when the game loop is stopped via
// context cancellation.
var ErrDashboardTerminated = errors.New("dashboard terminated")

// Chart is the widget surface a dashboard cell hosts. *chart.BaseChart
// and every concrete chart embedding it satisfy this.
type Chart interface {
	Redraw(p chart.Painter, size geom.Size)
	MarkDirty()
	Dirty() bool
	MouseDown(ev chart.MouseEvent)
	MouseUp(ev chart.MouseEvent)
	MouseDrag(ev chart.MouseEvent)
	CursorPos(ev chart.MouseEvent)
	MouseOut()
	MouseWheel(ev chart.WheelEvent)
}

// DataProvider refreshes the data models behind the dashboard's charts.
// Update is called from the game loop at the configured interval.
type DataProvider interface {
	Update() error
}

// ErrorHandler receives errors from data provider updates.
type ErrorHandler func(err error)

// DefaultErrorHandler writes errors to stderr.
func DefaultErrorHandler(err error) {
	fmt.Fprintf(os.Stderr, "update error: %v\n", err)
}

// Config holds the dashboard window settings.
type Config struct {
	Width           int
	Height          int
	Title           string
	Columns         int
	BackgroundColor color.RGBA
	UpdateInterval  time.Duration
}

// DefaultConfig returns a 2-column 1024x768 dashboard refreshing once a
// second.
func DefaultConfig() Config {
	return Config{
		Width:           1024,
		Height:          768,
		Title:           "chartkit",
		Columns:         2,
		BackgroundColor: color.RGBA{R: 245, G: 245, B: 245, A: 255},
		UpdateInterval:  time.Second,
	}
}

// cell is one chart slot in the dashboard grid.
type cell struct {
	chart     Chart
	rect      geom.Rect
	offscreen *ebiten.Image
	painter   *Painter
}

// Dashboard hosts charts in a grid, routes mouse input to the chart under
// the cursor, and redraws dirty charts into per-cell offscreen buffers.
// It implements ebiten.Game. The mutex covers the cell list and config,
// which a config reload may swap while the game loop runs.
type Dashboard struct {
	mu           sync.Mutex
	config       Config
	cells        []*cell
	dataProvider DataProvider
	errorHandler ErrorHandler
	lastUpdate   time.Time
	ctx          context.Context

	hovered *cell
	pressed *cell
	width   int
	height  int
}

// NewDashboard creates an empty dashboard with the given configuration.
func NewDashboard(config Config) *Dashboard {
	if config.Columns < 1 {
		config.Columns = 1
	}
	return &Dashboard{
		config:       config,
		errorHandler: DefaultErrorHandler,
		lastUpdate:   time.Now(),
		width:        config.Width,
		height:       config.Height,
	}
}

// AddChart appends a chart to the grid. Cells fill left to right, top to
// bottom, Columns per row.
func (d *Dashboard) AddChart(c Chart) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cells = append(d.cells, &cell{chart: c})
	d.layoutCells()
}

// ReplaceCharts swaps out the entire grid. The zero-length case clears the
// dashboard. Safe to call while the game loop is running.
func (d *Dashboard) ReplaceCharts(charts []Chart) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cells = d.cells[:0]
	for _, c := range charts {
		d.cells = append(d.cells, &cell{chart: c})
	}
	d.hovered = nil
	d.pressed = nil
	d.layoutCells()
}

// ApplyConfig updates the settings a reload can change without reopening
// the window: columns, background, update interval, and title.
func (d *Dashboard) ApplyConfig(config Config) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if config.Columns < 1 {
		config.Columns = 1
	}
	d.config.Columns = config.Columns
	d.config.BackgroundColor = config.BackgroundColor
	d.config.UpdateInterval = config.UpdateInterval
	if config.Title != "" && config.Title != d.config.Title {
		d.config.Title = config.Title
		ebiten.SetWindowTitle(config.Title)
	}
	d.layoutCells()
}

// SetDataProvider sets the provider polled at the configured interval.
func (d *Dashboard) SetDataProvider(dp DataProvider) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dataProvider = dp
}

// SetErrorHandler replaces the handler for provider errors. A nil handler
// silently drops them.
func (d *Dashboard) SetErrorHandler(h ErrorHandler) { d.errorHandler = h }

// SetContext attaches a context; cancelling it stops the game loop.
func (d *Dashboard) SetContext(ctx context.Context) { d.ctx = ctx }

// layoutCells recomputes the grid rectangles for the current window size.
func (d *Dashboard) layoutCells() {
	if len(d.cells) == 0 {
		return
	}
	cols := d.config.Columns
	if cols > len(d.cells) {
		cols = len(d.cells)
	}
	rows := (len(d.cells) + cols - 1) / cols

	cellW := float64(d.width) / float64(cols)
	cellH := float64(d.height) / float64(rows)

	for i, c := range d.cells {
		col := i % cols
		row := i / cols
		rect := geom.RectOf(float64(col)*cellW, float64(row)*cellH, cellW, cellH)
		if rect != c.rect {
			c.rect = rect
			c.offscreen = nil
			c.chart.MarkDirty()
		}
	}
}

// cellAt returns the cell containing the screen position, or nil.
func (d *Dashboard) cellAt(pos geom.Point) *cell {
	for _, c := range d.cells {
		if c.rect.Contains(pos) {
			return c
		}
	}
	return nil
}

// local translates a screen position into cell coordinates.
func (c *cell) local(pos geom.Point) geom.Point {
	return geom.Pt(pos.X-c.rect.X, pos.Y-c.rect.Y)
}

// Update implements ebiten.Game. It polls input, routes it to the charts,
// and refreshes the data provider at the configured interval.
func (d *Dashboard) Update() error {
	if d.ctx != nil {
		select {
		case <-d.ctx.Done():
			return ErrDashboardTerminated
		default:
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.dataProvider != nil && time.Since(d.lastUpdate) >= d.config.UpdateInterval {
		if err := d.dataProvider.Update(); err != nil && d.errorHandler != nil {
			d.errorHandler(err)
		}
		d.lastUpdate = time.Now()
	}

	d.routeInput()
	return nil
}

func (d *Dashboard) routeInput() {
	x, y := ebiten.CursorPosition()
	pos := geom.Pt(float64(x), float64(y))
	under := d.cellAt(pos)

	if under != d.hovered {
		if d.hovered != nil {
			d.hovered.chart.MouseOut()
		}
		d.hovered = under
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && under != nil {
		d.pressed = under
		under.chart.MouseDown(chart.MouseEvent{Pos: under.local(pos)})
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && d.pressed != nil {
		d.pressed.chart.MouseDrag(chart.MouseEvent{Pos: d.pressed.local(pos)})
	} else if under != nil {
		under.chart.CursorPos(chart.MouseEvent{Pos: under.local(pos)})
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && d.pressed != nil {
		d.pressed.chart.MouseUp(chart.MouseEvent{Pos: d.pressed.local(pos)})
		d.pressed = nil
	}

	if _, wy := ebiten.Wheel(); wy != 0 && under != nil {
		under.chart.MouseWheel(chart.WheelEvent{Pos: under.local(pos), YOffset: wy})
	}
}

// Draw implements ebiten.Game. Dirty charts are redrawn into their
// offscreen buffer, then every buffer is blitted to the screen.
func (d *Dashboard) Draw(screen *ebiten.Image) {
	d.mu.Lock()
	defer d.mu.Unlock()

	screen.Fill(d.config.BackgroundColor)

	for _, c := range d.cells {
		w, h := int(c.rect.Width), int(c.rect.Height)
		if w <= 0 || h <= 0 {
			continue
		}

		if c.offscreen == nil {
			c.offscreen = ebiten.NewImage(w, h)
			c.painter = NewPainter(c.offscreen)
			c.chart.MarkDirty()
		}

		if c.chart.Dirty() {
			c.offscreen.Clear()
			c.painter.Reset(c.offscreen)
			c.chart.Redraw(c.painter, geom.Size{Width: c.rect.Width, Height: c.rect.Height})
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(c.rect.X, c.rect.Y)
		screen.DrawImage(c.offscreen, op)
	}
}

// Layout implements ebiten.Game and adapts the grid to window resizes.
func (d *Dashboard) Layout(outsideWidth, outsideHeight int) (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if outsideWidth != d.width || outsideHeight != d.height {
		d.width = outsideWidth
		d.height = outsideHeight
		d.layoutCells()
	}
	return d.width, d.height
}

// Run opens the window and blocks until it closes or the context is
// cancelled.
func (d *Dashboard) Run() error {
	ebiten.SetWindowSize(d.config.Width, d.config.Height)
	ebiten.SetWindowTitle(d.config.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(d)
	if errors.Is(err, ErrDashboardTerminated) {
		return nil
	}
	return err
}
