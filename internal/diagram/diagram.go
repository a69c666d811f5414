// Package diagram renders a frame registry as an ASCII/ANSI Minkowski
// diagram: rest-frame axes, the light cone, the skewed axes of every moving
// frame, labeled event points, and the invariant hyperbola through each
// event. It is a pure rendering collaborator; all physics comes from the
// relativity package.
package diagram

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/papapumpkin/minkowski/internal/relativity"
)

// Default canvas geometry, chosen so a unit of x spans roughly twice as many
// columns as a unit of t spans rows, which compensates for terminal cells
// being about twice as tall as they are wide.
const (
	DefaultWidth  = 79
	DefaultHeight = 25
	DefaultRange  = 5.0
)

// axisColor is the neutral color of the rest-frame axes and light cone.
const axisColor = "#8C8C8C"

// Renderer draws Minkowski diagrams. The zero value renders with defaults
// and no color.
type Renderer struct {
	// Width and Height are the canvas size in terminal cells.
	Width  int
	Height int

	// TRange and XRange are half-ranges: the diagram covers
	// [-TRange, TRange] × [-XRange, XRange] in rest-frame coordinates.
	TRange float64
	XRange float64

	// UseColor controls whether ANSI color codes are emitted.
	UseColor bool

	// Layer toggles.
	ShowHyperbolas bool
	ShowWorldlines bool
	ShowLightCone  bool
}

// New returns a renderer with default geometry and all layers enabled.
func New() *Renderer {
	return &Renderer{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		TRange:         DefaultRange,
		XRange:         DefaultRange,
		ShowHyperbolas: true,
		ShowWorldlines: true,
		ShowLightCone:  true,
	}
}

// Render draws the registry's rest-frame picture: every physical event
// appears once at its rest coordinates, and each moving frame contributes
// its skewed t′/x′ axes in the frame's color.
func (r *Renderer) Render(reg *relativity.Registry) string {
	w, h := r.Width, r.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	tr, xr := r.TRange, r.XRange
	if tr <= 0 {
		tr = DefaultRange
	}
	if xr <= 0 {
		xr = DefaultRange
	}

	cv := newCanvas(w, h)
	g := grid{w: w, h: h, tr: tr, xr: xr}

	r.drawAxes(cv, g)
	if r.ShowLightCone {
		r.drawLightCone(cv, g)
	}
	if r.ShowWorldlines {
		for _, f := range reg.Frames()[1:] {
			r.drawFrameAxes(cv, g, f)
		}
	}
	if r.ShowHyperbolas {
		for _, ev := range restEvents(reg) {
			r.drawHyperbola(cv, g, ev)
		}
	}
	for _, ev := range restEvents(reg) {
		r.drawEvent(cv, g, ev)
	}

	return cv.render(r.UseColor)
}

// Legend returns one line per registered frame: a colored marker, the frame
// name, its velocity, and how many events it holds.
func (r *Renderer) Legend(reg *relativity.Registry) string {
	var sb strings.Builder
	for _, f := range reg.Frames() {
		line := fmt.Sprintf("■ %-10s v=%+.2f  %d event(s)", f.Name, f.V, len(f.Events))
		if r.UseColor {
			line = lipgloss.NewStyle().Foreground(lipgloss.Color(f.Color)).Render(line)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// grid maps rest-frame coordinates onto canvas cells.
type grid struct {
	w, h   int
	tr, xr float64
}

func (g grid) col(x float64) int {
	return int(math.Round((x + g.xr) / (2 * g.xr) * float64(g.w-1)))
}

func (g grid) row(t float64) int {
	return int(math.Round((g.tr - t) / (2 * g.tr) * float64(g.h-1)))
}

// x returns the rest-frame x coordinate at the center of a column.
func (g grid) x(col int) float64 {
	return float64(col)/float64(g.w-1)*(2*g.xr) - g.xr
}

// t returns the rest-frame t coordinate at the center of a row.
func (g grid) t(row int) float64 {
	return g.tr - float64(row)/float64(g.h-1)*(2*g.tr)
}

func (r *Renderer) drawAxes(cv *canvas, g grid) {
	originCol, originRow := g.col(0), g.row(0)
	for row := 0; row < g.h; row++ {
		cv.set(originCol, row, '│', axisColor)
	}
	for col := 0; col < g.w; col++ {
		if col != originCol {
			cv.set(col, originRow, '─', axisColor)
		}
	}
	cv.set(originCol, originRow, '┼', axisColor)
	cv.writeString(originCol+1, 0, "t", axisColor)
	cv.writeString(g.w-1, originRow-1, "x", axisColor)
}

func (r *Renderer) drawLightCone(cv *canvas, g grid) {
	for col := 0; col < g.w; col++ {
		x := g.x(col)
		cv.setIfBlank(col, g.row(x), '/', axisColor)
		cv.setIfBlank(col, g.row(-x), '\\', axisColor)
	}
}

// drawFrameAxes draws the t′ axis (the worldline x = v·t) and the x′ axis
// (the simultaneity line t = v·x) of a moving frame in rest coordinates.
func (r *Renderer) drawFrameAxes(cv *canvas, g grid, f relativity.Frame) {
	if f.V == 0 {
		return
	}
	tick := '/'
	if f.V < 0 {
		tick = '\\'
	}
	// t′ axis: steeper than the light cone, sampled per row.
	for row := 0; row < g.h; row++ {
		t := g.t(row)
		cv.setIfBlank(g.col(f.V*t), row, tick, f.Color)
	}
	// x′ axis: shallower than the light cone, sampled per column.
	for col := 0; col < g.w; col++ {
		x := g.x(col)
		cv.setIfBlank(col, g.row(f.V*x), tick, f.Color)
	}
	cv.writeString(g.col(f.V*g.tr)+1, 0, "t'", f.Color)
}

func (r *Renderer) drawHyperbola(cv *canvas, g grid, ev relativity.Event) {
	xs := make([]float64, g.w)
	for col := range xs {
		xs[col] = g.x(col)
	}
	// Rest-frame events: local and rest coordinates coincide.
	ts := ev.Hyperbola(ev.T, ev.X, xs)
	color := dim(ev.Color)
	for col, t := range ts {
		if math.IsNaN(t) {
			continue
		}
		cv.setIfBlank(col, g.row(t), '·', color)
	}
}

func (r *Renderer) drawEvent(cv *canvas, g grid, ev relativity.Event) {
	col, row := g.col(ev.X), g.row(ev.T)
	cv.set(col, row, '●', ev.Color)
	cv.writeString(col+1, row, ev.Name, ev.Color)
}

// restEvents returns the rest frame's events sorted by label so rendering is
// deterministic.
func restEvents(reg *relativity.Registry) []relativity.Event {
	rest := reg.RestFrame()
	events := make([]relativity.Event, 0, len(rest.Events))
	for _, ev := range rest.Events {
		events = append(events, ev)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Name < events[j].Name
	})
	return events
}

// dim blends a hex color halfway toward black, so hyperbola strokes read as
// background detail under the event points they pass through.
func dim(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	black := colorful.Color{}
	return c.BlendLab(black, 0.55).Hex()
}
