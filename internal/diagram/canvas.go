package diagram

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cell is a single character on the canvas with an optional foreground
// color (hex string; empty means the terminal default).
type cell struct {
	ch    rune
	color string
}

// canvas is a fixed-size rune grid addressed by (col, row) with row 0 at the
// top. Out-of-range writes are silently dropped, which keeps the drawing
// code free of bounds checks.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i].ch = ' '
	}
	return c
}

func (c *canvas) set(col, row int, ch rune, color string) {
	if col < 0 || col >= c.w || row < 0 || row >= c.h {
		return
	}
	c.cells[row*c.w+col] = cell{ch: ch, color: color}
}

// setIfBlank writes a cell only when nothing has been drawn there yet, so
// background curves never overdraw axes, points, or labels.
func (c *canvas) setIfBlank(col, row int, ch rune, color string) {
	if col < 0 || col >= c.w || row < 0 || row >= c.h {
		return
	}
	if c.cells[row*c.w+col].ch == ' ' {
		c.cells[row*c.w+col] = cell{ch: ch, color: color}
	}
}

// writeString draws s horizontally starting at (col, row).
func (c *canvas) writeString(col, row int, s string, color string) {
	for i, ch := range []rune(s) {
		c.set(col+i, row, ch, color)
	}
}

// render assembles the grid into lines, trimming trailing blanks. When
// useColor is set, runs of same-colored cells are wrapped in lipgloss
// truecolor styles.
func (c *canvas) render(useColor bool) string {
	styles := make(map[string]lipgloss.Style)
	styleFor := func(color string) lipgloss.Style {
		s, ok := styles[color]
		if !ok {
			s = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			styles[color] = s
		}
		return s
	}

	var sb strings.Builder
	for row := 0; row < c.h; row++ {
		last := -1
		for col := 0; col < c.w; col++ {
			if c.cells[row*c.w+col].ch != ' ' {
				last = col
			}
		}

		col := 0
		for col <= last {
			color := c.cells[row*c.w+col].color
			var run strings.Builder
			for col <= last && c.cells[row*c.w+col].color == color {
				run.WriteRune(c.cells[row*c.w+col].ch)
				col++
			}
			if useColor && color != "" {
				sb.WriteString(styleFor(color).Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
