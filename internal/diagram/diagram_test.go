package diagram

import (
	"strings"
	"testing"

	"github.com/papapumpkin/minkowski/internal/relativity"
)

// buildRegistry returns a registry with one moving frame and one event
// observed in it.
func buildRegistry(t *testing.T) *relativity.Registry {
	t.Helper()
	reg := relativity.NewRegistry()
	if _, err := reg.Register("rocket", 0.6); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.AddEvent(1, 1, 0); err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	return reg
}

func TestRender_Axes(t *testing.T) {
	t.Parallel()
	r := New()
	out := r.Render(relativity.NewRegistry())
	if !strings.ContainsRune(out, '│') || !strings.ContainsRune(out, '─') {
		t.Error("output should contain the rest-frame axes")
	}
	if !strings.ContainsRune(out, '┼') {
		t.Error("output should mark the origin")
	}
	if !strings.ContainsRune(out, '/') || !strings.ContainsRune(out, '\\') {
		t.Error("output should contain the light cone diagonals")
	}
}

func TestRender_EventLabel(t *testing.T) {
	t.Parallel()
	r := New()
	out := r.Render(buildRegistry(t))
	if !strings.Contains(out, "●A") {
		t.Errorf("output should contain the labeled event point, got:\n%s", out)
	}
}

func TestRender_HyperbolaToggle(t *testing.T) {
	t.Parallel()
	reg := buildRegistry(t)

	r := New()
	with := r.Render(reg)
	if !strings.ContainsRune(with, '·') {
		t.Error("hyperbola strokes missing from default render")
	}

	r.ShowHyperbolas = false
	without := r.Render(reg)
	if strings.ContainsRune(without, '·') {
		t.Error("hyperbola strokes present with ShowHyperbolas disabled")
	}
}

func TestRender_NoColorHasNoEscapes(t *testing.T) {
	t.Parallel()
	r := New()
	out := r.Render(buildRegistry(t))
	if strings.Contains(out, "\x1b[") {
		t.Error("colorless render should not contain ANSI escapes")
	}
}

func TestRender_LineWidth(t *testing.T) {
	t.Parallel()
	r := New()
	r.Width = 40
	r.Height = 12
	out := r.Render(buildRegistry(t))
	for i, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if n := len([]rune(line)); n > 40 {
			t.Errorf("line %d is %d cells wide, want <= 40", i, n)
		}
	}
	if got := strings.Count(out, "\n"); got != 12 {
		t.Errorf("output has %d lines, want 12", got)
	}
}

func TestLegend(t *testing.T) {
	t.Parallel()
	r := New()
	leg := r.Legend(buildRegistry(t))
	if !strings.Contains(leg, "S") || !strings.Contains(leg, "rocket") {
		t.Errorf("legend should list every frame, got:\n%s", leg)
	}
	if !strings.Contains(leg, "v=+0.60") {
		t.Errorf("legend should show frame velocities, got:\n%s", leg)
	}
	if !strings.Contains(leg, "1 event(s)") {
		t.Errorf("legend should show event counts, got:\n%s", leg)
	}
}

func TestDim(t *testing.T) {
	t.Parallel()
	if dim("#FF0000") == "#FF0000" {
		t.Error("dim should change the color")
	}
	if dim("not-a-color") != "not-a-color" {
		t.Error("dim should pass through unparseable colors")
	}
}
