package relativity

import (
	"math"
	"testing"
)

func TestCausality(t *testing.T) {
	t.Parallel()
	tests := []struct {
		interval float64
		want     Causality
	}{
		{1, Timelike},
		{0.25, Timelike},
		{-1, Spacelike},
		{0, Lightlike},
	}
	for _, tt := range tests {
		e := Event{Interval: tt.interval}
		if got := e.Causality(); got != tt.want {
			t.Errorf("Causality() for interval %g = %v, want %v", tt.interval, got, tt.want)
		}
	}
}

func TestCausality_String(t *testing.T) {
	t.Parallel()
	if Timelike.String() != "timelike" || Spacelike.String() != "spacelike" || Lightlike.String() != "lightlike" {
		t.Error("Causality.String() returned unexpected names")
	}
}

func TestHyperbola_Lightlike(t *testing.T) {
	t.Parallel()
	// Event at (1, 1): rest t and x share a sign, so the locus is the 45°
	// light line t = x.
	e := Event{T: 1, X: 1, Interval: 0}
	got := e.Hyperbola(1, 1, []float64{0, 1, 2})
	want := []float64{0, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Hyperbola[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestHyperbola_LightlikeOppositeSigns(t *testing.T) {
	t.Parallel()
	// Rest t and x with opposite signs trace the −45° line t = −x.
	e := Event{T: 1, X: -1, Interval: 0}
	got := e.Hyperbola(1, -1, []float64{-2, 0, 2})
	want := []float64{2, 0, -2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Hyperbola[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestHyperbola_Timelike(t *testing.T) {
	t.Parallel()
	// Event at (1, 0): interval 1, upper branch t = sqrt(x² + 1).
	e := Event{T: 1, X: 0, Interval: 1}
	got := e.Hyperbola(1, 0, []float64{0, 1, -1})
	if !almostEqual(got[0], 1) {
		t.Errorf("locus at x=0 = %g, want 1", got[0])
	}
	if !almostEqual(got[1], math.Sqrt2) || !almostEqual(got[2], math.Sqrt2) {
		t.Errorf("locus at x=±1 = (%g, %g), want sqrt(2) on both sides", got[1], got[2])
	}
}

func TestHyperbola_TimelikeLowerBranch(t *testing.T) {
	t.Parallel()
	// Negative t picks the lower branch.
	e := Event{T: -1, X: 0, Interval: 1}
	got := e.Hyperbola(-1, 0, []float64{0})
	if !almostEqual(got[0], -1) {
		t.Errorf("locus at x=0 = %g, want -1", got[0])
	}
}

func TestHyperbola_Spacelike(t *testing.T) {
	t.Parallel()
	// Event at (0, 1): interval −1, x-opening branch on the positive x side.
	e := Event{T: 0, X: 1, Interval: -1}
	got := e.Hyperbola(0, 1, []float64{2, 1, 0.5, -2})
	if !almostEqual(got[0], math.Sqrt(3)) {
		t.Errorf("locus at x=2 = %g, want sqrt(3)", got[0])
	}
	if !almostEqual(got[1], 0) {
		t.Errorf("locus at x=1 = %g, want 0", got[1])
	}
	// Inside the branch gap the locus is undefined.
	if !math.IsNaN(got[2]) {
		t.Errorf("locus at x=0.5 = %g, want NaN", got[2])
	}
	// Samples on the opposite side of the t-axis are off the branch.
	if !math.IsNaN(got[3]) {
		t.Errorf("locus at x=-2 = %g, want NaN", got[3])
	}
}

func TestHyperbola_SpacelikeNegativeBranch(t *testing.T) {
	t.Parallel()
	e := Event{T: 0, X: -1, Interval: -1}
	got := e.Hyperbola(0, -1, []float64{-2, 2})
	if !almostEqual(got[0], -math.Sqrt(3)) {
		t.Errorf("locus at x=-2 = %g, want -sqrt(3)", got[0])
	}
	if !math.IsNaN(got[1]) {
		t.Errorf("locus at x=2 = %g, want NaN", got[1])
	}
}
