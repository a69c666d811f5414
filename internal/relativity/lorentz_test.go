package relativity

import (
	"errors"
	"math"
	"testing"
)

const tol = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestGamma(t *testing.T) {
	t.Parallel()
	tests := []struct {
		v    float64
		want float64
	}{
		{0, 1},
		{0.6, 1.25},
		{-0.6, 1.25},
		{0.8, 1.0 / 0.6},
	}
	for _, tt := range tests {
		got, err := Gamma(tt.v)
		if err != nil {
			t.Fatalf("Gamma(%g): %v", tt.v, err)
		}
		if !almostEqual(got, tt.want) {
			t.Errorf("Gamma(%g) = %g, want %g", tt.v, got, tt.want)
		}
	}
}

func TestGamma_InvalidVelocity(t *testing.T) {
	t.Parallel()
	for _, v := range []float64{1, -1, 1.5, -2, math.Inf(1)} {
		if _, err := Gamma(v); !errors.Is(err, ErrInvalidVelocity) {
			t.Errorf("Gamma(%g) error = %v, want ErrInvalidVelocity", v, err)
		}
		if _, _, err := Boost(1, 2, v); !errors.Is(err, ErrInvalidVelocity) {
			t.Errorf("Boost(_, _, %g) error = %v, want ErrInvalidVelocity", v, err)
		}
		if _, _, err := InverseBoost(1, 2, v); !errors.Is(err, ErrInvalidVelocity) {
			t.Errorf("InverseBoost(_, _, %g) error = %v, want ErrInvalidVelocity", v, err)
		}
	}
}

func TestBoost_RoundTrip(t *testing.T) {
	t.Parallel()
	velocities := []float64{-0.99, -0.9, -0.5, -0.1, 0, 0.1, 0.5, 0.9, 0.99}
	coords := []struct{ t, x float64 }{
		{0, 0}, {1, 0}, {0, 1}, {1, 1}, {-3.5, 2.25}, {100, -42},
	}
	for _, v := range velocities {
		for _, c := range coords {
			tp, xp, err := Boost(c.t, c.x, v)
			if err != nil {
				t.Fatalf("Boost(%g, %g, %g): %v", c.t, c.x, v, err)
			}
			tr, xr, err := InverseBoost(tp, xp, v)
			if err != nil {
				t.Fatalf("InverseBoost(%g, %g, %g): %v", tp, xp, v, err)
			}
			if !almostEqual(tr, c.t) || !almostEqual(xr, c.x) {
				t.Errorf("round trip at v=%g: (%g, %g) -> (%g, %g), want original", v, c.t, c.x, tr, xr)
			}
		}
	}
}

func TestBoost_KnownValues(t *testing.T) {
	t.Parallel()
	// v = 0.6 gives γ = 1.25.
	tp, xp, err := Boost(1, 0, 0.6)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(tp, 1.25) || !almostEqual(xp, -0.75) {
		t.Errorf("Boost(1, 0, 0.6) = (%g, %g), want (1.25, -0.75)", tp, xp)
	}
}

func TestBoost_IntervalInvariance(t *testing.T) {
	t.Parallel()
	events := []struct{ t, x float64 }{
		{1, 0}, {0, 1}, {2, 2}, {-1.5, 0.5}, {3, -4},
	}
	for _, v := range []float64{-0.9, -0.5, 0, 0.5, 0.9} {
		for _, e := range events {
			tp, xp, err := Boost(e.t, e.x, v)
			if err != nil {
				t.Fatal(err)
			}
			want := e.t*e.t - e.x*e.x
			got := tp*tp - xp*xp
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("interval at v=%g for (%g, %g): got %g, want %g", v, e.t, e.x, got, want)
			}
		}
	}
}
