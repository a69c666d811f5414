package relativity

import "math"

// Causality classifies an event's separation from the origin by the sign of
// its invariant interval.
type Causality int

const (
	Spacelike Causality = iota - 1
	Lightlike
	Timelike
)

func (c Causality) String() string {
	switch c {
	case Timelike:
		return "timelike"
	case Spacelike:
		return "spacelike"
	default:
		return "lightlike"
	}
}

// Event is a spacetime point as observed in one inertial frame. Events are
// immutable once created; each frame owns its own transformed copy of a
// physical event under a frame-specific label. Interval is computed from the
// rest-frame coordinates of the underlying physical event, so every copy of
// one event carries the identical value.
type Event struct {
	T        float64
	X        float64
	Name     string
	Color    string
	Interval float64 // t_rest² − x_rest²
}

// Causality returns the causal classification of the event relative to the
// origin: timelike for a positive interval, spacelike for negative,
// lightlike for zero.
func (e Event) Causality() Causality {
	switch {
	case e.Interval > 0:
		return Timelike
	case e.Interval < 0:
		return Spacelike
	default:
		return Lightlike
	}
}

// Hyperbola traces the invariant-interval locus through the event for the
// given x samples, returning one t value per sample. Samples that fall off
// the event's branch are NaN.
//
// Timelike events trace the branch of the t-opening hyperbola on the same
// side of the x-axis as the event's own t. Spacelike events trace the
// x-opening hyperbola on the event's side of the t-axis. Lightlike events
// trace the 45° or −45° light line through the origin; the orientation is
// decided by the rest-frame coordinates even though sampling is on the
// frame-local x.
func (e Event) Hyperbola(tRest, xRest float64, xs []float64) []float64 {
	ts := make([]float64, len(xs))
	switch {
	case e.Interval > 0:
		sign := 1.0
		if e.T < 0 {
			sign = -1
		}
		for i, x := range xs {
			ts[i] = sign * math.Sqrt(x*x+e.Interval)
		}
	case e.Interval < 0:
		sign := 1.0
		if e.X < 0 {
			sign = -1
		}
		for i, x := range xs {
			if x*e.X < 0 {
				ts[i] = math.NaN()
				continue
			}
			// Sqrt of a negative argument yields NaN for the gap
			// |x| < sqrt(−interval) between the two branches.
			ts[i] = sign * math.Sqrt(x*x+e.Interval)
		}
	default:
		sign := 1.0
		if tRest*xRest < 0 {
			sign = -1
		}
		for i, x := range xs {
			ts[i] = sign * x
		}
	}
	return ts
}
