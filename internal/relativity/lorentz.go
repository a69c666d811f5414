// Package relativity implements the 1+1-dimensional special-relativity
// engine behind minkowski: Lorentz transforms, spacetime events, inertial
// frames, and the registry that anchors every event in the rest frame and
// propagates it into all registered frames. All velocities are in natural
// units (c = 1).
package relativity

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidVelocity is returned when a velocity magnitude is >= 1, the
// speed of light in natural units. No inertial frame can move at or above c.
var ErrInvalidVelocity = errors.New("invalid velocity")

// Gamma returns the Lorentz factor 1/sqrt(1-v²) for |v| < 1.
func Gamma(v float64) (float64, error) {
	if math.Abs(v) >= 1 {
		return 0, fmt.Errorf("%w: v = %g", ErrInvalidVelocity, v)
	}
	return 1 / math.Sqrt(1-v*v), nil
}

// Boost transforms rest-frame coordinates into a frame moving at velocity v
// relative to the rest frame.
func Boost(tRest, xRest, v float64) (float64, float64, error) {
	g, err := Gamma(v)
	if err != nil {
		return 0, 0, err
	}
	return g * (tRest - v*xRest), g * (xRest - v*tRest), nil
}

// InverseBoost transforms coordinates measured in a frame moving at velocity
// v back into the rest frame. It is the exact algebraic inverse of Boost:
// composing the two with the same v returns the original coordinates up to
// floating-point error.
func InverseBoost(tPrime, xPrime, v float64) (float64, float64, error) {
	g, err := Gamma(v)
	if err != nil {
		return 0, 0, err
	}
	return g * (tPrime + v*xPrime), g * (xPrime + v*tPrime), nil
}
