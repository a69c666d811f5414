package relativity

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrFrameNotFound is returned when an operation references a frame index
// outside the registry.
var ErrFrameNotFound = errors.New("frame not found")

// RestFrameName is the conventional name of the distinguished rest frame.
const RestFrameName = "S"

// Registry owns every inertial frame of a session as an indexed sequence.
// Index 0 is always the rest frame. The registry is not safe for concurrent
// use; callers add one event fully before adding the next.
type Registry struct {
	frames []Frame
}

// NewRegistry creates a registry holding only the rest frame.
func NewRegistry() *Registry {
	return &Registry{frames: []Frame{{
		Name:   RestFrameName,
		Color:  RestColor,
		Events: make(map[string]Event),
	}}}
}

// Register appends a frame moving at velocity v and returns its index. The
// frame's color is derived from the index. Returns ErrInvalidVelocity when
// |v| >= 1. An empty name defaults to the rest frame's name plus the index.
func (r *Registry) Register(name string, v float64) (int, error) {
	if _, err := Gamma(v); err != nil {
		return 0, err
	}
	idx := len(r.frames)
	if name == "" {
		name = RestFrameName + strconv.Itoa(idx)
	}
	r.frames = append(r.frames, Frame{
		Name:   name,
		V:      v,
		Color:  ColorFor(idx),
		Index:  idx,
		Events: make(map[string]Event),
	})
	return idx, nil
}

// Len returns the number of registered frames, including the rest frame.
func (r *Registry) Len() int {
	return len(r.frames)
}

// Frames returns the registered frames in index order.
func (r *Registry) Frames() []Frame {
	return r.frames
}

// Frame returns the frame at the given index.
func (r *Registry) Frame(index int) (Frame, error) {
	if index < 0 || index >= len(r.frames) {
		return Frame{}, fmt.Errorf("%w: index %d", ErrFrameNotFound, index)
	}
	return r.frames[index], nil
}

// RestFrame returns the distinguished rest frame at index 0.
func (r *Registry) RestFrame() Frame {
	return r.frames[0]
}

// Lookup returns the index of the frame with the given name. The empty
// string resolves to the rest frame.
func (r *Registry) Lookup(name string) (int, error) {
	if name == "" {
		return 0, nil
	}
	for i := range r.frames {
		if r.frames[i].Name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrFrameNotFound, name)
}

// AddEvent records a spacetime event with coordinates (t, x) as observed in
// the frame at frameIndex. The event is anchored in the rest frame under a
// freshly allocated base label, then a transformed copy is stored in every
// registered frame under the base label plus that frame's index (the rest
// frame keeps the plain base label). All copies carry the invariant interval
// computed from the rest-frame coordinates.
func (r *Registry) AddEvent(frameIndex int, t, x float64) error {
	if frameIndex < 0 || frameIndex >= len(r.frames) {
		return fmt.Errorf("%w: index %d", ErrFrameNotFound, frameIndex)
	}

	tRest, xRest := t, x
	if frameIndex != 0 {
		var err error
		tRest, xRest, err = InverseBoost(t, x, r.frames[frameIndex].V)
		if err != nil {
			return err
		}
	}

	// Base labels already taken in the rest frame. Trailing digits on a
	// stored label are frame-index suffixes, not part of the physical-event
	// identity.
	used := make(map[string]bool, len(r.frames[0].Events))
	for label := range r.frames[0].Events {
		used[baseName(label)] = true
	}
	base := NextName(used)

	interval := tRest*tRest - xRest*xRest

	for i := range r.frames {
		f := &r.frames[i]
		tf, xf, err := Boost(tRest, xRest, f.V)
		if err != nil {
			return err
		}
		label := base
		if f.Index != 0 {
			label = base + strconv.Itoa(f.Index)
		}
		f.Events[label] = Event{
			T:        tf,
			X:        xf,
			Name:     label,
			Color:    f.Color,
			Interval: interval,
		}
	}
	return nil
}
