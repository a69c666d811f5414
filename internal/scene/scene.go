// Package scene provides the data model and persistence layer for minkowski
// scene files, stored in .minkowski/scene.toml. A scene lists the moving
// frames of a session and the observed events that are replayed through the
// frame registry when the scene is built.
package scene

import (
	"fmt"

	"github.com/papapumpkin/minkowski/internal/relativity"
)

// Scene is the root document of a scene file.
type Scene struct {
	Meta   Header       `toml:"scene"`
	Frames []FrameEntry `toml:"frame"`
	Events []EventEntry `toml:"event"`
}

// Header contains top-level metadata about the scene itself.
type Header struct {
	Version int    `toml:"version"`
	Title   string `toml:"title,omitempty"`
}

// FrameEntry declares a moving inertial frame. The rest frame is implicit
// and never stored.
type FrameEntry struct {
	Name     string  `toml:"name"`
	Velocity float64 `toml:"velocity"`
}

// EventEntry is a single observation: coordinates (t, x) as measured in the
// named frame. An empty frame name means the rest frame.
type EventEntry struct {
	T     float64 `toml:"t"`
	X     float64 `toml:"x"`
	Frame string  `toml:"frame,omitempty"`
}

// Build constructs a frame registry from the scene: frames are registered in
// declaration order, then every event is replayed through the registry in
// order, which assigns base labels deterministically.
func Build(sc *Scene) (*relativity.Registry, error) {
	reg := relativity.NewRegistry()
	for _, f := range sc.Frames {
		if _, err := reg.Register(f.Name, f.Velocity); err != nil {
			return nil, fmt.Errorf("registering frame %q: %w", f.Name, err)
		}
	}
	for _, e := range sc.Events {
		idx, err := reg.Lookup(e.Frame)
		if err != nil {
			return nil, fmt.Errorf("event (%g, %g): %w", e.T, e.X, err)
		}
		if err := reg.AddEvent(idx, e.T, e.X); err != nil {
			return nil, fmt.Errorf("event (%g, %g): %w", e.T, e.X, err)
		}
	}
	return reg, nil
}
