package relativity

// Frame is a named inertial reference frame moving at constant velocity V
// relative to the rest frame. Frames live inside a Registry and refer to one
// another only by Index; the rest frame is always index 0 with V = 0.
//
// Events maps per-frame labels to that frame's copy of each physical event.
// The mapping only ever grows; frames are never destroyed during a session.
type Frame struct {
	Name   string
	V      float64
	Color  string
	Index  int
	Events map[string]Event
}
