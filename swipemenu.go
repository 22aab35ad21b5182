package swipemenu

import "math"

// Vec2 is a 2D vector used for screen positions and pointer deltas.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Vec3 is a 3D vector used for item positions in menu space. X runs left to
// right, Y up, and Z away from the viewer (negative Z is closer).
type Vec3 struct {
	X, Y, Z float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// FlickMode selects what a flick does once it passes the force threshold.
type FlickMode uint8

const (
	FlickInertia  FlickMode = iota // animate by the flick length, then lock to closest
	FlickStepMove                  // move exactly one item in the flick direction
)

// String returns the config name of the mode.
func (m FlickMode) String() string {
	switch m {
	case FlickStepMove:
		return "step"
	default:
		return "inertia"
	}
}

// InputPhase identifies a raw pointer or touch event.
type InputPhase uint8

const (
	PhasePointerDown     InputPhase = iota // primary button pressed
	PhasePointerMove                       // pointer moved with the button held
	PhasePointerUp                         // primary button released
	PhaseTouchBegan                        // first finger touched the screen
	PhaseTouchMoved                        // finger moved
	PhaseTouchStationary                   // finger held still past the hold timeout
	PhaseTouchEnded                        // finger lifted
	PhaseTouchCancelled                    // system cancelled the touch
)

// String returns a short name for the phase.
func (p InputPhase) String() string {
	switch p {
	case PhasePointerDown:
		return "pointer-down"
	case PhasePointerMove:
		return "pointer-move"
	case PhasePointerUp:
		return "pointer-up"
	case PhaseTouchBegan:
		return "touch-began"
	case PhaseTouchMoved:
		return "touch-moved"
	case PhaseTouchStationary:
		return "touch-stationary"
	case PhaseTouchEnded:
		return "touch-ended"
	case PhaseTouchCancelled:
		return "touch-cancelled"
	default:
		return "unknown"
	}
}

// isPress reports whether the phase starts a gesture.
func (p InputPhase) isPress() bool {
	return p == PhasePointerDown || p == PhaseTouchBegan
}

// isMove reports whether the phase is a motion sample.
func (p InputPhase) isMove() bool {
	return p == PhasePointerMove || p == PhaseTouchMoved
}

// isRelease reports whether the phase ends a gesture normally.
func (p InputPhase) isRelease() bool {
	return p == PhasePointerUp || p == PhaseTouchEnded
}

// isAbort reports whether the phase ends a gesture without classification.
func (p InputPhase) isAbort() bool {
	return p == PhaseTouchCancelled || p == PhaseTouchStationary
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampInt restricts v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sign returns -1, 0, or 1.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
