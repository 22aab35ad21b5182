package swipemenu

// --- Constants ---

const (
	pointerDragGain  = 0.01 // scroll units per pixel of cursor motion
	pointerFlickGain = 0.5
	touchDragGain    = 0.2 // per pixel, scaled by frame time
	touchFlickGain   = 0.35

	defaultHoldTimeout = 0.5 // seconds a touch must rest before it is stationary
)

// InputEvent is one raw pointer or touch sample.
type InputEvent struct {
	Phase    InputPhase
	Position Vec2 // screen coordinates
	// Delta is the motion since the previous sample of the same gesture.
	// It is zero for presses and carries the residual motion on release.
	Delta Vec2
	// Time is the menu clock in seconds when the sample was taken.
	Time float64
	// DeltaTime is the duration of the frame the sample was taken in.
	DeltaTime float64
}

// SourceKind identifies an input device family.
type SourceKind uint8

const (
	SourcePointer SourceKind = iota // mouse or pen with a primary button
	SourceTouch                     // single-finger touch screen
)

// String returns a short name for the kind.
func (k SourceKind) String() string {
	if k == SourceTouch {
		return "touch"
	}
	return "pointer"
}

// SourceProfile holds the empirically tuned gains that convert screen-space
// motion from a device family into scroll units.
type SourceProfile struct {
	Kind SourceKind
	// DragGain scales per-sample drag motion.
	DragGain float64
	// DragUsesFrameTime additionally scales drag motion by the frame time.
	DragUsesFrameTime bool
	// DragUsesLength measures drag motion by the full sample vector, signed
	// by its horizontal direction. Otherwise only horizontal motion counts.
	DragUsesLength bool
	// FlickGain scales the release vector into a scroll length.
	FlickGain float64
}

// PointerProfile returns the gains used for mouse input.
func PointerProfile() SourceProfile {
	return SourceProfile{Kind: SourcePointer, DragGain: pointerDragGain, FlickGain: pointerFlickGain}
}

// TouchProfile returns the gains used for touch input.
func TouchProfile() SourceProfile {
	return SourceProfile{Kind: SourceTouch, DragGain: touchDragGain, DragUsesFrameTime: true, DragUsesLength: true, FlickGain: touchFlickGain}
}

// InputSource produces raw input events once per frame. Poll appends the
// events observed since the previous call to buf and returns it.
type InputSource interface {
	Profile() SourceProfile
	Poll(now, dt float64, buf []InputEvent) []InputEvent
}

// --- Pointer ---

// PointerReader reports the cursor position in screen coordinates and
// whether the primary button is held.
type PointerReader interface {
	Pointer() (x, y float64, pressed bool)
}

// PointerReaderFunc adapts a function to PointerReader.
type PointerReaderFunc func() (x, y float64, pressed bool)

// Pointer calls f.
func (f PointerReaderFunc) Pointer() (x, y float64, pressed bool) {
	return f()
}

// PointerSource turns polled cursor state into down/move/up events.
type PointerSource struct {
	reader  PointerReader
	profile SourceProfile
	down    bool
	last    Vec2
}

// NewPointerSource creates a pointer source reading from r.
func NewPointerSource(r PointerReader) *PointerSource {
	return &PointerSource{reader: r, profile: PointerProfile()}
}

// Profile returns the pointer gains.
func (s *PointerSource) Profile() SourceProfile {
	return s.profile
}

// Poll samples the reader once.
func (s *PointerSource) Poll(now, dt float64, buf []InputEvent) []InputEvent {
	x, y, pressed := s.reader.Pointer()
	pos := Vec2{x, y}
	ev := InputEvent{Position: pos, Time: now, DeltaTime: dt}

	switch {
	case pressed && !s.down:
		s.down = true
		ev.Phase = PhasePointerDown
		buf = append(buf, ev)
	case pressed && s.down:
		if pos != s.last {
			ev.Phase = PhasePointerMove
			ev.Delta = pos.Sub(s.last)
			buf = append(buf, ev)
		}
	case !pressed && s.down:
		s.down = false
		ev.Phase = PhasePointerUp
		ev.Delta = pos.Sub(s.last)
		buf = append(buf, ev)
	}
	s.last = pos
	return buf
}

// --- Touch ---

// TouchReader reports the primary touch: a stable identifier and its
// position, or ok == false when no finger is down.
type TouchReader interface {
	PrimaryTouch() (id int, x, y float64, ok bool)
}

// TouchSource turns polled touch state into began/moved/stationary/ended
// events for a single finger.
type TouchSource struct {
	// HoldTimeout is how long a finger must rest before a stationary event
	// ends the gesture. Zero disables stationary events.
	HoldTimeout float64

	reader     TouchReader
	profile    SourceProfile
	tracking   bool
	id         int
	last       Vec2
	still      float64
	held       bool
	cancel     bool
	suppressed bool
}

// NewTouchSource creates a touch source reading from r.
func NewTouchSource(r TouchReader) *TouchSource {
	return &TouchSource{reader: r, profile: TouchProfile(), HoldTimeout: defaultHoldTimeout}
}

// Profile returns the touch gains.
func (s *TouchSource) Profile() SourceProfile {
	return s.profile
}

// Cancel makes the next Poll report the current touch as cancelled, for
// hosts that lose focus or hand the touch to another widget. The finger is
// then ignored until it lifts.
func (s *TouchSource) Cancel() {
	if s.tracking && !s.suppressed {
		s.cancel = true
	}
}

// Poll samples the reader once.
func (s *TouchSource) Poll(now, dt float64, buf []InputEvent) []InputEvent {
	id, x, y, ok := s.reader.PrimaryTouch()
	pos := Vec2{x, y}
	ev := InputEvent{Time: now, DeltaTime: dt}

	// The tracked finger lifted or was replaced.
	if s.tracking && (!ok || id != s.id) {
		s.tracking = false
		if !s.suppressed {
			ev.Phase = PhaseTouchEnded
			ev.Position = s.last
			buf = append(buf, ev)
		}
	}
	if !ok {
		s.cancel = false
		return buf
	}

	if !s.tracking {
		s.tracking = true
		s.id = id
		s.last = pos
		s.still = 0
		s.held = false
		s.cancel = false
		s.suppressed = false
		ev.Phase = PhaseTouchBegan
		ev.Position = pos
		return append(buf, ev)
	}
	if s.suppressed {
		return buf
	}
	if s.cancel {
		s.cancel = false
		s.suppressed = true
		ev.Phase = PhaseTouchCancelled
		ev.Position = s.last
		return append(buf, ev)
	}

	if pos != s.last {
		ev.Phase = PhaseTouchMoved
		ev.Position = pos
		ev.Delta = pos.Sub(s.last)
		s.last = pos
		s.still = 0
		s.held = false
		return append(buf, ev)
	}

	s.still += dt
	if s.HoldTimeout > 0 && !s.held && s.still >= s.HoldTimeout {
		s.held = true
		ev.Phase = PhaseTouchStationary
		ev.Position = pos
		buf = append(buf, ev)
	}
	return buf
}
