package swipemenu

// syntheticSample is one frame of injected device state in screen
// coordinates.
type syntheticSample struct {
	x, y    float64
	pressed bool
}

// ScriptedSource is an InputSource fed by queued synthetic samples, one per
// frame. Each sample runs through a real PointerSource or TouchSource, so
// injected input produces exactly the events a device would.
type ScriptedSource struct {
	queue []syntheticSample
	cur   syntheticSample
	inner InputSource
}

// NewScriptedSource creates a scripted source emulating the given device
// family.
func NewScriptedSource(kind SourceKind) *ScriptedSource {
	s := &ScriptedSource{}
	if kind == SourceTouch {
		s.inner = NewTouchSource(scriptedTouch{s})
	} else {
		s.inner = NewPointerSource(PointerReaderFunc(func() (float64, float64, bool) {
			return s.cur.x, s.cur.y, s.cur.pressed
		}))
	}
	return s
}

// scriptedTouch exposes the current sample as touch 1.
type scriptedTouch struct{ s *ScriptedSource }

func (t scriptedTouch) PrimaryTouch() (int, float64, float64, bool) {
	return 1, t.s.cur.x, t.s.cur.y, t.s.cur.pressed
}

// Profile returns the emulated device's gains.
func (s *ScriptedSource) Profile() SourceProfile {
	return s.inner.Profile()
}

// Poll consumes one queued sample. With nothing queued it reports no events.
func (s *ScriptedSource) Poll(now, dt float64, buf []InputEvent) []InputEvent {
	if len(s.queue) == 0 {
		return buf
	}
	s.cur = s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue = s.queue[:len(s.queue)-1]
	return s.inner.Poll(now, dt, buf)
}

// Pending returns the number of queued samples.
func (s *ScriptedSource) Pending() int {
	return len(s.queue)
}

// InjectPress queues a press at the given screen coordinates.
func (s *ScriptedSource) InjectPress(x, y float64) {
	s.queue = append(s.queue, syntheticSample{x: x, y: y, pressed: true})
}

// InjectMove queues a held-down sample at the given screen coordinates. Use
// this between InjectPress and InjectRelease to simulate a drag; repeating
// the previous position holds still for a frame.
func (s *ScriptedSource) InjectMove(x, y float64) {
	s.queue = append(s.queue, syntheticSample{x: x, y: y, pressed: true})
}

// InjectRelease queues a release at the given screen coordinates.
func (s *ScriptedSource) InjectRelease(x, y float64) {
	s.queue = append(s.queue, syntheticSample{x: x, y: y, pressed: false})
}

// InjectTap queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (s *ScriptedSource) InjectTap(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectSwipe queues a full swipe: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes `frames` frames. Minimum frames is
// 2 (press + release).
func (s *ScriptedSource) InjectSwipe(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.InjectMove(x, y)
	}
	s.InjectRelease(toX, toY)
}

// Inject returns the menu's scripted source. Queued samples take priority
// over the real input source until they drain.
func (m *Menu) Inject() *ScriptedSource {
	return m.inject
}
