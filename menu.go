package swipemenu

import (
	"log/slog"
	"time"
)

// Menu wires a Controller, GestureClassifier, and HitResolver to an input
// source and runs them once per frame. It is the usual entry point; the
// parts can also be assembled by hand.
type Menu struct {
	// ScreenshotDir is where Screenshot writes PNG files. Defaults to
	// "screenshots".
	ScreenshotDir string

	cfg Config
	log *slog.Logger

	ctrl     *Controller
	gestures *GestureClassifier
	hits     *HitResolver
	source   InputSource
	inject   *ScriptedSource
	camera   *Camera

	runner *GestureRunner
	shots  []string

	now    float64
	events []InputEvent
}

// NewMenu builds a menu over nodes. source may be nil for menus driven only
// by injected input. caster may be nil to disable taps; when it is a
// *Camera, every *Node item is registered as a camera target.
func NewMenu(nodes []SceneNode, cfg Config, source InputSource, caster RayCaster) (*Menu, error) {
	ctrl, err := NewController(nodes, cfg, NewTweenAnimator())
	if err != nil {
		return nil, err
	}
	cfg = ctrl.Config()

	kind := SourcePointer
	profile := PointerProfile()
	if source != nil {
		profile = source.Profile()
		kind = profile.Kind
	}

	m := &Menu{
		ScreenshotDir: defaultScreenshotDir,
		cfg:           cfg,
		log:           cfg.logger(),
		ctrl:          ctrl,
		source:        source,
		inject:        NewScriptedSource(kind),
		events:        make([]InputEvent, 0, 8),
	}
	m.gestures = NewGestureClassifier(ctrl, profile, cfg)
	m.hits = NewHitResolver(ctrl, m.gestures, caster, cfg)

	if cam, ok := caster.(*Camera); ok {
		m.camera = cam
		for _, s := range ctrl.Slots() {
			if n, ok := s.Node.(*Node); ok {
				cam.AddTarget(n)
			}
		}
	}
	return m, nil
}

// Controller returns the menu's controller.
func (m *Menu) Controller() *Controller {
	return m.ctrl
}

// Gestures returns the menu's gesture classifier.
func (m *Menu) Gestures() *GestureClassifier {
	return m.gestures
}

// Hits returns the menu's hit resolver.
func (m *Menu) Hits() *HitResolver {
	return m.hits
}

// Camera returns the camera passed as the ray caster, or nil.
func (m *Menu) Camera() *Camera {
	return m.camera
}

// Now returns the menu clock in seconds.
func (m *Menu) Now() float64 {
	return m.now
}

// AddSubItem registers a sub-item tap target owned by the item at index. A
// *Node sub-item is also registered with the menu's camera.
func (m *Menu) AddSubItem(index int, node SceneNode, onSelect func(*SubItem)) *SubItem {
	if n, ok := node.(*Node); ok && m.camera != nil {
		m.camera.AddTarget(n)
	}
	return m.hits.AddSubItem(m.ctrl.Slot(index), node, onSelect)
}

// Update runs one frame of dt seconds: input is sampled and classified
// (drags move the offset immediately), the scroll animation advances, poses
// are recomputed, and finally releases are checked for taps.
func (m *Menu) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	var stats frameStats
	var t0 time.Time
	if m.cfg.Debug {
		t0 = time.Now()
	}

	m.now += dt
	if m.runner != nil {
		m.runner.step(m)
	}

	m.events = m.events[:0]
	if m.inject.Pending() > 0 {
		m.events = m.inject.Poll(m.now, dt, m.events)
	} else if m.source != nil {
		m.events = m.source.Poll(m.now, dt, m.events)
	}
	for _, ev := range m.events {
		m.gestures.Handle(ev)
	}

	if m.cfg.Debug {
		stats.inputTime = time.Since(t0)
		stats.eventCount = len(m.events)
		t0 = time.Now()
	}

	m.ctrl.Update(dt)
	m.ctrl.Tick()

	if m.cfg.Debug {
		stats.poseTime = time.Since(t0)
		t0 = time.Now()
	}

	for _, ev := range m.events {
		if ev.Phase.isRelease() && m.hits.HandleRelease(ev) {
			stats.hits++
		}
	}

	if m.cfg.Debug {
		stats.hitTime = time.Since(t0)
		stats.scrollOffset = m.ctrl.ScrollOffset()
		m.debugLog(stats)
	}
}
