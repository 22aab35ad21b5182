package swipemenu

import "testing"

type fixedActivity bool

func (a fixedActivity) IsActive() bool { return bool(a) }

// castTo returns a RayCaster that always hits node.
func castTo(node SceneNode) RayCaster {
	return RayCasterFunc(func(Vec2) (SceneNode, bool) {
		return node, node != nil
	})
}

func tapRelease() InputEvent {
	return InputEvent{Phase: PhasePointerUp, Position: Vec2{1, 1}, DeltaTime: frame}
}

func TestHitCentredItemSelects(t *testing.T) {
	c := newTestController(t, 5, DefaultConfig())
	selected := -1
	c.OnSelect(func(ev SelectionEvent) { selected = ev.Slot.Index })

	h := NewHitResolver(c, fixedActivity(false), castTo(c.Slot(0).Node), c.Config())
	if !h.HandleRelease(tapRelease()) {
		t.Fatal("tap on centred item not handled")
	}
	if selected != 0 {
		t.Errorf("selected = %d, want 0", selected)
	}
	if c.Animating() {
		t.Error("tap on centred item started an animation")
	}
}

func TestHitOffCentreItemRequiresCentring(t *testing.T) {
	c := newTestController(t, 5, DefaultConfig())
	selected := -1
	c.OnSelect(func(ev SelectionEvent) { selected = ev.Slot.Index })

	h := NewHitResolver(c, nil, castTo(c.Slot(2).Node), c.Config())
	if !h.HandleRelease(tapRelease()) {
		t.Fatal("tap on off-centre item not handled")
	}
	if selected != -1 {
		t.Errorf("off-centre tap selected %d", selected)
	}
	if !c.Animating() {
		t.Fatal("off-centre tap did not start centring")
	}
	settle(c)
	if !c.IsCentred(c.Slot(2)) {
		t.Errorf("slot 2 not centred, offset %v", c.ScrollOffset())
	}

	// Now centred, the same tap selects.
	h.HandleRelease(tapRelease())
	if selected != 2 {
		t.Errorf("selected = %d, want 2", selected)
	}
}

func TestHitOffCentreItemSelectsImmediately(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RequireCentredForSelection = false
	c := newTestController(t, 5, cfg)
	selected := -1
	c.OnSelect(func(ev SelectionEvent) { selected = ev.Slot.Index })

	h := NewHitResolver(c, nil, castTo(c.Slot(3).Node), c.Config())
	h.HandleRelease(tapRelease())
	if selected != 3 {
		t.Errorf("selected = %d, want 3", selected)
	}
	if !c.Animating() {
		t.Error("item not animated to centre")
	}
}

func TestHitIgnoredReleases(t *testing.T) {
	c := newTestController(t, 5, DefaultConfig())
	selects := 0
	c.OnSelect(func(SelectionEvent) { selects++ })
	node := c.Slot(0).Node

	disabled := c.Config()
	disabled.HandleTaps = false

	moved := tapRelease()
	moved.Delta = Vec2{3, 0}
	press := tapRelease()
	press.Phase = PhasePointerDown

	tests := []struct {
		name     string
		activity Activity
		cfg      Config
		ev       InputEvent
	}{
		{"taps disabled", nil, disabled, tapRelease()},
		{"gesture active", fixedActivity(true), c.Config(), tapRelease()},
		{"residual motion", nil, c.Config(), moved},
		{"not a release", nil, c.Config(), press},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHitResolver(c, tt.activity, castTo(node), tt.cfg)
			if h.HandleRelease(tt.ev) {
				t.Error("release handled")
			}
		})
	}
	if selects != 0 {
		t.Errorf("ignored releases selected %d times", selects)
	}
}

func TestHitMiss(t *testing.T) {
	c := newTestController(t, 3, DefaultConfig())

	h := NewHitResolver(c, nil, castTo(nil), c.Config())
	if h.HandleRelease(tapRelease()) {
		t.Error("miss reported as hit")
	}

	h = NewHitResolver(c, nil, castTo(NewNode("elsewhere", 1, 1)), c.Config())
	if h.HandleRelease(tapRelease()) {
		t.Error("non-item node reported as hit")
	}

	h = NewHitResolver(c, nil, nil, c.Config())
	if h.Resolve(Vec2{}) {
		t.Error("resolver without a caster reported a hit")
	}
	if c.Animating() {
		t.Error("miss started an animation")
	}
}

func TestHitSubItemOnlyWhenOwnerCentred(t *testing.T) {
	c := newTestController(t, 5, DefaultConfig())
	button := NewNode("button", 0.2, 0.2)

	h := NewHitResolver(c, nil, castTo(button), c.Config())
	fired := 0
	sub := h.AddSubItem(c.Slot(1), button, func(s *SubItem) {
		fired++
		if s.Owner.Index != 1 {
			t.Errorf("owner = %d, want 1", s.Owner.Index)
		}
	})
	if len(h.SubItems()) != 1 || h.SubItems()[0] != sub {
		t.Fatal("sub-item not registered")
	}

	if h.HandleRelease(tapRelease()) || fired != 0 {
		t.Errorf("sub-item of off-centre owner fired (%d)", fired)
	}

	c.AnimateToItem(c.Slot(1))
	settle(c)
	if !h.HandleRelease(tapRelease()) || fired != 1 {
		t.Errorf("sub-item of centred owner fired %d times, want 1", fired)
	}
}
