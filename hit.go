package swipemenu

import "log/slog"

// RayCaster finds the scene node under a screen point.
type RayCaster interface {
	CastRay(screen Vec2) (SceneNode, bool)
}

// RayCasterFunc adapts a function to RayCaster.
type RayCasterFunc func(screen Vec2) (SceneNode, bool)

// CastRay calls f.
func (f RayCasterFunc) CastRay(screen Vec2) (SceneNode, bool) {
	return f(screen)
}

// Activity reports whether a gesture is in progress. *GestureClassifier
// satisfies it.
type Activity interface {
	IsActive() bool
}

// SubItem is a secondary tap target owned by an item, such as a button
// drawn on a card. It only responds while its owner is centred.
type SubItem struct {
	Owner    *Slot
	Node     SceneNode
	OnSelect func(*SubItem)
}

// HitResolver turns taps into selection: a tap on the centred item selects
// it, a tap on any other item brings that item to centre (and selects it too
// unless RequireCentredForSelection is set). Misses are ignored.
type HitResolver struct {
	ctrl     *Controller
	activity Activity
	caster   RayCaster
	cfg      Config
	log      *slog.Logger

	subItems []*SubItem
}

// NewHitResolver creates a resolver. activity may be nil, in which case
// every qualifying release is treated as a tap.
func NewHitResolver(ctrl *Controller, activity Activity, caster RayCaster, cfg Config) *HitResolver {
	return &HitResolver{
		ctrl:     ctrl,
		activity: activity,
		caster:   caster,
		cfg:      cfg,
		log:      cfg.logger(),
	}
}

// AddSubItem registers a sub-item tap target.
func (h *HitResolver) AddSubItem(owner *Slot, node SceneNode, onSelect func(*SubItem)) *SubItem {
	s := &SubItem{Owner: owner, Node: node, OnSelect: onSelect}
	h.subItems = append(h.subItems, s)
	return s
}

// SubItems returns the registered sub-items. The returned slice MUST NOT be mutated.
func (h *HitResolver) SubItems() []*SubItem {
	return h.subItems
}

// HandleRelease resolves ev as a tap if it qualifies: taps are enabled, ev
// is a release with no residual horizontal motion, and no gesture is active.
// It reports whether an item or sub-item was hit.
func (h *HitResolver) HandleRelease(ev InputEvent) bool {
	if !h.cfg.HandleTaps || !ev.Phase.isRelease() {
		return false
	}
	if h.activity != nil && h.activity.IsActive() {
		return false
	}
	if ev.Delta.X != 0 {
		return false
	}
	return h.Resolve(ev.Position)
}

// Resolve casts a ray through screen and acts on the item hit, if any.
func (h *HitResolver) Resolve(screen Vec2) bool {
	if h.caster == nil {
		return false
	}
	node, ok := h.caster.CastRay(screen)
	if !ok || node == nil {
		return false
	}

	for _, sub := range h.subItems {
		if sub.Node != node {
			continue
		}
		if !h.ctrl.IsCentred(sub.Owner) {
			return false
		}
		if sub.OnSelect != nil {
			sub.OnSelect(sub)
		}
		return true
	}

	slot := h.ctrl.SlotForNode(node)
	if slot == nil {
		return false
	}
	if h.ctrl.IsCentred(slot) {
		h.ctrl.Select(slot)
		return true
	}

	h.log.Debug("tap on off-centre item", "index", slot.Index)
	h.ctrl.AnimateToItem(slot)
	if !h.cfg.RequireCentredForSelection {
		h.ctrl.Select(slot)
	}
	return true
}
