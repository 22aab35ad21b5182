package swipemenu

import (
	"log/slog"
	"math"
	"reflect"

	"github.com/tanema/gween/ease"
)

// Slot binds one menu position to an item's scene node. Slots are created
// once by NewController and live as long as the controller.
type Slot struct {
	// Index is the slot's fixed position in left-to-right order.
	Index int
	// Node is the external scene node whose pose the controller writes.
	Node SceneNode

	// OnSelect fires when this item is selected.
	OnSelect func(*Slot)
	// OnDeselect fires when another item is selected.
	OnDeselect func(*Slot)

	pose Pose
}

// Pose returns the pose written to the slot's node on the last Tick.
func (s *Slot) Pose() Pose {
	return s.pose
}

// Controller owns the scroll offset and is its only mutator. It maps the
// offset to a pose for every slot on Tick and drives scroll animations
// through an Animator, keeping at most one in flight.
type Controller struct {
	cfg    Config
	mapper Mapper
	log    *slog.Logger

	root  *Node
	slots []*Slot

	scrollOffset float64
	maxOffset    float64
	spacing      float64

	animator   Animator
	anim       AnimationHandle
	generation uint64

	handlers selectionRegistry
	store    EventStore
}

// NewController builds a controller for the given item nodes, in visual
// left-to-right order, parents them to the controller's root node, and writes
// their initial poses. A nil animator gets a fresh TweenAnimator.
//
// It fails with a *ConfigurationError if nodes is empty or contains a nil
// node. Every other out-of-range setting is clamped.
func NewController(nodes []SceneNode, cfg Config, animator Animator) (*Controller, error) {
	if len(nodes) == 0 {
		return nil, &ConfigurationError{Field: "items", Index: -1, Err: ErrNoItems}
	}
	for i, n := range nodes {
		if isNilNode(n) {
			return nil, &ConfigurationError{Field: "items", Index: i, Err: ErrNilItem}
		}
	}
	if animator == nil {
		animator = NewTweenAnimator()
	}

	cfg = cfg.normalized()
	c := &Controller{
		cfg:      cfg,
		mapper:   cfg.mapper(),
		log:      cfg.logger(),
		root:     NewNode("menu", 0, 0),
		slots:    make([]*Slot, len(nodes)),
		spacing:  cfg.Spacing,
		animator: animator,
	}
	c.maxOffset = float64(len(nodes)+1) * c.spacing

	for i, n := range nodes {
		n.SetParent(c.root)
		c.slots[i] = &Slot{Index: i, Node: n}
	}

	start := clampInt(cfg.StartingItemIndex, 1, len(nodes))
	c.scrollOffset = c.spacing * float64(start)
	c.Tick()

	c.log.Debug("menu initialised",
		"items", len(nodes), "spacing", c.spacing,
		"maxOffset", c.maxOffset, "startingItem", start)
	return c, nil
}

// isNilNode reports whether n is nil or holds a nil value of any nillable
// type, such as a typed nil pointer from a host scene graph.
func isNilNode(n SceneNode) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Slice, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// --- State queries ---

// Root returns the node every item is parented to.
func (c *Controller) Root() *Node {
	return c.root
}

// ScrollOffset returns the current scroll position.
func (c *Controller) ScrollOffset() float64 {
	return c.scrollOffset
}

// MaxOffset returns the largest allowed scroll position.
func (c *Controller) MaxOffset() float64 {
	return c.maxOffset
}

// Spacing returns the normalised distance between adjacent items.
func (c *Controller) Spacing() float64 {
	return c.spacing
}

// Mapper returns the position mapper used by Tick.
func (c *Controller) Mapper() Mapper {
	return c.mapper
}

// Config returns the normalised configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Animating reports whether a scroll animation is in flight.
func (c *Controller) Animating() bool {
	return c.anim != nil && !c.anim.Done()
}

// Slots returns the slots in left-to-right order. The returned slice MUST NOT
// be mutated by the caller.
func (c *Controller) Slots() []*Slot {
	return c.slots
}

// Len returns the number of slots.
func (c *Controller) Len() int {
	return len(c.slots)
}

// Slot returns the slot at index, clamped into range.
func (c *Controller) Slot(index int) *Slot {
	return c.slots[clampInt(index, 0, len(c.slots)-1)]
}

// SlotForNode returns the slot bound to node, or nil if node is not an item.
func (c *Controller) SlotForNode(node SceneNode) *Slot {
	if node == nil {
		return nil
	}
	for _, s := range c.slots {
		if s.Node == node {
			return s
		}
	}
	return nil
}

// --- Frame update ---

// Update advances the controller's animator by dt seconds.
func (c *Controller) Update(dt float64) {
	c.animator.Update(float32(dt))
}

// Tick recomputes every slot's pose from the scroll offset and writes it to
// the slot's node. Offsets outside the visible range are fine; the mapper is
// total.
func (c *Controller) Tick() {
	for _, s := range c.slots {
		s.pose = c.mapper.Pose(c.offsetOf(s))
		s.Node.SetPosition(s.pose.Position())
		s.Node.SetRotation(s.pose.Rotation)
	}
}

// offsetOf returns the slot's signed distance from the scroll centre.
func (c *Controller) offsetOf(s *Slot) float64 {
	return c.targetOffset(s) - c.scrollOffset
}

// targetOffset returns the scroll offset at which s is centred.
func (c *Controller) targetOffset(s *Slot) float64 {
	return c.spacing * float64(s.Index+1)
}

// --- Motion ---

// ApplyContinuousDelta moves the scroll offset by delta immediately, clamped
// to [0, MaxOffset]. Any running animation is cancelled so the pointer has
// sole control while dragging.
func (c *Controller) ApplyContinuousDelta(delta float64) {
	if delta == 0 || math.IsNaN(delta) {
		return
	}
	c.cancelAnimation()
	c.scrollOffset = clamp(c.scrollOffset+delta, 0, c.maxOffset)
}

// AnimateTo animates the scroll offset from its current value to target,
// clamped to [0, MaxOffset]. A running animation is superseded: its
// onComplete never fires. onComplete, if non-nil, fires exactly once when
// this animation reaches its end.
func (c *Controller) AnimateTo(target float64, duration float32, fn ease.TweenFunc, onComplete func()) {
	if math.IsNaN(target) {
		return
	}
	target = clamp(target, 0, c.maxOffset)
	if c.cancelAnimation() {
		c.log.Debug("animation superseded", "from", c.scrollOffset, "to", target)
	}

	c.generation++
	gen := c.generation
	c.anim = c.animator.Animate(c.scrollOffset, target, duration, fn,
		func(v float64) {
			if gen != c.generation {
				return
			}
			c.scrollOffset = clamp(v, 0, c.maxOffset)
		},
		func() {
			if gen != c.generation {
				return
			}
			c.anim = nil
			if onComplete != nil {
				onComplete()
			}
		})
}

// ApplyImpulse animates by signedLength with an ease-out curve and locks to
// the closest item afterwards when LockToClosest is enabled.
func (c *Controller) ApplyImpulse(signedLength float64) {
	var after func()
	if c.cfg.LockToClosest {
		after = c.LockToClosest
	}
	c.AnimateTo(c.scrollOffset+signedLength, c.cfg.AnimationDuration, ease.OutCubic, after)
}

// MoveByItems animates amount items away from the item closest to centre.
// The destination is clamped to the first and last items.
func (c *Controller) MoveByItems(amount int) {
	s := c.ClosestSlot()
	next := c.slots[clampInt(s.Index+amount, 0, len(c.slots)-1)]
	c.AnimateToItem(next)
}

// LockToClosest animates the item closest to centre into the centre.
func (c *Controller) LockToClosest() {
	c.AnimateToItem(c.ClosestSlot())
}

// AnimateToItem animates s into the centre. A nil slot is ignored.
func (c *Controller) AnimateToItem(s *Slot) {
	if s == nil {
		return
	}
	c.AnimateTo(c.targetOffset(s), c.cfg.AnimationDuration, ease.OutCubic, nil)
}

// ScrollOffsetForX returns the scroll offset that would centre whatever item
// currently sits at horizontal position x.
func (c *Controller) ScrollOffsetForX(x float64) float64 {
	return clamp(c.scrollOffset+c.mapper.InverseX(x), 0, c.maxOffset)
}

// Stop cancels any running animation, leaving the offset where it is.
func (c *Controller) Stop() {
	c.cancelAnimation()
}

// cancelAnimation cancels the in-flight animation, if any, and reports
// whether one was running.
func (c *Controller) cancelAnimation() bool {
	if c.anim == nil {
		return false
	}
	running := !c.anim.Done()
	c.anim.Cancel()
	c.anim = nil
	c.generation++
	return running
}

// --- Centring ---

// ClosestSlot returns the slot whose horizontal pose is nearest zero. Ties go
// to the lower index.
func (c *Controller) ClosestSlot() *Slot {
	var best *Slot
	bestDist := math.MaxFloat64
	for _, s := range c.slots {
		d := math.Abs(c.mapper.X(c.offsetOf(s)))
		if d == 0 {
			return s
		}
		if d < bestDist {
			best = s
			bestDist = d
		}
	}
	return best
}

// IsCentred reports whether s's horizontal pose is exactly zero. The
// comparison is exact: lock-to-closest and step moves land on grid offsets
// that map to exactly 0.
func (c *Controller) IsCentred(s *Slot) bool {
	if s == nil {
		return false
	}
	return c.mapper.X(c.offsetOf(s)) == 0
}

// --- Visibility ---

// HideAll deactivates every item node.
func (c *Controller) HideAll() {
	for _, s := range c.slots {
		s.Node.SetActive(false)
	}
}

// ShowAll activates every item node.
func (c *Controller) ShowAll() {
	for _, s := range c.slots {
		s.Node.SetActive(true)
	}
}
