package swipemenu

// EventType identifies a kind of selection event.
type EventType uint8

const (
	EventSelect         EventType = iota // fires for the item that was selected
	EventDeselectOthers                  // fires once for every other item
)

// String returns a short name for the event type.
func (t EventType) String() string {
	switch t {
	case EventSelect:
		return "select"
	case EventDeselectOthers:
		return "deselect-others"
	default:
		return "unknown"
	}
}

// SelectionEvent carries selection data. Slot is the item the event is
// about; Selected is the item that was chosen (equal to Slot for
// EventSelect).
type SelectionEvent struct {
	Type     EventType
	Slot     *Slot
	Selected *Slot
}

// SelectionRecord is the flattened, pointer-free form of a SelectionEvent
// handed to an EventStore.
type SelectionRecord struct {
	Type     EventType
	Index    int
	Selected int
}

// EventStore is the interface for optional ECS integration.
// When set on a Controller, selection events are forwarded to it.
type EventStore interface {
	EmitEvent(event SelectionRecord)
}

// --- Handler registry ---

type selectionHandler struct {
	id uint32
	fn func(SelectionEvent)
}

type selectionRegistry struct {
	selectFns   []selectionHandler
	deselectFns []selectionHandler
	nextID      uint32
}

// CallbackHandle allows removing a registered selection callback.
type CallbackHandle struct {
	id    uint32
	reg   *selectionRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventSelect:
		h.reg.selectFns = removeSelectionHandler(h.reg.selectFns, h.id)
	case EventDeselectOthers:
		h.reg.deselectFns = removeSelectionHandler(h.reg.deselectFns, h.id)
	}
}

func removeSelectionHandler(s []selectionHandler, id uint32) []selectionHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = selectionHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// OnSelect registers a callback fired, in registration order, when an item
// is selected.
func (c *Controller) OnSelect(fn func(SelectionEvent)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.selectFns = append(c.handlers.selectFns, selectionHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: EventSelect}
}

// OnDeselectOthers registers a callback fired once for every item that was
// not the one selected.
func (c *Controller) OnDeselectOthers(fn func(SelectionEvent)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.deselectFns = append(c.handlers.deselectFns, selectionHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: EventDeselectOthers}
}

// SetEventStore sets the optional ECS bridge.
func (c *Controller) SetEventStore(store EventStore) {
	c.store = store
}

// Select fires the selection events for s: first s's own OnSelect and the
// OnSelect subscribers, then OnDeselect and the OnDeselectOthers subscribers
// for every other slot in index order. A nil slot is ignored.
func (c *Controller) Select(s *Slot) {
	if s == nil {
		return
	}
	c.log.Debug("item selected", "index", s.Index)

	ev := SelectionEvent{Type: EventSelect, Slot: s, Selected: s}
	if s.OnSelect != nil {
		s.OnSelect(s)
	}
	for _, h := range c.handlers.selectFns {
		h.fn(ev)
	}
	c.emitSelectionEvent(ev)

	for _, other := range c.slots {
		if other == s {
			continue
		}
		ev := SelectionEvent{Type: EventDeselectOthers, Slot: other, Selected: s}
		if other.OnDeselect != nil {
			other.OnDeselect(other)
		}
		for _, h := range c.handlers.deselectFns {
			h.fn(ev)
		}
		c.emitSelectionEvent(ev)
	}
}

// --- ECS bridge ---

func (c *Controller) emitSelectionEvent(ev SelectionEvent) {
	if c.store == nil {
		return
	}
	c.store.EmitEvent(SelectionRecord{
		Type:     ev.Type,
		Index:    ev.Slot.Index,
		Selected: ev.Selected.Index,
	})
}
