package ecs

import (
	"testing"

	"github.com/phanxgames/swipemenu"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []swipemenu.SelectionRecord
	SelectionEventType.Subscribe(world, func(w donburi.World, e swipemenu.SelectionRecord) {
		received = append(received, e)
	})

	store.EmitEvent(swipemenu.SelectionRecord{Type: swipemenu.EventSelect, Index: 2, Selected: 2})
	store.EmitEvent(swipemenu.SelectionRecord{Type: swipemenu.EventDeselectOthers, Index: 0, Selected: 2})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	SelectionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != swipemenu.EventSelect || received[0].Index != 2 {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Type != swipemenu.EventDeselectOthers || received[1].Selected != 2 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiStore_ControllerSelect(t *testing.T) {
	world := donburi.NewWorld()

	nodes := []swipemenu.SceneNode{
		swipemenu.NewNode("a", 1, 1),
		swipemenu.NewNode("b", 1, 1),
		swipemenu.NewNode("c", 1, 1),
	}
	ctrl, err := swipemenu.NewController(nodes, swipemenu.DefaultConfig(), swipemenu.NewTweenAnimator())
	if err != nil {
		t.Fatal(err)
	}
	ctrl.SetEventStore(NewDonburiStore(world))

	var selects, deselects int
	SelectionEventType.Subscribe(world, func(w donburi.World, e swipemenu.SelectionRecord) {
		switch e.Type {
		case swipemenu.EventSelect:
			selects++
		case swipemenu.EventDeselectOthers:
			deselects++
		}
	})

	ctrl.Select(ctrl.Slot(1))
	events.ProcessAllEvents(world)

	if selects != 1 || deselects != 2 {
		t.Errorf("selects=%d deselects=%d, want 1 and 2", selects, deselects)
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	SelectionEventType.Subscribe(world, func(w donburi.World, e swipemenu.SelectionRecord) {
		count1++
	})
	SelectionEventType.Subscribe(world, func(w donburi.World, e swipemenu.SelectionRecord) {
		count2++
	})

	store.EmitEvent(swipemenu.SelectionRecord{Type: swipemenu.EventSelect})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
