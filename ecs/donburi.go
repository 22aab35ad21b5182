// Package ecs provides ECS adapters for swipemenu.
package ecs

import (
	"github.com/phanxgames/swipemenu"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SelectionEventType is the Donburi event type for menu selection events.
// Subscribe to this in your ECS systems to receive select and deselect events.
var SelectionEventType = events.NewEventType[swipemenu.SelectionRecord]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Selection events are published to SelectionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) swipemenu.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event swipemenu.SelectionRecord) {
	SelectionEventType.Publish(s.world, event)
}
