// Package ecs provides ECS adapters for swipemenu's selection events.
//
// The primary adapter is [NewDonburiStore], which bridges menu selection
// events (select, deselect-others) into a [Donburi] world as typed events.
// Subscribe to [SelectionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	menu.Controller().SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
