// Package swipemenu is a horizontally scrolling carousel menu for [Ebitengine].
//
// Items sit on a one-dimensional scroll axis. A single scroll offset decides
// every item's pose: the item at the centre faces the viewer, neighbours are
// pushed back in depth and turned away, and items further out are compressed
// so the whole list fits on screen. Drags move the offset directly, flicks
// animate it with inertia (or step one item), and releases lock the nearest
// item to the centre. Taps select the centred item or bring another one in.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	nodes := []swipemenu.SceneNode{ /* one node per item */ }
//	cam := swipemenu.NewCamera(swipemenu.Rect{Width: 640, Height: 480})
//	menu, err := swipemenu.NewMenu(nodes, swipemenu.DefaultConfig(),
//		swipemenu.NewEbitenPointerSource(), cam)
//	if err != nil {
//		log.Fatal(err)
//	}
//	swipemenu.Run(menu, swipemenu.RunConfig{
//		Title: "Menu", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Menu.Update] from it with the frame's delta time:
//
//	func (g *Game) Update() error {
//		g.menu.Update(1.0 / float64(ebiten.TPS()))
//		return nil
//	}
//
// # Parts
//
// [Menu] is a convenience wrapper. The pieces can be used on their own:
//
//   - [Mapper] turns an item's offset from the centre into a [Pose].
//   - [Controller] owns the scroll offset and is its only writer. It runs
//     at most one scroll animation at a time through an [Animator]
//     (tweens via [gween]).
//   - [GestureClassifier] turns [InputEvent] streams from an [InputSource]
//     into drags, flicks, and locks.
//   - [HitResolver] turns taps into selection using a [RayCaster] such as
//     [Camera].
//
// Items are any type implementing [SceneNode]; [Node] is a minimal one.
//
// # Selection events
//
// Register callbacks with [Controller.OnSelect] and
// [Controller.OnDeselectOthers], or per item via [Slot]. To receive
// selection events in an ECS world, use the Donburi adapter in
// swipemenu/ecs.
//
// # Scripted input
//
// [Menu.Inject] queues synthetic presses, moves, releases, taps, and swipes
// that run through the same pipeline as real input. [LoadGestureScript]
// reads a JSON list of such steps and plays it back one frame at a time.
//
// # Configuration
//
// [DefaultConfig] returns the standard settings. [LoadConfig] reads them
// from JSON, starting from the defaults. Out-of-range values are clamped;
// only a missing or nil item is an error.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package swipemenu
