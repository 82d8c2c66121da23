// Package ecs stores pinchzoom viewports in a [Donburi] world.
//
// [NewDonburiSink] is a pinchzoom.Sink that writes every update into a
// [ViewportComponent] on one entity and publishes it as a
// [ViewportUpdateEventType] event, so ECS systems can react to committed
// viewport changes (for example to push an undo step).
//
// Usage:
//
//	camera := world.Create(ecs.ViewportComponent)
//	interp.AddSink(ecs.NewDonburiSink(world, camera))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
