package ecs

import (
	"github.com/phanxgames/pinchzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ViewportComponent holds an entity's current viewport.
var ViewportComponent = donburi.NewComponentType[pinchzoom.Viewport](pinchzoom.IdentityViewport)

// ViewportUpdateEventType is published for every update the sink applies.
// Subscribe to it and call ProcessEvents from your systems.
var ViewportUpdateEventType = events.NewEventType[pinchzoom.Update]()

type donburiSink struct {
	world  donburi.World
	entity donburi.Entity
}

// NewDonburiSink creates a Sink that stores updates in the ViewportComponent
// of entity and publishes them to ViewportUpdateEventType. Updates for an
// entity that no longer exists, or that lacks the component, are published
// but not stored.
func NewDonburiSink(world donburi.World, entity donburi.Entity) pinchzoom.Sink {
	return &donburiSink{world: world, entity: entity}
}

func (s *donburiSink) ApplyViewport(u pinchzoom.Update) {
	if s.world.Valid(s.entity) {
		entry := s.world.Entry(s.entity)
		if entry.HasComponent(ViewportComponent) {
			ViewportComponent.SetValue(entry, u.Viewport)
		}
	}
	ViewportUpdateEventType.Publish(s.world, u)
}

// Viewport returns the viewport stored on entity, or the identity viewport
// if the entity is gone or has no ViewportComponent.
func Viewport(world donburi.World, entity donburi.Entity) pinchzoom.Viewport {
	if !world.Valid(entity) {
		return pinchzoom.IdentityViewport
	}
	entry := world.Entry(entity)
	if !entry.HasComponent(ViewportComponent) {
		return pinchzoom.IdentityViewport
	}
	return *ViewportComponent.Get(entry)
}
