package engine

import "github.com/DanBellman/Wandern-to-kill-a-Box/core"

// EntityBuilder reserves an entity ID and collects its components
// Build commits the entity and records its spawn for presentation
//
// Example usage:
//
//	eb := world.NewEntity()
//	engine.With(eb, world.Components.Position, component.PositionComponent{Vec2: pos})
//	engine.With(eb, world.Components.Coin, component.CoinComponent{Value: 25})
//	e := eb.Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity creates a builder with a reserved entity ID
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With adds a component of type T to the entity being built
// Panics if called after Build
func With[T any](eb *EntityBuilder, store *Store[T], c T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.SetComponent(eb.entity, c)
	return eb
}

// Build finalizes construction and returns the entity
func (eb *EntityBuilder) Build() core.Entity {
	if !eb.built {
		eb.built = true
		eb.world.Spawn(eb.entity)
	}
	return eb.entity
}
