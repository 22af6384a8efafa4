package engine

import (
	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/core"
)

// ComponentStore provides typed component stores
// Initialized once per world; pointers remain valid for its lifetime
type ComponentStore struct {
	// Spatial
	Position *Store[component.PositionComponent]
	Kinetic  *Store[component.KineticComponent]
	Collider *Store[component.ColliderComponent]
	Visual   *Store[component.VisualComponent]

	// Actors
	Player *Store[component.PlayerComponent]
	Target *Store[component.TargetComponent]
	Shop   *Store[component.ShopZoneComponent]

	// Combat output
	Projectile *Store[component.ProjectileComponent]
	Beam       *Store[component.BeamComponent]
	Coin       *Store[component.CoinComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Position: NewStore[component.PositionComponent](),
		Kinetic:  NewStore[component.KineticComponent](),
		Collider: NewStore[component.ColliderComponent](),
		Visual:   NewStore[component.VisualComponent](),

		Player: NewStore[component.PlayerComponent](),
		Target: NewStore[component.TargetComponent](),
		Shop:   NewStore[component.ShopZoneComponent](),

		Projectile: NewStore[component.ProjectileComponent](),
		Beam:       NewStore[component.BeamComponent](),
		Coin:       NewStore[component.CoinComponent](),
	}
}

// removeAll deletes an entity from every store
func (c *ComponentStore) removeAll(e core.Entity) {
	c.Position.RemoveEntity(e)
	c.Kinetic.RemoveEntity(e)
	c.Collider.RemoveEntity(e)
	c.Visual.RemoveEntity(e)
	c.Player.RemoveEntity(e)
	c.Target.RemoveEntity(e)
	c.Shop.RemoveEntity(e)
	c.Projectile.RemoveEntity(e)
	c.Beam.RemoveEntity(e)
	c.Coin.RemoveEntity(e)
}

func (c *ComponentStore) clearAll() {
	c.Position.ClearAllComponents()
	c.Kinetic.ClearAllComponents()
	c.Collider.ClearAllComponents()
	c.Visual.ClearAllComponents()
	c.Player.ClearAllComponents()
	c.Target.ClearAllComponents()
	c.Shop.ClearAllComponents()
	c.Projectile.ClearAllComponents()
	c.Beam.ClearAllComponents()
	c.Coin.ClearAllComponents()
}
