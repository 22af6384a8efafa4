package system

import (
	"math"

	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/core"
	"github.com/DanBellman/Wandern-to-kill-a-Box/engine"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
	"github.com/DanBellman/Wandern-to-kill-a-Box/physics"
	"github.com/DanBellman/Wandern-to-kill-a-Box/vmath"
)

// SpawnLevel creates the fixed level: ground, target, both shop zones and the player
// Returns the player entity
func SpawnLevel(w *engine.World) core.Entity {
	spawnGround(w)
	spawnTarget(w, vmath.V2(parameter.TargetX, parameter.TargetY))
	spawnShopZone(w, component.ShopWeapon, vmath.V2(parameter.WeaponShopX, parameter.WeaponShopY))
	spawnShopZone(w, component.ShopUpgrade, vmath.V2(parameter.UpgradeShopX, parameter.UpgradeShopY))
	return spawnPlayer(w)
}

func spawnPlayer(w *engine.World) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, w.Components.Position, component.PositionComponent{Vec2: vmath.V2(parameter.PlayerSpawnX, parameter.PlayerSpawnY)})
	engine.With(eb, w.Components.Player, component.PlayerComponent{BaseSpeed: parameter.PlayerBaseSpeed})
	engine.With(eb, w.Components.Collider, component.ColliderComponent{
		HalfW: parameter.PlayerWidth / 2,
		HalfH: parameter.PlayerHeight / 2,
		Layer: component.LayerPlayer,
	})
	engine.With(eb, w.Components.Visual, component.VisualComponent{Hint: component.VisualPlayer, Glyph: '@'})
	e := eb.Build()
	w.Resources.Player.Entity = e
	return e
}

func spawnTarget(w *engine.World, pos vmath.Vec2) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, w.Components.Position, component.PositionComponent{Vec2: pos})
	engine.With(eb, w.Components.Target, component.TargetComponent{})
	engine.With(eb, w.Components.Collider, component.ColliderComponent{
		HalfW: parameter.TargetSize / 2,
		HalfH: parameter.TargetSize / 2,
		Layer: component.LayerTarget,
	})
	engine.With(eb, w.Components.Visual, component.VisualComponent{Hint: component.VisualTarget, Glyph: '#'})
	return eb.Build()
}

func spawnGround(w *engine.World) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, w.Components.Position, component.PositionComponent{Vec2: vmath.V2(0, parameter.GroundY)})
	engine.With(eb, w.Components.Collider, component.ColliderComponent{
		HalfW: parameter.GroundWidth / 2,
		HalfH: parameter.GroundHeight / 2,
		Layer: component.LayerGround,
	})
	engine.With(eb, w.Components.Visual, component.VisualComponent{Hint: component.VisualGround, Glyph: '='})
	return eb.Build()
}

func spawnShopZone(w *engine.World, kind component.ShopKind, pos vmath.Vec2) core.Entity {
	hint, glyph := component.VisualWeaponShop, 'W'
	if kind == component.ShopUpgrade {
		hint, glyph = component.VisualUpgradeShop, 'U'
	}

	eb := w.NewEntity()
	engine.With(eb, w.Components.Position, component.PositionComponent{Vec2: pos})
	engine.With(eb, w.Components.Shop, component.ShopZoneComponent{Kind: kind})
	engine.With(eb, w.Components.Collider, component.ColliderComponent{
		HalfW: parameter.ShopZoneSize / 2,
		HalfH: parameter.ShopZoneSize / 2,
		Layer: component.LayerShop,
	})
	engine.With(eb, w.Components.Visual, component.VisualComponent{Hint: hint, Glyph: glyph})
	return eb.Build()
}

// spawnProjectile launches one discrete shot from origin along a unit direction
func spawnProjectile(w *engine.World, kind component.WeaponKind, origin, dir vmath.Vec2) core.Entity {
	p := &component.WeaponProfiles[kind]

	eb := w.NewEntity()
	engine.With(eb, w.Components.Position, component.PositionComponent{Vec2: origin})
	engine.With(eb, w.Components.Kinetic, component.KineticComponent{Vel: vmath.V2Scale(dir, p.Speed)})
	engine.With(eb, w.Components.Projectile, component.ProjectileComponent{Weapon: kind, Remaining: p.Life})
	engine.With(eb, w.Components.Collider, component.ColliderComponent{
		HalfW: p.HalfW,
		HalfH: p.HalfH,
		Layer: component.LayerProjectile,
	})
	engine.With(eb, w.Components.Visual, component.VisualComponent{Hint: component.VisualProjectile, Glyph: p.Glyph})
	return eb.Build()
}

// spawnBeam creates the continuous beam entity; it has no collider, overlap is by distance
func spawnBeam(w *engine.World, kind component.WeaponKind, origin, dir vmath.Vec2) core.Entity {
	center := beamCenter(origin, dir)

	eb := w.NewEntity()
	engine.With(eb, w.Components.Position, component.PositionComponent{Vec2: center})
	engine.With(eb, w.Components.Beam, component.BeamComponent{
		Weapon: kind,
		Dir:    dir,
		Center: center,
		Length: parameter.BeamLength,
	})
	engine.With(eb, w.Components.Visual, component.VisualComponent{Hint: component.VisualBeam, Glyph: component.WeaponProfiles[kind].Glyph})
	return eb.Build()
}

func beamCenter(origin, dir vmath.Vec2) vmath.Vec2 {
	return vmath.V2Add(origin, vmath.V2Scale(dir, parameter.BeamLength/2))
}

// spawnCoin drops a pickup at pos; it falls until it lands on the ground
func spawnCoin(w *engine.World, pos vmath.Vec2, value int) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, w.Components.Position, component.PositionComponent{Vec2: pos})
	engine.With(eb, w.Components.Kinetic, component.KineticComponent{
		Vel:     vmath.V2(0, parameter.CoinInitialLift),
		Gravity: true,
	})
	engine.With(eb, w.Components.Coin, component.CoinComponent{Value: value})
	engine.With(eb, w.Components.Collider, component.ColliderComponent{
		HalfW: parameter.CoinSize / 2,
		HalfH: parameter.CoinSize / 2,
		Layer: component.LayerCoin,
	})
	engine.With(eb, w.Components.Visual, component.VisualComponent{Hint: component.VisualCoin, Glyph: 'o'})
	return eb.Build()
}

// spawnCoinBurst splits a reward across coins scattered around center
// Remainder of the integer split is dropped; positions stay reachable inside the viewport above ground
func spawnCoinBurst(w *engine.World, center vmath.Vec2, r component.Reward) int {
	value := r.PerCoin()
	if value <= 0 {
		return 0
	}

	rng := w.Resources.Rand
	half := parameter.CoinSize / 2
	for i := 0; i < r.CoinCount; i++ {
		angle := rng.Float64() * 2 * math.Pi
		dist := parameter.CoinScatterMin + rng.Float64()*(parameter.CoinScatterMax-parameter.CoinScatterMin)
		pos := vmath.V2Add(center, vmath.V2FromAngle(angle, dist))

		pos.X = physics.ClampX(pos.X, w.Resources.Viewport.HalfWidth, half)
		pos.Y = max(pos.Y, physics.RestOn(parameter.GroundTop, half))
		spawnCoin(w, pos, value)
	}
	return r.CoinCount
}
