package physics

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/core"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
	"github.com/DanBellman/Wandern-to-kill-a-Box/vmath"
)

// Contact is an overlapping collider pair, A holding the lower layer
type Contact struct {
	A, B           core.Entity
	LayerA, LayerB component.ColliderLayer
}

type pairKey struct {
	a, b core.Entity
}

// LayerPair is an ordered pair of layers tested against each other
type LayerPair struct {
	Source, Other component.ColliderLayer
}

// DefaultPairs are the contacts gameplay reacts to
var DefaultPairs = []LayerPair{
	{component.LayerProjectile, component.LayerTarget},
	{component.LayerPlayer, component.LayerCoin},
	{component.LayerPlayer, component.LayerShop},
	{component.LayerCoin, component.LayerGround},
}

// layerTags are allocated once; resolv tags come from a process-wide pool of 64 bits
var layerTags = [component.LayerCount]resolv.Tags{
	component.LayerPlayer:     resolv.NewTag("player"),
	component.LayerTarget:     resolv.NewTag("target"),
	component.LayerProjectile: resolv.NewTag("projectile"),
	component.LayerCoin:       resolv.NewTag("coin"),
	component.LayerGround:     resolv.NewTag("ground"),
	component.LayerShop:       resolv.NewTag("shop"),
}

type body struct {
	shape *resolv.ConvexPolygon
	layer component.ColliderLayer
	x, y  float64 // Centre in collision space
	halfW float64
	halfH float64
	seen  uint64

	// resting bodies only take part as the Other side of a pair
	resting bool
}

// overlaps is a strict AABB test; containment counts, shared edges do not
func (b *body) overlaps(o *body) bool {
	return math.Abs(b.x-o.x) < b.halfW+o.halfW && math.Abs(b.y-o.y) < b.halfH+o.halfH
}

// Detector turns per-tick overlaps into begin/end contact episodes
// Backed by a resolv broadphase space offset into positive coordinates
type Detector struct {
	space  *resolv.Space
	bodies map[core.Entity]*body
	owners map[resolv.IShape]core.Entity
	pairs  []LayerPair

	active map[pairKey]Contact
	gen    uint64
}

// NewDetector creates a detector testing the given layer pairs
func NewDetector(pairs []LayerPair) *Detector {
	d := &Detector{
		space:  resolv.NewSpace(parameter.CollisionSpaceSize, parameter.CollisionSpaceSize, parameter.CollisionCellSize, parameter.CollisionCellSize),
		bodies: make(map[core.Entity]*body),
		owners: make(map[resolv.IShape]core.Entity),
		pairs:  pairs,
		active: make(map[pairKey]Contact),
	}
	return d
}

// Begin starts a sync pass; bodies not synced before Detect are dropped
func (d *Detector) Begin() {
	d.gen++
}

// Sync creates or moves the collider of an entity
// Colliders outside the collision space are dropped until they return
func (d *Detector) Sync(e core.Entity, pos vmath.Vec2, c component.ColliderComponent) {
	d.sync(e, pos, c, false)
}

// SyncResting is Sync for a body that has settled: it is still found by other
// bodies but no longer tests its own pairs (a landed coin keeps its player contact
// and drops its ground contact)
func (d *Detector) SyncResting(e core.Entity, pos vmath.Vec2, c component.ColliderComponent) {
	d.sync(e, pos, c, true)
}

func (d *Detector) sync(e core.Entity, pos vmath.Vec2, c component.ColliderComponent, resting bool) {
	x := pos.X + parameter.CollisionOrigin
	y := parameter.CollisionOrigin - pos.Y // Flip to y-down space
	if x-c.HalfW < 0 || y-c.HalfH < 0 || x+c.HalfW > parameter.CollisionSpaceSize || y+c.HalfH > parameter.CollisionSpaceSize {
		d.remove(e)
		return
	}

	b, ok := d.bodies[e]
	if ok && (b.layer != c.Layer || b.halfW != c.HalfW || b.halfH != c.HalfH) {
		d.remove(e)
		ok = false
	}
	if !ok {
		shape := resolv.NewRectangleTopLeft(x-c.HalfW, y-c.HalfH, c.HalfW*2, c.HalfH*2)
		shape.Tags().Set(layerTags[c.Layer])
		d.space.Add(shape)
		b = &body{shape: shape, layer: c.Layer, halfW: c.HalfW, halfH: c.HalfH}
		d.bodies[e] = b
		d.owners[shape] = e
	}
	// Rectangle position is its centre
	b.shape.SetPosition(x, y)
	b.x, b.y = x, y
	b.resting = resting
	b.seen = d.gen
}

func (d *Detector) remove(e core.Entity) {
	b, ok := d.bodies[e]
	if !ok {
		return
	}
	d.space.Remove(b.shape)
	delete(d.owners, b.shape)
	delete(d.bodies, e)
}

// Detect tests all configured pairs and diffs against the previous pass
// Every contact produces exactly one begin and, later, exactly one end
func (d *Detector) Detect() (begins, ends []Contact) {
	for e, b := range d.bodies {
		if b.seen != d.gen {
			d.remove(e)
		}
	}

	current := make(map[pairKey]Contact, len(d.active))
	for _, pair := range d.pairs {
		otherTag := layerTags[pair.Other]
		for e, b := range d.bodies {
			if b.layer != pair.Source || b.resting {
				continue
			}
			src, srcBody := e, b
			// The space narrows candidates; overlap is decided on the boxes so
			// a collider fully inside another still counts
			b.shape.SelectTouchingCells(0).FilterShapes().ByTags(otherTag).ForEach(func(shape resolv.IShape) bool {
				other, ok := d.owners[shape]
				if !ok || other == src {
					return true
				}
				if ob := d.bodies[other]; ob == nil || !srcBody.overlaps(ob) {
					return true
				}
				c := newContact(src, pair.Source, other, pair.Other)
				current[pairKey{c.A, c.B}] = c
				return true
			})
		}
	}

	for k, c := range current {
		if _, was := d.active[k]; !was {
			begins = append(begins, c)
		}
	}
	for k, c := range d.active {
		if _, still := current[k]; !still {
			ends = append(ends, c)
		}
	}
	d.active = current
	return begins, ends
}

// Touching reports whether two entities are in an active contact
func (d *Detector) Touching(a, b core.Entity) bool {
	if _, ok := d.active[pairKey{a, b}]; ok {
		return true
	}
	_, ok := d.active[pairKey{b, a}]
	return ok
}

// Reset drops all bodies and contacts without emitting ends
func (d *Detector) Reset() {
	for e := range d.bodies {
		d.remove(e)
	}
	d.active = make(map[pairKey]Contact)
}

// Len returns the number of tracked colliders
func (d *Detector) Len() int {
	return len(d.bodies)
}

func newContact(e1 core.Entity, l1 component.ColliderLayer, e2 core.Entity, l2 component.ColliderLayer) Contact {
	if l1 <= l2 {
		return Contact{A: e1, B: e2, LayerA: l1, LayerB: l2}
	}
	return Contact{A: e2, B: e1, LayerA: l2, LayerB: l1}
}
