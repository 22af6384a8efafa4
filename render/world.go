package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/core"
	"github.com/DanBellman/Wandern-to-kill-a-Box/engine"
	"github.com/DanBellman/Wandern-to-kill-a-Box/vmath"
)

// layerOrder lists hints back to front
var layerOrder = []component.VisualHint{
	component.VisualGround,
	component.VisualWeaponShop,
	component.VisualUpgradeShop,
	component.VisualTarget,
	component.VisualCoin,
	component.VisualProjectile,
	component.VisualBeam,
	component.VisualPlayer,
}

var shopLabels = map[component.VisualHint]string{
	component.VisualWeaponShop:  "WEAPONS",
	component.VisualUpgradeShop: "UPGRADES",
}

type drawable struct {
	entity core.Entity
	glyph  rune
	pos    vmath.Vec2
}

// WorldRenderer draws every entity carrying a visual
// Boxed actors fill their collider; pickups and shots are a single glyph
type WorldRenderer struct {
	world  *engine.World
	layers map[component.VisualHint][]drawable
}

func NewWorldRenderer(world *engine.World) *WorldRenderer {
	return &WorldRenderer{
		world:  world,
		layers: make(map[component.VisualHint][]drawable, len(layerOrder)),
	}
}

func (r *WorldRenderer) Render(ctx Context, scr tcell.Screen) {
	for h := range r.layers {
		r.layers[h] = r.layers[h][:0]
	}
	r.world.EntitiesWithVisual(func(e core.Entity, v component.VisualComponent, pos vmath.Vec2) {
		r.layers[v.Hint] = append(r.layers[v.Hint], drawable{entity: e, glyph: v.Glyph, pos: pos})
	})

	cam := ctx.Camera
	for _, hint := range layerOrder {
		style := hintStyle(hint)
		for _, d := range r.layers[hint] {
			switch hint {
			case component.VisualBeam:
				r.drawBeam(cam, scr, d, style)
			case component.VisualCoin, component.VisualProjectile:
				if x, y, ok := cam.WorldToScreen(d.pos); ok {
					scr.SetContent(x, y, d.glyph, nil, style)
				}
			default:
				r.drawBox(cam, scr, d, hint, style)
			}
		}
	}
}

func (r *WorldRenderer) drawBox(cam Camera, scr tcell.Screen, d drawable, hint component.VisualHint, style tcell.Style) {
	col, ok := r.world.Components.Collider.GetComponent(d.entity)
	if !ok {
		if x, y, ok := cam.WorldToScreen(d.pos); ok {
			scr.SetContent(x, y, d.glyph, nil, style)
		}
		return
	}
	x0, y0, x1, y1 := cam.Rect(d.pos, col.HalfW, col.HalfH)
	fill(scr, x0, y0, x1, y1, d.glyph, style)

	if label, ok := shopLabels[hint]; ok {
		drawText(scr, (x0+x1)/2-len(label)/2, y0-1, style, label)
	}
}

// drawBeam samples the beam segment one cell apart
func (r *WorldRenderer) drawBeam(cam Camera, scr tcell.Screen, d drawable, style tcell.Style) {
	b, ok := r.world.Components.Beam.GetComponent(d.entity)
	if !ok {
		return
	}
	step := cam.unitsPerCol
	half := b.Length / 2
	start := vmath.V2Sub(b.Center, vmath.V2Scale(b.Dir, half))
	for t := 0.0; t <= b.Length; t += step {
		p := vmath.V2Add(start, vmath.V2Scale(b.Dir, t))
		if x, y, ok := cam.WorldToScreen(p); ok {
			scr.SetContent(x, y, d.glyph, nil, style)
		}
	}
}
