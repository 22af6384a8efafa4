package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/DanBellman/Wandern-to-kill-a-Box/vmath"
)

type rendererEntry struct {
	renderer Renderer
	priority Priority
	index    int // Registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen    tcell.Screen
	renderers []rendererEntry
	regCount  int
}

func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	return &Orchestrator{
		screen:    screen,
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r Renderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Camera returns a camera sized to the current screen
func (o *Orchestrator) Camera() Camera {
	w, h := o.screen.Size()
	return NewCamera(w, h)
}

// ScreenToWorld maps a cell through the current camera, so mouse aim follows resizes
func (o *Orchestrator) ScreenToWorld(col, row int) vmath.Vec2 {
	return o.Camera().ScreenToWorld(col, row)
}

// RenderFrame executes the pipeline: clear, render all, show
func (o *Orchestrator) RenderFrame(ctx Context) {
	o.screen.Clear()
	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.screen)
	}
	o.screen.Show()
}
