package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/DanBellman/Wandern-to-kill-a-Box/status"
)

// debugKeys are the counters shown in the overlay, in order
var debugKeys = []string{
	"weapon.shots",
	"combat.hits",
	"combat.beam_ticks",
	"coin.spawned",
	"coin.absorbed",
	"coin.rejected",
	"coin.live",
	"shop.purchases",
	"shop.rejected",
}

// DebugRenderer draws the telemetry line at the bottom of the screen
type DebugRenderer struct {
	status  *status.Registry
	visible bool
}

func NewDebugRenderer(reg *status.Registry) *DebugRenderer {
	return &DebugRenderer{status: reg}
}

func (r *DebugRenderer) IsVisible() bool {
	return r.visible
}

// Toggle flips overlay visibility
func (r *DebugRenderer) Toggle() {
	r.visible = !r.visible
}

func (r *DebugRenderer) Render(ctx Context, scr tcell.Screen) {
	_, h := scr.Size()
	drawText(scr, 0, h-1, styleDim, DebugLine(r.status.Snapshot()))
}

// DebugLine formats the known counters followed by any others, alphabetically
func DebugLine(metrics map[string]float64) string {
	var parts []string
	seen := make(map[string]bool, len(debugKeys))
	for _, k := range debugKeys {
		seen[k] = true
		if v, ok := metrics[k]; ok {
			parts = append(parts, fmt.Sprintf("%s=%g", k, v))
		}
	}

	var rest []string
	for k := range metrics {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		parts = append(parts, fmt.Sprintf("%s=%g", k, metrics[k]))
	}
	return strings.Join(parts, " ")
}
