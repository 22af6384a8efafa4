package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

const bufferBarWidth = 20

// HUDRenderer draws the status line: money, buffer, weapon, timer
type HUDRenderer struct{}

func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

func (r *HUDRenderer) Render(ctx Context, scr tcell.Screen) {
	hud := ctx.HUD
	w, h := scr.Size()

	x := drawText(scr, 1, 0, styleMoney, fmt.Sprintf("$ %d", hud.Currency))

	barStyle := styleGood
	if hud.BufferPercent >= 1 {
		barStyle = styleWarn
	}
	x = drawText(scr, x+3, 0, styleHUD, "Buffer ")
	x = drawText(scr, x, 0, barStyle, BufferBar(hud.BufferPercent, bufferBarWidth))
	x = drawText(scr, x+1, 0, styleDim, fmt.Sprintf("%.0f/%.0f", hud.BufferCurrent, hud.BufferMax))

	drawText(scr, x+3, 0, styleHUD, "Weapon: "+hud.Weapon)

	timer := hud.Elapsed
	drawText(scr, w-len(timer)-1, 0, styleHUD, timer)

	if hud.Paused {
		msg := "PAUSED"
		drawText(scr, (w-len(msg))/2, h/2, styleWarn, msg)
	}
}

// BufferBar renders a fill ratio as a fixed-width bar
func BufferBar(ratio float64, width int) string {
	ratio = max(0, min(ratio, 1))
	filled := int(ratio*float64(width) + 0.5)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
