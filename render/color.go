package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
)

var (
	styleDefault = tcell.StyleDefault
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleMoney   = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWarn    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleGood    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePanel   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
)

// hintStyles resolves a visual hint to its terminal style
var hintStyles = map[component.VisualHint]tcell.Style{
	component.VisualPlayer:      tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
	component.VisualTarget:      tcell.StyleDefault.Foreground(tcell.ColorRed),
	component.VisualGround:      tcell.StyleDefault.Foreground(tcell.ColorOlive),
	component.VisualWeaponShop:  tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
	component.VisualUpgradeShop: tcell.StyleDefault.Foreground(tcell.ColorLime),
	component.VisualProjectile:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	component.VisualBeam:        tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true),
	component.VisualCoin:        tcell.StyleDefault.Foreground(tcell.ColorGold),
}

func hintStyle(h component.VisualHint) tcell.Style {
	if s, ok := hintStyles[h]; ok {
		return s
	}
	return styleDefault
}
