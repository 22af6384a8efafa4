package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/DanBellman/Wandern-to-kill-a-Box/component"
	"github.com/DanBellman/Wandern-to-kill-a-Box/economy"
)

const shopPanelWidth = 44

// ShopRenderer draws the proximity prompt and, when open, the shop panel
type ShopRenderer struct {
	econ *economy.Economy
}

func NewShopRenderer(econ *economy.Economy) *ShopRenderer {
	return &ShopRenderer{econ: econ}
}

func (r *ShopRenderer) Render(ctx Context, scr tcell.Screen) {
	kind, near := r.econ.Shop.Proximity.Shop()
	if !near {
		return
	}
	w, h := scr.Size()

	if !r.econ.Shop.UIOpen {
		prompt := fmt.Sprintf("Press E to open the %s shop", shopTitle(kind))
		drawText(scr, (w-len(prompt))/2, h-2, styleHUD, prompt)
		return
	}

	offers := r.econ.Offers(kind)
	height := len(offers) + 4
	x0 := max((w-shopPanelWidth)/2, 0)
	y0 := max((h-height)/2, 1)
	x1 := min(x0+shopPanelWidth-1, w-1)
	y1 := min(y0+height-1, h-1)

	box(scr, x0, y0, x1, y1, stylePanel)
	drawText(scr, x0+2, y0, stylePanel, " "+shopTitle(kind)+" SHOP ")
	for i, o := range offers {
		style := stylePanel
		switch o.State {
		case economy.OfferMaxed:
			style = style.Foreground(tcell.ColorGray)
		case economy.OfferTooExpensive:
			style = style.Foreground(tcell.ColorRed)
		}
		drawText(scr, x0+2, y0+1+i, style, OfferLine(o))
	}
	drawText(scr, x0+2, y1-1, stylePanel, "1-9 buy  E close")
}

func shopTitle(kind component.ShopKind) string {
	if kind == component.ShopWeapon {
		return "WEAPON"
	}
	return "UPGRADE"
}

// OfferLine formats one shop slot: number, name, price and state
func OfferLine(o economy.Offer) string {
	name := o.Item.String()
	if o.Item.Class == economy.ItemUpgrade && o.Max > 1 {
		name = fmt.Sprintf("%s %d/%d", name, o.Level, o.Max)
	}

	var state string
	switch o.State {
	case economy.OfferMaxed:
		if o.Item.Class == economy.ItemWeapon {
			state = "owned"
		} else {
			state = "maxed"
		}
	case economy.OfferTooExpensive:
		state = "too expensive"
	default:
		state = "buy"
	}

	if o.State == economy.OfferMaxed {
		return fmt.Sprintf("%d  %-20s %s", o.Slot, name, state)
	}
	return fmt.Sprintf("%d  %-20s %5d  %s", o.Slot, name, o.Cost, state)
}
