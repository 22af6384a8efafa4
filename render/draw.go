package render

import "github.com/gdamore/tcell/v2"

// drawText writes s from (x, y), clipped to the screen; returns the column after the text
func drawText(scr tcell.Screen, x, y int, style tcell.Style, s string) int {
	w, h := scr.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range s {
		if x >= w {
			break
		}
		if x >= 0 {
			scr.SetContent(x, y, r, nil, style)
		}
		x++
	}
	return x
}

// fill paints the inclusive cell rectangle with r
func fill(scr tcell.Screen, x0, y0, x1, y1 int, r rune, style tcell.Style) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			scr.SetContent(x, y, r, nil, style)
		}
	}
}

// box draws a single-line frame with a cleared interior
func box(scr tcell.Screen, x0, y0, x1, y1 int, style tcell.Style) {
	fill(scr, x0, y0, x1, y1, ' ', style)
	for x := x0 + 1; x < x1; x++ {
		scr.SetContent(x, y0, tcell.RuneHLine, nil, style)
		scr.SetContent(x, y1, tcell.RuneHLine, nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		scr.SetContent(x0, y, tcell.RuneVLine, nil, style)
		scr.SetContent(x1, y, tcell.RuneVLine, nil, style)
	}
	scr.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	scr.SetContent(x1, y0, tcell.RuneURCorner, nil, style)
	scr.SetContent(x0, y1, tcell.RuneLLCorner, nil, style)
	scr.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)
}
