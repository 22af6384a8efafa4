package render

import (
	"math"

	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
	"github.com/DanBellman/Wandern-to-kill-a-Box/vmath"
)

// cellAspect is the height of a terminal cell over its width
const cellAspect = 2.0

// Camera projects the fixed-height world viewport onto the terminal grid
// World origin is the screen centre, Y up; screen rows grow downward
type Camera struct {
	Cols, Rows int

	unitsPerRow float64
	unitsPerCol float64
	halfWidth   float64
	halfHeight  float64
}

// NewCamera fits the full viewport height into rows; width follows the cell aspect
func NewCamera(cols, rows int) Camera {
	cols = max(cols, 1)
	rows = max(rows, 1)
	upr := parameter.ViewportHeight / float64(rows)
	upc := upr / cellAspect
	return Camera{
		Cols:        cols,
		Rows:        rows,
		unitsPerRow: upr,
		unitsPerCol: upc,
		halfWidth:   float64(cols) * upc / 2,
		halfHeight:  parameter.ViewportHeight / 2,
	}
}

// Aspect is the world-space width/height ratio the simulation should clamp to
func (c Camera) Aspect() float64 {
	return c.halfWidth / c.halfHeight
}

// WorldToScreen returns the cell containing p; false when off screen
func (c Camera) WorldToScreen(p vmath.Vec2) (int, int, bool) {
	col := int(math.Floor((p.X + c.halfWidth) / c.unitsPerCol))
	row := int(math.Floor((c.halfHeight - p.Y) / c.unitsPerRow))
	return col, row, col >= 0 && col < c.Cols && row >= 0 && row < c.Rows
}

// ScreenToWorld returns the world position at the centre of a cell
func (c Camera) ScreenToWorld(col, row int) vmath.Vec2 {
	return vmath.V2(
		(float64(col)+0.5)*c.unitsPerCol-c.halfWidth,
		c.halfHeight-(float64(row)+0.5)*c.unitsPerRow,
	)
}

// Rect returns the clipped inclusive cell range covered by a world box
func (c Camera) Rect(center vmath.Vec2, halfW, halfH float64) (x0, y0, x1, y1 int) {
	x0, y0, _ = c.WorldToScreen(vmath.V2(center.X-halfW, center.Y+halfH))
	x1, y1, _ = c.WorldToScreen(vmath.V2(center.X+halfW, center.Y-halfH))
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.Cols-1), min(y1, c.Rows-1)
	return
}
