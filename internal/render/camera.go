package render

// Camera translates between grid coordinates and screen coordinates.
// Grid X is multiplied by 2 because every tile occupies 2 terminal columns.
type Camera struct {
	OffsetX    int
	OffsetZ    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on cell (cx, cz).
func NewCamera(cx, cz, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cz)
	return c
}

// Center repositions the camera so that cell (cx, cz) is in the middle.
func (c *Camera) Center(cx, cz int) {
	c.OffsetX = cx - (c.ViewWidth/2)/2
	c.OffsetZ = cz - c.ViewHeight/2
}

// Resize changes the viewport and keeps the current centre cell.
func (c *Camera) Resize(viewW, viewH int) {
	cx := c.OffsetX + (c.ViewWidth/2)/2
	cz := c.OffsetZ + c.ViewHeight/2
	c.ViewWidth, c.ViewHeight = viewW, viewH
	c.Center(cx, cz)
}

// WorldToScreen converts cell (wx, wz) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wz int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * 2
	sy = wz - c.OffsetZ
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to cell coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx/2 + c.OffsetX, sy + c.OffsetZ
}
