package render

import (
	"backrooms/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDHeight is the number of screen rows reserved below the map.
const HUDHeight = 5

// MapView is the read-only grid access the renderer needs.
type MapView interface {
	Width() int
	Height() int
	CellType(x, z int) gamemap.CellType
}

// Renderer draws a grid and a walker onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  int
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, theme int) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(h-HUDHeight, 0)),
		theme:  theme,
	}
}

// SetTheme selects the theme by index; see ThemeAt.
func (r *Renderer) SetTheme(theme int) { r.theme = theme }

// Theme returns the active theme.
func (r *Renderer) Theme() Theme { return ThemeAt(r.theme) }

// CenterOn recenters the camera on cell (x, z).
func (r *Renderer) CenterOn(x, z int) { r.camera.Center(x, z) }

// Resize adopts the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(h-HUDHeight, 0))
}

// WorldToScreen converts cell coordinates to screen coordinates.
// visible is false when the position falls outside the viewport.
func (r *Renderer) WorldToScreen(wx, wz int) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(wx, wz)
}

// DrawFrame clears the screen and draws the visible part of m with the
// walker on top. It does not call Show; DrawHUD does.
func (r *Renderer) DrawFrame(m MapView, walker gamemap.Point) {
	r.screen.Clear()
	r.drawMap(m)
	if sx, sy, ok := r.camera.WorldToScreen(walker.X, walker.Z); ok {
		th := r.Theme()
		r.putGlyph(sx, sy, th.Walker, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack))
	}
}

func (r *Renderer) drawMap(m MapView) {
	th := r.Theme()
	wallStyle := tcell.StyleDefault.Foreground(th.WallColor).Background(tcell.ColorBlack)
	dimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	floorStyle := tcell.StyleDefault.Foreground(th.FloorColor).Background(tcell.ColorBlack)

	// Only the cells under the viewport are visited.
	x0, z0 := r.camera.ScreenToWorld(0, 0)
	x1, z1 := r.camera.ScreenToWorld(r.camera.ViewWidth, r.camera.ViewHeight)
	for z := max(z0, 0); z <= min(z1, m.Height()-1); z++ {
		for x := max(x0, 0); x <= min(x1, m.Width()-1); x++ {
			sx, sy, onScreen := r.camera.WorldToScreen(x, z)
			if !onScreen {
				continue
			}
			switch m.CellType(x, z) {
			case gamemap.Wall:
				if exposed(m, x, z) {
					r.putGlyph(sx, sy, th.Wall, wallStyle)
				} else {
					r.putGlyph(sx, sy, th.DimWall, dimStyle)
				}
			case gamemap.Floor:
				r.putGlyph(sx, sy, th.Floor, floorStyle)
			case gamemap.Ceiling:
				r.putGlyph(sx, sy, th.Ceiling, floorStyle)
			default:
				r.putGlyph(sx, sy, th.Empty, floorStyle)
			}
		}
	}
}

// exposed reports whether the wall at (x, z) borders a non-wall cell.
func exposed(m MapView, x, z int) bool {
	validOpen := func(x, z int) bool {
		return x >= 0 && z >= 0 && x < m.Width() && z < m.Height() && m.CellType(x, z) != gamemap.Wall
	}
	return validOpen(x-1, z) || validOpen(x+1, z) || validOpen(x, z-1) || validOpen(x, z+1)
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
