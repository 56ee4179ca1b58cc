package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status is the state shown on the HUD status lines.
type Status struct {
	Mode           string
	Seed           int64
	Width, Height  int
	Coverage       float64 // 0..1
	Regions        int
	X, Z           int
	ChunkX, ChunkZ int
	ChunkCells     int
}

// DrawHUD renders the status lines and message log at the bottom of the
// screen, then shows the frame.
func (r *Renderer) DrawHUD(st Status, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDHeight

	r.drawHLine(hudY, tcell.ColorGray)

	statusLine := fmt.Sprintf("[%s]  seed %d  %dx%d  floor %.1f%%  regions %d  theme %s",
		st.Mode, st.Seed, st.Width, st.Height, st.Coverage*100, st.Regions, r.Theme().Name)
	r.drawText(0, hudY+1, statusLine, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	posLine := fmt.Sprintf("pos %d,%d  chunk %d,%d (%d cells)", st.X, st.Z, st.ChunkX, st.ChunkZ, st.ChunkCells)
	r.drawText(0, hudY+2, posLine, tcell.StyleDefault.Foreground(tcell.ColorSilver))

	// Message log (last 2 messages).
	start := max(len(messages)-2, 0)
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+3+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
