package render

import (
	"backrooms/internal/gamemap"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// newSimScreen creates an initialized 80×24 simulation screen.
func newSimScreen(t *testing.T) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(80, 24)
	return ss
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func readRow(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(s, x, y))
	}
	return b.String()
}

const asciiTheme = 2

func TestSimScreenSize(t *testing.T) {
	screen := newSimScreen(t)
	if w, h := screen.Size(); w != 80 || h != 24 {
		t.Fatalf("screen is %dx%d, want 80x24", w, h)
	}
	r := NewRenderer(screen, asciiTheme)
	r.DrawHUD(Status{Mode: "classic"}, nil)
	if runeAt(screen, 0, 24-HUDHeight) != '─' {
		t.Error("HUD separator should sit HUDHeight rows above the bottom")
	}
	if runeAt(screen, 0, 25-HUDHeight) == '─' {
		t.Error("HUD separator drawn one row low")
	}
}

func TestDrawFrameASCII(t *testing.T) {
	screen := newSimScreen(t)
	grid := gamemap.New(10, 10)
	grid.Carve(5, 5)
	grid.Carve(6, 5)

	r := NewRenderer(screen, asciiTheme)
	r.CenterOn(5, 5)
	r.DrawFrame(grid, gamemap.Point{X: 5, Z: 5})

	cases := []struct {
		name string
		x, z int
		want rune
	}{
		{"walker", 5, 5, '@'},
		{"floor", 6, 5, '.'},
		{"exposed wall", 4, 5, '#'},
		{"buried wall", 0, 0, '+'},
		{"outside grid", -1, 0, ' '},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sx, sy, ok := r.WorldToScreen(tc.x, tc.z)
			if !ok {
				t.Fatalf("(%d,%d) not on screen", tc.x, tc.z)
			}
			if got := runeAt(screen, sx, sy); got != tc.want {
				t.Errorf("glyph at (%d,%d) = %q, want %q", tc.x, tc.z, got, tc.want)
			}
		})
	}
}

func TestDrawFrameLeavesHUDRows(t *testing.T) {
	screen := newSimScreen(t)
	grid := gamemap.New(200, 200)
	r := NewRenderer(screen, asciiTheme)
	r.CenterOn(100, 100)
	r.DrawFrame(grid, gamemap.Point{X: 100, Z: 100})
	_, h := screen.Size()
	for y := h - HUDHeight; y < h; y++ {
		if strings.TrimSpace(readRow(screen, y)) != "" {
			t.Errorf("map drawn into HUD row %d", y)
		}
	}
}

func TestExposed(t *testing.T) {
	grid := gamemap.New(5, 5)
	grid.Carve(2, 2)
	if !exposed(grid, 2, 1) || !exposed(grid, 1, 2) {
		t.Error("walls beside the floor cell should be exposed")
	}
	if exposed(grid, 1, 1) {
		t.Error("diagonal neighbours do not expose a wall")
	}
	if exposed(grid, 0, 0) {
		t.Error("the grid edge does not expose a wall")
	}
}

func TestDrawHUD(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen, asciiTheme)
	st := Status{Mode: "backrooms", Seed: 42, Width: 75, Height: 75, Coverage: 0.5, Regions: 3,
		X: 10, Z: 12, ChunkX: 0, ChunkZ: 0, ChunkCells: 256}
	r.DrawHUD(st, []string{"old", "first", "second"})

	_, h := screen.Size()
	hudY := h - HUDHeight
	if runeAt(screen, 0, hudY) != '─' {
		t.Error("missing separator line")
	}
	status := readRow(screen, hudY+1)
	for _, want := range []string{"[backrooms]", "seed 42", "75x75", "50.0%", "regions 3", "theme ascii"} {
		if !strings.Contains(status, want) {
			t.Errorf("status line %q lacks %q", strings.TrimSpace(status), want)
		}
	}
	if pos := readRow(screen, hudY+2); !strings.Contains(pos, "pos 10,12") || !strings.Contains(pos, "256 cells") {
		t.Errorf("position line %q", strings.TrimSpace(pos))
	}
	if !strings.HasPrefix(readRow(screen, hudY+3), "first") || !strings.HasPrefix(readRow(screen, hudY+4), "second") {
		t.Error("HUD should show the last two messages in order")
	}
}
