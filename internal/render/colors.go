package render

import "github.com/gdamore/tcell/v2"

// Theme holds the glyphs used to draw one look of the grid.
// Emoji are rendered by the terminal with their own colors, so exposed and
// buried walls use distinct glyphs instead of a tinted foreground. The colors
// only matter for themes built from plain characters.
type Theme struct {
	Name       string
	Wall       string // wall with at least one open side
	DimWall    string // wall enclosed by other walls
	Floor      string
	Ceiling    string
	Empty      string
	Walker     string
	WallColor  tcell.Color
	FloorColor tcell.Color
}

// Themes lists every selectable theme; the viewer cycles through them in order.
var Themes = []Theme{
	{
		// Fluorescent office: yellowed wallpaper, damp carpet
		Name:       "fluorescent",
		Wall:       "🟨",
		DimWall:    "🟫",
		Floor:      "⬛",
		Ceiling:    "💡",
		Empty:      " ",
		Walker:     "🚶",
		WallColor:  tcell.ColorYellow,
		FloorColor: tcell.ColorOlive,
	},
	{
		// Pool rooms
		Name:       "poolrooms",
		Wall:       "⬜",
		DimWall:    "🔲",
		Floor:      "🟦",
		Ceiling:    "💡",
		Empty:      " ",
		Walker:     "🏊",
		WallColor:  tcell.ColorWhite,
		FloorColor: tcell.ColorTeal,
	},
	{
		Name:       "ascii",
		Wall:       "#",
		DimWall:    "+",
		Floor:      ".",
		Ceiling:    "^",
		Empty:      " ",
		Walker:     "@",
		WallColor:  tcell.ColorKhaki,
		FloorColor: tcell.ColorDarkGray,
	},
}

// ThemeAt returns the theme for index i, wrapping around in both directions.
func ThemeAt(i int) Theme {
	n := len(Themes)
	return Themes[((i%n)+n)%n]
}
