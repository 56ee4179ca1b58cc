package generate

import (
	"backrooms/internal/gamemap"
	"math/rand"
)

// Placement counts stamping attempts. Shapes that do not fit the grid are
// skipped without retrying.
type Placement struct {
	Placed  int
	Skipped int
}

// stampRooms places r.Count rectangular rooms at uniform positions.
func stampRooms(grid *gamemap.Grid, rng *rand.Rand, r RoomRange) Placement {
	var p Placement
	for i := 0; i < r.Count; i++ {
		x, z, w, h, ok := pickRoom(grid, rng, r)
		if !ok {
			p.Skipped++
			continue
		}
		stampRect(grid, x, z, w, h)
		p.Placed++
	}
	return p
}

// stampPillarRooms places rectangular rooms and re-walls a lattice of pillars
// inside each one, with a spacing drawn per room.
func stampPillarRooms(grid *gamemap.Grid, rng *rand.Rand, r RoomRange, spacingMin, spacingMax int) Placement {
	var p Placement
	for i := 0; i < r.Count; i++ {
		x, z, w, h, ok := pickRoom(grid, rng, r)
		if !ok {
			p.Skipped++
			continue
		}
		stampRect(grid, x, z, w, h)
		stampPillars(grid, x, z, w, h, between(rng, spacingMin, spacingMax))
		p.Placed++
	}
	return p
}

// pickRoom draws a size and, when the room is non-empty and strictly smaller
// than the grid on both axes, a top-left corner that keeps it inside.
func pickRoom(grid *gamemap.Grid, rng *rand.Rand, r RoomRange) (x, z, w, h int, ok bool) {
	w = between(rng, r.WidthMin, r.WidthMax)
	h = between(rng, r.HeightMin, r.HeightMax)
	if w <= 0 || h <= 0 || grid.Width() <= w || grid.Height() <= h {
		return 0, 0, w, h, false
	}
	x = between(rng, 0, grid.Width()-w)
	z = between(rng, 0, grid.Height()-h)
	return x, z, w, h, true
}

func stampRect(grid *gamemap.Grid, x, z, w, h int) {
	for row := z; row < z+h; row++ {
		for col := x; col < x+w; col++ {
			grid.Carve(col, row)
		}
	}
}

// stampPillars re-walls every cell at a multiple of spacing from the room
// origin. A non-positive spacing leaves the room open.
func stampPillars(grid *gamemap.Grid, x, z, w, h, spacing int) {
	if spacing <= 0 {
		return
	}
	for row := z; row < z+h; row += spacing {
		for col := x; col < x+w; col += spacing {
			grid.Rewall(col, row)
		}
	}
}
