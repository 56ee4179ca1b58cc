package generate

import (
	"backrooms/internal/gamemap"
	"math/rand"
	"testing"
)

// allFloorRow checks that every cell at row z between x1 and x2 (inclusive) is floor.
func allFloorRow(grid *gamemap.Grid, x1, x2, z int) bool {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if !grid.IsFloor(x, z) {
			return false
		}
	}
	return true
}

// allFloorCol checks that every cell at column x between z1 and z2 (inclusive) is floor.
func allFloorCol(grid *gamemap.Grid, z1, z2, x int) bool {
	if z1 > z2 {
		z1, z2 = z2, z1
	}
	for z := z1; z <= z2; z++ {
		if !grid.IsFloor(x, z) {
			return false
		}
	}
	return true
}

func TestCarveH(t *testing.T) {
	grid := gamemap.New(20, 20)
	carveH(grid, 3, 8, 5, 1)

	if !allFloorRow(grid, 3, 8, 5) {
		t.Error("carveH(3,8,5) should carve floor from x=3 to x=8 at z=5")
	}
	if grid.IsFloor(2, 5) || grid.IsFloor(9, 5) {
		t.Error("cells beside the segment must remain walls")
	}
	if grid.IsFloor(5, 6) {
		t.Error("thickness 1 must not spill into the next row")
	}
}

func TestCarveHReversedArgs(t *testing.T) {
	grid := gamemap.New(20, 20)
	carveH(grid, 8, 3, 5, 1)
	if !allFloorRow(grid, 3, 8, 5) {
		t.Error("carveH with reversed x args should still carve x=3..8")
	}
}

func TestCarveVThick(t *testing.T) {
	grid := gamemap.New(20, 20)
	carveV(grid, 7, 2, 4, 2)
	if !allFloorCol(grid, 2, 7, 4) || !allFloorCol(grid, 2, 7, 5) {
		t.Error("carveV thickness 2 should carve columns 4 and 5")
	}
	if grid.IsFloor(4, 1) || grid.IsFloor(4, 8) || grid.IsFloor(6, 4) {
		t.Error("cells outside the band must remain walls")
	}
}

func TestCarveClipsToGrid(t *testing.T) {
	grid := gamemap.New(5, 5)
	carveH(grid, -3, 10, 4, 3)
	if !allFloorRow(grid, 0, 4, 4) {
		t.Error("in-grid part of the band should be carved")
	}
	if grid.Count(gamemap.Floor) != 5 {
		t.Errorf("floor count = %d, want 5", grid.Count(gamemap.Floor))
	}
}

func TestStraightCorridors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CorridorChance = 1
	cfg.CorridorWidthMin, cfg.CorridorWidthMax = 1, 1
	grid := gamemap.New(40, 40)
	n := carveStraightCorridors(grid, rand.New(rand.NewSource(4)), cfg)
	// Spacing of at most 8 across 40 cells gives at least 4 lines per axis.
	if n < 8 {
		t.Errorf("carved %d corridor lines, want at least 8", n)
	}
	full := 0
	for z := 0; z < 40; z++ {
		if allFloorRow(grid, 0, 39, z) {
			full++
		}
	}
	if full == 0 {
		t.Error("expected at least one full-width corridor row")
	}
}

func TestStraightCorridorsZeroSpacing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CorridorSpacingMin, cfg.CorridorSpacingMax = 0, 0
	grid := gamemap.New(10, 10)
	if n := carveStraightCorridors(grid, rand.New(rand.NewSource(1)), cfg); n != 0 {
		t.Errorf("zero spacing carved %d lines", n)
	}
}

// TestLayoutChunkHalls checks the fixed hall lattice: rows and columns 0 and 8
// of every chunk are open regardless of the room rolls.
func TestLayoutChunkHalls(t *testing.T) {
	cfg := DefaultConfig()
	grid := gamemap.New(32, 32)
	layoutChunks(grid, rand.New(rand.NewSource(2)), cfg)
	for _, line := range []int{0, 8, 16, 24} {
		if !allFloorRow(grid, 0, 31, line) {
			t.Errorf("row %d should be a hall", line)
		}
		if !allFloorCol(grid, 0, 31, line) {
			t.Errorf("column %d should be a hall", line)
		}
	}
}

func TestLayoutChunkNoRooms(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChunkRoomChance = 0
	grid := gamemap.New(16, 16)
	layoutChunk(grid, rand.New(rand.NewSource(2)), cfg, 0, 0)
	// Two rows and two columns of 16, minus the four crossings.
	if got := grid.Count(gamemap.Floor); got != 2*16+2*16-4 {
		t.Errorf("floor = %d, want 60", got)
	}
}

func TestLayoutChunkStaysInChunk(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChunkRoomChance = 1
	grid := gamemap.New(48, 48)
	layoutChunk(grid, rand.New(rand.NewSource(8)), cfg, 1, 1)
	for z := 0; z < 48; z++ {
		for x := 0; x < 48; x++ {
			inside := x >= 16 && x < 32 && z >= 16 && z < 32
			if grid.IsFloor(x, z) && !inside {
				t.Fatalf("(%d,%d) carved outside chunk (1,1)", x, z)
			}
		}
	}
}
