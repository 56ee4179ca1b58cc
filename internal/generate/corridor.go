package generate

import (
	"backrooms/internal/gamemap"
	"math/rand"
)

// carveStraightCorridors cuts full-length rows and then full-length columns
// at random spacing. Each line is kept with CorridorChance and is
// CorridorWidthMin..CorridorWidthMax cells thick. Returns the lines carved.
func carveStraightCorridors(grid *gamemap.Grid, rng *rand.Rand, cfg Config) int {
	if cfg.CorridorSpacingMin <= 0 {
		return 0
	}
	n := 0
	spacing := func() int { return between(rng, cfg.CorridorSpacingMin, cfg.CorridorSpacingMax) }

	for z := spacing(); z < grid.Height(); z += spacing() {
		if rng.Float64() < cfg.CorridorChance {
			w := between(rng, cfg.CorridorWidthMin, cfg.CorridorWidthMax)
			carveH(grid, 0, grid.Width()-1, z, w)
			n++
		}
	}
	for x := spacing(); x < grid.Width(); x += spacing() {
		if rng.Float64() < cfg.CorridorChance {
			w := between(rng, cfg.CorridorWidthMin, cfg.CorridorWidthMax)
			carveV(grid, 0, grid.Height()-1, x, w)
			n++
		}
	}
	return n
}

// carveH digs a horizontal band of the given thickness from x1 to x2 at row z.
func carveH(grid *gamemap.Grid, x1, x2, z, thick int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		for t := 0; t < thick; t++ {
			grid.Carve(x, z+t)
		}
	}
}

// carveV digs a vertical band of the given thickness from z1 to z2 at column x.
func carveV(grid *gamemap.Grid, z1, z2, x, thick int) {
	if z1 > z2 {
		z1, z2 = z2, z1
	}
	for z := z1; z <= z2; z++ {
		for t := 0; t < thick; t++ {
			grid.Carve(x+t, z)
		}
	}
}

// layoutChunks applies the chunk layout to every chunk covering the grid.
func layoutChunks(grid *gamemap.Grid, rng *rand.Rand, cfg Config) {
	nx, nz := grid.ChunkCount(cfg.ChunkSize)
	for cz := 0; cz < nz; cz++ {
		for cx := 0; cx < nx; cx++ {
			layoutChunk(grid, rng, cfg, cx, cz)
		}
	}
}

// layoutChunk fills one chunk: on a ChunkRoomStep lattice each slot opens a
// room (clipped to the chunk) with ChunkRoomChance, then halls run the full
// chunk every ChunkHallStep cells in both directions.
func layoutChunk(grid *gamemap.Grid, rng *rand.Rand, cfg Config, cx, cz int) {
	size := cfg.ChunkSize
	if size <= 0 || cfg.ChunkRoomStep <= 0 || cfg.ChunkHallStep <= 0 {
		return
	}
	ox, oz := cx*size, cz*size

	for z := 0; z < size; z += cfg.ChunkRoomStep {
		for x := 0; x < size; x += cfg.ChunkRoomStep {
			if rng.Float64() >= cfg.ChunkRoomChance {
				continue
			}
			w := min(between(rng, cfg.ChunkRoomMin, cfg.ChunkRoomMax), size-x)
			h := min(between(rng, cfg.ChunkRoomMin, cfg.ChunkRoomMax), size-z)
			stampRect(grid, ox+x, oz+z, w, h)
		}
	}

	for z := 0; z < size; z += cfg.ChunkHallStep {
		carveH(grid, ox, ox+size-1, oz+z, 1)
	}
	for x := 0; x < size; x += cfg.ChunkHallStep {
		carveV(grid, oz, oz+size-1, ox+x, 1)
	}
}
