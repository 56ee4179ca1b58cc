package gamemap

// ChunkSize is the default edge length of a chunk in cells.
const ChunkSize = 16

// Chunk returns the cells of the ChunkSize x ChunkSize region anchored at
// (chunkX*ChunkSize, chunkZ*ChunkSize).
func (g *Grid) Chunk(chunkX, chunkZ int) []Cell {
	return g.ChunkSized(chunkX, chunkZ, ChunkSize)
}

// ChunkSized returns copies of the cells covering the size x size region of
// chunk (chunkX, chunkZ) in row-major order. Coordinates outside the grid are
// skipped, so chunks at the edge of the world hold fewer than size*size cells.
func (g *Grid) ChunkSized(chunkX, chunkZ, size int) []Cell {
	if size <= 0 {
		return nil
	}
	startX, startZ := chunkX*size, chunkZ*size
	var chunk []Cell
	for z := startZ; z < startZ+size; z++ {
		for x := startX; x < startX+size; x++ {
			if g.IsValidCell(x, z) {
				chunk = append(chunk, g.cells[g.Index(x, z)])
			}
		}
	}
	return chunk
}

// ChunkCount returns the number of chunks of the given size needed to cover
// the grid along each axis.
func (g *Grid) ChunkCount(size int) (nx, nz int) {
	if size <= 0 {
		return 0, 0
	}
	return (g.width + size - 1) / size, (g.height + size - 1) / size
}

// ChunkOf returns the chunk coordinate containing cell (x, z).
func ChunkOf(x, z, size int) (cx, cz int) {
	return floorDiv(x, size), floorDiv(z, size)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
