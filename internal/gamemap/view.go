package gamemap

// View is the read-only face of a Grid handed to consumers.
type View interface {
	Width() int
	Height() int
	Len() int
	IsValidCell(x, z int) bool
	CellType(x, z int) CellType
	IsWall(x, z int) bool
	IsFloor(x, z int) bool
	Visited(x, z int) bool
	Cells() []Cell
	Count(t CellType) int
	Equal(other View) bool
	Chunk(chunkX, chunkZ int) []Cell
	ChunkSized(chunkX, chunkZ, size int) []Cell
	ChunkCount(size int) (nx, nz int)
}

// ReadOnly wraps g so that only its queries are reachable.
func ReadOnly(g *Grid) View { return frozen{g: g} }

type frozen struct{ g *Grid }

func (f frozen) Width() int                                 { return f.g.Width() }
func (f frozen) Height() int                                { return f.g.Height() }
func (f frozen) Len() int                                   { return f.g.Len() }
func (f frozen) IsValidCell(x, z int) bool                  { return f.g.IsValidCell(x, z) }
func (f frozen) CellType(x, z int) CellType                 { return f.g.CellType(x, z) }
func (f frozen) IsWall(x, z int) bool                       { return f.g.IsWall(x, z) }
func (f frozen) IsFloor(x, z int) bool                      { return f.g.IsFloor(x, z) }
func (f frozen) Visited(x, z int) bool                      { return f.g.Visited(x, z) }
func (f frozen) Cells() []Cell                              { return f.g.Cells() }
func (f frozen) Count(t CellType) int                       { return f.g.Count(t) }
func (f frozen) Equal(other View) bool                      { return f.g.Equal(other) }
func (f frozen) Chunk(chunkX, chunkZ int) []Cell            { return f.g.Chunk(chunkX, chunkZ) }
func (f frozen) ChunkSized(chunkX, chunkZ, size int) []Cell { return f.g.ChunkSized(chunkX, chunkZ, size) }
func (f frozen) ChunkCount(size int) (nx, nz int)           { return f.g.ChunkCount(size) }
