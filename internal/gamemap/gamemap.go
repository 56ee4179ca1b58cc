package gamemap

// Grid is a fixed-size, row-major array of cells addressed by index = z*width + x.
// Any coordinate outside the grid reads as Wall.
type Grid struct {
	width, height int
	cells         []Cell
}

// New creates a Grid filled with unvisited walls. Negative sizes are treated as zero.
func New(width, height int) *Grid {
	width = max(width, 0)
	height = max(height, 0)
	g := &Grid{width: width, height: height, cells: make([]Cell, width*height)}
	for z := 0; z < height; z++ {
		for x := 0; x < width; x++ {
			g.cells[g.Index(x, z)] = Cell{
				Type:     Wall,
				Position: Vec3{X: float32(x) * CellSize, Z: float32(z) * CellSize},
			}
		}
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells, width*height.
func (g *Grid) Len() int { return len(g.cells) }

// Index maps (x, z) to its slot in the backing array. The result is only
// meaningful when IsValidCell(x, z) holds.
func (g *Grid) Index(x, z int) int {
	return z*g.width + x
}

// Coord is the inverse of Index. An empty-width grid has no cells and maps
// every index to (0, 0).
func (g *Grid) Coord(i int) (x, z int) {
	if g.width == 0 {
		return 0, 0
	}
	return i % g.width, i / g.width
}

// IsValidCell reports whether (x, z) is within the grid.
func (g *Grid) IsValidCell(x, z int) bool {
	return x >= 0 && x < g.width && z >= 0 && z < g.height
}

// CellType returns the type at (x, z), or Wall when out of bounds.
func (g *Grid) CellType(x, z int) CellType {
	if !g.IsValidCell(x, z) {
		return Wall
	}
	return g.cells[g.Index(x, z)].Type
}

// IsWall is true for wall cells and every out-of-bounds coordinate.
func (g *Grid) IsWall(x, z int) bool {
	return g.CellType(x, z) == Wall
}

// IsFloor is true only for in-bounds floor cells.
func (g *Grid) IsFloor(x, z int) bool {
	return g.CellType(x, z) == Floor
}

// at returns a pointer to the cell at (x, z). Panics if out of bounds.
func (g *Grid) at(x, z int) *Cell {
	return &g.cells[g.Index(x, z)]
}

// Visited reports the generation marker at (x, z); false when out of bounds.
func (g *Grid) Visited(x, z int) bool {
	if !g.IsValidCell(x, z) {
		return false
	}
	return g.cells[g.Index(x, z)].Visited
}

// SetType changes only the type of an in-bounds cell.
func (g *Grid) SetType(x, z int, t CellType) {
	if g.IsValidCell(x, z) {
		g.cells[g.Index(x, z)].Type = t
	}
}

// Carve marks an in-bounds cell as visited floor.
func (g *Grid) Carve(x, z int) {
	if g.IsValidCell(x, z) {
		c := &g.cells[g.Index(x, z)]
		c.Type = Floor
		c.Visited = true
	}
}

// Rewall turns an in-bounds cell back into an unvisited wall.
func (g *Grid) Rewall(x, z int) {
	if g.IsValidCell(x, z) {
		c := &g.cells[g.Index(x, z)]
		c.Type = Wall
		c.Visited = false
	}
}

// Cells returns a copy of every cell in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Count returns how many cells have type t.
func (g *Grid) Count(t CellType) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Type == t {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same extents and cell types.
func (g *Grid) Equal(other View) bool {
	if other == nil || g.width != other.Width() || g.height != other.Height() {
		return false
	}
	for i := range g.cells {
		x, z := g.Coord(i)
		if g.cells[i].Type != other.CellType(x, z) {
			return false
		}
	}
	return true
}
