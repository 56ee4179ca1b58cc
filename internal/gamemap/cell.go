package gamemap

// CellType identifies what occupies one grid cell.
type CellType uint8

const (
	Wall CellType = iota
	Floor
	Ceiling // reserved, never produced by the carvers
	Empty   // reserved, never produced by the carvers
)

func (t CellType) String() string {
	switch t {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Ceiling:
		return "ceiling"
	case Empty:
		return "empty"
	}
	return "unknown"
}

// CellSize is the world-space edge length of one cell.
const CellSize float32 = 2.0

// Vec3 is a world-space position.
type Vec3 struct {
	X, Y, Z float32
}

// Point is an integer grid coordinate.
type Point struct {
	X, Z int
}

// Cell holds the type and world anchor for one grid cell.
// Visited is generation-time bookkeeping and carries no meaning for readers.
type Cell struct {
	Type     CellType
	Position Vec3
	Visited  bool
}
