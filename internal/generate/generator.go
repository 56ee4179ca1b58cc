package generate

import (
	"backrooms/internal/gamemap"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Mode selects the algorithm sequence a generation run applies.
type Mode uint8

const (
	ModeClassic   Mode = iota // depth-first maze plus scattered openings
	ModeBackrooms             // overlapping growth passes plus stamped rooms
	ModeChunked               // per-chunk room lattice with straight halls
)

func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeBackrooms:
		return "backrooms"
	case ModeChunked:
		return "chunked"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode accepts the names returned by Mode.String, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic", "maze":
		return ModeClassic, nil
	case "backrooms":
		return ModeBackrooms, nil
	case "chunked", "chunks":
		return ModeChunked, nil
	}
	return ModeClassic, fmt.Errorf("unknown generation mode %q", s)
}

// Report summarises one generation run.
type Report struct {
	Mode          Mode
	Seed          int64
	Width, Height int
	FloorCells    int
	Passes        int // growth passes started (backrooms)
	Rooms         Placement
	PillarRooms   Placement
	PolygonRooms  Placement
	Corridors     int // straight corridor lines carved
}

func (r Report) String() string {
	return fmt.Sprintf("%s %dx%d seed=%d floor=%d passes=%d rooms=%d/%d pillar=%d/%d polygon=%d/%d corridors=%d",
		r.Mode, r.Width, r.Height, r.Seed, r.FloorCells, r.Passes,
		r.Rooms.Placed, r.Rooms.Placed+r.Rooms.Skipped,
		r.PillarRooms.Placed, r.PillarRooms.Placed+r.PillarRooms.Skipped,
		r.PolygonRooms.Placed, r.PolygonRooms.Placed+r.PolygonRooms.Skipped,
		r.Corridors)
}

// Generator owns one grid and the random stream that carves it.
//
// Generate builds a fresh grid on every call and swaps it in only when the run
// is complete, so a view obtained earlier stays unchanged. Calls on
// one Generator must not overlap; queries on a finished grid may run
// concurrently with each other.
type Generator struct {
	width, height int
	seed          int64
	cfg           Config
	rng           *rand.Rand
	grid          *gamemap.Grid
}

// New creates a generator with DefaultConfig. A seed of 0 picks a
// time-derived seed; any other value makes every run reproducible.
func New(width, height int, seed int64) *Generator {
	return NewWithConfig(width, height, seed, DefaultConfig())
}

// NewWithConfig is New with explicit tuning.
func NewWithConfig(width, height int, seed int64, cfg Config) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
		if seed == 0 {
			seed = 1
		}
	}
	return &Generator{
		width:  max(width, 0),
		height: max(height, 0),
		seed:   seed,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		grid:   gamemap.New(width, height),
	}
}

// Seed returns the resolved, non-zero seed.
func (g *Generator) Seed() int64 { return g.seed }

// Config returns the tuning in use.
func (g *Generator) Config() Config { return g.cfg }

// Grid returns a read-only view of the current grid.
func (g *Generator) Grid() gamemap.View { return gamemap.ReadOnly(g.grid) }

// Generate reseeds the random stream, starts from an all-wall grid and runs
// the algorithm sequence for mode. Repeated calls with the same mode produce
// identical grids.
func (g *Generator) Generate(mode Mode) Report {
	g.rng = rand.New(rand.NewSource(g.seed))
	grid := gamemap.New(g.width, g.height)
	rep := Report{Mode: mode, Seed: g.seed, Width: g.width, Height: g.height}

	switch mode {
	case ModeBackrooms:
		rep.Passes = growCorridors(grid, g.rng, g.cfg)
		rep.Rooms = stampRooms(grid, g.rng, g.cfg.Rooms)
		rep.PillarRooms = stampPillarRooms(grid, g.rng, g.cfg.PillarRooms, g.cfg.PillarSpacingMin, g.cfg.PillarSpacingMax)
		rep.PolygonRooms = stampPolygonRooms(grid, g.rng, g.cfg.PolygonRooms)
		if g.cfg.StraightCorridors {
			rep.Corridors = carveStraightCorridors(grid, g.rng, g.cfg)
		}
	case ModeChunked:
		layoutChunks(grid, g.rng, g.cfg)
	default:
		sx, sz := mazeStart(g.width, g.height)
		carveMaze(grid, g.rng, sx, sz)
		sprinkleNoise(grid, g.rng, g.cfg.NoiseChance)
	}

	rep.FloorCells = grid.Count(gamemap.Floor)
	g.grid = grid
	return rep
}

// GenerateMaze runs the classic backtracking mode.
func (g *Generator) GenerateMaze() Report { return g.Generate(ModeClassic) }

// GenerateBackrooms runs the growth-and-rooms mode.
func (g *Generator) GenerateBackrooms() Report { return g.Generate(ModeBackrooms) }

func (g *Generator) Width() int  { return g.width }
func (g *Generator) Height() int { return g.height }

func (g *Generator) CellType(x, z int) gamemap.CellType { return g.grid.CellType(x, z) }
func (g *Generator) IsWall(x, z int) bool               { return g.grid.IsWall(x, z) }
func (g *Generator) IsFloor(x, z int) bool              { return g.grid.IsFloor(x, z) }
func (g *Generator) IsValidCell(x, z int) bool          { return g.grid.IsValidCell(x, z) }

// Chunk returns the cells of chunk (chunkX, chunkZ) at the default chunk size.
func (g *Generator) Chunk(chunkX, chunkZ int) []gamemap.Cell { return g.grid.Chunk(chunkX, chunkZ) }

// Cells returns a copy of the whole grid in row-major order.
func (g *Generator) Cells() []gamemap.Cell { return g.grid.Cells() }
