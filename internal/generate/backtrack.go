package generate

import (
	"backrooms/internal/gamemap"
	"math/rand"
)

// carveFrame is one pending cell of the depth-first carve together with the
// shuffled neighbours it has not tried yet.
type carveFrame struct {
	at   gamemap.Point
	next []gamemap.Point
}

// carveMaze runs a depth-first backtracking carve from (x, z). Each cell is
// carved on entry, its neighbours two cells away are shuffled once, and every
// neighbour still unvisited when its turn comes is reached through the cell
// between them. An explicit stack replaces recursion.
func carveMaze(grid *gamemap.Grid, rng *rand.Rand, x, z int) {
	if !grid.IsValidCell(x, z) {
		return
	}
	stack := []carveFrame{enterCell(grid, rng, gamemap.Point{X: x, Z: z})}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if len(top.next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		n := top.next[0]
		top.next = top.next[1:]
		if !grid.IsValidCell(n.X, n.Z) || grid.Visited(n.X, n.Z) {
			continue
		}
		bx := top.at.X + (n.X-top.at.X)/2
		bz := top.at.Z + (n.Z-top.at.Z)/2
		grid.SetType(bx, bz, gamemap.Floor)
		stack = append(stack, enterCell(grid, rng, n))
	}
}

func enterCell(grid *gamemap.Grid, rng *rand.Rand, p gamemap.Point) carveFrame {
	grid.Carve(p.X, p.Z)
	nbs := mazeNeighbors(grid, p.X, p.Z)
	rng.Shuffle(len(nbs), func(i, j int) { nbs[i], nbs[j] = nbs[j], nbs[i] })
	return carveFrame{at: p, next: nbs}
}

// mazeNeighbors lists the in-grid cells two steps away along each axis.
func mazeNeighbors(grid *gamemap.Grid, x, z int) []gamemap.Point {
	nbs := make([]gamemap.Point, 0, 4)
	if x >= 2 {
		nbs = append(nbs, gamemap.Point{X: x - 2, Z: z})
	}
	if x < grid.Width()-2 {
		nbs = append(nbs, gamemap.Point{X: x + 2, Z: z})
	}
	if z >= 2 {
		nbs = append(nbs, gamemap.Point{X: x, Z: z - 2})
	}
	if z < grid.Height()-2 {
		nbs = append(nbs, gamemap.Point{X: x, Z: z + 2})
	}
	return nbs
}

// sprinkleNoise opens each remaining wall with the given chance. It ignores
// connectivity entirely.
func sprinkleNoise(grid *gamemap.Grid, rng *rand.Rand, chance float64) {
	for z := 0; z < grid.Height(); z++ {
		for x := 0; x < grid.Width(); x++ {
			if grid.IsWall(x, z) && rng.Float64() < chance {
				grid.SetType(x, z, gamemap.Floor)
			}
		}
	}
}

// mazeStart returns the odd-biased centre the classic carve starts from.
func mazeStart(width, height int) (int, int) {
	return (width / 2) | 1, (height / 2) | 1
}
