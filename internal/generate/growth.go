package generate

import (
	"backrooms/internal/gamemap"
	"math/rand"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// growCorridors layers independent randomized Prim-style growth passes on the
// grid until FillRatio of all cells has been visited or GrowthPasses seeds
// have been used. A pass that runs into a cell carved earlier only tunnels
// through it with chance 1-StopCollisionChance; otherwise that branch is
// dropped, which leaves the partition-like walls between passes.
// It returns the number of passes started.
func growCorridors(grid *gamemap.Grid, rng *rand.Rand, cfg Config) int {
	target := int(float64(grid.Len()) * cfg.FillRatio)
	visited := mapset.New[gamemap.Point]()
	passes := 0

	for pass := 0; pass < cfg.GrowthPasses; pass++ {
		if visited.Size() >= target {
			break
		}
		passes++

		seed := gamemap.Point{X: between(rng, 0, grid.Width()-1), Z: between(rng, 0, grid.Height()-1)}
		visited.Put(seed)
		frontier := []gamemap.Point{seed}

		for visited.Size() < target && len(frontier) > 0 {
			// Uniform pick by index; FIFO or LIFO would stretch corridors into lines.
			i := rng.Intn(len(frontier))
			cur := frontier[i]
			frontier = slices.Delete(frontier, i, i+1)

			visited.Put(cur)
			grid.Carve(cur.X, cur.Z)

			nbs := growthNeighbors(grid, visited, cur)
			if len(nbs) == 0 {
				continue
			}
			next := nbs[rng.Intn(len(nbs))]
			bx, bz := (cur.X+next.X)/2, (cur.Z+next.Z)/2

			if rng.Float64() > cfg.StopCollisionChance || !grid.Visited(bx, bz) {
				frontier = append(frontier, next)
				grid.Carve(bx, bz)
			}
		}
	}
	return passes
}

// growthNeighbors lists cells two steps away that no pass has visited yet.
func growthNeighbors(grid *gamemap.Grid, visited mapset.Set[gamemap.Point], p gamemap.Point) []gamemap.Point {
	nbs := make([]gamemap.Point, 0, 4)
	try := func(ok bool, q gamemap.Point) {
		if ok && !visited.Has(q) {
			nbs = append(nbs, q)
		}
	}
	try(p.X > 1, gamemap.Point{X: p.X - 2, Z: p.Z})
	try(p.X < grid.Width()-2, gamemap.Point{X: p.X + 2, Z: p.Z})
	try(p.Z > 1, gamemap.Point{X: p.X, Z: p.Z - 2})
	try(p.Z < grid.Height()-2, gamemap.Point{X: p.X, Z: p.Z + 2})
	return nbs
}
