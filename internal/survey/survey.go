// Package survey measures a generated grid: how much of it is open, how the
// open cells split into connected regions, and where a walker can start.
package survey

import (
	"backrooms/internal/gamemap"
	"cmp"
	"fmt"
	"slices"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// FloorMap is the read-only view a survey needs. Both *gamemap.Grid and
// *generate.Generator satisfy it.
type FloorMap interface {
	Width() int
	Height() int
	IsFloor(x, z int) bool
}

// Region is one 4-connected set of floor cells.
type Region struct {
	Cells    []gamemap.Point // row-major order
	Min, Max gamemap.Point   // inclusive bounding box
}

// Size returns the number of cells in the region.
func (r Region) Size() int { return len(r.Cells) }

// Summary is the headline measurement of a grid.
type Summary struct {
	Width, Height int
	Floor, Wall   int
	Coverage      float64 // floor share of all cells, 0..1
	Regions       int
	Largest       int // cells in the biggest region
}

func (s Summary) String() string {
	return fmt.Sprintf("%dx%d floor=%d (%.1f%%) regions=%d largest=%d",
		s.Width, s.Height, s.Floor, s.Coverage*100, s.Regions, s.Largest)
}

// floorPath implements paths.Pather over the open cells of a FloorMap.
type floorPath struct {
	m   FloorMap
	nbs paths.Neighbors
}

func (fp *floorPath) Neighbors(p gruid.Point) []gruid.Point {
	if !fp.m.IsFloor(p.X, p.Y) {
		return nil
	}
	return fp.nbs.Cardinal(p, func(q gruid.Point) bool {
		return fp.m.IsFloor(q.X, q.Y)
	})
}

// Regions splits the floor of m into connected components, largest first.
// Regions of equal size keep the row-major order of their first cell.
func Regions(m FloorMap) []Region {
	w, h := m.Width(), m.Height()
	if w <= 0 || h <= 0 {
		return nil
	}
	pr := paths.NewPathRange(gruid.NewRange(0, 0, w, h))
	pr.CCMapAll(&floorPath{m: m})

	byID := map[int]int{}
	var regions []Region
	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			if !m.IsFloor(x, z) {
				continue
			}
			p := gamemap.Point{X: x, Z: z}
			id := pr.CCMapAt(gruid.Point{X: x, Y: z})
			i, ok := byID[id]
			if !ok || id < 0 {
				i = len(regions)
				if id >= 0 {
					byID[id] = i
				}
				regions = append(regions, Region{Min: p, Max: p})
			}
			r := &regions[i]
			r.Cells = append(r.Cells, p)
			r.Min.X, r.Max.X = min(r.Min.X, x), max(r.Max.X, x)
			r.Min.Z, r.Max.Z = min(r.Min.Z, z), max(r.Max.Z, z)
		}
	}
	slices.SortStableFunc(regions, func(a, b Region) int {
		return cmp.Compare(b.Size(), a.Size())
	})
	return regions
}

// Survey measures m.
func Survey(m FloorMap) Summary {
	s := Summary{Width: m.Width(), Height: m.Height()}
	for z := 0; z < s.Height; z++ {
		for x := 0; x < s.Width; x++ {
			if m.IsFloor(x, z) {
				s.Floor++
			}
		}
	}
	total := max(s.Width, 0) * max(s.Height, 0)
	s.Wall = total - s.Floor
	if total > 0 {
		s.Coverage = float64(s.Floor) / float64(total)
	}
	regions := Regions(m)
	s.Regions = len(regions)
	if len(regions) > 0 {
		s.Largest = regions[0].Size()
	}
	return s
}

// Spawn returns the cell of the largest region closest to (x, z) by Manhattan
// distance. It reports false when the grid has no floor at all.
func Spawn(m FloorMap, x, z int) (gamemap.Point, bool) {
	regions := Regions(m)
	if len(regions) == 0 {
		return gamemap.Point{}, false
	}
	from := gruid.Point{X: x, Y: z}
	best := regions[0].Cells[0]
	bestDist := paths.DistanceManhattan(from, gruid.Point{X: best.X, Y: best.Z})
	for _, c := range regions[0].Cells[1:] {
		if d := paths.DistanceManhattan(from, gruid.Point{X: c.X, Y: c.Z}); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, true
}
