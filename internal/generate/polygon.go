package generate

import (
	"backrooms/internal/gamemap"
	"math"
	"math/rand"
)

// Polygon is a closed ring of integer vertices.
type Polygon []gamemap.Point

// RegularPolygon returns sides vertices spaced evenly by angle on a circle of
// the given radius, truncated to integer coordinates.
func RegularPolygon(cx, cz, radius, sides int) Polygon {
	if sides <= 0 {
		return nil
	}
	step := 2 * math.Pi / float64(sides)
	poly := make(Polygon, 0, sides)
	for i := 0; i < sides; i++ {
		angle := float64(i) * step
		poly = append(poly, gamemap.Point{
			X: int(float64(cx) + float64(radius)*math.Cos(angle)),
			Z: int(float64(cz) + float64(radius)*math.Sin(angle)),
		})
	}
	return poly
}

// Contains classifies (x, z) with a horizontal even-odd scanline: every edge
// that straddles row z with its intercept right of x toggles the result.
// The intercept is computed in integer arithmetic.
func (p Polygon) Contains(x, z int) bool {
	inside := false
	n := len(p)
	for i := 0; i < n; i++ {
		a, b := p[i], p[(i+1)%n]
		if (a.Z > z) == (b.Z > z) {
			continue
		}
		left, right := b, a
		if a.X < b.X {
			left, right = a, b
		}
		if x < (right.X-left.X)*(z-left.Z)/(right.Z-left.Z)+left.X {
			inside = !inside
		}
	}
	return inside
}

// stampPolygonRooms places regular-polygon rooms. A room is skipped unless
// the grid exceeds four radii on both axes.
func stampPolygonRooms(grid *gamemap.Grid, rng *rand.Rand, r PolygonRange) Placement {
	var p Placement
	for i := 0; i < r.Count; i++ {
		sides := between(rng, r.SidesMin, r.SidesMax)
		radius := between(rng, r.RadiusMin, r.RadiusMax)
		if radius < 0 || sides <= 0 || grid.Width() <= radius*4 || grid.Height() <= radius*4 {
			p.Skipped++
			continue
		}
		cx := between(rng, radius*2, grid.Width()-radius*2)
		cz := between(rng, radius*2, grid.Height()-radius*2)
		stampPolygon(grid, RegularPolygon(cx, cz, radius, sides), cx, cz, radius)
		p.Placed++
	}
	return p
}

// stampPolygon carves every cell of the (2r+1)-square around the centre that
// the polygon contains.
func stampPolygon(grid *gamemap.Grid, poly Polygon, cx, cz, radius int) {
	for row := cz - radius; row <= cz+radius; row++ {
		for col := cx - radius; col <= cx+radius; col++ {
			if grid.IsValidCell(col, row) && poly.Contains(col, row) {
				grid.Carve(col, row)
			}
		}
	}
}
