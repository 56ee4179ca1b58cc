package viewer

import "backrooms/internal/gamemap"

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall or out-of-bounds
)

// Blocker answers wall queries; out-of-bounds cells must read as walls.
type Blocker interface {
	IsWall(x, z int) bool
}

// TryMove attempts to step from by (dx, dz) on m and returns the outcome and
// the resulting position.
func TryMove(m Blocker, from gamemap.Point, dx, dz int) (MoveResult, gamemap.Point) {
	to := gamemap.Point{X: from.X + dx, Z: from.Z + dz}
	if m.IsWall(to.X, to.Z) {
		return MoveBlocked, from
	}
	return MoveOK, to
}
