package entity

import (
	"goldrush/pkg/engine/fixed"
	"goldrush/pkg/engine/grid"
	"goldrush/pkg/engine/pathfind"
)

// OccupancyGrid is the subset of grid.Grid movement needs, kept narrow so
// tests can fake it without pulling in the full map baker.
type OccupancyGrid interface {
	pathfind.Grid
	SetCellRect(cell fixed.Cell, size int32, v grid.Value)
}

// stepSpeed converts a unit's fixed-point Speed stat into the per-tick
// advance along the current direction; diagonal steps advance at 2/3 of the
// straight rate, so a diagonal cell takes longer to cross than a straight one.
func stepSpeed(e *Entity) fixed.Fixed {
	speed := DataTable[e.Type].Unit.Speed
	if e.Direction.IsDiagonal() {
		return speed.Mul(fixed.FromInt(2)).Div(fixed.FromInt(3))
	}
	return speed
}

// BeginMove starts e moving toward to, (re)pathfinding from its current
// cell. No cells are pre-marked as explored for the search.
func BeginMove(g OccupancyGrid, units grid.UnitLookup, e *Entity, to fixed.Cell, goldWalk bool) {
	path := pathfind.FindPath(g, units, e.Cell, to, e.CellSize(), goldWalk, nil)
	e.Path = path
	e.PathfindAttempts++
	if len(path) == 0 {
		e.Mode = ModeUnitIdle
		return
	}
	e.Mode = ModeUnitMove
}

// UpdateMove advances one moving unit by one tick: stepping along path,
// handling blocked-cell retries, and popping finished move targets. Mirrors
// the source's entity_update_move.
func UpdateMove(g OccupancyGrid, units grid.UnitLookup, e *Entity, goldWalk bool) {
	switch e.Mode {
	case ModeUnitMoveBlocked:
		if e.Timer > 0 {
			e.Timer--
			return
		}
		if e.PathfindAttempts >= MaxPathfindAttempts {
			e.ClearOrders()
			e.Mode = ModeUnitIdle
			return
		}
		dest := e.Cell
		if len(e.Path) > 0 {
			dest = e.Path[len(e.Path)-1]
		} else if e.Target.Type != TargetNone {
			dest = e.Target.Cell
		}
		BeginMove(g, units, e, dest, goldWalk)
		return
	case ModeUnitMove:
		stepMove(g, units, e, goldWalk)
	}
}

func stepMove(g OccupancyGrid, units grid.UnitLookup, e *Entity, goldWalk bool) {
	if len(e.Path) == 0 {
		e.Mode = ModeUnitMoveFinished
		return
	}
	next := e.Path[0]
	size := e.CellSize()

	if g.IsCellRectOccupied(next, size, e.Cell, goldWalk, units) {
		e.Mode = ModeUnitMoveBlocked
		e.Timer = PathPauseTicks
		return
	}

	e.Direction = directionBetween(e.Cell, next)

	target := fixed.FVecFromCell(next)
	delta := target.Sub(e.Position)
	speed := stepSpeed(e)
	remainingSq := delta.X.Mul(delta.X).Add(delta.Y.Mul(delta.Y))
	if remainingSq <= speed.Mul(speed) {
		g.SetCellRect(e.Cell, size, grid.Empty)
		e.Cell = next
		e.Position = target
		g.SetCellRect(e.Cell, size, grid.EncodeEntity(idOf(e)))
		e.Path = e.Path[1:]
		if len(e.Path) == 0 {
			e.Mode = ModeUnitMoveFinished
		}
		return
	}
	e.Position = e.Position.Add(delta.Normalize().Scale(speed))
}

// directionBetween returns the compass direction stepping from one
// adjacent cell to another (from and to must differ by at most 1 in
// each axis, as guaranteed by A* path cells).
func directionBetween(from, to fixed.Cell) fixed.Direction {
	d := to.Sub(from)
	for dir := fixed.Direction(0); dir < fixed.DirectionCount; dir++ {
		if dir.Step() == d {
			return dir
		}
	}
	return fixed.North
}

// idOf is a placeholder hook for the entity's own id, filled in by the
// caller via SetSelfID before the first move; movement never needs an id
// lookup outside of rewriting its own occupancy cell.
func idOf(e *Entity) uint16 {
	return e.selfID
}

// SetSelfID records e's store id so movement can re-stamp its own
// occupancy cell without a Store back-reference.
func SetSelfID(e *Entity, id EntityID) {
	e.selfID = id
}

// FinishMove handles MODE_UNIT_MOVE_FINISHED: pop the current target for
// CELL/ATTACK_CELL orders, or re-evaluate adjacency for ENTITY orders.
func FinishMove(e *Entity) {
	switch e.Target.Type {
	case TargetCell, TargetAttackCell:
		e.PopNextTarget()
		if e.Target.Type == TargetNone {
			e.Mode = ModeUnitIdle
		}
	default:
		// ENTITY-family targets stay MOVE_FINISHED; combat.go re-evaluates
		// range/adjacency every tick and re-issues BeginMove if the target
		// has wandered out of reach.
	}
}
