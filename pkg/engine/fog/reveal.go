package fog

import (
	"goldrush/pkg/engine/fixed"
	"goldrush/pkg/engine/grid"
)

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// Update performs a Bresenham raycast from cell (a cellSize x cellSize rect)
// outward to the perimeter of a (2*sight+cellSize)-wide square, incrementing (reveal)
// or decrementing (conceal) the fog/detection counters for team along each
// ray, per spec.md §4.F. When increment is false (concealing), any occupant
// whose cell fades past the ray is frozen into the remembered-entity table
// via entities.
func (s *State) Update(g Grid, team uint8, cell fixed.Cell, cellSize int32, sight int32, increment, hasDetection bool, entities Snapshotter) {
	searchCorners := [4]fixed.Cell{
		cell.Sub(fixed.Cell{X: sight, Y: sight}),
		cell.Add(fixed.Cell{X: (cellSize - 1) + sight, Y: -sight}),
		cell.Add(fixed.Cell{X: (cellSize - 1) + sight, Y: (cellSize - 1) + sight}),
		cell.Add(fixed.Cell{X: -sight, Y: (cellSize - 1) + sight}),
	}

	for searchIndex := 0; searchIndex < 4; searchIndex++ {
		searchGoal := searchCorners[(searchIndex+1)%4]
		searchStep := fixed.DirectionXY[(searchIndex*2+2)%int(fixed.DirectionCount)]

		for lineEnd := searchCorners[searchIndex]; !lineEnd.Eq(searchGoal); lineEnd = lineEnd.Add(searchStep) {
			lineStart := fogLineStart(cell, cellSize, lineEnd)
			s.castRay(g, team, lineStart, lineEnd, sight, increment, hasDetection, entities)
		}
	}

	s.dirty = true
}

// fogLineStart implements the source's cell-size switch for where each ray
// originates: size 1 always starts at the single cell; size 3 always starts
// at its center subcell; sizes 2 and 4 clamp the ray's start to whichever
// side of the 2x2 center the line endpoint is nearer to.
func fogLineStart(cell fixed.Cell, cellSize int32, lineEnd fixed.Cell) fixed.Cell {
	switch cellSize {
	case 1:
		return cell
	case 3:
		return cell.Add(fixed.Cell{X: 1, Y: 1})
	case 2, 4:
		center := cell
		if cellSize == 4 {
			center = cell.Add(fixed.Cell{X: 1, Y: 1})
		}
		var start fixed.Cell
		switch {
		case lineEnd.X < center.X:
			start.X = center.X
		case lineEnd.X > center.X+1:
			start.X = center.X + 1
		default:
			start.X = lineEnd.X
		}
		switch {
		case lineEnd.Y < center.Y:
			start.Y = center.Y
		case lineEnd.Y > center.Y+1:
			start.Y = center.Y + 1
		default:
			start.Y = lineEnd.Y
		}
		return start
	default:
		return cell
	}
}

func (s *State) castRay(g Grid, team uint8, lineStart, lineEnd fixed.Cell, sight int32, increment, hasDetection bool, entities Snapshotter) {
	useXStep := abs32(lineEnd.X-lineStart.X) >= abs32(lineEnd.Y-lineStart.Y)

	var primaryRun, secondaryRun int32
	if useXStep {
		primaryRun = lineEnd.X - lineStart.X
		secondaryRun = lineEnd.Y - lineStart.Y
	} else {
		primaryRun = lineEnd.Y - lineStart.Y
		secondaryRun = lineEnd.X - lineStart.X
	}

	slope := abs32(2 * secondaryRun)
	slopeError := slope - abs32(primaryRun)

	var lineStep, lineOppositeStep fixed.Cell
	if useXStep {
		xSign := int32(1)
		if lineEnd.X < lineStart.X {
			xSign = -1
		}
		ySign := int32(1)
		if lineEnd.Y < lineStart.Y {
			ySign = -1
		}
		lineStep = fixed.Cell{X: xSign, Y: 0}
		lineOppositeStep = fixed.Cell{X: 0, Y: ySign}
	} else {
		ySign := int32(1)
		if lineEnd.Y < lineStart.Y {
			ySign = -1
		}
		xSign := int32(1)
		if lineEnd.X < lineStart.X {
			xSign = -1
		}
		lineStep = fixed.Cell{X: 0, Y: ySign}
		lineOppositeStep = fixed.Cell{X: xSign, Y: 0}
	}

	startTile := g.Tile(lineStart)
	sightSquared := int64(sight) * int64(sight)

	for lineCell := lineStart; !lineCell.Eq(lineEnd); lineCell = lineCell.Add(lineStep) {
		if !g.InBounds(lineCell) || fixed.EuclideanSquared(lineStart, lineCell) > sightSquared {
			break
		}

		idx := s.index(lineCell)
		if increment {
			s.fogCounters[team][idx]++
			if hasDetection {
				s.detectionCounters[team][idx]++
			}
		} else {
			s.fogCounters[team][idx]--
			if hasDetection {
				s.detectionCounters[team][idx]--
			}
			s.rememberOccupant(g, team, lineCell, entities)
		}

		if g.Tile(lineCell).Elevation > startTile.Elevation {
			break
		}

		slopeError += slope
		if slopeError >= 0 {
			lineCell = lineCell.Add(lineOppositeStep)
			slopeError -= 2 * abs32(primaryRun)
		}
	}
}

func (s *State) rememberOccupant(g Grid, team uint8, cell fixed.Cell, entities Snapshotter) {
	if entities == nil {
		return
	}

	id := g.MineAt(cell)
	if id == grid.IDNull {
		v := g.Cell(cell)
		if !v.IsEntity() {
			return
		}
		id = grid.DecodeEntity(v)
	}

	if snap, ok := entities.Snapshot(id); ok {
		s.remembered[team][id] = snap
	}
}
