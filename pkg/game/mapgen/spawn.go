package mapgen

import (
	"goldrush/pkg/engine/fixed"
	"goldrush/pkg/engine/grid"
)

const (
	spawnSearchRect = 11
	spawnRampRadius = 2
	// MaxPlayers bounds the fixed diagonal slot table item 9 searches
	// from; spawns are permuted onto these slots rather than onto player
	// ids directly, so map position never correlates with join order.
	MaxPlayers = 4
)

// spawnOffset returns the fixed search-start point for slot i (NE, SE, SW,
// NW, in that order), inset a quarter of the map size from each edge.
func spawnOffset(width, height int32, slot int) fixed.Cell {
	qx, qy := width/4, height/4
	switch slot {
	case 0: // NE
		return fixed.Cell{X: width - qx, Y: qy}
	case 1: // SE
		return fixed.Cell{X: width - qx, Y: height - qy}
	case 2: // SW
		return fixed.Cell{X: qx, Y: height - qy}
	default: // NW
		return fixed.Cell{X: qx, Y: qy}
	}
}

type placement struct {
	cell fixed.Cell
	size int32
}

func overlaps(a placement, b placement) bool {
	if a.cell.X+a.size <= b.cell.X || b.cell.X+b.size <= a.cell.X {
		return false
	}
	if a.cell.Y+a.size <= b.cell.Y || b.cell.Y+b.size <= a.cell.Y {
		return false
	}
	return true
}

// placeSpawns implements item 9: for each of MaxPlayers fixed diagonal
// slots, BFS outward for the nearest empty, ramp-clear, same-elevation
// spawnSearchRect square; drop a gold mine in its center, then search
// outward from the mine for the nearest hall footprint meeting the same
// constraints. Slots are then permuted onto the numPlayers actual players
// via the match LCG, with linear probing on collision.
func placeSpawns(g *grid.Grid, lcg *fixed.LCG, numPlayers int) (halls, mines []fixed.Cell) {
	var reserved []placement
	slotHalls := make([]fixed.Cell, MaxPlayers)
	slotMines := make([]fixed.Cell, MaxPlayers)

	for slot := 0; slot < MaxPlayers; slot++ {
		origin := spawnOffset(g.Width, g.Height, slot)
		areaCell, ok := findFreeRect(g, origin, spawnSearchRect, reserved, nil)
		if !ok {
			continue
		}
		mineOffset := (spawnSearchRect - MineSize) / 2
		mineCell := fixed.Cell{X: areaCell.X + mineOffset, Y: areaCell.Y + mineOffset}
		reserved = append(reserved, placement{cell: mineCell, size: MineSize})

		mineElevation := g.Tile(mineCell).Elevation
		hallCell, ok := findFreeRect(g, mineCell, HallSize, reserved, &mineElevation)
		if !ok {
			hallCell = mineCell
		} else {
			reserved = append(reserved, placement{cell: hallCell, size: HallSize})
		}

		slotMines[slot] = mineCell
		slotHalls[slot] = hallCell
	}

	order := permuteSlots(lcg, numPlayers)
	halls = make([]fixed.Cell, numPlayers)
	mines = make([]fixed.Cell, numPlayers)
	for p, slot := range order {
		halls[p] = slotHalls[slot]
		mines[p] = slotMines[slot]
	}
	return halls, mines
}

// permuteSlots assigns each of numPlayers players a distinct slot in
// [0, MaxPlayers), drawn via lcg_rand() % MaxPlayers with linear probing
// forward on collision.
func permuteSlots(lcg *fixed.LCG, numPlayers int) []int {
	taken := make([]bool, MaxPlayers)
	order := make([]int, numPlayers)
	for p := 0; p < numPlayers; p++ {
		slot := int(lcg.IntN(MaxPlayers))
		for taken[slot] {
			slot = (slot + 1) % MaxPlayers
		}
		taken[slot] = true
		order[p] = slot
	}
	return order
}

// findFreeRect searches outward in expanding square rings from origin for
// the nearest size×size rect that: lies in bounds, is wholly Empty
// occupancy, has no ramp tile within spawnRampRadius of its border, has
// uniform elevation, and doesn't overlap any already-reserved placement.
// If requireElevation is non-nil the rect's elevation must match it
// exactly (used when searching around an already-placed mine).
func findFreeRect(g *grid.Grid, origin fixed.Cell, size int32, reserved []placement, requireElevation *int8) (fixed.Cell, bool) {
	maxRadius := g.Width
	if g.Height > maxRadius {
		maxRadius = g.Height
	}
	for r := int32(0); r <= maxRadius; r++ {
		for _, c := range ringCells(origin, r) {
			if !g.InBoundsRect(c, size) {
				continue
			}
			if !g.IsCellRectSameElevation(c, size) {
				continue
			}
			if requireElevation != nil && g.Tile(c).Elevation != *requireElevation {
				continue
			}
			if !g.IsCellRectEqualTo(c, size, grid.Empty) {
				continue
			}
			if rampsNearby(g, c, size) {
				continue
			}
			candidate := placement{cell: c, size: size}
			conflict := false
			for _, other := range reserved {
				if overlaps(candidate, other) {
					conflict = true
					break
				}
			}
			if conflict {
				continue
			}
			return c, true
		}
	}
	return fixed.Cell{}, false
}

func rampsNearby(g *grid.Grid, c fixed.Cell, size int32) bool {
	for y := c.Y - spawnRampRadius; y < c.Y+size+spawnRampRadius; y++ {
		for x := c.X - spawnRampRadius; x < c.X+size+spawnRampRadius; x++ {
			at := fixed.Cell{X: x, Y: y}
			if !g.InBounds(at) {
				continue
			}
			if g.IsTileRamp(at) {
				return true
			}
		}
	}
	return false
}

// ringCells returns every cell at Chebyshev distance exactly r from
// center, in a fixed scan order (top row left-to-right, then sides
// top-to-bottom, then bottom row), so the search is deterministic.
func ringCells(center fixed.Cell, r int32) []fixed.Cell {
	if r == 0 {
		return []fixed.Cell{center}
	}
	var cells []fixed.Cell
	for x := center.X - r; x <= center.X+r; x++ {
		cells = append(cells, fixed.Cell{X: x, Y: center.Y - r})
	}
	for y := center.Y - r + 1; y <= center.Y+r-1; y++ {
		cells = append(cells, fixed.Cell{X: center.X - r, Y: y})
		cells = append(cells, fixed.Cell{X: center.X + r, Y: y})
	}
	for x := center.X - r; x <= center.X+r; x++ {
		cells = append(cells, fixed.Cell{X: x, Y: center.Y + r})
	}
	return cells
}
