package grid

import "goldrush/pkg/engine/fixed"

// rampCells is kept as an auxiliary bitset alongside tiles rather than a
// field on Tile, since spec.md's Tile is exactly {sprite_index, elevation};
// the map baker (pkg/game/mapgen) marks a cell as a ramp the moment it
// replaces a wall tile with a stair tile.
//
// Stored on Grid rather than Tile to avoid growing the tile struct for a
// baking-time-only concern.
type rampSet struct {
	flags []bool
}

// IsTileRamp reports whether c is part of a ramp (stair) tile.
func (g *Grid) IsTileRamp(c fixed.Cell) bool {
	if g.ramps.flags == nil {
		return false
	}
	return g.ramps.flags[g.index(c)]
}

// SetRamp marks or unmarks c as a ramp tile.
func (g *Grid) SetRamp(c fixed.Cell, isRamp bool) {
	if g.ramps.flags == nil {
		g.ramps.flags = make([]bool, len(g.cells))
	}
	g.ramps.flags[g.index(c)] = isRamp
}

// UnitLookup answers whether an encoded entity id refers to a live unit
// (as opposed to a building/mine/gold patch), and if so, whether that unit
// is currently passing through its cell in a way that makes it walkable
// under the gold_walk exception (mode is "out of mine" or actively mining).
// The occupancy layer is a leaf relative to the entity package, so this
// small callback interface is injected rather than importing entity
// directly (see DESIGN.md).
type UnitLookup interface {
	IsUnit(id uint16) bool
	IsGoldWalkExempt(id uint16) bool
}

// IsCellRectOccupied implements spec.md §4.D's occupancy predicate over a
// size×size rect anchored at cell. origin is the querying entity's own
// cell (pass Cell{-1,-1} to disable the "same entity" exception). A unit
// blocks when origin is farther than manhattan 5 from its cell, or when
// origin is Cell{-1,-1}; a unit within that distance does not block. When
// goldWalk is true, a unit actively mining or walking out of a mine does
// not block the cell it stands on, whatever its distance.
func (g *Grid) IsCellRectOccupied(cell fixed.Cell, size int32, origin fixed.Cell, goldWalk bool, units UnitLookup) bool {
	originIsSet := !(origin.X == -1 && origin.Y == -1)

	for y := cell.Y; y < cell.Y+size; y++ {
		for x := cell.X; x < cell.X+size; x++ {
			at := fixed.Cell{X: x, Y: y}
			v := g.cells[g.index(at)]
			if v.IsBlockingSentinel() {
				return true
			}
			if v == Empty {
				continue
			}
			// v encodes an entity id.
			id := DecodeEntity(v)
			if units == nil || !units.IsUnit(id) {
				return true
			}
			if goldWalk && units.IsGoldWalkExempt(id) {
				continue
			}
			if !originIsSet || fixed.Manhattan(origin, at) > 5 {
				return true
			}
		}
	}
	return false
}

// RevealChecker reports whether a cell is currently fogged-in (sight > 0)
// for the given team. Injected rather than importing pkg/engine/fog
// directly to avoid a grid->fog dependency; fog already depends on grid.
type RevealChecker interface {
	IsRevealed(team uint8, cell fixed.Cell) bool
}

// IsCellRectRevealed reports whether any cell in a size×size rect anchored
// at cell is currently revealed for team, per the given checker.
func (g *Grid) IsCellRectRevealed(team uint8, cell fixed.Cell, size int32, checker RevealChecker) bool {
	for y := cell.Y; y < cell.Y+size; y++ {
		for x := cell.X; x < cell.X+size; x++ {
			if checker.IsRevealed(team, fixed.Cell{X: x, Y: y}) {
				return true
			}
		}
	}
	return false
}
