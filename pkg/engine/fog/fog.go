// Package fog implements per-team visibility: sight/detection counters over
// the grid, maintained by raycasting outward from a revealing occupant's
// cell, plus a remembered-entity snapshot taken the moment a cell fades back
// to hidden. Ported from the source's map_fog_update (spec.md §4.F).
package fog

import (
	"goldrush/pkg/engine/fixed"
	"goldrush/pkg/engine/grid"
)

// RememberedEntity is a frozen snapshot of a non-unit, selectable occupant
// (buildings, gold mines, gold patches) taken the instant its cell stops
// being revealed. Renderers use it to keep drawing "last seen" structures
// inside fogged terrain.
type RememberedEntity struct {
	SpriteIndex uint16
	Frame       uint16
	Position    fixed.FVec
	RecolorID   uint8
	Cell        fixed.Cell
	CellSize    int32
}

// Snapshotter produces a RememberedEntity for an occupant id, and reports
// false if that id does not refer to a rememberable occupant (units and
// land mines are never remembered, per spec.md §4.F).
type Snapshotter interface {
	Snapshot(id uint16) (RememberedEntity, bool)
}

// Grid is the subset of grid.Grid the fog raycaster reads.
type Grid interface {
	InBounds(c fixed.Cell) bool
	Tile(c fixed.Cell) grid.Tile
	Cell(c fixed.Cell) grid.Value
	MineAt(c fixed.Cell) uint16
}

// State holds per-team fog/detection counters and remembered-entity tables
// for one map of the given dimensions.
type State struct {
	width, height int32
	numTeams      int

	fogCounters       [][]int32
	detectionCounters [][]int32
	remembered        []map[uint16]RememberedEntity

	dirty bool
}

// NewState allocates fog state for numTeams teams over a width x height map.
// Every cell starts fully hidden (counter 0).
func NewState(width, height int32, numTeams int) *State {
	n := int(width) * int(height)
	s := &State{
		width:             width,
		height:            height,
		numTeams:          numTeams,
		fogCounters:       make([][]int32, numTeams),
		detectionCounters: make([][]int32, numTeams),
		remembered:        make([]map[uint16]RememberedEntity, numTeams),
	}
	for t := 0; t < numTeams; t++ {
		s.fogCounters[t] = make([]int32, n)
		s.detectionCounters[t] = make([]int32, n)
		s.remembered[t] = make(map[uint16]RememberedEntity)
	}
	return s
}

func (s *State) index(c fixed.Cell) int {
	return int(c.X) + int(c.Y)*int(s.width)
}

// FogValue returns the raw fog counter for a cell (0 = hidden, >0 = the
// number of overlapping reveals currently covering it).
func (s *State) FogValue(team uint8, c fixed.Cell) int32 {
	return s.fogCounters[team][s.index(c)]
}

// IsRevealed reports whether a cell is currently covered by at least one
// reveal for team. Implements grid.RevealChecker.
func (s *State) IsRevealed(team uint8, c fixed.Cell) bool {
	return s.fogCounters[team][s.index(c)] > 0
}

// IsDetected reports whether a cell is covered by at least one
// detection-capable reveal for team (used to see stealthed occupants).
func (s *State) IsDetected(team uint8, c fixed.Cell) bool {
	return s.detectionCounters[team][s.index(c)] > 0
}

// Remembered returns the remembered-entity snapshot for id under team, if any.
func (s *State) Remembered(team uint8, id uint16) (RememberedEntity, bool) {
	e, ok := s.remembered[team][id]
	return e, ok
}

// TakeDirty reports whether any reveal changed fog state since the last
// call, and clears the flag. Mirrors the source's single "is_fog_dirty"
// side-channel boolean, which the renderer polls once per frame rather than
// the simulation pushing a notification per cell.
func (s *State) TakeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}
