package entity

import (
	"goldrush/pkg/engine/fixed"
	"goldrush/pkg/engine/grid"
)

// UnloadAll is the sentinel unit id meaning "unload every garrisoned unit"
// rather than a single specific one, per spec.md §4.H / §6.
const UnloadAll EntityID = 0xFFFF

// Garrison moves unit into carrier: removes it from occupancy, appends it
// to the carrier's roster, and records its garrison_id. Rejects if the
// carrier is already at capacity.
func Garrison(g OccupancyGrid, carrier, unit *Entity, unitID EntityID) bool {
	capacity := DataTable[carrier.Type].GarrisonCapacity
	used := uint32(0)
	for range carrier.GarrisonedUnits {
		used++
	}
	size := DataTable[unit.Type].GarrisonSize
	if used+size > capacity {
		return false
	}
	g.SetCellRect(unit.Cell, unit.CellSize(), grid.Empty)
	carrier.GarrisonedUnits = append(carrier.GarrisonedUnits, unitID)
	unit.GarrisonID = carrier.selfID
	return true
}

// Unload places one garrisoned unit back on the map at a free cell
// adjacent to the carrier. Emits no status event itself; callers surface
// the rejection (spec.md §4.H: "rejects if none exists").
func Unload(g OccupancyGrid, carrier *Entity, unit *Entity, unitID EntityID) bool {
	cell, ok := findFreeAdjacentCell(g, carrier.Cell, carrier.CellSize(), unit.CellSize())
	if !ok {
		return false
	}
	unit.Cell = cell
	unit.Position = fixed.FVecFromCell(cell)
	unit.GarrisonID = IDNull
	g.SetCellRect(cell, unit.CellSize(), grid.EncodeEntity(unitID))
	for i, id := range carrier.GarrisonedUnits {
		if id == unitID {
			carrier.GarrisonedUnits = append(carrier.GarrisonedUnits[:i], carrier.GarrisonedUnits[i+1:]...)
			break
		}
	}
	return true
}

// UnloadEvery attempts to unload every garrisoned unit on carrier, in
// roster order, trying each unit even after an earlier one found no free
// cell. Returns the ids that failed to find space (still garrisoned).
func UnloadEvery(g OccupancyGrid, store *Store, carrier *Entity) []EntityID {
	var stuck []EntityID
	roster := append([]EntityID(nil), carrier.GarrisonedUnits...)
	for _, id := range roster {
		unit := store.Get(id)
		if unit == nil {
			continue
		}
		if !Unload(g, carrier, unit, id) {
			stuck = append(stuck, id)
		}
	}
	return stuck
}
