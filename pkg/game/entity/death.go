package entity

import "goldrush/pkg/engine/grid"

// deathFadeTicks is how long a unit's corpse lingers in DEATH_FADE before
// it is removed (DEATH itself lasts a single update).
const deathFadeTicks = 30

// UpdateDeath advances a dying unit through DEATH -> DEATH_FADE, vacating
// its occupancy cell the moment it enters DEATH (it no longer blocks
// movement or targeting while fading). Returns true once the entity should
// be removed from the store.
func UpdateDeath(g OccupancyGrid, e *Entity) bool {
	switch e.Mode {
	case ModeUnitDeath:
		g.SetCellRect(e.Cell, e.CellSize(), grid.Empty)
		e.Mode = ModeUnitDeathFade
		e.Timer = deathFadeTicks
		return false
	case ModeUnitDeathFade:
		if e.Timer > 0 {
			e.Timer--
			return false
		}
		return true
	default:
		return false
	}
}

// RemoveGarrisonedDeath removes a garrisoned unit that dies immediately
// (it never occupies the grid, so there is no occupancy to vacate), per
// spec.md §4.H.
func RemoveGarrisonedDeath(carrier *Entity, unitID EntityID) {
	for i, id := range carrier.GarrisonedUnits {
		if id == unitID {
			carrier.GarrisonedUnits = append(carrier.GarrisonedUnits[:i], carrier.GarrisonedUnits[i+1:]...)
			return
		}
	}
}

// UpdateBuildingDestroyed advances a destroyed building's wreck fade timer.
// Returns true once the wreck should be removed and its cell freed.
func UpdateBuildingDestroyed(g OccupancyGrid, building *Entity) bool {
	if building.Timer == 0 {
		building.Timer = BuildingFadeDuration
		return false
	}
	building.Timer--
	if building.Timer == 0 {
		g.SetCellRect(building.Cell, building.CellSize(), grid.Empty)
		return true
	}
	return false
}
