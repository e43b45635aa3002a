package entity

// buildHealthPerTick is the health credited to a building under
// construction per adjacent builder per tick; builders are additive, so
// two builders finish a building in half the time of one.
const buildHealthPerTick = 4

// UpdateBuild credits a building's health while builder stands adjacent to
// it in BUILD mode. Returns true once the building reaches full health.
func UpdateBuild(building *Entity) bool {
	max := DataTable[building.Type].MaxHealth
	if building.Health >= max {
		building.Mode = ModeBuildingFinished
		return true
	}
	building.Health += buildHealthPerTick
	if building.Health >= max {
		building.Health = max
		building.Mode = ModeBuildingFinished
		return true
	}
	return false
}

// repairHealthPerTick is the health credited to a damaged building per
// adjacent repairer per tick, matching buildHealthPerTick's rate.
const repairHealthPerTick = 4

// UpdateRepair credits health to a damaged building while a unit stands
// adjacent in REPAIR mode, tracking the cumulative amount in the
// repairer's active target. Returns true once the building is back to
// full health.
func UpdateRepair(e *Entity, building *Entity) bool {
	max := DataTable[building.Type].MaxHealth
	if building.Health >= max {
		return true
	}
	credit := repairHealthPerTick
	if building.Health+int32(credit) > max {
		credit = int(max - building.Health)
	}
	building.Health += int32(credit)
	e.Target.HealthRepaired += uint32(credit)
	return building.Health >= max
}

// CancelBuildRefund computes the gold refunded when construction is
// cancelled early: cost * (health / max_health), rounded down to an
// integer, per spec.md §4.H.
func CancelBuildRefund(building *Entity) uint32 {
	data := DataTable[building.Type]
	if data.MaxHealth == 0 {
		return 0
	}
	refund := uint64(data.GoldCost) * uint64(building.Health) / uint64(data.MaxHealth)
	return uint32(refund)
}
