package entity

import (
	"goldrush/pkg/engine/fixed"
)

// Entity is the tagged record for every simulated object: units, buildings,
// mines, gold patches, and land mines all share this one struct, dispatched
// on Type/Mode via explicit switches in movement.go/combat.go/etc. Mirrors
// the source's entity_t, split so render-only fields (entity_get_sprite,
// animation frame resolution) live outside the simulation core.
type Entity struct {
	Type     Type
	Mode     Mode
	PlayerID uint8
	Flags    Flags

	Cell      fixed.Cell
	Position  fixed.FVec
	Direction fixed.Direction

	Health int32

	Target            Target
	TargetQueue       []Target
	RememberedGold    Target
	Path              []fixed.Cell
	Queue             []BuildingQueueItem
	RallyPoint        fixed.Cell
	PathfindAttempts  uint32
	Timer             uint32

	GarrisonedUnits []EntityID
	GarrisonID      EntityID
	CooldownTimer   int32

	GoldHeld    uint32
	GoldPatchID uint32

	TakingDamageCounter uint32
	TakingDamageTimer   uint32
	HealthRegenTimer    uint32

	// selfID lets an entity re-stamp its own occupancy cell during movement
	// without the Store handing a back-reference through every call.
	selfID EntityID
}

// NewUnit constructs a freshly-trained unit of typ for player at cell.
func NewUnit(typ Type, player uint8, cell fixed.Cell) Entity {
	data := DataTable[typ]
	return Entity{
		Type:        typ,
		Mode:        ModeUnitIdle,
		PlayerID:    player,
		Cell:        cell,
		Position:    fixed.FVecFromCell(cell),
		Health:      data.MaxHealth,
		GoldPatchID: GoldPatchIDNull,
		GarrisonID:  IDNull,
	}
}

// NewBuildingInProgress constructs a building under construction at cell
// with zero health (builders will add to it over time, per spec.md §4.H).
func NewBuildingInProgress(typ Type, player uint8, cell fixed.Cell) Entity {
	return Entity{
		Type:        typ,
		Mode:        ModeBuildingInProgress,
		PlayerID:    player,
		Cell:        cell,
		Position:    fixed.FVecFromCell(cell),
		Health:      0,
		GoldPatchID: GoldPatchIDNull,
		GarrisonID:  IDNull,
	}
}

// NewGold constructs a gold patch entity holding the given amount.
func NewGold(cell fixed.Cell, goldHeld uint32) Entity {
	return Entity{
		Type:     TypeGold,
		Mode:     ModeGold,
		PlayerID: 255,
		Cell:     cell,
		Position: fixed.FVecFromCell(cell),
		Health:   DataTable[TypeGold].MaxHealth,
		GoldHeld: goldHeld,
		GoldPatchID: GoldPatchIDNull,
		GarrisonID:  IDNull,
	}
}

// NewMine constructs a neutral 3x3 gold mine deposit at cell holding the
// given amount, the map-generator's starter/extra gold patches (as opposed
// to NewGold's loose 1-cell pile).
func NewMine(cell fixed.Cell, goldHeld uint32) Entity {
	return Entity{
		Type:        TypeMine,
		Mode:        ModeGold,
		PlayerID:    255,
		Cell:        cell,
		Position:    fixed.FVecFromCell(cell),
		Health:      DataTable[TypeMine].MaxHealth,
		GoldHeld:    goldHeld,
		GoldPatchID: GoldPatchIDNull,
		GarrisonID:  IDNull,
	}
}

// NewBuildingFinished constructs an already-complete building at cell, for
// match bootstrap starting structures (a fresh in-progress construction
// site uses NewBuildingInProgress instead).
func NewBuildingFinished(typ Type, player uint8, cell fixed.Cell) Entity {
	data := DataTable[typ]
	return Entity{
		Type:        typ,
		Mode:        ModeBuildingFinished,
		PlayerID:    player,
		Cell:        cell,
		Position:    fixed.FVecFromCell(cell),
		Health:      data.MaxHealth,
		GoldPatchID: GoldPatchIDNull,
		GarrisonID:  IDNull,
	}
}

// CellSize returns the occupancy footprint for this entity's type.
func (e *Entity) CellSize() int32 {
	return DataTable[e.Type].CellSize
}

// IsAlive reports whether the entity still has health remaining. Its mode
// is not consulted.
func (e *Entity) IsAlive() bool {
	return e.Health > 0
}

// IsSelectable mirrors the source's entity_is_selectable: dead/fading/unarmed
// wrecks are not selectable by players but still occupy their cell.
func (e *Entity) IsSelectable() bool {
	switch e.Mode {
	case ModeUnitDeath, ModeUnitDeathFade, ModeBuildingDestroyed, ModeGoldMinedOut:
		return false
	default:
		return true
	}
}

// IsGarrisoned reports whether e currently rides inside a carrier.
func (e *Entity) IsGarrisoned() bool {
	return e.GarrisonID != IDNull
}

// DeathMode returns the mode a killing blow should move e into: a building
// lingers as a wreck obstacle (ModeBuildingDestroyed), while a unit or mine
// fades out and frees its cell (ModeUnitDeath).
func (e *Entity) DeathMode() Mode {
	if e.Type.IsBuilding() {
		return ModeBuildingDestroyed
	}
	return ModeUnitDeath
}

// ClearOrders drops the current target and the entire queued-order list,
// per spec.md §4.H's "cleared only on non-shift commands" rule. Callers
// append to TargetQueue directly for shift-append commands instead.
func (e *Entity) ClearOrders() {
	e.Target = Target{}
	e.TargetQueue = nil
	e.Path = nil
	e.PathfindAttempts = 0
}

// PopNextTarget clears the current target and, if the queue is non-empty,
// promotes its head to current. Reports whether a new target was promoted.
func (e *Entity) PopNextTarget() bool {
	e.Target = Target{}
	e.Path = nil
	e.PathfindAttempts = 0
	if len(e.TargetQueue) == 0 {
		return false
	}
	e.Target = e.TargetQueue[0]
	e.TargetQueue = e.TargetQueue[1:]
	return true
}
