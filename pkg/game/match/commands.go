package match

import (
	"goldrush/pkg/engine/grid"
	"goldrush/pkg/game/entity"
	"goldrush/pkg/game/input"
	"goldrush/pkg/game/status"
)

// Apply dispatches one player's decoded input against the match state.
// Rejections never surface as errors, per spec.md §4.H: the offending
// units' command is dropped and a Status event explains why.
func (st *State) Apply(playerID uint8, in input.Input) {
	switch {
	case in.Type.IsMoveVariant():
		st.applyMove(playerID, in)
	case in.Type.IsStopVariant():
		st.applyStop(playerID, in)
	case in.Type == input.TypeBuild:
		st.applyBuild(playerID, in)
	case in.Type == input.TypeBuildCancel:
		st.applyBuildCancel(playerID, in)
	case in.Type == input.TypeBuildingEnqueue:
		st.applyBuildingEnqueue(playerID, in)
	case in.Type == input.TypeBuildingDequeue:
		st.applyBuildingDequeue(playerID, in)
	case in.Type == input.TypeUnload:
		st.applyUnload(playerID, in)
	case in.Type == input.TypeSingleUnload:
		st.applySingleUnload(playerID, in)
	case in.Type == input.TypeRally:
		st.applyRally(playerID, in)
	case in.Type == input.TypeExplode:
		st.applyExplode(playerID, in)
	case in.Type == input.TypeChat:
		// Chat carries no simulation effect; left for the transport layer
		// to relay to a UI.
	}
}

// ownedUnits resolves ids to live entities belonging to playerID, silently
// dropping stale/foreign/dead ids rather than rejecting the whole command.
func (st *State) ownedUnits(playerID uint8, ids []uint16) []*entity.Entity {
	var out []*entity.Entity
	for _, id := range ids {
		e := st.Entities.Get(id)
		if e == nil || !e.IsAlive() || e.PlayerID != playerID {
			continue
		}
		out = append(out, e)
	}
	return out
}

func moveTarget(in input.Input) entity.Target {
	switch in.Type {
	case input.TypeMoveCell:
		return entity.Target{Type: entity.TargetCell, Cell: in.TargetCell}
	case input.TypeMoveEntity:
		return entity.Target{Type: entity.TargetEntity, ID: in.TargetID}
	case input.TypeMoveAttackCell:
		return entity.Target{Type: entity.TargetAttackCell, Cell: in.TargetCell}
	case input.TypeMoveAttackEntity:
		return entity.Target{Type: entity.TargetAttackEntity, ID: in.TargetID}
	case input.TypeMoveRepair:
		return entity.Target{Type: entity.TargetRepair, ID: in.TargetID}
	case input.TypeMoveUnload:
		return entity.Target{Type: entity.TargetUnload, Cell: in.TargetCell}
	case input.TypeMoveSmoke:
		return entity.Target{Type: entity.TargetSmoke, Cell: in.TargetCell}
	default:
		return entity.Target{}
	}
}

func (st *State) applyMove(playerID uint8, in input.Input) {
	target := moveTarget(in)
	for _, e := range st.ownedUnits(playerID, in.EntityIDs) {
		if in.Shift && e.Target.Type != entity.TargetNone {
			e.TargetQueue = append(e.TargetQueue, target)
			continue
		}
		e.ClearOrders()
		e.Target = target
		e.Mode = entity.ModeUnitIdle
	}
}

func (st *State) applyStop(playerID uint8, in input.Input) {
	for _, e := range st.ownedUnits(playerID, in.EntityIDs) {
		e.ClearOrders()
		e.Mode = entity.ModeUnitIdle
		if in.Type == input.TypeDefend {
			e.Flags |= entity.FlagHoldPosition
		} else {
			e.Flags &^= entity.FlagHoldPosition
		}
	}
}

func (st *State) applyBuild(playerID uint8, in input.Input) {
	buildingType := entity.Type(in.BuildingType)
	data := entity.DataTable[buildingType]

	if !st.Grid.InBoundsRect(in.TargetCell, data.CellSize) ||
		!st.Grid.IsCellRectEqualTo(in.TargetCell, data.CellSize, grid.Empty) {
		st.Status.Emit(status.CannotBuildHere, playerID, st.Tick)
		return
	}
	if !st.Players[playerID].SpendGold(data.GoldCost) {
		st.Status.Emit(status.NotEnoughGold, playerID, st.Tick)
		return
	}

	building := entity.NewBuildingInProgress(buildingType, playerID, in.TargetCell)
	id := st.Entities.Insert(building)
	st.Grid.SetCellRect(in.TargetCell, data.CellSize, grid.EncodeEntity(id))

	for _, e := range st.ownedUnits(playerID, in.EntityIDs) {
		e.ClearOrders()
		e.Target = entity.Target{
			Type:         entity.TargetBuild,
			UnitCell:     e.Cell,
			BuildingCell: in.TargetCell,
			BuildingType: buildingType,
		}
		e.Mode = entity.ModeUnitIdle
	}
}

func (st *State) applyBuildCancel(playerID uint8, in input.Input) {
	building := st.Entities.Get(in.BuildingID)
	if building == nil || building.PlayerID != playerID || building.Mode != entity.ModeBuildingInProgress {
		return
	}
	refund := entity.CancelBuildRefund(building)
	buildingCell := building.Cell
	st.Players[playerID].RefundGold(refund)
	st.Grid.SetCellRect(buildingCell, building.CellSize(), grid.Empty)
	st.Entities.Remove(in.BuildingID)

	st.Entities.Each(func(id entity.EntityID, e *entity.Entity) {
		if e.PlayerID == playerID && e.Target.Type == entity.TargetBuild && e.Target.BuildingCell == buildingCell {
			e.ClearOrders()
			e.Mode = entity.ModeUnitIdle
		}
	})
}

func (st *State) applyBuildingEnqueue(playerID uint8, in input.Input) {
	building := st.Entities.Get(in.BuildingID)
	if building == nil || building.PlayerID != playerID {
		return
	}
	item := entity.BuildingQueueItem{Type: entity.BuildingQueueItemType(in.ItemType)}
	if item.Type == entity.BuildingQueueItemUnit {
		item.Unit = entity.Type(in.ItemValue)
	} else {
		item.Upgrade = in.ItemValue
	}
	if !entity.EnqueueBuilding(st.Players[playerID], building, item) {
		st.Status.Emit(status.NotEnoughGold, playerID, st.Tick)
	}
}

func (st *State) applyBuildingDequeue(playerID uint8, in input.Input) {
	building := st.Entities.Get(in.BuildingID)
	if building == nil || building.PlayerID != playerID {
		return
	}
	entity.DequeueBuilding(st.Players[playerID], building, int(in.DequeueIndex))
}

func (st *State) applyUnload(playerID uint8, in input.Input) {
	for _, carrier := range st.ownedUnits(playerID, in.EntityIDs) {
		if stuck := entity.UnloadEvery(st.Grid, st.Entities, carrier); len(stuck) > 0 {
			st.Status.Emit(status.NoUnloadSpace, playerID, st.Tick)
		}
	}
}

func (st *State) applySingleUnload(playerID uint8, in input.Input) {
	if len(in.EntityIDs) == 0 {
		return
	}
	carrierID := in.EntityIDs[0]
	carrier := st.Entities.Get(carrierID)
	if carrier == nil || carrier.PlayerID != playerID {
		return
	}
	unit := st.Entities.Get(in.UnitID)
	if unit == nil || unit.GarrisonID != carrierID {
		return
	}
	if !entity.Unload(st.Grid, carrier, unit, in.UnitID) {
		st.Status.Emit(status.NoUnloadSpace, playerID, st.Tick)
	}
}

func (st *State) applyRally(playerID uint8, in input.Input) {
	for _, building := range st.ownedUnits(playerID, in.EntityIDs) {
		if !building.Type.IsBuilding() {
			continue
		}
		building.RallyPoint = in.RallyPoint
	}
}

func (st *State) applyExplode(playerID uint8, in input.Input) {
	for _, mine := range st.ownedUnits(playerID, in.EntityIDs) {
		if mine.Type != entity.TypeLandMine {
			continue
		}
		mine.Mode = entity.ModeMinePrime
	}
}
