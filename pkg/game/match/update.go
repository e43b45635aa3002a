package match

import (
	"goldrush/pkg/engine/fixed"
	"goldrush/pkg/engine/grid"
	"goldrush/pkg/game/entity"
	"goldrush/pkg/game/lockstep"
)

// Tick advances the match by exactly one turn: apply this turn's commands,
// then advance projectiles, particles, map reveals, every entity, and
// finally remove anything that died this tick, per spec.md §4.J's fixed
// order.
func (st *State) Tick(applied []lockstep.AppliedInput) {
	for _, a := range applied {
		st.Apply(a.Player, a.Input)
	}

	st.advanceProjectiles()
	st.advanceParticles()
	st.advanceReveals()
	st.advanceEntities()
	st.removeDead()

	st.Tick++
}

func (st *State) advanceProjectiles() {
	live := st.Projectiles[:0]
	for i := range st.Projectiles {
		p := &st.Projectiles[i]
		if entity.AdvanceProjectile(p) {
			if target := st.Entities.Get(p.TargetID); target != nil && target.IsAlive() {
				if entity.InflictDamage(target, p.Damage) {
					target.Mode = target.DeathMode()
				}
			}
			st.Particles = append(st.Particles, entity.Particle{Kind: p.OnArrive})
			continue
		}
		live = append(live, *p)
	}
	st.Projectiles = live
}

func (st *State) advanceParticles() {
	live := st.Particles[:0]
	for i := range st.Particles {
		if !entity.AdvanceParticle(&st.Particles[i]) {
			live = append(live, st.Particles[i])
		}
	}
	st.Particles = live
}

// advanceReveals keeps every team's fog counters matching the current set
// of sighted, living entities: an entity whose cell/sight hasn't changed
// since last tick is left alone, a moved or newly-sighted one is
// re-applied (old rect decremented, new rect incremented), and one that
// died or stopped revealing is decremented and forgotten. This mirrors
// fog.Update's increment/decrement contract without accumulating an
// unbounded counter for a stationary revealer.
func (st *State) advanceReveals() {
	current := make(map[entity.EntityID]revealInfo)
	st.Entities.Each(func(id entity.EntityID, e *entity.Entity) {
		if !e.IsAlive() || !e.IsSelectable() || e.Flags&entity.FlagInvisible != 0 {
			return
		}
		data := entity.DataTable[e.Type]
		if data.Sight == 0 {
			return
		}
		current[id] = revealInfo{
			team:         e.PlayerID,
			cell:         e.Cell,
			cellSize:     e.CellSize(),
			sight:        data.Sight,
			hasDetection: data.HasDetection,
		}
	})

	for id, prev := range st.reveals {
		if next, ok := current[id]; ok && next == prev {
			continue
		}
		st.Fog.Update(st.Grid, prev.team, prev.cell, prev.cellSize, prev.sight, false, prev.hasDetection, st.Entities)
	}
	for id, next := range current {
		if prev, ok := st.reveals[id]; ok && prev == next {
			continue
		}
		st.Fog.Update(st.Grid, next.team, next.cell, next.cellSize, next.sight, true, next.hasDetection, st.Entities)
	}
	st.reveals = current
}

// spawnRequest is a unit-train completion recorded during advanceEntities
// and applied after Each finishes, since idarray.Store forbids inserting
// while iterating.
type spawnRequest struct {
	unit       entity.Type
	playerID   uint8
	cell       fixed.Cell
	rallyPoint fixed.Cell
	hasRally   bool
}

func (st *State) advanceEntities() {
	var spawns []spawnRequest
	st.Entities.Each(func(id entity.EntityID, e *entity.Entity) {
		st.dispatchEntity(id, e, &spawns)
	})
	for _, s := range spawns {
		u := entity.NewUnit(s.unit, s.playerID, s.cell)
		uid := st.Entities.Insert(u)
		spawned := st.Entities.Get(uid)
		st.Grid.SetCellRect(s.cell, spawned.CellSize(), grid.EncodeEntity(uid))
		if s.hasRally {
			spawned.Target = entity.Target{Type: entity.TargetCell, Cell: s.rallyPoint}
		}
	}
}

// dispatchEntity resolves an idle entity's pending Target into motion
// (or an immediate mode change for adjacency-free orders) and advances
// whichever state machine its current Mode belongs to, mirroring the
// source's single big entity_update switch.
func (st *State) dispatchEntity(id entity.EntityID, e *entity.Entity, spawns *[]spawnRequest) {
	if e.Mode == entity.ModeUnitIdle && e.Target.Type != entity.TargetNone {
		st.beginTarget(e)
	}

	switch e.Mode {
	case entity.ModeUnitMove, entity.ModeUnitMoveBlocked:
		entity.UpdateMove(st.Grid, st.Entities, e, st.isGoldWalk(e))
	case entity.ModeUnitMoveFinished:
		st.resolveMoveFinished(id, e)
	case entity.ModeUnitAttackWindup, entity.ModeUnitRangedAttackWindup:
		st.updateCombat(id, e)
	case entity.ModeUnitBuild:
		st.updateBuilderInPlace(e)
	case entity.ModeUnitRepair:
		st.updateRepairerInPlace(e)
	case entity.ModeUnitMine:
		st.updateMiner(e)
	case entity.ModeBuildingInProgress:
		// Credited by updateBuilderInPlace while a builder stands adjacent;
		// nothing to do for the building itself each tick.
	case entity.ModeBuildingFinished:
		if len(e.Queue) > 0 {
			st.advanceQueue(e, spawns)
		}
	case entity.ModeBuildingDestroyed:
		entity.UpdateBuildingDestroyed(st.Grid, e)
	case entity.ModeUnitDeath, entity.ModeUnitDeathFade:
		entity.UpdateDeath(st.Grid, e)
	}
}

// isGoldWalk reports whether e is entitled to the gold-patch occupancy
// exception (a miner standing on its own remembered patch).
func (st *State) isGoldWalk(e *entity.Entity) bool {
	return e.Type == entity.TypeMiner && e.Target.Type == entity.TargetGold
}

func (st *State) beginTarget(e *entity.Entity) {
	switch e.Target.Type {
	case entity.TargetCell, entity.TargetGold:
		entity.BeginMove(st.Grid, st.Entities, e, e.Target.Cell, st.isGoldWalk(e))
	case entity.TargetAttackCell:
		entity.BeginMove(st.Grid, st.Entities, e, e.Target.Cell, false)
	case entity.TargetEntity, entity.TargetAttackEntity, entity.TargetRepair:
		if target := st.Entities.Get(e.Target.ID); target != nil {
			entity.BeginMove(st.Grid, st.Entities, e, target.Cell, false)
		}
	case entity.TargetUnload, entity.TargetSmoke:
		entity.BeginMove(st.Grid, st.Entities, e, e.Target.Cell, false)
	case entity.TargetBuild:
		entity.BeginMove(st.Grid, st.Entities, e, e.Target.BuildingCell, false)
	}
}

// resolveMoveFinished re-evaluates what an entity that just finished
// travelling should do next: fight, mine, build, or simply pop its order.
func (st *State) resolveMoveFinished(id entity.EntityID, e *entity.Entity) {
	switch e.Target.Type {
	case entity.TargetAttackEntity, entity.TargetEntity:
		target := st.Entities.Get(e.Target.ID)
		entity.UpdateAttack(st.Grid, st.Entities, e, target, e.Target.ID)
	case entity.TargetGold:
		e.Mode = entity.ModeUnitMine
	case entity.TargetBuild:
		e.Mode = entity.ModeUnitBuild
	case entity.TargetRepair:
		e.Mode = entity.ModeUnitRepair
	default:
		entity.FinishMove(e)
	}
}

func (st *State) updateCombat(id entity.EntityID, e *entity.Entity) {
	target := st.Entities.Get(e.Target.ID)
	entity.UpdateAttack(st.Grid, st.Entities, e, target, e.Target.ID)
}

// updateBuilderInPlace credits the building under e's TargetBuild order,
// then idles e once the building finishes.
func (st *State) updateBuilderInPlace(e *entity.Entity) {
	if e.Target.Type != entity.TargetBuild {
		e.Mode = entity.ModeUnitIdle
		return
	}
	building := st.buildingAt(e.Target.BuildingCell)
	if building == nil {
		e.ClearOrders()
		e.Mode = entity.ModeUnitIdle
		return
	}
	if entity.UpdateBuild(building) {
		e.ClearOrders()
		e.Mode = entity.ModeUnitIdle
	}
}

// updateRepairerInPlace credits e's repair target building, then idles e
// once it's back to full health or the target has vanished.
func (st *State) updateRepairerInPlace(e *entity.Entity) {
	building := st.Entities.Get(e.Target.ID)
	if building == nil || !building.IsAlive() {
		e.ClearOrders()
		e.Mode = entity.ModeUnitIdle
		return
	}
	if entity.UpdateRepair(e, building) {
		e.ClearOrders()
		e.Mode = entity.ModeUnitIdle
	}
}

func (st *State) updateMiner(e *entity.Entity) {
	patch := st.goldPatchAt(e.Target.Cell)
	entity.UpdateMine(e, patch)
	if patch != nil {
		entity.RememberGoldPatch(e, uint32(st.idOfPatch(patch)), e.Target.Cell)
	}
}

func (st *State) advanceQueue(building *entity.Entity, spawns *[]spawnRequest) {
	player := st.Players[building.PlayerID]
	unit, cell, spawned := entity.AdvanceQueue(player, st.Entities, st.Grid, building)
	if !spawned {
		return
	}
	req := spawnRequest{unit: unit, playerID: building.PlayerID, cell: cell}
	if building.RallyPoint != (fixed.Cell{}) {
		req.hasRally = true
		req.rallyPoint = building.RallyPoint
	}
	*spawns = append(*spawns, req)
}

// buildingAt finds the live building entity whose footprint contains cell.
func (st *State) buildingAt(cell fixed.Cell) *entity.Entity {
	v := st.Grid.Cell(cell)
	if !v.IsEntity() {
		return nil
	}
	e := st.Entities.Get(grid.DecodeEntity(v))
	if e == nil || !e.Type.IsBuilding() {
		return nil
	}
	return e
}

// goldPatchAt finds the live gold/mine entity whose footprint contains cell.
func (st *State) goldPatchAt(cell fixed.Cell) *entity.Entity {
	v := st.Grid.Cell(cell)
	if !v.IsEntity() {
		return nil
	}
	e := st.Entities.Get(grid.DecodeEntity(v))
	if e == nil || (e.Type != entity.TypeMine && e.Type != entity.TypeGold) {
		return nil
	}
	return e
}

func (st *State) idOfPatch(patch *entity.Entity) entity.EntityID {
	v := st.Grid.Cell(patch.Cell)
	if !v.IsEntity() {
		return entity.IDNull
	}
	return grid.DecodeEntity(v)
}

func (st *State) removeDead() {
	var toRemove []entity.EntityID
	st.Entities.Each(func(id entity.EntityID, e *entity.Entity) {
		switch e.Mode {
		case entity.ModeUnitDeathFade:
			if e.Health <= 0 && e.Timer == 0 {
				toRemove = append(toRemove, id)
			}
		case entity.ModeBuildingDestroyed:
			if e.Timer == 0 {
				toRemove = append(toRemove, id)
			}
		case entity.ModeGoldMinedOut:
			toRemove = append(toRemove, id)
		}
	})
	for _, id := range toRemove {
		st.Entities.Remove(id)
	}
}
