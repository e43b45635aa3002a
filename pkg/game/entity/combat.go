package entity

import "goldrush/pkg/engine/grid"

// attackWindupTicks is how long the windup animation holds before the
// damage tick fires, matching the source's fixed attack-windup duration.
const attackWindupTicks = 15

// UpdateAttack advances a unit whose target is an enemy entity: it
// re-evaluates range every tick (targets move), moves into range if
// needed, and fires once the windup completes.
func UpdateAttack(g OccupancyGrid, units grid.UnitLookup, e *Entity, target *Entity, targetID EntityID) {
	if target == nil || !target.IsAlive() {
		e.PopNextTarget()
		e.Mode = ModeUnitIdle
		return
	}

	data := DataTable[e.Type].Unit
	inRange := ManhattanRange(e.Cell, target.Cell, data.RangeSquared) &&
		(data.MinRangeSquared == 0 || !ManhattanRange(e.Cell, target.Cell, data.MinRangeSquared))

	switch e.Mode {
	case ModeUnitAttackWindup, ModeUnitRangedAttackWindup:
		if !inRange {
			e.Mode = ModeUnitMoveFinished
			return
		}
		if e.Timer > 0 {
			e.Timer--
			return
		}
		if InflictDamage(target, data.Damage) {
			target.Mode = target.DeathMode()
		}
		e.CooldownTimer = data.AttackCooldown
		e.Mode = ModeUnitIdle
		if e.Flags&FlagHoldPosition == 0 {
			e.Target = Target{Type: TargetAttackEntity, ID: targetID, Cell: target.Cell}
		}
	default:
		if e.CooldownTimer > 0 {
			e.CooldownTimer--
			return
		}
		if !inRange {
			if e.Flags&FlagHoldPosition != 0 {
				return
			}
			BeginMove(g, units, e, target.Cell, false)
			return
		}
		if data.RangeSquared > 1 {
			e.Mode = ModeUnitRangedAttackWindup
		} else {
			e.Mode = ModeUnitAttackWindup
		}
		e.Timer = attackWindupTicks
	}
}
