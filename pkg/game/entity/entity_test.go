package entity

import (
	"testing"

	"goldrush/pkg/engine/fixed"
)

func TestNewUnitStartsAtFullHealth(t *testing.T) {
	e := NewUnit(TypeCowboy, 0, fixed.Cell{X: 2, Y: 2})
	if e.Health != DataTable[TypeCowboy].MaxHealth {
		t.Fatalf("health = %d, want %d", e.Health, DataTable[TypeCowboy].MaxHealth)
	}
	if e.Mode != ModeUnitIdle {
		t.Fatalf("mode = %v, want ModeUnitIdle", e.Mode)
	}
	if e.GarrisonID != IDNull {
		t.Fatalf("garrison id = %d, want IDNull", e.GarrisonID)
	}
}

func TestPopNextTargetPromotesQueueHead(t *testing.T) {
	e := Entity{
		Target:      Target{Type: TargetCell, Cell: fixed.Cell{X: 1, Y: 1}},
		TargetQueue: []Target{{Type: TargetAttackCell, Cell: fixed.Cell{X: 5, Y: 5}}},
	}
	if !e.PopNextTarget() {
		t.Fatal("expected a promoted target")
	}
	if e.Target.Type != TargetAttackCell || e.Target.Cell.X != 5 {
		t.Fatalf("target = %+v, want the queued AttackCell", e.Target)
	}
	if len(e.TargetQueue) != 0 {
		t.Fatalf("queue should be drained, got %d left", len(e.TargetQueue))
	}
}

func TestPopNextTargetOnEmptyQueueClearsTarget(t *testing.T) {
	e := Entity{Target: Target{Type: TargetCell}}
	if e.PopNextTarget() {
		t.Fatal("expected no promotion from an empty queue")
	}
	if e.Target.Type != TargetNone {
		t.Fatalf("target = %+v, want cleared", e.Target)
	}
}

func TestClearOrdersDropsQueueAndPath(t *testing.T) {
	e := Entity{
		Target:      Target{Type: TargetCell},
		TargetQueue: []Target{{Type: TargetCell}},
		Path:        []fixed.Cell{{X: 1}},
	}
	e.ClearOrders()
	if e.Target.Type != TargetNone || e.TargetQueue != nil || e.Path != nil {
		t.Fatalf("ClearOrders left state: %+v", e)
	}
}

func TestIsSelectableExcludesDeathAndWrecks(t *testing.T) {
	for _, m := range []Mode{ModeUnitDeath, ModeUnitDeathFade, ModeBuildingDestroyed, ModeGoldMinedOut} {
		e := Entity{Mode: m}
		if e.IsSelectable() {
			t.Errorf("mode %v should not be selectable", m)
		}
	}
	e := Entity{Mode: ModeUnitIdle}
	if !e.IsSelectable() {
		t.Fatal("idle unit should be selectable")
	}
}
