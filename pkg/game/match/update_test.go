package match

import (
	"testing"

	"goldrush/pkg/engine/fixed"
	"goldrush/pkg/engine/grid"
	"goldrush/pkg/game/entity"
	"goldrush/pkg/game/input"
	"goldrush/pkg/game/lockstep"
)

func TestTickAdvancesReveal(t *testing.T) {
	st := newTestState(30, 30, 1)
	id := spawn(st, entity.TypeCowboy, 0, fixed.Cell{X: 15, Y: 15})
	_ = id

	st.Tick(nil)

	if !st.Fog.IsRevealed(0, fixed.Cell{X: 15, Y: 15}) {
		t.Fatal("a unit's own cell should be revealed for its team")
	}
	if st.Fog.IsRevealed(1, fixed.Cell{X: 15, Y: 15}) {
		t.Fatal("the cell should not be revealed for a team with no units nearby")
	}
}

func TestTickConcealsAfterUnitDies(t *testing.T) {
	st := newTestState(30, 30, 1)
	id := spawn(st, entity.TypeCowboy, 0, fixed.Cell{X: 15, Y: 15})
	st.Tick(nil)
	if !st.Fog.IsRevealed(0, fixed.Cell{X: 15, Y: 15}) {
		t.Fatal("setup: expected the cell to be revealed before death")
	}

	e := st.Entities.Get(id)
	e.Health = 0
	e.Mode = entity.ModeUnitDeath

	for i := 0; i < 64 && st.Entities.Get(id) != nil; i++ {
		st.Tick(nil)
	}

	if st.Entities.Get(id) != nil {
		t.Fatal("a fully faded corpse should have been removed")
	}
	if st.Fog.IsRevealed(0, fixed.Cell{X: 15, Y: 15}) {
		t.Fatal("fog should be concealed again once the revealing unit is gone")
	}
}

func TestTickCompletesConstructionAndIdlesTheBuilder(t *testing.T) {
	st := newTestState(30, 30, 1)
	buildingID := st.Entities.Insert(entity.NewBuildingInProgress(entity.TypeHouse, 0, fixed.Cell{X: 5, Y: 5}))
	building := st.Entities.Get(buildingID)
	st.Grid.SetCellRect(building.Cell, building.CellSize(), grid.EncodeEntity(buildingID))

	builderID := st.Entities.Insert(entity.NewUnit(entity.TypeMiner, 0, fixed.Cell{X: 7, Y: 5}))
	builder := st.Entities.Get(builderID)
	st.Grid.SetCellRect(builder.Cell, builder.CellSize(), grid.EncodeEntity(builderID))
	builder.Mode = entity.ModeUnitBuild
	builder.Target = entity.Target{Type: entity.TargetBuild, BuildingCell: building.Cell, BuildingType: entity.TypeHouse}

	max := entity.DataTable[entity.TypeHouse].MaxHealth
	for i := int32(0); i < max/4+2; i++ {
		st.Tick(nil)
	}

	if building.Mode != entity.ModeBuildingFinished {
		t.Fatalf("building mode = %v, want ModeBuildingFinished", building.Mode)
	}
	if builder.Mode != entity.ModeUnitIdle {
		t.Fatalf("builder mode = %v, want ModeUnitIdle", builder.Mode)
	}
}

func TestTickAppliesQueuedInputsBeforeAdvancingEntities(t *testing.T) {
	st := newTestState(20, 20, 1)
	id := spawn(st, entity.TypeCowboy, 0, fixed.Cell{X: 0, Y: 0})

	in := input.Input{Type: input.TypeMoveCell, TargetCell: fixed.Cell{X: 5, Y: 0}, EntityIDs: []uint16{id}}
	st.Tick([]lockstep.AppliedInput{{Player: 0, Input: in}})

	e := st.Entities.Get(id)
	if e.Target.Type != entity.TargetCell {
		t.Fatalf("target = %+v, want TargetCell to have been applied this tick", e.Target)
	}
}
