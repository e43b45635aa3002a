package entity

import (
	"testing"

	"goldrush/pkg/engine/fixed"
	"goldrush/pkg/engine/grid"
)

func TestBeginMoveSetsPathAndMode(t *testing.T) {
	g := grid.New(10, 10)
	s := NewStore()
	id := s.Insert(NewUnit(TypeCowboy, 0, fixed.Cell{X: 0, Y: 0}))
	e := s.Get(id)
	g.SetCellRect(e.Cell, e.CellSize(), grid.EncodeEntity(id))

	BeginMove(g, s, e, fixed.Cell{X: 3, Y: 0}, false)
	if e.Mode != ModeUnitMove {
		t.Fatalf("mode = %v, want ModeUnitMove", e.Mode)
	}
	if len(e.Path) == 0 {
		t.Fatal("expected a non-empty path")
	}
}

func TestStepMoveAdvancesThroughPathToFinish(t *testing.T) {
	g := grid.New(10, 10)
	s := NewStore()
	id := s.Insert(NewUnit(TypeCowboy, 0, fixed.Cell{X: 0, Y: 0}))
	e := s.Get(id)
	g.SetCellRect(e.Cell, e.CellSize(), grid.EncodeEntity(id))

	BeginMove(g, s, e, fixed.Cell{X: 2, Y: 0}, false)

	for i := 0; i < 1000 && e.Mode != ModeUnitMoveFinished; i++ {
		UpdateMove(g, s, e, false)
	}
	if e.Mode != ModeUnitMoveFinished {
		t.Fatalf("mode = %v after 1000 ticks, want ModeUnitMoveFinished", e.Mode)
	}
	if e.Cell.X != 2 || e.Cell.Y != 0 {
		t.Fatalf("cell = %+v, want {2 0}", e.Cell)
	}
}

func TestStepMoveVacatesOldCellOnArrival(t *testing.T) {
	g := grid.New(10, 10)
	s := NewStore()
	id := s.Insert(NewUnit(TypeMiner, 0, fixed.Cell{X: 0, Y: 0}))
	e := s.Get(id)
	g.SetCellRect(e.Cell, e.CellSize(), grid.EncodeEntity(id))

	BeginMove(g, s, e, fixed.Cell{X: 1, Y: 0}, false)
	for i := 0; i < 1000 && e.Mode != ModeUnitMoveFinished; i++ {
		UpdateMove(g, s, e, false)
	}
	if g.Cell(fixed.Cell{X: 0, Y: 0}) != grid.Empty {
		t.Fatal("expected the origin cell to be vacated")
	}
	if g.Cell(fixed.Cell{X: 1, Y: 0}) != grid.EncodeEntity(id) {
		t.Fatal("expected the destination cell to carry the entity's id")
	}
}

func TestUpdateMoveBlockedCountsDownPauseTimer(t *testing.T) {
	g := grid.New(10, 10)
	s := NewStore()
	id := s.Insert(NewUnit(TypeMiner, 0, fixed.Cell{X: 0, Y: 0}))
	e := s.Get(id)
	g.SetCellRect(e.Cell, e.CellSize(), grid.EncodeEntity(id))

	blockerID := s.Insert(NewUnit(TypeMiner, 1, fixed.Cell{X: 1, Y: 0}))
	g.SetCellRect(fixed.Cell{X: 1, Y: 0}, 1, grid.EncodeEntity(blockerID))

	e.Mode = ModeUnitMoveBlocked
	e.Timer = PathPauseTicks
	e.Path = []fixed.Cell{{X: 1, Y: 0}}

	for i := 0; i < PathPauseTicks; i++ {
		UpdateMove(g, s, e, false)
	}
	if e.Timer != 0 {
		t.Fatalf("timer = %d, want 0 after PathPauseTicks updates", e.Timer)
	}
}

func TestFinishMovePopsCellTarget(t *testing.T) {
	e := Entity{
		Mode:        ModeUnitMoveFinished,
		Target:      Target{Type: TargetCell, Cell: fixed.Cell{X: 1, Y: 1}},
		TargetQueue: nil,
	}
	FinishMove(&e)
	if e.Target.Type != TargetNone {
		t.Fatalf("target = %+v, want cleared", e.Target)
	}
	if e.Mode != ModeUnitIdle {
		t.Fatalf("mode = %v, want ModeUnitIdle", e.Mode)
	}
}
