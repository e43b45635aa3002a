package grid

import (
	"testing"

	"goldrush/pkg/engine/fixed"
)

func TestEncodeDecodeEntityRoundTrip(t *testing.T) {
	for _, id := range []uint16{0, 1, 4095, 4096} {
		v := EncodeEntity(id)
		if !v.IsEntity() {
			t.Fatalf("EncodeEntity(%d) = %v, want IsEntity() true", id, v)
		}
		if got := DecodeEntity(v); got != id {
			t.Errorf("DecodeEntity(EncodeEntity(%d)) = %d, want %d", id, got, id)
		}
	}
}

func TestBoundsChecks(t *testing.T) {
	g := New(10, 10)
	if !g.InBounds(fixed.Cell{X: 0, Y: 0}) {
		t.Error("(0,0) should be in bounds")
	}
	if g.InBounds(fixed.Cell{X: 10, Y: 0}) {
		t.Error("(10,0) should be out of bounds for a 10x10 grid")
	}
	if !g.InBoundsRect(fixed.Cell{X: 7, Y: 7}, 3) {
		t.Error("3x3 rect at (7,7) should fit in a 10x10 grid")
	}
	if g.InBoundsRect(fixed.Cell{X: 8, Y: 8}, 3) {
		t.Error("3x3 rect at (8,8) should not fit in a 10x10 grid")
	}
}

func TestSetCellRectAndIsEqualTo(t *testing.T) {
	g := New(10, 10)
	g.SetCellRect(fixed.Cell{X: 2, Y: 2}, 3, Blocked)
	if !g.IsCellRectEqualTo(fixed.Cell{X: 2, Y: 2}, 3, Blocked) {
		t.Error("expected rect to be entirely Blocked")
	}
	if g.Cell(fixed.Cell{X: 1, Y: 1}) != Empty {
		t.Error("cell outside the rect should remain Empty")
	}
}

type fakeUnits struct {
	unit      map[uint16]bool
	goldWalk  map[uint16]bool
}

func (f fakeUnits) IsUnit(id uint16) bool          { return f.unit[id] }
func (f fakeUnits) IsGoldWalkExempt(id uint16) bool { return f.goldWalk[id] }

func TestIsCellRectOccupiedSentinelsAlwaysBlock(t *testing.T) {
	g := New(10, 10)
	g.SetCell(fixed.Cell{X: 5, Y: 5}, Blocked)
	if !g.IsCellRectOccupied(fixed.Cell{X: 5, Y: 5}, 1, fixed.Cell{X: -1, Y: -1}, false, nil) {
		t.Error("Blocked cell should always be occupied")
	}
}

func TestIsCellRectOccupiedUnitException(t *testing.T) {
	g := New(10, 10)
	g.SetCell(fixed.Cell{X: 5, Y: 5}, EncodeEntity(1))
	units := fakeUnits{unit: map[uint16]bool{1: true}}

	// Far origin: manhattan distance > 5, the "same entity" exception does not apply, unit blocks.
	far := fixed.Cell{X: 0, Y: 0}
	if !g.IsCellRectOccupied(fixed.Cell{X: 5, Y: 5}, 1, far, false, units) {
		t.Error("unit should block when origin is farther than manhattan 5")
	}

	// Near origin: within manhattan 5, exception applies, does not block.
	near := fixed.Cell{X: 5, Y: 6}
	if g.IsCellRectOccupied(fixed.Cell{X: 5, Y: 5}, 1, near, false, units) {
		t.Error("unit should not block when origin is within manhattan 5")
	}

	// origin disabled (-1,-1): exception never applies.
	if !g.IsCellRectOccupied(fixed.Cell{X: 5, Y: 5}, 1, fixed.Cell{X: -1, Y: -1}, false, units) {
		t.Error("unit should block when origin exception is disabled")
	}
}

func TestIsCellRectOccupiedGoldWalkException(t *testing.T) {
	g := New(10, 10)
	g.SetCell(fixed.Cell{X: 5, Y: 5}, EncodeEntity(1))
	units := fakeUnits{
		unit:     map[uint16]bool{1: true},
		goldWalk: map[uint16]bool{1: true},
	}
	far := fixed.Cell{X: 0, Y: 0}
	if g.IsCellRectOccupied(fixed.Cell{X: 5, Y: 5}, 1, far, true, units) {
		t.Error("gold-walk exempt unit should not block when goldWalk is true")
	}
	if !g.IsCellRectOccupied(fixed.Cell{X: 5, Y: 5}, 1, far, false, units) {
		t.Error("gold-walk exempt unit should still block when goldWalk is false")
	}
}

func TestRampFlagDefaultsFalse(t *testing.T) {
	g := New(5, 5)
	if g.IsTileRamp(fixed.Cell{X: 2, Y: 2}) {
		t.Error("ramp flag should default to false")
	}
	g.SetRamp(fixed.Cell{X: 2, Y: 2}, true)
	if !g.IsTileRamp(fixed.Cell{X: 2, Y: 2}) {
		t.Error("ramp flag should be set after SetRamp(true)")
	}
}
