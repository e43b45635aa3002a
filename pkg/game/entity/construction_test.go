package entity

import (
	"testing"

	"goldrush/pkg/engine/fixed"
)

func TestUpdateBuildCreditsHealthAndFinishes(t *testing.T) {
	b := NewBuildingInProgress(TypeHouse, 0, fixed.Cell{X: 0, Y: 0})
	max := DataTable[TypeHouse].MaxHealth

	ticks := 0
	for !UpdateBuild(&b) {
		ticks++
		if ticks > max {
			t.Fatal("construction never finished")
		}
	}
	if b.Health != max {
		t.Fatalf("health = %d, want %d", b.Health, max)
	}
	if b.Mode != ModeBuildingFinished {
		t.Fatalf("mode = %v, want ModeBuildingFinished", b.Mode)
	}
}

func TestCancelBuildRefundIsProportionalToHealth(t *testing.T) {
	b := NewBuildingInProgress(TypeHouse, 0, fixed.Cell{})
	data := DataTable[TypeHouse]
	b.Health = data.MaxHealth / 2

	refund := CancelBuildRefund(&b)
	want := uint32(uint64(data.GoldCost) * uint64(b.Health) / uint64(data.MaxHealth))
	if refund != want {
		t.Fatalf("refund = %d, want %d", refund, want)
	}
	if refund == 0 || refund >= data.GoldCost {
		t.Fatalf("refund %d should be strictly between 0 and full cost %d", refund, data.GoldCost)
	}
}

func TestCancelBuildRefundAtFullHealthReturnsFullCost(t *testing.T) {
	b := NewBuildingInProgress(TypeHouse, 0, fixed.Cell{})
	b.Health = DataTable[TypeHouse].MaxHealth
	if got := CancelBuildRefund(&b); got != DataTable[TypeHouse].GoldCost {
		t.Fatalf("refund = %d, want full cost %d", got, DataTable[TypeHouse].GoldCost)
	}
}
