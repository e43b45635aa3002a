package entity

import (
	"testing"

	"goldrush/pkg/engine/fixed"
)

func TestUpdateMineExtractsAfterMiningTicks(t *testing.T) {
	miner := NewUnit(TypeMiner, 0, fixed.Cell{X: 0, Y: 0})
	miner.Mode = ModeUnitMine
	patch := NewGold(fixed.Cell{X: 1, Y: 0}, 100)

	for i := 0; i < miningTicks; i++ {
		UpdateMine(&miner, &patch)
	}
	if miner.GoldHeld != goldPerTrip {
		t.Fatalf("miner gold held = %d, want %d", miner.GoldHeld, goldPerTrip)
	}
	if patch.GoldHeld != 100-goldPerTrip {
		t.Fatalf("patch gold held = %d, want %d", patch.GoldHeld, 100-goldPerTrip)
	}
	if miner.Mode != ModeUnitMoveFinished {
		t.Fatalf("mode = %v, want ModeUnitMoveFinished", miner.Mode)
	}
}

func TestUpdateMineTransitionsMinedOutWhenExhausted(t *testing.T) {
	miner := NewUnit(TypeMiner, 0, fixed.Cell{X: 0, Y: 0})
	miner.Mode = ModeUnitMine
	patch := NewGold(fixed.Cell{X: 1, Y: 0}, goldPerTrip-1)

	for i := 0; i < miningTicks; i++ {
		UpdateMine(&miner, &patch)
	}
	if patch.GoldHeld != 0 {
		t.Fatalf("patch gold held = %d, want 0", patch.GoldHeld)
	}
	if patch.Mode != ModeGoldMinedOut {
		t.Fatalf("patch mode = %v, want ModeGoldMinedOut", patch.Mode)
	}
}

func TestDeliverGoldCreditsAndClears(t *testing.T) {
	econ := &fakeEconomy{gold: 0}
	miner := NewUnit(TypeMiner, 0, fixed.Cell{})
	miner.GoldHeld = 10

	DeliverGold(econ, &miner)
	if econ.gold != 10 {
		t.Fatalf("econ gold = %d, want 10", econ.gold)
	}
	if miner.GoldHeld != 0 {
		t.Fatalf("miner gold held = %d, want 0", miner.GoldHeld)
	}
}

func TestDropMiningOrderIfMinedOutClearsOrder(t *testing.T) {
	miner := NewUnit(TypeMiner, 0, fixed.Cell{})
	miner.Target = Target{Type: TargetGold}
	miner.GoldPatchID = 7
	patch := NewGold(fixed.Cell{}, 0)
	patch.Mode = ModeGoldMinedOut

	DropMiningOrderIfMinedOut(&miner, &patch)
	if miner.Target.Type != TargetNone {
		t.Fatalf("target = %+v, want cleared", miner.Target)
	}
	if miner.GoldPatchID != GoldPatchIDNull {
		t.Fatalf("gold patch id = %d, want GoldPatchIDNull", miner.GoldPatchID)
	}
}
