package entity

import (
	"testing"

	"goldrush/pkg/engine/fixed"
	"goldrush/pkg/engine/grid"
)

type fakeEconomy struct {
	gold          uint32
	upgrades      uint32
	inProgress    uint32
}

func (e *fakeEconomy) Gold() uint32 { return e.gold }
func (e *fakeEconomy) SpendGold(amount uint32) bool {
	if e.gold < amount {
		return false
	}
	e.gold -= amount
	return true
}
func (e *fakeEconomy) RefundGold(amount uint32)      { e.gold += amount }
func (e *fakeEconomy) HasUpgrade(bit uint32) bool    { return e.upgrades&bit != 0 }
func (e *fakeEconomy) GrantUpgrade(bit uint32)        { e.upgrades |= bit }
func (e *fakeEconomy) IsUpgradeInProgress(bit uint32) bool { return e.inProgress&bit != 0 }
func (e *fakeEconomy) SetUpgradeInProgress(bit uint32, inProgress bool) {
	if inProgress {
		e.inProgress |= bit
	} else {
		e.inProgress &^= bit
	}
}

func TestEnqueueBuildingDeductsGoldAndAppends(t *testing.T) {
	econ := &fakeEconomy{gold: 1000}
	b := NewBuildingInProgress(TypeBarracks, 0, fixed.Cell{})
	b.Mode = ModeBuildingFinished

	ok := EnqueueBuilding(econ, &b, BuildingQueueItem{Type: BuildingQueueItemUnit, Unit: TypeCowboy})
	if !ok {
		t.Fatal("expected enqueue to succeed")
	}
	if len(b.Queue) != 1 {
		t.Fatalf("queue length = %d, want 1", len(b.Queue))
	}
	if econ.gold != 1000-DataTable[TypeCowboy].GoldCost {
		t.Fatalf("gold = %d, want %d", econ.gold, 1000-DataTable[TypeCowboy].GoldCost)
	}
}

func TestEnqueueBuildingRejectsWhenGoldInsufficient(t *testing.T) {
	econ := &fakeEconomy{gold: 1}
	b := NewBuildingInProgress(TypeBarracks, 0, fixed.Cell{})
	if EnqueueBuilding(econ, &b, BuildingQueueItem{Type: BuildingQueueItemUnit, Unit: TypeCowboy}) {
		t.Fatal("expected enqueue to fail with insufficient gold")
	}
}

func TestEnqueueBuildingRejectsWhenQueueFull(t *testing.T) {
	econ := &fakeEconomy{gold: 1000000}
	b := NewBuildingInProgress(TypeBarracks, 0, fixed.Cell{})
	for i := 0; i < BuildingQueueMax; i++ {
		if !EnqueueBuilding(econ, &b, BuildingQueueItem{Type: BuildingQueueItemUnit, Unit: TypeCowboy}) {
			t.Fatalf("enqueue %d unexpectedly failed", i)
		}
	}
	if EnqueueBuilding(econ, &b, BuildingQueueItem{Type: BuildingQueueItemUnit, Unit: TypeCowboy}) {
		t.Fatal("expected the 6th enqueue to be rejected")
	}
}

func TestEnqueueBuildingRejectsConflictingUpgrade(t *testing.T) {
	econ := &fakeEconomy{gold: 1000000, inProgress: UpgradeWarWagon}
	b := NewBuildingInProgress(TypeSmith, 0, fixed.Cell{})
	if EnqueueBuilding(econ, &b, BuildingQueueItem{Type: BuildingQueueItemUpgrade, Upgrade: UpgradeWarWagon}) {
		t.Fatal("expected enqueue to reject a duplicate in-progress upgrade")
	}
}

func TestDequeueBuildingRefundsAndClearsUpgradeBit(t *testing.T) {
	econ := &fakeEconomy{gold: 1000}
	b := NewBuildingInProgress(TypeSmith, 0, fixed.Cell{})
	EnqueueBuilding(econ, &b, BuildingQueueItem{Type: BuildingQueueItemUpgrade, Upgrade: UpgradeWarWagon})
	goldAfterEnqueue := econ.gold

	if !DequeueBuilding(econ, &b, 0) {
		t.Fatal("expected dequeue to succeed")
	}
	if len(b.Queue) != 0 {
		t.Fatalf("queue length = %d, want 0", len(b.Queue))
	}
	if econ.gold <= goldAfterEnqueue {
		t.Fatal("expected gold to be refunded")
	}
	if econ.IsUpgradeInProgress(UpgradeWarWagon) {
		t.Fatal("expected the in-progress bit to be cleared")
	}
}

// TestWagonSubstitutesToWarWagonWhenUpgradeOwned exercises the spec's
// wagon -> war_wagon substitution: once the upgrade is owned, training a
// wagon actually spawns a war wagon instead.
func TestWagonSubstitutesToWarWagonWhenUpgradeOwned(t *testing.T) {
	econ := &fakeEconomy{gold: 100000, upgrades: UpgradeWarWagon}
	s := NewStore()
	g := grid.New(20, 20)

	b := NewBuildingInProgress(TypeBarracks, 0, fixed.Cell{X: 5, Y: 5})
	b.Mode = ModeBuildingFinished
	if !EnqueueBuilding(econ, &b, BuildingQueueItem{Type: BuildingQueueItemUnit, Unit: TypeWagon}) {
		t.Fatal("expected enqueue to succeed")
	}

	var spawned Type
	var ok bool
	for i := uint32(0); i < DataTable[TypeWarWagon].TrainDuration+1; i++ {
		spawned, _, ok = AdvanceQueue(econ, s, g, &b)
		if ok {
			break
		}
	}
	if !ok {
		t.Fatal("expected production to complete")
	}
	if spawned != TypeWarWagon {
		t.Fatalf("spawned type = %v, want TypeWarWagon", spawned)
	}
}

func TestWagonStaysPlainWithoutUpgrade(t *testing.T) {
	econ := &fakeEconomy{gold: 100000}
	s := NewStore()
	g := grid.New(20, 20)

	b := NewBuildingInProgress(TypeBarracks, 0, fixed.Cell{X: 5, Y: 5})
	b.Mode = ModeBuildingFinished
	EnqueueBuilding(econ, &b, BuildingQueueItem{Type: BuildingQueueItemUnit, Unit: TypeWagon})

	var spawned Type
	var ok bool
	for i := uint32(0); i < DataTable[TypeWagon].TrainDuration+1; i++ {
		spawned, _, ok = AdvanceQueue(econ, s, g, &b)
		if ok {
			break
		}
	}
	if !ok {
		t.Fatal("expected production to complete")
	}
	if spawned != TypeWagon {
		t.Fatalf("spawned type = %v, want TypeWagon", spawned)
	}
}
