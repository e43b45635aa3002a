package entity

import "goldrush/pkg/engine/fixed"

// goldPerTrip is the amount a miner extracts from a patch per completed
// mining cycle, deposited at the hall on delivery.
const goldPerTrip = 10

// miningTicks is how long a miner stays in MODE_UNIT_MINE before a trip
// completes and it starts walking back out.
const miningTicks = 60

// UpdateMine advances a miner standing on a gold patch: decrements the
// patch's gold_held once per trip, transitions the patch to mined-out when
// exhausted, and flips the miner to MOVE_FINISHED (walking out) afterward.
// Mirrors spec.md §4.H's mining contract and the gold_walk exception that
// lets the miner stand on the mine cell while doing so.
func UpdateMine(miner, patch *Entity) {
	if patch == nil || patch.GoldHeld == 0 {
		miner.Mode = ModeUnitMoveFinished
		if patch != nil {
			patch.Mode = ModeGoldMinedOut
		}
		return
	}

	miner.Timer++
	if miner.Timer < miningTicks {
		return
	}
	miner.Timer = 0

	taken := goldPerTrip
	if uint32(taken) > patch.GoldHeld {
		taken = int(patch.GoldHeld)
	}
	patch.GoldHeld -= uint32(taken)
	miner.GoldHeld += uint32(taken)

	if patch.GoldHeld == 0 {
		patch.Mode = ModeGoldMinedOut
	}
	miner.Mode = ModeUnitMoveFinished
}

// DeliverGold credits a miner's carried gold to econ once it reaches an
// allied hall, and clears the carried amount.
func DeliverGold(econ Economy, miner *Entity) {
	if miner.GoldHeld == 0 {
		return
	}
	econ.RefundGold(miner.GoldHeld)
	miner.GoldHeld = 0
}

// RememberGoldPatch records the last mine cell a miner successfully worked,
// so after a delivery it can resume the same patch without re-searching,
// per spec.md §4.H's gold_patch_id contract.
func RememberGoldPatch(miner *Entity, patchID uint32, patchCell fixed.Cell) {
	miner.GoldPatchID = patchID
	miner.RememberedGold = Target{Type: TargetGold, Cell: patchCell}
}

// DropMiningOrderIfMinedOut clears a miner's order when its remembered
// patch has been mined out from under it (spec.md §4.H: "any mining miners
// drop their order").
func DropMiningOrderIfMinedOut(miner, patch *Entity) {
	if patch == nil || patch.Mode == ModeGoldMinedOut {
		miner.ClearOrders()
		miner.GoldPatchID = GoldPatchIDNull
		miner.Mode = ModeUnitIdle
	}
}
