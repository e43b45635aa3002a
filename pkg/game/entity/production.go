package entity

import "goldrush/pkg/engine/fixed"

// Economy is the player-scoped gold/upgrade ledger a building's queue reads
// and writes. Kept as a narrow interface rather than a concrete Player type
// so this package stays independent of match-level bookkeeping.
type Economy interface {
	Gold() uint32
	SpendGold(amount uint32) bool
	RefundGold(amount uint32)
	HasUpgrade(bit uint32) bool
	SetUpgradeInProgress(bit uint32, inProgress bool)
	IsUpgradeInProgress(bit uint32) bool
	GrantUpgrade(bit uint32)
}

// EnqueueBuilding validates and appends an item to a building's production
// queue: rejects on a conflicting in-progress upgrade, insufficient gold,
// or a full queue (5), per spec.md §4.H.
func EnqueueBuilding(econ Economy, building *Entity, item BuildingQueueItem) bool {
	if len(building.Queue) >= BuildingQueueMax {
		return false
	}
	if item.Type == BuildingQueueItemUpgrade && econ.IsUpgradeInProgress(item.Upgrade) {
		return false
	}

	cost := productionCost(item)
	if !econ.SpendGold(cost) {
		return false
	}
	if item.Type == BuildingQueueItemUpgrade {
		econ.SetUpgradeInProgress(item.Upgrade, true)
	}
	building.Queue = append(building.Queue, item)
	return true
}

// DequeueBuilding removes and refunds the queue item at index, per
// spec.md §4.H's "refund its cost and clear its in-progress bit" rule.
// The item at index 0 (currently producing) is allowed to be dequeued too.
func DequeueBuilding(econ Economy, building *Entity, index int) bool {
	if index < 0 || index >= len(building.Queue) {
		return false
	}
	item := building.Queue[index]
	econ.RefundGold(productionCost(item))
	if item.Type == BuildingQueueItemUpgrade {
		econ.SetUpgradeInProgress(item.Upgrade, false)
	}
	building.Queue = append(building.Queue[:index], building.Queue[index+1:]...)
	return true
}

func productionCost(item BuildingQueueItem) uint32 {
	switch item.Type {
	case BuildingQueueItemUpgrade:
		return upgradeCost(item.Upgrade)
	default:
		unitType := substituteUnit(nil, item.Unit)
		return DataTable[unitType].GoldCost
	}
}

// upgradeCost looks up the gold price of an upgrade bit; only war_wagon is
// modeled, per spec.md §8 item 5.
func upgradeCost(bit uint32) uint32 {
	switch bit {
	case UpgradeWarWagon:
		return 250
	default:
		return 0
	}
}

// substituteUnit applies the wagon→war_wagon substitution when the owning
// player has the UpgradeWarWagon upgrade: trained wagons come out as war
// wagons instead, per spec.md §8 item 5. econ may be nil to query the
// un-substituted type (used for cost lookups before ownership is known).
func substituteUnit(econ Economy, unit Type) Type {
	if unit == TypeWagon && econ != nil && econ.HasUpgrade(UpgradeWarWagon) {
		return TypeWarWagon
	}
	return unit
}

// AdvanceQueue credits production time to the head of the queue and, on
// completion pops the item and either grants the upgrade or looks up the
// first free adjacent cell for the produced unit. Returns the unit's type
// and that cell when one was found; the caller inserts the unit. When no
// cell is free the finished item is dropped and false is returned.
func AdvanceQueue(econ Economy, store *Store, g OccupancyGrid, building *Entity) (Type, fixed.Cell, bool) {
	if len(building.Queue) == 0 {
		return 0, fixed.Cell{}, false
	}
	item := &building.Queue[0]

	switch item.Type {
	case BuildingQueueItemUpgrade:
		building.Timer++
		if building.Timer < upgradeDuration(item.Upgrade) {
			return 0, fixed.Cell{}, false
		}
		building.Timer = 0
		econ.GrantUpgrade(item.Upgrade)
		econ.SetUpgradeInProgress(item.Upgrade, false)
		building.Queue = building.Queue[1:]
		return 0, fixed.Cell{}, false
	default:
		unit := substituteUnit(econ, item.Unit)
		building.Timer++
		if building.Timer < DataTable[unit].TrainDuration {
			return 0, fixed.Cell{}, false
		}
		building.Timer = 0
		building.Queue = building.Queue[1:]

		spawnCell, ok := findFreeAdjacentCell(g, building.Cell, building.CellSize(), DataTable[unit].CellSize)
		if !ok {
			return 0, fixed.Cell{}, false
		}
		return unit, spawnCell, true
	}
}

func upgradeDuration(bit uint32) uint32 {
	switch bit {
	case UpgradeWarWagon:
		return 900
	default:
		return 0
	}
}

// findFreeAdjacentCell scans the ring of cells surrounding a buildingSize
// footprint at origin for the first unoccupied spawnSize×spawnSize spot,
// scanning the ring row by row, left to right, from its top-left corner.
func findFreeAdjacentCell(g OccupancyGrid, origin fixed.Cell, buildingSize, spawnSize int32) (fixed.Cell, bool) {
	ring := origin.Add(fixed.Cell{X: -1, Y: -1})
	width := buildingSize + 2
	for y := int32(0); y < width; y++ {
		for x := int32(0); x < width; x++ {
			onBorder := x == 0 || y == 0 || x == width-1 || y == width-1
			if !onBorder {
				continue
			}
			c := ring.Add(fixed.Cell{X: x, Y: y})
			if !g.InBoundsRect(c, spawnSize) {
				continue
			}
			if g.IsCellRectOccupied(c, spawnSize, fixed.Cell{X: -1, Y: -1}, false, nil) {
				continue
			}
			return c, true
		}
	}
	return fixed.Cell{}, false
}
