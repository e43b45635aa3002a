package entity

import "goldrush/pkg/engine/fixed"

// UnitData holds per-type stats only meaningful for units.
type UnitData struct {
	PopulationCost uint32
	Speed          fixed.Fixed
	Damage         int32
	AttackCooldown int32
	RangeSquared   int32
	MinRangeSquared int32
}

// BuildingData holds per-type stats only meaningful for buildings.
type BuildingData struct {
	CanRally bool
}

// Data is the static (never mutated at runtime) stat block for one Type,
// mirroring the source's entity_data_t.
type Data struct {
	Name string

	CellSize int32

	GoldCost      uint32
	TrainDuration uint32
	MaxHealth     int32
	Sight         int32
	Armor         int32
	AttackPriority uint32

	GarrisonCapacity uint32
	GarrisonSize     uint32

	HasDetection bool

	Unit     UnitData
	Building BuildingData
}

// DataTable is indexed by Type; population order matches the Type iota
// declaration so DataTable[t] is O(1).
var DataTable = [typeCount]Data{
	TypeMiner: {
		Name: "miner", CellSize: 1, GoldCost: 50, TrainDuration: 300,
		MaxHealth: 30, Sight: 6, Armor: 0, AttackPriority: 0,
		GarrisonSize: 1,
		Unit: UnitData{PopulationCost: 1, Speed: fixed.FromRaw(1 << 15), Damage: 0, AttackCooldown: 0},
	},
	TypeCowboy: {
		Name: "cowboy", CellSize: 1, GoldCost: 100, TrainDuration: 420,
		MaxHealth: 40, Sight: 6, Armor: 0, AttackPriority: 1,
		GarrisonSize: 1,
		Unit: UnitData{PopulationCost: 1, Speed: fixed.FromRaw(1 << 15), Damage: 6, AttackCooldown: 30, RangeSquared: 1},
	},
	TypeBandit: {
		Name: "bandit", CellSize: 1, GoldCost: 100, TrainDuration: 420,
		MaxHealth: 40, Sight: 6, Armor: 0, AttackPriority: 1,
		GarrisonSize: 1,
		Unit: UnitData{PopulationCost: 1, Speed: fixed.FromRaw(1 << 15), Damage: 6, AttackCooldown: 30, RangeSquared: 1},
	},
	TypeWagon: {
		Name: "wagon", CellSize: 1, GoldCost: 140, TrainDuration: 450,
		MaxHealth: 80, Sight: 5, Armor: 1, AttackPriority: 1,
		GarrisonCapacity: 4, GarrisonSize: 2,
		Unit: UnitData{PopulationCost: 2, Speed: fixed.FromRaw(3 << 14)},
	},
	TypeWarWagon: {
		Name: "war_wagon", CellSize: 1, GoldCost: 140, TrainDuration: 450,
		MaxHealth: 100, Sight: 5, Armor: 2, AttackPriority: 2,
		GarrisonCapacity: 4, GarrisonSize: 2,
		Unit: UnitData{PopulationCost: 2, Speed: fixed.FromRaw(3 << 14), Damage: 4, AttackCooldown: 30, RangeSquared: 9},
	},
	TypeJockey: {
		Name: "jockey", CellSize: 1, GoldCost: 120, TrainDuration: 420,
		MaxHealth: 50, Sight: 7, Armor: 0, AttackPriority: 1,
		GarrisonSize: 1,
		Unit: UnitData{PopulationCost: 1, Speed: fixed.FromInt(2), Damage: 5, AttackCooldown: 20, RangeSquared: 1},
	},
	TypeSapper: {
		Name: "sapper", CellSize: 1, GoldCost: 90, TrainDuration: 360,
		MaxHealth: 25, Sight: 5, Armor: 0, AttackPriority: 1,
		GarrisonSize: 1,
		Unit: UnitData{PopulationCost: 1, Speed: fixed.FromRaw(1 << 15), Damage: 40, AttackCooldown: 0, RangeSquared: 1},
	},
	TypeTinker: {
		Name: "tinker", CellSize: 1, GoldCost: 110, TrainDuration: 420,
		MaxHealth: 35, Sight: 6, Armor: 0, AttackPriority: 1,
		GarrisonSize: 1,
		Unit: UnitData{PopulationCost: 1, Speed: fixed.FromRaw(1 << 15), Damage: 8, AttackCooldown: 45, RangeSquared: 16},
	},
	TypeSoldier: {
		Name: "soldier", CellSize: 1, GoldCost: 130, TrainDuration: 450,
		MaxHealth: 55, Sight: 6, Armor: 1, AttackPriority: 1,
		GarrisonSize: 1,
		Unit: UnitData{PopulationCost: 1, Speed: fixed.FromRaw(1 << 15), Damage: 7, AttackCooldown: 30, RangeSquared: 9, MinRangeSquared: 1},
	},
	TypeCannon: {
		Name: "cannon", CellSize: 2, GoldCost: 180, TrainDuration: 540,
		MaxHealth: 70, Sight: 6, Armor: 1, AttackPriority: 2,
		GarrisonSize: 3,
		Unit: UnitData{PopulationCost: 3, Speed: fixed.FromRaw(1 << 14), Damage: 20, AttackCooldown: 60, RangeSquared: 36, MinRangeSquared: 4},
	},
	TypeSpy: {
		Name: "spy", CellSize: 1, GoldCost: 100, TrainDuration: 420,
		MaxHealth: 25, Sight: 8, Armor: 0, AttackPriority: 0,
		GarrisonSize: 1,
		Unit: UnitData{PopulationCost: 1, Speed: fixed.FromRaw(1 << 15), Damage: 4, AttackCooldown: 30, RangeSquared: 1},
	},
	TypeHall: {
		Name: "hall", CellSize: 4, GoldCost: 0, MaxHealth: 1000, Sight: 9, AttackPriority: 3,
		Building: BuildingData{CanRally: true},
	},
	TypeCamp: {
		Name: "camp", CellSize: 3, GoldCost: 150, MaxHealth: 300, Sight: 6, AttackPriority: 3,
	},
	TypeHouse: {
		Name: "house", CellSize: 2, GoldCost: 60, MaxHealth: 150, Sight: 5, AttackPriority: 3,
	},
	TypeSaloon: {
		Name: "saloon", CellSize: 3, GoldCost: 150, MaxHealth: 300, Sight: 6, AttackPriority: 3,
		Building: BuildingData{CanRally: true},
	},
	TypeBunker: {
		Name: "bunker", CellSize: 2, GoldCost: 120, MaxHealth: 250, Sight: 6, AttackPriority: 3,
		GarrisonCapacity: 4,
	},
	TypeCoop: {
		Name: "coop", CellSize: 2, GoldCost: 100, MaxHealth: 200, Sight: 5, AttackPriority: 3,
		Building: BuildingData{CanRally: true},
	},
	TypeSmith: {
		Name: "smith", CellSize: 3, GoldCost: 180, MaxHealth: 300, Sight: 5, AttackPriority: 3,
	},
	TypeBarracks: {
		Name: "barracks", CellSize: 3, GoldCost: 160, MaxHealth: 300, Sight: 6, AttackPriority: 3,
		Building: BuildingData{CanRally: true},
	},
	TypeSheriffs: {
		Name: "sheriffs", CellSize: 3, GoldCost: 200, MaxHealth: 350, Sight: 7, AttackPriority: 3,
		Building: BuildingData{CanRally: true},
	},
	TypeMine: {
		Name: "mine", CellSize: 3, MaxHealth: 1, Sight: 3,
	},
	TypeGold: {
		Name: "gold", CellSize: 1, MaxHealth: 1, Sight: 0,
	},
	TypeLandMine: {
		Name: "land_mine", CellSize: 1, MaxHealth: 1, Sight: 2,
	},
}

// UpgradeWarWagon is the bit tested when substituting a trained wagon for a
// war wagon, per spec.md §8 item 5.
const UpgradeWarWagon uint32 = 1 << 0
