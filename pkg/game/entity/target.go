package entity

import "goldrush/pkg/engine/fixed"

// TargetType discriminates the Target tagged union.
type TargetType uint8

const (
	TargetNone TargetType = iota
	TargetCell
	TargetEntity
	TargetAttackCell
	TargetAttackEntity
	TargetRepair
	TargetUnload
	TargetSmoke
	TargetBuild
	TargetBuildAssist
	TargetGold
)

// Target is the tagged union of everything an entity can be ordered to do.
// Modeled as one flat struct per spec.md §9's DESIGN NOTES ("model it as a
// sum type and avoid the field aliasing C pattern"); only the fields
// relevant to Type are meaningful.
type Target struct {
	Type TargetType
	ID   EntityID
	Cell fixed.Cell

	// TargetBuild / TargetBuildAssist.
	UnitCell     fixed.Cell
	BuildingCell fixed.Cell
	BuildingType Type

	// TargetRepair.
	HealthRepaired uint32
}

// BuildingQueueItemType discriminates a building's production queue entries.
type BuildingQueueItemType uint8

const (
	BuildingQueueItemUnit BuildingQueueItemType = iota
	BuildingQueueItemUpgrade
)

// BuildingQueueItem is one entry in a building's production/upgrade queue.
type BuildingQueueItem struct {
	Type    BuildingQueueItemType
	Unit    Type
	Upgrade uint32
}
