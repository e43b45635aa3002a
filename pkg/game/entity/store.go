package entity

import (
	"goldrush/pkg/engine/fixed"
	"goldrush/pkg/engine/fog"
	"goldrush/pkg/engine/idarray"
)

// storeCapacity bounds the number of live entities per match, matching the
// source's fixed MAX_ENTITIES arena sizing rather than a growable slice.
const storeCapacity = 4096

// Store owns every live entity for one match and adapts idarray.Store[Entity]
// to the small lookup interfaces the lower engine packages expect
// (grid.UnitLookup, fog.Snapshotter), so grid/fog never import this package.
type Store struct {
	entities *idarray.Store[Entity]
}

// NewStore allocates an empty entity store.
func NewStore() *Store {
	return &Store{entities: idarray.New[Entity](storeCapacity)}
}

// Insert adds e and returns its assigned id.
func (s *Store) Insert(e Entity) EntityID {
	id := s.entities.Insert(e)
	s.entities.Get(id).selfID = id
	return id
}

// Remove deletes the entity with the given id.
func (s *Store) Remove(id EntityID) {
	s.entities.Remove(id)
}

// Get returns a mutable pointer to the entity with id, or nil if not live.
func (s *Store) Get(id EntityID) *Entity {
	return s.entities.Get(id)
}

// IsLive reports whether id currently refers to a live entity.
func (s *Store) IsLive(id EntityID) bool {
	return s.entities.IsLive(id)
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return s.entities.Len()
}

// Each visits every live entity in index order.
func (s *Store) Each(fn func(id EntityID, e *Entity)) {
	s.entities.Each(fn)
}

// IsUnit implements grid.UnitLookup.
func (s *Store) IsUnit(id uint16) bool {
	e := s.entities.Get(id)
	return e != nil && e.Type.IsUnit()
}

// IsGoldWalkExempt implements grid.UnitLookup: a unit standing in a mine
// cell while actively mining or walking out does not block that cell, per
// spec.md §4.D's gold_walk exception.
func (s *Store) IsGoldWalkExempt(id uint16) bool {
	e := s.entities.Get(id)
	if e == nil {
		return false
	}
	return e.Mode == ModeUnitMine || e.Mode == ModeUnitMoveFinished
}

// Snapshot implements fog.Snapshotter: it captures the minimal render state
// of an entity right as it becomes concealed, so the fog layer can show a
// stale "last seen" silhouette instead of nothing. Units, land mines and
// non-selectable entities are never snapshotted.
func (s *Store) Snapshot(id uint16) (fog.RememberedEntity, bool) {
	e := s.entities.Get(id)
	if e == nil || e.Type.IsUnit() || e.Type == TypeLandMine || !e.IsSelectable() {
		return fog.RememberedEntity{}, false
	}
	return fog.RememberedEntity{
		Position: e.Position,
		Cell:     e.Cell,
		CellSize: e.CellSize(),
	}, true
}

// InflictDamage applies armor-reduced damage to target, flags it as
// flickering from recent damage, and returns true if the hit killed it.
// Damage formula is max(damage-armor, 1), per spec.md §4.H combat rules.
func InflictDamage(target *Entity, rawDamage int32) bool {
	armor := DataTable[target.Type].Armor
	dealt := rawDamage - armor
	if dealt < 1 {
		dealt = 1
	}
	target.Health -= dealt
	target.Flags |= FlagDamageFlicker
	target.TakingDamageCounter++
	target.TakingDamageTimer = 30
	return target.Health <= 0
}

// ManhattanRange reports whether from is within range (squared) of to,
// using the same squared-distance convention as attack range checks.
func ManhattanRange(from, to fixed.Cell, rangeSquared int32) bool {
	dx := int32(to.X - from.X)
	dy := int32(to.Y - from.Y)
	return dx*dx+dy*dy <= rangeSquared
}
