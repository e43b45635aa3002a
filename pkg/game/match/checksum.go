package match

import (
	"goldrush/pkg/game/diag"
	"goldrush/pkg/game/entity"
)

// Checksum folds the match's complete authoritative state into a single
// digest two peers can compare each tick to prove bit-identical execution,
// per spec.md §8. Entities are folded in Store.Each's stable insertion
// order, which is itself a pure function of this tick's applied inputs, so
// two peers that applied the same inputs produce the same digest.
func (st *State) Checksum() string {
	c := diag.NewChecksum()
	c.WriteUint32(st.Tick)

	for _, p := range st.Players {
		c.WriteUint32(p.Gold())
		c.WriteUint32(p.upgrades)
		c.WriteUint32(p.upgradeInProgress)
	}

	st.Entities.Each(func(id entity.EntityID, e *entity.Entity) {
		c.WriteUint32(uint32(id))
		c.WriteUint32(uint32(e.Type))
		c.WriteUint32(uint32(e.Mode))
		c.WriteUint32(uint32(e.PlayerID))
		c.WriteUint32(uint32(e.Cell.X))
		c.WriteUint32(uint32(e.Cell.Y))
		c.WriteUint32(uint32(e.Health))
		c.WriteUint32(e.GoldHeld)
		c.WriteUint32(e.GoldPatchID)
	})

	return c.Sum()
}
