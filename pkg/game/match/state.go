// Package match bootstraps a playable match from a baked map and drives
// its fixed per-tick update order, tying together pkg/engine/{grid,fog,
// pathfind,fixed,noise}, pkg/game/{entity,mapgen,lockstep,input,status,
// diag} into the single authoritative simulation step spec.md §4.J
// describes.
package match

import (
	"goldrush/pkg/engine/fixed"
	"goldrush/pkg/engine/fog"
	"goldrush/pkg/engine/grid"
	"goldrush/pkg/game/entity"
	"goldrush/pkg/game/mapgen"
	"goldrush/pkg/game/status"
)

// NoisePayload is the w/h/elevation-array portion of spec.md §6's
// match-load event.
type NoisePayload struct {
	Width, Height int32
	Map           []int8
}

// LoadEvent is spec.md §6's match-load event: both peers must receive
// byte-identical values before starting a match.
type LoadEvent struct {
	LCGSeed int32
	Noise   NoisePayload
}

// State is one match's complete authoritative simulation state.
type State struct {
	Grid     *grid.Grid
	Fog      *fog.State
	Entities *entity.Store
	Players  []*Player
	Status   status.Emitter

	Projectiles []entity.Projectile
	Particles   []entity.Particle

	// HallID[p] is player p's starting hall, used as the delivery point
	// for DeliverGold when a miner walks home.
	HallID []entity.EntityID

	lcg  *fixed.LCG
	Tick uint32

	// reveals records the last sight rect each entity currently contributes
	// to team fog, so advanceReveals can decrement exactly what it added
	// the moment an entity moves, dies, or stops revealing, instead of
	// accumulating unbounded counters.
	reveals map[entity.EntityID]revealInfo
}

// revealInfo is one entity's last-applied fog.Update arguments.
type revealInfo struct {
	team         uint8
	cell         fixed.Cell
	cellSize     int32
	sight        int32
	hasDetection bool
}

// startingMinerOffset places each player's first miner just east of their
// hall footprint; a real spawn-point search (findFreeAdjacentCell) is
// unexported inside pkg/game/entity, so bootstrap uses a fixed offset
// instead of duplicating that search here (see DESIGN.md).
var startingMinerOffset = fixed.Cell{X: mapgen.HallSize, Y: 0}

// NewState bakes the map from ev's noise payload and spawns each player's
// starting hall, miner, and paired gold mine. Returns the ready-to-tick
// match state.
func NewState(ev LoadEvent, numPlayers int, size mapgen.MapSize) *State {
	res := mapgen.BakeFromNoise(ev.LCGSeed, ev.Noise.Map, ev.Noise.Width, ev.Noise.Height, numPlayers, size)

	st := &State{
		Grid:     res.Grid,
		Fog:      fog.NewState(ev.Noise.Width, ev.Noise.Height, numPlayers),
		Entities: entity.NewStore(),
		Players:  make([]*Player, numPlayers),
		HallID:   make([]entity.EntityID, numPlayers),
		lcg:      fixed.NewLCG(ev.LCGSeed),
		reveals:  make(map[entity.EntityID]revealInfo),
	}

	for _, d := range res.Decorations {
		st.Grid.SetCell(d.Cell, grid.DecorationN(d.Variant))
	}

	for p := 0; p < numPlayers; p++ {
		st.Players[p] = NewPlayer()

		mineID := st.Entities.Insert(entity.NewMine(res.PlayerMines[p], mapgen.GoldMineAmount))
		st.Grid.SetCellRect(res.PlayerMines[p], mapgen.MineSize, grid.EncodeEntity(mineID))

		hallID := st.Entities.Insert(entity.NewBuildingFinished(entity.TypeHall, uint8(p), res.PlayerSpawns[p]))
		st.Grid.SetCellRect(res.PlayerSpawns[p], mapgen.HallSize, grid.EncodeEntity(hallID))
		st.HallID[p] = hallID

		minerCell := res.PlayerSpawns[p].Add(startingMinerOffset)
		minerID := st.Entities.Insert(entity.NewUnit(entity.TypeMiner, uint8(p), minerCell))
		st.Grid.SetCellRect(minerCell, entity.DataTable[entity.TypeMiner].CellSize, grid.EncodeEntity(minerID))
	}

	for _, cell := range res.ExtraGoldPatches {
		id := st.Entities.Insert(entity.NewMine(cell, mapgen.GoldMineAmount))
		st.Grid.SetCellRect(cell, mapgen.MineSize, grid.EncodeEntity(id))
	}

	return st
}
