// Package mapgen bakes a procedurally-generated map from a seeded noise
// field into a playable grid.Grid, in the fixed pass order spec.md §4.C
// describes: elevation cleanup, tile baking, ramp placement, blocking,
// unreachable-island detection, player spawns, and Poisson-disk gold
// patches and decorations. Every random draw comes from the match's
// fixed.LCG so two peers baking the same seed produce bit-identical maps.
package mapgen

import (
	"goldrush/pkg/engine/fixed"
	"goldrush/pkg/engine/grid"
	"goldrush/pkg/engine/noise"
)

// Elevation tiers, matching noise.Generate's quantization.
const (
	ElevationWater   int8 = -1
	ElevationLow     int8 = 0
	ElevationHigh    int8 = 1
	ElevationHighest int8 = 2
)

// Entity footprint sizes baked into spawn/patch placement. Mirrors
// pkg/game/entity's "mine" (3) and "hall" (4) CellSize entries; duplicated
// here rather than imported to keep mapgen a leaf package with no
// dependency on the entity package (match wires the two together).
const (
	MineSize = 3
	HallSize = 4
)

const GoldMineAmount = 5000

// MapSize selects which of the two gold-patch Poisson-disk radii spec.md
// §4.C item 10 specifies.
type MapSize int

const (
	SmallMap MapSize = iota
	LargeMap
)

func goldDiskRadius(size MapSize) int32 {
	if size == LargeMap {
		return 48
	}
	return 42
}

// Result is everything the match bootstrap needs out of a baked map: the
// grid itself plus every placed feature's cell.
type Result struct {
	Grid *grid.Grid

	// PlayerSpawns[i] is player i's hall footprint anchor cell (top-left of
	// a HallSize×HallSize rect), permuted into player slots per item 9.
	PlayerSpawns []fixed.Cell
	// PlayerMines[i] is the starter gold mine anchor cell paired with
	// PlayerSpawns[i] (top-left of a MineSize×MineSize rect).
	PlayerMines []fixed.Cell

	ExtraGoldPatches []fixed.Cell
	Decorations      []DecorationPlacement
}

// DecorationPlacement is one accepted decoration cell and its variant
// (1..5), per item 11.
type DecorationPlacement struct {
	Cell    fixed.Cell
	Variant int
}

// Bake runs every pass of spec.md §4.C in order and returns the finished
// grid and placement result. seed drives both the noise field and every
// subsequent LCG draw, so the same seed always bakes the same map.
func Bake(seed int32, width, height int32, numPlayers int, size MapSize) *Result {
	elevations := noise.Generate(uint64(uint32(seed)), uint32(width), uint32(height))
	return BakeFromNoise(seed, elevations, width, height, numPlayers, size)
}

// BakeFromNoise runs the same pipeline as Bake but over an already-generated
// elevation field, per spec.md §6's match-load event: the host generates
// the noise once and ships it verbatim in match.LoadEvent, so every peer
// bakes from byte-identical input instead of re-running noise.Generate
// locally (which would only be safe if every peer's float64 math agreed
// bit-for-bit, an assumption the wire contract would rather not depend on).
// seed still drives every LCG draw the bake itself makes.
func BakeFromNoise(seed int32, elevations []int8, width, height int32, numPlayers int, size MapSize) *Result {
	g := grid.New(width, height)
	for y := int32(0); y < height; y++ {
		for x := int32(0); x < width; x++ {
			c := fixed.Cell{X: x, Y: y}
			g.SetTile(c, grid.Tile{Elevation: elevations[x+y*width]})
		}
	}

	lcg := fixed.NewLCG(seed)

	cleanupShore(g)
	widenGaps(g)
	removeArtifacts(g)
	bakeTiles(g, lcg)
	fixupSouthFronts(g)
	generateRamps(g)
	applyBlocking(g)
	markUnreachable(g)

	res := &Result{Grid: g}
	res.PlayerSpawns, res.PlayerMines = placeSpawns(g, lcg, numPlayers)
	res.ExtraGoldPatches = placeGoldPatches(g, lcg, size)
	res.Decorations = placeDecorations(g, lcg)
	return res
}

func forEachCell(g *grid.Grid, fn func(c fixed.Cell)) {
	for y := int32(0); y < g.Height; y++ {
		for x := int32(0); x < g.Width; x++ {
			fn(fixed.Cell{X: x, Y: y})
		}
	}
}
