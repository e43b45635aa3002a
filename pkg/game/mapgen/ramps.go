package mapgen

import (
	"goldrush/pkg/engine/fixed"
	"goldrush/pkg/engine/grid"
)

const (
	rampMaxTrim    = 4
	rampSeparation = 16
)

var rampPassMinLengths = [2]int32{3, 2}

type rampEdge struct {
	sprite    Sprite
	vertical  bool // run direction: true = scan down a column, false = scan along a row
	stairs    [3]Sprite
	southFace bool
}

var rampEdges = []rampEdge{
	{sprite: SpriteWallSouthEdge, vertical: false,
		stairs: [3]Sprite{SpriteStairSouthLeft, SpriteStairSouthCenter, SpriteStairSouthRight}, southFace: true},
	{sprite: SpriteWallNorthEdge, vertical: false,
		stairs: [3]Sprite{SpriteStairNorthLeft, SpriteStairNorthCenter, SpriteStairNorthRight}},
	{sprite: SpriteWallWestEdge, vertical: true,
		stairs: [3]Sprite{SpriteStairWestTop, SpriteStairWestCenter, SpriteStairWestBottom}},
	{sprite: SpriteWallEastEdge, vertical: true,
		stairs: [3]Sprite{SpriteStairEastTop, SpriteStairEastCenter, SpriteStairEastBottom}},
}

// generateRamps implements item 6: two passes over every wall edge type,
// first requiring runs of at least 3 cells, then at least 2, each run
// trimmed to at most rampMaxTrim cells and rejected if it would land within
// manhattan rampSeparation of an already-placed ramp's endpoints.
func generateRamps(g *grid.Grid) {
	var placedEndpoints []fixed.Cell
	for _, minLen := range rampPassMinLengths {
		for _, edge := range rampEdges {
			for _, run := range findEdgeRuns(g, edge, minLen) {
				run = trimRun(run, rampMaxTrim)
				if len(run) == 0 {
					continue
				}
				a, b := run[0], run[len(run)-1]
				if tooClose(placedEndpoints, a) || tooClose(placedEndpoints, b) {
					continue
				}
				placeRamp(g, edge, run)
				placedEndpoints = append(placedEndpoints, a, b)
			}
		}
	}
}

func tooClose(endpoints []fixed.Cell, c fixed.Cell) bool {
	for _, e := range endpoints {
		if fixed.Manhattan(e, c) <= rampSeparation {
			return true
		}
	}
	return false
}

// findEdgeRuns scans the grid for maximal contiguous runs of edge.sprite,
// along a row (horizontal edges) or a column (vertical edges), at least
// minLen cells long.
func findEdgeRuns(g *grid.Grid, edge rampEdge, minLen int32) [][]fixed.Cell {
	var runs [][]fixed.Cell
	if edge.vertical {
		for x := int32(0); x < g.Width; x++ {
			var run []fixed.Cell
			for y := int32(0); y <= g.Height; y++ {
				var here fixed.Cell
				matches := false
				if y < g.Height {
					here = fixed.Cell{X: x, Y: y}
					matches = Sprite(g.Tile(here).SpriteIndex) == edge.sprite
				}
				if matches {
					run = append(run, here)
					continue
				}
				if int32(len(run)) >= minLen {
					runs = append(runs, run)
				}
				run = nil
			}
		}
	} else {
		for y := int32(0); y < g.Height; y++ {
			var run []fixed.Cell
			for x := int32(0); x <= g.Width; x++ {
				var here fixed.Cell
				matches := false
				if x < g.Width {
					here = fixed.Cell{X: x, Y: y}
					matches = Sprite(g.Tile(here).SpriteIndex) == edge.sprite
				}
				if matches {
					run = append(run, here)
					continue
				}
				if int32(len(run)) >= minLen {
					runs = append(runs, run)
				}
				run = nil
			}
		}
	}
	return runs
}

// trimRun symmetrically shortens a run to at most maxLen cells, keeping
// its center.
func trimRun(run []fixed.Cell, maxLen int) []fixed.Cell {
	for len(run) > maxLen {
		run = run[1 : len(run)-1]
	}
	return run
}

// placeRamp overwrites a run of wall-edge tiles with the direction's stair
// tiles (first cell gets the "left"/"top" variant, last gets "right"/
// "bottom", everything between gets "center"), marks each cell as a ramp,
// and for south-facing ramps also overwrites the tile directly below each
// stair cell with the matching front-face tile.
func placeRamp(g *grid.Grid, edge rampEdge, run []fixed.Cell) {
	for i, c := range run {
		var stair Sprite
		switch {
		case i == 0:
			stair = edge.stairs[0]
		case i == len(run)-1:
			stair = edge.stairs[2]
		default:
			stair = edge.stairs[1]
		}
		t := g.Tile(c)
		t.SpriteIndex = uint16(stair)
		g.SetTile(c, t)
		g.SetRamp(c, true)

		if edge.southFace {
			below := c.Add(fixed.South.Step())
			if g.InBounds(below) {
				var front Sprite
				switch stair {
				case SpriteStairSouthLeft:
					front = SpriteStairSouthFrontLeft
				case SpriteStairSouthRight:
					front = SpriteStairSouthFrontRight
				default:
					front = SpriteStairSouthFrontCenter
				}
				bt := g.Tile(below)
				bt.SpriteIndex = uint16(front)
				g.SetTile(below, bt)
			}
		}
	}
}
