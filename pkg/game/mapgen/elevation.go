package mapgen

import (
	"goldrush/pkg/engine/fixed"
	"goldrush/pkg/engine/grid"
)

const (
	waterShoreDist = 4
	gapWidenSteps  = 3
	artifactDist   = 4
)

// cleanupShore implements item 1: any water cell within manhattan distance
// 4 of a non-water, non-lowground cell (i.e. high or highest ground) is
// raised to lowground, so cliffs never drop straight into open water.
func cleanupShore(g *grid.Grid) {
	raise := map[fixed.Cell]bool{}
	forEachCell(g, func(c fixed.Cell) {
		if g.Tile(c).Elevation != ElevationWater {
			return
		}
		if nearHighGround(g, c) {
			raise[c] = true
		}
	})
	for c := range raise {
		t := g.Tile(c)
		t.Elevation = ElevationLow
		g.SetTile(c, t)
	}
}

func nearHighGround(g *grid.Grid, center fixed.Cell) bool {
	for dy := -int32(waterShoreDist); dy <= waterShoreDist; dy++ {
		for dx := -int32(waterShoreDist); dx <= waterShoreDist; dx++ {
			if absInt32(dx)+absInt32(dy) > waterShoreDist {
				continue
			}
			c := fixed.Cell{X: center.X + dx, Y: center.Y + dy}
			if !g.InBounds(c) {
				continue
			}
			if e := g.Tile(c).Elevation; e == ElevationHigh || e == ElevationHighest {
				return true
			}
		}
	}
	return false
}

// widenGaps implements item 2: for each non-water cell, in each cardinal
// direction, if that neighbor is higher, the three cells in the opposite
// direction are lowered to the current cell's elevation. This widens
// single-cell elevation steps into a walkable ramp approach.
func widenGaps(g *grid.Grid) {
	cardinals := []fixed.Direction{fixed.North, fixed.East, fixed.South, fixed.West}
	forEachCell(g, func(c fixed.Cell) {
		if g.Tile(c).Elevation == ElevationWater {
			return
		}
		elevation := g.Tile(c).Elevation
		for _, dir := range cardinals {
			neighbor := c.Add(dir.Step())
			if !g.InBounds(neighbor) {
				continue
			}
			if g.Tile(neighbor).Elevation <= elevation {
				continue
			}
			opposite := dir.Step().Scale(-1)
			cur := c
			for i := 0; i < gapWidenSteps; i++ {
				cur = cur.Add(opposite)
				if !g.InBounds(cur) {
					break
				}
				t := g.Tile(cur)
				t.Elevation = elevation
				g.SetTile(cur, t)
			}
		}
	})
}

// removeArtifacts implements item 3: any highest-tier cell with a
// non-highground cell within manhattan distance 4 is demoted to
// highground, repeated to a fixed point. Removes isolated single-cell
// elevation spikes the earlier passes couldn't smooth.
func removeArtifacts(g *grid.Grid) {
	for {
		changed := false
		var demote []fixed.Cell
		forEachCell(g, func(c fixed.Cell) {
			if g.Tile(c).Elevation != ElevationHighest {
				return
			}
			if hasNonHighgroundNeighbor(g, c) {
				demote = append(demote, c)
			}
		})
		for _, c := range demote {
			t := g.Tile(c)
			t.Elevation = ElevationHigh
			g.SetTile(c, t)
			changed = true
		}
		if !changed {
			return
		}
	}
}

func hasNonHighgroundNeighbor(g *grid.Grid, center fixed.Cell) bool {
	for dy := -int32(artifactDist); dy <= artifactDist; dy++ {
		for dx := -int32(artifactDist); dx <= artifactDist; dx++ {
			if absInt32(dx)+absInt32(dy) > artifactDist {
				continue
			}
			c := fixed.Cell{X: center.X + dx, Y: center.Y + dy}
			if !g.InBounds(c) {
				continue
			}
			if g.Tile(c).Elevation < ElevationHigh {
				return true
			}
		}
	}
	return false
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
