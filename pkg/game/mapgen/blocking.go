package mapgen

import (
	"goldrush/pkg/engine/fixed"
	"goldrush/pkg/engine/grid"
)

// applyBlocking implements item 7: every tile that isn't sand or a ramp
// stair is marked Blocked in the occupancy layer — walls and water are
// impassable terrain, not just scenery.
func applyBlocking(g *grid.Grid) {
	forEachCell(g, func(c fixed.Cell) {
		sprite := Sprite(g.Tile(c).SpriteIndex)
		if isSand(sprite) || g.IsTileRamp(c) {
			return
		}
		g.SetCell(c, grid.Blocked)
	})
}

// markUnreachable implements item 8: label every maximal connected region
// of non-blocked cells (4-connected through cardinal neighbors, since
// that's how pathfinding steps), and demote every island except the
// largest to Unreachable.
func markUnreachable(g *grid.Grid) {
	width, height := g.Width, g.Height
	visited := make([]bool, int(width)*int(height))
	idx := func(c fixed.Cell) int { return int(c.X) + int(c.Y)*int(width) }

	var islands [][]fixed.Cell
	forEachCell(g, func(start fixed.Cell) {
		if visited[idx(start)] || g.Cell(start) != grid.Empty {
			return
		}
		var island []fixed.Cell
		queue := []fixed.Cell{start}
		visited[idx(start)] = true
		for len(queue) > 0 {
			c := queue[0]
			queue = queue[1:]
			island = append(island, c)
			for _, dir := range []fixed.Direction{fixed.North, fixed.East, fixed.South, fixed.West} {
				n := c.Add(dir.Step())
				if !g.InBounds(n) || visited[idx(n)] || g.Cell(n) != grid.Empty {
					continue
				}
				visited[idx(n)] = true
				queue = append(queue, n)
			}
		}
		islands = append(islands, island)
	})

	if len(islands) == 0 {
		return
	}
	largest := 0
	for i, island := range islands {
		if len(island) > len(islands[largest]) {
			largest = i
		}
	}
	for i, island := range islands {
		if i == largest {
			continue
		}
		for _, c := range island {
			g.SetCell(c, grid.Unreachable)
		}
	}
}
