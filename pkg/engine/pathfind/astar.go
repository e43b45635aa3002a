// Package pathfind implements the grid A* pathfinder described in
// spec.md §4.E, ported from the source's map_pathfind: a linear-scanned
// frontier (never a heap, to keep tie-breaking deterministic across
// peers), fixed-point costs, the no-corner-squeeze rule, and a
// reverse-search fallback when the goal itself is blocked.
package pathfind

import (
	"github.com/zyedidia/generic/mapset"

	"goldrush/pkg/engine/fixed"
	"goldrush/pkg/engine/grid"
)

// maxExplored caps the search; beyond this the algorithm falls back to the
// closest-to-goal node it has found so far, per spec.md §4.E step 7.
const maxExplored = 2000

const (
	cardinalCost = fixed.One
)

var diagonalCost = fixed.FromInt(3).Div(fixed.FromInt(2))

type node struct {
	cost     fixed.Fixed
	distance fixed.Fixed
	parent   int // index into explored, or -1 for the start node
	cell     fixed.Cell
}

func (n node) score() fixed.Fixed {
	return n.cost.Add(n.distance)
}

// Grid is the subset of grid.Grid operations the pathfinder needs.
type Grid interface {
	InBounds(c fixed.Cell) bool
	InBoundsRect(c fixed.Cell, size int32) bool
	Cell(c fixed.Cell) grid.Value
	IsCellRectOccupied(cell fixed.Cell, size int32, origin fixed.Cell, goldWalk bool, units grid.UnitLookup) bool
}

// FindPath implements spec.md §4.E. It returns the path from the first
// step after from up to the last reachable cell toward to; possibly empty.
// ignored cells are treated as pre-explored (skipped entirely).
func FindPath(g Grid, units grid.UnitLookup, from, to fixed.Cell, cellSize int32, goldWalk bool, ignored []fixed.Cell) []fixed.Cell {
	if from.Eq(to) {
		return nil
	}

	// Step 2: find an alternate goal cell for large units if the goal rect
	// is occupied.
	if cellSize > 1 && g.IsCellRectOccupied(to, cellSize, from, goldWalk, units) {
		to = findAlternateGoal(g, units, from, to, cellSize, goldWalk)
	}

	explored := map[fixed.Cell]bool{}
	for _, c := range ignored {
		explored[c] = true
	}

	// Step 3: if the (possibly reassigned) goal lies on blocked/unreachable
	// terrain, reverse-search outward from it for the nearest unoccupied
	// alternative and use that as the new goal.
	if isTargetUnreachable(g, to, cellSize) {
		if found, ok := reverseSearch(g, units, from, to, cellSize, goldWalk); ok {
			to = found
		}
	}

	frontier := []node{{
		cost:     0,
		distance: fixed.FromInt(fixed.Manhattan(from, to)),
		parent:   -1,
		cell:     from,
	}}
	var explist []node
	exploredIndex := map[fixed.Cell]int{}
	for c := range explored {
		exploredIndex[c] = -2 // pre-marked, never a valid explored index
	}

	closest := -1
	foundPath := false
	var pathEnd node

	for len(frontier) > 0 {
		smallestIdx := 0
		for i := 1; i < len(frontier); i++ {
			if frontier[i].score() < frontier[smallestIdx].score() {
				smallestIdx = i
			}
		}
		smallest := frontier[smallestIdx]
		frontier = append(frontier[:smallestIdx], frontier[smallestIdx+1:]...)

		if smallest.cell.Eq(to) {
			foundPath = true
			pathEnd = smallest
			break
		}

		explist = append(explist, smallest)
		idx := len(explist) - 1
		exploredIndex[smallest.cell] = idx
		if closest == -1 || explist[idx].distance < explist[closest].distance {
			closest = idx
		}

		if len(explist) > maxExplored-1 {
			break
		}

		var cardinalBlocked [4]bool
		for i := range cardinalBlocked {
			cardinalBlocked[i] = true
		}

		for _, dir := range childDirectionOrder {
			child := node{
				cost:     smallest.cost.Add(stepCost(dir)),
				distance: fixed.FromInt(fixed.Manhattan(smallest.cell.Add(dir.Step()), to)),
				parent:   idx,
				cell:     smallest.cell.Add(dir.Step()),
			}

			if !g.InBoundsRect(child.cell, cellSize) {
				continue
			}

			isGoalStep := child.cell.Eq(to) && fixed.Manhattan(smallest.cell, child.cell) == 1
			if g.IsCellRectOccupied(child.cell, cellSize, from, goldWalk, units) && !isGoalStep {
				continue
			}

			if !dir.IsDiagonal() {
				cardinalBlocked[dir/2] = false
			} else {
				next := (dir + 1) % fixed.DirectionCount
				prev := dir - 1
				if cardinalBlocked[next/2] && cardinalBlocked[prev/2] {
					continue
				}
			}

			if ei, seen := exploredIndex[child.cell]; seen && ei != -1 {
				continue
			}

			mergeOrAppendFrontier(&frontier, child)
		}
	}

	var finalNode node
	if foundPath {
		finalNode = pathEnd
	} else if closest >= 0 {
		finalNode = explist[closest]
	} else {
		return nil
	}

	path := backtrack(finalNode, explist)

	if len(path) > 0 && path[len(path)-1].Eq(to) && g.IsCellRectOccupied(to, cellSize, from, goldWalk, units) {
		path = path[:len(path)-1]
	}
	return path
}

// childDirectionOrder is the fixed child-visitation order spec.md §4.E
// mandates: cardinals first (so the corner-squeeze mask is populated before
// diagonals are considered), then diagonals.
var childDirectionOrder = [8]fixed.Direction{
	fixed.North, fixed.East, fixed.South, fixed.West,
	fixed.NorthEast, fixed.SouthEast, fixed.SouthWest, fixed.NorthWest,
}

func stepCost(d fixed.Direction) fixed.Fixed {
	if d.IsDiagonal() {
		return diagonalCost
	}
	return cardinalCost
}

func mergeOrAppendFrontier(frontier *[]node, child node) {
	for i, f := range *frontier {
		if f.cell.Eq(child.cell) {
			if child.score() < f.score() {
				(*frontier)[i] = child
			}
			return
		}
	}
	*frontier = append(*frontier, child)
}

func backtrack(end node, explored []node) []fixed.Cell {
	var path []fixed.Cell
	current := end
	for current.parent != -1 {
		path = append([]fixed.Cell{current.cell}, path...)
		current = explored[current.parent]
	}
	return path
}

func isTargetUnreachable(g Grid, to fixed.Cell, cellSize int32) bool {
	for y := to.Y; y < to.Y+cellSize; y++ {
		for x := to.X; x < to.X+cellSize; x++ {
			c := fixed.Cell{X: x, Y: y}
			if !g.InBounds(c) {
				continue
			}
			v := g.Cell(c)
			if v == grid.Blocked || v == grid.Unreachable {
				return true
			}
		}
	}
	return false
}

func findAlternateGoal(g Grid, units grid.UnitLookup, from, to fixed.Cell, cellSize int32, goldWalk bool) fixed.Cell {
	best := to
	bestDist := int32(-1)
	for x := int32(0); x < cellSize; x++ {
		for y := int32(0); y < cellSize; y++ {
			if x == 0 && y == 0 {
				continue
			}
			alt := to.Sub(fixed.Cell{X: x, Y: y})
			if g.InBoundsRect(alt, cellSize) && !g.IsCellRectOccupied(alt, cellSize, from, goldWalk, units) {
				d := fixed.Manhattan(from, alt)
				if bestDist == -1 || d < bestDist {
					best = alt
					bestDist = d
				}
			}
		}
	}
	return best
}

// reverseSearch performs the reverse A* of spec.md §4.E step 3, expanding
// outward from the (blocked) goal until it finds a cell unoccupied with
// respect to from.
func reverseSearch(g Grid, units grid.UnitLookup, from, to fixed.Cell, cellSize int32, goldWalk bool) (fixed.Cell, bool) {
	frontier := []node{{cost: 0, distance: 0, parent: -1, cell: to}}
	explored := mapset.New[fixed.Cell]()

	for len(frontier) > 0 {
		smallestIdx := 0
		for i := 1; i < len(frontier); i++ {
			if frontier[i].score() < frontier[smallestIdx].score() {
				smallestIdx = i
			}
		}
		smallest := frontier[smallestIdx]
		frontier = append(frontier[:smallestIdx], frontier[smallestIdx+1:]...)

		if !g.IsCellRectOccupied(smallest.cell, cellSize, from, goldWalk, units) {
			return smallest.cell, true
		}

		explored.Put(smallest.cell)

		for _, dir := range childDirectionOrder {
			child := node{
				cost:     smallest.cost.Add(stepCost(dir)),
				distance: fixed.FromInt(fixed.Manhattan(smallest.cell.Add(dir.Step()), to)),
				parent:   -1,
				cell:     smallest.cell.Add(dir.Step()),
			}
			if !g.InBoundsRect(child.cell, cellSize) {
				continue
			}
			if explored.Has(child.cell) {
				continue
			}
			mergeOrAppendFrontier(&frontier, child)
		}
	}
	return to, false
}
