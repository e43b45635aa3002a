package mapgen

import (
	"goldrush/pkg/engine/fixed"
	"goldrush/pkg/engine/grid"
)

const (
	poissonAttempts      = 30
	decorationDiskRadius = 16
	decorationVariants   = 5
)

// bresenhamCircleOffsets returns the set of integer offsets lying on a
// circle of the given radius, via the midpoint circle algorithm's 8-way
// symmetry. Used as the candidate-offset ring for Poisson-disk sampling,
// per item 10/11's "candidate offsets precomputed via Bresenham circle".
func bresenhamCircleOffsets(radius int32) []fixed.Cell {
	var offsets []fixed.Cell
	x, y := radius, int32(0)
	err := 1 - radius
	plot := func(x, y int32) {
		offsets = append(offsets,
			fixed.Cell{X: x, Y: y}, fixed.Cell{X: -x, Y: y},
			fixed.Cell{X: x, Y: -y}, fixed.Cell{X: -x, Y: -y},
			fixed.Cell{X: y, Y: x}, fixed.Cell{X: -y, Y: x},
			fixed.Cell{X: y, Y: -x}, fixed.Cell{X: -y, Y: -x},
		)
	}
	for x >= y {
		plot(x, y)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
	return offsets
}

// poissonSample runs Bridson-style Poisson-disk sampling seeded from a
// single LCG-drawn point: each active frontier point tries poissonAttempts
// candidates drawn from the circle-offset ring before being retired. valid
// reports whether a candidate cell may be accepted.
func poissonSample(g *grid.Grid, lcg *fixed.LCG, radius int32, valid func(c fixed.Cell) bool) []fixed.Cell {
	offsets := bresenhamCircleOffsets(radius)
	if len(offsets) == 0 {
		return nil
	}

	seed := fixed.Cell{X: lcg.IntN(g.Width), Y: lcg.IntN(g.Height)}
	if !valid(seed) {
		// Fall back to scanning for any valid seed so a hostile seed point
		// doesn't empty the whole pass.
		found := false
		for y := int32(0); y < g.Height && !found; y++ {
			for x := int32(0); x < g.Width; x++ {
				if c := (fixed.Cell{X: x, Y: y}); valid(c) {
					seed = c
					found = true
					break
				}
			}
		}
		if !found {
			return nil
		}
	}

	accepted := []fixed.Cell{seed}
	active := []fixed.Cell{seed}
	for len(active) > 0 {
		frontier := active[len(active)-1]
		placed := false
		for attempt := 0; attempt < poissonAttempts; attempt++ {
			off := offsets[lcg.IntN(int32(len(offsets)))]
			candidate := frontier.Add(off)
			if !g.InBounds(candidate) || !valid(candidate) {
				continue
			}
			if tooCloseToAny(accepted, candidate, radius) {
				continue
			}
			accepted = append(accepted, candidate)
			active = append(active, candidate)
			placed = true
			break
		}
		if !placed {
			active = active[:len(active)-1]
		}
	}
	return accepted[1:] // drop the seed itself; it placed nothing of its own
}

func tooCloseToAny(points []fixed.Cell, c fixed.Cell, radius int32) bool {
	for _, p := range points {
		if fixed.EuclideanSquared(p, c) < int64(radius)*int64(radius) {
			return true
		}
	}
	return false
}

// placeGoldPatches implements item 10: extra gold mines beyond each
// player's starting mine, Poisson-sampled at the map-size gold-disk
// radius over reachable, unoccupied ground.
func placeGoldPatches(g *grid.Grid, lcg *fixed.LCG, size MapSize) []fixed.Cell {
	radius := goldDiskRadius(size)
	return poissonSample(g, lcg, radius, func(c fixed.Cell) bool {
		return g.IsCellRectEqualTo(c, MineSize, grid.Empty) && g.InBoundsRect(c, MineSize) &&
			g.IsCellRectSameElevation(c, MineSize)
	})
}

// placeDecorations implements item 11: a second, denser Poisson-disk pass
// that, unlike gold patches, is allowed to land on Unreachable cells —
// decorations are cosmetic and never pathed to.
func placeDecorations(g *grid.Grid, lcg *fixed.LCG) []DecorationPlacement {
	cells := poissonSample(g, lcg, decorationDiskRadius, func(c fixed.Cell) bool {
		v := g.Cell(c)
		return v == grid.Empty || v == grid.Unreachable
	})
	out := make([]DecorationPlacement, len(cells))
	for i, c := range cells {
		out[i] = DecorationPlacement{Cell: c, Variant: 1 + int(lcg.IntN(decorationVariants))}
	}
	return out
}
