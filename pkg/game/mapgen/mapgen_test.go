package mapgen

import (
	"testing"

	"goldrush/pkg/engine/fixed"
	"goldrush/pkg/engine/grid"
)

func TestBakeProducesCorrectlySizedGrid(t *testing.T) {
	res := Bake(42, 64, 64, 2, SmallMap)
	if res.Grid.Width != 64 || res.Grid.Height != 64 {
		t.Fatalf("grid size = %dx%d, want 64x64", res.Grid.Width, res.Grid.Height)
	}
}

func TestBakeIsDeterministicForTheSameSeed(t *testing.T) {
	a := Bake(1234, 48, 48, 2, SmallMap)
	b := Bake(1234, 48, 48, 2, SmallMap)

	for y := int32(0); y < 48; y++ {
		for x := int32(0); x < 48; x++ {
			c := fixed.Cell{X: x, Y: y}
			if a.Grid.Tile(c) != b.Grid.Tile(c) {
				t.Fatalf("tile at %v diverged between identical bakes", c)
			}
			if a.Grid.Cell(c) != b.Grid.Cell(c) {
				t.Fatalf("occupancy at %v diverged between identical bakes", c)
			}
		}
	}
	for i := range a.PlayerSpawns {
		if a.PlayerSpawns[i] != b.PlayerSpawns[i] || a.PlayerMines[i] != b.PlayerMines[i] {
			t.Fatalf("spawn %d diverged between identical bakes", i)
		}
	}
}

func TestBlockingOnlyKeepsSandAndRampsWalkable(t *testing.T) {
	res := Bake(99, 48, 48, 2, SmallMap)
	g := res.Grid
	for y := int32(0); y < 48; y++ {
		for x := int32(0); x < 48; x++ {
			c := fixed.Cell{X: x, Y: y}
			sprite := Sprite(g.Tile(c).SpriteIndex)
			walkable := isSand(sprite) || g.IsTileRamp(c)
			blocked := g.Cell(c) != grid.Empty
			if walkable && blocked {
				t.Fatalf("walkable tile at %v was blocked", c)
			}
			if !walkable && !blocked {
				t.Fatalf("non-walkable tile at %v was left empty", c)
			}
		}
	}
}

func TestMarkUnreachableDemotesEverythingButTheLargestIsland(t *testing.T) {
	g := grid.New(10, 10)
	// A ring of Blocked cells splits off a 1-cell pocket in the corner
	// from the rest of the (much larger) open grid.
	g.SetCell(fixed.Cell{X: 1, Y: 0}, grid.Blocked)
	g.SetCell(fixed.Cell{X: 1, Y: 1}, grid.Blocked)
	g.SetCell(fixed.Cell{X: 0, Y: 1}, grid.Blocked)

	markUnreachable(g)

	if g.Cell(fixed.Cell{X: 0, Y: 0}) != grid.Unreachable {
		t.Fatal("the isolated corner pocket should have been marked Unreachable")
	}
	if g.Cell(fixed.Cell{X: 5, Y: 5}) != grid.Empty {
		t.Fatal("the large reachable island should stay Empty")
	}
}

func TestPlaceSpawnsReturnsNonOverlappingDistinctCells(t *testing.T) {
	g := grid.New(80, 80)
	for y := int32(0); y < 80; y++ {
		for x := int32(0); x < 80; x++ {
			g.SetTile(fixed.Cell{X: x, Y: y}, grid.Tile{Elevation: ElevationLow, SpriteIndex: uint16(SpriteSand)})
		}
	}
	lcg := fixed.NewLCG(7)

	halls, mines := placeSpawns(g, lcg, 4)
	if len(halls) != 4 || len(mines) != 4 {
		t.Fatalf("got %d halls, %d mines, want 4 each", len(halls), len(mines))
	}

	var placements []placement
	for i := range halls {
		placements = append(placements, placement{cell: mines[i], size: MineSize})
		placements = append(placements, placement{cell: halls[i], size: HallSize})
	}
	for i := range placements {
		for j := i + 1; j < len(placements); j++ {
			if overlaps(placements[i], placements[j]) {
				t.Fatalf("placements %d and %d overlap: %+v / %+v", i, j, placements[i], placements[j])
			}
		}
	}
}

func TestBresenhamCircleOffsetsAreAllAtTheRequestedRadius(t *testing.T) {
	offsets := bresenhamCircleOffsets(10)
	if len(offsets) == 0 {
		t.Fatal("expected at least one offset")
	}
	for _, o := range offsets {
		distSq := o.X*o.X + o.Y*o.Y
		// Integer circle rasterization only approximates the true radius;
		// accept anything within 10 of radius^2.
		if distSq < 90 || distSq > 110 {
			t.Fatalf("offset %v has distSq %d, want close to 100", o, distSq)
		}
	}
}

func TestPoissonSampleRespectsMinimumSeparation(t *testing.T) {
	g := grid.New(100, 100)
	lcg := fixed.NewLCG(55)
	points := poissonSample(g, lcg, 10, func(c fixed.Cell) bool { return true })

	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if fixed.EuclideanSquared(points[i], points[j]) < 100 {
				t.Fatalf("points %v and %v are closer than radius 10", points[i], points[j])
			}
		}
	}
}
