package fog

import (
	"testing"

	"goldrush/pkg/engine/fixed"
	"goldrush/pkg/engine/grid"
)

type fakeGrid struct {
	g *grid.Grid
}

func (f fakeGrid) InBounds(c fixed.Cell) bool  { return f.g.InBounds(c) }
func (f fakeGrid) Tile(c fixed.Cell) grid.Tile { return f.g.Tile(c) }
func (f fakeGrid) Cell(c fixed.Cell) grid.Value {
	if !f.g.InBounds(c) {
		return grid.Blocked
	}
	return f.g.Cell(c)
}
func (f fakeGrid) MineAt(c fixed.Cell) uint16 { return f.g.MineAt(c) }

func TestUpdateRevealsCenterCell(t *testing.T) {
	g := grid.New(20, 20)
	s := NewState(20, 20, 2)

	center := fixed.Cell{X: 10, Y: 10}
	s.Update(fakeGrid{g}, 0, center, 1, 8, true, false, nil)

	if !s.IsRevealed(0, center) {
		t.Error("center cell should be revealed after an increment update")
	}
	if s.IsRevealed(1, center) {
		t.Error("team 1 should be unaffected by team 0's reveal")
	}
}

func TestUpdateConcealRestoresHidden(t *testing.T) {
	g := grid.New(20, 20)
	s := NewState(20, 20, 1)
	center := fixed.Cell{X: 10, Y: 10}

	s.Update(fakeGrid{g}, 0, center, 1, 8, true, false, nil)
	if !s.IsRevealed(0, center) {
		t.Fatal("expected center revealed after increment")
	}
	s.Update(fakeGrid{g}, 0, center, 1, 8, false, false, nil)
	if s.IsRevealed(0, center) {
		t.Error("expected center hidden again after matching decrement")
	}
}

func TestUpdateCountersStayNonNegative(t *testing.T) {
	g := grid.New(20, 20)
	s := NewState(20, 20, 1)
	center := fixed.Cell{X: 10, Y: 10}

	s.Update(fakeGrid{g}, 0, center, 1, 8, true, false, nil)
	s.Update(fakeGrid{g}, 0, center, 1, 8, false, false, nil)

	for _, v := range s.fogCounters[0] {
		if v < 0 {
			t.Fatalf("fog counter went negative: %d", v)
		}
	}
}

// Elevation occlusion scenario from spec.md §8: a unit at elevation 0 with
// sight 8 should never count cells beyond a higher wall in the direct line.
func TestUpdateElevationOcclusion(t *testing.T) {
	g := grid.New(20, 20)
	s := NewState(20, 20, 1)

	origin := fixed.Cell{X: 0, Y: 10}
	for y := int32(0); y < 20; y++ {
		t := g.Tile(fixed.Cell{X: 4, Y: y})
		t.Elevation = 2
		g.SetTile(fixed.Cell{X: 4, Y: y}, t)
	}

	s.Update(fakeGrid{g}, 0, origin, 1, 8, true, false, nil)

	beyondWall := fixed.Cell{X: 10, Y: 10}
	if s.IsRevealed(0, beyondWall) {
		t.Error("cell beyond the elevated wall should never be revealed")
	}
}

func TestTakeDirtyClearsAfterRead(t *testing.T) {
	g := grid.New(10, 10)
	s := NewState(10, 10, 1)
	s.Update(fakeGrid{g}, 0, fixed.Cell{X: 5, Y: 5}, 1, 4, true, false, nil)

	if !s.TakeDirty() {
		t.Error("expected dirty flag set after an Update")
	}
	if s.TakeDirty() {
		t.Error("expected dirty flag cleared after TakeDirty")
	}
}

type fakeSnapshotter struct {
	snaps map[uint16]RememberedEntity
}

func (f fakeSnapshotter) Snapshot(id uint16) (RememberedEntity, bool) {
	e, ok := f.snaps[id]
	return e, ok
}

func TestUpdateRemembersOccupantOnConceal(t *testing.T) {
	g := grid.New(10, 10)
	s := NewState(10, 10, 1)

	buildingCell := fixed.Cell{X: 5, Y: 5}
	g.SetCell(buildingCell, grid.EncodeEntity(7))
	snaps := fakeSnapshotter{snaps: map[uint16]RememberedEntity{
		7: {SpriteIndex: 42, Cell: buildingCell, CellSize: 1},
	}}

	s.Update(fakeGrid{g}, 0, buildingCell, 1, 6, true, false, snaps)
	s.Update(fakeGrid{g}, 0, buildingCell, 1, 6, false, false, snaps)

	got, ok := s.Remembered(0, 7)
	if !ok {
		t.Fatal("expected a remembered snapshot for entity 7 after conceal")
	}
	if got.SpriteIndex != 42 {
		t.Errorf("SpriteIndex = %d, want 42", got.SpriteIndex)
	}
}
