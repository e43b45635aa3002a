// Package grid implements the bounded 2D tile grid and cell occupancy layer
// described in spec.md §3/§4.D: tiles never move during simulation (only
// their elevation/sprite are read), while the parallel occupancy grid is
// mutated every tick by entity behaviors.
package grid

import "goldrush/pkg/engine/fixed"

// Occupancy sentinel values. Cell values greater than Empty are always
// blocking (Blocked/Unreachable/decoration). Cell values less than Empty
// encode an entity id via EncodeEntity/DecodeEntity.
const (
	Empty Value = 0
	Blocked Value = 1
	Unreachable Value = 2
	// Decoration1..Decoration5 occupy Empty+3..Empty+7.
	Decoration1 Value = 3
)

// DecorationN returns the occupancy value for decoration variant n (1..5).
func DecorationN(n int) Value {
	return Decoration1 + Value(n-1)
}

// Value is a single occupancy grid cell: either a sentinel (Empty, Blocked,
// Unreachable, a decoration) or an encoded entity id.
type Value int32

// EncodeEntity converts an entity id into an occupancy cell value. Entity
// ids are encoded strictly below Empty, matching spec.md's "id < EMPTY"
// convention, via a fixed negative offset so they never collide with the
// small positive sentinel range.
func EncodeEntity(id uint16) Value {
	return Value(-1 - int32(id))
}

// DecodeEntity reverses EncodeEntity. Only valid when IsEntity(v) is true.
func DecodeEntity(v Value) uint16 {
	return uint16(-1 - int32(v))
}

// IsEntity reports whether v encodes an entity id rather than a sentinel.
func (v Value) IsEntity() bool {
	return v < Empty
}

// IsBlockingSentinel reports whether v is one of the always-blocking
// sentinels (Blocked, Unreachable, any decoration).
func (v Value) IsBlockingSentinel() bool {
	return v > Empty
}

// Tile is a single immutable-during-simulation map tile.
type Tile struct {
	SpriteIndex uint16
	Elevation   int8
}

// Grid is the bounded W×H map: a tile layer, an occupancy layer, and a
// parallel mine-id layer (land mines are invisible to normal occupancy but
// remembered separately for fog reveal purposes, per spec.md §3).
type Grid struct {
	Width, Height int32

	tiles     []Tile
	cells     []Value
	mineCells []uint16 // IDNull sentinel when no mine present
	ramps     rampSet
}

// IDNull mirrors the entity package's null id without importing it (grid is
// a lower-level leaf package; entity depends on grid, not vice versa).
const IDNull = 4097

// New creates a Grid of the given dimensions, every cell Empty, every mine
// cell IDNull.
func New(width, height int32) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
	}
	n := int(width) * int(height)
	g.tiles = make([]Tile, n)
	g.cells = make([]Value, n)
	g.mineCells = make([]uint16, n)
	for i := range g.mineCells {
		g.mineCells[i] = IDNull
	}
	return g
}

func (g *Grid) index(c fixed.Cell) int {
	return int(c.X) + int(c.Y)*int(g.Width)
}

// InBounds reports whether a single cell lies within the grid.
func (g *Grid) InBounds(c fixed.Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.Width && c.Y < g.Height
}

// InBoundsRect reports whether a size×size rect anchored at c lies fully
// within the grid.
func (g *Grid) InBoundsRect(c fixed.Cell, size int32) bool {
	return c.X >= 0 && c.Y >= 0 && c.X+size-1 < g.Width && c.Y+size-1 < g.Height
}

// Tile returns the tile at c. Caller must ensure c is in bounds.
func (g *Grid) Tile(c fixed.Cell) Tile {
	return g.tiles[g.index(c)]
}

// SetTile overwrites the tile at c.
func (g *Grid) SetTile(c fixed.Cell, t Tile) {
	g.tiles[g.index(c)] = t
}

// Cell returns the occupancy value at c.
func (g *Grid) Cell(c fixed.Cell) Value {
	return g.cells[g.index(c)]
}

// SetCell sets a single occupancy cell.
func (g *Grid) SetCell(c fixed.Cell, v Value) {
	g.cells[g.index(c)] = v
}

// SetCellRect sets every cell in a size×size rect anchored at c to v.
func (g *Grid) SetCellRect(c fixed.Cell, size int32, v Value) {
	for y := c.Y; y < c.Y+size; y++ {
		for x := c.X; x < c.X+size; x++ {
			g.cells[g.index(fixed.Cell{X: x, Y: y})] = v
		}
	}
}

// IsCellRectEqualTo reports whether every cell in the rect equals v.
func (g *Grid) IsCellRectEqualTo(c fixed.Cell, size int32, v Value) bool {
	for y := c.Y; y < c.Y+size; y++ {
		for x := c.X; x < c.X+size; x++ {
			if g.cells[g.index(fixed.Cell{X: x, Y: y})] != v {
				return false
			}
		}
	}
	return true
}

// MineAt returns the id of the land mine occupying c, or IDNull if none.
func (g *Grid) MineAt(c fixed.Cell) uint16 {
	return g.mineCells[g.index(c)]
}

// SetMineAt records (or clears, with IDNull) the land mine at c.
func (g *Grid) SetMineAt(c fixed.Cell, id uint16) {
	g.mineCells[g.index(c)] = id
}

// IsCellRectSameElevation reports whether every tile in a size×size rect
// anchored at c has the same elevation as the anchor tile.
func (g *Grid) IsCellRectSameElevation(c fixed.Cell, size int32) bool {
	if !g.InBoundsRect(c, size) {
		return false
	}
	elevation := g.Tile(c).Elevation
	for y := c.Y; y < c.Y+size; y++ {
		for x := c.X; x < c.X+size; x++ {
			if g.tiles[g.index(fixed.Cell{X: x, Y: y})].Elevation != elevation {
				return false
			}
		}
	}
	return true
}
