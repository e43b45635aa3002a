package fixed

// Cell is a 2D integer grid coordinate (the source's "xy").
type Cell struct {
	X, Y int32
}

// Add returns the componentwise sum of two cells.
func (c Cell) Add(o Cell) Cell {
	return Cell{c.X + o.X, c.Y + o.Y}
}

// Sub returns the componentwise difference of two cells.
func (c Cell) Sub(o Cell) Cell {
	return Cell{c.X - o.X, c.Y - o.Y}
}

// Scale returns c scaled by an integer factor.
func (c Cell) Scale(n int32) Cell {
	return Cell{c.X * n, c.Y * n}
}

// Eq reports whether two cells are equal.
func (c Cell) Eq(o Cell) bool {
	return c.X == o.X && c.Y == o.Y
}

// Manhattan returns the manhattan (taxicab) distance between two cells.
func Manhattan(a, b Cell) int32 {
	return absInt32(a.X-b.X) + absInt32(a.Y-b.Y)
}

// EuclideanSquared returns the squared euclidean distance between two cells,
// computed entirely with integers (no sqrt is ever needed inside the
// simulation).
func EuclideanSquared(a, b Cell) int64 {
	dx := int64(a.X - b.X)
	dy := int64(a.Y - b.Y)
	return dx*dx + dy*dy
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// FVec is a 2D fixed-point sub-cell position.
type FVec struct {
	X, Y Fixed
}

// FVecFromCell lifts an integer cell to a fixed-point vector at its origin.
func FVecFromCell(c Cell) FVec {
	return FVec{FromInt(c.X), FromInt(c.Y)}
}

// Add returns the componentwise sum of two vectors.
func (v FVec) Add(o FVec) FVec {
	return FVec{v.X.Add(o.X), v.Y.Add(o.Y)}
}

// Sub returns the componentwise difference of two vectors.
func (v FVec) Sub(o FVec) FVec {
	return FVec{v.X.Sub(o.X), v.Y.Sub(o.Y)}
}

// Scale multiplies both components by a fixed-point scalar.
func (v FVec) Scale(s Fixed) FVec {
	return FVec{v.X.Mul(s), v.Y.Mul(s)}
}

// DistanceSquared returns the squared distance between two vectors as a
// Fixed value.
func (v FVec) DistanceSquared(o FVec) Fixed {
	dx := v.X.Sub(o.X)
	dy := v.Y.Sub(o.Y)
	return dx.Mul(dx).Add(dy.Mul(dy))
}

// ToCell truncates a fixed-point vector down to its integer cell.
func (v FVec) ToCell() Cell {
	return Cell{v.X.IntegerPart(), v.Y.IntegerPart()}
}

// approxLength computes an integer square root of a fixed-point value via
// Newton's method. Used only for normalization of movement vectors, never
// for distance comparisons (those stay squared, per spec).
func approxLength(sq Fixed) Fixed {
	if sq <= 0 {
		return 0
	}
	x := sq
	for i := 0; i < 16; i++ {
		if x == 0 {
			break
		}
		x = (x.Add(sq.Div(x))) / 2
	}
	return x
}

// Normalize returns a unit-length (1.0 in fixed point) vector pointing the
// same direction as v, or the zero vector if v is the zero vector.
func (v FVec) Normalize() FVec {
	lenSq := v.X.Mul(v.X).Add(v.Y.Mul(v.Y))
	if lenSq == 0 {
		return FVec{}
	}
	length := approxLength(lenSq)
	if length == 0 {
		return FVec{}
	}
	return FVec{v.X.Div(length), v.Y.Div(length)}
}

// DirectionXY returns the step offset for each of the 8 compass directions,
// indexed by Direction. Fixed ordering per spec.md: N=0, NE=1, E=2, SE=3,
// S=4, SW=5, W=6, NW=7.
var DirectionXY = [8]Cell{
	{0, -1},  // North
	{1, -1},  // NorthEast
	{1, 0},   // East
	{1, 1},   // SouthEast
	{0, 1},   // South
	{-1, 1},  // SouthWest
	{-1, 0},  // West
	{-1, -1}, // NorthWest
}

// DirectionMask is a bit, one per direction, used to build 8-neighbor
// occupancy masks during autotiling and corner-squeeze checks.
var DirectionMask = [8]uint32{
	1 << 0, 1 << 1, 1 << 2, 1 << 3, 1 << 4, 1 << 5, 1 << 6, 1 << 7,
}

// Direction is one of the 8 compass directions, in the fixed order the
// simulation depends on for bit-identical iteration.
type Direction int

// The 8 compass directions, in their fixed order.
const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	DirectionCount
)

// Step returns the integer offset for stepping one cell in this direction.
func (d Direction) Step() Cell {
	return DirectionXY[d]
}

// Mask returns this direction's bit in a neighbor occupancy mask.
func (d Direction) Mask() uint32 {
	return DirectionMask[d]
}

// IsDiagonal reports whether d is one of the four diagonal directions.
func (d Direction) IsDiagonal() bool {
	return d%2 == 1
}
