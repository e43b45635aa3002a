// Package fixed provides the deterministic Q16.16 fixed-point scalar, 2D
// vector helpers, and the single seeded LCG random source used throughout
// the simulation. Floating point is never used for anything that must be
// reproduced bit-identically across peers.
package fixed

// Fixed is a Q16.16 fixed-point number: 16 integer bits, 16 fractional bits,
// stored in a 32-bit signed integer.
type Fixed int32

// FractionalBits is the number of bits of fractional precision.
const FractionalBits = 16

// One is the fixed-point representation of the integer 1.
const One Fixed = 1 << FractionalBits

// FromInt converts an integer to a Fixed value.
func FromInt(i int32) Fixed {
	return Fixed(i << FractionalBits)
}

// FromRaw wraps a raw Q16.16 bit pattern as a Fixed value.
func FromRaw(raw int32) Fixed {
	return Fixed(raw)
}

// Raw returns the underlying Q16.16 bit pattern.
func (f Fixed) Raw() int32 {
	return int32(f)
}

// IntegerPart returns the integer part, rounded toward negative infinity
// (an arithmetic shift, so -1.5 gives -2).
func (f Fixed) IntegerPart() int32 {
	return int32(f) >> FractionalBits
}

// FractionalValue returns the fractional bits as an integer in [0, 1<<16).
func (f Fixed) FractionalValue() int32 {
	return int32(f) & ((1 << FractionalBits) - 1)
}

// Add returns a + b.
func (a Fixed) Add(b Fixed) Fixed {
	return a + b
}

// Sub returns a - b.
func (a Fixed) Sub(b Fixed) Fixed {
	return a - b
}

// Mul returns a * b, promoting to int64 to avoid overflow before shifting
// back down by the fractional width.
func (a Fixed) Mul(b Fixed) Fixed {
	return Fixed((int64(a) * int64(b)) >> FractionalBits)
}

// Div returns a / b, promoting the numerator to int64 and pre-shifting by
// the fractional width before dividing.
func (a Fixed) Div(b Fixed) Fixed {
	return Fixed((int64(a) << FractionalBits) / int64(b))
}

// Neg returns -a.
func (a Fixed) Neg() Fixed {
	return -a
}

// Less reports whether a < b.
func (a Fixed) Less(b Fixed) bool {
	return a < b
}

// LessEqual reports whether a <= b.
func (a Fixed) LessEqual(b Fixed) bool {
	return a <= b
}

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater than b.
func (a Fixed) Cmp(b Fixed) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Abs returns the absolute value of a.
func (a Fixed) Abs() Fixed {
	if a < 0 {
		return -a
	}
	return a
}
