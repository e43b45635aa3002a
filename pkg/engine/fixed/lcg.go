package fixed

// LCG is the single seeded 32-bit linear congruential generator that is the
// only permitted source of randomness inside the simulation. It uses the
// standard Numerical Recipes constants so that bit-identical sequences are
// reproducible across every peer running the same port.
type LCG struct {
	state uint32
}

const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
)

// NewLCG creates an LCG seeded with the given value.
func NewLCG(seed int32) *LCG {
	l := &LCG{}
	l.Seed(seed)
	return l
}

// Seed replaces the generator's internal state, matching the source's
// srand(seed).
func (l *LCG) Seed(seed int32) {
	l.state = uint32(seed)
}

// Next advances the generator and returns the high 31 bits of the new state
// as a non-negative signed integer.
func (l *LCG) Next() int32 {
	l.state = l.state*lcgMultiplier + lcgIncrement
	return int32(l.state >> 1)
}

// IntN returns a value in [0, n) using the rand() % n idiom. This is part of
// the observable contract: callers must not substitute rejection sampling,
// since peers must draw the exact same sequence of values from the exact
// same sequence of LCG states.
func (l *LCG) IntN(n int32) int32 {
	if n <= 0 {
		return 0
	}
	return l.Next() % n
}
