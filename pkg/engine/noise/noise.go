// Package noise is a bit-exact Go port of the OpenSimplex2 2D noise
// generator used to seed the procedural map generator. It intentionally
// uses float64 math identically to the source port (noise itself is a
// pre-simulation input, quantized to an integer before it ever reaches
// deterministic simulation code), so its output must match the original
// implementation's seed-to-value mapping exactly.
package noise

const (
	skew2D       = 0.366025403784439
	unskew2D     = -0.21132486540518713
	rSquared2D   = 2.0 / 3.0
	primeX       = 5910200641878280303
	primeY       = 6452764530575939509
	hashMult     = 6026932503003350773
	gradExponent = 7
	numGrads2D   = 1 << gradExponent
	normalizer   = 0.05481866495625118
	frequency    = 1.0 / 56.0
)

var gradients2D = buildGradients()

func buildGradients() [numGrads2D * 2]float64 {
	base := [48]float64{
		0.38268343236509, 0.923879532511287,
		0.923879532511287, 0.38268343236509,
		0.923879532511287, -0.38268343236509,
		0.38268343236509, -0.923879532511287,
		-0.38268343236509, -0.923879532511287,
		-0.923879532511287, -0.38268343236509,
		-0.923879532511287, 0.38268343236509,
		-0.38268343236509, 0.923879532511287,
		0.130526192220052, 0.99144486137381,
		0.608761429008721, 0.793353340291235,
		0.793353340291235, 0.608761429008721,
		0.99144486137381, 0.130526192220051,
		0.99144486137381, -0.130526192220051,
		0.793353340291235, -0.60876142900872,
		0.608761429008721, -0.793353340291235,
		0.130526192220052, -0.99144486137381,
		-0.130526192220052, -0.99144486137381,
		-0.608761429008721, -0.793353340291235,
		-0.793353340291235, -0.608761429008721,
		-0.99144486137381, -0.130526192220052,
		-0.99144486137381, 0.130526192220051,
		-0.793353340291235, 0.608761429008721,
		-0.608761429008721, 0.793353340291235,
		-0.130526192220052, 0.99144486137381,
	}
	for i := range base {
		base[i] /= normalizer
	}
	var out [numGrads2D * 2]float64
	for i := range out {
		out[i] = base[i%48]
	}
	return out
}

func fastFloor(x float64) int64 {
	xi := int64(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}

func grad(seed uint64, xsvp, ysvp int64, dx, dy float64) float64 {
	hash := (seed ^ uint64(xsvp) ^ uint64(ysvp)) * hashMult
	hash ^= hash >> (64 - gradExponent + 1)
	gi := int(hash) & ((numGrads2D - 1) << 1)
	return gradients2D[gi]*dx + gradients2D[gi+1]*dy
}

// simplex2D computes a single OpenSimplex2 noise sample at (x, y) using the
// given seed, following the source's exact skew/unskew/contribution shape.
func simplex2D(seed uint64, x, y float64) float64 {
	skew := skew2D * (x + y)
	xs := x + skew
	ys := y + skew

	xsb := fastFloor(xs)
	ysb := fastFloor(ys)
	xi := xs - float64(xsb)
	yi := ys - float64(ysb)

	xsbp := xsb * primeX
	ysbp := ysb * primeY

	t := (xi + yi) * unskew2D
	dx0 := xi + t
	dy0 := yi + t

	a0 := rSquared2D - dx0*dx0 - dy0*dy0
	value := (a0 * a0) * (a0 * a0) * grad(seed, xsbp, ysbp, dx0, dy0)

	a1 := 2*(1+2*unskew2D)*(1/unskew2D+2)*t + (-2*(1+2*unskew2D)*(1+2*unskew2D) + a0)
	dx1 := dx0 - (1 + 2*unskew2D)
	dy1 := dy0 - (1 + 2*unskew2D)
	value += (a1 * a1) * (a1 * a1) * grad(seed, xsbp+primeX, ysbp+primeY, dx1, dy1)

	xmyi := xi - yi
	if t < unskew2D {
		if xi+xmyi > 1 {
			dx2 := dx0 - (3*unskew2D + 2)
			dy2 := dy0 - (3*unskew2D + 1)
			a2 := rSquared2D - dx2*dx2 - dy2*dy2
			if a2 > 0 {
				value += (a2 * a2) * (a2 * a2) * grad(seed, xsbp+primeX+primeX, ysbp+primeY, dx2, dy2)
			}
		} else {
			dx2 := dx0 - unskew2D
			dy2 := dy0 - (unskew2D + 1)
			a2 := rSquared2D - dx2*dx2 - dy2*dy2
			if a2 > 0 {
				value += (a2 * a2) * (a2 * a2) * grad(seed, xsbp, ysbp+primeY, dx2, dy2)
			}
		}

		if yi-xmyi > 1 {
			dx3 := dx0 - (3*unskew2D + 1)
			dy3 := dy0 - (3*unskew2D + 2)
			a3 := rSquared2D - dx3*dx3 - dy3*dy3
			if a3 > 0 {
				value += (a3 * a3) * (a3 * a3) * grad(seed, xsbp+primeX, ysbp+primeY+primeY, dx3, dy3)
			}
		} else {
			dx3 := dx0 - (unskew2D + 1)
			dy3 := dy0 - unskew2D
			a3 := rSquared2D - dx3*dx3 - dy3*dy3
			if a3 > 0 {
				value += (a3 * a3) * (a3 * a3) * grad(seed, xsbp+primeX, ysbp, dx3, dy3)
			}
		}
	} else {
		if xi+xmyi < 0 {
			dx2 := dx0 + (1 + unskew2D)
			dy2 := dy0 + unskew2D
			a2 := rSquared2D - dx2*dx2 - dy2*dy2
			if a2 > 0 {
				value += (a2 * a2) * (a2 * a2) * grad(seed, xsbp-primeX, ysbp, dx2, dy2)
			}
		} else {
			dx2 := dx0 - (unskew2D + 1)
			dy2 := dy0 - unskew2D
			a2 := rSquared2D - dx2*dx2 - dy2*dy2
			if a2 > 0 {
				value += (a2 * a2) * (a2 * a2) * grad(seed, xsbp+primeX, ysbp, dx2, dy2)
			}
		}

		if yi < xmyi {
			dx2 := dx0 + unskew2D
			dy2 := dy0 + (unskew2D + 1)
			a2 := rSquared2D - dx2*dx2 - dy2*dy2
			if a2 > 0 {
				value += (a2 * a2) * (a2 * a2) * grad(seed, xsbp, ysbp-primeY, dx2, dy2)
			}
		} else {
			dx2 := dx0 - unskew2D
			dy2 := dy0 - (unskew2D + 1)
			a2 := rSquared2D - dx2*dx2 - dy2*dy2
			if a2 > 0 {
				value += (a2 * a2) * (a2 * a2) * grad(seed, xsbp, ysbp+primeY, dx2, dy2)
			}
		}
	}

	return value
}

// Generate produces a w*h buffer of quantized elevation classes:
// -1 (water), 0 (lowground), 1 (highground), 2 (cliff top). Deterministic
// as a pure function of seed, w, and h; identical across every peer.
func Generate(seed uint64, w, h uint32) []int8 {
	out := make([]int8, int(w)*int(h))
	for x := uint32(0); x < w; x++ {
		for y := uint32(0); y < h; y++ {
			raw := (1.0 + simplex2D(seed, float64(x)*frequency, float64(y)*frequency)) * 0.5
			idx := int(x) + int(y)*int(w)
			switch {
			case raw < 0.15:
				out[idx] = -1
			case raw < 0.60:
				out[idx] = 0
			case raw < 0.80:
				out[idx] = 1
			default:
				out[idx] = 2
			}
		}
	}
	return out
}
