package common

import "github.com/jakecoffman/cp"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi]. When hi < lo the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Box builds a top-left anchored box. Screen space grows downward, so B is
// the top edge and T the bottom edge, matching how cp.BB is laid out for
// static tiles.
func Box(x, y, w, h float64) cp.BB {
	return cp.BB{L: x, B: y, R: x + w, T: y + h}
}

// Overlaps is a strict AABB test: boxes that only share an edge do not
// overlap. cp.BB.Intersects is inclusive, which would let an entity resting
// exactly on a tile count as inside it.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R && a.R > b.L && a.B < b.T && a.T > b.B
}

// ContainsPoint is the strict point-in-box test used for projectiles.
func ContainsPoint(bb cp.BB, x, y float64) bool {
	return x > bb.L && x < bb.R && y > bb.B && y < bb.T
}

func Center(bb cp.BB) cp.Vector {
	return cp.Vector{X: (bb.L + bb.R) / 2, Y: (bb.B + bb.T) / 2}
}
