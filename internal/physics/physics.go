// Package physics provides collision detection and small numeric helpers.
package physics

import "math/rand"

// Box is an axis-aligned rectangle in playfield coordinates (y grows downward).
type Box struct {
	Left, Right float64
	Top, Bottom float64
}

// BoxAround returns the w×h box centred on (x, y).
func BoxAround(x, y, w, h float64) Box {
	return Box{
		Left:   x - w/2,
		Right:  x + w/2,
		Top:    y - h/2,
		Bottom: y + h/2,
	}
}

// BoxesIntersect reports whether two boxes overlap.
// Boxes that only touch along an edge or a corner count as intersecting.
func BoxesIntersect(a, b Box) bool {
	return !(b.Left > a.Right ||
		b.Right < a.Left ||
		b.Top > a.Bottom ||
		b.Bottom < a.Top)
}

// Clamp limits v to the range [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// RandomInRange returns a uniform value in [min, max).
// A nil r draws from the package-level source.
func RandomInRange(r *rand.Rand, min, max float64) float64 {
	var f float64
	if r != nil {
		f = r.Float64()
	} else {
		f = rand.Float64()
	}
	return min + f*(max-min)
}

// RandomUnit returns a uniform value in [0, 1).
func RandomUnit(r *rand.Rand) float64 {
	return RandomInRange(r, 0, 1)
}
