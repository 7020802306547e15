package trailmap

import "math/bits"

// Selection is the outcome of resolving a click. The zero value means no
// region was hit.
type Selection struct {
	Name string
}

func (s Selection) Matched() bool { return s.Name != "" }

func (s Selection) String() string {
	if s.Name == "" {
		return None
	}
	return s.Name
}

// Contains reports whether p lies inside or on the circle of radius around r.
// Any coordinate in the int range is accepted.
func Contains(r Region, radius int, p Point) bool {
	if radius < 0 {
		return false
	}
	rr := uint64(radius)
	dx, dy := distance(p.X, r.Center.X), distance(p.Y, r.Center.Y)
	if dx > rr || dy > rr {
		return false
	}

	// Squares are compared in 128 bits.
	xh, xl := bits.Mul64(dx, dx)
	yh, yl := bits.Mul64(dy, dy)
	sl, carry := bits.Add64(xl, yl, 0)
	sh, _ := bits.Add64(xh, yh, carry)
	rh, rl := bits.Mul64(rr, rr)
	return sh < rh || (sh == rh && sl <= rl)
}

// distance returns |a-b| without overflowing.
func distance(a, b int) uint64 {
	if a >= b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}

// Resolve returns the first region, in configured order, whose circle
// contains p. Overlapping circles are not ranked by distance.
func (m *Map) Resolve(p Point) Selection {
	for _, r := range m.regions {
		if Contains(r, m.radius, p) {
			return Selection{Name: r.Name}
		}
	}
	return Selection{}
}
