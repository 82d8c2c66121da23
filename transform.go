package pinchzoom

import "math"

// compose returns outer applied after inner, both in the Viewport.Matrix
// layout [a, b, c, d, tx, ty].
func compose(outer, inner [6]float64) [6]float64 {
	a, b, c, d := outer[0], outer[1], outer[2], outer[3]
	return [6]float64{
		a*inner[0] + c*inner[1],
		b*inner[0] + d*inner[1],
		a*inner[2] + c*inner[3],
		b*inner[2] + d*inner[3],
		a*inner[4] + c*inner[5] + outer[4],
		b*inner[4] + d*inner[5] + outer[5],
	}
}

// applyMatrix maps (x, y) through m.
func applyMatrix(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Vec2) Vec2 {
	return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// ClampZoom restricts z to [lo, hi]. NaN maps to lo.
func ClampZoom(z, lo, hi float64) float64 {
	if math.IsNaN(z) || z < lo {
		return lo
	}
	if z > hi {
		return hi
	}
	return z
}
