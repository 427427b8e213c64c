package geometry

import "math"

func Distance(p, q Point) float64 {
	return math.Sqrt((p.X-q.X)*(p.X-q.X) + (p.Y-q.Y)*(p.Y-q.Y))
}

// Area returns the unsigned area of the triangle p1 p2 p3.
func Area(p1, p2, p3 Point) float64 {
	return math.Abs((p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y)) / 2)
}

// IsInsideTriangle reports whether p lies inside or on the border of the
// triangle p1 p2 p3. Degenerate triangles never contain anything.
func IsInsideTriangle(p1, p2, p3, p Point) bool {
	a := Distance(p1, p2)
	b := Distance(p2, p3)
	c := Distance(p3, p1)

	if a+b <= c+Delta || b+c <= a+Delta || a+c <= b+Delta {
		return false
	}

	total := Area(p1, p2, p3)
	a1 := Area(p, p2, p3)
	a2 := Area(p1, p, p3)
	a3 := Area(p1, p2, p)
	return Near(total, a1+a2+a3)
}

// IsInsideRectangle is inclusive on all four sides.
func IsInsideRectangle(p, origin Point, width, height float64) bool {
	return origin.X <= p.X && origin.X+width >= p.X &&
		origin.Y <= p.Y && origin.Y+height >= p.Y
}

// AreOnSameLine reports whether at least two of points share p's column or
// at least two share its row.
func AreOnSameLine(p Point, points []Point) bool {
	var onX, onY int
	for _, point := range points {
		if Near(point.X, p.X) {
			onX++
		}
		if Near(point.Y, p.Y) {
			onY++
		}
	}
	return onX >= 2 || onY >= 2
}
