package geometry

import (
	"fmt"
	"math"
)

// Delta is the tolerance used for every coordinate comparison on the board.
const Delta = 1e-5

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Equal(q Point) bool {
	return Near(p.X, q.X) && Near(p.Y, q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Near reports whether a and b differ by at most Delta.
func Near(a, b float64) bool {
	return math.Abs(a-b) <= Delta
}
