package chess

import (
	"math"

	"github.com/HuXin0817/dotsnboxes/pkg/models/geometry"
)

// Square holds the four edges of a box in no particular order.
type Square [4]Line

func NewSquare(line1, line2, line3, line4 Line) Square {
	return Square{line1, line2, line3, line4}
}

func (s Square) Lines() []Line {
	return s[:]
}

// Equal holds when every line of each square appears in the other, so the
// order the edges were listed in does not matter.
func (s Square) Equal(other Square) bool {
	for i := range s {
		if !containsLine(other[:], s[i]) || !containsLine(s[:], other[i]) {
			return false
		}
	}
	return true
}

// Smallest returns the top-left corner, used to place the owner label.
func (s Square) Smallest() geometry.Point {
	smallest := geometry.NewPoint(math.MaxFloat64, math.MaxFloat64)
	for _, l := range s {
		smallest.X = math.Min(smallest.X, math.Min(l.P1.X, l.P2.X))
		smallest.Y = math.Min(smallest.Y, math.Min(l.P1.Y, l.P2.Y))
	}
	return smallest
}

// Side is the length of the first edge, which sizes the owner label.
func (s Square) Side() float64 {
	return s[0].Length()
}
