package chess

import (
	"fmt"

	"github.com/HuXin0817/dotsnboxes/pkg/models/geometry"
)

// Line is a segment between two grid points. Owner is not part of its identity.
type Line struct {
	P1    geometry.Point `json:"p1"`
	P2    geometry.Point `json:"p2"`
	Owner Player         `json:"owner"`
}

func NewLine(x1, y1, x2, y2 float64, owner Player) Line {
	return Line{
		P1:    geometry.NewPoint(x1, y1),
		P2:    geometry.NewPoint(x2, y2),
		Owner: owner,
	}
}

// Equal matches endpoints in either orientation within geometry.Delta.
func (l Line) Equal(other Line) bool {
	return (l.P1.Equal(other.P1) && l.P2.Equal(other.P2)) ||
		(l.P1.Equal(other.P2) && l.P2.Equal(other.P1))
}

func (l Line) WithOwner(owner Player) Line {
	l.Owner = owner
	return l
}

func (l Line) Length() float64 {
	return geometry.Distance(l.P1, l.P2)
}

func (l Line) Midpoint() geometry.Point {
	return geometry.NewPoint((l.P1.X+l.P2.X)/2, (l.P1.Y+l.P2.Y)/2)
}

func (l Line) IsZero() bool {
	return l.P1 == geometry.Point{} && l.P2 == geometry.Point{}
}

func (l Line) String() string {
	return fmt.Sprintf("%s -> %s", l.P1, l.P2)
}

func containsLine(lines []Line, line Line) bool {
	for _, l := range lines {
		if l.Equal(line) {
			return true
		}
	}
	return false
}
