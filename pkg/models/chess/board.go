package chess

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/HuXin0817/dotsnboxes/pkg/models/geometry"
)

var (
	ErrInvalidDimensions = errors.New("board needs at least 2 points on each axis")
	ErrLineExists        = errors.New("line already drawn")
	ErrNotAnEdge         = errors.New("line is not an edge of the grid")
	ErrNoOwner           = errors.New("line has no owner")
)

// Board is the playing field in window coordinates. The points, the edges and
// the square catalog never change after construction and are shared between
// clones.
type Board struct {
	width   int
	height  int
	origin  geometry.Point
	stepX   float64
	stepY   float64
	points  []geometry.Point
	edges   []Line
	squares []Square

	lines    []Line
	owners   []Player
	claimed1 []Square
	claimed2 []Square
	tempLine Line
}

// NewBoard lays width x height points inside a window of the given extent,
// keeping offsetX and offsetY free on each side.
func NewBoard(width, height int, windowWidth, windowHeight, offsetX, offsetY float64) (*Board, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}

	b := &Board{
		width:  width,
		height: height,
		origin: geometry.NewPoint(offsetX, offsetY),
		stepX:  (windowWidth - 2*offsetX) / float64(width-1),
		stepY:  (windowHeight - 2*offsetY) / float64(height-1),
	}

	for i := range height {
		for j := range width {
			b.points = append(b.points, geometry.NewPoint(offsetX+float64(j)*b.stepX, offsetY+float64(i)*b.stepY))
		}
	}

	for i := range height - 1 {
		for j := range width - 1 {
			p := b.points[i*width+j]
			b.squares = append(b.squares, NewSquare(
				NewLine(p.X, p.Y, p.X+b.stepX, p.Y, Unowned),
				NewLine(p.X+b.stepX, p.Y, p.X+b.stepX, p.Y+b.stepY, Unowned),
				NewLine(p.X+b.stepX, p.Y+b.stepY, p.X, p.Y+b.stepY, Unowned),
				NewLine(p.X, p.Y+b.stepY, p.X, p.Y, Unowned),
			))
		}
	}

	// horizontal edges row by row, then vertical edges
	for i := range height {
		for j := range width - 1 {
			p := b.points[i*width+j]
			b.edges = append(b.edges, NewLine(p.X, p.Y, p.X+b.stepX, p.Y, Unowned))
		}
	}
	for i := range height - 1 {
		for j := range width {
			p := b.points[i*width+j]
			b.edges = append(b.edges, NewLine(p.X, p.Y, p.X, p.Y+b.stepY, Unowned))
		}
	}

	b.owners = make([]Player, len(b.squares))
	return b, nil
}

func MustNewBoard(width, height int, windowWidth, windowHeight, offsetX, offsetY float64) *Board {
	b, err := NewBoard(width, height, windowWidth, windowHeight, offsetX, offsetY)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) Width() int { return b.width }

func (b *Board) Height() int { return b.height }

func (b *Board) Origin() geometry.Point { return b.origin }

func (b *Board) StepX() float64 { return b.stepX }

func (b *Board) StepY() float64 { return b.stepY }

func (b *Board) Points() []geometry.Point { return slices.Clone(b.points) }

func (b *Board) Squares() []Square { return slices.Clone(b.squares) }

func (b *Board) Lines() []Line { return slices.Clone(b.lines) }

func (b *Board) LineCount() int { return len(b.lines) }

func (b *Board) TempLine() Line { return b.tempLine }

func (b *Board) SetTempLine(line Line) { b.tempLine = line }

// LastLine returns the most recently drawn line.
func (b *Board) LastLine() (Line, bool) {
	if len(b.lines) == 0 {
		return Line{}, false
	}
	return b.lines[len(b.lines)-1], true
}

// Edges lists every edge of the grid, horizontal ones first.
func (b *Board) Edges() []Line { return slices.Clone(b.edges) }

// FreeEdges lists the edges nobody has drawn yet, tagged with player.
func (b *Board) FreeEdges(player Player) (freeEdges []Line) {
	for _, e := range b.edges {
		if !b.ContainsLine(e) {
			freeEdges = append(freeEdges, e.WithOwner(player))
		}
	}
	return
}

func (b *Board) FreeEdgesCount() int {
	return len(b.FreeEdges(Unowned))
}

func (b *Board) Claimed(player Player) []Square {
	switch player {
	case Player1:
		return slices.Clone(b.claimed1)
	case Player2:
		return slices.Clone(b.claimed2)
	}
	return nil
}

func (b *Board) Score(player Player) int {
	switch player {
	case Player1:
		return len(b.claimed1)
	case Player2:
		return len(b.claimed2)
	}
	return 0
}

// Owner returns who claimed the catalog square equal to s.
func (b *Board) Owner(s Square) Player {
	for i, square := range b.squares {
		if square.Equal(s) {
			return b.owners[i]
		}
	}
	return Unowned
}

func (b *Board) IsComplete() bool {
	return len(b.claimed1)+len(b.claimed2) == len(b.squares)
}

func (b *Board) ContainsLine(line Line) bool {
	return containsLine(b.lines, line)
}

func (b *Board) IsEdge(line Line) bool {
	return containsLine(b.edges, line)
}

// AddLine appends line to the drawn lines without touching any score.
func (b *Board) AddLine(line Line) {
	b.lines = append(b.lines, line)
}

// UpdateSquares hands every unclaimed square whose four edges are all drawn
// to player. This is the same outcome as checking every combination of four
// drawn lines against the catalog.
func (b *Board) UpdateSquares(player Player) {
	if player != Player1 && player != Player2 {
		return
	}

	for i, square := range b.squares {
		if b.owners[i] != Unowned {
			continue
		}

		complete := true
		for _, l := range square {
			if !b.ContainsLine(l) {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}

		b.owners[i] = player
		if player == Player1 {
			b.claimed1 = append(b.claimed1, square)
		} else {
			b.claimed2 = append(b.claimed2, square)
		}
	}
}

// Commit draws line for its owner and returns how many squares it closed.
func (b *Board) Commit(line Line) (gained int, err error) {
	if line.Owner != Player1 && line.Owner != Player2 {
		return 0, ErrNoOwner
	}
	if !b.IsEdge(line) {
		return 0, fmt.Errorf("%w: %s", ErrNotAnEdge, line)
	}
	if b.ContainsLine(line) {
		return 0, fmt.Errorf("%w: %s", ErrLineExists, line)
	}

	before := b.Score(line.Owner)
	b.AddLine(line)
	b.UpdateSquares(line.Owner)
	return b.Score(line.Owner) - before, nil
}

// UpdateLine stages the edge closest to the pointer (x, y) as the temp line.
// The previous temp line is kept when no edge can be resolved.
func (b *Board) UpdateLine(player Player, x, y float64) (Line, bool) {
	pointer := geometry.NewPoint(x, y)

	var closest []geometry.Point
	for range 4 {
		found := false
		var best geometry.Point
		bestDistance := math.MaxFloat64
		for _, p := range b.points {
			if slices.Contains(closest, p) || geometry.AreOnSameLine(p, closest) {
				continue
			}
			if d := geometry.Distance(pointer, p); d < bestDistance {
				best, bestDistance, found = p, d, true
			}
		}
		if !found {
			break
		}
		closest = append(closest, best)
	}

	if len(closest) < 4 {
		return b.tempLine, false
	}

	var middle geometry.Point
	for i := range 3 {
		p, q := closest[i], closest[i+1]
		if !geometry.Near(p.X, q.X) {
			middle.X = math.Min(p.X, q.X) + math.Abs(p.X-q.X)/2
		}
		if !geometry.Near(p.Y, q.Y) {
			middle.Y = math.Min(p.Y, q.Y) + math.Abs(p.Y-q.Y)/2
		}
	}

	if geometry.IsInsideTriangle(closest[0], closest[3], middle, pointer) {
		b.tempLine = NewLine(closest[0].X, closest[0].Y, closest[3].X, closest[3].Y, player)
		return b.tempLine, true
	}

	for i := range 3 {
		if geometry.IsInsideTriangle(closest[i], closest[i+1], middle, pointer) {
			b.tempLine = NewLine(closest[i].X, closest[i].Y, closest[i+1].X, closest[i+1].Y, player)
			return b.tempLine, true
		}
	}

	return b.tempLine, false
}

// Clone copies everything a move can change. The immutable grid is shared.
func (b *Board) Clone() *Board {
	newBoard := *b
	newBoard.lines = slices.Clone(b.lines)
	newBoard.owners = slices.Clone(b.owners)
	newBoard.claimed1 = slices.Clone(b.claimed1)
	newBoard.claimed2 = slices.Clone(b.claimed2)
	return &newBoard
}

// Key identifies the position: the drawn lines in order with their owners and
// both scores.
func (b *Board) Key() string {
	var builder strings.Builder
	builder.WriteString(strconv.Itoa(b.width))
	builder.WriteByte('x')
	builder.WriteString(strconv.Itoa(b.height))
	for _, l := range b.lines {
		builder.WriteByte('|')
		for _, v := range [...]float64{l.P1.X, l.P1.Y, l.P2.X, l.P2.Y} {
			builder.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			builder.WriteByte(',')
		}
		builder.WriteString(strconv.Itoa(int(l.Owner)))
	}
	builder.WriteByte('#')
	builder.WriteString(strconv.Itoa(len(b.claimed1)))
	builder.WriteByte(':')
	builder.WriteString(strconv.Itoa(len(b.claimed2)))
	return builder.String()
}
