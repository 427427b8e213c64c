package assess

import "github.com/HuXin0817/dotsnboxes/pkg/models/chess"

// Move is one child of a search node: the board after Line was drawn.
type Move struct {
	Board  *chess.Board
	Line   chess.Line
	Gained int
}

func (m Move) Score() int {
	return m.Gained
}

func (m Move) WillChangeTurn() bool {
	return m.Gained == 0
}
