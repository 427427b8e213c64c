package assess

import "github.com/HuXin0817/dotsnboxes/pkg/models/chess"

// NextMoves plays every free edge for player on its own copy of b.
func NextMoves(b *chess.Board, player chess.Player) (moves []Move) {
	before := b.Score(player)
	for _, e := range b.FreeEdges(player) {
		child := b.Clone()
		child.AddLine(e)
		child.UpdateSquares(player)
		moves = append(moves, Move{
			Board:  child,
			Line:   e,
			Gained: child.Score(player) - before,
		})
	}
	return moves
}
