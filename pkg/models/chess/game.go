package chess

type Game struct {
	*Board
	NowPlayer Player
}

func NewGame(board *Board) *Game {
	return &Game{
		Board:     board,
		NowPlayer: Player1,
	}
}

// Add draws line for the player to move. The turn only passes when the line
// closed no square.
func (g *Game) Add(line Line) (gained int, err error) {
	gained, err = g.Board.Commit(line.WithOwner(g.NowPlayer))
	if err != nil {
		return 0, err
	}

	if gained == 0 {
		g.NowPlayer = g.NowPlayer.Opponent()
	}
	return gained, nil
}

// Replace swaps in a board produced elsewhere, such as by the search engine,
// and hands the turn to next.
func (g *Game) Replace(board *Board, next Player) {
	g.Board = board
	g.NowPlayer = next
}

func (g *Game) StepCount() int {
	return g.Board.LineCount()
}

func (g *Game) Scores() (player1, player2 int) {
	return g.Board.Score(Player1), g.Board.Score(Player2)
}

// Winner returns Unowned on a draw.
func (g *Game) Winner() Player {
	player1, player2 := g.Scores()
	switch {
	case player1 > player2:
		return Player1
	case player2 > player1:
		return Player2
	}
	return Unowned
}
