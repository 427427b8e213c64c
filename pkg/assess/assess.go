package assess

import (
	"fmt"
	"math"

	"github.com/HuXin0817/dotsnboxes/pkg/models/chess"
	"github.com/zeromicro/go-zero/core/collection"
)

const (
	INF  = math.MaxInt
	NINF = math.MinInt
)

type (
	Engine struct {
		computer chess.Player
		cache    *collection.Cache
	}

	Option func(*Engine)

	result struct {
		board *chess.Board
		score int
	}
)

// WithCache memoizes top level searches. The search is deterministic, so a
// cached answer is the one a fresh search would give.
func WithCache(cache *collection.Cache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

// NewEngine returns an engine maximizing the squares of computer.
func NewEngine(computer chess.Player, options ...Option) *Engine {
	e := &Engine{computer: computer}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) Computer() chess.Player {
	return e.computer
}

// Search returns the computer's best move on b as the board after that move.
func (e *Engine) Search(b *chess.Board, depth int) (*chess.Board, int) {
	if e.cache == nil {
		return e.AlphaBeta(b, depth, NINF, INF, true)
	}

	v, _ := e.cache.Take(fmtKey(e.computer, depth, b), func() (any, error) {
		board, score := e.AlphaBeta(b, depth, NINF, INF, true)
		return result{board: board, score: score}, nil
	})

	r := v.(result)
	board := r.board.Clone()
	board.SetTempLine(b.TempLine())
	return board, r.score
}

func fmtKey(computer chess.Player, depth int, b *chess.Board) string {
	return fmt.Sprintf("%d/%d/%s", computer, depth, b.Key())
}

// AlphaBeta explores depth plies below b. The maximizing side is the
// computer. A player who closes a square moves again, so the maximizing flag
// only flips when a move closes nothing. Siblings are only pruned when none
// of them grants an extra turn.
func (e *Engine) AlphaBeta(b *chess.Board, depth, alpha, beta int, isMax bool) (*chess.Board, int) {
	board, score := e.alphaBeta(b, depth, alpha, beta, isMax)
	if board == b {
		board = b.Clone()
	}
	return board, score
}

func (e *Engine) terminalScore(b *chess.Board, isMax bool) int {
	if isMax {
		return b.Score(e.computer)
	}
	return -b.Score(e.computer.Opponent())
}

func (e *Engine) alphaBeta(b *chess.Board, depth, alpha, beta int, isMax bool) (*chess.Board, int) {
	if b.IsComplete() || depth <= 0 {
		return b, e.terminalScore(b, isMax)
	}

	mover, value := e.computer, NINF
	if !isMax {
		mover, value = e.computer.Opponent(), INF
	}

	moves := NextMoves(b, mover)
	if len(moves) == 0 {
		return b, e.terminalScore(b, isMax)
	}

	allChangeTurn := true
	for _, m := range moves {
		if !m.WillChangeTurn() {
			allChangeTurn = false
			break
		}
	}

	var best *chess.Board
	for _, m := range moves {
		nextIsMax := isMax
		if m.WillChangeTurn() {
			nextIsMax = !isMax
		}

		_, score := e.alphaBeta(m.Board, depth-1, alpha, beta, nextIsMax)
		if isMax {
			if score > value {
				best, value = m.Board, score
			}
			alpha = max(alpha, value)
		} else {
			if score < value {
				best, value = m.Board, score
			}
			beta = min(beta, value)
		}

		if alpha >= beta && allChangeTurn {
			break
		}
	}

	return best, value
}

// PlayTurn plays the computer's whole turn: it keeps searching while the last
// move closed a square and the board still has squares left.
func (e *Engine) PlayTurn(b *chess.Board, depth int) (*chess.Board, []chess.Line) {
	var played []chess.Line
	for !b.IsComplete() {
		before := b.Score(e.computer)
		next, _ := e.Search(b, depth)
		if next.LineCount() == b.LineCount() {
			break
		}

		line, _ := next.LastLine()
		played = append(played, line)
		b = next

		if b.Score(e.computer) == before {
			break
		}
	}
	return b, played
}
