package ui

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/HuXin0817/dotsnboxes/pkg/assess"
	"github.com/HuXin0817/dotsnboxes/pkg/config"
	"github.com/HuXin0817/dotsnboxes/pkg/models/chess"
	"github.com/HuXin0817/dotsnboxes/pkg/models/geometry"
	"github.com/HuXin0817/dotsnboxes/pkg/models/message"
	"github.com/HuXin0817/dotsnboxes/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/collection"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	ErrNotStarted     = errors.New("game not started")
	ErrAlreadyStarted = errors.New("game already started")
	ErrInvalidMode    = errors.New("mode must be OnePlayer or TwoPlayers")
	ErrGameOver       = errors.New("game is over")
	ErrNotYourTurn    = errors.New("the computer is moving")
	ErrNoLine         = errors.New("no line under the pointer")
)

const (
	ResultPlayer1 = "Winner is Player 1"
	ResultPlayer2 = "Winner is player 2"
	ResultDraw    = "It is a draw"
)

// Board drives one round from pointer events. In one-player mode the human
// is Player1 and the engine answers for its own player.
type Board struct {
	GameInformation     *chess.Game
	GameUid             message.GameUid
	Engine              *assess.Engine
	Depth               int
	TriggerAfterAddLine func(message.MoveRecord)
	conf                config.BoardConf
	pusher              *pusher.Pusher[message.MoveRecord]
	state               State
	records             []message.MoveRecord
	mu                  sync.Mutex
}

var (
	cacheLock sync.Mutex
	caches    = make(map[time.Duration]*collection.Cache)
)

// searchCache hands out one cache per expiry for the whole process. Each
// cache runs its own timing wheel, so boards must not create their own.
func searchCache(expire time.Duration) (*collection.Cache, error) {
	cacheLock.Lock()
	defer cacheLock.Unlock()

	if cache, ok := caches[expire]; ok {
		return cache, nil
	}

	cache, err := collection.NewCache(expire, collection.WithName("search"))
	if err != nil {
		return nil, err
	}
	caches[expire] = cache
	return cache, nil
}

func NewBoard(c config.Config, options ...Option) (*Board, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	board, err := newChessBoard(c.Board)
	if err != nil {
		return nil, err
	}

	newBoard := &Board{
		GameInformation:     chess.NewGame(board),
		GameUid:             message.NewGameUid(),
		Depth:               c.Search.Depth,
		TriggerAfterAddLine: func(message.MoveRecord) {},
		conf:                c.Board,
	}

	for _, option := range options {
		option(newBoard)
	}

	if newBoard.Engine == nil {
		var engineOptions []assess.Option
		if c.Search.CacheExpire > 0 {
			cache, err := searchCache(c.Search.CacheExpire)
			if err != nil {
				return nil, err
			}
			engineOptions = append(engineOptions, assess.WithCache(cache))
		}
		newBoard.Engine = assess.NewEngine(chess.Player2, engineOptions...)
	}

	return newBoard, nil
}

func newChessBoard(c config.BoardConf) (*chess.Board, error) {
	return chess.NewBoard(c.Width, c.Height, c.WindowWidth, c.WindowHeight, c.OffsetX, c.OffsetY)
}

func (b *Board) Start(mode State) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if mode != StateOnePlayer && mode != StateTwoPlayers {
		return fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}
	if b.state != StateNone {
		return fmt.Errorf("%w: %s", ErrAlreadyStarted, b.state)
	}

	b.state = mode
	logx.Infow("game started",
		logx.Field("game", b.GameUid),
		logx.Field("mode", mode.String()),
		logx.Field("size", fmt.Sprintf("%dx%d", b.GameInformation.Width(), b.GameInformation.Height())),
	)

	if b.computerToMove() {
		b.computerTurn()
	}
	return nil
}

// Motion stages the line under the pointer for the player to move.
func (b *Board) Motion(x, y float64) (chess.Line, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != StateOnePlayer && b.state != StateTwoPlayers || b.computerToMove() {
		return b.GameInformation.TempLine(), false
	}
	return b.GameInformation.UpdateLine(b.GameInformation.NowPlayer, x, y)
}

// Click commits the line under the pointer. In one-player mode the computer
// answers before Click returns.
func (b *Board) Click(x, y float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case b.state == StateGameOver:
		return ErrGameOver
	case b.state == StateNone:
		return ErrNotStarted
	case b.computerToMove():
		return ErrNotYourTurn
	}

	player := b.GameInformation.NowPlayer
	line, ok := b.GameInformation.UpdateLine(player, x, y)
	if !ok {
		return fmt.Errorf("%w: (%g, %g)", ErrNoLine, x, y)
	}

	gained, err := b.GameInformation.Add(line)
	if err != nil {
		return err
	}
	b.record(line.WithOwner(player), gained, b.GameInformation.Board, false)

	if b.checkGameOver() {
		return nil
	}
	if b.computerToMove() {
		b.computerTurn()
	}
	return nil
}

func (b *Board) computerToMove() bool {
	return b.state == StateOnePlayer && b.GameInformation.NowPlayer == b.Engine.Computer()
}

func (b *Board) computerTurn() {
	computer := b.Engine.Computer()
	before := b.GameInformation.Board
	start := time.Now()
	after, played := b.Engine.PlayTurn(before, b.Depth)
	logx.Infow("computer moved",
		logx.Field("game", b.GameUid),
		logx.Field("lines", len(played)),
		logx.Field("duration", time.Since(start).String()),
	)

	replay := before.Clone()
	for _, line := range played {
		gained, err := replay.Commit(line)
		if err != nil {
			logx.Errorf("replay computer line %s: %v", line, err)
			continue
		}
		b.record(line, gained, replay, true)
	}

	b.GameInformation.Replace(after, computer.Opponent())
	b.checkGameOver()
}

func (b *Board) record(line chess.Line, gained int, board *chess.Board, computer bool) {
	player1Score, player2Score := board.Score(chess.Player1), board.Score(chess.Player2)
	r := message.MoveRecord{
		TimeStamp:    message.NewTimeStamp(time.Now()),
		GameUid:      b.GameUid,
		StepCount:    board.LineCount(),
		Player:       line.Owner,
		Line:         line,
		Gained:       gained,
		Player1Score: player1Score,
		Player2Score: player2Score,
		Computer:     computer,
	}

	logx.Infof("Step: %d, Turn %s, Line: %s, Player1 Score: %d, Player2 Score: %d",
		r.StepCount, line.Owner, line, player1Score, player2Score)

	b.records = append(b.records, r)
	if b.pusher != nil {
		b.pusher.AddMessages(r)
	}
	b.TriggerAfterAddLine(r)
}

func (b *Board) checkGameOver() bool {
	if !b.GameInformation.IsComplete() {
		return false
	}

	b.state = StateGameOver
	player1Score, player2Score := b.GameInformation.Scores()
	logx.Infow(b.result(),
		logx.Field("game", b.GameUid),
		logx.Field("player1", player1Score),
		logx.Field("player2", player2Score),
	)
	return true
}

// Reset discards the round and goes back to the menu.
func (b *Board) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	board, err := newChessBoard(b.conf)
	logx.Must(err)

	b.GameInformation = chess.NewGame(board)
	b.GameUid = message.NewGameUid()
	b.state = StateNone
	b.records = nil
}

func (b *Board) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state
}

func (b *Board) NowPlayer() chess.Player {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.GameInformation.NowPlayer
}

func (b *Board) Points() []geometry.Point {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.GameInformation.Points()
}

func (b *Board) Lines() []chess.Line {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.GameInformation.Lines()
}

func (b *Board) TempLine() chess.Line {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.GameInformation.TempLine()
}

func (b *Board) Claimed(player chess.Player) []chess.Square {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.GameInformation.Claimed(player)
}

func (b *Board) FreeEdges(player chess.Player) []chess.Line {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.GameInformation.FreeEdges(player)
}

func (b *Board) Winner() chess.Player {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.GameInformation.Winner()
}

func (b *Board) IsComplete() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.GameInformation.IsComplete()
}

func (b *Board) Scores() (player1, player2 int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.GameInformation.Scores()
}

func (b *Board) Records() []message.MoveRecord {
	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Clone(b.records)
}

// Result is the banner for the current scores.
func (b *Board) Result() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.result()
}

func (b *Board) result() string {
	switch b.GameInformation.Winner() {
	case chess.Player1:
		return ResultPlayer1
	case chess.Player2:
		return ResultPlayer2
	}
	return ResultDraw
}

func (b *Board) Snapshot() message.BoardSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	g := b.GameInformation
	return message.BoardSnapshot{
		TimeStamp:      message.NewTimeStamp(time.Now()),
		GameUid:        b.GameUid,
		Width:          g.Width(),
		Height:         g.Height(),
		Points:         g.Points(),
		Lines:          g.Lines(),
		TempLine:       g.TempLine(),
		Player1Squares: g.Claimed(chess.Player1),
		Player2Squares: g.Claimed(chess.Player2),
		NowPlayer:      g.NowPlayer,
		Complete:       g.IsComplete(),
		State:          b.state.String(),
	}
}
