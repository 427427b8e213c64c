package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/HuXin0817/dotsnboxes/pkg/assess"
	"github.com/HuXin0817/dotsnboxes/pkg/config"
	"github.com/HuXin0817/dotsnboxes/pkg/models/chess"
	"github.com/HuXin0817/dotsnboxes/pkg/models/message"
	"github.com/HuXin0817/dotsnboxes/pkg/models/model"
	"github.com/HuXin0817/dotsnboxes/pkg/models/ui"
)

var ErrNoMove = errors.New("bot found no line to click")

// Tally counts finished games by winner.
type Tally struct {
	Games   int
	Player1 int
	Player2 int
	Draws   int
}

func (t *Tally) Add(r message.GameResult) {
	t.Games++
	switch r.Winner {
	case chess.Player1:
		t.Player1++
	case chess.Player2:
		t.Player2++
	default:
		t.Draws++
	}
}

func (t Tally) String() string {
	return fmt.Sprintf("Player1 %d, Player2 %d, Draw %d", t.Player1, t.Player2, t.Draws)
}

// PlayGame runs one round through the pointer interface: the bot clicks the
// middle of a random free edge whenever it is a human's turn.
func PlayGame(c config.Config, engine *assess.Engine, computer model.Switch, rng *rand.Rand, options ...ui.Option) (message.GameResult, error) {
	b, err := ui.NewBoard(c, append([]ui.Option{ui.WithEngine(engine)}, options...)...)
	if err != nil {
		return message.GameResult{}, err
	}

	mode := ui.StateTwoPlayers
	if computer {
		mode = ui.StateOnePlayer
	}
	if err = b.Start(mode); err != nil {
		return message.GameResult{}, err
	}

	for b.State() != ui.StateGameOver {
		if err = botClick(b, rng); err != nil {
			return message.GameResult{}, fmt.Errorf("game %s: %w", b.GameUid, err)
		}
	}

	player1, player2 := b.Scores()
	return message.GameResult{
		TimeStamp:    message.NewTimeStamp(time.Now()),
		GameUid:      b.GameUid,
		Width:        c.Board.Width,
		Height:       c.Board.Height,
		Steps:        len(b.Records()),
		Player1Score: player1,
		Player2Score: player2,
		Winner:       b.Winner(),
		Result:       b.Result(),
	}, nil
}

func botClick(b *ui.Board, rng *rand.Rand) error {
	free := b.FreeEdges(b.NowPlayer())
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	for _, line := range free {
		mid := line.Midpoint()
		err := b.Click(mid.X, mid.Y)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, chess.ErrLineExists), errors.Is(err, ui.ErrNoLine):
			continue
		default:
			return err
		}
	}
	return ErrNoMove
}
