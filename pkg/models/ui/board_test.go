package ui

import (
	"sync"
	"testing"
	"time"

	"github.com/HuXin0817/dotsnboxes/pkg/config"
	"github.com/HuXin0817/dotsnboxes/pkg/models/chess"
	"github.com/HuXin0817/dotsnboxes/pkg/models/message"
	"github.com/HuXin0817/dotsnboxes/pkg/models/pusher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		Board: config.BoardConf{
			Width:        3,
			Height:       3,
			WindowWidth:  600,
			WindowHeight: 600,
			OffsetX:      50,
			OffsetY:      50,
		},
		Search: config.SearchConf{Depth: 2},
	}
}

func newTestBoard(t *testing.T, options ...Option) *Board {
	b, err := NewBoard(testConfig(), options...)
	require.NoError(t, err)
	return b
}

// clickFree clicks the midpoint of the first undrawn edge.
func clickFree(t *testing.T, b *Board) {
	free := b.FreeEdges(b.NowPlayer())
	require.NotEmpty(t, free)
	mid := free[0].Midpoint()
	require.NoError(t, b.Click(mid.X, mid.Y))
}

func TestNewBoardValidatesConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
		err    error
	}{
		{"size", func(c *config.Config) { c.Board.Width = 1 }, config.ErrBoardSize},
		{"window", func(c *config.Config) { c.Board.WindowWidth = 80 }, config.ErrWindowSize},
		{"depth", func(c *config.Config) { c.Search.Depth = 0 }, config.ErrSearchDepth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testConfig()
			tt.modify(&c)
			_, err := NewBoard(c)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestSearchCacheIsShared(t *testing.T) {
	first, err := searchCache(time.Minute)
	require.NoError(t, err)
	second, err := searchCache(time.Minute)
	require.NoError(t, err)
	assert.Same(t, first, second)

	other, err := searchCache(2 * time.Minute)
	require.NoError(t, err)
	assert.NotSame(t, first, other)

	c := testConfig()
	c.Search.CacheExpire = time.Minute
	for range 3 {
		_, err = NewBoard(c)
		require.NoError(t, err)
	}
	cacheLock.Lock()
	defer cacheLock.Unlock()
	assert.Len(t, caches, 2)
}

func TestQueriesDuringPlay(t *testing.T) {
	b := newTestBoard(t)
	require.NoError(t, b.Start(StateTwoPlayers))

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				_ = b.FreeEdges(chess.Player1)
				_ = b.Snapshot()
				_ = b.Winner()
			}
		}
	}()

	for !b.IsComplete() {
		clickFree(t, b)
	}
	close(done)
	wg.Wait()

	assert.Empty(t, b.FreeEdges(chess.Player1))
	player1, player2 := b.Scores()
	switch b.Winner() {
	case chess.Player1:
		assert.Greater(t, player1, player2)
	case chess.Player2:
		assert.Greater(t, player2, player1)
	default:
		assert.Equal(t, player1, player2)
	}
}

func TestStart(t *testing.T) {
	b := newTestBoard(t)
	assert.Equal(t, StateNone, b.State())
	assert.ErrorIs(t, b.Click(300, 200), ErrNotStarted)

	assert.ErrorIs(t, b.Start(StateGameOver), ErrInvalidMode)
	require.NoError(t, b.Start(StateTwoPlayers))
	assert.ErrorIs(t, b.Start(StateOnePlayer), ErrAlreadyStarted)
	assert.Equal(t, StateTwoPlayers, b.State())
}

func TestMotion(t *testing.T) {
	b := newTestBoard(t)
	_, ok := b.Motion(300, 200)
	assert.False(t, ok, "menu ignores the pointer")

	require.NoError(t, b.Start(StateTwoPlayers))
	line, ok := b.Motion(300, 200)
	require.True(t, ok)
	assert.True(t, line.Equal(chess.NewLine(300, 300, 300, 50, chess.Unowned)))
	assert.Equal(t, chess.Player1, line.Owner)
	assert.Equal(t, line, b.TempLine())
	assert.Empty(t, b.Lines(), "motion never commits")
}

func TestClickTwoPlayers(t *testing.T) {
	var pushed []message.MoveRecord
	p := pusher.NewPusher[message.MoveRecord](pusher.WithPushLogic(func(records ...message.MoveRecord) error {
		pushed = append(pushed, records...)
		return nil
	}))
	var triggered int
	b := newTestBoard(t, WithPusher(p), WithTrigger(func(message.MoveRecord) { triggered++ }))
	require.NoError(t, b.Start(StateTwoPlayers))

	require.NoError(t, b.Click(300, 200))
	lines := b.Lines()
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Equal(chess.NewLine(300, 300, 300, 50, chess.Unowned)))
	assert.Equal(t, chess.Player1, lines[0].Owner)
	assert.Equal(t, chess.Player2, b.NowPlayer())

	assert.ErrorIs(t, b.Click(300, 200), chess.ErrLineExists)
	assert.Equal(t, chess.Player2, b.NowPlayer(), "a rejected click keeps the turn")

	require.NoError(t, p.PushAll())
	require.Len(t, pushed, 1)
	assert.Equal(t, 1, triggered)
	assert.Equal(t, b.Records(), pushed)
	assert.Equal(t, 1, pushed[0].StepCount)
	assert.Equal(t, b.GameUid, pushed[0].GameUid)
	assert.False(t, pushed[0].Computer)
}

func TestClickKeepsTurnAfterClaim(t *testing.T) {
	b := newTestBoard(t)
	require.NoError(t, b.Start(StateTwoPlayers))

	// Player1 draws three sides of the top-left square, Player2 plays elsewhere.
	require.NoError(t, b.Click(175, 50))
	require.NoError(t, b.Click(550, 425))
	require.NoError(t, b.Click(300, 175))
	require.NoError(t, b.Click(425, 550))
	require.NoError(t, b.Click(175, 300))
	require.Equal(t, chess.Player2, b.NowPlayer())

	require.NoError(t, b.Click(50, 175))
	assert.Equal(t, chess.Player2, b.NowPlayer())
	assert.Len(t, b.Claimed(chess.Player2), 1)
	player1, player2 := b.Scores()
	assert.Equal(t, 0, player1)
	assert.Equal(t, 1, player2)

	records := b.Records()
	assert.Equal(t, 1, records[len(records)-1].Gained)
}

func TestTwoPlayersToTheEnd(t *testing.T) {
	b := newTestBoard(t)
	require.NoError(t, b.Start(StateTwoPlayers))

	for !b.IsComplete() {
		clickFree(t, b)
	}

	assert.Equal(t, StateGameOver, b.State())
	assert.Len(t, b.Records(), 12)
	assert.ErrorIs(t, b.Click(300, 200), ErrGameOver)

	player1, player2 := b.Scores()
	assert.Equal(t, 4, player1+player2)
	switch {
	case player1 > player2:
		assert.Equal(t, ResultPlayer1, b.Result())
	case player2 > player1:
		assert.Equal(t, ResultPlayer2, b.Result())
	default:
		assert.Equal(t, ResultDraw, b.Result())
	}
}

func TestOnePlayerComputerAnswers(t *testing.T) {
	b := newTestBoard(t)
	require.NoError(t, b.Start(StateOnePlayer))

	require.NoError(t, b.Click(300, 200))
	records := b.Records()
	require.GreaterOrEqual(t, len(records), 2)
	assert.False(t, records[0].Computer)
	for _, r := range records[1:] {
		assert.True(t, r.Computer)
		assert.Equal(t, chess.Player2, r.Player)
	}
	assert.Equal(t, chess.Player1, b.NowPlayer())
	assert.Len(t, b.Lines(), len(records))
}

func TestOnePlayerToTheEnd(t *testing.T) {
	b := newTestBoard(t)
	require.NoError(t, b.Start(StateOnePlayer))

	for b.State() != StateGameOver {
		clickFree(t, b)
	}

	records := b.Records()
	assert.Len(t, records, 12)
	gained := 0
	for i, r := range records {
		assert.Equal(t, i+1, r.StepCount)
		gained += r.Gained
	}
	assert.Equal(t, 4, gained)

	last := records[len(records)-1]
	player1, player2 := b.Scores()
	assert.Equal(t, player1, last.Player1Score)
	assert.Equal(t, player2, last.Player2Score)
}

func TestReset(t *testing.T) {
	b := newTestBoard(t)
	require.NoError(t, b.Start(StateTwoPlayers))
	require.NoError(t, b.Click(300, 200))
	uid := b.GameUid

	b.Reset()
	assert.Equal(t, StateNone, b.State())
	assert.NotEqual(t, uid, b.GameUid)
	assert.Empty(t, b.Lines())
	assert.Empty(t, b.Records())
	assert.Equal(t, chess.Player1, b.NowPlayer())
	require.NoError(t, b.Start(StateOnePlayer))
}

func TestSnapshot(t *testing.T) {
	b := newTestBoard(t)
	require.NoError(t, b.Start(StateTwoPlayers))
	require.NoError(t, b.Click(300, 200))

	decoded, err := message.NewBoardSnapshot(b.Snapshot().String())
	require.NoError(t, err)
	assert.Equal(t, b.GameUid, decoded.GameUid)
	assert.Equal(t, "TwoPlayers", decoded.State)
	assert.Len(t, decoded.Points, 9)
	assert.Len(t, decoded.Lines, 1)
	assert.Equal(t, chess.Player2, decoded.NowPlayer)
	assert.False(t, decoded.Complete)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "None", StateNone.String())
	assert.Equal(t, "GameOver", StateGameOver.String())
	assert.Equal(t, "Unknown", State(42).String())
}
