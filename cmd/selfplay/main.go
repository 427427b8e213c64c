package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/HuXin0817/dotsnboxes/pkg/assess"
	"github.com/HuXin0817/dotsnboxes/pkg/models/chess"
	"github.com/HuXin0817/dotsnboxes/pkg/models/message"
	"github.com/HuXin0817/dotsnboxes/pkg/models/model"
	"github.com/HuXin0817/dotsnboxes/pkg/models/pusher"
	"github.com/HuXin0817/dotsnboxes/pkg/models/ui"
	"github.com/HuXin0817/dotsnboxes/pkg/pprof"
	"github.com/zeromicro/go-zero/core/collection"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"
)

func main() {
	initConfig()
	logx.MustSetup(Conf.Log)
	defer logx.Close()
	pprof.Start(Conf.Pprof)

	var out io.Writer = os.Stdout
	if *outputConf != "" {
		f, err := os.Create(*outputConf)
		logx.Must(err)
		defer f.Close()
		out = f
	}

	results := pusher.NewPusher[message.GameResult](pusher.WithPushLogic(writeLines[message.GameResult](out)))
	results.Start()

	var gameOptions []ui.Option
	if *movesConf != "" {
		f, err := os.Create(*movesConf)
		logx.Must(err)
		defer f.Close()

		moves := pusher.NewPusher[message.MoveRecord](pusher.WithPushLogic(writeLines[message.MoveRecord](f)))
		moves.Start()
		defer moves.Stop()
		gameOptions = append(gameOptions, ui.WithPusher(moves))
	}

	cache, err := collection.NewCache(Conf.Search.CacheExpire, collection.WithName("search"))
	logx.Must(err)
	engine := assess.NewEngine(chess.Player2, assess.WithCache(cache))

	logx.Infof("self-play: %d games on %dx%d, depth %d, computer %s",
		*gamesConf, Conf.Board.Width, Conf.Board.Height, Conf.Search.Depth, Computer)

	bar := model.NewBar(*gamesConf, "self-play")
	tally, err := mr.MapReduce(func(source chan<- int) {
		for i := range *gamesConf {
			source <- i
		}
	}, func(i int, writer mr.Writer[message.GameResult], cancel func(error)) {
		rng := rand.New(rand.NewSource(*seedConf + int64(i)))
		r, err := PlayGame(Conf, engine, Computer, rng, gameOptions...)
		if err != nil {
			cancel(err)
			return
		}
		writer.Write(r)
	}, func(pipe <-chan message.GameResult, writer mr.Writer[Tally], cancel func(error)) {
		var t Tally
		for r := range pipe {
			t.Add(r)
			results.AddMessages(r)
			bar.Step(t.String())
		}
		writer.Write(t)
	}, mr.WithWorkers(*workersConf))
	bar.Close()
	results.Stop()

	logx.Must(err)
	logx.Infof("self-play finished: %d games, %s", tally.Games, tally)
}

// writeLines writes each message as one JSON line.
func writeLines[T fmt.Stringer](w io.Writer) func(...T) error {
	return func(messages ...T) error {
		for _, m := range messages {
			if _, err := io.WriteString(w, m.String()+"\n"); err != nil {
				return err
			}
		}
		return nil
	}
}
