package main

import (
	"flag"

	"github.com/HuXin0817/dotsnboxes/pkg/config"
	"github.com/HuXin0817/dotsnboxes/pkg/models/model"
)

var (
	configFile   = flag.String("f", "etc/dotsnboxes.yaml", "the config file")
	gamesConf    = flag.Int("games", 20, "number of games to play")
	workersConf  = flag.Int("workers", 4, "games played in parallel")
	seedConf     = flag.Int64("seed", 1, "seed of the pointer bot, game i uses seed+i")
	computerConf = flag.String("computer", "ON", "let the engine play Player2 (ON) or use the bot for both sides (OFF)")
	outputConf   = flag.String("o", "", "write one JSON result per game to this file instead of stdout")
	movesConf    = flag.String("moves", "", "also write one JSON record per move to this file")

	Conf     config.Config
	Computer model.Switch
)

func initConfig() {
	flag.Parse()
	Conf = config.MustLoad(*configFile)
	Computer = model.NewSwitch(*computerConf)
}
