package message

import (
	"github.com/HuXin0817/dotsnboxes/pkg/models/chess"
	"github.com/bytedance/sonic"
)

// GameResult summarizes one finished round.
type GameResult struct {
	TimeStamp
	GameUid
	Width        int
	Height       int
	Steps        int
	Player1Score int
	Player2Score int
	Winner       chess.Player
	Result       string
}

func (r GameResult) String() string {
	str, _ := sonic.MarshalString(r)
	return str
}
