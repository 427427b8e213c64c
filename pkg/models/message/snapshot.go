package message

import (
	"github.com/HuXin0817/dotsnboxes/pkg/models/chess"
	"github.com/HuXin0817/dotsnboxes/pkg/models/geometry"
	"github.com/bytedance/sonic"
)

// BoardSnapshot is everything a renderer needs to draw one frame.
type BoardSnapshot struct {
	TimeStamp
	GameUid
	Width          int
	Height         int
	Points         []geometry.Point
	Lines          []chess.Line
	TempLine       chess.Line
	Player1Squares []chess.Square
	Player2Squares []chess.Square
	NowPlayer      chess.Player
	Complete       bool
	State          string
}

func NewBoardSnapshot(str string) (newBoardSnapshot BoardSnapshot, err error) {
	err = sonic.UnmarshalString(str, &newBoardSnapshot)
	return
}

func (s BoardSnapshot) String() string {
	str, _ := sonic.MarshalString(s)
	return str
}
