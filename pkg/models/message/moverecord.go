package message

import (
	"github.com/HuXin0817/dotsnboxes/pkg/models/chess"
	"github.com/bytedance/sonic"
)

type MoveRecord struct {
	TimeStamp
	GameUid
	StepCount    int
	Player       chess.Player
	Line         chess.Line
	Gained       int
	Player1Score int
	Player2Score int
	Computer     bool
}

func NewMoveRecord(str string) (newMoveRecord MoveRecord, err error) {
	err = sonic.UnmarshalString(str, &newMoveRecord)
	return
}

func (m MoveRecord) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}
