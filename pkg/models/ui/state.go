package ui

type State int

const (
	StateNone State = iota
	StateOnePlayer
	StateTwoPlayers
	StateGameOver
)

var stateName = map[State]string{
	StateNone:       "None",
	StateOnePlayer:  "OnePlayer",
	StateTwoPlayers: "TwoPlayers",
	StateGameOver:   "GameOver",
}

func (s State) String() string {
	if name, ok := stateName[s]; ok {
		return name
	}
	return "Unknown"
}
