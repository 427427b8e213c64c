package chess

// Player is encoded so that the opponent is the negation, Unowned being its
// own opposite.
type Player int8

const (
	Unowned Player = 0
	Player1 Player = 1
	Player2 Player = -1
)

func (p Player) Opponent() Player {
	return -p
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return "Unowned"
}

// Label is the short text drawn inside a claimed square.
func (p Player) Label() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	}
	return ""
}
