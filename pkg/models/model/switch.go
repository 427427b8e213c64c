package model

import "strconv"

type Switch bool

const (
	On  Switch = true
	Off Switch = false
)

var switchName = map[string]Switch{
	"ON": On,
	"On": On,
	"on": On,

	"OFF": Off,
	"Off": Off,
	"off": Off,
}

// NewSwitch reads ON/OFF in any common spelling, falling back to
// strconv.ParseBool. Anything unrecognized is Off.
func NewSwitch(s string) Switch {
	if sw, ok := switchName[s]; ok {
		return sw
	}
	b, _ := strconv.ParseBool(s)
	return Switch(b)
}

func (s Switch) String() string {
	if s {
		return "ON"
	}
	return "OFF"
}
