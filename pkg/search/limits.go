package search

import (
	"encoding/json"
	"math"
	"strings"
)

// Search limits, all of them are checked only between two depths,
// so the search may overrun Movetime or Nodes by one full depth
type Limits struct {
	Depth    int
	Nodes    uint64
	Movetime int
	Pause    int
	Infinite bool
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return strings.TrimSpace(builder.String())
}

const (
	DefaultNodeLimit     uint64 = math.MaxUint64
	DefaultMovetimeLimit int    = -1
)

func DefaultLimits() *Limits {
	return &Limits{
		Depth:    DefaultDepth,
		Nodes:    DefaultNodeLimit,
		Movetime: DefaultMovetimeLimit,
		Pause:    DefaultPause,
	}
}

// Set the maximum depth of the search
func (l *Limits) SetDepth(depth int) *Limits {
	l.Depth = max(1, depth)
	l.Infinite = false
	return l
}

// Set the number of nodes after which no new depth is started
func (l *Limits) SetNodes(nodes uint64) *Limits {
	l.Nodes = nodes
	l.Infinite = false
	return l
}

// Set the time (ms) after which no new depth is started
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = movetime
	l.Infinite = false
	return l
}

// Set the delay (ms) between two depths
func (l *Limits) SetPause(pause int) *Limits {
	l.Pause = max(0, pause)
	return l
}

// Search until stopped or until the game tree is exhausted
func (l *Limits) SetInfinite(infinite bool) *Limits {
	l.Infinite = infinite
	return l
}
