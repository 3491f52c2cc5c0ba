package search

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

var ErrSearchRunning = errors.New("search is already running")

type State int32

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// One root candidate with its exact minimax score (from the point of view
// of the side to move at the root) and the line that leads to it.
// Path starts at the deepest ply and ends with the root move (Path[len-1] == Move)
type SearchLine struct {
	Move  othello.Pos
	Score int
	Path  []othello.Pos
}

// Principal variation, root move first
func (line SearchLine) Pv() []othello.Pos {
	pv := slices.Clone(line.Path)
	slices.Reverse(pv)
	return pv
}

func (line SearchLine) String() string {
	return fmt.Sprintf("%s (%d): %s", line.Move, line.Score, formatMoves(line.Pv()))
}

func formatMoves(moves []othello.Pos) string {
	return strings.Join(lo.Map(moves, func(m othello.Pos, _ int) string {
		return m.String()
	}), " ")
}

// Result of the last completed depth
type Result struct {
	Depth      int
	Lines      []SearchLine // best first
	Nodes      uint64
	TimeMs     int
	Nps        uint64
	Turn       othello.Side
	StopReason StopReason
}

// Best root move, false if there is none (game is over or nothing was searched)
func (r Result) BestMove() (othello.Pos, bool) {
	if len(r.Lines) == 0 {
		return othello.PassMove, false
	}
	return r.Lines[0].Move, true
}

// Principal variation of the best line, root move first
func (r Result) MainLine() []othello.Pos {
	if len(r.Lines) == 0 {
		return nil
	}
	return r.Lines[0].Pv()
}

// Root moves in the ranking order
func (r Result) Moves() []othello.Pos {
	return lo.Map(r.Lines, func(line SearchLine, _ int) othello.Pos {
		return line.Move
	})
}

// Score of the best line, 0 if there are no lines
func (r Result) Score() int {
	if len(r.Lines) == 0 {
		return 0
	}
	return r.Lines[0].Score
}

func (r Result) String() string {
	str := fmt.Sprintf("Result={Depth=%d, Nodes=%d, TimeMs=%d, Nps=%d, Turn=%s, StopReason=%s}",
		r.Depth, r.Nodes, r.TimeMs, r.Nps, r.Turn, r.StopReason)
	for i, line := range r.Lines {
		str += fmt.Sprintf("\n%d. %s", i+1, line)
	}
	return str
}
