package eval

import (
	"encoding/json"
	"strings"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

// Scores a board, always from light's point of view (positive = good for light)
type Evaluator interface {
	Evaluate(b *othello.Board) int
}

// Use a plain function as an Evaluator
type EvaluatorFunc func(b *othello.Board) int

func (f EvaluatorFunc) Evaluate(b *othello.Board) int {
	return f(b)
}

type Weights struct {
	Corner       int `json:"corner" mapstructure:"corner"`
	CornerHelper int `json:"corner_helper" mapstructure:"corner_helper"`
	Disc         int `json:"disc" mapstructure:"disc"`
}

func DefaultWeights() Weights {
	return Weights{Corner: 7, CornerHelper: 2, Disc: 1}
}

func (w Weights) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(w)
	return strings.TrimSpace(builder.String())
}

// Corner and X/C-square heuristic:
//
//	Corner * sum(corners) + CornerHelper * sum(helpers) + Disc * (dark - light)
//
// where a cell counts +1 for light, -1 for dark and 0 when empty.
// The helpers of a corner are the cells two steps inward: vertically,
// diagonally and horizontally. Note the disc term is dark-positive,
// while the rest is light-positive, so the sum isn't side-symmetric
type Heuristic struct {
	Weights Weights
}

func NewHeuristic(w Weights) *Heuristic {
	return &Heuristic{Weights: w}
}

func (h *Heuristic) Evaluate(b *othello.Board) int {
	size := b.Size()
	last := size - 1
	corners, helpers := 0, 0

	for _, cr := range [2]int{0, last} {
		for _, cc := range [2]int{0, last} {
			dr, dc := 2, 2
			if cr != 0 {
				dr = -2
			}
			if cc != 0 {
				dc = -2
			}

			corners += cellValue(b.At(cr, cc))
			helpers += cellValue(b.At(cr+dr, cc)) +
				cellValue(b.At(cr+dr, cc+dc)) +
				cellValue(b.At(cr, cc+dc))
		}
	}

	discs := b.Count(othello.DarkPiece) - b.Count(othello.LightPiece)
	return h.Weights.Corner*corners + h.Weights.CornerHelper*helpers + h.Weights.Disc*discs
}

func cellValue(c othello.Cell) int {
	switch c {
	case othello.LightPiece:
		return 1
	case othello.DarkPiece:
		return -1
	}
	return 0
}

// Sign turning a light-positive score into given side's point of view
func Perspective(side othello.Side) int {
	if side == othello.Light {
		return 1
	}
	return -1
}
