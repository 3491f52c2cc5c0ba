package eval

import (
	"testing"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

func mustBoard(t *testing.T, notation string) *othello.Board {
	t.Helper()
	pos, err := othello.FromNotation(notation, othello.Light)
	if err != nil {
		t.Fatalf("FromNotation(%s): %v", notation, err)
	}
	return pos.Board()
}

func TestHeuristicStartingPositions(t *testing.T) {
	h := NewHeuristic(DefaultWeights())
	for _, notation := range []string{
		"4/1ld1/1dl1/4 l",
		othello.StartingPosition6,
		othello.StartingPosition8,
	} {
		if got := h.Evaluate(mustBoard(t, notation)); got != 0 {
			t.Errorf("%s: evaluation = %d, want 0", notation, got)
		}
	}
}

func TestHeuristicTerms(t *testing.T) {
	h := NewHeuristic(DefaultWeights())
	tests := []struct {
		name     string
		notation string
		want     int
	}{
		{"light-corner", "l5/6/6/6/6/6 d", 7 - 1},
		{"dark-corner", "d5/6/6/6/6/6 l", -7 + 1},
		{"opposite-corner", "6/6/6/6/6/5l l", 7 - 1},
		{"x-square", "6/6/2l3/6/6/6 l", 2 - 1},
		{"c-square", "2d3/6/6/6/6/6 l", -2 + 1},
		{"corner-and-helper", "l5/6/2l3/6/6/6 d", 7 + 2 - 2},
		{"discs-only", "6/1dd3/6/6/6/6 l", 2},
		{"dark-x-squares", "6/6/6/2dd2/6/6 l", 2*-2 + 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.Evaluate(mustBoard(t, tt.notation)); got != tt.want {
				t.Errorf("Evaluate(%s) = %d, want %d", tt.notation, got, tt.want)
			}
		})
	}
}

func TestHeuristicWeights(t *testing.T) {
	board := mustBoard(t, "l5/6/2l3/6/6/6 d")
	tests := []struct {
		weights Weights
		want    int
	}{
		{Weights{Corner: 0, CornerHelper: 0, Disc: 1}, -2},
		{Weights{Corner: 1, CornerHelper: 0, Disc: 0}, 1},
		{Weights{Corner: 0, CornerHelper: 5, Disc: 0}, 5},
		{Weights{Corner: 10, CornerHelper: 3, Disc: 2}, 10 + 3 - 4},
	}

	for _, tt := range tests {
		if got := NewHeuristic(tt.weights).Evaluate(board); got != tt.want {
			t.Errorf("weights %s: got %d, want %d", tt.weights, got, tt.want)
		}
	}
}

func TestEvaluatorFunc(t *testing.T) {
	var e Evaluator = EvaluatorFunc(func(b *othello.Board) int {
		return b.Count(othello.LightPiece)
	})
	if got := e.Evaluate(mustBoard(t, othello.StartingPosition8)); got != 2 {
		t.Errorf("EvaluatorFunc = %d, want 2", got)
	}
}

func TestPerspective(t *testing.T) {
	if Perspective(othello.Light) != 1 || Perspective(othello.Dark) != -1 {
		t.Error("Perspective should be +1 for light and -1 for dark")
	}
}

func BenchmarkHeuristic(b *testing.B) {
	pos, _ := othello.FromNotation("2l5/1ldl3l/1dddddd1/ldlddl2/1ddlld2/2lddl2/3ld3/8 d", othello.Light)
	h := NewHeuristic(DefaultWeights())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Evaluate(pos.Board())
	}
}
