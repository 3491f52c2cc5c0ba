package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/IlikeChooros/go-othello/pkg/eval"
	"github.com/IlikeChooros/go-othello/pkg/othello"
	"github.com/IlikeChooros/go-othello/pkg/search"
)

var ErrNoMove = errors.New("player returned no move")

// Arena participant. Each arena worker plays with its own clone,
// so implementations don't need to be safe for concurrent use
type Player interface {
	Name() string
	// Choose a move for the side to move, 'pos' must not be modified
	BestMove(ctx context.Context, pos *othello.Position) (othello.Pos, error)
	Clone() Player
}

// Player backed by the alpha-beta search
type EnginePlayer struct {
	name      string
	evaluator eval.Evaluator
	limits    search.Limits
	engine    *search.Engine
}

func NewEnginePlayer(name string, evaluator eval.Evaluator, limits *search.Limits) *EnginePlayer {
	if limits == nil {
		limits = search.DefaultLimits()
	}
	player := &EnginePlayer{
		name:      name,
		evaluator: evaluator,
		limits:    *limits,
		engine:    search.NewEngine(evaluator),
	}
	player.engine.SetLimits(&player.limits)
	return player
}

func (p *EnginePlayer) Name() string {
	return p.name
}

func (p *EnginePlayer) Engine() *search.Engine {
	return p.engine
}

func (p *EnginePlayer) BestMove(ctx context.Context, pos *othello.Position) (othello.Pos, error) {
	p.engine.SetContext(ctx)
	result, err := p.engine.Search(pos)
	if err != nil {
		return othello.PassMove, fmt.Errorf("%s: %w", p.name, err)
	}

	move, ok := result.BestMove()
	if !ok {
		return othello.PassMove, fmt.Errorf("%s: %w", p.name, ErrNoMove)
	}
	return move, nil
}

func (p *EnginePlayer) Clone() Player {
	limits := p.limits
	return NewEnginePlayer(p.name, p.evaluator, &limits)
}

// Plays a uniformly random legal move
type RandomPlayer struct {
	name string
	rand *rand.Rand
}

func NewRandomPlayer(name string, seed int64) *RandomPlayer {
	return &RandomPlayer{name: name, rand: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer) Name() string {
	return p.name
}

func (p *RandomPlayer) BestMove(_ context.Context, pos *othello.Position) (othello.Pos, error) {
	if pos.IsFinished() {
		return othello.PassMove, fmt.Errorf("%s: %w", p.name, ErrNoMove)
	}

	moves := pos.LegalMoves(pos.Turn())
	if len(moves) == 0 {
		return othello.PassMove, nil
	}
	return moves[p.rand.Intn(len(moves))], nil
}

func (p *RandomPlayer) Clone() Player {
	return NewRandomPlayer(p.name, p.rand.Int63())
}
