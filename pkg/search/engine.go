package search

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-othello/pkg/eval"
	"github.com/IlikeChooros/go-othello/pkg/othello"
)

// Iterative deepening alpha-beta search. One search at a time: the engine
// clones the given position and walks the tree on that clone only
// (place, recurse, undo), so the caller's position is never touched.
//
// Limits and cancellation are checked between depths only. A Stop during
// depth k lets depth k finish, so the result always holds complete depths.
type Engine struct {
	evaluator eval.Evaluator
	Limiter   *Limiter
	listener  StatsListener

	state atomic.Int32
	depth atomic.Int32
	nodes atomic.Uint64

	startMu sync.Mutex
	mu      sync.Mutex
	result  Result
	done    chan struct{}

	// owned by the search goroutine
	pos     *othello.Position
	maxSide othello.Side
	horizon bool
}

func NewEngine(evaluator eval.Evaluator) *Engine {
	if evaluator == nil {
		evaluator = eval.NewHeuristic(eval.DefaultWeights())
	}
	return &Engine{
		evaluator: evaluator,
		Limiter:   NewLimiter(),
	}
}

func (e *Engine) SetLimits(limits *Limits) {
	e.Limiter.SetLimits(limits)
}

func (e *Engine) Limits() *Limits {
	return e.Limiter.Limits()
}

func (e *Engine) SetListener(listener StatsListener) {
	e.listener = listener
}

func (e *Engine) StatsListener() *StatsListener {
	return &e.listener
}

func (e *Engine) SetEvaluator(evaluator eval.Evaluator) {
	e.evaluator = evaluator
}

// Adds custom context to the limiter, enabling cancellation through it
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
//	defer cancel()
//
//	engine.SetContext(ctx)
//	result, err := engine.Search(pos)
func (e *Engine) SetContext(ctx context.Context) {
	e.Limiter.SetContext(ctx)
}

func (e *Engine) State() State {
	return State(e.state.Load())
}

func (e *Engine) IsSearching() bool {
	return e.State() == StateRunning
}

// Depth currently searched, or the last one searched if the engine is not running
func (e *Engine) Depth() int {
	return int(e.depth.Load())
}

// Nodes visited so far in this search
func (e *Engine) Nodes() uint64 {
	return e.nodes.Load()
}

// Result of the last completed depth, safe to call during the search
func (e *Engine) Result() Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.result
}

// Start the search on a clone of 'pos' in a new goroutine,
// use Synchronize to wait for it. A Stop issued after Start returns
// always reaches the new search
func (e *Engine) Start(pos *othello.Position) error {
	e.startMu.Lock()
	defer e.startMu.Unlock()

	if e.IsSearching() {
		return ErrSearchRunning
	}

	// The limiter is reset while the state is not yet Running,
	// Stop is a no-op until then
	e.setupSearch(pos)

	e.mu.Lock()
	done := make(chan struct{})
	e.done = done
	e.mu.Unlock()

	e.state.Store(int32(StateRunning))
	go e.run(done)
	return nil
}

// Run the search and wait for the result
func (e *Engine) Search(pos *othello.Position) (Result, error) {
	if err := e.Start(pos); err != nil {
		return Result{}, err
	}
	e.Synchronize()
	return e.Result(), nil
}

// Wait for the running search to end, returns immediately if there is none
func (e *Engine) Synchronize() {
	e.mu.Lock()
	done := e.done
	e.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Request cancellation, observed at the next depth boundary.
// No-op if the engine isn't searching
func (e *Engine) Stop() {
	if e.IsSearching() {
		e.Limiter.SetStop(true)
	}
}

func (e *Engine) setupSearch(pos *othello.Position) {
	e.Limiter.Reset()
	e.pos = pos.Clone()
	e.maxSide = pos.Turn()
	e.nodes.Store(0)
	e.depth.Store(0)

	e.mu.Lock()
	e.result = Result{Turn: e.maxSide}
	e.mu.Unlock()
}

func (e *Engine) run(done chan struct{}) {
	defer close(done)

	var pv []othello.Pos
	reason := StopNone

	for depth := 1; ; depth++ {
		e.depth.Store(int32(depth))
		e.horizon = false

		lines := e.searchRoot(depth, pv)
		result := e.publish(depth, lines)

		log.Debug().
			Int("depth", depth).
			Uint64("nodes", result.Nodes).
			Int("score", result.Score()).
			Str("pv", formatMoves(result.MainLine())).
			Msg("deepening-iteratively")

		e.listener.invoke(e.listener.onDepth, result, StateRunning)

		if len(lines) == 0 {
			// Game over at the root, nothing to search
			reason = StopExhausted
			break
		}
		pv = lines[0].Pv()

		if !e.Limiter.Ok(depth, result.Nodes, !e.horizon) {
			reason = e.Limiter.EvaluateStopReason(depth, result.Nodes, !e.horizon)
			break
		}

		if pause := e.Limits().Pause; pause > 0 && !e.Limiter.Wait(pause) {
			reason = StopInterrupt
			break
		}
	}

	e.Limiter.SetStopReason(reason)
	e.mu.Lock()
	e.result.StopReason = reason
	result := e.result
	e.mu.Unlock()

	state := StateCompleted
	if reason&StopInterrupt == StopInterrupt {
		state = StateCancelled
	}
	e.pos = nil
	e.state.Store(int32(state))

	log.Info().
		Int("depth", result.Depth).
		Uint64("nodes", result.Nodes).
		Int("time-ms", result.TimeMs).
		Str("stop-reason", reason.String()).
		Msg("search-ended")

	e.listener.invoke(e.listener.onStop, result, state)
}

func (e *Engine) publish(depth int, lines []SearchLine) Result {
	elapsed := e.Limiter.Elapsed()
	nodes := e.nodes.Load()

	result := Result{
		Depth:  depth,
		Lines:  lines,
		Nodes:  nodes,
		TimeMs: elapsed,
		Nps:    nodes * 1000 / uint64(elapsed),
		Turn:   e.maxSide,
	}

	e.mu.Lock()
	e.result = result
	e.mu.Unlock()
	return result
}

// Search every root candidate with a full window, so that every score is exact
func (e *Engine) searchRoot(depth int, pv []othello.Pos) []SearchLine {
	moves := e.candidates()
	if len(moves) == 0 {
		return nil
	}
	moves = orderMoves(moves, pv)
	lines := make([]SearchLine, 0, len(moves))

	for i, move := range moves {
		e.play(move)
		score, path := e.alphaBeta(depth-1, -ScoreInf, ScoreInf, childHint(pv, move, i))
		e.undo()

		lines = append(lines, SearchLine{Move: move, Score: score, Path: append(path, move)})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Score > lines[j].Score
	})
	return lines
}

// Alpha-beta with explicit max/min plies, the maximizing side is the
// side to move at the root. Turns don't strictly alternate (passes),
// so every ply checks who is to move
func (e *Engine) alphaBeta(depth, alpha, beta int, hint []othello.Pos) (int, []othello.Pos) {
	e.nodes.Add(1)

	if e.pos.IsFinished() {
		return e.leaf(), nil
	}
	if depth <= 0 {
		e.horizon = true
		return e.leaf(), nil
	}

	moves := orderMoves(e.candidates(), hint)
	maximizing := e.pos.Turn() == e.maxSide

	var bestPath []othello.Pos
	best := ScoreInf
	if maximizing {
		best = -ScoreInf
	}

	for i, move := range moves {
		e.play(move)
		score, path := e.alphaBeta(depth-1, alpha, beta, childHint(hint, move, i))
		e.undo()

		if maximizing {
			if score > best || bestPath == nil {
				best, bestPath = score, append(path, move)
			}
			alpha = max(alpha, best)
		} else {
			if score < best || bestPath == nil {
				best, bestPath = score, append(path, move)
			}
			beta = min(beta, best)
		}

		if alpha >= beta {
			break
		}
	}

	return best, bestPath
}

// Heuristic score from the maximizing side's point of view
func (e *Engine) leaf() int {
	return e.evaluator.Evaluate(e.pos.Board()) * eval.Perspective(e.maxSide)
}

// Legal moves of the side to move, a single pass if it has none
// (the caller makes sure the game isn't over)
func (e *Engine) candidates() []othello.Pos {
	if e.pos.IsFinished() {
		return nil
	}
	moves := e.pos.LegalMoves(e.pos.Turn())
	if len(moves) == 0 {
		return []othello.Pos{othello.PassMove}
	}
	return moves
}

func (e *Engine) play(move othello.Pos) {
	if _, err := e.pos.MakeMove(move); err != nil {
		panic(fmt.Sprintf("[search] play %s: %v", move, err))
	}
}

func (e *Engine) undo() {
	if _, err := e.pos.Undo(); err != nil {
		panic(fmt.Sprintf("[search] undo: %v", err))
	}
}

// Move the hinted move (first of 'hint') to the front, keeping the rest in order
func orderMoves(moves, hint []othello.Pos) []othello.Pos {
	if len(hint) == 0 {
		return moves
	}
	for i, move := range moves {
		if move == hint[0] {
			copy(moves[1:i+1], moves[:i])
			moves[0] = move
			break
		}
	}
	return moves
}

// Rest of the hint for the i-th child, only the first child follows the hinted line
func childHint(hint []othello.Pos, move othello.Pos, i int) []othello.Pos {
	if i == 0 && len(hint) > 0 && hint[0] == move {
		return hint[1:]
	}
	return nil
}
