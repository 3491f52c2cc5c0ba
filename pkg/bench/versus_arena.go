package bench

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

/*
Arena benchmark subpackage, plays a series of games between two players
(engines with different limits or weights, or a random player).
Every worker owns its players and positions, sides are drawn at random.
*/

type VersusArena struct {
	VersusArenaStats
	Player1   Player
	Player2   Player
	NGames    int
	NWorkers  int
	BoardSize int
	Notation  string // optional starting position, overrides BoardSize
	ctx       context.Context
	mu        sync.Mutex
	records   []GameRecord
}

func NewVersusArena(boardSize int, player1, player2 Player) *VersusArena {
	return &VersusArena{
		Player1:   player1,
		Player2:   player2,
		NGames:    100,
		NWorkers:  2,
		BoardSize: boardSize,
		ctx:       context.Background(),
	}
}

func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

func (va *VersusArena) Setup(nGames, nWorkers int) *VersusArena {
	va.NGames = max(0, nGames)
	va.NWorkers = max(1, nWorkers)
	return va
}

// Finished games, in completion order
func (va *VersusArena) Records() []GameRecord {
	va.mu.Lock()
	defer va.mu.Unlock()
	return append([]GameRecord(nil), va.records...)
}

func (va *VersusArena) newPosition() (*othello.Position, error) {
	if va.Notation != "" {
		return othello.FromNotation(va.Notation, othello.Dark)
	}
	return othello.NewPosition(va.BoardSize, othello.Dark)
}

// Play all games, blocks until done. On error (or context cancellation)
// the remaining games are dropped, the summary covers the finished ones
func (va *VersusArena) Run(listener ListenerLike) (VersusSummaryInfo, error) {
	if listener == nil {
		listener = DefaultListener{}
	}
	if _, err := va.newPosition(); err != nil {
		return VersusSummaryInfo{}, err
	}

	listener.OnStart()
	group, ctx := errgroup.WithContext(va.ctx)

	nWorkers := max(1, min(va.NWorkers, va.NGames))
	nGames := va.NGames / nWorkers
	rest := va.NGames % nWorkers

	for id := range nWorkers {
		delta := 0
		if rest > 0 {
			delta = 1
			rest--
		}

		// Always use a clone, players are not safe for concurrent use
		p1 := va.Player1.Clone()
		p2 := va.Player2.Clone()
		l := listener.Clone()
		l.SetRow(id + statsRowStart)

		group.Go(func() error {
			return va.worker(ctx, id, nGames+delta, l, p1, p2)
		})
	}

	err := group.Wait()
	summary := va.Summary()
	summary.Workers = nWorkers

	listener.Summary(summary)
	listener.OnEnd()
	return summary, err
}

func (va *VersusArena) Summary() VersusSummaryInfo {
	records := va.Records()
	avg := 0.0
	if len(records) > 0 {
		avg = float64(lo.SumBy(records, func(r GameRecord) int { return len(r.Moves) })) / float64(len(records))
	}

	return VersusSummaryInfo{
		TotalGames:   va.Total(),
		P1Wins:       va.P1Wins(),
		P2Wins:       va.P2Wins(),
		Draws:        va.Draws(),
		LightWins:    va.LightWins(),
		DarkWins:     va.DarkWins(),
		AverageMoves: avg,
		Workers:      va.NWorkers,
		P1Name:       va.Player1.Name(),
		P2Name:       va.Player2.Name(),
	}
}

func (va *VersusArena) worker(ctx context.Context, id, nGames int, listener ListenerLike, p1, p2 Player) error {
	r := rand.New(rand.NewSource(SeedGeneratorFn() + int64(id)))
	info := VersusWorkerInfo{
		WorkerID: id,
		NGames:   nGames,
		P1Name:   p1.Name(),
		P2Name:   p2.Name(),
	}

	for i := range nGames {
		if err := ctx.Err(); err != nil {
			return err
		}

		p1Side := othello.Dark
		if r.Intn(2) == 0 {
			p1Side = othello.Light
		}

		info.FinishedGames = i
		record, err := va.playGame(ctx, p1, p2, p1Side, listener, info)
		if err != nil {
			return fmt.Errorf("worker %d, game %d: %w", id, i, err)
		}
		record.WorkerID = id

		va.VersusArenaStats.add(record)
		va.mu.Lock()
		va.records = append(va.records, record)
		va.mu.Unlock()

		switch record.Result {
		case VersusPl1Win:
			info.P1Wins++
		case VersusPl2Win:
			info.P2Wins++
		default:
			info.Draws++
		}

		log.Debug().
			Str("game-id", record.ID.String()).
			Int("worker", id).
			Str("p1-side", p1Side.String()).
			Int("dark", record.Dark).
			Int("light", record.Light).
			Str("result", record.Result.String()).
			Msg("game-finished")
	}

	info.FinishedGames = nGames
	info.GameMoveNum = 0
	info.Moves = nil
	listener.OnFinishedWork(info)
	return nil
}

func (va *VersusArena) playGame(
	ctx context.Context, p1, p2 Player, p1Side othello.Side,
	listener ListenerLike, info VersusWorkerInfo,
) (GameRecord, error) {
	pos, err := va.newPosition()
	if err != nil {
		return GameRecord{}, err
	}

	record := GameRecord{
		ID:     uuid.New(),
		P1Side: p1Side,
		Moves:  make([]othello.Pos, 0, pos.Size()*pos.Size()),
	}
	info.GameID = record.ID
	info.Position = pos
	listener.OnGameStart(info)

	for !pos.IsFinished() {
		if err := ctx.Err(); err != nil {
			return GameRecord{}, err
		}

		player := p2
		if pos.Turn() == p1Side {
			player = p1
		}

		move, err := player.BestMove(ctx, pos)
		if err != nil {
			return GameRecord{}, err
		}
		if _, err := pos.MakeMove(move); err != nil {
			return GameRecord{}, fmt.Errorf("%s played %s: %w", player.Name(), move, err)
		}

		record.Moves = append(record.Moves, move)
		info.Moves = record.Moves
		info.GameMoveNum = len(record.Moves)
		listener.OnMoveMade(info)
	}

	record.Dark, record.Light = pos.Scores()
	winner, decided := pos.Winner()
	record.Result = toAgentResult(winner, decided, p1Side)

	listener.OnFinishedGame(info)
	return record, nil
}
