package bench

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Distributes the arena events between several listeners
type ArenaListener struct {
	listeners []ListenerLike
}

func NewArenaListener(listeners ...ListenerLike) *ArenaListener {
	return &ArenaListener{listeners: listeners}
}

func (al *ArenaListener) Clone() ListenerLike {
	clones := make([]ListenerLike, len(al.listeners))
	for i, l := range al.listeners {
		clones[i] = l.Clone()
	}
	return &ArenaListener{listeners: clones}
}

func (al *ArenaListener) SetRow(row int) {
	for _, l := range al.listeners {
		l.SetRow(row)
	}
}

func (al *ArenaListener) OnStart() {
	for _, l := range al.listeners {
		l.OnStart()
	}
}

func (al *ArenaListener) OnGameStart(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnGameStart(info)
	}
}

func (al *ArenaListener) OnMoveMade(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnMoveMade(info)
	}
}

func (al *ArenaListener) OnFinishedGame(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnFinishedGame(info)
	}
}

func (al *ArenaListener) OnFinishedWork(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnFinishedWork(info)
	}
}

func (al *ArenaListener) Summary(summary VersusSummaryInfo) {
	for _, l := range al.listeners {
		l.Summary(summary)
	}
}

func (al *ArenaListener) OnEnd() {
	for _, l := range al.listeners {
		l.OnEnd()
	}
}

// Writes the arena events to a zerolog logger
type LogListener struct {
	DefaultListener
	logger zerolog.Logger
}

// Listener logging through given logger, nil means the global one
func NewLogListener(logger *zerolog.Logger) *LogListener {
	if logger == nil {
		logger = &log.Logger
	}
	return &LogListener{logger: *logger}
}

func (ll *LogListener) Clone() ListenerLike {
	return &LogListener{logger: ll.logger}
}

func (ll *LogListener) OnFinishedGame(info VersusWorkerInfo) {
	ll.logger.Debug().
		Int("worker", info.WorkerID).
		Str("game-id", info.GameID.String()).
		Int("moves", info.GameMoveNum).
		Msg("arena-game")
}

func (ll *LogListener) OnFinishedWork(info VersusWorkerInfo) {
	ll.logger.Info().
		Int("worker", info.WorkerID).
		Int("games", info.NGames).
		Int("p1-wins", info.P1Wins).
		Int("p2-wins", info.P2Wins).
		Int("draws", info.Draws).
		Msg("arena-worker-done")
}

func (ll *LogListener) Summary(summary VersusSummaryInfo) {
	ll.logger.Info().
		Str("p1", summary.P1Name).
		Str("p2", summary.P2Name).
		Int("games", summary.TotalGames).
		Int("p1-wins", summary.P1Wins).
		Int("p2-wins", summary.P2Wins).
		Int("draws", summary.Draws).
		Int("light-wins", summary.LightWins).
		Int("dark-wins", summary.DarkWins).
		Float64("avg-moves", summary.AverageMoves).
		Msg("arena-summary")
}
