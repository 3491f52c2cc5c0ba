package bench

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

func (r VersusMatchResult) String() string {
	switch r {
	case VersusPl1Win:
		return "player1"
	case VersusPl2Win:
		return "player2"
	}
	return "draw"
}

type VersusArenaStats struct {
	p1Wins    atomic.Uint32
	p2Wins    atomic.Uint32
	draws     atomic.Uint32
	darkWins  atomic.Uint32
	lightWins atomic.Uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(vas.p1Wins.Load())
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(vas.p2Wins.Load())
}

func (vas *VersusArenaStats) Draws() int {
	return int(vas.draws.Load())
}

// Games won by the side that moves first (light)
func (vas *VersusArenaStats) LightWins() int {
	return int(vas.lightWins.Load())
}

func (vas *VersusArenaStats) DarkWins() int {
	return int(vas.darkWins.Load())
}

func (vas *VersusArenaStats) add(record GameRecord) {
	switch record.Result {
	case VersusPl1Win:
		vas.p1Wins.Add(1)
	case VersusPl2Win:
		vas.p2Wins.Add(1)
	default:
		vas.draws.Add(1)
		return
	}

	if winner, _ := record.Winner(); winner == othello.Light {
		vas.lightWins.Add(1)
	} else {
		vas.darkWins.Add(1)
	}
}

type VersusWorkerInfo struct {
	WorkerID      int
	GameID        uuid.UUID
	NGames        int
	FinishedGames int
	GameMoveNum   int
	Moves         []othello.Pos
	Position      *othello.Position
	P1Wins        int
	P2Wins        int
	Draws         int
	P1Name        string
	P2Name        string
}

type VersusSummaryInfo struct {
	TotalGames   int     `json:"total_games"`
	P1Wins       int     `json:"player1_wins"`
	P2Wins       int     `json:"player2_wins"`
	Draws        int     `json:"draws"`
	LightWins    int     `json:"light_wins"`
	DarkWins     int     `json:"dark_wins"`
	AverageMoves float64 `json:"average_moves"`
	Workers      int     `json:"workers"`
	P1Name       string  `json:"player1_name"`
	P2Name       string  `json:"player2_name"`
}

// Single finished game
type GameRecord struct {
	ID       uuid.UUID
	WorkerID int
	P1Side   othello.Side
	Moves    []othello.Pos
	Dark     int
	Light    int
	Result   VersusMatchResult
}

// Winning side, false on a draw
func (gr GameRecord) Winner() (othello.Side, bool) {
	switch {
	case gr.Dark > gr.Light:
		return othello.Dark, true
	case gr.Light > gr.Dark:
		return othello.Light, true
	}
	return othello.Dark, false
}

// maps the game winner to which agent won, given player 1's side
func toAgentResult(winner othello.Side, decided bool, p1Side othello.Side) VersusMatchResult {
	if !decided {
		return VersusDraw
	}
	if winner == p1Side {
		return VersusPl1Win
	}
	return VersusPl2Win
}
