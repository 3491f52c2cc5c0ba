package bench

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

// Board colors, ANSI 256 codes
const (
	colorBoard = "22"
	colorDark  = "232"
	colorLight = "255"
	colorHint  = "244"
	colorLast  = "178"
)

// Render the position with coordinates, legal moves of the side to move
// are shown as dots and the last placement is highlighted
func RenderBoard(out *termenv.Output, pos *othello.Position) string {
	size := pos.Size()
	board := pos.Board()
	legal := pos.LegalMovesSet(pos.Turn())
	last, hasLast := pos.LastMove()

	builder := strings.Builder{}
	builder.WriteString("   ")
	for c := 0; c < size; c++ {
		builder.WriteString(fmt.Sprintf(" %c", 'a'+c))
	}
	builder.WriteByte('\n')

	for r := 0; r < size; r++ {
		builder.WriteString(fmt.Sprintf("%2d ", r+1))
		for c := 0; c < size; c++ {
			p := othello.NewPos(r, c)
			style := out.String(" " + cellSymbol(board.At(r, c), legal.Has(p))).Background(out.Color(colorBoard))

			switch board.At(r, c) {
			case othello.DarkPiece:
				style = style.Foreground(out.Color(colorDark))
			case othello.LightPiece:
				style = style.Foreground(out.Color(colorLight))
			default:
				style = style.Foreground(out.Color(colorHint)).Faint()
			}
			if hasLast && last.Pos == p {
				style = style.Foreground(out.Color(colorLast)).Bold()
			}
			builder.WriteString(style.String())
		}
		builder.WriteByte('\n')
	}

	dark, light := pos.Scores()
	builder.WriteString(fmt.Sprintf("%c %d  %c %d  (%s to move)",
		othello.DarkPiece.Rune(), dark, othello.LightPiece.Rune(), light, pos.Turn()))
	return builder.String()
}

func cellSymbol(cell othello.Cell, legal bool) string {
	if cell == othello.Empty {
		if legal {
			return "·"
		}
		return " "
	}
	return string(cell.Rune())
}

// Prints the arena progress, one line per worker
type TerminalListener struct {
	out *termenv.Output
	mu  *sync.Mutex
	row int
}

func NewTerminalListener(w io.Writer, opts ...termenv.OutputOption) *TerminalListener {
	return &TerminalListener{
		out: termenv.NewOutput(w, opts...),
		mu:  &sync.Mutex{},
		row: statsRowStart,
	}
}

func (tl *TerminalListener) Clone() ListenerLike {
	return &TerminalListener{out: tl.out, mu: tl.mu, row: tl.row}
}

func (tl *TerminalListener) SetRow(row int) {
	tl.row = row
}

func (tl *TerminalListener) OnStart() {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.out.HideCursor()
	tl.out.ClearScreen()
	tl.out.MoveCursor(1, 1)
	fmt.Fprint(tl.out, tl.out.String("Othello arena").Bold().String())
}

func (tl *TerminalListener) OnGameStart(info VersusWorkerInfo) {}

func (tl *TerminalListener) OnMoveMade(info VersusWorkerInfo) {
	tl.printLine(info, "")
}

func (tl *TerminalListener) OnFinishedGame(info VersusWorkerInfo) {
	tl.printLine(info, "")
}

func (tl *TerminalListener) OnFinishedWork(info VersusWorkerInfo) {
	tl.printLine(info, tl.out.String(" done").Foreground(tl.out.Color("2")).String())
}

func (tl *TerminalListener) printLine(info VersusWorkerInfo, suffix string) {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	tl.out.MoveCursor(tl.row, 1)
	tl.out.ClearLine()
	fmt.Fprintf(tl.out, "worker %d: game %d/%d, move %2d | %s %d - %d %s, draws %d%s",
		info.WorkerID, min(info.FinishedGames+1, info.NGames), info.NGames, info.GameMoveNum,
		info.P1Name, info.P1Wins, info.P2Wins, info.P2Name, info.Draws, suffix)
}

func (tl *TerminalListener) Summary(summary VersusSummaryInfo) {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	tl.out.MoveCursor(statsRowStart+summary.Workers+1, 1)
	tl.out.ClearLine()
	fmt.Fprintf(tl.out, "%s: %d, %s: %d, draws: %d (games %d, light %d, dark %d, avg moves %.1f)\n",
		tl.out.String(summary.P1Name).Bold(), summary.P1Wins,
		tl.out.String(summary.P2Name).Bold(), summary.P2Wins,
		summary.Draws, summary.TotalGames, summary.LightWins, summary.DarkWins, summary.AverageMoves)
}

func (tl *TerminalListener) OnEnd() {
	tl.out.ShowCursor()
}
