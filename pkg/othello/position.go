package othello

import "fmt"

// Main game state: board, side to move, local viewer's side and the history
// used by Undo. Legal moves are memoized per side and dropped on every mutation
type Position struct {
	board       Board
	turn        Side
	perspective Side
	history     []MoveRecord
	legal       [2][]Pos
	legalSet    [2]*MoveSet
	legalValid  [2]bool
}

// Create a position in the standard starting setup, light moves first
func NewPosition(size int, perspective Side) (*Position, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}

	pos := &Position{
		board:       newBoard(size),
		turn:        Light,
		perspective: perspective,
		history:     make([]MoveRecord, 0, size*size),
	}

	for _, r := range [2]int{size/2 - 1, size / 2} {
		for _, c := range [2]int{size/2 - 1, size / 2} {
			cell := DarkPiece
			if r == c {
				cell = LightPiece
			}
			pos.board.set(NewPos(r, c), cell)
		}
	}
	return pos, nil
}

func validateSize(size int) error {
	if size < MinSize || size > MaxSize || size%2 != 0 {
		return fmt.Errorf("%w: %d (want an even size in [%d, %d])", ErrInvalidSize, size, MinSize, MaxSize)
	}
	return nil
}

// Make a deep copy of the position (has no shared memory with this object)
func (p *Position) Clone() *Position {
	pos := &Position{
		board:       p.board.clone(),
		turn:        p.turn,
		perspective: p.perspective,
		history:     make([]MoveRecord, len(p.history), cap(p.history)),
	}
	for i, rec := range p.history {
		pos.history[i] = MoveRecord{
			Mover:   rec.Mover,
			Pos:     rec.Pos,
			Flipped: append([]Pos(nil), rec.Flipped...),
		}
	}
	return pos
}

// Getters
func (p *Position) Board() *Board {
	return &p.board
}

func (p *Position) Size() int {
	return p.board.size
}

func (p *Position) Turn() Side {
	return p.turn
}

func (p *Position) Perspective() Side {
	return p.perspective
}

func (p *Position) History() []MoveRecord {
	return p.history
}

// Last recorded move, false if the history is empty
func (p *Position) LastMove() (MoveRecord, bool) {
	if len(p.history) == 0 {
		return MoveRecord{}, false
	}
	return p.history[len(p.history)-1], true
}

// Number of pieces of each side
func (p *Position) Scores() (dark, light int) {
	return p.board.Count(DarkPiece), p.board.Count(LightPiece)
}

func (p *Position) invalidate() {
	p.legalValid = [2]bool{}
	p.legalSet = [2]*MoveSet{}
}

func (p *Position) legalMoves(side Side) []Pos {
	if !p.legalValid[side] {
		p.legal[side] = p.board.generateMoves(side)
		p.legalValid[side] = true
	}
	return p.legal[side]
}

// All placements for given side in row-major order, the slice is a copy
func (p *Position) LegalMoves(side Side) []Pos {
	moves := p.legalMoves(side)
	out := make([]Pos, len(moves))
	copy(out, moves)
	return out
}

// Legal placements as a set, for O(1) membership checks in input handling
func (p *Position) LegalMovesSet(side Side) MoveSet {
	if p.legalSet[side] == nil {
		set := newMoveSet(p.board.size, p.legalMoves(side))
		p.legalSet[side] = &set
	}
	return *p.legalSet[side]
}

// Check if 'side' may put a piece on (r, c)
func (p *Position) Placeable(side Side, r, c int) bool {
	return p.board.placeable(side, r, c)
}

// Turn-pass rule: after 'mover' plays, the opponent moves next only if
// it has a placement, otherwise 'mover' plays again
func (p *Position) NextTurn(mover Side) Side {
	if len(p.legalMoves(mover.Other())) != 0 {
		return mover.Other()
	}
	return mover
}

// Put a piece of 'side' on (r, c), flip the bracketed pieces and pass the turn.
// Returns the flipped squares; on error the position is unchanged
func (p *Position) Place(side Side, r, c int) ([]Pos, error) {
	if !p.board.InBounds(r, c) {
		return nil, fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfBounds, r, c, p.board.size, p.board.size)
	}
	if side != p.turn {
		return nil, fmt.Errorf("%w: %s to move, got %s", ErrIllegalMove, p.turn, side)
	}
	if p.board.At(r, c) != Empty {
		return nil, fmt.Errorf("%w: %s is occupied", ErrIllegalMove, NewPos(r, c))
	}

	flipped := p.board.flips(side, r, c)
	if len(flipped) == 0 {
		return nil, fmt.Errorf("%w: %s flips nothing for %s", ErrIllegalMove, NewPos(r, c), side)
	}

	own := CellOf(side)
	move := NewPos(r, c)
	p.board.set(move, own)
	for _, f := range flipped {
		p.board.set(f, own)
	}

	p.history = append(p.history, MoveRecord{Mover: side, Pos: move, Flipped: flipped})
	p.invalidate()
	p.turn = p.NextTurn(side)
	return flipped, nil
}

// Play given move for the side to move
func (p *Position) MakeMove(move Pos) ([]Pos, error) {
	if move.IsPass() {
		return nil, p.Pass()
	}
	return p.Place(p.turn, int(move.Row), int(move.Col))
}

// Hand the turn to the opponent, allowed only if the side to move
// has no placement and the game isn't over yet
func (p *Position) Pass() error {
	if len(p.legalMoves(p.turn)) != 0 {
		return fmt.Errorf("%w: %s has a placement, can't pass", ErrIllegalMove, p.turn)
	}
	if len(p.legalMoves(p.turn.Other())) == 0 {
		return fmt.Errorf("%w: game is finished", ErrIllegalMove)
	}

	p.history = append(p.history, MoveRecord{Mover: p.turn, Pos: PassMove})
	p.turn = p.turn.Other()
	p.invalidate()
	return nil
}

// Revert the last recorded move, returns the side that made it (now to move again)
func (p *Position) Undo() (Side, error) {
	if len(p.history) == 0 {
		return Dark, ErrEmptyHistory
	}

	last := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	if !last.Pos.IsPass() {
		p.board.set(last.Pos, Empty)
		other := CellOf(last.Mover.Other())
		for _, f := range last.Flipped {
			p.board.set(f, other)
		}
	}

	p.turn = last.Mover
	p.invalidate()
	return last.Mover, nil
}

// Undo the last move only if it was played on 'move'
func (p *Position) UndoMove(move Pos) (Side, error) {
	last, ok := p.LastMove()
	if !ok {
		return Dark, ErrEmptyHistory
	}
	if last.Pos != move {
		return Dark, fmt.Errorf("%w: last move is %s, got %s", ErrNotLastMove, last.Pos, move)
	}
	return p.Undo()
}

// Game ends when neither side can place a piece
func (p *Position) IsFinished() bool {
	return len(p.legalMoves(p.turn)) == 0 && len(p.legalMoves(p.turn.Other())) == 0
}

// Side with more pieces, false on a draw
func (p *Position) Winner() (Side, bool) {
	dark, light := p.Scores()
	switch {
	case dark > light:
		return Dark, true
	case light > dark:
		return Light, true
	}
	return Dark, false
}

func (p *Position) CurrentlyMySide(viewer Side) bool {
	return p.turn == viewer
}

// Whether the local viewer is to move
func (p *Position) IsMyTurn() bool {
	return p.CurrentlyMySide(p.perspective)
}

func (p *Position) String() string {
	return p.board.String()
}
