package othello

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Type defines for the position
type Side uint8
type Cell uint8

// Enum for the sides, Dark is the zero value, so never use a Side
// on its own as a success/failure flag
const (
	Dark Side = iota
	Light
)

// Enum for the board cells
const (
	Empty Cell = iota
	DarkPiece
	LightPiece
)

// Board size bounds, only even sizes are valid
const (
	MinSize = 4
	MaxSize = 16
)

var (
	ErrIllegalMove     = errors.New("illegal move")
	ErrOutOfBounds     = errors.New("position out of bounds")
	ErrEmptyHistory    = errors.New("empty move history")
	ErrNotLastMove     = errors.New("not the last move")
	ErrInvalidSize     = errors.New("invalid board size")
	ErrInvalidNotation = errors.New("invalid notation")
)

// Get the opponent
func (s Side) Other() Side {
	return s ^ 1
}

func (s Side) String() string {
	if s == Dark {
		return "dark"
	}
	return "light"
}

// Parse side name, accepts both dark/light and black/white spellings
func ParseSide(str string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "dark", "black", "d", "b":
		return Dark, nil
	case "light", "white", "l", "w":
		return Light, nil
	}
	return Dark, fmt.Errorf("unknown side %q", str)
}

// Get the cell occupied by given side
func CellOf(s Side) Cell {
	return Cell(s + 1)
}

// Get the side occupying this cell, false if the cell is empty
func (c Cell) Side() (Side, bool) {
	switch c {
	case DarkPiece:
		return Dark, true
	case LightPiece:
		return Light, true
	}
	return Dark, false
}

// Marker used in the diagnostic board rendering
func (c Cell) Rune() rune {
	switch c {
	case DarkPiece:
		return '●'
	case LightPiece:
		return '○'
	}
	return '_'
}

// Board coordinate, also used as the move representation
type Pos struct {
	Row int8
	Col int8
}

// Signature of a pass, never a board square
var PassMove = Pos{-1, -1}

func NewPos(r, c int) Pos {
	return Pos{Row: int8(r), Col: int8(c)}
}

func (p Pos) IsPass() bool {
	return p == PassMove
}

// Algebraic notation, column letter followed by 1-based row: (2, 3) -> d3
func (p Pos) String() string {
	if p.IsPass() {
		return "pass"
	}
	if p.Row < 0 || p.Col < 0 || p.Col >= 26 {
		return "(none)"
	}
	return string(rune('a'+p.Col)) + strconv.Itoa(int(p.Row)+1)
}

// Parse a move written with Pos.String
func ParsePos(str string) (Pos, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	if str == "pass" {
		return PassMove, nil
	}
	if len(str) < 2 || str[0] < 'a' || str[0] > 'z' {
		return PassMove, fmt.Errorf("%w: %q", ErrOutOfBounds, str)
	}
	row, err := strconv.Atoi(str[1:])
	if err != nil || row < 1 || row > MaxSize {
		return PassMove, fmt.Errorf("%w: %q", ErrOutOfBounds, str)
	}
	return NewPos(row-1, int(str[0]-'a')), nil
}

// History entry, enough to revert the move exactly
type MoveRecord struct {
	Mover   Side
	Pos     Pos
	Flipped []Pos
}

func (r MoveRecord) String() string {
	return fmt.Sprintf("%s %s (%d flipped)", r.Mover, r.Pos, len(r.Flipped))
}
