package othello

import (
	"fmt"
	"strconv"
	"strings"
)

// Starting positions for the two game sizes
const (
	StartingPosition6 string = "6/6/2ld2/2dl2/6/6 l"
	StartingPosition8 string = "8/8/8/3ld3/3dl3/8/8/8 l"
)

// String notation of the position, much like FEN in chess:
//
//	<row>/<row>/.../<row> <turn>
//
// Rows go from the top (row 0), 'd' is a dark piece, 'l' a light piece
// and a number is a run of empty cells. <turn> is either 'd' or 'l'.
//
// Example, the 6x6 start:
//
//	6/6/2ld2/2dl2/6/6 l
//
// The history is not part of the notation.
func (p *Position) Notation() string {
	builder := strings.Builder{}
	size := p.board.size

	for r := 0; r < size; r++ {
		if r > 0 {
			builder.WriteByte('/')
		}
		counter := 0
		for c := 0; c < size; c++ {
			cell := p.board.At(r, c)
			if cell == Empty {
				counter++
				continue
			}
			if counter > 0 {
				builder.WriteString(strconv.Itoa(counter))
				counter = 0
			}
			builder.WriteByte(notationByte(cell))
		}
		if counter > 0 {
			builder.WriteString(strconv.Itoa(counter))
		}
	}

	builder.WriteByte(' ')
	if p.turn == Dark {
		builder.WriteByte('d')
	} else {
		builder.WriteByte('l')
	}
	return builder.String()
}

func notationByte(c Cell) byte {
	if c == DarkPiece {
		return 'd'
	}
	return 'l'
}

// Create the position from given notation string, with an empty history
func FromNotation(notation string, perspective Side) (*Position, error) {
	fields := strings.Fields(notation)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: expected '<rows> <turn>', got %q", ErrInvalidNotation, notation)
	}

	rows := strings.Split(fields[0], "/")
	size := len(rows)
	if err := validateSize(size); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidNotation, err)
	}

	pos := &Position{
		board:       newBoard(size),
		perspective: perspective,
		history:     make([]MoveRecord, 0, size*size),
	}

	for r, row := range rows {
		c := 0
		for i := 0; i < len(row); {
			switch ch := row[i]; {
			case ch == 'd' || ch == 'l':
				if c >= size {
					return nil, fmt.Errorf("%w: row %d is longer than %d", ErrInvalidNotation, r, size)
				}
				cell := DarkPiece
				if ch == 'l' {
					cell = LightPiece
				}
				pos.board.set(NewPos(r, c), cell)
				c++
				i++
			case '0' <= ch && ch <= '9':
				j := i
				for j < len(row) && '0' <= row[j] && row[j] <= '9' {
					j++
				}
				n, err := strconv.Atoi(row[i:j])
				if err != nil || n > size-c {
					return nil, fmt.Errorf("%w: run %q in row %d is longer than %d", ErrInvalidNotation, row[i:j], r, size)
				}
				c += n
				i = j
			default:
				return nil, fmt.Errorf("%w: unexpected token %q in row %d", ErrInvalidNotation, ch, r)
			}
		}
		if c != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidNotation, r, c, size)
		}
	}

	switch fields[1] {
	case "d":
		pos.turn = Dark
	case "l":
		pos.turn = Light
	default:
		return nil, fmt.Errorf("%w: invalid turn %q", ErrInvalidNotation, fields[1])
	}
	return pos, nil
}
