package othello

import "strings"

// Square grid of cells with running piece counts,
// every write goes through 'set' so the counts never drift
type Board struct {
	size   int
	cells  []Cell
	counts [3]int
}

func newBoard(size int) Board {
	b := Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
	b.counts[Empty] = size * size
	return b
}

func (b *Board) clone() Board {
	c := Board{size: b.size, counts: b.counts, cells: make([]Cell, len(b.cells))}
	copy(c.cells, b.cells)
	return c
}

// Side length of the board
func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(r, c int) bool {
	return r >= 0 && r < b.size && c >= 0 && c < b.size
}

// Get the cell at (r, c), assumes the coordinates are in bounds
func (b *Board) At(r, c int) Cell {
	return b.cells[r*b.size+c]
}

func (b *Board) Get(p Pos) Cell {
	return b.At(int(p.Row), int(p.Col))
}

// Number of cells holding given value
func (b *Board) Count(c Cell) int {
	return b.counts[c]
}

func (b *Board) set(p Pos, c Cell) {
	i := int(p.Row)*b.size + int(p.Col)
	b.counts[b.cells[i]]--
	b.counts[c]++
	b.cells[i] = c
}

// Rows of markers: '_' empty, '●' dark, '○' light
func (b *Board) String() string {
	builder := strings.Builder{}
	for r := 0; r < b.size; r++ {
		if r > 0 {
			builder.WriteByte('\n')
		}
		for c := 0; c < b.size; c++ {
			builder.WriteRune(b.At(r, c).Rune())
		}
	}
	return builder.String()
}
