package othello

import "math/bits"

// The 8 compass directions as (row, col) steps
var _directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Set of board squares with O(1) membership, backed by a bitset
// indexed by the coordinate (row * size + col)
type MoveSet struct {
	size int
	bits []uint64
}

func newMoveSet(size int, moves []Pos) MoveSet {
	set := MoveSet{size: size, bits: make([]uint64, (size*size+63)/64)}
	for _, m := range moves {
		i := int(m.Row)*size + int(m.Col)
		set.bits[i/64] |= 1 << (i % 64)
	}
	return set
}

// Check if the move belongs to the set, out of bounds squares never do
func (s MoveSet) Has(p Pos) bool {
	if p.Row < 0 || p.Col < 0 || int(p.Row) >= s.size || int(p.Col) >= s.size {
		return false
	}
	i := int(p.Row)*s.size + int(p.Col)
	return s.bits[i/64]&(1<<(i%64)) != 0
}

func (s MoveSet) Len() int {
	n := 0
	for _, w := range s.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// Check if 'side' can flip anything along direction (dr, dc) starting next to (r, c)
func (b *Board) bracketsAlong(own Cell, r, c, dr, dc int) bool {
	r, c = r+dr, c+dc
	seenOther := false
	for b.InBounds(r, c) {
		switch b.At(r, c) {
		case Empty:
			return false
		case own:
			return seenOther
		}
		seenOther = true
		r, c = r+dr, c+dc
	}
	return false
}

func (b *Board) placeable(side Side, r, c int) bool {
	if !b.InBounds(r, c) || b.At(r, c) != Empty {
		return false
	}
	own := CellOf(side)
	for _, d := range _directions {
		if b.bracketsAlong(own, r, c, d[0], d[1]) {
			return true
		}
	}
	return false
}

// Collect every opponent piece 'side' would flip by playing at (r, c),
// in direction scan order. Doesn't modify the board
func (b *Board) flips(side Side, r, c int) []Pos {
	var flipped []Pos
	own := CellOf(side)
	for _, d := range _directions {
		if !b.bracketsAlong(own, r, c, d[0], d[1]) {
			continue
		}
		for rr, cc := r+d[0], c+d[1]; b.At(rr, cc) != own; rr, cc = rr+d[0], cc+d[1] {
			flipped = append(flipped, NewPos(rr, cc))
		}
	}
	return flipped
}

// Generate all placements for given side, in row-major order
func (b *Board) generateMoves(side Side) []Pos {
	moves := make([]Pos, 0, 16)
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.placeable(side, r, c) {
				moves = append(moves, NewPos(r, c))
			}
		}
	}
	return moves
}
