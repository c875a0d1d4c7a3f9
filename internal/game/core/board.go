package core

// Cell represents the contents of a single board square.
// A Cell doubles as a player identifier: Black and White are the two
// players, Empty is only ever a square state.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

// Size is the board edge length. Standard Othello only.
const Size = 8

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "invalid"
	}
}

// Opponent returns the other player. Calling it on Empty is a programming
// error and panics.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		panic("core: Opponent called on " + c.String() + " cell")
	}
}

// Board is a fixed 8x8 Othello board. Cells are stored row-major and
// addressed by (column, row), both 0-7. The zero value is an all-empty
// board; use NewBoard for the standard opening position.
type Board struct {
	Cells [Size * Size]Cell
}

// NewBoard returns a board in the standard opening position:
// White on d4/e5, Black on e4/d5.
func NewBoard() *Board {
	b := &Board{}
	b.Cells[b.Idx(3, 3)] = White
	b.Cells[b.Idx(4, 3)] = Black
	b.Cells[b.Idx(3, 4)] = Black
	b.Cells[b.Idx(4, 4)] = White
	return b
}

func (b *Board) Idx(col, row int) int { return row*Size + col }

// InBounds checks if coordinates are within board boundaries
func (b *Board) InBounds(col, row int) bool {
	return col >= 0 && col < Size && row >= 0 && row < Size
}

// At returns the cell at (col, row), or ErrOutOfBounds for coordinates
// outside 0-7.
func (b *Board) At(col, row int) (Cell, error) {
	if !b.InBounds(col, row) {
		return Empty, ErrOutOfBounds
	}
	return b.Cells[b.Idx(col, row)], nil
}

// Set writes the cell at (col, row) unconditionally. Only the rules
// package should mutate a live game board.
func (b *Board) Set(col, row int, c Cell) error {
	if !b.InBounds(col, row) {
		return ErrOutOfBounds
	}
	b.Cells[b.Idx(col, row)] = c
	return nil
}

// CountDiscs returns the number of black and white discs on the board.
func (b *Board) CountDiscs() (black, white int) {
	for _, c := range b.Cells {
		switch c {
		case Black:
			black++
		case White:
			white++
		}
	}
	return black, white
}

// IsFull reports whether no empty squares remain.
func (b *Board) IsFull() bool {
	for _, c := range b.Cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}
