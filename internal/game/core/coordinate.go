package core

import "fmt"

// Coordinate represents a position on the game board
type Coordinate struct {
	Col, Row int
}

// NewCoordinate creates a new coordinate with the given column and row values
func NewCoordinate(col, row int) Coordinate {
	return Coordinate{Col: col, Row: row}
}

// FromIndex creates a coordinate from a board array index using row-major ordering
func FromIndex(idx int) Coordinate {
	return Coordinate{
		Col: idx % Size,
		Row: idx / Size,
	}
}

// IsValid checks if the coordinate is within the board bounds
func (c Coordinate) IsValid() bool {
	return c.Col >= 0 && c.Col < Size && c.Row >= 0 && c.Row < Size
}

// ToIndex converts the coordinate to a board array index using row-major ordering
func (c Coordinate) ToIndex() int {
	return c.Row*Size + c.Col
}

// Add returns a new coordinate that is the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{
		Col: c.Col + other.Col,
		Row: c.Row + other.Row,
	}
}

// Equal checks if two coordinates are equal
func (c Coordinate) Equal(other Coordinate) bool {
	return c.Col == other.Col && c.Row == other.Row
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Directions lists the eight scan directions used by the capture rule.
var Directions = [8]Coordinate{
	{Col: -1, Row: -1}, {Col: 0, Row: -1}, {Col: 1, Row: -1},
	{Col: -1, Row: 0}, {Col: 1, Row: 0},
	{Col: -1, Row: 1}, {Col: 0, Row: 1}, {Col: 1, Row: 1},
}

// Notation returns the coordinate in standard Othello notation: column
// letter 'a'-'h' followed by row number '1'-'8', e.g. (3,2) -> "d3".
func (c Coordinate) Notation() string {
	if !c.IsValid() {
		panic("core: Notation called on out-of-bounds coordinate " + c.String())
	}
	return string([]byte{byte('a' + c.Col), byte('1' + c.Row)})
}

// ParseNotation converts standard notation back to a coordinate,
// e.g. "d3" -> (3,2). Returns ErrInvalidNotation for anything that is not
// a letter 'a'-'h' followed by a digit '1'-'8'.
func ParseNotation(s string) (Coordinate, error) {
	if len(s) != 2 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	c := Coordinate{
		Col: int(s[0] - 'a'),
		Row: int(s[1] - '1'),
	}
	if !c.IsValid() {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	return c, nil
}
