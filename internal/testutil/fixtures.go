package testutil

import (
	"strings"

	"github.com/artificialis/othello-gen/internal/game/core"
)

// BoardFromDiagram builds a board from an 8-line diagram, one character
// per square: 'B' black, 'W' white, '.' empty. Rows run top to bottom in
// notation order (row 1 first). Panics on malformed diagrams so test
// setup failures are loud.
func BoardFromDiagram(diagram string) *core.Board {
	lines := strings.Fields(strings.TrimSpace(diagram))
	if len(lines) != core.Size {
		panic("testutil: diagram must have exactly 8 rows")
	}

	b := &core.Board{}
	for row, line := range lines {
		if len(line) != core.Size {
			panic("testutil: diagram row must have exactly 8 squares: " + line)
		}
		for col, ch := range line {
			switch ch {
			case 'B':
				b.Cells[b.Idx(col, row)] = core.Black
			case 'W':
				b.Cells[b.Idx(col, row)] = core.White
			case '.':
				b.Cells[b.Idx(col, row)] = core.Empty
			default:
				panic("testutil: unknown square character: " + string(ch))
			}
		}
	}
	return b
}

// FullBoard returns a board with no empty squares: black in the top four
// rows, white in the bottom four.
func FullBoard() *core.Board {
	b := &core.Board{}
	for i := range b.Cells {
		if i < len(b.Cells)/2 {
			b.Cells[i] = core.Black
		} else {
			b.Cells[i] = core.White
		}
	}
	return b
}

// Notations converts coordinates to their notation strings, for readable
// assertion failures.
func Notations(coords []core.Coordinate) []string {
	out := make([]string, len(coords))
	for i, c := range coords {
		out[i] = c.Notation()
	}
	return out
}
