package game

import (
	"fmt"
	"strings"

	"github.com/artificialis/othello-gen/internal/game/core"
)

// RenderBoard draws a position as text for console output, with column
// letters and row numbers matching move notation.
func RenderBoard(b *core.Board) string {
	const (
		emptySymbol = "·"
		blackSymbol = "●"
		whiteSymbol = "○"
	)

	var sb strings.Builder

	sb.WriteString("  ")
	for col := 0; col < core.Size; col++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte('a' + col))
	}
	sb.WriteString("\n")

	for row := 0; row < core.Size; row++ {
		sb.WriteString(fmt.Sprintf("%2d", row+1))
		for col := 0; col < core.Size; col++ {
			sb.WriteByte(' ')
			switch b.Cells[b.Idx(col, row)] {
			case core.Black:
				sb.WriteString(blackSymbol)
			case core.White:
				sb.WriteString(whiteSymbol)
			default:
				sb.WriteString(emptySymbol)
			}
		}
		sb.WriteString("\n")
	}

	black, white := b.CountDiscs()
	sb.WriteString(fmt.Sprintf("\n%s=black %s=white ● %d - ○ %d\n", blackSymbol, whiteSymbol, black, white))

	return sb.String()
}
