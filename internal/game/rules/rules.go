// Package rules implements the Othello capture rules. It is the only
// package that knows how moves are validated and applied; everything else
// treats the board as plain data.
package rules

import (
	"fmt"

	"github.com/artificialis/othello-gen/internal/game/core"
)

// LegalMoves returns every square where player may move: empty squares
// from which at least one direction holds a contiguous run of opponent
// discs ending in one of player's own discs. The result is ordered by
// increasing row, then column, so it is deterministic for a given board.
func LegalMoves(b *core.Board, player core.Cell) []core.Coordinate {
	var moves []core.Coordinate
	for row := 0; row < core.Size; row++ {
		for col := 0; col < core.Size; col++ {
			pos := core.Coordinate{Col: col, Row: row}
			if isLegal(b, player, pos) {
				moves = append(moves, pos)
			}
		}
	}
	return moves
}

// HasAnyLegalMove reports whether player has at least one legal move.
// Unlike LegalMoves it stops at the first hit.
func HasAnyLegalMove(b *core.Board, player core.Cell) bool {
	for row := 0; row < core.Size; row++ {
		for col := 0; col < core.Size; col++ {
			if isLegal(b, player, core.Coordinate{Col: col, Row: row}) {
				return true
			}
		}
	}
	return false
}

// ApplyMove places player's disc at pos and flips the captured runs in
// every direction that brackets opponent discs. A move can capture in
// several directions at once; all of them flip as part of the one move.
// Returns the flipped coordinates, or ErrIllegalMove if pos does not
// capture anything.
func ApplyMove(b *core.Board, player core.Cell, pos core.Coordinate) ([]core.Coordinate, error) {
	if !pos.IsValid() {
		return nil, fmt.Errorf("%w: %s", core.ErrOutOfBounds, pos)
	}
	if !isLegal(b, player, pos) {
		return nil, fmt.Errorf("%w: %s for %s", core.ErrIllegalMove, pos.Notation(), player)
	}

	var flipped []core.Coordinate
	for _, dir := range core.Directions {
		run := capturedRun(b, player, pos, dir)
		for _, p := range run {
			b.Cells[p.ToIndex()] = player
		}
		flipped = append(flipped, run...)
	}
	b.Cells[pos.ToIndex()] = player
	return flipped, nil
}

// isLegal reports whether placing player at pos captures in any direction.
func isLegal(b *core.Board, player core.Cell, pos core.Coordinate) bool {
	if b.Cells[pos.ToIndex()] != core.Empty {
		return false
	}
	for _, dir := range core.Directions {
		if len(capturedRun(b, player, pos, dir)) > 0 {
			return true
		}
	}
	return false
}

// capturedRun scans outward from pos along dir and returns the run of
// opponent discs that would flip if player moved at pos. The run only
// counts when it is terminated by one of player's own discs; reaching the
// board edge or an empty square yields nothing for this direction.
func capturedRun(b *core.Board, player core.Cell, pos, dir core.Coordinate) []core.Coordinate {
	opponent := player.Opponent()

	var run []core.Coordinate
	for p := pos.Add(dir); p.IsValid(); p = p.Add(dir) {
		switch b.Cells[p.ToIndex()] {
		case opponent:
			run = append(run, p)
		case player:
			return run
		default: // empty square breaks the bracket
			return nil
		}
	}
	return nil // ran off the board without a closing disc
}
