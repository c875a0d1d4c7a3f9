package game

import (
	"fmt"

	"github.com/artificialis/othello-gen/internal/game/core"
	"github.com/artificialis/othello-gen/internal/game/rules"
)

// Replay re-plays a coordinate sequence from the standard opening,
// validating every placement against the rules engine and inserting
// forced passes where the side to move has no legal move. It returns the
// reconstructed Record (with players and captures filled in) and the
// final position, or an error at the first illegal placement.
func Replay(coords []core.Coordinate) (Record, *core.Board, error) {
	board := core.NewBoard()
	current := core.Black
	record := make(Record, 0, len(coords))

	for i, pos := range coords {
		if !rules.HasAnyLegalMove(board, current) {
			current = current.Opponent()
			if !rules.HasAnyLegalMove(board, current) {
				return nil, nil, fmt.Errorf("game: move %d (%s) played after game over", i+1, pos.Notation())
			}
		}
		flipped, err := rules.ApplyMove(board, current, pos)
		if err != nil {
			return nil, nil, fmt.Errorf("game: move %d: %w", i+1, err)
		}
		record = append(record, Move{Player: current, Pos: pos, Flipped: flipped})
		current = current.Opponent()
	}

	return record, board, nil
}
