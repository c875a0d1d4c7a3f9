package game

import (
	"strings"

	"github.com/artificialis/othello-gen/internal/game/core"
)

// Move is one recorded placement: who played, where, and which opponent
// discs it flipped. Legality guarantees Flipped is never empty. Forced
// passes are not Moves and never appear in a Record.
type Move struct {
	Player  core.Cell
	Pos     core.Coordinate
	Flipped []core.Coordinate
}

// Record is the ordered transcript of one finished game.
type Record []Move

// Notation renders the record in the corpus line format: move tokens
// ("d3", "e6", ...) joined by commas.
func (r Record) Notation() string {
	tokens := make([]string, len(r))
	for i, m := range r {
		tokens[i] = m.Pos.Notation()
	}
	return strings.Join(tokens, ",")
}

// ParseRecord parses a transcript line back into the ordered coordinate
// sequence. It is the inverse of Record.Notation for the coordinate part;
// player and capture information is not encoded in the line format and is
// recovered by replaying the moves (see Replay).
func ParseRecord(line string) ([]core.Coordinate, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	tokens := strings.Split(line, ",")
	coords := make([]core.Coordinate, len(tokens))
	for i, tok := range tokens {
		c, err := core.ParseNotation(tok)
		if err != nil {
			return nil, err
		}
		coords[i] = c
	}
	return coords, nil
}
