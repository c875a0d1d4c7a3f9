package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artificialis/othello-gen/internal/game/core"
	"github.com/artificialis/othello-gen/internal/testutil"
)

func TestReplay_ReconstructsGeneratedGame(t *testing.T) {
	e := NewEngine(NewRandomSelector(testutil.NewTestRNG(21)), testutil.NopLogger())
	record, err := e.Run()
	require.NoError(t, err)

	coords, err := ParseRecord(record.Notation())
	require.NoError(t, err)

	replayed, board, err := Replay(coords)
	require.NoError(t, err)

	// Players, positions and captures all come back identical, passes
	// included, even though the line format only stores coordinates.
	assert.Equal(t, record, replayed)
	assert.Equal(t, e.Board().Cells, board.Cells)
}

func TestReplay_IllegalMove(t *testing.T) {
	// a1 captures nothing at the opening.
	_, _, err := Replay([]core.Coordinate{core.NewCoordinate(0, 0)})
	assert.ErrorIs(t, err, core.ErrIllegalMove)
}

func TestReplay_Empty(t *testing.T) {
	record, board, err := Replay(nil)
	require.NoError(t, err)
	assert.Empty(t, record)

	black, white := board.CountDiscs()
	assert.Equal(t, 2, black)
	assert.Equal(t, 2, white)
}
