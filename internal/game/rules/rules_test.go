package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artificialis/othello-gen/internal/game/core"
	"github.com/artificialis/othello-gen/internal/testutil"
)

func TestLegalMoves_OpeningPosition(t *testing.T) {
	board := core.NewBoard()

	// Black opens with exactly d3, c4, f5, e6, enumerated row-major.
	moves := LegalMoves(board, core.Black)
	assert.Equal(t, []string{"d3", "c4", "f5", "e6"}, testutil.Notations(moves))

	// White's options before Black has moved are the mirror set.
	moves = LegalMoves(board, core.White)
	assert.Equal(t, []string{"e3", "f4", "c5", "d6"}, testutil.Notations(moves))
}

func TestLegalMoves_OnlyEmptyCapturingSquares(t *testing.T) {
	board := core.NewBoard()

	for _, player := range []core.Cell{core.Black, core.White} {
		for _, pos := range LegalMoves(board, player) {
			c, err := board.At(pos.Col, pos.Row)
			require.NoError(t, err)
			assert.Equal(t, core.Empty, c, "legal move %s must target an empty square", pos.Notation())

			// Every legal move must flip at least one disc when applied.
			b := board.Copy()
			flipped, err := ApplyMove(b, player, pos)
			require.NoError(t, err)
			assert.NotEmpty(t, flipped, "move %s captured nothing", pos.Notation())
		}
	}
}

func TestApplyMove_OpeningD3(t *testing.T) {
	board := core.NewBoard()

	flipped, err := ApplyMove(board, core.Black, core.NewCoordinate(3, 2))
	require.NoError(t, err)

	// d3 brackets exactly the white disc on d4.
	require.Len(t, flipped, 1)
	assert.Equal(t, "d4", flipped[0].Notation())

	expected := testutil.BoardFromDiagram(`
		........
		........
		...B....
		...BB...
		...BW...
		........
		........
		........
	`)
	assert.Equal(t, expected.Cells, board.Cells)

	black, white := board.CountDiscs()
	assert.Equal(t, 4, black)
	assert.Equal(t, 1, white)
}

func TestApplyMove_MultiDirectionCapture(t *testing.T) {
	// Black at e5 brackets e4 (north, closed by e3) and d5 (west, closed
	// by c5) in the same move. Both runs flip atomically.
	board := testutil.BoardFromDiagram(`
		........
		........
		....B...
		....W...
		..BW....
		........
		........
		........
	`)

	flipped, err := ApplyMove(board, core.Black, core.NewCoordinate(4, 4))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"e4", "d5"}, testutil.Notations(flipped))

	black, white := board.CountDiscs()
	assert.Equal(t, 5, black)
	assert.Equal(t, 0, white)
}

func TestApplyMove_RunToEdgeDoesNotFlip(t *testing.T) {
	// From a1 the eastward run of white discs reaches the edge with no
	// closing black disc: that direction flips nothing. The southward
	// run (a2 closed by a3) still makes the move legal.
	board := testutil.BoardFromDiagram(`
		.WWWWWWW
		W.......
		B.......
		........
		........
		........
		........
		........
	`)

	flipped, err := ApplyMove(board, core.Black, core.NewCoordinate(0, 0))
	require.NoError(t, err)

	require.Len(t, flipped, 1)
	assert.Equal(t, "a2", flipped[0].Notation())

	// The whole eastern run is untouched.
	for col := 1; col < core.Size; col++ {
		c, err := board.At(col, 0)
		require.NoError(t, err)
		assert.Equal(t, core.White, c, "column %d in row 1 must stay white", col)
	}
}

func TestApplyMove_RunToEmptyDoesNotFlip(t *testing.T) {
	// The northern run from d5 (d4 white, d3 empty) is open; only the
	// western run (c5 closed by b5) captures.
	board := testutil.BoardFromDiagram(`
		........
		........
		........
		...W....
		.BW.W...
		........
		........
		........
	`)

	flipped, err := ApplyMove(board, core.Black, core.NewCoordinate(3, 4))
	require.NoError(t, err)

	require.Len(t, flipped, 1)
	assert.Equal(t, "c5", flipped[0].Notation())

	c, err := board.At(3, 3)
	require.NoError(t, err)
	assert.Equal(t, core.White, c, "open-ended d4 run must not flip")
}

func TestApplyMove_Illegal(t *testing.T) {
	board := core.NewBoard()

	tests := []struct {
		name string
		pos  core.Coordinate
		err  error
	}{
		{"occupied square", core.NewCoordinate(3, 3), core.ErrIllegalMove},
		{"no capture", core.NewCoordinate(0, 0), core.ErrIllegalMove},
		{"white square for black", core.NewCoordinate(4, 2), core.ErrIllegalMove},
		{"out of bounds", core.NewCoordinate(8, 0), core.ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := board.Copy()
			_, err := ApplyMove(board, core.Black, tt.pos)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, before.Cells, board.Cells, "failed move must not mutate the board")
		})
	}
}

func TestApplyMove_DiscAccounting(t *testing.T) {
	// Over any move: total discs grow by exactly one (the placement) and
	// every flipped disc changes from opponent to mover.
	board := core.NewBoard()
	player := core.Black

	for step := 0; step < 10; step++ {
		moves := LegalMoves(board, player)
		if len(moves) == 0 {
			break
		}

		beforeBlack, beforeWhite := board.CountDiscs()
		before := board.Copy()

		flipped, err := ApplyMove(board, player, moves[0])
		require.NoError(t, err)

		afterBlack, afterWhite := board.CountDiscs()
		assert.Equal(t, beforeBlack+beforeWhite+1, afterBlack+afterWhite)

		for _, p := range flipped {
			prev := before.Cells[p.ToIndex()]
			now := board.Cells[p.ToIndex()]
			assert.Equal(t, player.Opponent(), prev, "flipped disc %s was not the opponent's", p.Notation())
			assert.Equal(t, player, now, "flipped disc %s did not change color", p.Notation())
		}

		if player == core.Black {
			assert.Equal(t, beforeBlack+1+len(flipped), afterBlack)
		} else {
			assert.Equal(t, beforeWhite+1+len(flipped), afterWhite)
		}

		player = player.Opponent()
	}
}

func TestHasAnyLegalMove(t *testing.T) {
	board := core.NewBoard()
	assert.True(t, HasAnyLegalMove(board, core.Black))
	assert.True(t, HasAnyLegalMove(board, core.White))

	// A single-color board offers no captures to either side.
	board = testutil.BoardFromDiagram(`
		BBBBBBBB
		........
		........
		........
		........
		........
		........
		........
	`)
	assert.False(t, HasAnyLegalMove(board, core.Black))
	assert.False(t, HasAnyLegalMove(board, core.White))

	// Full board: nothing to place anywhere.
	assert.False(t, HasAnyLegalMove(testutil.FullBoard(), core.Black))
	assert.False(t, HasAnyLegalMove(testutil.FullBoard(), core.White))
}
