// Package game drives single Othello games from the standard opening to a
// terminal position, recording every placement along the way.
package game

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/artificialis/othello-gen/internal/game/core"
	"github.com/artificialis/othello-gen/internal/game/rules"
)

// Status is the engine's lifecycle state.
type Status int

const (
	InProgress Status = iota
	Terminal
)

// MaxMoves is the upper bound on recorded moves per game: 64 squares
// minus the 4 opening discs. Every recorded move fills exactly one empty
// square, so a game cannot run longer.
const MaxMoves = core.Size*core.Size - 4

// Engine plays one game to completion. It owns its board exclusively for
// the duration of the game and is not safe for concurrent use; run
// independent games on independent engines instead.
type Engine struct {
	board    *core.Board
	current  core.Cell
	record   Record
	selector Selector
	status   Status
	logger   zerolog.Logger
}

// NewEngine creates an engine at the standard opening position with Black
// to move. The selector decides which of the legal moves is played at
// each step.
func NewEngine(selector Selector, logger zerolog.Logger) *Engine {
	return &Engine{
		board:    core.NewBoard(),
		current:  core.Black,
		selector: selector,
		logger:   logger.With().Str("component", "engine").Logger(),
	}
}

// NewEngineFromPosition creates an engine at an arbitrary position with
// the given player to move. The position is copied; the caller keeps
// ownership of board. Used for replay tooling and tests.
func NewEngineFromPosition(board *core.Board, toMove core.Cell, selector Selector, logger zerolog.Logger) *Engine {
	return &Engine{
		board:    board.Copy(),
		current:  toMove,
		selector: selector,
		logger:   logger.With().Str("component", "engine").Logger(),
	}
}

// Step advances the game by one transition: either the current player
// moves, or their turn is skipped because they have no legal move, or the
// game reaches a terminal position. Returns core.ErrGameOver when called
// on a finished game. Any other error is an invariant violation inside
// the rules engine and leaves the game unusable.
func (e *Engine) Step() error {
	if e.status == Terminal {
		return core.ErrGameOver
	}

	// A full board ends the game before any legal-move computation.
	if e.board.IsFull() {
		e.finish("board full")
		return nil
	}

	moves := rules.LegalMoves(e.board, e.current)
	if len(moves) == 0 {
		if !rules.HasAnyLegalMove(e.board, e.current.Opponent()) {
			e.finish("double pass")
			return nil
		}
		// Forced pass: no move is recorded, play passes to the opponent.
		e.logger.Debug().
			Str("player", e.current.String()).
			Int("move_count", len(e.record)).
			Msg("No legal moves, skipping turn")
		e.current = e.current.Opponent()
		return nil
	}

	pos := e.selector.Select(moves)
	flipped, err := rules.ApplyMove(e.board, e.current, pos)
	if err != nil {
		// The move came from LegalMoves, so this cannot happen unless the
		// rules engine itself is broken. Abort the run.
		return fmt.Errorf("game: applying selected move %s for %s: %w", pos.Notation(), e.current, err)
	}
	e.record = append(e.record, Move{Player: e.current, Pos: pos, Flipped: flipped})

	if e.board.IsFull() {
		e.finish("board full")
		return nil
	}
	e.current = e.current.Opponent()
	return nil
}

// Run steps the game until it terminates and returns the transcript.
func (e *Engine) Run() (Record, error) {
	for e.status == InProgress {
		if err := e.Step(); err != nil {
			return nil, err
		}
	}
	return e.record, nil
}

func (e *Engine) finish(reason string) {
	e.status = Terminal
	black, white := e.board.CountDiscs()
	e.logger.Debug().
		Str("reason", reason).
		Int("moves", len(e.record)).
		Int("black_discs", black).
		Int("white_discs", white).
		Msg("Game over")
}

// Status returns the current lifecycle state.
func (e *Engine) Status() Status { return e.status }

// IsGameOver reports whether the game has reached a terminal position.
func (e *Engine) IsGameOver() bool { return e.status == Terminal }

// CurrentPlayer returns the player to move. Meaningless once the game is
// over.
func (e *Engine) CurrentPlayer() core.Cell { return e.current }

// Record returns the moves played so far.
func (e *Engine) Record() Record { return e.record }

// Board returns a copy of the current position.
func (e *Engine) Board() *core.Board { return e.board.Copy() }
