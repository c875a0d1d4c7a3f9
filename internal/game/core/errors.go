package core

import "errors"

var (
	ErrOutOfBounds     = errors.New("coordinates out of bounds")
	ErrIllegalMove     = errors.New("move is not legal for player")
	ErrInvalidNotation = errors.New("invalid move notation")
	ErrGameOver        = errors.New("game is over")
)
