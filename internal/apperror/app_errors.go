package apperror

import "errors"

var (
	ErrOutOfBounds      = errors.New("cell is out of bounds")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrGameAlreadyOver  = errors.New("game is already over")
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInputClosed      = errors.New("input closed before the game was over")
)
