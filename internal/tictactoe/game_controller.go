package tictactoe

import (
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Engine owns one game. ApplyMove is the only operation that changes it.
type Engine struct {
	mu    sync.Mutex
	state entity.GameState
}

// NewEngine - creates a game on an empty size x size board with PlayerX to move.
func NewEngine(size int) (*Engine, error) {
	board, err := entity.NewBoard(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &Engine{
		state: entity.GameState{
			Board:  board,
			Turn:   entity.PlayerX,
			Status: entity.StatusInProgress,
		},
	}, nil
}

// State - returns a snapshot of the current game.
func (that *Engine) State() entity.GameState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return snapshot(that.state)
}

// ApplyMove - places the current player's mark at (row, col) and advances the game.
// A failed move leaves the game exactly as it was.
func (that *Engine) ApplyMove(row, col int) (entity.GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := validateMove(that.state, row, col); err != nil {
		return snapshot(that.state), err
	}

	player := that.state.Turn
	that.state.Board.Set(row, col, player)
	updateGameStatus(&that.state, player)

	return snapshot(that.state), nil
}

// validateMove - checks if the move is valid.
func validateMove(state entity.GameState, row, col int) error {
	if !state.IsInProgress() {
		return apperror.ErrGameAlreadyOver
	}

	if !state.Board.InBounds(row, col) {
		return fmt.Errorf("%w: row %d, col %d on a %dx%d board", apperror.ErrOutOfBounds, row, col, state.Board.Size(), state.Board.Size())
	}

	if state.Board.At(row, col) != entity.EmptyCell {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(state *entity.GameState, player entity.Mark) {
	switch {
	case CheckWin(state.Board, player):
		state.Winner = player
		state.Status = entity.StatusWon
	case IsBoardFull(state.Board):
		state.Status = entity.StatusDraw
	default:
		state.Turn = player.Opponent()
	}
}

func snapshot(state entity.GameState) entity.GameState {
	state.Board = state.Board.Clone()
	return state
}

// CheckWin reports whether player occupies a whole row, column or diagonal.
// Rows are checked first, then columns, then both diagonals.
func CheckWin(board entity.Board, player entity.Mark) bool {
	if !player.IsPlayer() {
		return false
	}

	size := board.Size()
	if size == 0 {
		return false
	}

	for row := range size {
		if lineOwnedBy(board, player, func(i int) (int, int) { return row, i }) {
			return true
		}
	}

	for col := range size {
		if lineOwnedBy(board, player, func(i int) (int, int) { return i, col }) {
			return true
		}
	}

	if lineOwnedBy(board, player, func(i int) (int, int) { return i, i }) {
		return true
	}

	return lineOwnedBy(board, player, func(i int) (int, int) { return i, size - 1 - i })
}

func lineOwnedBy(board entity.Board, player entity.Mark, cellAt func(i int) (int, int)) bool {
	for i := range board.Size() {
		if board.At(cellAt(i)) != player {
			return false
		}
	}

	return true
}

// IsBoardFull reports whether no empty cell is left. A board without cells is never full.
func IsBoardFull(board entity.Board) bool {
	if board.Size() == 0 {
		return false
	}

	for _, row := range board.Rows() {
		for _, cell := range row {
			if cell == entity.EmptyCell {
				return false
			}
		}
	}

	return true
}
