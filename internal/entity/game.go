package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	MinBoardSize = 3
	MaxBoardSize = 9
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

// Board is a square grid of marks stored in row-major order. Its size never changes.
type Board struct {
	size  int
	cells []Mark
}

// NewBoard returns an empty size x size board.
func NewBoard(size int) (Board, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return Board{}, fmt.Errorf("%w: %d (allowed %d-%d)", apperror.ErrInvalidBoardSize, size, MinBoardSize, MaxBoardSize)
	}

	return Board{
		size:  size,
		cells: make([]Mark, size*size),
	}, nil
}

// BoardFromRows builds a board from rows of marks, mostly for tests and fixtures.
func BoardFromRows(rows ...[]Mark) (Board, error) {
	board, err := NewBoard(len(rows))
	if err != nil {
		return Board{}, err
	}

	for row, marks := range rows {
		if len(marks) != board.size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", apperror.ErrInvalidBoardSize, row, len(marks), board.size)
		}
		copy(board.cells[row*board.size:], marks)
	}

	return board, nil
}

func (that Board) Size() int {
	return that.size
}

func (that Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

// At returns the mark at the given cell. The caller must check InBounds first.
func (that Board) At(row, col int) Mark {
	return that.cells[row*that.size+col]
}

// Set places a mark. Boards handed out by the engine are clones, so this never touches live state.
func (that Board) Set(row, col int, mark Mark) {
	that.cells[row*that.size+col] = mark
}

func (that Board) Clone() Board {
	cells := make([]Mark, len(that.cells))
	copy(cells, that.cells)

	return Board{size: that.size, cells: cells}
}

// Rows returns a copy of the board as a slice of rows.
func (that Board) Rows() [][]Mark {
	rows := make([][]Mark, that.size)
	for row := range that.size {
		rows[row] = make([]Mark, that.size)
		copy(rows[row], that.cells[row*that.size:(row+1)*that.size])
	}

	return rows
}

// Move is a 0-indexed (row, column) pair.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// GameState is a snapshot of a game. Winner is only set when Status is StatusWon.
type GameState struct {
	Board  Board  `json:"-"`
	Turn   Mark   `json:"turn"`
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func (that GameState) IsOver() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that GameState) IsInProgress() bool {
	return that.Status == StatusInProgress
}
