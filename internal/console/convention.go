package console

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	PositionName    = "position"
	CoordinatesName = "coordinates"
	AutoName        = ""
	positionSize    = 3
)

// Convention turns one line of player input into a move.
type Convention interface {
	Name() string
	Prompt(mark entity.Mark, size int) string
	Parse(line string, size int) (entity.Move, error)
}

// ForName - picks a convention by its config name. An empty name picks
// Position for 3x3 and Coordinates for everything else.
func ForName(name string, size int) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PositionName:
		return Position{}, nil
	case CoordinatesName:
		return Coordinates{}, nil
	case AutoName:
		if size == positionSize {
			return Position{}, nil
		}
		return Coordinates{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown input convention %q", apperror.ErrInvalidInput, name)
	}
}

// Position reads a single 1-based cell number, counted left to right, top to bottom.
type Position struct{}

func (Position) Name() string {
	return PositionName
}

func (Position) Prompt(mark entity.Mark, size int) string {
	return fmt.Sprintf("Player %s, choose a position (1-%d): ", mark, size*size)
}

func (Position) Parse(line string, size int) (entity.Move, error) {
	position, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidInput, strings.TrimSpace(line))
	}

	if position < 1 || position > size*size {
		return entity.Move{}, fmt.Errorf("%w: position %d not in 1-%d", apperror.ErrOutOfBounds, position, size*size)
	}

	index := position - 1

	return entity.Move{Row: index / size, Col: index % size}, nil
}

// Coordinates reads a 0-based row and column separated by spaces or a comma.
type Coordinates struct{}

func (Coordinates) Name() string {
	return CoordinatesName
}

func (Coordinates) Prompt(mark entity.Mark, size int) string {
	return fmt.Sprintf("Player %s, enter row and column (0-%d): ", mark, size-1)
}

func (Coordinates) Parse(line string, _ int) (entity.Move, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 2 {
		return entity.Move{}, fmt.Errorf("%w: expected row and column, got %q", apperror.ErrInvalidInput, strings.TrimSpace(line))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: row %q is not a number", apperror.ErrInvalidInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: column %q is not a number", apperror.ErrInvalidInput, fields[1])
	}

	return entity.Move{Row: row, Col: col}, nil
}
