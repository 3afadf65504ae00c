package console

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForName(t *testing.T) {
	t.Run("Auto picks position for 3x3 and coordinates otherwise", func(t *testing.T) {
		small, err := ForName(AutoName, 3)
		require.NoError(t, err)
		assert.Equal(t, PositionName, small.Name())

		large, err := ForName(AutoName, 5)
		require.NoError(t, err)
		assert.Equal(t, CoordinatesName, large.Name())
	})

	t.Run("Explicit names win over the board size", func(t *testing.T) {
		conv, err := ForName("Coordinates", 3)
		require.NoError(t, err)
		assert.Equal(t, CoordinatesName, conv.Name())

		conv, err = ForName(" position ", 4)
		require.NoError(t, err)
		assert.Equal(t, PositionName, conv.Name())
	})

	t.Run("Unknown names are rejected", func(t *testing.T) {
		_, err := ForName("chess", 3)
		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	})
}

func TestPosition(t *testing.T) {
	conv := Position{}

	t.Run("Prompt names the player and the range", func(t *testing.T) {
		assert.Equal(t, "Player X, choose a position (1-9): ", conv.Prompt(entity.PlayerX, 3))
	})

	t.Run("Maps positions to rows and columns", func(t *testing.T) {
		cases := map[string]entity.Move{
			"1":     {Row: 0, Col: 0},
			"3":     {Row: 0, Col: 2},
			"5\n":   {Row: 1, Col: 1},
			" 7 ":   {Row: 2, Col: 0},
			"9\r\n": {Row: 2, Col: 2},
		}

		for line, expected := range cases {
			move, err := conv.Parse(line, 3)
			require.NoError(t, err, "line %q", line)
			assert.Equal(t, expected, move, "line %q", line)
		}
	})

	t.Run("Positions outside the board are out of bounds", func(t *testing.T) {
		for _, line := range []string{"0", "10", "-3"} {
			_, err := conv.Parse(line, 3)
			assert.ErrorIs(t, err, apperror.ErrOutOfBounds, "line %q", line)
		}
	})

	t.Run("Non numbers are invalid input", func(t *testing.T) {
		for _, line := range []string{"", "a", "1 2"} {
			_, err := conv.Parse(line, 3)
			assert.ErrorIs(t, err, apperror.ErrInvalidInput, "line %q", line)
		}
	})
}

func TestCoordinates(t *testing.T) {
	conv := Coordinates{}

	t.Run("Prompt names the player and the range", func(t *testing.T) {
		assert.Equal(t, "Player O, enter row and column (0-4): ", conv.Prompt(entity.PlayerO, 5))
	})

	t.Run("Accepts spaces and commas", func(t *testing.T) {
		for _, line := range []string{"2 3", "2,3", " 2 , 3 \n", "2\t3"} {
			move, err := conv.Parse(line, 5)
			require.NoError(t, err, "line %q", line)
			assert.Equal(t, entity.Move{Row: 2, Col: 3}, move, "line %q", line)
		}
	})

	t.Run("Leaves range checks to the engine", func(t *testing.T) {
		move, err := conv.Parse("-1 7", 5)
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: -1, Col: 7}, move)
	})

	t.Run("Wrong arity or non numbers are invalid input", func(t *testing.T) {
		for _, line := range []string{"", "1", "1 2 3", "a 1", "1 b"} {
			_, err := conv.Parse(line, 5)
			assert.ErrorIs(t, err, apperror.ErrInvalidInput, "line %q", line)
		}
	})
}
