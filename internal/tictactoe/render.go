package tictactoe

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Layout controls how a board is drawn.
type Layout struct {
	// Separator goes between two cells of a row.
	Separator string
	// Paint decorates a cell symbol, e.g. with terminal colours. It must not change the visible width.
	Paint func(mark entity.Mark) string
}

var (
	ClassicLayout = Layout{Separator: " | "}
	CompactLayout = Layout{Separator: "|"}
)

// Render draws the board with ClassicLayout.
func Render(board entity.Board) string {
	return RenderWith(board, ClassicLayout)
}

// RenderWith draws the board row by row, with a line of dashes between rows.
func RenderWith(board entity.Board, layout Layout) string {
	size := board.Size()
	if size == 0 {
		return ""
	}

	paint := layout.Paint
	if paint == nil {
		paint = entity.Mark.Symbol
	}

	width := size + (size-1)*len(layout.Separator)
	divider := strings.Repeat("-", width)

	var sb strings.Builder
	for row, marks := range board.Rows() {
		if row > 0 {
			sb.WriteString(divider)
			sb.WriteByte('\n')
		}

		for col, mark := range marks {
			if col > 0 {
				sb.WriteString(layout.Separator)
			}
			sb.WriteString(paint(mark))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
