package tui

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	colorX = "#f87171"
	colorO = "#60a5fa"
)

// ShouldColor decides whether output to w gets ANSI colours for the given mode.
// In auto mode only terminals are coloured.
func ShouldColor(mode string, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// Layout returns a board layout that colours X and O for w, or the plain
// layout when colour is off.
func Layout(base tictactoe.Layout, w io.Writer, enabled bool) tictactoe.Layout {
	if !enabled {
		return base
	}

	out := termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI256))
	styles := map[entity.Mark]termenv.Style{
		entity.PlayerX: out.String().Foreground(out.Color(colorX)).Bold(),
		entity.PlayerO: out.String().Foreground(out.Color(colorO)).Bold(),
	}

	base.Paint = func(mark entity.Mark) string {
		style, ok := styles[mark]
		if !ok {
			return mark.Symbol()
		}
		return style.Styled(mark.Symbol())
	}

	return base
}
