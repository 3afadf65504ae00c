package application

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/presentation/tui"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const classicSize = 3

func newPlayCommand(logger *slog.Logger, conf config.Game) *cobra.Command {
	opts := conf

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Long: `Play a two player game. On 3x3 boards moves are entered as a position 1-9,
on larger boards as "row col" counted from 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, logger, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.BoardSize, "size", opts.BoardSize, "board size, 3 to 9")
	flags.StringVar(&opts.Input, "input", opts.Input, `move input: "position" or "coordinates" (default depends on size)`)
	flags.StringVar(&opts.Color, "color", opts.Color, `colour marks: "auto", "always" or "never"`)
	flags.StringVar(&opts.TranscriptPath, "transcript", opts.TranscriptPath, "append a plain-text transcript of the game to this file")

	return cmd
}

func runPlay(cmd *cobra.Command, logger *slog.Logger, opts config.Game) error {
	log := logger.With("component", "play", "method", "runPlay")

	switch opts.Color {
	case tui.ColorAuto, tui.ColorAlways, tui.ColorNever:
	default:
		return fmt.Errorf("%w: unknown colour mode %q", apperror.ErrInvalidInput, opts.Color)
	}

	engine, err := tictactoe.NewEngine(opts.BoardSize)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	convention, err := console.ForName(opts.Input, opts.BoardSize)
	if err != nil {
		return fmt.Errorf("failed to pick input convention: %w", err)
	}

	out := cmd.OutOrStdout()

	base := tictactoe.CompactLayout
	if opts.BoardSize == classicSize {
		base = tictactoe.ClassicLayout
	}
	sessionOpts := []usecase.Option{
		usecase.WithLayout(tui.Layout(base, out, tui.ShouldColor(opts.Color, out))),
	}

	if opts.TranscriptPath != "" {
		transcript, err := os.OpenFile(opts.TranscriptPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open transcript: %w", err)
		}

		defer func() {
			if err = transcript.Close(); err != nil {
				log.Error("could not close transcript", "error", err)
			}
		}()

		sessionOpts = append(sessionOpts, usecase.WithTranscript(transcript))
	}

	session := usecase.NewGameSession(logger, engine, convention, cmd.InOrStdin(), out, sessionOpts...)
	if _, err = session.Play(cmd.Context()); err != nil {
		return fmt.Errorf("game %s ended early: %w", session.ID(), err)
	}

	return nil
}
