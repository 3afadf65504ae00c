package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

// RunApp - runs the command line application with the given arguments.
func RunApp(logger *slog.Logger, conf *config.Config, args []string) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig, ok := <-sigs
		if !ok {
			return
		}
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
		// a second signal falls back to the default behaviour and kills the process
		signal.Stop(sigs)
	}()
	defer func() {
		signal.Stop(sigs)
		close(sigs)
	}()

	root := NewRootCommand(logger, conf)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}

// NewRootCommand - builds the command tree. Flags default to the values in conf.
func NewRootCommand(logger *slog.Logger, conf *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Tic-tac-toe on an N x N board, plus a few number toys",
		Long: `Two players share one terminal and take turns until someone fills a whole
row, column or diagonal, or the board is full.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPlayCommand(logger, conf.Game),
		newPrimesCommand(logger, conf.Primes),
	)

	return root
}
