package application

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/primes"
)

const maxSieveLimit = 10_000_000

func newPrimesCommand(logger *slog.Logger, conf config.Primes) *cobra.Command {
	opts := conf
	var checks []int

	cmd := &cobra.Command{
		Use:   "primes",
		Short: "List primes up to a limit, or test given numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPrimes(cmd, logger, opts, checks)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.Limit, "limit", opts.Limit, "list every prime up to and including this number")
	flags.IntSliceVar(&checks, "check", nil, "test these numbers instead of listing primes")
	flags.StringVar(&opts.OutputPath, "output", opts.OutputPath, "also write the result to this file")

	return cmd
}

func runPrimes(cmd *cobra.Command, logger *slog.Logger, opts config.Primes, checks []int) error {
	log := logger.With("component", "primes", "method", "runPrimes")

	out := cmd.OutOrStdout()

	if opts.OutputPath != "" {
		file, err := os.Create(opts.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}

		defer func() {
			if err = file.Close(); err != nil {
				log.Error("could not close output file", "error", err)
			}
		}()

		out = io.MultiWriter(out, file)
	}

	if len(checks) > 0 {
		log.Debug("checking numbers", "count", len(checks))
		return primes.WriteChecks(out, checks)
	}

	if opts.Limit > maxSieveLimit {
		return fmt.Errorf("%w: limit %d is above %d", apperror.ErrInvalidInput, opts.Limit, maxSieveLimit)
	}

	log.Debug("listing primes", "limit", opts.Limit)

	return primes.WriteList(out, primes.Sieve(opts.Limit))
}
