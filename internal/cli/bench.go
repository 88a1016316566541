package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourlab/pointgen"
	"github.com/katalvlaran/tourlab/tsp"
)

// benchOpts holds the flags of the bench command.
type benchOpts struct {
	runs  int     // number of random instances
	count int     // nodes per instance
	side  float64 // instances are sampled in a side×side square
	seed  int64
}

// benchStats aggregates both starts over all runs.
type benchStats struct {
	runs                 int
	randomCost, nnCost   float64 // sums of final costs
	randomMoves, nnMoves int     // sums of applied moves
	randomWins, nnWins   int     // strictly cheaper final tour; ties count for neither
}

func (s *benchStats) add(random, nn tsp.Result) {
	s.runs++
	s.randomCost += random.Cost
	s.nnCost += nn.Cost
	s.randomMoves += random.Moves
	s.nnMoves += nn.Moves
	switch {
	case random.Cost < nn.Cost:
		s.randomWins++
	case nn.Cost < random.Cost:
		s.nnWins++
	}
}

func (s *benchStats) mean(sum float64) float64 {
	if s.runs == 0 {
		return 0
	}
	return sum / float64(s.runs)
}

func (c *CLI) benchCommand() *cobra.Command {
	opts := benchOpts{runs: 20, count: 50, side: 100, seed: 1}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare random and nearest-neighbour starts for 2-opt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.runs < 1 {
				return fmt.Errorf("bench: --runs must be at least 1, got %d", opts.runs)
			}
			if opts.count < tsp.MinNodes {
				return fmt.Errorf("bench: --count must be at least %d, got %d", tsp.MinNodes, opts.count)
			}
			stats, err := runBench(cmd.Context(), progressWriter(cmd), opts)
			if err != nil {
				return err
			}
			printBench(cmd.OutOrStdout(), opts, stats)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.runs, "runs", "r", opts.runs, "number of random instances")
	cmd.Flags().IntVarP(&opts.count, "count", "n", opts.count, "nodes per instance")
	cmd.Flags().Float64Var(&opts.side, "side", opts.side, "side length of the sampling square")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "random seed")

	return cmd
}

// progressWriter draws the bar through an ANSI-aware stderr when the command
// writes to the real terminal.
func progressWriter(cmd *cobra.Command) io.Writer {
	if w := cmd.ErrOrStderr(); w != os.Stderr {
		return w
	}
	return ansi.NewAnsiStderr()
}

func newBar(total int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan]2-opt[reset] benchmarking..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionClearOnFinish(),
	)
}

// runBench solves opts.runs instances twice each: from a random tour and from
// the nearest-neighbour tour. One RNG drives both sampling and random starts,
// so the whole run is reproducible from the seed.
func runBench(ctx context.Context, barOut io.Writer, opts benchOpts) (benchStats, error) {
	var (
		logger = loggerFromContext(ctx)
		rng    = tsp.NewRand(opts.seed)
		rect   = pointgen.Default(opts.side, opts.side)
		bar    = newBar(opts.runs, barOut)
		prog   = newProgress(logger)
		two    = tsp.DefaultOptions()
	)
	var stats benchStats
	for i := 0; i < opts.runs; i++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		ns, err := pointgen.Nodes(opts.count, rect, rng)
		if err != nil {
			return stats, err
		}
		dist, err := tsp.NewDistances(ns)
		if err != nil {
			return stats, err
		}

		start, err := tsp.RandomTour(ns, rng)
		if err != nil {
			return stats, err
		}
		random, err := tsp.TwoOpt(start, dist, two)
		if err != nil {
			return stats, err
		}

		if start, err = tsp.NearestNeighbourTour(ns, dist); err != nil {
			return stats, err
		}
		nn, err := tsp.TwoOpt(start, dist, two)
		if err != nil {
			return stats, err
		}

		stats.add(random, nn)
		logger.Debug("bench run", "run", i, "random", random.Cost, "nearest", nn.Cost)
		if err = bar.Add(1); err != nil {
			logger.Debug("progress bar", "err", err)
		}
	}
	if err := bar.Finish(); err != nil {
		logger.Debug("progress bar", "err", err)
	}
	prog.done(fmt.Sprintf("Benchmarked %d instances", stats.runs))

	return stats, nil
}

func printBench(w io.Writer, opts benchOpts, s benchStats) {
	printTitle(w, fmt.Sprintf("%d instances of %d nodes", s.runs, opts.count))
	printField(w, "start", "random / nearest")
	printField(w, "mean cost", formatCost(s.mean(s.randomCost))+" / "+formatCost(s.mean(s.nnCost)))
	printField(w, "mean moves", fmt.Sprintf("%.1f / %.1f", s.mean(float64(s.randomMoves)), s.mean(float64(s.nnMoves))))
	printField(w, "wins", fmt.Sprintf("%d / %d", s.randomWins, s.nnWins))
}
