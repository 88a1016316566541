package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourlab/internal/config"
	"github.com/katalvlaran/tourlab/pointgen"
	"github.com/katalvlaran/tourlab/render"
	"github.com/katalvlaran/tourlab/tsp"
)

// debugMatrixMax is the largest instance whose distance cache is dumped at
// debug level.
const debugMatrixMax = 10

// solveOpts holds the command-line overrides for the solve command.
type solveOpts struct {
	configPath string // TOML file, empty uses defaults
	count      int    // generated node count, drops configured points
	seed       int64
	init       string // "random" or "nearest"
	restarts   int
	output     string // PNG path, "-" disables rendering
	verify     bool   // re-check the final route is a Hamiltonian cycle
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Build a tour, improve it with 2-opt and draw it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.apply(cmd, &cfg)
			if err = cfg.Validate(); err != nil {
				return err
			}
			return runSolve(cmd.Context(), cmd.OutOrStdout(), cfg, opts.verify)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "number of random nodes to generate")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed for node generation and random starts")
	cmd.Flags().StringVar(&opts.init, "init", "", "initial tour: nearest (default), random")
	cmd.Flags().IntVar(&opts.restarts, "restarts", 0, "independent random starts")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", `PNG output path ("-" disables rendering)`)
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "verify the final route visits every node once")

	return cmd
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// apply copies explicitly set flags over cfg.
func (o *solveOpts) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Problem.Count = o.count
		cfg.Problem.Points = nil
	}
	if flags.Changed("seed") {
		cfg.Problem.Seed = o.seed
	}
	if flags.Changed("init") {
		cfg.Solver.Init = o.init
	}
	if flags.Changed("restarts") {
		cfg.Solver.Restarts = o.restarts
	}
	if flags.Changed("out") {
		cfg.Render.Output = o.output
		if o.output == "-" {
			cfg.Render.Output = ""
		}
	}
}

// buildNodes returns the configured points, or samples Count nodes in the
// problem rectangle.
func buildNodes(cfg config.Config) (*tsp.NodeSet, error) {
	if pts := cfg.Points(); pts != nil {
		return tsp.BuildNodes(pts)
	}
	return pointgen.Nodes(cfg.Problem.Count, cfg.Rect(), tsp.NewRand(cfg.Problem.Seed))
}

func runSolve(ctx context.Context, w io.Writer, cfg config.Config, verify bool) error {
	logger := loggerFromContext(ctx)

	ns, err := buildNodes(cfg)
	if err != nil {
		return err
	}
	opts, err := cfg.SolverOptions()
	if err != nil {
		return err
	}
	opts.OnImprove = moveLogger(logger)

	if err = ctx.Err(); err != nil {
		return err
	}
	prog := newProgress(logger)
	dist, err := tsp.NewDistances(ns)
	if err != nil {
		return err
	}
	if ns.Len() <= debugMatrixMax {
		logger.Debug("distance cache\n" + fmt.Sprint(dist.Matrix()))
	}
	if verify {
		if err = dist.Validate(); err != nil {
			printError(w, "Distance cache check failed")
			return err
		}
	}
	res, err := tsp.SolveWithDistances(ns, dist, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Solved %d nodes", ns.Len()))
	logger.Debug("final route", "route", tsp.DebugString(res.Route))

	if verify {
		if err = tsp.ValidateRoute(res.Route, ns.Len()); err != nil {
			printError(w, "Route check failed")
			return err
		}
	}

	lo, hi := ns.Bounds()
	printTitle(w, fmt.Sprintf("Tour over %d nodes", ns.Len()))
	printField(w, "extent", fmt.Sprintf("(%g, %g) to (%g, %g)", lo.X, lo.Y, hi.X, hi.Y))
	printField(w, "init", opts.Init)
	printField(w, "cost", formatCost(res.Cost)+styleDim.Render(" (start "+formatCost(res.Initial)+")"))
	printField(w, "moves", fmt.Sprintf("%d in %d sweeps", res.Moves, res.Sweeps))
	printField(w, "converged", res.Converged)
	printField(w, "route", formatRoute(res.Route))
	if verify {
		printSuccess(w, "Distance cache is symmetric with a zero diagonal")
		printSuccess(w, "Route visits every node exactly once")
	}

	if cfg.Render.Output == "" {
		return nil
	}
	if err = render.SavePNG(cfg.Render.Output, res.Route, res.Cost, cfg.RenderOptions()); err != nil {
		return err
	}
	printSuccess(w, "Wrote %s", cfg.Render.Output)

	return nil
}
