// Package cli implements the tourplot command-line interface.
//
// # Commands
//
//   - solve: build a tour for a configured or generated node set, improve it
//     with 2-opt and draw it to a PNG
//   - bench: compare random and nearest-neighbour starts over many instances
//   - version: print build information
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports every applied 2-opt move. Loggers are passed through
// context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "tourplot"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev" // semantic version, set via ldflags
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information shown by the version command.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "tourplot solves planar TSP instances with 2-opt",
		Long:         `tourplot builds a closed tour over points in the plane, improves it with 2-opt local search and draws the result.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.versionCommand())

	return root
}
