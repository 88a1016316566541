package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", appName, version)
			if commit != "" {
				fmt.Fprintf(w, "commit: %s\n", commit)
			}
			if date != "" {
				fmt.Fprintf(w, "built: %s\n", date)
			}
			fmt.Fprintf(w, "go: %s\n", runtime.Version())
		},
	}
}
