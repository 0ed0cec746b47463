// Package cli assembles the bipart command tree: check analyzes matrix
// files, gen produces them. Commands are built with cobra, own their
// parsed options in small opts structs, and separate Validate from
// Execute so tests drive them without a terminal.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bipart/internal/version"
)

// BuildRootCmd builds the root command with every subcommand attached.
func BuildRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bipart",
		Short: "Decide whether graphs are bipartite",
		Long: `bipart reads undirected graphs as adjacency matrices and answers with a
proof: the two vertex classes when a graph is bipartite, or a witness
cycle when it is not.`,
		Example: `  bipart check graph.txt
  bipart gen --kind cycle --order 9 | bipart check -`,
		// The analysis either completes or fails with a real error; echoing
		// usage on top of it would bury the message.
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}
	cmd.SetVersionTemplate("bipart version: {{.Version}}\n")

	cmd.AddCommand(BuildCheckCmd())
	cmd.AddCommand(BuildGenCmd())

	disableColorBasedOnEnvVar()

	return cmd
}
