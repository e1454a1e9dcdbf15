package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kls",
		Short: "Kotlin source analysis and hover resolution",
		Long: `kls parses Kotlin projects into a typed declaration model and answers
hover queries against it: function signatures, property types, and
cross-file member resolution.

Run it as a language server over stdio, or use the batch commands to
index a project and query hovers from the command line.`,
		Version: version,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the language server over stdio",
		RunE:  RunServe,
	}
	serveCmd.Flags().Int("verbosity", 1, "Log verbosity (0=errors .. 2=debug)")
	serveCmd.Flags().String("log", "", "Log file path (default: stderr)")

	indexCmd := &cobra.Command{
		Use:   "index [path]",
		Short: "Parse a project and report per-file results",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunIndex,
	}
	indexCmd.Flags().Bool("json", false, "Print machine-readable index report")

	hoverCmd := &cobra.Command{
		Use:   "hover <file> <line> <column>",
		Short: "Resolve a hover at a zero-based position in a file",
		Args:  cobra.ExactArgs(3),
		RunE:  RunHover,
	}
	hoverCmd.Flags().String("root", "", "Project root to index (default: the file's directory)")

	rootCmd.AddCommand(serveCmd, indexCmd, hoverCmd)
	return rootCmd
}
