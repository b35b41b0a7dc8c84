package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ffplan/freedom-planner/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ffplan",
		Short:   "Financial freedom plan simulator",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newAmortizeCommand())
	rootCmd.AddCommand(newExampleCommand())

	return rootCmd
}
