package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ffplan/freedom-planner/internal/config"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <case-file>",
		Short: "Check a case file without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Case %q is valid (%d policy years)\n", c.Name, scheduleYears(c))
			return nil
		},
	}
}
