package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ffplan/freedom-planner/internal/config"
	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/ffplan/freedom-planner/internal/policy"
)

func newExampleCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example case file to start from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			c := parser.CreateExampleCase()
			if err := parser.SaveToFile(c, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example case written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "example_case.yaml", "destination file (.yaml or .json)")

	return cmd
}

func scheduleYears(c *domain.Case) int {
	if len(c.PolicySchedule) > 0 {
		return len(c.PolicySchedule)
	}
	return len(policy.Combine(c.Policies))
}
