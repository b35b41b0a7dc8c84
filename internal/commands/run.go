package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ffplan/freedom-planner/internal/calculation"
	"github.com/ffplan/freedom-planner/internal/config"
	"github.com/ffplan/freedom-planner/internal/domain"
	"github.com/ffplan/freedom-planner/internal/output"
)

type runOptions struct {
	casePath  string
	format    string
	output    string
	outputDir string
	asOf      string
	debug     bool
}

func newRunCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a case and print the year-by-year plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.casePath, "case", "c", "", "case file (YAML, or JSON by extension)")
	_ = cmd.MarkFlagRequired("case")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "console",
		"report format: "+strings.Join(output.AvailableFormatterNames(), ", ")+" (or all with --output-dir)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the report to this file instead of stdout")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "write timestamped report files into this directory")
	cmd.Flags().StringVar(&opts.asOf, "as-of", "", "plan as of this date (YYYY-MM-DD), overriding the case")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log every engine step to stderr")

	return cmd
}

func runPlan(cmd *cobra.Command, opts runOptions) error {
	c, err := config.NewInputParser().LoadFromFile(opts.casePath)
	if err != nil {
		return err
	}

	if opts.asOf != "" {
		var d domain.Date
		if err := d.UnmarshalText([]byte(opts.asOf)); err != nil {
			return fmt.Errorf("invalid --as-of: %w", err)
		}
		if c.Assumptions == nil {
			c.Assumptions = &domain.AssumptionOverrides{}
		}
		c.Assumptions.AsOf = &d
	}

	level := calculation.LevelWarn
	if opts.debug {
		level = calculation.LevelDebug
	}
	engine := calculation.NewPlanEngine()
	engine.Debug = opts.debug
	engine.SetLogger(calculation.NewWriterLogger(cmd.ErrOrStderr(), level))

	plan, err := engine.RunCase(c)
	if err != nil {
		return err
	}
	if plan.Exhausted {
		engine.Logger.Warnf("case %q still carries debt after %d policy years", c.Name, len(plan.Years)-1)
	}

	if opts.outputDir != "" {
		if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		paths, err := output.GenerateReport(plan, opts.format, opts.outputDir)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", p)
		}
		return nil
	}

	var w io.Writer = cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return output.WriteReport(w, plan, opts.format)
}
