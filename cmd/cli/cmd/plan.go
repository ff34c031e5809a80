// Package cmd - plan command
package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"focusgen/core/batch"
	"focusgen/core/plan"
	"focusgen/core/ui"
	"focusgen/internal/config"
	"focusgen/internal/errors"
	"focusgen/internal/logging"
)

var (
	planDryRun    bool
	planOutputDir string
	planZip       bool
	planFormat    string
)

// planCmd runs an HCL generation plan
var planCmd = &cobra.Command{
	Use:   "plan <file.hcl>",
	Short: "Run an HCL generation plan",
	Long: `Run every generation block of an HCL plan file. Each block writes its
files into a subdirectory of the output directory named after the block.

Example plan:
  generation "holiday" {
    providers      = ["aws", "gcp"]
    profile        = "Enterprise"
    distribution   = "Media-Intensive"
    rows           = 500
    billing_period = "2024-07"

    trend {
      scenario   = "seasonal"
      months     = 6
      parameters = { peakMultiplier = 3 }
    }
  }`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().BoolVar(&planDryRun, "dry-run", false, "parse and print the plan without generating")
	planCmd.Flags().StringVarP(&planOutputDir, "output", "o", "", "output directory")
	planCmd.Flags().BoolVar(&planZip, "zip", false, "bundle each generation into a ZIP archive")
	planCmd.Flags().StringVarP(&planFormat, "format", "f", "", "output format: csv, json")
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p, err := plan.NewParser().ParseFile(args[0])
	if err != nil {
		return err
	}

	cfg := config.Get()
	u := newUI(cmd)
	for _, g := range p.Generations {
		if g.Rows > cfg.Generation.MaxRows {
			return errors.Newf(errors.TypeInput, "generation %q: rows must be between 1 and %d, got %d",
				g.Name, cfg.Generation.MaxRows, g.Rows)
		}
	}

	if planDryRun {
		for _, g := range p.Generations {
			printGeneration(u, g)
		}
		return nil
	}

	e, err := newEngine(cfg, 0, false)
	if err != nil {
		return err
	}
	builder := batch.NewBuilder(e, 0)

	backend := cfg.Output.Backend
	if planZip {
		backend = "zip"
	}
	base := firstString(planOutputDir, cfg.Output.Directory)

	for _, g := range p.Generations {
		logging.Info("Running generation " + g.Name)
		b, err := builder.Build(ctx, g.BatchRequest())
		if err != nil {
			return errors.Wrapf(errors.TypeGeneration, err, "generation %q", g.Name)
		}
		res, location, err := exportBatch(ctx, b, firstString(planFormat, cfg.Output.Format), backend, filepath.Join(base, g.Name))
		if err != nil {
			return err
		}
		u.Header(g.Name)
		printBatch(u, b, res, location)
	}
	return nil
}

func printGeneration(u *ui.Writer, g plan.Generation) {
	u.Println("generation %q (line %d)", g.Name, g.Line)
	u.Println("  providers:     %v", g.Providers)
	u.Println("  profile:       %s", g.Profile)
	u.Println("  distribution:  %s", g.Distribution)
	u.Println("  rows:          %d", g.Rows)
	if !g.BillingPeriod.IsZero() {
		u.Println("  billing month: %s", g.BillingPeriod.Format("2006-01"))
	}
	if g.Trend != nil {
		u.Println("  trend:         %s over %d months", g.Trend.Scenario, g.Trend.Months)
	}
}
