// Package cmd - generate command
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"focusgen/adapters/csv"
	"focusgen/adapters/storage"
	"focusgen/core/batch"
	"focusgen/core/catalog"
	"focusgen/core/engine"
	"focusgen/core/output"
	"focusgen/core/profile"
	"focusgen/core/trend"
	"focusgen/core/ui"
	"focusgen/core/validation"
	"focusgen/internal/config"
	"focusgen/internal/errors"
	"focusgen/internal/logging"
)

var (
	genProviders     []string
	genProfile       string
	genDistribution  string
	genRows          int
	genSeed          uint64
	genCurrency      string
	genBillingPeriod string
	genTrend         string
	genMonths        int
	genParams        map[string]string
	genFormat        string
	genOutputDir     string
	genZip           bool
	genWorkers       int
	genStrict        bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate FOCUS datasets",
	Long: `Generate one validated FOCUS dataset per provider, or one per provider
per month when a trend scenario is given.

Unset flags fall back to the configuration file.

Examples:
  focusgen generate
  focusgen generate -p aws -p azure --profile Enterprise --distribution ML-Focused -n 800
  focusgen generate -p gcp --trend stepChange --months 6 --param stepMonth=3 --zip
  focusgen generate --seed 42 --billing-period 2025-03 --currency EUR -f json`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringSliceVarP(&genProviders, "provider", "p", nil, "cloud provider: aws, azure, gcp (repeatable)")
	f.StringVar(&genProfile, "profile", "", "spend profile: Greenfield, Large Business, Enterprise")
	f.StringVar(&genDistribution, "distribution", "", "workload distribution: Evenly Distributed, ML-Focused, Data-Intensive, Media-Intensive")
	f.IntVarP(&genRows, "rows", "n", 0, "rows per dataset")
	f.Uint64Var(&genSeed, "seed", 0, "random seed; 0 draws a fresh one")
	f.StringVar(&genCurrency, "currency", "", "billing currency code")
	f.StringVar(&genBillingPeriod, "billing-period", "", "first billing month, YYYY-MM")
	f.StringVar(&genTrend, "trend", "", "trend scenario: linear, seasonal, stepChange, anomaly")
	f.IntVar(&genMonths, "months", 0, "months in the trend")
	f.StringToStringVar(&genParams, "param", nil, "trend parameter key=value (repeatable)")
	f.StringVarP(&genFormat, "format", "f", "", "output format: csv, json")
	f.StringVarP(&genOutputDir, "output", "o", "", "output directory")
	f.BoolVar(&genZip, "zip", false, "bundle the files into a ZIP archive")
	f.IntVar(&genWorkers, "workers", 0, "rows generated concurrently per dataset")
	f.BoolVar(&genStrict, "strict", false, "check generator dependencies on every row")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config.Get()
	req, err := generateRequest(cfg)
	if err != nil {
		return err
	}

	e, err := newEngine(cfg, genWorkers, genStrict)
	if err != nil {
		return err
	}

	logging.Info("Starting generation")
	b, err := batch.NewBuilder(e, 0).Build(ctx, req)
	if err != nil {
		return err
	}

	backend := cfg.Output.Backend
	if genZip {
		backend = string(storage.BackendZip)
	}
	dir := genOutputDir
	if dir == "" {
		dir = cfg.Output.Directory
	}
	format := genFormat
	if format == "" {
		format = cfg.Output.Format
	}

	res, location, err := exportBatch(ctx, b, format, backend, dir)
	if err != nil {
		return err
	}
	printBatch(newUI(cmd), b, res, location)
	return nil
}

// generateRequest merges flags over the configuration
func generateRequest(cfg *config.Config) (batch.Request, error) {
	g := cfg.Generation
	req := batch.Request{
		RowCount: firstInt(genRows, g.Rows),
		Seed:     g.Seed,
		Currency: strings.ToUpper(firstString(genCurrency, g.Currency)),
	}
	if genSeed != 0 {
		req.Seed = genSeed
	}

	if req.RowCount < 1 || req.RowCount > g.MaxRows {
		return req, errors.Newf(errors.TypeInput, "row count must be between 1 and %d, got %d", g.MaxRows, req.RowCount)
	}

	var err error
	if req.Profile, err = profile.ParseProfile(firstString(genProfile, g.Profile)); err != nil {
		return req, err
	}
	if req.Distribution, err = profile.ParseDistribution(firstString(genDistribution, g.Distribution)); err != nil {
		return req, err
	}

	names := genProviders
	if len(names) == 0 {
		names = g.Providers
	}
	for _, n := range names {
		p, err := catalog.ParseProvider(n)
		if err != nil {
			return req, err
		}
		req.Providers = append(req.Providers, p)
	}

	if period := firstString(genBillingPeriod, g.BillingPeriod); period != "" {
		if req.BillingPeriod, err = time.Parse("2006-01", period); err != nil {
			return req, errors.Wrapf(errors.TypeInput, err, "billing period must be YYYY-MM, got %q", period)
		}
	}

	if genTrend != "" || genMonths != 0 || len(genParams) > 0 {
		opts := cfg.Trend.Options()
		if genTrend != "" {
			scenario, ok := trend.ParseScenario(genTrend)
			if !ok {
				return req, errors.Newf(errors.TypeInput, "unknown trend scenario %q", genTrend)
			}
			opts.Scenario = scenario
		}
		if genMonths != 0 {
			opts.Months = genMonths
		}
		if len(genParams) > 0 {
			params := make(trend.Parameters, len(opts.Parameters)+len(genParams))
			for k, v := range opts.Parameters {
				params[k] = v
			}
			for k, v := range genParams {
				f, err := strconv.ParseFloat(v, 64)
				if err != nil {
					return req, errors.Wrapf(errors.TypeInput, err, "trend parameter %s", k)
				}
				params[k] = f
			}
			opts.Parameters = params
		}
		req.Trend = opts
	}
	return req, nil
}

// newEngine builds an engine from the configuration. workers 0 keeps the
// configured value.
func newEngine(cfg *config.Config, workers int, strict bool) (*engine.Engine, error) {
	tier, err := validation.ParseTier(cfg.Validation.Tier)
	if err != nil {
		return nil, err
	}
	mode, err := validation.ParseMode(cfg.Validation.Mode)
	if err != nil {
		return nil, err
	}
	return engine.NewEngine(engine.EngineConfig{
		Workers:    firstInt(workers, cfg.Generation.Workers),
		Strict:     strict || cfg.Generation.Strict,
		Validation: validation.Config{Tier: tier, Mode: mode},
	})
}

// exportBatch writes the batch and returns where it went
func exportBatch(ctx context.Context, b *batch.Batch, format, backend, dir string) (*output.ExportResult, string, error) {
	f, err := output.ParseFormat(format)
	if err != nil {
		return nil, "", err
	}
	formatter, err := output.NewRegistry(csv.NewFormatter(), output.NewJSONFormatter()).Get(f)
	if err != nil {
		return nil, "", err
	}

	be, err := storage.ParseBackend(backend)
	if err != nil {
		return nil, "", err
	}
	store, err := storage.StoreFactory(be, map[string]string{"path": dir})
	if err != nil {
		return nil, "", err
	}

	res, err := output.Export(ctx, store, formatter, b)
	if cerr := store.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, "", err
	}
	return res, store.Location(), nil
}

func printBatch(u *ui.Writer, b *batch.Batch, res *output.ExportResult, location string) {
	summary := u.NewGenerationSummary()
	for _, f := range b.Files {
		label := f.Name
		if b.Trend != nil {
			label = fmt.Sprintf("%s (x%.2f)", f.Name, f.Multiplier)
		}
		summary.Lines = append(summary.Lines, ui.SummaryLine{
			Label: label,
			Rows:  f.Rows(),
			Cost:  f.Dataset.TotalBilledCost().StringFixed(2),
		})
	}
	s := res.Summary
	summary.Files = s.FileCount
	summary.TotalRows = s.TotalRows
	summary.AvgRowsPerFile = s.AvgRowsPerFile
	summary.Providers = s.Providers
	summary.Seed = b.Seed
	summary.Location = location
	summary.Bytes = res.Bytes
	summary.Duration = b.Duration
	summary.Render()
}

func firstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstInt(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
