// Package engine provides the dataset generation engine.
// The CLI, trend and batch builders are thin wrappers around it.
package engine

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"focusgen/core/catalog"
	"focusgen/core/focus"
	"focusgen/core/generator"
	"focusgen/core/profile"
	"focusgen/core/table"
	"focusgen/core/validation"
	"focusgen/internal/errors"
	"focusgen/internal/logging"
)

// Random streams derived from the dataset seed. Rows use streams
// 0..RowCount-1; dataset-level draws use the top of the range.
const (
	totalCostStream = 1 << 63
	reweightStream  = 1<<63 + 1
)

// Engine generates FOCUS datasets
type Engine struct {
	assembler *RowAssembler
	validator *validation.Validator
	catalog   *catalog.Catalog
	logger    *zap.Logger

	// Configuration
	config EngineConfig
}

// EngineConfig configures the engine
type EngineConfig struct {
	// Workers is the number of rows generated concurrently. 0 or 1
	// generates sequentially.
	Workers int

	// Strict checks generator dependencies on every column of every row
	Strict bool

	// Validation configures the optional validation gate
	Validation validation.Config

	// Dispatcher defaults to generator.NewDefaultDispatcher()
	Dispatcher *generator.Dispatcher

	// Catalog defaults to catalog.Default()
	Catalog *catalog.Catalog

	// Columns defaults to generator.ColumnOrder
	Columns []string
}

// DefaultEngineConfig returns a sequential, non-strict configuration
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Workers:    1,
		Validation: validation.DefaultConfig(),
	}
}

// Phase is a stage of dataset generation
type Phase int

const (
	PhaseTotals      Phase = iota // dataset total cost drawn
	PhaseRows                     // rows assembled
	PhasePostProcess              // commitment columns re-nulled
	PhaseReweight                 // distribution pass applied
	PhaseValidate                 // validation gate
	PhaseComplete
)

// String returns the phase name
func (p Phase) String() string {
	names := []string{"totals", "rows", "post_process", "reweight", "validate", "complete"}
	if int(p) < len(names) {
		return names[p]
	}
	return "unknown"
}

// NewEngine creates an engine. The column plan is resolved here so a
// misconfigured dispatcher fails before any row is generated.
func NewEngine(config EngineConfig) (*Engine, error) {
	d := config.Dispatcher
	if d == nil {
		d = generator.NewDefaultDispatcher()
	}
	columns := config.Columns
	if len(columns) == 0 {
		columns = generator.ColumnOrder
	}
	cat := config.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	if config.Validation.Catalog == nil {
		config.Validation.Catalog = cat
	}

	assembler, err := NewRowAssembler(d, focus.Default(), columns, generator.Dependencies, config.Strict)
	if err != nil {
		return nil, err
	}

	return &Engine{
		assembler: assembler,
		validator: validation.NewValidator(config.Validation),
		catalog:   cat,
		logger:    logging.Named("engine"),
		config:    config,
	}, nil
}

// Columns returns the generated column order
func (e *Engine) Columns() []string {
	return e.assembler.Columns()
}

// Request is the input to dataset generation. Enum fields are expected to
// be parsed already; see profile.ParseProfile and catalog.ParseProvider.
type Request struct {
	RowCount     int
	Profile      profile.Profile
	Distribution profile.Distribution
	Provider     catalog.Provider

	// BillingPeriod selects the billing month. Zero is January 2024.
	BillingPeriod time.Time

	// Currency defaults to USD
	Currency string

	// Seed makes the dataset reproducible. Zero draws a fresh seed.
	Seed uint64

	// Validate runs the validation gate on the finished table
	Validate bool
}

// Dataset is a generated table plus its generation metadata
type Dataset struct {
	ID     uuid.UUID
	Table  *table.Table
	Params generator.Params

	// Seed reproduces the dataset when passed back in a Request
	Seed uint64

	// Report is set when the request asked for validation
	Report *validation.Report

	// Warnings from post-processing and validation
	Warnings []string

	GeneratedAt time.Time
	Duration    time.Duration
}

// TotalBilledCost sums BilledCost over the table
func (d *Dataset) TotalBilledCost() decimal.Decimal {
	return d.Table.SumDecimal(focus.BilledCost)
}

// Len returns the row count
func (d *Dataset) Len() int {
	return d.Table.Len()
}

// Generate builds a dataset
func (e *Engine) Generate(ctx context.Context, req Request) (*Dataset, error) {
	start := time.Now()

	req, err := e.checkRequest(req)
	if err != nil {
		return nil, err
	}

	seed := req.Seed
	for seed == 0 {
		seed = rand.Uint64()
	}

	logger := e.logger.With(
		zap.Int("rows", req.RowCount),
		zap.String("profile", string(req.Profile)),
		zap.String("distribution", string(req.Distribution)),
		zap.String("provider", req.Provider.String()),
		zap.Uint64("seed", seed),
	)
	logger.Info("generating dataset")

	params := generator.Params{
		RowCount:      req.RowCount,
		Profile:       req.Profile,
		Distribution:  req.Distribution,
		Provider:      req.Provider,
		TotalCost:     profile.TotalCost(req.Profile, req.Distribution, rand.New(rand.NewPCG(seed, totalCostStream))),
		BillingPeriod: req.BillingPeriod,
		Currency:      req.Currency,
		Catalog:       e.catalog,
	}
	if !params.BillingPeriod.IsZero() {
		params.BillingPeriod = generator.MonthStart(params.BillingPeriod)
	}
	logger.Debug("phase complete", zap.Stringer("phase", PhaseTotals), zap.String("total_cost", params.TotalCost.String()))

	rows, err := e.assembleRows(ctx, &params, seed)
	if err != nil {
		return nil, err
	}
	tbl := table.New(e.assembler.Columns())
	tbl.Rows = rows
	logger.Debug("phase complete", zap.Stringer("phase", PhaseRows))

	dataset := &Dataset{
		ID:          uuid.New(),
		Table:       tbl,
		Params:      params,
		Seed:        seed,
		GeneratedAt: time.Now().UTC(),
	}

	cleared := nullCommitmentDependents(tbl)
	logger.Debug("phase complete", zap.Stringer("phase", PhasePostProcess), zap.Int("cleared", cleared))

	stats := reweight(tbl, req.Distribution, rand.New(rand.NewPCG(seed, reweightStream)))
	roundCosts(tbl)
	logger.Debug("phase complete", zap.Stringer("phase", PhaseReweight),
		zap.Int("boosted", stats.Boosted), zap.Int("filled", stats.Filled))

	if req.Validate {
		report, err := e.validator.Validate(tbl)
		if report != nil {
			dataset.Report = report
			for _, w := range report.Warnings {
				dataset.Warnings = append(dataset.Warnings, w.String())
				logger.Warn(w.Message, zap.String("rule", w.Rule), zap.String("column", w.Column))
			}
		}
		if err != nil {
			logger.Error("generated dataset failed validation", zap.Error(err))
			return nil, err
		}
		logger.Debug("phase complete", zap.Stringer("phase", PhaseValidate))
	}

	dataset.Duration = time.Since(start)
	logger.Info("dataset generated",
		zap.String("id", dataset.ID.String()),
		zap.String("billed_cost", dataset.TotalBilledCost().String()),
		zap.Duration("duration", dataset.Duration),
	)
	return dataset, nil
}

// Plan returns the generator resolved for each column
func (e *Engine) Plan() []PlanEntry {
	return e.assembler.Plan()
}

// Validate runs the engine's validator over a table built elsewhere, such
// as a dataset rescaled after generation
func (e *Engine) Validate(tbl *table.Table) (*validation.Report, error) {
	return e.validator.Validate(tbl)
}

// checkRequest rejects bad requests and returns the request with its enum
// fields in canonical form
func (e *Engine) checkRequest(req Request) (Request, error) {
	if req.RowCount <= 0 {
		return req, errors.Newf(errors.TypeInput, "row count must be positive, got %d", req.RowCount)
	}
	p, err := profile.ParseProfile(string(req.Profile))
	if err != nil {
		return req, err
	}
	d, err := profile.ParseDistribution(string(req.Distribution))
	if err != nil {
		return req, err
	}
	if _, err := e.catalog.Lookup(req.Provider); err != nil {
		return req, errors.Wrapf(errors.TypeInput, err, "unsupported provider %q", req.Provider)
	}
	req.Profile, req.Distribution = p, d
	return req, nil
}

// assembleRows builds every row. Each row draws from its own stream of the
// seed so the result does not depend on the worker count.
func (e *Engine) assembleRows(ctx context.Context, params *generator.Params, seed uint64) ([]*table.Row, error) {
	rows := make([]*table.Row, params.RowCount)

	build := func(i int) error {
		row, err := e.assembler.AssembleRow(i, params, generator.NewRowRand(seed, i))
		if err != nil {
			return err
		}
		rows[i] = row
		return nil
	}

	if e.config.Workers <= 1 {
		for i := range rows {
			if err := ctx.Err(); err != nil {
				return nil, errors.Generation(fmt.Sprintf("cancelled at row %d", i), err)
			}
			if err := build(i); err != nil {
				return nil, err
			}
		}
		return rows, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.Workers)
	for i := range rows {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return build(i)
		})
	}
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, errors.Generation("generation cancelled", ctx.Err())
		}
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Generation("generation cancelled", err)
	}
	return rows, nil
}

var (
	defaultEngine     *Engine
	defaultEngineErr  error
	defaultEngineOnce sync.Once
)

// Default returns the shared engine built from DefaultEngineConfig
func Default() (*Engine, error) {
	defaultEngineOnce.Do(func() {
		defaultEngine, defaultEngineErr = NewEngine(DefaultEngineConfig())
	})
	return defaultEngine, defaultEngineErr
}

// Generate builds a dataset with the default engine
func Generate(ctx context.Context, req Request) (*Dataset, error) {
	e, err := Default()
	if err != nil {
		return nil, err
	}
	return e.Generate(ctx, req)
}
