// Package batch builds multi-cloud and multi-month file sets: one
// validated dataset per provider, or one per provider per month when a
// trend is requested. Each dataset becomes a named file with a manifest and
// summary describing the set.
package batch

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"focusgen/core/catalog"
	"focusgen/core/engine"
	"focusgen/core/generator"
	"focusgen/core/profile"
	"focusgen/core/trend"
	"focusgen/internal/errors"
	"focusgen/internal/logging"
)

// Request describes a batch
type Request struct {
	Providers     []catalog.Provider
	RowCount      int
	Profile       profile.Profile
	Distribution  profile.Distribution
	BillingPeriod time.Time
	Currency      string
	Seed          uint64

	// Trend switches to one file per provider per month
	Trend *trend.Options
}

// File is one generated dataset of a batch
type File struct {
	Name     string
	Provider catalog.Provider
	Month    time.Time

	// Multiplier is the trend factor applied to the month, 1 without a trend
	Multiplier float64
	Dataset    *engine.Dataset
}

// Rows returns the file's row count
func (f File) Rows() int {
	return f.Dataset.Len()
}

// FileName returns <provider>-focus-YYYY-MM.csv
func FileName(p catalog.Provider, month time.Time) string {
	return fmt.Sprintf("%s-focus-%s.csv", p.Lower(), month.Format("2006-01"))
}

// Batch is a generated file set
type Batch struct {
	Files       []File
	Trend       *trend.Options
	Seed        uint64
	GeneratedAt time.Time
	Duration    time.Duration
}

// FileNames lists the files in generation order
func (b *Batch) FileNames() []string {
	names := make([]string, len(b.Files))
	for i, f := range b.Files {
		names[i] = f.Name
	}
	return names
}

// Manifest describes a trend batch
type Manifest struct {
	GeneratedAt   time.Time          `json:"generated_at"`
	FileCount     int                `json:"file_count"`
	TrendScenario string             `json:"trend_scenario"`
	MonthCount    int                `json:"month_count"`
	Parameters    map[string]float64 `json:"parameters"`
	Files         []string           `json:"files"`
	Description   string             `json:"description"`
}

// Manifest returns the batch manifest. ok is false for batches without a
// trend.
func (b *Batch) Manifest() (Manifest, bool) {
	if b.Trend == nil {
		return Manifest{}, false
	}
	params := make(map[string]float64, len(b.Trend.Parameters))
	for k, v := range b.Trend.Parameters {
		params[k] = v
	}
	return Manifest{
		GeneratedAt:   b.GeneratedAt,
		FileCount:     len(b.Files),
		TrendScenario: string(b.Trend.Scenario),
		MonthCount:    b.Trend.Months,
		Parameters:    params,
		Files:         b.FileNames(),
		Description:   fmt.Sprintf("Multi-month FOCUS data with %s trend pattern", b.Trend.Scenario),
	}, true
}

// Summary holds batch statistics
type Summary struct {
	FileCount      int      `json:"file_count"`
	TotalRows      int      `json:"total_rows"`
	Providers      []string `json:"providers"`
	Months         []string `json:"months"`
	AvgRowsPerFile int      `json:"avg_rows_per_file"`
}

// Summary computes the batch statistics
func (b *Batch) Summary() Summary {
	s := Summary{FileCount: len(b.Files), Providers: []string{}, Months: []string{}}
	providers := make(map[string]bool)
	months := make(map[string]bool)
	for _, f := range b.Files {
		s.TotalRows += f.Rows()
		providers[f.Provider.Lower()] = true
		months[f.Month.Format("2006-01")] = true
	}
	for p := range providers {
		s.Providers = append(s.Providers, p)
	}
	for m := range months {
		s.Months = append(s.Months, m)
	}
	sort.Strings(s.Providers)
	sort.Strings(s.Months)
	if s.FileCount > 0 {
		s.AvgRowsPerFile = (s.TotalRows + s.FileCount/2) / s.FileCount
	}
	return s
}

// providerSeedStream seeds the per-provider generators
const providerSeedStream = 3

// Builder generates batches. Providers are generated concurrently.
type Builder struct {
	engine  *engine.Engine
	trends  *trend.Generator
	workers int
	logger  *zap.Logger
}

// NewBuilder creates a builder over an engine. workers bounds the number of
// providers generated at once; 0 means one per provider.
func NewBuilder(e *engine.Engine, workers int) *Builder {
	return &Builder{
		engine:  e,
		trends:  trend.NewGenerator(e),
		workers: workers,
		logger:  logging.Named("batch"),
	}
}

// Build generates every file of the batch. Every dataset is validated.
func (b *Builder) Build(ctx context.Context, req Request) (*Batch, error) {
	start := time.Now()

	providers, err := uniqueProviders(req.Providers)
	if err != nil {
		return nil, err
	}

	seed := req.Seed
	for seed == 0 {
		seed = rand.Uint64()
	}
	seeds := rand.New(rand.NewPCG(seed, providerSeedStream))
	providerSeeds := make([]uint64, len(providers))
	for i := range providerSeeds {
		providerSeeds[i] = seeds.Uint64() | 1
	}

	month := generator.DefaultBillingPeriod
	if !req.BillingPeriod.IsZero() {
		month = generator.MonthStart(req.BillingPeriod)
	}

	b.logger.Info("building batch",
		zap.Int("providers", len(providers)),
		zap.Bool("trend", req.Trend != nil),
		zap.Uint64("seed", seed),
	)

	perProvider := make([][]File, len(providers))
	g, gctx := errgroup.WithContext(ctx)
	if b.workers > 0 {
		g.SetLimit(b.workers)
	}
	for i, p := range providers {
		g.Go(func() error {
			er := engine.Request{
				RowCount:      req.RowCount,
				Profile:       req.Profile,
				Distribution:  req.Distribution,
				Provider:      p,
				BillingPeriod: month,
				Currency:      req.Currency,
				Seed:          providerSeeds[i],
				Validate:      true,
			}
			files, err := b.buildProvider(gctx, er, req.Trend)
			if err != nil {
				return errors.Wrapf(errors.TypeGeneration, err, "provider %s", p)
			}
			perProvider[i] = files
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	batch := &Batch{Trend: req.Trend, Seed: seed, GeneratedAt: time.Now().UTC()}
	for _, files := range perProvider {
		batch.Files = append(batch.Files, files...)
	}
	batch.Duration = time.Since(start)

	summary := batch.Summary()
	b.logger.Info("batch built",
		zap.Int("files", summary.FileCount),
		zap.Int("rows", summary.TotalRows),
		zap.Duration("duration", batch.Duration),
	)
	return batch, nil
}

func (b *Builder) buildProvider(ctx context.Context, req engine.Request, opts *trend.Options) ([]File, error) {
	if opts == nil {
		ds, err := b.engine.Generate(ctx, req)
		if err != nil {
			return nil, err
		}
		return []File{{
			Name:       FileName(req.Provider, req.BillingPeriod),
			Provider:   req.Provider,
			Month:      req.BillingPeriod,
			Multiplier: 1,
			Dataset:    ds,
		}}, nil
	}

	res, err := b.trends.Generate(ctx, req, *opts)
	if err != nil {
		return nil, err
	}
	files := make([]File, len(res.Months))
	for i, m := range res.Months {
		files[i] = File{
			Name:       FileName(req.Provider, m.BillingPeriod),
			Provider:   req.Provider,
			Month:      m.BillingPeriod,
			Multiplier: m.Multiplier,
			Dataset:    m.Dataset,
		}
	}
	return files, nil
}

func uniqueProviders(in []catalog.Provider) ([]catalog.Provider, error) {
	if len(in) == 0 {
		return nil, errors.Input("at least one provider must be selected")
	}
	seen := make(map[catalog.Provider]bool, len(in))
	out := make([]catalog.Provider, 0, len(in))
	for _, p := range in {
		canonical, err := catalog.ParseProvider(string(p))
		if err != nil {
			return nil, err
		}
		if !seen[canonical] {
			seen[canonical] = true
			out = append(out, canonical)
		}
	}
	return out, nil
}
