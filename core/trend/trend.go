// Package trend generates multi-month datasets whose costs follow a
// scenario: steady growth, a seasonal peak, a step change or a one-off
// anomaly. Each month is a full dataset for its own billing period with
// the cost columns scaled by that month's multiplier.
package trend

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"focusgen/core/engine"
	"focusgen/core/focus"
	"focusgen/core/generator"
	"focusgen/internal/errors"
	"focusgen/internal/logging"
)

// Scenario names a cost trend
type Scenario string

const (
	Linear     Scenario = "linear"
	Seasonal   Scenario = "seasonal"
	StepChange Scenario = "stepChange"
	Anomaly    Scenario = "anomaly"
)

// Scenarios returns every scenario
func Scenarios() []Scenario {
	return []Scenario{Linear, Seasonal, StepChange, Anomaly}
}

// ParseScenario matches a scenario name case-insensitively. An unknown name
// returns Linear and false.
func ParseScenario(s string) (Scenario, bool) {
	for _, sc := range Scenarios() {
		if strings.EqualFold(s, string(sc)) {
			return sc, true
		}
	}
	return Linear, false
}

// Month count bounds
const (
	MinMonths = 2
	MaxMonths = 12
)

// Parameter keys and their defaults
const (
	ParamGrowthRate        = "growthRate"        // percent per month
	ParamBaselineVariation = "baselineVariation" // percent
	ParamPeakMultiplier    = "peakMultiplier"
	ParamStepMonth         = "stepMonth" // 1-based
	ParamStepMultiplier    = "stepMultiplier"
	ParamAnomalyMonth      = "anomalyMonth" // 1-based
	ParamAnomalyMultiplier = "anomalyMultiplier"
)

var defaults = map[string]float64{
	ParamGrowthRate:        10,
	ParamBaselineVariation: 10,
	ParamPeakMultiplier:    2.5,
	ParamStepMonth:         4,
	ParamStepMultiplier:    2.0,
	ParamAnomalyMonth:      6,
	ParamAnomalyMultiplier: 10,
}

// Parameters tune a scenario. Missing keys take their defaults.
type Parameters map[string]float64

// Get returns the named parameter or its default
func (p Parameters) Get(key string) float64 {
	if v, ok := p[key]; ok {
		return v
	}
	return defaults[key]
}

// minMultiplier floors every monthly multiplier
const minMultiplier = 0.1

// monthlyGrowth is the background growth of the non-linear scenarios
const monthlyGrowth = 0.02

// Multipliers returns one cost multiplier per month
func Multipliers(s Scenario, months int, params Parameters, rng *rand.Rand) []float64 {
	out := make([]float64, months)
	noise := func(width float64) float64 {
		return (rng.Float64()*2 - 1) * width
	}

	switch s {
	case Seasonal:
		variation := params.Get(ParamBaselineVariation) / 100
		peak := params.Get(ParamPeakMultiplier)
		peaks := map[int]bool{months - 2: true, months - 1: true}
		if months >= 11 {
			peaks = map[int]bool{10: true, 11: true}
		}
		for m := range out {
			base := 1 + monthlyGrowth*float64(m)
			if peaks[m] {
				base = peak
			}
			out[m] = base + noise(variation)
		}

	case StepChange:
		step := int(params.Get(ParamStepMonth)) - 1
		factor := params.Get(ParamStepMultiplier)
		for m := range out {
			base := 1 + monthlyGrowth*float64(m)
			if m >= step {
				base = factor + monthlyGrowth*float64(m-step)
			}
			out[m] = base + noise(0.05)
		}

	case Anomaly:
		spike := int(params.Get(ParamAnomalyMonth)) - 1
		factor := params.Get(ParamAnomalyMultiplier)
		for m := range out {
			if m == spike {
				out[m] = factor
				continue
			}
			out[m] = 1 + monthlyGrowth*float64(m) + noise(0.05)
		}

	default:
		rate := params.Get(ParamGrowthRate) / 100
		for m := range out {
			out[m] = 1 + rate*float64(m) + noise(0.05)
		}
	}

	for m, v := range out {
		out[m] = max(minMultiplier, v)
	}
	return out
}

// scaledColumns are multiplied by the monthly factor
var scaledColumns = []string{focus.BilledCost, focus.EffectiveCost, focus.ListCost}

// Scale multiplies the cost columns of every row by factor and rounds them
// to cents
func Scale(ds *engine.Dataset, factor float64) {
	f := decimal.NewFromFloat(factor)
	for _, col := range scaledColumns {
		if !ds.Table.HasColumn(col) {
			continue
		}
		for _, r := range ds.Table.Rows {
			if v, ok := r.Decimal(col); ok {
				r.Replace(col, v.Mul(f).Round(2))
			}
		}
	}
}

// Options selects the trend
type Options struct {
	Scenario   Scenario
	Months     int
	Parameters Parameters
}

// Month is one generated month of a trend
type Month struct {
	// Index is 0-based
	Index         int
	BillingPeriod time.Time
	Multiplier    float64
	Dataset       *engine.Dataset
}

// Label returns the month as YYYY-MM
func (m Month) Label() string {
	return m.BillingPeriod.Format("2006-01")
}

// Result is a generated trend
type Result struct {
	Scenario    Scenario
	Parameters  Parameters
	Seed        uint64
	Months      []Month
	GeneratedAt time.Time
	Duration    time.Duration
}

// TotalBilledCost sums BilledCost across every month
func (r *Result) TotalBilledCost() decimal.Decimal {
	total := decimal.Zero
	for _, m := range r.Months {
		total = total.Add(m.Dataset.TotalBilledCost())
	}
	return total
}

// Random streams of the trend seed
const (
	multiplierStream = 1
	monthSeedStream  = 2
)

// Generator builds trends on top of an engine
type Generator struct {
	engine *engine.Engine
	logger *zap.Logger
}

// NewGenerator creates a trend generator
func NewGenerator(e *engine.Engine) *Generator {
	return &Generator{
		engine: e,
		logger: logging.Named("trend"),
	}
}

// Generate builds opts.Months datasets starting at req.BillingPeriod. The
// request seed reproduces every month; req.Validate validates each month
// after scaling.
func (g *Generator) Generate(ctx context.Context, req engine.Request, opts Options) (*Result, error) {
	start := time.Now()

	if opts.Months < MinMonths || opts.Months > MaxMonths {
		return nil, errors.Newf(errors.TypeInput, "month count must be between %d and %d, got %d",
			MinMonths, MaxMonths, opts.Months)
	}
	scenario, ok := ParseScenario(string(opts.Scenario))
	if !ok {
		g.logger.Warn("unknown trend scenario, using linear", zap.String("scenario", string(opts.Scenario)))
	}

	seed := req.Seed
	for seed == 0 {
		seed = rand.Uint64()
	}
	multipliers := Multipliers(scenario, opts.Months, opts.Parameters, rand.New(rand.NewPCG(seed, multiplierStream)))
	seeds := rand.New(rand.NewPCG(seed, monthSeedStream))

	first := generator.DefaultBillingPeriod
	if !req.BillingPeriod.IsZero() {
		first = generator.MonthStart(req.BillingPeriod)
	}

	g.logger.Info("generating trend",
		zap.String("scenario", string(scenario)),
		zap.Int("months", opts.Months),
		zap.String("provider", req.Provider.String()),
		zap.Uint64("seed", seed),
	)

	result := &Result{
		Scenario:    scenario,
		Parameters:  opts.Parameters,
		Seed:        seed,
		Months:      make([]Month, 0, opts.Months),
		GeneratedAt: time.Now().UTC(),
	}
	for i, factor := range multipliers {
		monthReq := req
		monthReq.BillingPeriod = first.AddDate(0, i, 0)
		monthReq.Seed = nonZero(seeds.Uint64())
		monthReq.Validate = false

		ds, err := g.engine.Generate(ctx, monthReq)
		if err != nil {
			return nil, errors.Wrapf(errors.TypeGeneration, err, "trend month %d", i+1)
		}
		Scale(ds, factor)

		if req.Validate {
			report, err := g.engine.Validate(ds.Table)
			ds.Report = report
			if err != nil {
				return nil, err
			}
		}

		m := Month{Index: i, BillingPeriod: monthReq.BillingPeriod, Multiplier: factor, Dataset: ds}
		g.logger.Debug("trend month generated",
			zap.String("month", m.Label()),
			zap.String("multiplier", fmt.Sprintf("%.2f", factor)),
		)
		result.Months = append(result.Months, m)
	}

	result.Duration = time.Since(start)
	return result, nil
}

func nonZero(v uint64) uint64 {
	if v == 0 {
		return 1
	}
	return v
}
