package trend

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusgen/core/catalog"
	"focusgen/core/engine"
	"focusgen/core/focus"
	"focusgen/core/profile"
	"focusgen/internal/errors"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(11, 12))
}

func TestMultipliers(t *testing.T) {
	tests := []struct {
		name     string
		scenario Scenario
		months   int
		params   Parameters
		check    func(t *testing.T, m []float64)
	}{
		{
			name:     "linear default growth",
			scenario: Linear,
			months:   6,
			check: func(t *testing.T, m []float64) {
				for i, v := range m {
					want := 1 + 0.1*float64(i)
					assert.InDelta(t, want, v, 0.05+1e-9, "month %d", i)
				}
			},
		},
		{
			name:     "seasonal peaks in the last two months",
			scenario: Seasonal,
			months:   6,
			params:   Parameters{ParamBaselineVariation: 0},
			check: func(t *testing.T, m []float64) {
				assert.InDelta(t, 2.5, m[4], 1e-9)
				assert.InDelta(t, 2.5, m[5], 1e-9)
				assert.InDelta(t, 1.06, m[3], 1e-9)
			},
		},
		{
			name:     "seasonal peaks in november and december",
			scenario: Seasonal,
			months:   12,
			params:   Parameters{ParamBaselineVariation: 0, ParamPeakMultiplier: 3},
			check: func(t *testing.T, m []float64) {
				assert.InDelta(t, 3, m[10], 1e-9)
				assert.InDelta(t, 3, m[11], 1e-9)
				assert.InDelta(t, 1.18, m[9], 1e-9)
			},
		},
		{
			name:     "step change",
			scenario: StepChange,
			months:   6,
			params:   Parameters{ParamStepMonth: 3, ParamStepMultiplier: 4},
			check: func(t *testing.T, m []float64) {
				assert.InDelta(t, 1.02, m[1], 0.05+1e-9)
				assert.InDelta(t, 4, m[2], 0.05+1e-9)
				assert.InDelta(t, 4.06, m[5], 0.05+1e-9)
			},
		},
		{
			name:     "anomaly is exact",
			scenario: Anomaly,
			months:   8,
			check: func(t *testing.T, m []float64) {
				assert.Equal(t, 10.0, m[5])
				for i, v := range m {
					if i != 5 {
						assert.Less(t, v, 1.2, "month %d", i)
					}
				}
			},
		},
		{
			name:     "floored",
			scenario: Anomaly,
			months:   3,
			params:   Parameters{ParamAnomalyMonth: 2, ParamAnomalyMultiplier: 0},
			check: func(t *testing.T, m []float64) {
				assert.Equal(t, minMultiplier, m[1])
			},
		},
		{
			name:     "negative growth floored",
			scenario: Linear,
			months:   12,
			params:   Parameters{ParamGrowthRate: -50},
			check: func(t *testing.T, m []float64) {
				for _, v := range m {
					assert.GreaterOrEqual(t, v, minMultiplier)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Multipliers(tt.scenario, tt.months, tt.params, testRand())
			require.Len(t, m, tt.months)
			tt.check(t, m)
		})
	}
}

func TestParseScenario(t *testing.T) {
	s, ok := ParseScenario("STEPCHANGE")
	assert.True(t, ok)
	assert.Equal(t, StepChange, s)

	s, ok = ParseScenario("exponential")
	assert.False(t, ok)
	assert.Equal(t, Linear, s)
}

func baseRequest() engine.Request {
	return engine.Request{
		RowCount:      8,
		Profile:       profile.Greenfield,
		Distribution:  profile.EvenlyDistributed,
		Provider:      catalog.GCP,
		BillingPeriod: time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC),
		Seed:          99,
		Validate:      true,
	}
}

func TestGenerateTrend(t *testing.T) {
	e, err := engine.NewEngine(engine.DefaultEngineConfig())
	require.NoError(t, err)
	g := NewGenerator(e)

	res, err := g.Generate(context.Background(), baseRequest(), Options{Scenario: Anomaly, Months: 4, Parameters: Parameters{ParamAnomalyMonth: 3}})
	require.NoError(t, err)
	require.Len(t, res.Months, 4)

	labels := []string{"2024-11", "2024-12", "2025-01", "2025-02"}
	for i, m := range res.Months {
		assert.Equal(t, labels[i], m.Label())
		assert.Equal(t, i, m.Index)
		require.NotNil(t, m.Dataset.Report)
		assert.True(t, m.Dataset.Report.Valid())
		for _, r := range m.Dataset.Table.Rows {
			start := r.String(focus.BillingPeriodStart)
			assert.Equal(t, m.BillingPeriod.Format(time.RFC3339), start)
			cost, ok := r.Decimal(focus.BilledCost)
			require.True(t, ok)
			assert.True(t, cost.Equal(cost.Round(2)), cost.String())
		}
	}
	assert.Equal(t, 10.0, res.Months[2].Multiplier)
	assert.True(t, res.TotalBilledCost().GreaterThan(decimal.Zero))
}

func TestTrendIsReproducible(t *testing.T) {
	e, err := engine.NewEngine(engine.DefaultEngineConfig())
	require.NoError(t, err)
	g := NewGenerator(e)
	opts := Options{Scenario: Seasonal, Months: 3}

	a, err := g.Generate(context.Background(), baseRequest(), opts)
	require.NoError(t, err)
	b, err := g.Generate(context.Background(), baseRequest(), opts)
	require.NoError(t, err)

	for i := range a.Months {
		assert.Equal(t, a.Months[i].Multiplier, b.Months[i].Multiplier)
		assert.True(t, a.Months[i].Dataset.TotalBilledCost().Equal(b.Months[i].Dataset.TotalBilledCost()))
	}
}

func TestUnknownScenarioFallsBackToLinear(t *testing.T) {
	e, err := engine.NewEngine(engine.DefaultEngineConfig())
	require.NoError(t, err)

	res, err := NewGenerator(e).Generate(context.Background(), baseRequest(), Options{Scenario: "exponential", Months: 2})
	require.NoError(t, err)
	assert.Equal(t, Linear, res.Scenario)
}

func TestMonthBounds(t *testing.T) {
	e, err := engine.NewEngine(engine.DefaultEngineConfig())
	require.NoError(t, err)
	g := NewGenerator(e)

	for _, n := range []int{0, 1, 13} {
		_, err := g.Generate(context.Background(), baseRequest(), Options{Scenario: Linear, Months: n})
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.TypeInput))
	}
}

func TestScale(t *testing.T) {
	ds, err := engine.Generate(context.Background(), engine.Request{
		RowCount:     4,
		Profile:      profile.Greenfield,
		Distribution: profile.EvenlyDistributed,
		Provider:     catalog.AWS,
		Seed:         5,
	})
	require.NoError(t, err)

	before := make([]decimal.Decimal, ds.Len())
	for i, r := range ds.Table.Rows {
		before[i], _ = r.Decimal(focus.ListCost)
	}
	Scale(ds, 2)
	for i, r := range ds.Table.Rows {
		after, _ := r.Decimal(focus.ListCost)
		assert.True(t, after.Equal(before[i].Mul(decimal.NewFromInt(2)).Round(2)), "row %d", i)
	}
}
