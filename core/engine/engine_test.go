package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusgen/core/catalog"
	"focusgen/core/focus"
	"focusgen/core/generator"
	"focusgen/core/profile"
	"focusgen/core/table"
	"focusgen/core/validation"
	"focusgen/internal/errors"
)

func newTestEngine(t *testing.T, cfg EngineConfig) *Engine {
	t.Helper()
	e, err := NewEngine(cfg)
	require.NoError(t, err)
	return e
}

// TestGenerateSmallAWSDataset is the five-row reference scenario
func TestGenerateSmallAWSDataset(t *testing.T) {
	ds, err := Generate(context.Background(), Request{
		RowCount:     5,
		Profile:      profile.Greenfield,
		Distribution: profile.EvenlyDistributed,
		Provider:     catalog.AWS,
	})
	require.NoError(t, err)
	require.Equal(t, 5, ds.Len())
	assert.NotZero(t, ds.Seed)
	assert.Len(t, ds.Table.Columns, len(generator.ColumnOrder))

	categories := []string{focus.ChargeUsage, focus.ChargePurchase, focus.ChargeTax, focus.ChargeCredit, focus.ChargeAdjustment}
	for i, r := range ds.Table.Rows {
		assert.False(t, r.IsNull(focus.BillingAccountId), "row %d", i)
		assert.Contains(t, categories, r.String(focus.ChargeCategory), "row %d", i)
		assert.Equal(t, "AWS", r.String(focus.ProviderName), "row %d", i)
	}

	assert.NoError(t, validation.ValidateTable(ds.Table))
}

// TestGeneratedDatasetsHoldInvariants covers every profile, distribution
// and provider at several row counts
func TestGeneratedDatasetsHoldInvariants(t *testing.T) {
	e := newTestEngine(t, EngineConfig{Workers: 4, Strict: true})
	cat := catalog.Default()

	for _, p := range profile.Profiles() {
		for _, d := range profile.Distributions() {
			for _, prov := range catalog.Providers() {
				for _, n := range []int{1, 7, 40} {
					name := fmt.Sprintf("%s/%s/%s/%d", p, d, prov, n)
					t.Run(name, func(t *testing.T) {
						ds, err := e.Generate(context.Background(), Request{
							RowCount:     n,
							Profile:      p,
							Distribution: d,
							Provider:     prov,
							Seed:         uint64(n) + 1000,
							Validate:     true,
						})
						require.NoError(t, err)
						require.NotNil(t, ds.Report)
						assert.True(t, ds.Report.Valid())
						assert.Equal(t, n, ds.Len())

						entry, err := cat.Lookup(prov)
						require.NoError(t, err)
						for i, r := range ds.Table.Rows {
							checkRowInvariants(t, entry, i, r)
						}
					})
				}
			}
		}
	}
}

func checkRowInvariants(t *testing.T, entry *catalog.ProviderEntry, i int, r *table.Row) {
	t.Helper()

	// provider consistency
	assert.Equal(t, entry.DisplayName, r.String(focus.ProviderName), "row %d", i)
	assert.True(t, entry.OfferService(r.String(focus.ServiceName)), "row %d service %s", i, r.String(focus.ServiceName))
	assert.True(t, entry.HasPublisher(r.String(focus.PublisherName)), "row %d", i)
	if region := r.String(focus.RegionId); region != "" {
		_, ok := entry.Region(region)
		assert.True(t, ok, "row %d region %s", i, region)
	}

	// null-dependency closure
	if r.IsNull(focus.CommitmentDiscountId) {
		for _, col := range focus.CommitmentDiscountColumns {
			assert.True(t, r.IsNull(col), "row %d %s", i, col)
		}
	}
	if r.IsNull(focus.CapacityReservationId) {
		assert.True(t, r.IsNull(focus.CapacityReservationStatus), "row %d", i)
	}

	// tax exclusivity
	if r.String(focus.ChargeCategory) == focus.ChargeTax {
		assert.True(t, r.IsNull(focus.SkuId), "row %d", i)
		assert.True(t, r.IsNull(focus.SkuPriceId), "row %d", i)
	}

	// temporal nesting
	bs := mustTime(t, r, focus.BillingPeriodStart)
	be := mustTime(t, r, focus.BillingPeriodEnd)
	cs := mustTime(t, r, focus.ChargePeriodStart)
	ce := mustTime(t, r, focus.ChargePeriodEnd)
	assert.True(t, cs.Before(ce), "row %d", i)
	assert.False(t, cs.Before(bs), "row %d", i)
	assert.False(t, ce.After(be), "row %d", i)
}

func mustTime(t *testing.T, r *table.Row, column string) time.Time {
	t.Helper()
	ts, err := table.ParseDateTime(r.String(column))
	require.NoError(t, err, column)
	return ts
}

// TestGreenfieldCostMagnitude checks the documented tolerance band: every
// row is a U(0.8, 1.2) share of total/rows, rounded to cents
func TestGreenfieldCostMagnitude(t *testing.T) {
	e := newTestEngine(t, DefaultEngineConfig())

	for _, n := range []int{1, 10, 100} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			ds, err := e.Generate(context.Background(), Request{
				RowCount:     n,
				Profile:      profile.Greenfield,
				Distribution: profile.EvenlyDistributed,
				Provider:     catalog.GCP,
				Seed:         42,
			})
			require.NoError(t, err)

			total := ds.Params.TotalCost
			assert.True(t, total.GreaterThanOrEqual(decimal.NewFromInt(10000)))
			assert.True(t, total.LessThanOrEqual(decimal.NewFromInt(50000)))

			slack := decimal.NewFromFloat(0.005).Mul(decimal.NewFromInt(int64(n)))
			lo := total.Mul(decimal.NewFromFloat(0.8)).Sub(slack)
			hi := total.Mul(decimal.NewFromFloat(1.2)).Add(slack)
			sum := ds.TotalBilledCost()
			assert.True(t, sum.GreaterThanOrEqual(lo), "sum %s below %s", sum, lo)
			assert.True(t, sum.LessThanOrEqual(hi), "sum %s above %s", sum, hi)
		})
	}
}

// TestDeterministicAcrossWorkerCounts proves rows do not depend on
// scheduling
func TestDeterministicAcrossWorkerCounts(t *testing.T) {
	req := Request{
		RowCount:     60,
		Profile:      profile.Enterprise,
		Distribution: profile.MLFocused,
		Provider:     catalog.Azure,
		Seed:         7,
	}

	sequential, err := newTestEngine(t, EngineConfig{Workers: 1}).Generate(context.Background(), req)
	require.NoError(t, err)
	parallel, err := newTestEngine(t, EngineConfig{Workers: 8}).Generate(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, sequential.Params.TotalCost.Equal(parallel.Params.TotalCost))
	assertSameTable(t, sequential.Table, parallel.Table)
}

func TestSeedReproducesDataset(t *testing.T) {
	e := newTestEngine(t, DefaultEngineConfig())
	req := Request{
		RowCount:     12,
		Profile:      profile.LargeBusiness,
		Distribution: profile.DataIntensive,
		Provider:     catalog.AWS,
	}

	first, err := e.Generate(context.Background(), req)
	require.NoError(t, err)
	require.NotZero(t, first.Seed)

	req.Seed = first.Seed
	again, err := e.Generate(context.Background(), req)
	require.NoError(t, err)
	assertSameTable(t, first.Table, again.Table)
	assert.NotEqual(t, first.ID, again.ID)
}

func assertSameTable(t *testing.T, want, got *table.Table) {
	t.Helper()
	require.Equal(t, want.Columns, got.Columns)
	require.Equal(t, want.Len(), got.Len())
	for i := range want.Rows {
		for _, col := range want.Columns {
			a, _ := want.Rows[i].Get(col)
			b, _ := got.Rows[i].Get(col)
			if da, ok := a.(decimal.Decimal); ok {
				db, ok := b.(decimal.Decimal)
				require.True(t, ok, "row %d %s", i, col)
				assert.True(t, da.Equal(db), "row %d %s: %s != %s", i, col, da, db)
				continue
			}
			assert.Equal(t, a, b, "row %d %s", i, col)
		}
	}
}

func TestBillingPeriodAndCurrency(t *testing.T) {
	e := newTestEngine(t, DefaultEngineConfig())
	ds, err := e.Generate(context.Background(), Request{
		RowCount:      3,
		Profile:       profile.Greenfield,
		Distribution:  profile.EvenlyDistributed,
		Provider:      catalog.Azure,
		BillingPeriod: time.Date(2025, time.March, 17, 9, 0, 0, 0, time.UTC),
		Currency:      "EUR",
		Seed:          3,
		Validate:      true,
	})
	require.NoError(t, err)

	for _, r := range ds.Table.Rows {
		assert.Equal(t, "2025-03-01T00:00:00Z", r.String(focus.BillingPeriodStart))
		assert.Equal(t, "2025-04-01T00:00:00Z", r.String(focus.BillingPeriodEnd))
		assert.Equal(t, "EUR", r.String(focus.BillingCurrency))
	}
}

func TestRequestErrors(t *testing.T) {
	e := newTestEngine(t, DefaultEngineConfig())
	base := Request{
		RowCount:     1,
		Profile:      profile.Greenfield,
		Distribution: profile.EvenlyDistributed,
		Provider:     catalog.AWS,
	}

	tests := []struct {
		name   string
		modify func(r *Request)
	}{
		{"zero rows", func(r *Request) { r.RowCount = 0 }},
		{"negative rows", func(r *Request) { r.RowCount = -3 }},
		{"unknown profile", func(r *Request) { r.Profile = "Startup" }},
		{"unknown distribution", func(r *Request) { r.Distribution = "GPU-Heavy" }},
		{"unknown provider", func(r *Request) { r.Provider = "ORACLE" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.modify(&req)
			_, err := e.Generate(context.Background(), req)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeInput), "%v", err)
		})
	}
}

func TestGenerateHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		e := newTestEngine(t, EngineConfig{Workers: workers})
		_, err := e.Generate(ctx, Request{
			RowCount:     50,
			Profile:      profile.Greenfield,
			Distribution: profile.EvenlyDistributed,
			Provider:     catalog.AWS,
		})
		require.Error(t, err, "workers %d", workers)
		assert.True(t, errors.IsType(err, errors.TypeGeneration))
	}
}
