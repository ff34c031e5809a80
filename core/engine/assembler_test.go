package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusgen/core/catalog"
	"focusgen/core/focus"
	"focusgen/core/generator"
	"focusgen/core/profile"
	"focusgen/core/table"
	"focusgen/internal/errors"
)

// peekingGenerator owns one column and reads another
type peekingGenerator struct {
	column string
	reads  string
}

func (g peekingGenerator) Name() string      { return "peeking" }
func (g peekingGenerator) Columns() []string { return []string{g.column} }
func (g peekingGenerator) Owns(c string) bool {
	return c == g.column
}

func (g peekingGenerator) Generate(ctx *generator.Context) (any, error) {
	return "saw " + ctx.Row.String(g.reads), nil
}

func testParams() *generator.Params {
	return &generator.Params{
		RowCount:     10,
		Profile:      profile.Greenfield,
		Distribution: profile.EvenlyDistributed,
		Provider:     catalog.AWS,
		TotalCost:    decimal.NewFromInt(10000),
	}
}

func TestAssemblerResolvesEveryColumn(t *testing.T) {
	a, err := NewRowAssembler(generator.NewDefaultDispatcher(), nil, generator.ColumnOrder, generator.Dependencies, true)
	require.NoError(t, err)

	plan := a.Plan()
	require.Len(t, plan, len(generator.ColumnOrder))
	for _, p := range plan {
		assert.NotEqual(t, "generic", p.Generator, p.Column)
	}

	row, err := a.AssembleRow(3, testParams(), generator.NewRowRand(1, 3))
	require.NoError(t, err)
	assert.Equal(t, generator.ColumnOrder, row.Columns())
}

func TestStrictAssemblerRejectsBadOrder(t *testing.T) {
	order := []string{focus.ChargePeriodEnd, focus.ChargePeriodStart}

	_, err := NewRowAssembler(generator.NewDefaultDispatcher(), nil, order, generator.Dependencies, true)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))

	// the lenient assembler accepts the order and fails at generation
	a, err := NewRowAssembler(generator.NewDefaultDispatcher(), nil, order, generator.Dependencies, false)
	require.NoError(t, err)
	_, err = a.AssembleRow(0, testParams(), generator.NewRowRand(1, 0))
	assert.Error(t, err)
}

func TestStrictAssemblerRecordsUndeclaredReads(t *testing.T) {
	d := generator.NewDispatcher(generator.NewGenericGenerator())
	d.Register(peekingGenerator{column: focus.ChargeCategory, reads: focus.ServiceName})
	order := []string{focus.ChargeCategory, focus.ServiceName}

	strict, err := NewRowAssembler(d, nil, order, nil, true)
	require.NoError(t, err)
	_, err = strict.AssembleRow(0, testParams(), generator.NewRowRand(1, 0))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
	assert.Contains(t, err.Error(), focus.ServiceName)

	lenient, err := NewRowAssembler(d, nil, order, nil, false)
	require.NoError(t, err)
	row, err := lenient.AssembleRow(0, testParams(), generator.NewRowRand(1, 0))
	require.NoError(t, err)
	assert.Equal(t, "saw ", row.String(focus.ChargeCategory))
}

func TestAssemblerUnknownColumn(t *testing.T) {
	d := generator.NewDispatcher(nil)
	d.Register(generator.NewChargeGenerator())

	_, err := NewRowAssembler(d, nil, []string{focus.ChargeCategory, focus.Tags}, nil, false)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeUnknownColumn))

	_, err = NewEngine(EngineConfig{Dispatcher: d, Columns: []string{focus.Tags}})
	assert.Error(t, err)
}

func TestNullCommitmentDependents(t *testing.T) {
	tbl := table.New(append([]string{focus.CommitmentDiscountId}, focus.CommitmentDiscountColumns...))

	orphan := table.NewRow(7)
	require.NoError(t, orphan.Set(focus.CommitmentDiscountId, nil))
	for _, col := range focus.CommitmentDiscountColumns {
		require.NoError(t, orphan.Set(col, "x"))
	}
	owned := table.NewRow(7)
	require.NoError(t, owned.Set(focus.CommitmentDiscountId, "CD-1"))
	for _, col := range focus.CommitmentDiscountColumns {
		require.NoError(t, owned.Set(col, "x"))
	}
	tbl.Append(orphan)
	tbl.Append(owned)

	assert.Equal(t, len(focus.CommitmentDiscountColumns), nullCommitmentDependents(tbl))
	for _, col := range focus.CommitmentDiscountColumns {
		assert.True(t, orphan.IsNull(col), col)
		assert.Equal(t, "x", owned.String(col), col)
	}
}

func reweightTable(t *testing.T) *table.Table {
	t.Helper()
	tbl := table.New([]string{focus.ServiceCategory, focus.BilledCost, focus.EffectiveCost, focus.ResourceType})
	for _, cat := range []string{focus.CategoryAIML, focus.CategoryCompute, focus.CategoryStorage, focus.CategoryCompute} {
		r := table.NewRow(4)
		require.NoError(t, r.Set(focus.ServiceCategory, cat))
		require.NoError(t, r.Set(focus.BilledCost, decimal.NewFromInt(100)))
		require.NoError(t, r.Set(focus.EffectiveCost, decimal.NewFromInt(90)))
		require.NoError(t, r.Set(focus.ResourceType, nil))
		tbl.Append(r)
	}
	return tbl
}

func TestReweightMLFocused(t *testing.T) {
	tbl := reweightTable(t)
	stats := reweight(tbl, profile.MLFocused, generator.NewRowRand(9, 0))
	roundCosts(tbl)

	assert.Equal(t, 1, stats.Boosted)
	assert.Equal(t, 2, stats.Filled)
	require.Len(t, stats.Factors, 2)

	ml := tbl.Rows[0]
	billed, _ := ml.Decimal(focus.BilledCost)
	assert.True(t, billed.GreaterThanOrEqual(decimal.NewFromInt(120)), billed.String())
	assert.True(t, billed.LessThanOrEqual(decimal.NewFromInt(150)), billed.String())
	assert.True(t, ml.IsNull(focus.ResourceType))

	storage := tbl.Rows[2]
	untouched, _ := storage.Decimal(focus.BilledCost)
	assert.True(t, untouched.Equal(decimal.NewFromInt(100)))

	rw, _ := profile.MLFocused.Reweighting()
	allowed := append([]string{rw.FillDefault}, rw.FillVocabulary...)
	for _, i := range []int{1, 3} {
		assert.Contains(t, allowed, tbl.Rows[i].String(focus.ResourceType))
	}
}

func TestReweightEvenIsNoop(t *testing.T) {
	tbl := reweightTable(t)
	stats := reweight(tbl, profile.EvenlyDistributed, generator.NewRowRand(9, 0))
	assert.Zero(t, stats.Boosted)
	assert.Zero(t, stats.Filled)
	for _, r := range tbl.Rows {
		assert.True(t, r.IsNull(focus.ResourceType))
	}
}
