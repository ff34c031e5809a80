package validation

import (
	stderrors "errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusgen/core/focus"
	"focusgen/core/table"
	"focusgen/internal/errors"
)

// fixtureColumns is a valid AWS usage line item
var fixtureColumns = []struct {
	name  string
	value any
}{
	{focus.BilledCost, decimal.RequireFromString("10.00")},
	{focus.EffectiveCost, decimal.RequireFromString("9.50")},
	{focus.ListCost, decimal.RequireFromString("12.00")},
	{focus.ContractedCost, decimal.RequireFromString("9.50")},
	{focus.BillingAccountId, "123456789012"},
	{focus.BillingAccountName, "Acme Corp"},
	{focus.BillingCurrency, "USD"},
	{focus.BillingPeriodStart, "2024-01-01T00:00:00Z"},
	{focus.BillingPeriodEnd, "2024-02-01T00:00:00Z"},
	{focus.ChargeCategory, focus.ChargeUsage},
	{focus.ChargeClass, nil},
	{focus.ChargeDescription, "Amazon EC2 usage"},
	{focus.ChargeFrequency, focus.FrequencyUsageBased},
	{focus.ChargePeriodStart, "2024-01-05T00:00:00Z"},
	{focus.ChargePeriodEnd, "2024-01-06T00:00:00Z"},
	{focus.InvoiceIssuerName, "Amazon Web Services, Inc."},
	{focus.PricingQuantity, decimal.NewFromInt(5)},
	{focus.PricingUnit, "Hours"},
	{focus.ProviderName, "AWS"},
	{focus.PublisherName, "Amazon Web Services"},
	{focus.ServiceCategory, focus.CategoryCompute},
	{focus.ServiceName, "Amazon EC2"},
	{focus.ServiceSubcategory, "Virtual Machines"},
	{focus.RegionId, "us-east-1"},
	{focus.AvailabilityZone, "us-east-1a"},
	{focus.SkuId, "SKU-1a2b"},
	{focus.SkuPriceId, "SKUPRICE-1a2b"},
	{focus.CommitmentDiscountId, nil},
	{focus.CommitmentDiscountStatus, nil},
	{focus.CommitmentDiscountType, nil},
	{focus.CapacityReservationId, nil},
	{focus.CapacityReservationStatus, nil},
	{focus.ResourceId, "i-0abc"},
	{focus.ResourceType, "Virtual Machine"},
	{focus.Tags, map[string]string{"Environment": "Production"}},
}

func fixtureNames() []string {
	names := make([]string, len(fixtureColumns))
	for i, c := range fixtureColumns {
		names[i] = c.name
	}
	return names
}

// fixtureRow returns the fixture with some values replaced
func fixtureRow(overrides map[string]any) *table.Row {
	r := table.NewRow(len(fixtureColumns))
	for _, c := range fixtureColumns {
		v := c.value
		if o, ok := overrides[c.name]; ok {
			v = o
		}
		if err := r.Set(c.name, v); err != nil {
			panic(err)
		}
	}
	return r
}

func fixtureTable(rows ...map[string]any) *table.Table {
	tbl := table.New(fixtureNames())
	for _, o := range rows {
		tbl.Append(fixtureRow(o))
	}
	return tbl
}

func hasWarning(report *Report, rule string) bool {
	for _, w := range report.Warnings {
		if w.Rule == rule {
			return true
		}
	}
	return false
}

func TestFixtureIsValid(t *testing.T) {
	for _, tier := range []Tier{TierBasic, TierEnhanced} {
		t.Run(string(tier), func(t *testing.T) {
			report, err := NewValidator(Config{Tier: tier}).Validate(fixtureTable(nil))
			require.NoError(t, err)
			assert.True(t, report.Valid())
			assert.Equal(t, 1, report.Rows)
			assert.Equal(t, len(fixtureColumns), report.Columns)
		})
	}
}

// TestTaxRowWithSku is the canonical hard violation: a tax line item
// carrying a SKU
func TestTaxRowWithSku(t *testing.T) {
	tbl := fixtureTable(map[string]any{
		focus.ChargeCategory: focus.ChargeTax,
		focus.SkuId:          "SKU-1",
		focus.SkuPriceId:     nil,
	})

	err := ValidateTable(tbl)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, stderrors.As(err, &verr))
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "tax-sku", verr.Violations[0].Rule)
	assert.Equal(t, []int{0}, verr.Violations[0].Rows)
	assert.Contains(t, err.Error(), "row 0")
	assert.Contains(t, err.Error(), "SkuId")
	assert.True(t, errors.IsType(err, errors.TypeValidation))
}

func TestHardRules(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
		rule      string
		column    string
	}{
		{
			name:      "purchase with usage-based frequency",
			overrides: map[string]any{focus.ChargeCategory: focus.ChargePurchase},
			rule:      "purchase-frequency",
			column:    focus.ChargeFrequency,
		},
		{
			name:      "commitment dependent without id",
			overrides: map[string]any{focus.CommitmentDiscountType: "Reserved Instance"},
			rule:      "commitment-dependents",
			column:    focus.CommitmentDiscountType,
		},
		{
			name:      "usage commitment without status",
			overrides: map[string]any{focus.CommitmentDiscountId: "CD-1a2b"},
			rule:      "commitment-status",
			column:    focus.CommitmentDiscountStatus,
		},
		{
			name:      "capacity status without id",
			overrides: map[string]any{focus.CapacityReservationStatus: focus.StatusUsed},
			rule:      "capacity-reservation-status",
			column:    focus.CapacityReservationStatus,
		},
		{
			name:      "usage without pricing quantity",
			overrides: map[string]any{focus.PricingQuantity: nil},
			rule:      "pricing-quantity",
			column:    focus.PricingQuantity,
		},
		{
			name: "charge period reversed",
			overrides: map[string]any{
				focus.ChargePeriodStart: "2024-01-06T00:00:00Z",
				focus.ChargePeriodEnd:   "2024-01-05T00:00:00Z",
			},
			rule:   "charge-period-order",
			column: focus.ChargePeriodEnd,
		},
		{
			name: "charge period outside billing period",
			overrides: map[string]any{
				focus.ChargePeriodStart: "2024-02-03T00:00:00Z",
				focus.ChargePeriodEnd:   "2024-02-04T00:00:00Z",
			},
			rule:   "charge-period-nesting",
			column: focus.ChargePeriodStart,
		},
		{
			name:      "null in non-nullable column",
			overrides: map[string]any{focus.BilledCost: nil},
			rule:      "non-null",
			column:    focus.BilledCost,
		},
		{
			name:      "value outside allowed set",
			overrides: map[string]any{focus.ChargeCategory: "Refund"},
			rule:      "allowed-values",
			column:    focus.ChargeCategory,
		},
		{
			name:      "non-numeric decimal",
			overrides: map[string]any{focus.BilledCost: "ten"},
			rule:      "type",
			column:    focus.BilledCost,
		},
		{
			name:      "malformed JSON",
			overrides: map[string]any{focus.Tags: "{not json"},
			rule:      "type",
			column:    focus.Tags,
		},
		{
			name:      "service from another provider",
			overrides: map[string]any{focus.ServiceName: "Compute Engine"},
			rule:      "provider-consistency",
			column:    focus.ServiceName,
		},
		{
			name:      "zone outside region",
			overrides: map[string]any{focus.AvailabilityZone: "us-west-2a"},
			rule:      "provider-consistency",
			column:    focus.AvailabilityZone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := NewValidator(Config{Tier: TierBasic}).Validate(fixtureTable(tt.overrides))
			require.Error(t, err)
			require.False(t, report.Valid())

			v := report.Violations[0]
			assert.Equal(t, tt.rule, v.Rule)
			assert.Equal(t, tt.column, v.Column)
			assert.Equal(t, []int{0}, v.Rows)
		})
	}
}

func TestUnknownProviderSkipsConsistency(t *testing.T) {
	tbl := fixtureTable(map[string]any{
		focus.ProviderName: "Oracle",
		focus.ServiceName:  "Compute Engine",
	})
	_, err := NewValidator(DefaultConfig()).Validate(tbl)
	assert.NoError(t, err)
}

func TestJSONStringAccepted(t *testing.T) {
	tbl := fixtureTable(map[string]any{focus.Tags: `{"Owner":"DevOps"}`})
	assert.NoError(t, ValidateTable(tbl))
}

func TestMissingMandatoryColumn(t *testing.T) {
	var names []string
	for _, n := range fixtureNames() {
		if n != focus.BilledCost {
			names = append(names, n)
		}
	}
	tbl := table.New(names)
	tbl.Append(fixtureRow(nil))

	report, err := NewValidator(DefaultConfig()).Validate(tbl)
	require.Error(t, err)
	assert.Equal(t, "mandatory-column", report.Violations[0].Rule)
	assert.Equal(t, focus.BilledCost, report.Violations[0].Column)
}

func TestCollectAllReportsEveryViolation(t *testing.T) {
	rows := []map[string]any{
		{focus.ChargeCategory: focus.ChargeTax, focus.SkuId: nil},
		{focus.CapacityReservationStatus: focus.StatusUnused, focus.ChargePeriodStart: "2024-01-02T00:00:00Z", focus.ChargePeriodEnd: "2024-01-03T00:00:00Z"},
		{focus.ServiceCategory: nil, focus.ChargePeriodStart: "2024-01-03T00:00:00Z", focus.ChargePeriodEnd: "2024-01-04T00:00:00Z"},
	}

	all, err := NewValidator(Config{Mode: ModeCollectAll}).Validate(fixtureTable(rows...))
	require.Error(t, err)

	rules := make(map[string][]int)
	for _, v := range all.Violations {
		rules[v.Rule] = v.Rows
	}
	assert.Equal(t, []int{0}, rules["tax-sku"])
	assert.Equal(t, []int{1}, rules["capacity-reservation-status"])
	assert.Equal(t, []int{2}, rules["non-null"])
	assert.Equal(t, []int{2}, rules["service-category"])

	var verr *ValidationError
	require.True(t, stderrors.As(err, &verr))
	assert.Len(t, verr.Violations, len(all.Violations))
	assert.Contains(t, err.Error(), "violations")

	first, err := NewValidator(Config{Mode: ModeFailFast}).Validate(fixtureTable(rows...))
	require.Error(t, err)
	assert.Len(t, first.Violations, 1)
}

func TestSoftRulesOnlyWarn(t *testing.T) {
	tests := []struct {
		name string
		rows []map[string]any
		rule string
	}{
		{
			name: "billed above list",
			rows: []map[string]any{{focus.BilledCost: decimal.RequireFromString("20.00")}},
			rule: "billed-above-list",
		},
		{
			name: "negative usage cost",
			rows: []map[string]any{{focus.EffectiveCost: decimal.RequireFromString("-1.00")}},
			rule: "negative-cost",
		},
		{
			name: "positive credit",
			rows: []map[string]any{{focus.ChargeCategory: focus.ChargeCredit}},
			rule: "positive-credit",
		},
		{
			name: "resource without type",
			rows: []map[string]any{{focus.ResourceType: nil}},
			rule: "resource-type-missing",
		},
		{
			name: "unused commitment with cost",
			rows: []map[string]any{{
				focus.CommitmentDiscountId:     "CD-1a2b",
				focus.CommitmentDiscountStatus: focus.StatusUnused,
			}},
			rule: "unused-commitment-cost",
		},
		{
			name: "untagged resource",
			rows: []map[string]any{{focus.Tags: nil}},
			rule: "untagged-resources",
		},
		{
			name: "duplicate rows",
			rows: []map[string]any{nil, nil},
			rule: "duplicate-rows",
		},
		{
			name: "mixed currency",
			rows: []map[string]any{nil, {focus.BillingCurrency: "EUR"}},
			rule: "mixed-currency",
		},
		{
			name: "mixed providers",
			rows: []map[string]any{nil, {
				focus.ProviderName:      "Oracle",
				focus.ChargePeriodStart: "2024-01-09T00:00:00Z",
				focus.ChargePeriodEnd:   "2024-01-10T00:00:00Z",
			}},
			rule: "mixed-provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := NewValidator(Config{Tier: TierEnhanced, Mode: ModeCollectAll}).Validate(fixtureTable(tt.rows...))
			require.NoError(t, err)
			assert.True(t, hasWarning(report, tt.rule), "warnings: %v", report.Warnings)

			basic, err := NewValidator(Config{Tier: TierBasic}).Validate(fixtureTable(tt.rows...))
			require.NoError(t, err)
			assert.False(t, hasWarning(basic, tt.rule))
		})
	}
}

func TestUnknownColumnWarns(t *testing.T) {
	names := append(fixtureNames(), "x_CostCenter")
	tbl := table.New(names)
	r := fixtureRow(nil)
	require.NoError(t, r.Set("x_CostCenter", "cc-1"))
	tbl.Append(r)

	report, err := NewValidator(DefaultConfig()).Validate(tbl)
	require.NoError(t, err)
	assert.True(t, hasWarning(report, "unknown-column"))
}

// TestValidateIsIdempotent checks validation neither mutates the table nor
// depends on earlier runs
func TestValidateIsIdempotent(t *testing.T) {
	tbl := fixtureTable(
		map[string]any{focus.ChargeCategory: focus.ChargeTax},
		map[string]any{focus.BilledCost: decimal.RequireFromString("20.00")},
	)
	before := tbl.Rows[0].Columns()
	v := NewValidator(Config{Mode: ModeCollectAll})

	first, err1 := v.Validate(tbl)
	second, err2 := v.Validate(tbl)

	require.Error(t, err1)
	require.Error(t, err2)
	assert.Equal(t, err1.Error(), err2.Error())
	assert.Equal(t, first, second)
	assert.Equal(t, before, tbl.Rows[0].Columns())
	assert.Equal(t, "SKU-1a2b", tbl.Rows[0].String(focus.SkuId))
}

func TestValidateNilTable(t *testing.T) {
	err := ValidateTable(nil)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestParseTierAndMode(t *testing.T) {
	tier, err := ParseTier("Basic")
	require.NoError(t, err)
	assert.Equal(t, TierBasic, tier)

	tier, err = ParseTier("")
	require.NoError(t, err)
	assert.Equal(t, TierEnhanced, tier)

	_, err = ParseTier("paranoid")
	assert.Error(t, err)

	mode, err := ParseMode("collect-all")
	require.NoError(t, err)
	assert.Equal(t, ModeCollectAll, mode)

	_, err = ParseMode("sometimes")
	assert.Error(t, err)
}

func TestRulesListsEnhancedSuperset(t *testing.T) {
	basic := Rules(TierBasic)
	enhanced := Rules(TierEnhanced)
	assert.Subset(t, enhanced, basic)
	assert.Contains(t, enhanced, "duplicate-rows")
	assert.NotContains(t, basic, "duplicate-rows")
}
