package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"focusgen/core/focus"
	"focusgen/core/table"
)

func enhancedRules() []rule {
	return []rule{
		checkServiceCategory,
		checkCostRelationships,
		checkChargeSemantics,
		checkDuplicates,
		checkHomogeneity,
		checkTagCoverage,
	}
}

// checkServiceCategory requires a category on every row naming a service
func checkServiceCategory(c *checker) {
	if !c.has(focus.ServiceName, focus.ServiceCategory) {
		return
	}
	c.require("service-category", focus.ServiceCategory, func(r *table.Row) bool {
		return !r.IsNull(focus.ServiceName) && r.IsNull(focus.ServiceCategory)
	}, "ServiceName is set but ServiceCategory is null")
}

// positiveCategories are charge categories whose costs are expected to be
// non-negative
var positiveCategories = map[string]bool{
	focus.ChargeUsage:    true,
	focus.ChargePurchase: true,
	focus.ChargeTax:      true,
}

func checkCostRelationships(c *checker) {
	var available []string
	for _, col := range focus.CostColumns {
		if c.has(col) {
			available = append(available, col)
		}
	}
	if len(available) < 2 {
		c.warn("cost-relationships", "", nil, "cost relationship checks skipped: fewer than two cost columns")
		return
	}

	if c.has(focus.BilledCost, focus.ListCost) {
		c.advise("billed-above-list", focus.BilledCost, func(r *table.Row) bool {
			billed, ok1 := decimalOf(r, focus.BilledCost)
			list, ok2 := decimalOf(r, focus.ListCost)
			return ok1 && ok2 && billed.GreaterThan(list)
		}, "BilledCost exceeds ListCost, discounts may be misapplied")
	}

	categorized := c.has(focus.ChargeCategory)
	for _, col := range available {
		c.advise("negative-cost", col, func(r *table.Row) bool {
			d, ok := decimalOf(r, col)
			if !ok || !d.IsNegative() {
				return false
			}
			return !categorized || positiveCategories[r.String(focus.ChargeCategory)]
		}, "negative %s outside Credit and Adjustment charges", col)
	}
}

// checkChargeSemantics covers the soft rules tying charge, resource and
// commitment columns together
func checkChargeSemantics(c *checker) {
	if c.has(focus.ChargeCategory, focus.BilledCost) {
		c.advise("positive-credit", focus.BilledCost, func(r *table.Row) bool {
			d, ok := decimalOf(r, focus.BilledCost)
			return ok && r.String(focus.ChargeCategory) == focus.ChargeCredit && d.IsPositive()
		}, "Credit rows with a positive BilledCost")
	}

	if c.has(focus.ChargeCategory, focus.ChargeFrequency) {
		c.advise("purchase-frequency-missing", focus.ChargeFrequency, func(r *table.Row) bool {
			return r.String(focus.ChargeCategory) == focus.ChargePurchase && r.IsNull(focus.ChargeFrequency)
		}, "Purchase rows without a ChargeFrequency")
	}

	if c.has(focus.ResourceId, focus.ResourceType) {
		c.advise("resource-type-missing", focus.ResourceType, func(r *table.Row) bool {
			return !r.IsNull(focus.ResourceId) && r.IsNull(focus.ResourceType)
		}, "rows with a ResourceId but no ResourceType")
	}

	if c.has(focus.CommitmentDiscountStatus, focus.BilledCost) {
		c.advise("unused-commitment-cost", focus.BilledCost, func(r *table.Row) bool {
			d, ok := decimalOf(r, focus.BilledCost)
			return ok && r.String(focus.CommitmentDiscountStatus) == focus.StatusUnused && !d.IsZero()
		}, "Unused commitment rows with a non-zero BilledCost")
	}
}

// checkDuplicates reports rows identical to an earlier row in every column
func checkDuplicates(c *checker) {
	seen := make(map[string]bool, c.tbl.Len())
	var dups []int
	for i, r := range c.tbl.Rows {
		key := rowKey(c.tbl.Columns, r)
		if seen[key] {
			dups = append(dups, i)
			continue
		}
		seen[key] = true
	}
	if len(dups) > 0 {
		c.warn("duplicate-rows", "", dups, "found %d duplicate rows", len(dups))
	}
}

func rowKey(columns []string, r *table.Row) string {
	var b strings.Builder
	for _, col := range columns {
		v, _ := r.Get(col)
		switch val := v.(type) {
		case nil:
			b.WriteString("\x00")
		case decimal.Decimal:
			b.WriteString(val.String())
		default:
			// fmt prints maps with sorted keys
			fmt.Fprint(&b, val)
		}
		b.WriteByte('\x1f')
	}
	return b.String()
}

// checkHomogeneity warns when a dataset mixes currencies, billing periods
// or providers
func checkHomogeneity(c *checker) {
	if c.has(focus.BillingCurrency) {
		if n := distinct(c.tbl, focus.BillingCurrency); n > 1 {
			c.warn("mixed-currency", focus.BillingCurrency, nil,
				"found %d currencies, costs cannot be summed directly", n)
		}
	}
	if c.has(focus.BillingPeriodStart, focus.BillingPeriodEnd) {
		if n := distinct(c.tbl, focus.BillingPeriodStart, focus.BillingPeriodEnd); n > 1 {
			c.warn("mixed-billing-period", focus.BillingPeriodStart, nil,
				"found %d billing periods", n)
		}
	}
	if c.has(focus.ProviderName) {
		if n := distinct(c.tbl, focus.ProviderName); n > 1 {
			c.warn("mixed-provider", focus.ProviderName, nil,
				"found %d providers", n)
		}
	}
}

// distinct counts the distinct non-null value combinations of the columns
func distinct(tbl *table.Table, columns ...string) int {
	values := make(map[string]struct{})
	for _, r := range tbl.Rows {
		parts := make([]string, 0, len(columns))
		null := true
		for _, col := range columns {
			if !r.IsNull(col) {
				null = false
			}
			parts = append(parts, fmt.Sprint(value(r, col)))
		}
		if null {
			continue
		}
		values[strings.Join(parts, "\x1f")] = struct{}{}
	}
	return len(values)
}

func checkTagCoverage(c *checker) {
	if !c.has(focus.ResourceId, focus.Tags) {
		return
	}
	rows := c.where(func(r *table.Row) bool {
		return !r.IsNull(focus.ResourceId) && r.IsNull(focus.Tags)
	})
	if len(rows) > 0 {
		c.warn("untagged-resources", focus.Tags, rows, "%d rows have a ResourceId but no Tags", len(rows))
	}
}

func decimalOf(r *table.Row, column string) (decimal.Decimal, bool) {
	v := value(r, column)
	if v == nil {
		return decimal.Decimal{}, false
	}
	return toDecimal(v)
}

// Rules lists the rule names a tier can report, sorted
func Rules(tier Tier) []string {
	names := []string{
		"mandatory-column", "recommended-column", "unknown-column",
		"non-null", "type", "allowed-values",
		"tax-sku", "purchase-frequency", "commitment-dependents", "commitment-status",
		"capacity-reservation-status", "pricing-quantity",
		"time-periods", "billing-period-order", "charge-period-order", "charge-period-nesting",
		"provider-consistency",
	}
	if tier == TierEnhanced {
		names = append(names,
			"service-category", "cost-relationships", "billed-above-list", "negative-cost",
			"positive-credit", "purchase-frequency-missing", "resource-type-missing",
			"unused-commitment-cost", "duplicate-rows", "mixed-currency",
			"mixed-billing-period", "mixed-provider", "untagged-resources",
		)
	}
	sort.Strings(names)
	return names
}
