package validation

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"focusgen/core/catalog"
	"focusgen/core/focus"
	"focusgen/core/table"
)

func basicRules() []rule {
	return []rule{
		checkColumnPresence,
		checkColumnValues,
		checkTaxSku,
		checkPurchaseFrequency,
		checkCommitmentDependents,
		checkCommitmentStatus,
		checkCapacityReservation,
		checkPricingQuantity,
		checkTimePeriods,
		checkProviderConsistency,
	}
}

// checkColumnPresence requires every mandatory column. Missing recommended
// columns and columns unknown to the registry are warnings.
func checkColumnPresence(c *checker) {
	for _, col := range c.registry.Mandatory() {
		if !c.tbl.HasColumn(col) {
			c.violate("mandatory-column", col, nil, "missing mandatory column %s", col)
			if c.failFast {
				return
			}
		}
	}
	for _, col := range c.registry.Recommended() {
		if !c.tbl.HasColumn(col) {
			c.warn("recommended-column", col, nil, "recommended column %s is missing", col)
		}
	}
	for _, col := range c.tbl.Columns {
		if !c.registry.Has(col) {
			c.warn("unknown-column", col, nil, "column %s is not a FOCUS column", col)
		}
	}
}

// checkColumnValues applies nullability, allowed values and type
// conformance to every registered column of the table
func checkColumnValues(c *checker) {
	for _, col := range c.tbl.Columns {
		d, err := c.registry.DescriptorFor(col)
		if err != nil {
			continue
		}

		if !d.Nullable {
			c.require("non-null", col, func(r *table.Row) bool {
				return r.IsNull(col)
			}, "column %s does not allow nulls", col)
		}

		c.require("type", col, func(r *table.Row) bool {
			v, _ := r.Get(col)
			return v != nil && !conforms(d.DataType, v)
		}, "column %s expects %s values", col, d.DataType)

		if d.HasAllowedValues() && d.DataType == focus.TypeString {
			c.require("allowed-values", col, func(r *table.Row) bool {
				s, ok := value(r, col).(string)
				return ok && !d.Allows(s)
			}, "column %s has values outside its allowed set", col)
		}

		if c.stopped() {
			return
		}
	}
}

// conforms reports whether a non-null value matches the column data type
func conforms(dt focus.DataType, v any) bool {
	switch dt {
	case focus.TypeDecimal:
		_, ok := toDecimal(v)
		return ok
	case focus.TypeString:
		_, ok := v.(string)
		return ok
	case focus.TypeDateTime:
		_, ok := toTime(v)
		return ok
	case focus.TypeJSON:
		switch val := v.(type) {
		case map[string]string, map[string]any:
			return true
		case string:
			var obj map[string]any
			return json.Unmarshal([]byte(val), &obj) == nil
		}
		return false
	}
	return true
}

func checkTaxSku(c *checker) {
	if !c.has(focus.ChargeCategory) {
		return
	}
	for _, col := range []string{focus.SkuId, focus.SkuPriceId} {
		if !c.has(col) {
			continue
		}
		c.require("tax-sku", col, func(r *table.Row) bool {
			return r.String(focus.ChargeCategory) == focus.ChargeTax && !r.IsNull(col)
		}, "ChargeCategory is Tax but %s is not null", col)
	}
}

func checkPurchaseFrequency(c *checker) {
	if !c.has(focus.ChargeCategory, focus.ChargeFrequency) {
		return
	}
	c.require("purchase-frequency", focus.ChargeFrequency, func(r *table.Row) bool {
		return r.String(focus.ChargeCategory) == focus.ChargePurchase &&
			r.String(focus.ChargeFrequency) == focus.FrequencyUsageBased
	}, "ChargeCategory is Purchase but ChargeFrequency is Usage-Based")
}

// checkCommitmentDependents requires every commitment discount column to be
// null when CommitmentDiscountId is null
func checkCommitmentDependents(c *checker) {
	if !c.has(focus.CommitmentDiscountId) {
		return
	}
	for _, col := range focus.CommitmentDiscountColumns {
		if !c.has(col) {
			continue
		}
		c.require("commitment-dependents", col, func(r *table.Row) bool {
			return r.IsNull(focus.CommitmentDiscountId) && !r.IsNull(col)
		}, "CommitmentDiscountId is null but %s is not", col)
		if c.stopped() {
			return
		}
	}
}

func checkCommitmentStatus(c *checker) {
	if !c.has(focus.ChargeCategory, focus.CommitmentDiscountId, focus.CommitmentDiscountStatus) {
		return
	}
	c.require("commitment-status", focus.CommitmentDiscountStatus, func(r *table.Row) bool {
		if r.String(focus.ChargeCategory) != focus.ChargeUsage || r.IsNull(focus.CommitmentDiscountId) {
			return false
		}
		s := r.String(focus.CommitmentDiscountStatus)
		return s != focus.StatusUsed && s != focus.StatusUnused
	}, "Usage rows with a CommitmentDiscountId need CommitmentDiscountStatus Used or Unused")
}

func checkCapacityReservation(c *checker) {
	if !c.has(focus.CapacityReservationId, focus.CapacityReservationStatus) {
		return
	}
	c.require("capacity-reservation-status", focus.CapacityReservationStatus, func(r *table.Row) bool {
		return r.IsNull(focus.CapacityReservationId) && !r.IsNull(focus.CapacityReservationStatus)
	}, "CapacityReservationId is null but CapacityReservationStatus is not")
}

// checkPricingQuantity requires a quantity on usage rows that are not
// corrections
func checkPricingQuantity(c *checker) {
	if !c.has(focus.ChargeCategory, focus.PricingQuantity) {
		return
	}
	c.require("pricing-quantity", focus.PricingQuantity, func(r *table.Row) bool {
		return r.String(focus.ChargeCategory) == focus.ChargeUsage &&
			r.String(focus.ChargeClass) != focus.ChargeClassCorrection &&
			r.IsNull(focus.PricingQuantity)
	}, "Usage rows that are not corrections need a PricingQuantity")
}

// periods holds the parsed period bounds of one row
type periods struct {
	billingStart, billingEnd time.Time
	chargeStart, chargeEnd   time.Time
}

// checkTimePeriods requires start before end for both periods and the
// charge period to lie within the billing period. Rows with unparseable
// datetimes are left to the type rule.
func checkTimePeriods(c *checker) {
	if !c.has(focus.BillingPeriodStart, focus.BillingPeriodEnd, focus.ChargePeriodStart, focus.ChargePeriodEnd) {
		c.warn("time-periods", "", nil, "time period checks skipped: period columns missing")
		return
	}

	parsed := make([]*periods, len(c.tbl.Rows))
	var unparsed []int
	for i, r := range c.tbl.Rows {
		p, ok := parsePeriods(r)
		if !ok {
			unparsed = append(unparsed, i)
			continue
		}
		parsed[i] = p
	}
	if len(unparsed) > 0 {
		c.warn("time-periods", "", unparsed, "time period checks skipped for rows with unparseable periods")
	}

	check := func(rule, column string, bad func(p *periods) bool, msg string) {
		var rows []int
		for i, p := range parsed {
			if p != nil && bad(p) {
				rows = append(rows, i)
			}
		}
		if len(rows) > 0 {
			c.violate(rule, column, rows, "%s", msg)
		}
	}

	check("billing-period-order", focus.BillingPeriodEnd, func(p *periods) bool {
		return !p.billingStart.Before(p.billingEnd)
	}, "BillingPeriodStart is not before BillingPeriodEnd")
	if c.stopped() {
		return
	}
	check("charge-period-order", focus.ChargePeriodEnd, func(p *periods) bool {
		return !p.chargeStart.Before(p.chargeEnd)
	}, "ChargePeriodStart is not before ChargePeriodEnd")
	if c.stopped() {
		return
	}
	check("charge-period-nesting", focus.ChargePeriodStart, func(p *periods) bool {
		return p.chargeStart.Before(p.billingStart) || p.chargeEnd.After(p.billingEnd)
	}, "charge period lies outside the billing period")
}

func parsePeriods(r *table.Row) (*periods, bool) {
	var p periods
	targets := []struct {
		column string
		dst    *time.Time
	}{
		{focus.BillingPeriodStart, &p.billingStart},
		{focus.BillingPeriodEnd, &p.billingEnd},
		{focus.ChargePeriodStart, &p.chargeStart},
		{focus.ChargePeriodEnd, &p.chargeEnd},
	}
	for _, t := range targets {
		ts, ok := toTime(value(r, t.column))
		if !ok {
			return nil, false
		}
		*t.dst = ts
	}
	return &p, true
}

// checkProviderConsistency ties the service, publisher, region and zone of
// a row to the catalog entry its ProviderName names. Rows whose provider is
// not in the catalog are not checked.
func checkProviderConsistency(c *checker) {
	if !c.has(focus.ProviderName) {
		return
	}

	columns := []string{focus.ServiceName, focus.PublisherName, focus.RegionId, focus.AvailabilityZone}
	bad := make(map[string][]int)
	for i, r := range c.tbl.Rows {
		entry, ok := c.providers[r.String(focus.ProviderName)]
		if !ok {
			continue
		}
		for _, col := range providerMismatches(entry, r) {
			bad[col] = append(bad[col], i)
		}
	}

	for _, col := range columns {
		if rows := bad[col]; len(rows) > 0 {
			c.violate("provider-consistency", col, rows, "%s does not belong to the row's provider", col)
			if c.failFast {
				return
			}
		}
	}
}

func providerMismatches(entry *catalog.ProviderEntry, r *table.Row) []string {
	var cols []string
	if s := r.String(focus.ServiceName); s != "" && !entry.OfferService(s) {
		cols = append(cols, focus.ServiceName)
	}
	if s := r.String(focus.PublisherName); s != "" && !entry.HasPublisher(s) {
		cols = append(cols, focus.PublisherName)
	}

	regionID := r.String(focus.RegionId)
	region, regionKnown := entry.Region(regionID)
	if regionID != "" && !regionKnown {
		cols = append(cols, focus.RegionId)
	}

	if zone := r.String(focus.AvailabilityZone); zone != "" {
		switch {
		case !entry.HasZone(zone):
			cols = append(cols, focus.AvailabilityZone)
		case regionKnown && !containsString(region.Zones, zone):
			cols = append(cols, focus.AvailabilityZone)
		}
	}
	return cols
}

// value returns the column value, nil when absent
func value(r *table.Row, column string) any {
	v, _ := r.Get(column)
	return v
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch val := v.(type) {
	case decimal.Decimal:
		return val, true
	case string:
		d, err := decimal.NewFromString(val)
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(val), true
	case int:
		return decimal.NewFromInt(int64(val)), true
	case int64:
		return decimal.NewFromInt(val), true
	}
	return decimal.Decimal{}, false
}

func toTime(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case string:
		t, err := table.ParseDateTime(val)
		return t, err == nil
	}
	return time.Time{}, false
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
