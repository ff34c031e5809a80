package generator

import (
	"strings"

	"focusgen/core/focus"
)

type quantityRange struct {
	lo, hi float64
}

var consumedRanges = map[string]quantityRange{
	focus.CategoryCompute:    {1, 720},
	focus.CategoryStorage:    {1, 10000},
	focus.CategoryDatabases:  {1, 1000},
	focus.CategoryNetworking: {0.1, 1000},
}

var consumedUnits = map[string][]string{
	focus.CategoryCompute:    {"Hours", "vCPU-Hours", "Instance-Hours"},
	focus.CategoryStorage:    {"GB", "GB-Month", "TB", "Requests"},
	focus.CategoryDatabases:  {"GB-Month", "Hours", "RCU", "WCU"},
	focus.CategoryNetworking: {"GB", "Requests", "Hours"},
	focus.CategoryAIML:       {"Requests", "Training-Hours", "Inference-Hours"},
	focus.CategoryOther:      {"Hours", "Requests", "Units"},
}

// UsageMetricsGenerator produces consumption columns. Only usage charges
// consume anything.
type UsageMetricsGenerator struct {
	family
}

// NewUsageMetricsGenerator creates the usage metrics generator
func NewUsageMetricsGenerator() *UsageMetricsGenerator {
	return &UsageMetricsGenerator{newFamily("usage", focus.ConsumedQuantity, focus.ConsumedUnit, focus.SkuMeter)}
}

// Generate implements Generator
func (g *UsageMetricsGenerator) Generate(ctx *Context) (any, error) {
	category := ctx.Row.String(focus.ServiceCategory)
	switch ctx.Column {
	case focus.ConsumedQuantity:
		if chance(ctx.Rand, 0.3) || ctx.Row.String(focus.ChargeCategory) != focus.ChargeUsage {
			return nil, nil
		}
		r, ok := consumedRanges[category]
		if !ok {
			r = quantityRange{1, 100}
		}
		return uniformDecimal(ctx.Rand, r.lo, r.hi, 2), nil

	case focus.ConsumedUnit:
		if ctx.Row.IsNull(focus.ConsumedQuantity) {
			return nil, nil
		}
		units, ok := consumedUnits[category]
		if !ok {
			return "Units", nil
		}
		return pick(ctx.Rand, units), nil

	case focus.SkuMeter:
		if chance(ctx.Rand, 0.4) {
			return nil, nil
		}
		return skuMeter(category, ctx.Row.String(focus.ConsumedUnit)), nil
	}
	return nil, g.unsupported(ctx.Column)
}

func skuMeter(category, unit string) string {
	switch {
	case category == focus.CategoryCompute && strings.Contains(unit, "Hours"):
		return "Instance runtime"
	case category == focus.CategoryStorage && strings.Contains(unit, "GB"):
		return "Storage capacity"
	case category == focus.CategoryDatabases:
		return "Database runtime"
	case category == focus.CategoryNetworking:
		return "Data transfer"
	case category == focus.CategoryAIML:
		return "ML processing"
	}
	return "Service usage"
}
