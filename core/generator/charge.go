package generator

import (
	"focusgen/core/focus"
	"focusgen/core/profile"
)

var chargeCategoryWeights = []profile.Weight{
	{Category: focus.ChargeUsage, Weight: 0.70},
	{Category: focus.ChargePurchase, Weight: 0.15},
	{Category: focus.ChargeTax, Weight: 0.05},
	{Category: focus.ChargeCredit, Weight: 0.05},
	{Category: focus.ChargeAdjustment, Weight: 0.05},
}

var (
	allFrequencies      = []string{focus.FrequencyOneTime, focus.FrequencyRecurring, focus.FrequencyUsageBased}
	purchaseFrequencies = []string{focus.FrequencyOneTime, focus.FrequencyRecurring}
)

// ChargeGenerator draws the charge category and its frequency
type ChargeGenerator struct {
	family
}

// NewChargeGenerator creates the charge family generator
func NewChargeGenerator() *ChargeGenerator {
	return &ChargeGenerator{newFamily("charge", focus.ChargeCategory, focus.ChargeFrequency)}
}

// Generate implements Generator
func (g *ChargeGenerator) Generate(ctx *Context) (any, error) {
	switch ctx.Column {
	case focus.ChargeCategory:
		return weighted(ctx.Rand, chargeCategoryWeights), nil
	case focus.ChargeFrequency:
		// Purchases are never usage-based
		if ctx.Row.String(focus.ChargeCategory) == focus.ChargePurchase {
			return pick(ctx.Rand, purchaseFrequencies), nil
		}
		return pick(ctx.Rand, allFrequencies), nil
	}
	return nil, g.unsupported(ctx.Column)
}

var pricingCategories = []string{"Standard", "Dynamic", "Committed", "Other"}

// PricingGenerator owns ChargeClass and the pricing quantity it gates.
// ChargeClass must be generated before PricingQuantity.
type PricingGenerator struct {
	family
}

// NewPricingGenerator creates the pricing family generator
func NewPricingGenerator() *PricingGenerator {
	return &PricingGenerator{newFamily("pricing", focus.ChargeClass, focus.PricingQuantity, focus.PricingCategory)}
}

// Generate implements Generator
func (g *PricingGenerator) Generate(ctx *Context) (any, error) {
	switch ctx.Column {
	case focus.ChargeClass:
		if chance(ctx.Rand, 0.1) {
			return focus.ChargeClassCorrection, nil
		}
		return nil, nil
	case focus.PricingQuantity:
		return g.quantity(ctx), nil
	case focus.PricingCategory:
		return pick(ctx.Rand, pricingCategories), nil
	}
	return nil, g.unsupported(ctx.Column)
}

func (g *PricingGenerator) quantity(ctx *Context) any {
	category := ctx.Row.String(focus.ChargeCategory)
	correction := ctx.Row.String(focus.ChargeClass) == focus.ChargeClassCorrection

	switch {
	case category == focus.ChargeUsage && !correction:
		return uniformDecimal(ctx.Rand, 1, 100, 2)
	case category == focus.ChargePurchase || category == focus.ChargeTax:
		if chance(ctx.Rand, 0.7) {
			return nil
		}
		return uniformDecimal(ctx.Rand, 1, 10, 2)
	default:
		if chance(ctx.Rand, 0.5) {
			return uniformDecimal(ctx.Rand, 1, 50, 2)
		}
		return nil
	}
}
