package generator

import (
	"github.com/shopspring/decimal"

	"focusgen/core/focus"
	"focusgen/internal/errors"
)

// CostGenerator allocates BilledCost as a randomized share of the dataset
// total. The sum over all rows approximates the total; it is not exact.
type CostGenerator struct {
	family
}

// NewCostGenerator creates the cost allocation generator
func NewCostGenerator() *CostGenerator {
	return &CostGenerator{newFamily("cost", focus.BilledCost)}
}

// Generate implements Generator
func (g *CostGenerator) Generate(ctx *Context) (any, error) {
	if ctx.Column != focus.BilledCost {
		return nil, g.unsupported(ctx.Column)
	}
	if ctx.Params.RowCount <= 0 {
		return nil, errors.Newf(errors.TypeGeneration, "row count must be positive, got %d", ctx.Params.RowCount)
	}
	base := ctx.Params.TotalCost.Div(decimal.NewFromInt(int64(ctx.Params.RowCount)))
	return scale(ctx.Rand, base, 0.8, 1.2, 2), nil
}

// CostDetailsGenerator derives the remaining cost and unit price columns
// from BilledCost
type CostDetailsGenerator struct {
	family
}

// NewCostDetailsGenerator creates the cost details generator
func NewCostDetailsGenerator() *CostDetailsGenerator {
	return &CostDetailsGenerator{newFamily("cost-details",
		focus.EffectiveCost,
		focus.ListCost,
		focus.ContractedCost,
		focus.ListUnitPrice,
		focus.ContractedUnitPrice,
	)}
}

// Generate implements Generator
func (g *CostDetailsGenerator) Generate(ctx *Context) (any, error) {
	billed, _ := ctx.Row.Decimal(focus.BilledCost)
	positive := billed.IsPositive()

	switch ctx.Column {
	case focus.EffectiveCost:
		if !positive {
			return billed, nil
		}
		return scale(ctx.Rand, billed, 0.85, 1.05, 2), nil

	case focus.ListCost:
		if !positive {
			return billed, nil
		}
		return scale(ctx.Rand, billed, 1.1, 1.5, 2), nil

	case focus.ContractedCost:
		if effective, ok := ctx.Row.Decimal(focus.EffectiveCost); ok && effective.IsPositive() {
			return effective, nil
		}
		if positive {
			return scale(ctx.Rand, billed, 0.9, 1.1, 2), nil
		}
		return uniformDecimal(ctx.Rand, 0.01, 1, 2), nil

	case focus.ListUnitPrice:
		qty, hasQty := ctx.Row.Decimal(focus.PricingQuantity)
		list, hasList := ctx.Row.Decimal(focus.ListCost)
		if hasQty && hasList && qty.IsPositive() {
			return list.Div(qty).Round(4), nil
		}
		return uniformDecimal(ctx.Rand, 0.01, 10, 4), nil

	case focus.ContractedUnitPrice:
		list, ok := ctx.Row.Decimal(focus.ListUnitPrice)
		if !ok || list.IsZero() {
			return nil, nil
		}
		return scale(ctx.Rand, list, 0.7, 0.95, 4), nil
	}
	return nil, g.unsupported(ctx.Column)
}
