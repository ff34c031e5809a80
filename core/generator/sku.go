package generator

import (
	"focusgen/core/focus"
)

var pricingUnits = []string{"Hours", "GB-Hours", "Requests", "Transactions"}

// SkuGenerator produces SKU identifiers. Tax rows have no SKU.
type SkuGenerator struct {
	family
}

// NewSkuGenerator creates the SKU generator
func NewSkuGenerator() *SkuGenerator {
	return &SkuGenerator{newFamily("sku", focus.SkuId, focus.SkuPriceId, focus.PricingUnit)}
}

// Generate implements Generator
func (g *SkuGenerator) Generate(ctx *Context) (any, error) {
	category := ctx.Row.String(focus.ChargeCategory)
	switch ctx.Column {
	case focus.SkuId:
		if category == focus.ChargeTax {
			return nil, nil
		}
		return "SKU-" + hexID(ctx.Rand, 4), nil
	case focus.SkuPriceId:
		if category == focus.ChargeTax {
			return nil, nil
		}
		return "SKUPRICE-" + hexID(ctx.Rand, 4), nil
	case focus.PricingUnit:
		if category == focus.ChargeUsage || category == focus.ChargePurchase {
			return pick(ctx.Rand, pricingUnits), nil
		}
		return nil, nil
	}
	return nil, g.unsupported(ctx.Column)
}
