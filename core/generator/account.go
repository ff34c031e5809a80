package generator

import (
	"focusgen/core/focus"
)

var (
	billingAccountNames = []string{"Acme Corp", "TechStart Inc", "Global Systems", "Data Dynamics", "Cloud Solutions"}
	subAccountNames     = []string{"Production", "Development", "Testing", "Staging", "Analytics"}
)

// AccountGenerator produces billing and sub account identity
type AccountGenerator struct {
	family
}

// NewAccountGenerator creates the account generator
func NewAccountGenerator() *AccountGenerator {
	return &AccountGenerator{newFamily("account",
		focus.BillingAccountId,
		focus.BillingAccountName,
		focus.SubAccountId,
		focus.SubAccountName,
		focus.BillingCurrency,
	)}
}

// Generate implements Generator
func (g *AccountGenerator) Generate(ctx *Context) (any, error) {
	switch ctx.Column {
	case focus.BillingAccountId, focus.SubAccountId:
		return digits(ctx.Rand, 12), nil
	case focus.BillingAccountName:
		return pick(ctx.Rand, billingAccountNames), nil
	case focus.SubAccountName:
		return pick(ctx.Rand, subAccountNames), nil
	case focus.BillingCurrency:
		// One currency per dataset
		return ctx.Params.BillingCurrency(), nil
	}
	return nil, g.unsupported(ctx.Column)
}
