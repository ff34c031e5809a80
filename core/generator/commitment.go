package generator

import (
	"focusgen/core/focus"
)

var (
	commitmentStatuses   = []string{focus.StatusUsed, focus.StatusUnused}
	commitmentCategories = []string{"Spend", "Usage"}
	commitmentTypes      = []string{"Reserved", "SavingsPlan", "Custom"}
	commitmentUnits      = []string{"Hours", "GB", "Requests"}
)

// CommitmentDiscountGenerator produces the commitment discount chain.
// Every dependent column is null unless CommitmentDiscountId is set;
// status and quantity additionally require a usage charge.
type CommitmentDiscountGenerator struct {
	family
}

// NewCommitmentDiscountGenerator creates the commitment discount generator
func NewCommitmentDiscountGenerator() *CommitmentDiscountGenerator {
	return &CommitmentDiscountGenerator{newFamily("commitment-discount",
		focus.CommitmentDiscountId,
		focus.CommitmentDiscountType,
		focus.CommitmentDiscountStatus,
		focus.CommitmentDiscountCategory,
		focus.CommitmentDiscountQuantity,
		focus.CommitmentDiscountUnit,
	)}
}

// Generate implements Generator
func (g *CommitmentDiscountGenerator) Generate(ctx *Context) (any, error) {
	if ctx.Column == focus.CommitmentDiscountId {
		if chance(ctx.Rand, 0.2) {
			return "CD-" + hexID(ctx.Rand, 4), nil
		}
		return nil, nil
	}
	if !g.Owns(ctx.Column) {
		return nil, g.unsupported(ctx.Column)
	}
	if ctx.Row.IsNull(focus.CommitmentDiscountId) {
		return nil, nil
	}

	usage := ctx.Row.String(focus.ChargeCategory) == focus.ChargeUsage
	switch ctx.Column {
	case focus.CommitmentDiscountType:
		return pick(ctx.Rand, commitmentTypes), nil
	case focus.CommitmentDiscountCategory:
		return pick(ctx.Rand, commitmentCategories), nil
	case focus.CommitmentDiscountUnit:
		return pick(ctx.Rand, commitmentUnits), nil
	case focus.CommitmentDiscountStatus:
		if !usage {
			return nil, nil
		}
		return pick(ctx.Rand, commitmentStatuses), nil
	default: // CommitmentDiscountQuantity
		if !usage {
			return nil, nil
		}
		return uniformDecimal(ctx.Rand, 1, 50, 2), nil
	}
}

// CapacityReservationGenerator produces the capacity reservation chain
type CapacityReservationGenerator struct {
	family
}

// NewCapacityReservationGenerator creates the capacity reservation generator
func NewCapacityReservationGenerator() *CapacityReservationGenerator {
	return &CapacityReservationGenerator{newFamily("capacity-reservation",
		focus.CapacityReservationId,
		focus.CapacityReservationStatus,
	)}
}

// Generate implements Generator
func (g *CapacityReservationGenerator) Generate(ctx *Context) (any, error) {
	switch ctx.Column {
	case focus.CapacityReservationId:
		if chance(ctx.Rand, 0.3) {
			return "CapRes-" + hexID(ctx.Rand, 4), nil
		}
		return nil, nil
	case focus.CapacityReservationStatus:
		if ctx.Row.IsNull(focus.CapacityReservationId) {
			return nil, nil
		}
		return pick(ctx.Rand, commitmentStatuses), nil
	}
	return nil, g.unsupported(ctx.Column)
}
