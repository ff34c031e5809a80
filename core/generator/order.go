package generator

import (
	"fmt"

	"focusgen/core/focus"
)

// ColumnOrder is the generation order of a row. Any column whose
// generator reads another column comes after it; TestColumnOrderIsTopological
// holds this against Dependencies.
var ColumnOrder = []string{
	// Provider identity
	focus.ProviderName,
	focus.PublisherName,
	focus.InvoiceIssuerName,

	// Accounts
	focus.BillingAccountId,
	focus.BillingAccountName,
	focus.SubAccountId,
	focus.SubAccountName,
	focus.BillingCurrency,

	// Periods
	focus.BillingPeriodStart,
	focus.BillingPeriodEnd,
	focus.ChargePeriodStart,
	focus.ChargePeriodEnd,

	// Charge classification
	focus.ChargeCategory,
	focus.ChargeFrequency,
	focus.ChargeClass,

	// Service
	focus.ServiceCategory,
	focus.ServiceName,
	focus.ServiceSubcategory,

	// Location
	focus.RegionId,
	focus.RegionName,
	focus.AvailabilityZone,

	// Resource
	focus.ResourceId,
	focus.ResourceName,
	focus.ResourceType,

	// SKU and pricing
	focus.SkuId,
	focus.SkuPriceId,
	focus.PricingUnit,
	focus.PricingCategory,
	focus.PricingQuantity,

	// Usage
	focus.ConsumedQuantity,
	focus.ConsumedUnit,
	focus.SkuMeter,

	// Costs
	focus.BilledCost,
	focus.EffectiveCost,
	focus.ListCost,
	focus.ContractedCost,
	focus.ListUnitPrice,
	focus.ContractedUnitPrice,

	// Commitment discount chain
	focus.CommitmentDiscountId,
	focus.CommitmentDiscountType,
	focus.CommitmentDiscountName,
	focus.CommitmentDiscountStatus,
	focus.CommitmentDiscountCategory,
	focus.CommitmentDiscountQuantity,
	focus.CommitmentDiscountUnit,

	// Capacity reservation chain
	focus.CapacityReservationId,
	focus.CapacityReservationStatus,

	// Free-form metadata
	focus.SkuPriceDetails,
	focus.Tags,
	focus.ChargeDescription,
}

// Dependencies maps a column to the columns its generator reads from the
// partial row
var Dependencies = map[string][]string{
	focus.ChargePeriodEnd: {focus.ChargePeriodStart},
	focus.ChargeFrequency: {focus.ChargeCategory},

	focus.ServiceName:        {focus.ServiceCategory},
	focus.ServiceSubcategory: {focus.ServiceCategory},

	focus.RegionName:       {focus.RegionId},
	focus.AvailabilityZone: {focus.RegionId},

	focus.ResourceId:   {focus.ServiceCategory},
	focus.ResourceName: {focus.ServiceCategory, focus.ResourceId},
	focus.ResourceType: {focus.ServiceCategory},

	focus.SkuId:           {focus.ChargeCategory},
	focus.SkuPriceId:      {focus.ChargeCategory},
	focus.PricingUnit:     {focus.ChargeCategory},
	focus.PricingQuantity: {focus.ChargeCategory, focus.ChargeClass},

	focus.ConsumedQuantity: {focus.ChargeCategory, focus.ServiceCategory},
	focus.ConsumedUnit:     {focus.ConsumedQuantity, focus.ServiceCategory},
	focus.SkuMeter:         {focus.ServiceCategory, focus.ConsumedUnit},

	focus.EffectiveCost:       {focus.BilledCost},
	focus.ListCost:            {focus.BilledCost},
	focus.ContractedCost:      {focus.BilledCost, focus.EffectiveCost},
	focus.ListUnitPrice:       {focus.ListCost, focus.PricingQuantity},
	focus.ContractedUnitPrice: {focus.ListUnitPrice},

	focus.CommitmentDiscountType:     {focus.CommitmentDiscountId},
	focus.CommitmentDiscountName:     {focus.CommitmentDiscountId, focus.CommitmentDiscountType},
	focus.CommitmentDiscountStatus:   {focus.CommitmentDiscountId, focus.ChargeCategory},
	focus.CommitmentDiscountCategory: {focus.CommitmentDiscountId},
	focus.CommitmentDiscountQuantity: {focus.CommitmentDiscountId, focus.ChargeCategory},
	focus.CommitmentDiscountUnit:     {focus.CommitmentDiscountId},

	focus.CapacityReservationStatus: {focus.CapacityReservationId},

	focus.SkuPriceDetails:   {focus.ServiceCategory},
	focus.ChargeDescription: {focus.ServiceName, focus.ChargeCategory, focus.RegionName, focus.ConsumedUnit},
}

// CheckOrder verifies that order lists every column once and places each
// column after its dependencies
func CheckOrder(order []string, deps map[string][]string) error {
	position := make(map[string]int, len(order))
	for i, col := range order {
		if _, dup := position[col]; dup {
			return fmt.Errorf("column %s appears twice in the order", col)
		}
		position[col] = i
	}
	for col, needs := range deps {
		at, ok := position[col]
		if !ok {
			return fmt.Errorf("column %s has dependencies but is not ordered", col)
		}
		for _, need := range needs {
			before, ok := position[need]
			if !ok {
				return fmt.Errorf("%s depends on %s, which is not ordered", col, need)
			}
			if before >= at {
				return fmt.Errorf("%s depends on %s, which is ordered after it", col, need)
			}
		}
	}
	return nil
}
