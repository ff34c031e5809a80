package generator

import (
	"fmt"
	"strconv"

	"focusgen/core/focus"
)

var tagCategories = []struct {
	key    string
	values []string
}{
	{"Environment", []string{"Production", "Development", "Staging", "Testing"}},
	{"Project", []string{"WebApp", "DataPipeline", "Analytics", "ML-Training", "Backup"}},
	{"Owner", []string{"Engineering", "DataScience", "DevOps", "Finance", "Marketing"}},
	{"CostCenter", []string{"CC-1001", "CC-2002", "CC-3003", "CC-4004"}},
	{"Application", []string{"WebServer", "Database", "LoadBalancer", "Cache", "Storage"}},
}

var skuFamilies = map[string]string{
	focus.CategoryCompute:    "Compute Instance",
	focus.CategoryStorage:    "Storage",
	focus.CategoryDatabases:  "Database",
	focus.CategoryNetworking: "Network",
	focus.CategoryAIML:       "ML Service",
	focus.CategoryOther:      "General",
}

// MetadataGenerator produces free-form metadata: tags, SKU price details,
// the charge description and the commitment discount name
type MetadataGenerator struct {
	family
}

// NewMetadataGenerator creates the metadata generator
func NewMetadataGenerator() *MetadataGenerator {
	return &MetadataGenerator{newFamily("metadata",
		focus.Tags,
		focus.SkuPriceDetails,
		focus.ChargeDescription,
		focus.CommitmentDiscountName,
	)}
}

// Generate implements Generator
func (g *MetadataGenerator) Generate(ctx *Context) (any, error) {
	switch ctx.Column {
	case focus.Tags:
		return g.tags(ctx), nil
	case focus.SkuPriceDetails:
		return g.skuPriceDetails(ctx), nil
	case focus.ChargeDescription:
		return g.chargeDescription(ctx), nil
	case focus.CommitmentDiscountName:
		return g.commitmentName(ctx), nil
	}
	return nil, g.unsupported(ctx.Column)
}

func (g *MetadataGenerator) tags(ctx *Context) any {
	if chance(ctx.Rand, 0.4) {
		return nil
	}
	rng := ctx.Rand

	tags := make(map[string]string)
	n := intBetween(rng, 2, 4)
	for _, i := range rng.Perm(len(tagCategories))[:n] {
		tc := tagCategories[i]
		tags[tc.key] = pick(rng, tc.values)
	}

	if chance(rng, 0.3) {
		custom := [][2]string{
			{"CreatedBy", "AutomatedDeployment"},
			{"BillingCode", fmt.Sprintf("BC-%d", intBetween(rng, 1000, 9999))},
			{"Temporary", strconv.FormatBool(chance(rng, 0.5))},
		}
		for _, i := range rng.Perm(len(custom))[:intBetween(rng, 1, 2)] {
			tags[custom[i][0]] = custom[i][1]
		}
	}
	return tags
}

func (g *MetadataGenerator) skuPriceDetails(ctx *Context) any {
	if chance(ctx.Rand, 0.5) {
		return nil
	}
	rng := ctx.Rand
	category := ctx.Row.String(focus.ServiceCategory)

	skuFamily, ok := skuFamilies[category]
	if !ok {
		skuFamily = "General"
	}
	details := map[string]string{
		"sku_family":     skuFamily,
		"pricing_model":  pick(rng, []string{"OnDemand", "Reserved", "Spot", "Committed"}),
		"term_length":    pick(rng, []string{"None", "1yr", "3yr"}),
		"payment_option": pick(rng, []string{"NoUpfront", "PartialUpfront", "AllUpfront"}),
	}
	switch category {
	case focus.CategoryCompute:
		details["instance_type"] = pick(rng, []string{"t3.micro", "m5.large", "c5.xlarge", "r5.2xlarge"})
		details["operating_system"] = pick(rng, []string{"Linux", "Windows", "RHEL"})
	case focus.CategoryStorage:
		details["storage_class"] = pick(rng, []string{"Standard", "IA", "Archive", "Glacier"})
		details["redundancy"] = pick(rng, []string{"LRS", "ZRS", "GRS"})
	}
	return details
}

func (g *MetadataGenerator) chargeDescription(ctx *Context) any {
	if chance(ctx.Rand, 0.1) {
		return nil
	}
	service := ctx.Row.String(focus.ServiceName)
	if service == "" {
		service = "Cloud Service"
	}

	switch ctx.Row.String(focus.ChargeCategory) {
	case focus.ChargeUsage:
		region := ctx.Row.String(focus.RegionName)
		if region == "" {
			region = "unspecified region"
		}
		if unit := ctx.Row.String(focus.ConsumedUnit); unit != "" {
			return fmt.Sprintf("%s usage in %s - %s", service, region, unit)
		}
		return fmt.Sprintf("%s usage in %s", service, region)
	case focus.ChargePurchase:
		return service + " reserved capacity purchase"
	case focus.ChargeTax:
		return "Tax on " + service + " charges"
	case focus.ChargeCredit:
		return "Credit applied to " + service + " usage"
	case focus.ChargeAdjustment:
		return "Billing adjustment for " + service
	}
	return service + " charge"
}

func (g *MetadataGenerator) commitmentName(ctx *Context) any {
	if ctx.Row.IsNull(focus.CommitmentDiscountId) {
		return nil
	}
	switch ctx.Row.String(focus.CommitmentDiscountType) {
	case "Reserved":
		return numbered("Reserved Instance Plan", ctx.Rand, 1000, 9999)
	case "SavingsPlan":
		return numbered("Savings Plan", ctx.Rand, 100, 999)
	case "Custom":
		return numbered("Enterprise Agreement", ctx.Rand, 10, 99)
	}
	return numbered("Commitment Plan", ctx.Rand, 100, 999)
}
