package generator

import (
	"focusgen/core/focus"
)

// ServiceCategoryGenerator draws ServiceCategory from the workload
// distribution's weight table
type ServiceCategoryGenerator struct {
	family
}

// NewServiceCategoryGenerator creates the service category generator
func NewServiceCategoryGenerator() *ServiceCategoryGenerator {
	return &ServiceCategoryGenerator{newFamily("service", focus.ServiceCategory)}
}

// Generate implements Generator
func (g *ServiceCategoryGenerator) Generate(ctx *Context) (any, error) {
	if ctx.Column != focus.ServiceCategory {
		return nil, g.unsupported(ctx.Column)
	}
	return weighted(ctx.Rand, ctx.Params.Distribution.CategoryWeights()), nil
}

var subcategories = map[string][]string{
	focus.CategoryCompute:    {"Virtual Machines", "Serverless Compute", "Containers"},
	focus.CategoryStorage:    {"Object Storage", "Block Storage", "File Storage", "Backup Storage"},
	focus.CategoryDatabases:  {"Relational Databases", "NoSQL Databases", "Data Warehouses", "Caching"},
	focus.CategoryNetworking: {"Network Infrastructure", "Content Delivery", "Network Security", "Application Networking"},
	focus.CategoryAIML:       {"Machine Learning", "Generative AI", "AI Platforms", "Natural Language Processing"},
	focus.CategoryOther:      {"Other (Other)", "Identity and Access Management", "Observability"},
}

// ServiceCatalogGenerator picks the provider's offering for the row's
// category. Drawing ServiceName from the provider's own catalog is what
// keeps it consistent with ProviderName.
type ServiceCatalogGenerator struct {
	family
}

// NewServiceCatalogGenerator creates the service catalog generator
func NewServiceCatalogGenerator() *ServiceCatalogGenerator {
	return &ServiceCatalogGenerator{newFamily("service-catalog", focus.ServiceName, focus.ServiceSubcategory)}
}

// Generate implements Generator
func (g *ServiceCatalogGenerator) Generate(ctx *Context) (any, error) {
	category := ctx.Row.String(focus.ServiceCategory)
	switch ctx.Column {
	case focus.ServiceName:
		entry, err := ctx.Params.Entry()
		if err != nil {
			return nil, err
		}
		return pick(ctx.Rand, entry.ServicesFor(category)), nil
	case focus.ServiceSubcategory:
		subs, ok := subcategories[category]
		if !ok {
			return "Other (Other)", nil
		}
		return pick(ctx.Rand, subs), nil
	}
	return nil, g.unsupported(ctx.Column)
}
