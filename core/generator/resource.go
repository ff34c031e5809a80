package generator

import (
	"focusgen/core/focus"
)

type resourceStyle struct {
	idPrefix   string
	namePrefix string
	types      []string
}

var resourceStyles = map[string]resourceStyle{
	focus.CategoryCompute:    {"i-", "web-server-", []string{"Instance", "Container", "Function", "GPU Instance"}},
	focus.CategoryStorage:    {"vol-", "data-volume-", []string{"Block Storage", "Object Storage", "File Storage"}},
	focus.CategoryDatabases:  {"db-", "prod-db-", []string{"Relational DB", "NoSQL DB", "Cache", "Data Warehouse"}},
	focus.CategoryNetworking: {"vpc-", "resource-", []string{"Load Balancer", "VPC", "Subnet", "NAT Gateway"}},
	focus.CategoryAIML:       {"res-", "resource-", []string{"ML Model", "Training Job", "Inference Endpoint"}},
}

var defaultResourceStyle = resourceStyle{"res-", "resource-", []string{"Other"}}

// ResourceGenerator shapes resource identity after the service category
type ResourceGenerator struct {
	family
}

// NewResourceGenerator creates the resource generator
func NewResourceGenerator() *ResourceGenerator {
	return &ResourceGenerator{newFamily("resource", focus.ResourceId, focus.ResourceName, focus.ResourceType)}
}

// Generate implements Generator
func (g *ResourceGenerator) Generate(ctx *Context) (any, error) {
	style, ok := resourceStyles[ctx.Row.String(focus.ServiceCategory)]
	if !ok {
		style = defaultResourceStyle
	}

	switch ctx.Column {
	case focus.ResourceId:
		return style.idPrefix + hexID(ctx.Rand, 8), nil
	case focus.ResourceName:
		id := ctx.Row.String(focus.ResourceId)
		if id == "" {
			id = "unknown"
		}
		return style.namePrefix + suffix(id, 4), nil
	case focus.ResourceType:
		return pick(ctx.Rand, style.types), nil
	}
	return nil, g.unsupported(ctx.Column)
}
