package generator

import (
	"focusgen/core/focus"
)

// ProviderGenerator produces provider identity from the catalog entry of
// the dataset provider
type ProviderGenerator struct {
	family
}

// NewProviderGenerator creates the provider identity generator
func NewProviderGenerator() *ProviderGenerator {
	return &ProviderGenerator{newFamily("provider", focus.ProviderName, focus.PublisherName, focus.InvoiceIssuerName)}
}

// Generate implements Generator
func (g *ProviderGenerator) Generate(ctx *Context) (any, error) {
	if !g.Owns(ctx.Column) {
		return nil, g.unsupported(ctx.Column)
	}
	entry, err := ctx.Params.Entry()
	if err != nil {
		return nil, err
	}
	switch ctx.Column {
	case focus.ProviderName:
		return entry.DisplayName, nil
	case focus.PublisherName:
		return pick(ctx.Rand, entry.Publishers), nil
	default: // InvoiceIssuerName
		return pick(ctx.Rand, entry.InvoiceIssuers), nil
	}
}
