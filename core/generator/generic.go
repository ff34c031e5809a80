package generator

import (
	"fmt"

	"focusgen/core/focus"
	"focusgen/core/table"
)

// GenericGenerator is the metadata-driven fallback. It claims every column
// and must be consulted last.
type GenericGenerator struct{}

// NewGenericGenerator creates the fallback generator
func NewGenericGenerator() *GenericGenerator {
	return &GenericGenerator{}
}

// Name implements Generator
func (g *GenericGenerator) Name() string { return "generic" }

// Columns implements Generator
func (g *GenericGenerator) Columns() []string { return nil }

// Owns implements Generator
func (g *GenericGenerator) Owns(string) bool { return true }

// Generate implements Generator
func (g *GenericGenerator) Generate(ctx *Context) (any, error) {
	d := ctx.Descriptor
	if d.Name == "" {
		var err error
		if d, err = focus.DescriptorFor(ctx.Column); err != nil {
			return nil, err
		}
	}

	if d.Nullable && chance(ctx.Rand, 0.1) {
		return nil, nil
	}
	if d.HasAllowedValues() && d.DataType == focus.TypeString {
		return pick(ctx.Rand, d.AllowedValues), nil
	}

	switch d.DataType {
	case focus.TypeDecimal:
		return uniformDecimal(ctx.Rand, 1, 500, 2), nil
	case focus.TypeDateTime:
		return table.FormatDateTime(ctx.Params.BillingPeriodStart()), nil
	case focus.TypeJSON:
		return map[string]string{"exampleKey": "exampleValue"}, nil
	case focus.TypeString:
		return fmt.Sprintf("%s_%d_%s", ctx.Column, ctx.RowIndex, hexID(ctx.Rand, 4)), nil
	}
	return nil, nil
}
