package generator

import (
	"focusgen/core/focus"
	"focusgen/core/table"
)

// DateTimeGenerator fixes the billing period to one calendar month and
// gives each row a one-day charge period inside it. Rows beyond the
// month's length wrap to its first day, which keeps the charge period
// nested for any row count.
type DateTimeGenerator struct {
	family
}

// NewDateTimeGenerator creates the date/time generator
func NewDateTimeGenerator() *DateTimeGenerator {
	return &DateTimeGenerator{newFamily("datetime",
		focus.BillingPeriodStart,
		focus.BillingPeriodEnd,
		focus.ChargePeriodStart,
		focus.ChargePeriodEnd,
	)}
}

// Generate implements Generator
func (g *DateTimeGenerator) Generate(ctx *Context) (any, error) {
	p := ctx.Params
	switch ctx.Column {
	case focus.BillingPeriodStart:
		return table.FormatDateTime(p.BillingPeriodStart()), nil
	case focus.BillingPeriodEnd:
		return table.FormatDateTime(p.BillingPeriodEnd()), nil
	case focus.ChargePeriodStart:
		day := ctx.RowIndex % p.BillingDays()
		return table.FormatDateTime(p.BillingPeriodStart().AddDate(0, 0, day)), nil
	case focus.ChargePeriodEnd:
		start, err := table.ParseDateTime(ctx.Row.String(focus.ChargePeriodStart))
		if err != nil {
			return nil, err
		}
		return table.FormatDateTime(start.AddDate(0, 0, 1)), nil
	}
	return nil, g.unsupported(ctx.Column)
}
