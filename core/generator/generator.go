// Package generator - Column value generators
// Each generator owns a cohesive family of FOCUS columns and produces one
// value per call from the partial row built so far plus the dataset
// parameters. Generators are stateless; all randomness comes from the
// row's own source so a seeded dataset is reproducible.
package generator

import (
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"focusgen/core/catalog"
	"focusgen/core/focus"
	"focusgen/core/profile"
	"focusgen/internal/errors"
)

// Generator produces values for the columns it owns
type Generator interface {
	// Name identifies the generator in errors and stats
	Name() string

	// Columns lists the owned columns. The fallback returns nil.
	Columns() []string

	// Owns reports whether the generator is authoritative for the column
	Owns(column string) bool

	// Generate returns the column value. nil is null.
	Generate(ctx *Context) (any, error)
}

// View is the read-only partial row a generator sees
type View interface {
	Get(column string) (any, bool)
	Has(column string) bool
	IsNull(column string) bool
	String(column string) string
	Decimal(column string) (decimal.Decimal, bool)
}

// Params are the dataset-level generation parameters, shared read-only
// by every row
type Params struct {
	RowCount     int
	Profile      profile.Profile
	Distribution profile.Distribution
	Provider     catalog.Provider

	// TotalCost is the dataset-level BilledCost target
	TotalCost decimal.Decimal

	// BillingPeriod is the first instant of the billing month, UTC
	BillingPeriod time.Time

	Currency string

	// Catalog defaults to catalog.Default()
	Catalog *catalog.Catalog
}

// DefaultBillingPeriod is used when no billing period is requested
var DefaultBillingPeriod = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultCurrency is the BillingCurrency when none is requested
const DefaultCurrency = "USD"

// MonthStart truncates t to the first instant of its month in UTC
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// BillingPeriodStart returns the start of the billing month
func (p *Params) BillingPeriodStart() time.Time {
	if p.BillingPeriod.IsZero() {
		return DefaultBillingPeriod
	}
	return MonthStart(p.BillingPeriod)
}

// BillingPeriodEnd returns the exclusive end of the billing month
func (p *Params) BillingPeriodEnd() time.Time {
	return p.BillingPeriodStart().AddDate(0, 1, 0)
}

// BillingDays returns the number of days in the billing month
func (p *Params) BillingDays() int {
	return int(p.BillingPeriodEnd().Sub(p.BillingPeriodStart()).Hours() / 24)
}

// BillingCurrency returns the dataset currency
func (p *Params) BillingCurrency() string {
	if p.Currency == "" {
		return DefaultCurrency
	}
	return p.Currency
}

// Entry returns the catalog entry of the dataset provider
func (p *Params) Entry() (*catalog.ProviderEntry, error) {
	c := p.Catalog
	if c == nil {
		c = catalog.Default()
	}
	return c.Lookup(p.Provider)
}

// Context is one generator invocation. Built fresh per column per row and
// never mutated after creation.
type Context struct {
	Column     string
	RowIndex   int
	Row        View
	Params     *Params
	Descriptor focus.Descriptor
	Rand       *rand.Rand
}

// family is the shared ownership half of every specialized generator
type family struct {
	name    string
	columns []string
}

func newFamily(name string, columns ...string) family {
	return family{name: name, columns: columns}
}

func (f family) Name() string {
	return f.name
}

func (f family) Columns() []string {
	out := make([]string, len(f.columns))
	copy(out, f.columns)
	return out
}

func (f family) Owns(column string) bool {
	for _, c := range f.columns {
		if c == column {
			return true
		}
	}
	return false
}

// unsupported is returned when a generator is handed a column it does not own
func (f family) unsupported(column string) error {
	return errors.UnknownColumn(column).WithContext("generator", f.name)
}
