// Package generator - Generator dispatcher
// Routes a column to the single generator authoritative for it.
// Specialized generators are tried in registration order; the fallback
// is always tried last.
package generator

import (
	"fmt"
	"sync"

	"focusgen/internal/errors"
)

// Dispatcher holds the ordered generator list
type Dispatcher struct {
	mu          sync.RWMutex
	specialized []Generator
	fallback    Generator
}

// NewDispatcher creates a dispatcher with an optional fallback
func NewDispatcher(fallback Generator) *Dispatcher {
	return &Dispatcher{fallback: fallback}
}

// NewDefaultDispatcher registers every column family plus the generic
// fallback
func NewDefaultDispatcher() *Dispatcher {
	d := NewDispatcher(NewGenericGenerator())
	for _, g := range DefaultGenerators() {
		d.Register(g)
	}
	return d
}

// DefaultGenerators returns one instance of every specialized family
func DefaultGenerators() []Generator {
	return []Generator{
		NewChargeGenerator(),
		NewCostGenerator(),
		NewDateTimeGenerator(),
		NewServiceCategoryGenerator(),
		NewSkuGenerator(),
		NewCommitmentDiscountGenerator(),
		NewCapacityReservationGenerator(),
		NewPricingGenerator(),
		NewResourceGenerator(),
		NewAccountGenerator(),
		NewCostDetailsGenerator(),
		NewLocationGenerator(),
		NewServiceCatalogGenerator(),
		NewUsageMetricsGenerator(),
		NewProviderGenerator(),
		NewMetadataGenerator(),
	}
}

// Register adds a specialized generator ahead of the fallback.
// Panics if it overlaps an existing generator (fail fast).
func (d *Dispatcher) Register(g Generator) {
	if err := d.RegisterSafe(g); err != nil {
		panic(err.Error())
	}
}

// RegisterSafe adds a specialized generator returning error instead of panic
func (d *Dispatcher) RegisterSafe(g Generator) error {
	cols := g.Columns()
	if len(cols) == 0 {
		return fmt.Errorf("generator %s declares no columns", g.Name())
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.specialized {
		if existing.Name() == g.Name() {
			return fmt.Errorf("generator already registered: %s", g.Name())
		}
		for _, col := range cols {
			if existing.Owns(col) {
				return fmt.Errorf("column %s already owned by generator %s", col, existing.Name())
			}
		}
	}

	d.specialized = append(d.specialized, g)
	return nil
}

// Resolve returns the generator for a column
func (d *Dispatcher) Resolve(column string) (Generator, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, g := range d.specialized {
		if g.Owns(column) {
			return g, nil
		}
	}
	if d.fallback != nil && d.fallback.Owns(column) {
		return d.fallback, nil
	}
	return nil, errors.UnknownColumn(column)
}

// Owners returns every specialized generator claiming the column
func (d *Dispatcher) Owners(column string) []Generator {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var result []Generator
	for _, g := range d.specialized {
		if g.Owns(column) {
			result = append(result, g)
		}
	}
	return result
}

// Generators returns the dispatch order, fallback last
func (d *Dispatcher) Generators() []Generator {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Generator, 0, len(d.specialized)+1)
	out = append(out, d.specialized...)
	if d.fallback != nil {
		out = append(out, d.fallback)
	}
	return out
}

// Stats returns dispatcher statistics
func (d *Dispatcher) Stats() DispatcherStats {
	d.mu.RLock()
	defer d.mu.RUnlock()

	stats := DispatcherStats{
		ByGenerator: make(map[string]int),
		Fallback:    d.fallback != nil,
	}
	for _, g := range d.specialized {
		n := len(g.Columns())
		stats.ByGenerator[g.Name()] = n
		stats.Columns += n
		stats.Generators++
	}
	return stats
}

// DispatcherStats holds dispatcher statistics
type DispatcherStats struct {
	Generators  int
	Columns     int
	Fallback    bool
	ByGenerator map[string]int
}
