package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusgen/core/focus"
	"focusgen/internal/errors"
)

// TestColumnOrderIsTopological proves every generator reads only columns
// that were generated before it
func TestColumnOrderIsTopological(t *testing.T) {
	require.NoError(t, CheckOrder(ColumnOrder, Dependencies))
}

func TestColumnOrderCoversRegistry(t *testing.T) {
	assert.Len(t, ColumnOrder, focus.Default().Len())
	assert.ElementsMatch(t, focus.Default().Columns(), ColumnOrder)
}

func TestCheckOrderRejectsBadOrders(t *testing.T) {
	tests := []struct {
		name  string
		order []string
		deps  map[string][]string
	}{
		{"dependency after", []string{"PricingQuantity", "ChargeClass"}, map[string][]string{"PricingQuantity": {"ChargeClass"}}},
		{"dependency missing", []string{"PricingQuantity"}, map[string][]string{"PricingQuantity": {"ChargeClass"}}},
		{"column missing", []string{"ChargeClass"}, map[string][]string{"PricingQuantity": {"ChargeClass"}}},
		{"duplicate", []string{"ChargeClass", "ChargeClass"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, CheckOrder(tt.order, tt.deps))
		})
	}
}

// TestDispatcherExclusivity proves no column is claimed by two generators
// and every registry column has a specialized owner
func TestDispatcherExclusivity(t *testing.T) {
	d := NewDefaultDispatcher()
	for _, col := range focus.Default().Columns() {
		owners := d.Owners(col)
		require.Len(t, owners, 1, "column %s", col)

		g, err := d.Resolve(col)
		require.NoError(t, err)
		assert.Equal(t, owners[0].Name(), g.Name())
	}

	stats := d.Stats()
	assert.Equal(t, 16, stats.Generators)
	assert.Equal(t, 50, stats.Columns)
	assert.True(t, stats.Fallback)
}

func TestResolveFallsBackToGeneric(t *testing.T) {
	d := NewDefaultDispatcher()
	g, err := d.Resolve("x_CustomColumn")
	require.NoError(t, err)
	assert.Equal(t, "generic", g.Name())

	gens := d.Generators()
	assert.Equal(t, "generic", gens[len(gens)-1].Name())
}

func TestResolveWithoutFallback(t *testing.T) {
	d := NewDispatcher(nil)
	d.Register(NewChargeGenerator())

	_, err := d.Resolve(focus.SkuId)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeUnknownColumn))
}

type stubGenerator struct {
	family
}

func (s *stubGenerator) Generate(*Context) (any, error) { return "stub", nil }

func TestRegisterSafeRejectsOverlap(t *testing.T) {
	d := NewDefaultDispatcher()

	err := d.RegisterSafe(&stubGenerator{newFamily("sku-override", focus.SkuId)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SkuId")

	err = d.RegisterSafe(&stubGenerator{newFamily("charge", "x_Other")})
	assert.Error(t, err)

	err = d.RegisterSafe(&stubGenerator{newFamily("empty")})
	assert.Error(t, err)

	assert.Panics(t, func() { d.Register(NewSkuGenerator()) })
}

// TestRegisterRoutesBeforeFallback proves runtime registration extends
// dispatch without touching existing generators
func TestRegisterRoutesBeforeFallback(t *testing.T) {
	d := NewDefaultDispatcher()
	require.NoError(t, d.RegisterSafe(&stubGenerator{newFamily("custom", "x_Team")}))

	g, err := d.Resolve("x_Team")
	require.NoError(t, err)
	assert.Equal(t, "custom", g.Name())
}
