package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusgen/internal/errors"
)

func TestDefaultRegistryHasFiftyColumns(t *testing.T) {
	r := Default()
	assert.Equal(t, 50, r.Len())
	assert.Empty(t, r.Validate(DefaultValidationRules()))
}

func TestDescriptorFor(t *testing.T) {
	tests := []struct {
		column   string
		kind     Kind
		level    Level
		nullable bool
		dataType DataType
	}{
		{BilledCost, Metric, Mandatory, false, TypeDecimal},
		{ChargeCategory, Dimension, Mandatory, false, TypeString},
		{ChargeFrequency, Dimension, Recommended, false, TypeString},
		{CommitmentDiscountId, Dimension, Conditional, true, TypeString},
		{ChargePeriodStart, Dimension, Mandatory, false, TypeDateTime},
		{Tags, Dimension, Conditional, true, TypeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			d, err := DescriptorFor(tt.column)
			require.NoError(t, err)
			assert.Equal(t, tt.column, d.Name)
			assert.Equal(t, tt.kind, d.Kind)
			assert.Equal(t, tt.level, d.Level)
			assert.Equal(t, tt.nullable, d.Nullable)
			assert.Equal(t, tt.dataType, d.DataType)
		})
	}
}

func TestDescriptorForUnknownColumn(t *testing.T) {
	_, err := DescriptorFor("UsageAmount")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeUnknownColumn))
	assert.Contains(t, err.Error(), "UsageAmount")
}

func TestAllowedValues(t *testing.T) {
	d := Default().MustDescriptor(ChargeCategory)
	for _, v := range []string{ChargeUsage, ChargePurchase, ChargeTax, ChargeCredit, ChargeAdjustment} {
		assert.True(t, d.Allows(v), v)
	}
	assert.False(t, d.Allows("Refund"))

	free := Default().MustDescriptor(ServiceName)
	assert.False(t, free.HasAllowedValues())
	assert.True(t, free.Allows("anything"))
}

func TestGeneratorCategoriesAreFocusCategories(t *testing.T) {
	d := Default().MustDescriptor(ServiceCategory)
	for _, c := range []string{CategoryCompute, CategoryStorage, CategoryDatabases, CategoryNetworking, CategoryAIML, CategoryOther} {
		assert.True(t, d.Allows(c), c)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(Descriptor{Name: "A", DataType: TypeString})
	assert.Panics(t, func() { r.Register(Descriptor{Name: "A", DataType: TypeString}) })
}

func TestValidationRulesCatchBadDescriptors(t *testing.T) {
	r := NewRegistry()
	r.Register(Descriptor{Name: "BadMetric", Kind: Metric, DataType: TypeString})
	r.Register(Descriptor{Name: "BadAllowed", DataType: TypeDecimal, AllowedValues: []string{"1"}})
	r.Register(Descriptor{Name: "BadType", DataType: "blob"})

	errs := r.Validate(DefaultValidationRules())
	assert.Len(t, errs, 3)
	assert.Panics(t, r.MustValidate)
}

func TestStats(t *testing.T) {
	stats := Default().Stats()
	assert.Equal(t, 50, stats.Total)
	assert.Equal(t, 4, stats.ByDataType[TypeDateTime])
	assert.Equal(t, 2, stats.ByDataType[TypeJSON])
	assert.ElementsMatch(t, []string{ChargeFrequency, ServiceSubcategory, AvailabilityZone}, Default().Recommended())
}
