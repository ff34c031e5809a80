package table

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRowSetIsWriteOnce proves a generated column cannot be regenerated
func TestRowSetIsWriteOnce(t *testing.T) {
	r := NewRow(2)
	require.NoError(t, r.Set("ChargeCategory", "Usage"))
	require.NoError(t, r.Set("SkuId", nil))

	err := r.Set("ChargeCategory", "Tax")
	require.Error(t, err)
	assert.Equal(t, "Usage", r.String("ChargeCategory"))
	assert.Equal(t, []string{"ChargeCategory", "SkuId"}, r.Columns())
}

func TestRowAccessors(t *testing.T) {
	r := NewRow(3)
	require.NoError(t, r.Set("BilledCost", decimal.RequireFromString("12.34")))
	require.NoError(t, r.Set("SkuId", nil))
	require.NoError(t, r.Set("Tags", map[string]string{"Owner": "DevOps"}))

	d, ok := r.Decimal("BilledCost")
	require.True(t, ok)
	assert.Equal(t, "12.34", d.String())

	assert.True(t, r.Has("SkuId"))
	assert.True(t, r.IsNull("SkuId"))
	assert.True(t, r.IsNull("Missing"))
	assert.False(t, r.Has("Missing"))
	assert.Equal(t, "", r.String("BilledCost"))

	r.Replace("SkuId", "SKU-1")
	assert.Equal(t, "SKU-1", r.String("SkuId"))
	assert.Equal(t, 3, r.Len())
}

func TestTableSumDecimal(t *testing.T) {
	tbl := New([]string{"BilledCost"})
	for _, v := range []string{"1.10", "2.20"} {
		r := NewRow(1)
		require.NoError(t, r.Set("BilledCost", decimal.RequireFromString(v)))
		tbl.Append(r)
	}
	null := NewRow(1)
	require.NoError(t, null.Set("BilledCost", nil))
	tbl.Append(null)

	assert.Equal(t, 3, tbl.Len())
	assert.True(t, tbl.SumDecimal("BilledCost").Equal(decimal.RequireFromString("3.30")))
	assert.True(t, tbl.HasColumn("BilledCost"))
	assert.False(t, tbl.HasColumn("ListCost"))
}

func TestDateTimeRoundTrip(t *testing.T) {
	ts := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	s := FormatDateTime(ts)
	assert.Equal(t, "2024-01-05T00:00:00Z", s)

	back, err := ParseDateTime(s)
	require.NoError(t, err)
	assert.True(t, back.Equal(ts))

	offset, err := ParseDateTime("2024-01-05T02:00:00+02:00")
	require.NoError(t, err)
	assert.True(t, offset.Equal(ts))

	_, err = ParseDateTime("yesterday")
	assert.Error(t, err)
}
