// Package table - Row and table model
// A row is an ordered column to value mapping. Values are nil (null),
// string, decimal.Decimal, or map[string]string for JSON objects.
// Datetimes are RFC 3339 UTC strings.
package table

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateTimeLayout is the datetime rendering used for every datetime column
const DateTimeLayout = "2006-01-02T15:04:05Z"

// FormatDateTime renders t in UTC
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}

// ParseDateTime parses an ISO-8601 datetime. Both the Z form and a
// numeric offset are accepted.
func ParseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(DateTimeLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Row is one billing line item
type Row struct {
	columns []string
	values  map[string]any
}

// NewRow creates an empty row sized for n columns
func NewRow(n int) *Row {
	return &Row{
		columns: make([]string, 0, n),
		values:  make(map[string]any, n),
	}
}

// Set stores a column value. Each column may be set once.
func (r *Row) Set(column string, value any) error {
	if _, exists := r.values[column]; exists {
		return fmt.Errorf("column %s already set", column)
	}
	r.columns = append(r.columns, column)
	r.values[column] = value
	return nil
}

// Replace overwrites an existing column value. Used by whole-table passes.
func (r *Row) Replace(column string, value any) {
	if _, exists := r.values[column]; !exists {
		r.columns = append(r.columns, column)
	}
	r.values[column] = value
}

// Has reports whether the column is present, null or not
func (r *Row) Has(column string) bool {
	_, ok := r.values[column]
	return ok
}

// Get returns the value and whether the column is present
func (r *Row) Get(column string) (any, bool) {
	v, ok := r.values[column]
	return v, ok
}

// IsNull reports whether the column is absent or null
func (r *Row) IsNull(column string) bool {
	return r.values[column] == nil
}

// String returns a string value, or "" for null and non-string values
func (r *Row) String(column string) string {
	s, _ := r.values[column].(string)
	return s
}

// Decimal returns a decimal value and whether the column holds one
func (r *Row) Decimal(column string) (decimal.Decimal, bool) {
	d, ok := r.values[column].(decimal.Decimal)
	return d, ok
}

// Columns returns the column names in insertion order
func (r *Row) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// Len returns the number of columns
func (r *Row) Len() int {
	return len(r.columns)
}

// Table is an ordered set of rows sharing a column list
type Table struct {
	Columns []string
	Rows    []*Row
}

// New creates a table with a fixed column list
func New(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// Append adds a row
func (t *Table) Append(r *Row) {
	t.Rows = append(t.Rows, r)
}

// Len returns the row count
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table declares the column
func (t *Table) HasColumn(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// SumDecimal sums a decimal column, skipping nulls
func (t *Table) SumDecimal(column string) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range t.Rows {
		if d, ok := r.Decimal(column); ok {
			sum = sum.Add(d)
		}
	}
	return sum
}
