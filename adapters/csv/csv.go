// Package csv reads and writes FOCUS tables as CSV.
//
// The header is the column order. Decimals are written as plain strings,
// JSON objects as compact JSON and nulls as empty cells. Reading converts
// cells back by each column's descriptor so files produced elsewhere can be
// validated.
package csv

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"focusgen/core/focus"
	"focusgen/core/output"
	"focusgen/core/table"
	"focusgen/internal/errors"
)

// Formatter renders tables as CSV
type Formatter struct{}

// NewFormatter creates a CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Format() output.Format { return output.FormatCSV }
func (f *Formatter) Extension() string     { return ".csv" }

// Render implements output.Formatter
func (f *Formatter) Render(w io.Writer, tbl *table.Table) error {
	return Write(w, tbl)
}

// Write writes the table with a header row
func Write(w io.Writer, tbl *table.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tbl.Columns); err != nil {
		return err
	}

	record := make([]string, len(tbl.Columns))
	for i, r := range tbl.Rows {
		for j, col := range tbl.Columns {
			v, _ := r.Get(col)
			cell, err := formatCell(v)
			if err != nil {
				return errors.Wrapf(errors.TypeInternal, err, "row %d column %s", i, col)
			}
			record[j] = cell
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatCell(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case decimal.Decimal:
		return x.String(), nil
	case time.Time:
		return table.FormatDateTime(x), nil
	case map[string]string, map[string]any:
		data, err := json.Marshal(x)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return fmt.Sprint(x), nil
	}
}

// Reader converts CSV records into table rows
type Reader struct {
	registry *focus.Registry
}

// NewReader creates a reader. A nil registry uses focus.Default().
func NewReader(registry *focus.Registry) *Reader {
	if registry == nil {
		registry = focus.Default()
	}
	return &Reader{registry: registry}
}

// Read parses a CSV document. Empty cells become nulls. Decimal and JSON
// cells that do not parse are kept as strings for the validator to report.
func (rd *Reader) Read(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.TypeParsing, "csv has no header row")
	}
	if err != nil {
		return nil, errors.Parsing("failed to read csv header", err)
	}

	seen := make(map[string]bool, len(header))
	for _, col := range header {
		if col == "" {
			return nil, errors.New(errors.TypeParsing, "csv header has an empty column name")
		}
		if seen[col] {
			return nil, errors.Newf(errors.TypeParsing, "csv header repeats column %s", col)
		}
		seen[col] = true
	}

	types := make([]focus.DataType, len(header))
	for i, col := range header {
		if d, err := rd.registry.DescriptorFor(col); err == nil {
			types[i] = d.DataType
		}
	}

	tbl := table.New(header)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Parsing(fmt.Sprintf("failed to read csv row %d", tbl.Len()), err)
		}

		row := table.NewRow(len(header))
		for i, cell := range record {
			if err := row.Set(header[i], parseCell(cell, types[i])); err != nil {
				return nil, errors.Internal("csv row", err)
			}
		}
		tbl.Append(row)
	}
	return tbl, nil
}

func parseCell(cell string, dt focus.DataType) any {
	if cell == "" {
		return nil
	}
	switch dt {
	case focus.TypeDecimal:
		if d, err := decimal.NewFromString(cell); err == nil {
			return d
		}
	case focus.TypeJSON:
		var m map[string]string
		if err := json.Unmarshal([]byte(cell), &m); err == nil {
			return m
		}
	}
	return cell
}

// Read parses a CSV document with the default registry
func Read(r io.Reader) (*table.Table, error) {
	return NewReader(nil).Read(r)
}

// ReadFile parses a CSV file with the default registry
func ReadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeInput, err, "failed to open %s", path)
	}
	defer f.Close()

	tbl, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeParsing, err, "%s", path)
	}
	return tbl, nil
}
