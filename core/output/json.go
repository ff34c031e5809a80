package output

import (
	"encoding/json"
	"io"

	"github.com/shopspring/decimal"

	"focusgen/core/table"
)

// JSONFormatter renders a table as {"columns": [...], "rows": [[...], ...]}.
// Row arrays follow the column order; decimals are strings.
type JSONFormatter struct {
	// Indent pretty-prints the document when set
	Indent bool
}

// NewJSONFormatter creates a compact JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) Format() Format    { return FormatJSON }
func (f *JSONFormatter) Extension() string { return ".json" }

type jsonTable struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Render implements Formatter
func (f *JSONFormatter) Render(w io.Writer, tbl *table.Table) error {
	doc := jsonTable{Columns: tbl.Columns, Rows: make([][]any, tbl.Len())}
	for i, r := range tbl.Rows {
		row := make([]any, len(tbl.Columns))
		for j, col := range tbl.Columns {
			v, _ := r.Get(col)
			if d, ok := v.(decimal.Decimal); ok {
				v = d.String()
			}
			row[j] = v
		}
		doc.Rows[i] = row
	}

	enc := json.NewEncoder(w)
	if f.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(doc)
}
