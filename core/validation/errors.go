package validation

import (
	"fmt"
	"strings"

	"focusgen/internal/errors"
)

// maxListedRows caps the row indices rendered in a message
const maxListedRows = 10

// Violation is a broken hard rule. Rows is empty for table-level rules
// such as a missing mandatory column.
type Violation struct {
	Rule    string
	Column  string
	Rows    []int
	Message string
}

// String renders the violation for error messages and logs
func (v Violation) String() string {
	var b strings.Builder
	b.WriteString(v.Rule)
	b.WriteString(": ")
	b.WriteString(v.Message)
	if v.Column != "" || len(v.Rows) > 0 {
		b.WriteString(" (")
		if v.Column != "" {
			b.WriteString("column ")
			b.WriteString(v.Column)
		}
		if len(v.Rows) > 0 {
			if v.Column != "" {
				b.WriteString(", ")
			}
			b.WriteString(formatRows(v.Rows))
		}
		b.WriteString(")")
	}
	return b.String()
}

// Warning is a soft finding. It never fails validation.
type Warning struct {
	Rule    string
	Column  string
	Rows    []int
	Message string
}

// String renders the warning
func (w Warning) String() string {
	return Violation(w).String()
}

// ValidationError reports the hard violations of one validation run
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	switch len(e.Violations) {
	case 0:
		return "validation failed"
	case 1:
		return "validation failed: " + e.Violations[0].String()
	}

	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("validation failed with %d violations: %s", len(e.Violations), strings.Join(parts, "; "))
}

// Unwrap exposes the typed error so callers can test with errors.IsType
func (e *ValidationError) Unwrap() error {
	err := errors.New(errors.TypeValidation, "hard invariant violated")
	if len(e.Violations) > 0 {
		first := e.Violations[0]
		err.WithContext("rule", first.Rule).WithContext("column", first.Column)
	}
	return err
}

// Columns returns the distinct columns named by the violations
func (e *ValidationError) Columns() []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range e.Violations {
		if v.Column != "" && !seen[v.Column] {
			seen[v.Column] = true
			out = append(out, v.Column)
		}
	}
	return out
}

func formatRows(rows []int) string {
	if len(rows) == 1 {
		return fmt.Sprintf("row %d", rows[0])
	}

	shown := rows
	if len(shown) > maxListedRows {
		shown = shown[:maxListedRows]
	}
	parts := make([]string, len(shown))
	for i, r := range shown {
		parts[i] = fmt.Sprint(r)
	}
	s := "rows " + strings.Join(parts, ", ")
	if len(rows) > maxListedRows {
		s += fmt.Sprintf(" and %d more", len(rows)-maxListedRows)
	}
	return s
}
