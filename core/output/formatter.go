// Package output provides dataset output formatting interfaces.
// Formatters render a table; Export renders a whole batch into a sink.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"focusgen/core/table"
	"focusgen/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCSV is one CSV file per dataset
	FormatCSV Format = "csv"

	// FormatJSON is one JSON document per dataset
	FormatJSON Format = "json"
)

// ParseFormat accepts a format name in any case
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV, "":
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", errors.Newf(errors.TypeInput, "unknown output format %q (want csv or json)", s)
}

// Formatter renders a table in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Extension is the file extension including the dot
	Extension() string

	// Render writes the table
	Render(w io.Writer, tbl *table.Table) error
}

// Registry manages formatter registration
type Registry struct {
	mu         sync.RWMutex
	formatters map[Format]Formatter
}

// NewRegistry creates a registry holding the given formatters
func NewRegistry(formatters ...Formatter) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	for _, f := range formatters {
		if err := r.Register(f); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.formatters[f.Format()]; exists {
		return fmt.Errorf("formatter already registered: %s", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// Get returns the formatter for a format
func (r *Registry) Get(format Format) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formatters[format]
	if !ok {
		return nil, errors.NotFound("formatter", string(format))
	}
	return f, nil
}

// Formats lists the registered formats
func (r *Registry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
