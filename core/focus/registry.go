// Package focus - Column registry
// Immutable after Default() builds it; safe for concurrent reads.
package focus

import (
	"fmt"
	"sort"
	"sync"

	"focusgen/internal/errors"
)

// Registry holds one descriptor per column
type Registry struct {
	entries map[string]Descriptor
	names   []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Descriptor),
	}
}

// Register adds a descriptor. Registering the same column twice panics.
func (r *Registry) Register(d Descriptor) {
	if _, exists := r.entries[d.Name]; exists {
		panic(fmt.Sprintf("column already registered: %s", d.Name))
	}
	r.entries[d.Name] = d
	r.names = append(r.names, d.Name)
	sort.Strings(r.names)
}

// DescriptorFor returns the descriptor for a column
func (r *Registry) DescriptorFor(name string) (Descriptor, error) {
	d, ok := r.entries[name]
	if !ok {
		return Descriptor{}, errors.UnknownColumn(name)
	}
	return d, nil
}

// MustDescriptor is DescriptorFor for callers holding a known column name
func (r *Registry) MustDescriptor(name string) Descriptor {
	d, err := r.DescriptorFor(name)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Has reports whether the column is registered
func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Columns returns all column names in alphabetical order
func (r *Registry) Columns() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered columns
func (r *Registry) Len() int {
	return len(r.entries)
}

// ByLevel returns the columns registered at a feature level
func (r *Registry) ByLevel(level Level) []string {
	var result []string
	for _, name := range r.names {
		if r.entries[name].Level == level {
			result = append(result, name)
		}
	}
	return result
}

// Mandatory returns the mandatory columns
func (r *Registry) Mandatory() []string {
	return r.ByLevel(Mandatory)
}

// Recommended returns the recommended columns
func (r *Registry) Recommended() []string {
	return r.ByLevel(Recommended)
}

// Stats returns registry statistics
func (r *Registry) Stats() RegistryStats {
	stats := RegistryStats{
		ByLevel:    make(map[Level]int),
		ByDataType: make(map[DataType]int),
	}
	for _, d := range r.entries {
		stats.Total++
		stats.ByLevel[d.Level]++
		stats.ByDataType[d.DataType]++
		if d.Kind == Metric {
			stats.Metrics++
		}
		if d.Nullable {
			stats.Nullable++
		}
	}
	return stats
}

// RegistryStats holds registry statistics
type RegistryStats struct {
	Total      int
	Metrics    int
	Nullable   int
	ByLevel    map[Level]int
	ByDataType map[DataType]int
}

// ValidationRule is a registry integrity rule
type ValidationRule func(Descriptor) error

// DefaultValidationRules returns the standard integrity rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateMetricIsDecimal,
		validateAllowedValuesOnStrings,
		validateDataTypeKnown,
	}
}

// Validate checks every descriptor against the rules
func (r *Registry) Validate(rules []ValidationRule) []error {
	var errs []error
	for _, name := range r.names {
		for _, rule := range rules {
			if err := rule(r.entries[name]); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
			}
		}
	}
	return errs
}

// MustValidate panics if validation fails
func (r *Registry) MustValidate() {
	errs := r.Validate(DefaultValidationRules())
	if len(errs) > 0 {
		panic(fmt.Sprintf("column registry has %d validation errors: %v", len(errs), errs))
	}
}

func validateMetricIsDecimal(d Descriptor) error {
	if d.Kind == Metric && d.DataType != TypeDecimal {
		return fmt.Errorf("metric columns must be decimal, got %s", d.DataType)
	}
	return nil
}

func validateAllowedValuesOnStrings(d Descriptor) error {
	if d.HasAllowedValues() && d.DataType != TypeString {
		return fmt.Errorf("allowed values are only supported on string columns")
	}
	return nil
}

func validateDataTypeKnown(d Descriptor) error {
	switch d.DataType {
	case TypeString, TypeDecimal, TypeDateTime, TypeJSON:
		return nil
	}
	return fmt.Errorf("unknown data type %q", d.DataType)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the FOCUS v1.1 registry, built on first use
func Default() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		RegisterV11(r)
		r.MustValidate()
		defaultRegistry = r
	})
	return defaultRegistry
}

// DescriptorFor looks a column up in the default registry
func DescriptorFor(name string) (Descriptor, error) {
	return Default().DescriptorFor(name)
}
