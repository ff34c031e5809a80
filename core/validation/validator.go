// Package validation - FOCUS table validation
// Checks a table against the column registry and the cross-column rules of
// the FOCUS schema. Hard rules produce violations and fail validation; soft
// rules produce warnings only. Validation never modifies the table.
package validation

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"focusgen/core/catalog"
	"focusgen/core/focus"
	"focusgen/core/table"
	"focusgen/internal/errors"
	"focusgen/internal/logging"
)

// Tier selects the rule set
type Tier string

const (
	// TierBasic checks schema conformance and the cross-column invariants
	TierBasic Tier = "basic"
	// TierEnhanced adds cost relationship and dataset consistency rules
	TierEnhanced Tier = "enhanced"
)

// Mode selects how many violations are reported
type Mode string

const (
	// ModeFailFast stops at the first hard violation
	ModeFailFast Mode = "fail-fast"
	// ModeCollectAll runs every rule and reports all hard violations
	ModeCollectAll Mode = "collect-all"
)

// ParseTier parses a tier name
func ParseTier(s string) (Tier, error) {
	switch Tier(strings.ToLower(strings.TrimSpace(s))) {
	case TierBasic:
		return TierBasic, nil
	case TierEnhanced, "":
		return TierEnhanced, nil
	}
	return "", errors.Newf(errors.TypeInput, "unknown validation tier %q", s)
}

// ParseMode parses a mode name
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fail-fast", "failfast", "":
		return ModeFailFast, nil
	case "collect-all", "collectall", "all":
		return ModeCollectAll, nil
	}
	return "", errors.Newf(errors.TypeInput, "unknown validation mode %q", s)
}

// Config configures a Validator
type Config struct {
	Tier Tier
	Mode Mode

	// Registry defaults to focus.Default()
	Registry *focus.Registry

	// Catalog defaults to catalog.Default(). Used by the provider
	// consistency rule.
	Catalog *catalog.Catalog
}

// DefaultConfig returns the enhanced, fail-fast configuration
func DefaultConfig() Config {
	return Config{
		Tier: TierEnhanced,
		Mode: ModeFailFast,
	}
}

// Report is the outcome of one validation run
type Report struct {
	Rows       int
	Columns    int
	Tier       Tier
	Mode       Mode
	Violations []Violation
	Warnings   []Warning
}

// Valid reports whether no hard rule was broken
func (r *Report) Valid() bool {
	return len(r.Violations) == 0
}

// Validator validates tables. Safe for concurrent use.
type Validator struct {
	config   Config
	registry *focus.Registry
	catalog  *catalog.Catalog
	rules    []rule
}

// NewValidator creates a validator
func NewValidator(cfg Config) *Validator {
	if cfg.Tier == "" {
		cfg.Tier = TierEnhanced
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeFailFast
	}

	v := &Validator{
		config:   cfg,
		registry: cfg.Registry,
		catalog:  cfg.Catalog,
	}
	if v.registry == nil {
		v.registry = focus.Default()
	}
	if v.catalog == nil {
		v.catalog = catalog.Default()
	}

	v.rules = basicRules()
	if cfg.Tier == TierEnhanced {
		v.rules = append(v.rules, enhancedRules()...)
	}
	return v
}

// Validate checks the table. The report is always returned for a non-nil
// table; the error is a *ValidationError when a hard rule is broken.
func (v *Validator) Validate(tbl *table.Table) (*Report, error) {
	if tbl == nil {
		return nil, errors.Input("table is nil")
	}

	c := &checker{
		tbl:       tbl,
		registry:  v.registry,
		providers: v.providerIndex(),
		failFast:  v.config.Mode == ModeFailFast,
		report: &Report{
			Rows:    tbl.Len(),
			Columns: len(tbl.Columns),
			Tier:    v.config.Tier,
			Mode:    v.config.Mode,
		},
	}

	for _, r := range v.rules {
		r(c)
		if c.stopped() {
			break
		}
	}

	report := c.report
	if report.Valid() {
		return report, nil
	}
	if c.failFast {
		report.Violations = report.Violations[:1]
	}
	return report, &ValidationError{Violations: report.Violations}
}

// providerIndex maps ProviderName values to catalog entries
func (v *Validator) providerIndex() map[string]*catalog.ProviderEntry {
	index := make(map[string]*catalog.ProviderEntry)
	for _, p := range v.catalog.Providers() {
		if entry, ok := v.catalog.Get(p); ok {
			index[entry.DisplayName] = entry
		}
	}
	return index
}

// ValidateTable validates with the enhanced tier in fail-fast mode and logs
// every warning.
func ValidateTable(tbl *table.Table) error {
	report, err := NewValidator(DefaultConfig()).Validate(tbl)
	if report != nil {
		logWarnings(logging.Named("validation"), report.Warnings)
	}
	return err
}

func logWarnings(logger *zap.Logger, warnings []Warning) {
	for _, w := range warnings {
		logger.Warn(w.Message,
			zap.String("rule", w.Rule),
			zap.String("column", w.Column),
			zap.Int("rows", len(w.Rows)),
		)
	}
}

// rule is one validation pass over the table
type rule func(c *checker)

// checker carries the state of one run
type checker struct {
	tbl       *table.Table
	registry  *focus.Registry
	providers map[string]*catalog.ProviderEntry
	failFast  bool
	report    *Report
}

func (c *checker) violate(rule, column string, rows []int, format string, args ...any) {
	c.report.Violations = append(c.report.Violations, Violation{
		Rule:    rule,
		Column:  column,
		Rows:    rows,
		Message: fmt.Sprintf(format, args...),
	})
}

func (c *checker) warn(rule, column string, rows []int, format string, args ...any) {
	c.report.Warnings = append(c.report.Warnings, Warning{
		Rule:    rule,
		Column:  column,
		Rows:    rows,
		Message: fmt.Sprintf(format, args...),
	})
}

func (c *checker) stopped() bool {
	return c.failFast && len(c.report.Violations) > 0
}

// has reports whether every column is declared by the table
func (c *checker) has(columns ...string) bool {
	for _, col := range columns {
		if !c.tbl.HasColumn(col) {
			return false
		}
	}
	return true
}

// where returns the indices of the rows matching pred
func (c *checker) where(pred func(r *table.Row) bool) []int {
	var rows []int
	for i, r := range c.tbl.Rows {
		if pred(r) {
			rows = append(rows, i)
		}
	}
	return rows
}

// require reports a violation when any row matches pred
func (c *checker) require(rule, column string, pred func(r *table.Row) bool, format string, args ...any) {
	if rows := c.where(pred); len(rows) > 0 {
		c.violate(rule, column, rows, format, args...)
	}
}

// advise reports a warning when any row matches pred
func (c *checker) advise(rule, column string, pred func(r *table.Row) bool, format string, args ...any) {
	if rows := c.where(pred); len(rows) > 0 {
		c.warn(rule, column, rows, format, args...)
	}
}
