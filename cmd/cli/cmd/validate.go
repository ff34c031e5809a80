// Package cmd - validate command
package cmd

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"focusgen/adapters/archive"
	"focusgen/adapters/csv"
	"focusgen/core/table"
	"focusgen/core/ui"
	"focusgen/core/validation"
	"focusgen/internal/config"
	"focusgen/internal/errors"
)

var (
	valTier         string
	valMode         string
	valHideWarnings bool
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate FOCUS CSV files",
	Long: `Validate FOCUS CSV files, or every CSV inside a ZIP bundle.

The basic tier checks column presence, types, allowed values and the
cross-column rules. The enhanced tier adds service categories, cost
relationships and advisory checks.

Examples:
  focusgen validate output/aws-focus-2024-01.csv
  focusgen validate --tier basic --mode collect-all output/*.csv
  focusgen validate output/focus-data-1a2b3c4d.zip`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&valTier, "tier", "", "validation tier: basic, enhanced")
	validateCmd.Flags().StringVar(&valMode, "mode", "", "fail-fast or collect-all")
	validateCmd.Flags().BoolVar(&valHideWarnings, "no-warnings", false, "do not print warnings")
}

// namedTable is a table read from a file or archive entry
type namedTable struct {
	name  string
	table *table.Table
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	tier, err := validation.ParseTier(firstString(valTier, cfg.Validation.Tier))
	if err != nil {
		return err
	}
	mode, err := validation.ParseMode(firstString(valMode, cfg.Validation.Mode))
	if err != nil {
		return err
	}
	v := validation.NewValidator(validation.Config{Tier: tier, Mode: mode})

	var tables []namedTable
	for _, path := range args {
		t, err := readTables(path)
		if err != nil {
			return err
		}
		tables = append(tables, t...)
	}

	u := newUI(cmd)
	failed := 0
	for _, nt := range tables {
		report, err := v.Validate(nt.table)
		if report == nil {
			return err
		}
		if !report.Valid() {
			failed++
		}
		printReport(u, nt.name, report)
	}

	u.Println("")
	u.Println("%d of %d files valid (%s tier, %s)", len(tables)-failed, len(tables), tier, mode)
	if failed > 0 {
		return errors.Newf(errors.TypeValidation, "%d of %d files failed validation", failed, len(tables))
	}
	return nil
}

func readTables(path string) ([]namedTable, error) {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		entries, err := archive.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var out []namedTable
		for _, e := range entries {
			if !strings.EqualFold(filepath.Ext(e.Name), ".csv") {
				continue
			}
			tbl, err := csv.Read(bytes.NewReader(e.Data))
			if err != nil {
				return nil, errors.Wrapf(errors.TypeParsing, err, "%s:%s", path, e.Name)
			}
			out = append(out, namedTable{name: path + ":" + e.Name, table: tbl})
		}
		return out, nil
	}

	tbl, err := csv.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return []namedTable{{name: path, table: tbl}}, nil
}

func printReport(u *ui.Writer, name string, r *validation.Report) {
	if r.Valid() {
		u.Success("%s (%d rows, %d columns)", name, r.Rows, r.Columns)
	} else {
		u.Failure("%s (%d rows, %d columns)", name, r.Rows, r.Columns)
	}
	for _, v := range r.Violations {
		u.Error("%s", v)
	}
	if valHideWarnings {
		return
	}
	for _, warn := range r.Warnings {
		u.Warning("%s", warn)
	}
}
