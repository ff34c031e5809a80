// Package cmd - columns command
package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"focusgen/core/focus"
	"focusgen/internal/config"
)

var (
	colLevel string
	colPlan  bool
)

// columnsCmd lists the FOCUS columns
var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "List the FOCUS columns",
	Long: `List the FOCUS v1.1 columns in generation order with their level, type
and nullability. --plan also shows the generator that fills each column.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine(config.Get(), 0, false)
		if err != nil {
			return err
		}
		generators := make(map[string]string)
		for _, p := range e.Plan() {
			generators[p.Column] = p.Generator
		}

		u := newUI(cmd)
		headers := []string{"COLUMN", "LEVEL", "TYPE", "NULLABLE"}
		if colPlan {
			headers = append(headers, "GENERATOR")
		}
		tbl := u.NewTable(headers...)

		registry := focus.Default()
		for _, col := range e.Columns() {
			d, err := registry.DescriptorFor(col)
			if err != nil {
				return err
			}
			if colLevel != "" && !strings.EqualFold(d.Level.String(), colLevel) {
				continue
			}
			tbl.AddRow(d.Name, d.Level.String(), string(d.DataType), strconv.FormatBool(d.Nullable), generators[col])
		}
		tbl.Render()
		u.Println("")
		u.Println("%d columns", tbl.Len())
		return nil
	},
}

func init() {
	columnsCmd.Flags().StringVar(&colLevel, "level", "", "only show mandatory, recommended or conditional columns")
	columnsCmd.Flags().BoolVar(&colPlan, "plan", false, "show the generator of each column")
}
