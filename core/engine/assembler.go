// Package engine - Row assembly
// A row is built column by column in a fixed dependency order. The plan
// (column, generator, descriptor) is resolved once per assembler so that
// per-row work is only generator calls.
package engine

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"focusgen/core/focus"
	"focusgen/core/generator"
	"focusgen/core/table"
	"focusgen/internal/errors"
)

// step is one resolved column of the plan
type step struct {
	column     string
	generator  generator.Generator
	descriptor focus.Descriptor
	needs      []string
}

// RowAssembler builds rows from a column order and a dispatcher.
// Immutable after construction; safe for concurrent use.
type RowAssembler struct {
	order  []string
	plan   []step
	strict bool
}

// NewRowAssembler resolves every column of order to its generator and
// descriptor. In strict mode the order must respect the dependency map.
func NewRowAssembler(d *generator.Dispatcher, registry *focus.Registry, order []string, deps map[string][]string, strict bool) (*RowAssembler, error) {
	if d == nil {
		return nil, errors.Config("row assembler needs a dispatcher", nil)
	}
	if registry == nil {
		registry = focus.Default()
	}
	if len(order) == 0 {
		return nil, errors.Config("row assembler needs a column order", nil)
	}

	if strict {
		if err := generator.CheckOrder(order, restrictDeps(deps, order)); err != nil {
			return nil, errors.Config("column order violates generator dependencies", err)
		}
	}

	a := &RowAssembler{
		order:  append([]string(nil), order...),
		plan:   make([]step, 0, len(order)),
		strict: strict,
	}
	for _, col := range order {
		g, err := d.Resolve(col)
		if err != nil {
			return nil, errors.Wrapf(errors.TypeConfig, err, "no generator for column %s", col)
		}
		desc, err := registry.DescriptorFor(col)
		if err != nil {
			return nil, errors.Wrapf(errors.TypeConfig, err, "no descriptor for column %s", col)
		}
		a.plan = append(a.plan, step{
			column:     col,
			generator:  g,
			descriptor: desc,
			needs:      deps[col],
		})
	}
	return a, nil
}

// restrictDeps keeps the dependency entries of ordered columns
func restrictDeps(deps map[string][]string, order []string) map[string][]string {
	ordered := make(map[string]bool, len(order))
	for _, col := range order {
		ordered[col] = true
	}
	out := make(map[string][]string)
	for col, needs := range deps {
		if ordered[col] {
			out[col] = needs
		}
	}
	return out
}

// Columns returns the column order
func (a *RowAssembler) Columns() []string {
	return append([]string(nil), a.order...)
}

// Strict reports whether dependency checks run per column
func (a *RowAssembler) Strict() bool {
	return a.strict
}

// PlanEntry names the generator resolved for a column
type PlanEntry struct {
	Column    string
	Generator string
}

// Plan returns the resolved plan in column order
func (a *RowAssembler) Plan() []PlanEntry {
	out := make([]PlanEntry, len(a.plan))
	for i, s := range a.plan {
		out[i] = PlanEntry{Column: s.column, Generator: s.generator.Name()}
	}
	return out
}

// AssembleRow builds one row. rng must be owned by the caller for the
// duration of the call.
func (a *RowAssembler) AssembleRow(rowIndex int, params *generator.Params, rng *rand.Rand) (*table.Row, error) {
	row := table.NewRow(len(a.plan))

	for _, s := range a.plan {
		var view generator.View = row
		var rec *recordingView
		if a.strict {
			if missing := missingNeeds(row, s.needs); len(missing) > 0 {
				return nil, errors.Newf(errors.TypeConfig,
					"column %s generated before %s", s.column, strings.Join(missing, ", ")).
					WithContext("row", rowIndex)
			}
			rec = &recordingView{row: row}
			view = rec
		}

		ctx := &generator.Context{
			Column:     s.column,
			RowIndex:   rowIndex,
			Row:        view,
			Params:     params,
			Descriptor: s.descriptor,
			Rand:       rng,
		}
		value, err := s.generator.Generate(ctx)
		if err != nil {
			return nil, errors.Wrapf(errors.TypeGeneration, err, "row %d column %s", rowIndex, s.column).
				WithContext("generator", s.generator.Name())
		}

		if rec != nil && len(rec.absent) > 0 {
			return nil, errors.Newf(errors.TypeConfig,
				"generator %s read %s before it was generated (column %s)",
				s.generator.Name(), strings.Join(rec.absentColumns(), ", "), s.column).
				WithContext("row", rowIndex)
		}

		if err := row.Set(s.column, value); err != nil {
			return nil, errors.Internal(fmt.Sprintf("row %d", rowIndex), err)
		}
	}
	return row, nil
}

func missingNeeds(row *table.Row, needs []string) []string {
	var missing []string
	for _, n := range needs {
		if !row.Has(n) {
			missing = append(missing, n)
		}
	}
	return missing
}

// recordingView records reads of columns not yet in the row. Has is a
// presence probe and is not recorded.
type recordingView struct {
	row    *table.Row
	absent map[string]bool
}

func (v *recordingView) note(column string) {
	if v.row.Has(column) {
		return
	}
	if v.absent == nil {
		v.absent = make(map[string]bool)
	}
	v.absent[column] = true
}

func (v *recordingView) absentColumns() []string {
	out := make([]string, 0, len(v.absent))
	for col := range v.absent {
		out = append(out, col)
	}
	sort.Strings(out)
	return out
}

func (v *recordingView) Get(column string) (any, bool) {
	v.note(column)
	return v.row.Get(column)
}

func (v *recordingView) Has(column string) bool {
	return v.row.Has(column)
}

func (v *recordingView) IsNull(column string) bool {
	v.note(column)
	return v.row.IsNull(column)
}

func (v *recordingView) String(column string) string {
	v.note(column)
	return v.row.String(column)
}

func (v *recordingView) Decimal(column string) (decimal.Decimal, bool) {
	v.note(column)
	return v.row.Decimal(column)
}
