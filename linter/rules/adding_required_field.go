// adding-required-field, grounded on original_source's
// adding_required_field rule: ADD COLUMN ... NOT NULL fails outright on a
// non-empty table unless a default is supplied, and the default must be
// non-volatile for the catalog-only fast path to apply.

package rules

import (
	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/linter"
	"github.com/pgsentry/pgsentry/syntax"
)

func init() {
	linter.Register(linter.RuleAddingRequiredField, addingRequiredField)
}

func addingRequiredField(rc *linter.RuleContext) {
	for _, n := range ast.FindAll(rc.Syntax, syntax.ADD_COLUMN_ACTION) {
		col := ast.NewAddColumnAction(n).Column()
		if col == nil {
			continue
		}
		if !col.HasConstraint(syntax.NOT_NULL_CONSTRAINT) {
			continue
		}
		// Identity and generated columns always have a value.
		if col.HasConstraint(syntax.GENERATED_CONSTRAINT) {
			continue
		}
		if def := col.Syntax().FirstChildOfKind(syntax.DEFAULT_CONSTRAINT); def != nil {
			if !isVolatileDefault(def.Text()) {
				continue
			}
		}
		rc.Report(violation(
			linter.RuleAddingRequiredField,
			"Adding a `NOT NULL` column without a non-volatile `DEFAULT` fails on a table with existing rows.",
			"Add the column as nullable with a default, backfill, then set `NOT NULL`.",
			linter.TextRange{Start: n.Offset(), End: n.EndOffset()},
		))
	}
}
