// adding-field-with-default, grounded on original_source's
// adding_field_with_default rule. Before PostgreSQL 11 any ADD COLUMN with
// a DEFAULT rewrites the whole table; from 11 on a constant default is
// stored in the catalog and only volatile defaults (now(), random(), ...)
// still force the rewrite.

package rules

import (
	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/linter"
	"github.com/pgsentry/pgsentry/syntax"
)

func init() {
	linter.Register(linter.RuleAddingFieldWithDefault, addingFieldWithDefault)
}

var pg11 = linter.NewVersion(11, 0, 0)

func addingFieldWithDefault(rc *linter.RuleContext) {
	created := tablesCreatedInInput(rc.File)
	safeConstantDefaults := rc.Settings.PGVersion.AtLeast(pg11)
	for _, s := range rc.File.Statements() {
		if s.Kind() != syntax.ALTER_TABLE_STMT {
			continue
		}
		stmt := ast.NewAlterTableStmt(s.Syntax())
		if created[stmt.TableName()] {
			continue
		}
		for _, action := range stmt.Actions() {
			if action.Kind() != syntax.ADD_COLUMN_ACTION {
				continue
			}
			col := ast.NewAddColumnAction(action.Syntax()).Column()
			if col == nil {
				continue
			}
			def := col.Syntax().FirstChildOfKind(syntax.DEFAULT_CONSTRAINT)
			if def == nil {
				continue
			}
			if safeConstantDefaults && !isVolatileDefault(def.Text()) {
				continue
			}
			rc.Report(violation(
				linter.RuleAddingFieldWithDefault,
				"Adding a column with a `DEFAULT` that must be computed per row rewrites the whole table while holding an exclusive lock.",
				"Add the column without a default, set the default in a second statement, then backfill.",
				rangeOf(col),
			))
		}
	}
}
