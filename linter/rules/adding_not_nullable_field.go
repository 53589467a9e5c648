// adding-not-nullable-field, grounded on original_source's
// adding_not_null_field rule. SET NOT NULL scans the table while holding an
// ACCESS EXCLUSIVE lock. From PostgreSQL 12 the scan is skipped when a
// validated CHECK (col IS NOT NULL) constraint already proves the
// invariant, so the rule tracks that pattern across the input's statements
// and stays quiet when it is followed.

package rules

import (
	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/linter"
	"github.com/pgsentry/pgsentry/syntax"
)

func init() {
	linter.Register(linter.RuleAddingNotNullableField, addingNotNullableField)
}

var pg12 = linter.NewVersion(12, 0, 0)

// tableColumn identifies the column a NOT NULL check constraint covers.
type tableColumn struct {
	table  string
	column string
}

func addingNotNullableField(rc *linter.RuleContext) {
	checkBacked := rc.Settings.PGVersion.AtLeast(pg12)

	// Constraint name -> the table/column its CHECK (col IS NOT NULL)
	// covers; filled as ADD CONSTRAINT ... NOT VALID statements appear.
	notNullChecks := map[string]tableColumn{}
	// Columns whose check has also been VALIDATEd by the time we reach a
	// given statement.
	validated := map[tableColumn]bool{}

	for _, s := range rc.File.Statements() {
		if s.Kind() != syntax.ALTER_TABLE_STMT {
			continue
		}
		stmt := ast.NewAlterTableStmt(s.Syntax())
		table := stmt.TableName()
		if table == "" {
			continue
		}
		for _, action := range stmt.Actions() {
			switch action.Kind() {
			case syntax.ADD_CONSTRAINT_ACTION:
				if !checkBacked {
					continue
				}
				add := ast.NewAddConstraintAction(action.Syntax())
				c := add.Constraint()
				if c == nil || c.Kind() != syntax.CHECK_CONSTRAINT || !add.NotValid() {
					continue
				}
				name := c.Name()
				if name == "" {
					continue
				}
				if col, ok := checkNotNullColumn(c.Syntax()); ok {
					notNullChecks[name] = tableColumn{table: table, column: col}
				}
			case syntax.VALIDATE_CONSTRAINT_ACTION:
				if !checkBacked {
					continue
				}
				v := ast.NewValidateConstraintAction(action.Syntax())
				if tc, ok := notNullChecks[v.Name()]; ok && tc.table == table {
					validated[tc] = true
				}
			case syntax.ALTER_COLUMN_ACTION:
				alter := ast.NewAlterColumnAction(action.Syntax())
				opt := alter.Option()
				if opt.Syntax() == nil || opt.Kind() != syntax.ALTER_COLUMN_SET_NOT_NULL_OPTION {
					continue
				}
				if checkBacked && validated[tableColumn{table: table, column: alter.Column()}] {
					continue
				}
				rc.Report(violation(
					linter.RuleAddingNotNullableField,
					"Setting a column `NOT NULL` blocks reads and writes while the whole table is scanned.",
					"Add a `CHECK (col IS NOT NULL) NOT VALID` constraint, `VALIDATE` it, then `SET NOT NULL`.",
					rangeOf(opt),
				))
			}
		}
	}
}
