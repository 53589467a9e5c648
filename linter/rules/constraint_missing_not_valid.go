// constraint-missing-not-valid, grounded on original_source's
// constraint_missing_not_valid rule: ALTER TABLE ... ADD CONSTRAINT with a
// CHECK or FOREIGN KEY constraint scans every existing row while holding an
// ACCESS EXCLUSIVE lock unless the constraint is added NOT VALID and
// validated separately.

package rules

import (
	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/linter"
	"github.com/pgsentry/pgsentry/syntax"
)

func init() {
	linter.Register(linter.RuleConstraintMissingNotValid, constraintMissingNotValid)
}

func constraintMissingNotValid(rc *linter.RuleContext) {
	created := tablesCreatedInInput(rc.File)
	for _, s := range rc.File.Statements() {
		if s.Kind() != syntax.ALTER_TABLE_STMT {
			continue
		}
		stmt := ast.NewAlterTableStmt(s.Syntax())
		if created[stmt.TableName()] {
			continue
		}
		for _, action := range stmt.Actions() {
			if action.Kind() != syntax.ADD_CONSTRAINT_ACTION {
				continue
			}
			add := ast.NewAddConstraintAction(action.Syntax())
			c := add.Constraint()
			if c == nil {
				continue
			}
			switch c.Kind() {
			case syntax.CHECK_CONSTRAINT, syntax.FOREIGN_KEY_CONSTRAINT:
			default:
				continue
			}
			if add.NotValid() {
				continue
			}
			rc.Report(violation(
				linter.RuleConstraintMissingNotValid,
				"Adding a constraint without `NOT VALID` scans the whole table while holding an exclusive lock.",
				"Add the constraint `NOT VALID`, then run `VALIDATE CONSTRAINT` in a separate transaction.",
				rangeOf(add),
			))
		}
	}
}
