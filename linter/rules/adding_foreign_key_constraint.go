// adding-foreign-key-constraint, grounded on original_source's
// adding_foreign_key_constraint rule: a FOREIGN KEY added in one step locks
// both tables while every existing row is checked. The safe pattern is ADD
// CONSTRAINT ... NOT VALID followed by VALIDATE CONSTRAINT. A column-level
// REFERENCES inside ADD COLUMN has no NOT VALID form at all, so it is
// always flagged.

package rules

import (
	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/linter"
	"github.com/pgsentry/pgsentry/syntax"
)

func init() {
	linter.Register(linter.RuleAddingForeignKeyConstraint, addingForeignKeyConstraint)
}

func addingForeignKeyConstraint(rc *linter.RuleContext) {
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
			switch action.Kind() {
			case syntax.ADD_CONSTRAINT_ACTION:
				add := ast.NewAddConstraintAction(action.Syntax())
				c := add.Constraint()
				if c == nil || c.Kind() != syntax.FOREIGN_KEY_CONSTRAINT {
					continue
				}
				if add.NotValid() {
					continue
				}
				rc.Report(violation(
					linter.RuleAddingForeignKeyConstraint,
					"Adding a foreign key blocks writes on both tables while every existing row is checked.",
					"Add the constraint `NOT VALID`, then run `VALIDATE CONSTRAINT` in a separate transaction.",
					rangeOf(add),
				))
			case syntax.ADD_COLUMN_ACTION:
				col := ast.NewAddColumnAction(action.Syntax()).Column()
				if col == nil || !col.HasConstraint(syntax.FOREIGN_KEY_CONSTRAINT) {
					continue
				}
				rc.Report(violation(
					linter.RuleAddingForeignKeyConstraint,
					"Adding a foreign key blocks writes on both tables while every existing row is checked.",
					"Add the column first, then the constraint `NOT VALID`, then run `VALIDATE CONSTRAINT`.",
					rangeOf(col),
				))
			}
		}
	}
}
