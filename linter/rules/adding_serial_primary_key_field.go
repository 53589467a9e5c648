// adding-serial-primary-key-field, grounded on original_source's
// adding_serial_primary_key_field rule: ADD PRIMARY KEY builds a unique
// index under an ACCESS EXCLUSIVE lock unless an existing index is adopted
// with USING INDEX.

package rules

import (
	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/linter"
	"github.com/pgsentry/pgsentry/syntax"
)

func init() {
	linter.Register(linter.RuleAddingSerialPrimaryKeyField, addingSerialPrimaryKeyField)
}

func addingSerialPrimaryKeyField(rc *linter.RuleContext) {
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
				c := ast.NewAddConstraintAction(action.Syntax()).Constraint()
				if c == nil || c.Kind() != syntax.PRIMARY_KEY_CONSTRAINT {
					continue
				}
				if c.HasToken(syntax.USING_KW) {
					continue
				}
				rc.Report(violation(
					linter.RuleAddingSerialPrimaryKeyField,
					"Adding a `PRIMARY KEY` builds its unique index while blocking reads and writes.",
					"Create the index `CONCURRENTLY`, then attach it with `ADD PRIMARY KEY USING INDEX`.",
					rangeOf(c),
				))
			case syntax.ADD_COLUMN_ACTION:
				col := ast.NewAddColumnAction(action.Syntax()).Column()
				if col == nil || !col.HasConstraint(syntax.PRIMARY_KEY_CONSTRAINT) {
					continue
				}
				rc.Report(violation(
					linter.RuleAddingSerialPrimaryKeyField,
					"Adding a `PRIMARY KEY` column builds its unique index while blocking reads and writes.",
					"Add the column first, create the index `CONCURRENTLY`, then attach it with `USING INDEX`.",
					rangeOf(col),
				))
			}
		}
	}
}
