// disallowed-unique-constraint, grounded on original_source's
// disallowed_unique_constraint rule: ADD UNIQUE (...) builds its index
// under an ACCESS EXCLUSIVE lock. The safe pattern is CREATE UNIQUE INDEX
// CONCURRENTLY followed by ADD CONSTRAINT ... UNIQUE USING INDEX.

package rules

import (
	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/linter"
	"github.com/pgsentry/pgsentry/syntax"
)

func init() {
	linter.Register(linter.RuleDisallowedUniqueConstraint, disallowedUniqueConstraint)
}

func disallowedUniqueConstraint(rc *linter.RuleContext) {
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
			c := ast.NewAddConstraintAction(action.Syntax()).Constraint()
			if c == nil || c.Kind() != syntax.UNIQUE_CONSTRAINT {
				continue
			}
			if c.HasToken(syntax.USING_KW) {
				continue
			}
			rc.Report(violation(
				linter.RuleDisallowedUniqueConstraint,
				"Adding a `UNIQUE` constraint builds its index while blocking reads and writes.",
				"Create a unique index `CONCURRENTLY`, then attach it with `ADD CONSTRAINT ... UNIQUE USING INDEX`.",
				rangeOf(c),
			))
		}
	}
}
