// prefer-robust-stmts, grounded on original_source's prefer_robust_stmts
// rule: a migration that fails partway through must be rerunnable, so DDL
// outside a transaction needs IF [NOT] EXISTS guards (or, for ADD
// CONSTRAINT, a preceding DROP CONSTRAINT IF EXISTS of the same name), and
// a concurrently created index — which can never run in a transaction —
// additionally needs an explicit name so a failed build can be dropped.

package rules

import (
	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/linter"
	"github.com/pgsentry/pgsentry/syntax"
)

func init() {
	linter.Register(linter.RulePreferRobustStmts, preferRobustStmts)
}

const robustMsg = "Missing `IF NOT EXISTS`; the migration can't be rerun if it fails partway through."

func preferRobustStmts(rc *linter.RuleContext) {
	stmts := rc.File.Statements()
	// A lone statement runs inside PostgreSQL's implicit transaction, so
	// statement-level guards buy nothing. ALTER TABLE actions are still
	// checked: one statement can carry several actions, and a failure
	// between actions of a rerun is exactly what the guards protect.
	single := len(stmts) == 1

	inTxn := rc.Settings.AssumeInTransaction
	tracker := newConstraintTracker()

	for _, s := range stmts {
		switch s.Kind() {
		case syntax.BEGIN_STMT:
			inTxn = true
		case syntax.COMMIT_STMT, syntax.ROLLBACK_STMT:
			inTxn = false

		case syntax.ALTER_TABLE_STMT:
			stmt := ast.NewAlterTableStmt(s.Syntax())
			for _, action := range stmt.Actions() {
				if robustAlterAction(action, tracker) {
					continue
				}
				if inTxn {
					continue
				}
				rc.Report(violation(linter.RulePreferRobustStmts, robustMsg, "", rangeOf(action)))
			}

		case syntax.CREATE_INDEX_STMT:
			stmt := ast.NewCreateIndexStmt(s.Syntax())
			// CONCURRENTLY runs outside any transaction regardless of the
			// surrounding BEGIN, so the guard requirement sticks even there.
			if single || stmt.IfNotExists() || (!stmt.Concurrently() && inTxn) {
				continue
			}
			help := ""
			if stmt.Concurrently() && stmt.Name() == "" {
				help = "Use an explicit name for a concurrently created index so a failed build can be dropped."
			}
			rc.Report(violation(linter.RulePreferRobustStmts, robustMsg, help, rangeOf(stmt)))

		case syntax.CREATE_TABLE_STMT:
			stmt := ast.NewCreateTableStmt(s.Syntax())
			if single || inTxn || stmt.IfNotExists() {
				continue
			}
			rc.Report(violation(linter.RulePreferRobustStmts, robustMsg, "", rangeOf(stmt)))

		case syntax.DROP_INDEX_STMT:
			stmt := ast.NewDropIndexStmt(s.Syntax())
			if single || stmt.IfExists() || (!stmt.Concurrently() && inTxn) {
				continue
			}
			rc.Report(violation(linter.RulePreferRobustStmts, robustMsg, "", rangeOf(stmt)))

		case syntax.DROP_TABLE_STMT:
			stmt := ast.NewDropTableStmt(s.Syntax())
			if single || inTxn || stmt.IfExists() {
				continue
			}
			rc.Report(violation(linter.RulePreferRobustStmts, robustMsg, "", rangeOf(stmt)))
		}
	}
}

// robustAlterAction reports whether one ALTER TABLE action is safe to
// rerun, updating the drop/add constraint tracker as a side effect.
func robustAlterAction(action ast.Node, tracker constraintTracker) bool {
	switch action.Kind() {
	case syntax.DROP_CONSTRAINT_ACTION:
		drop := ast.NewDropConstraintAction(action.Syntax())
		if name := drop.Name(); name != "" {
			tracker.drop(name)
		}
		return drop.IfExists()
	case syntax.ADD_COLUMN_ACTION:
		return ast.NewAddColumnAction(action.Syntax()).IfNotExists()
	case syntax.DROP_COLUMN_ACTION:
		return ast.NewDropColumnAction(action.Syntax()).IfExists()
	case syntax.VALIDATE_CONSTRAINT_ACTION:
		// Validating a constraint this input dropped and re-added is part
		// of the safe drop-and-recreate pattern.
		return tracker.tracked(ast.NewValidateConstraintAction(action.Syntax()).Name())
	case syntax.ADD_CONSTRAINT_ACTION:
		add := ast.NewAddConstraintAction(action.Syntax())
		if c := add.Constraint(); c != nil {
			if name := c.Name(); name != "" && tracker.droppedNotReAdded(name) {
				tracker.add(name)
				return true
			}
		}
		return false
	default:
		return false
	}
}
