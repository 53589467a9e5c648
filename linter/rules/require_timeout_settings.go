// require-timeout-settings, grounded on original_source's
// require_timeout_settings rule: a migration that takes locks should bound
// both how long it waits for them (`lock_timeout`) and how long any one
// statement may run (`statement_timeout`) before the first potentially
// slow operation. Each missing setting is reported once, at the first slow
// statement, with a fix inserting the SET immediately after any leading
// comment block.

package rules

import (
	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/linter"
	"github.com/pgsentry/pgsentry/syntax"
)

func init() {
	linter.Register(linter.RuleRequireTimeoutSettings, requireTimeoutSettings)
}

// possiblySlowKinds are the statements that take ACCESS EXCLUSIVE locks on
// data other sessions are using. Creating a brand-new object (table,
// view, domain) locks nothing anyone can be waiting on, and index
// creation/deletion has its own rules; the table-altering forms are what
// a missing timeout turns into an outage.
var possiblySlowKinds = map[syntax.Kind]bool{
	syntax.ALTER_TABLE_STMT:  true,
	syntax.ALTER_DOMAIN_STMT: true,
}

func requireTimeoutSettings(rc *linter.RuleContext) {
	const (
		missing = iota
		present
		reported
	)
	lockTimeout, stmtTimeout := missing, missing

	for _, s := range rc.File.Statements() {
		if lockTimeout != missing && stmtTimeout != missing {
			break
		}
		switch {
		case s.Kind() == syntax.SET_STMT:
			switch ast.NewSetStmt(s.Syntax()).Setting() {
			case "lock_timeout":
				lockTimeout = present
			case "statement_timeout":
				stmtTimeout = present
			}
		case possiblySlowKinds[s.Kind()]:
			at := firstStmtOffset(rc.Syntax)
			if lockTimeout == missing {
				rc.Report(linter.Violation{
					Code:    linter.RuleRequireTimeoutSettings,
					Message: "Missing `SET lock_timeout` before a potentially slow operation.",
					Help:    "Bound how long this migration may wait for locks.",
					Range:   rangeOf(s),
					Fix: &linter.Fix{
						Title: "Add lock timeout",
						Edits: []linter.Edit{insertEdit(at, "set lock_timeout = '1s';\n")},
					},
				})
				lockTimeout = reported
			}
			if stmtTimeout == missing {
				rc.Report(linter.Violation{
					Code:    linter.RuleRequireTimeoutSettings,
					Message: "Missing `SET statement_timeout` before a potentially slow operation.",
					Help:    "Bound how long any one statement of this migration may run.",
					Range:   rangeOf(s),
					Fix: &linter.Fix{
						Title: "Add statement timeout",
						Edits: []linter.Edit{insertEdit(at, "set statement_timeout = '5s';\n")},
					},
				})
				stmtTimeout = reported
			}
		}
	}
}
