// The transaction-scope family: ban-concurrent-index-creation-in-transaction,
// transaction-nesting, and ban-uncommitted-transaction. Grounded on
// original_source's rules of the same names; all three walk the statement
// list once, tracking whether a BEGIN is currently open.

package rules

import (
	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/linter"
	"github.com/pgsentry/pgsentry/syntax"
)

func init() {
	linter.Register(linter.RuleBanConcurrentIndexCreationInTransaction, banConcurrentIndexCreationInTransaction)
	linter.Register(linter.RuleTransactionNesting, transactionNesting)
	linter.Register(linter.RuleBanUncommittedTransaction, banUncommittedTransaction)
}

func banConcurrentIndexCreationInTransaction(rc *linter.RuleContext) {
	inTxn := rc.Settings.AssumeInTransaction
	for _, s := range rc.File.Statements() {
		switch s.Kind() {
		case syntax.BEGIN_STMT:
			inTxn = true
		case syntax.COMMIT_STMT, syntax.ROLLBACK_STMT:
			inTxn = false
		case syntax.CREATE_INDEX_STMT:
			stmt := ast.NewCreateIndexStmt(s.Syntax())
			if !inTxn || !stmt.Concurrently() {
				continue
			}
			rc.Report(violation(
				linter.RuleBanConcurrentIndexCreationInTransaction,
				"`CREATE INDEX CONCURRENTLY` cannot run inside a transaction.",
				"Move the index creation outside the `BEGIN`/`COMMIT` block.",
				rangeOf(stmt),
			))
		}
	}
}

func transactionNesting(rc *linter.RuleContext) {
	if rc.Settings.AssumeInTransaction {
		// The migration runner wraps the whole file in a transaction, so
		// every explicit BEGIN nests and every explicit COMMIT/ROLLBACK
		// ends the runner's transaction early.
		for _, s := range rc.File.Statements() {
			switch s.Kind() {
			case syntax.BEGIN_STMT:
				rc.Report(violation(
					linter.RuleTransactionNesting,
					"`BEGIN` inside the transaction the migration tool already opened.",
					"Remove the explicit `BEGIN`; the migration tool manages the transaction.",
					rangeOf(s),
				))
			case syntax.COMMIT_STMT, syntax.ROLLBACK_STMT:
				rc.Report(violation(
					linter.RuleTransactionNesting,
					"`COMMIT`/`ROLLBACK` ends the transaction the migration tool opened around this file.",
					"Remove the statement; the migration tool manages the transaction.",
					rangeOf(s),
				))
			}
		}
		return
	}

	inTxn := false
	for _, s := range rc.File.Statements() {
		switch s.Kind() {
		case syntax.BEGIN_STMT:
			if inTxn {
				rc.Report(violation(
					linter.RuleTransactionNesting,
					"`BEGIN` while a transaction is already open.",
					"Remove the nested `BEGIN`; PostgreSQL does not support nested transactions.",
					rangeOf(s),
				))
			}
			inTxn = true
		case syntax.COMMIT_STMT, syntax.ROLLBACK_STMT:
			if !inTxn {
				rc.Report(violation(
					linter.RuleTransactionNesting,
					"`COMMIT` or `ROLLBACK` without a matching `BEGIN`.",
					"Remove the statement or open a transaction before it.",
					rangeOf(s),
				))
			}
			inTxn = false
		}
	}
}

func banUncommittedTransaction(rc *linter.RuleContext) {
	var openBegin *ast.Node
	for _, s := range rc.File.Statements() {
		switch s.Kind() {
		case syntax.BEGIN_STMT:
			s := s
			openBegin = &s
		case syntax.COMMIT_STMT, syntax.ROLLBACK_STMT:
			openBegin = nil
		}
	}
	if openBegin == nil {
		return
	}
	eof := rc.Syntax.EndOffset()
	commit := "\nCOMMIT;\n"
	rc.Report(linter.Violation{
		Code:    linter.RuleBanUncommittedTransaction,
		Message: "Transaction is never committed or rolled back.",
		Help:    "Add a `COMMIT` or `ROLLBACK` statement to complete the transaction.",
		Range:   rangeOf(*openBegin),
		Fix: &linter.Fix{
			Title: "Add COMMIT",
			Edits: []linter.Edit{{Range: linter.TextRange{Start: eof, End: eof}, Text: &commit}},
		},
	})
}
