// require-concurrent-index-creation and require-concurrent-index-deletion,
// grounded on original_source's require_concurrent_index_creation /
// require_concurrent_index_deletion rules: plain CREATE INDEX takes a lock
// that blocks writes for the duration of the build, and plain DROP INDEX
// takes an ACCESS EXCLUSIVE lock; both have CONCURRENTLY variants that
// avoid the lock.

package rules

import (
	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/linter"
	"github.com/pgsentry/pgsentry/syntax"
)

func init() {
	linter.Register(linter.RuleRequireConcurrentIndexCreation, requireConcurrentIndexCreation)
	linter.Register(linter.RuleRequireConcurrentIndexDeletion, requireConcurrentIndexDeletion)
}

func requireConcurrentIndexCreation(rc *linter.RuleContext) {
	created := tablesCreatedInInput(rc.File)
	for _, s := range rc.File.Statements() {
		if s.Kind() != syntax.CREATE_INDEX_STMT {
			continue
		}
		stmt := ast.NewCreateIndexStmt(s.Syntax())
		if stmt.Concurrently() {
			continue
		}
		// An index on a table created earlier in this input, inside a
		// transaction (see tablesCreatedInInput), cannot block anyone: the
		// table has no readers or writers yet.
		if created[stmt.TableName()] {
			continue
		}
		rc.Report(violation(
			linter.RuleRequireConcurrentIndexCreation,
			"Creating an index blocks writes to the table while the index is built.",
			"Create the index with `CONCURRENTLY` to allow writes during the build.",
			rangeOf(stmt),
		))
	}
}

func requireConcurrentIndexDeletion(rc *linter.RuleContext) {
	for _, s := range rc.File.Statements() {
		if s.Kind() != syntax.DROP_INDEX_STMT {
			continue
		}
		stmt := ast.NewDropIndexStmt(s.Syntax())
		if stmt.Concurrently() {
			continue
		}
		rc.Report(violation(
			linter.RuleRequireConcurrentIndexDeletion,
			"Dropping an index blocks reads and writes to the table while the index is removed.",
			"Drop the index with `CONCURRENTLY` to avoid the lock.",
			rangeOf(stmt),
		))
	}
}
