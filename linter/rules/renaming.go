// renaming-column and renaming-table, grounded on original_source's
// renaming_column / renaming_table rules: renames break any client still
// using the old name, so they belong in a coordinated deploy, not a plain
// migration.

package rules

import (
	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/linter"
	"github.com/pgsentry/pgsentry/syntax"
)

func init() {
	linter.Register(linter.RuleRenamingColumn, renamingColumn)
	linter.Register(linter.RuleRenamingTable, renamingTable)
}

func renamingColumn(rc *linter.RuleContext) {
	for _, n := range ast.FindAll(rc.Syntax, syntax.RENAME_COLUMN_ACTION) {
		rc.Report(violation(
			linter.RuleRenamingColumn,
			"Renaming a column breaks clients that still reference the old name.",
			"Add a new column, migrate readers and writers, then drop the old one.",
			linter.TextRange{Start: n.Offset(), End: n.EndOffset()},
		))
	}
}

func renamingTable(rc *linter.RuleContext) {
	for _, n := range ast.FindAll(rc.Syntax, syntax.RENAME_TABLE_ACTION) {
		rc.Report(violation(
			linter.RuleRenamingTable,
			"Renaming a table breaks clients that still reference the old name.",
			"Create a new table or view and migrate readers before removing the old name.",
			linter.TextRange{Start: n.Offset(), End: n.EndOffset()},
		))
	}
}
