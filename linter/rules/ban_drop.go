// The ban-drop family, grounded on original_source's ban_drop_database,
// ban_drop_table, ban_drop_column, and ban_drop_not_null rules: all four
// are literal triggers on destructive statements that lose data or weaken
// invariants the application may rely on.

package rules

import (
	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/linter"
	"github.com/pgsentry/pgsentry/syntax"
)

func init() {
	linter.Register(linter.RuleBanDropDatabase, banDropDatabase)
	linter.Register(linter.RuleBanDropTable, banDropTable)
	linter.Register(linter.RuleBanDropColumn, banDropColumn)
	linter.Register(linter.RuleBanDropNotNull, banDropNotNull)
}

func banDropDatabase(rc *linter.RuleContext) {
	for _, s := range rc.File.Statements() {
		if s.Kind() != syntax.GENERIC_STMT {
			continue
		}
		stmt := ast.NewGenericStmt(s.Syntax())
		if stmt.LeadingKeywords(2) != "DROP DATABASE" {
			continue
		}
		rc.Report(violation(
			linter.RuleBanDropDatabase,
			"Dropping a database deletes everything in it.",
			"",
			rangeOf(stmt),
		))
	}
}

func banDropTable(rc *linter.RuleContext) {
	for _, s := range rc.File.Statements() {
		if s.Kind() != syntax.DROP_TABLE_STMT {
			continue
		}
		rc.Report(violation(
			linter.RuleBanDropTable,
			"Dropping a table deletes its data and breaks anything that still reads from it.",
			"Make sure the table is unused before dropping it, or archive the data first.",
			rangeOf(s),
		))
	}
}

func banDropColumn(rc *linter.RuleContext) {
	for _, n := range ast.FindAll(rc.Syntax, syntax.DROP_COLUMN_ACTION) {
		rc.Report(violation(
			linter.RuleBanDropColumn,
			"Dropping a column deletes its data and breaks clients that still select it.",
			"Stop reading and writing the column in every deployed version before dropping it.",
			linter.TextRange{Start: n.Offset(), End: n.EndOffset()},
		))
	}
}

func banDropNotNull(rc *linter.RuleContext) {
	for _, n := range ast.FindAll(rc.Syntax, syntax.ALTER_COLUMN_DROP_NOT_NULL_OPTION) {
		rc.Report(violation(
			linter.RuleBanDropNotNull,
			"Dropping `NOT NULL` lets NULLs into a column the application may assume is always set.",
			"",
			linter.TextRange{Start: n.Offset(), End: n.EndOffset()},
		))
	}
}
