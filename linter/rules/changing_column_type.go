// changing-column-type, grounded on original_source's changing_column_type
// rule. Most ALTER COLUMN ... TYPE changes rewrite the table; the narrow
// binary-coercible exceptions depend on catalog knowledge this tool does
// not have, so every TYPE change is flagged (DESIGN.md, Open Question 1).

package rules

import (
	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/linter"
	"github.com/pgsentry/pgsentry/syntax"
)

func init() {
	linter.Register(linter.RuleChangingColumnType, changingColumnType)
}

func changingColumnType(rc *linter.RuleContext) {
	for _, n := range ast.FindAll(rc.Syntax, syntax.ALTER_COLUMN_TYPE_OPTION) {
		rc.Report(violation(
			linter.RuleChangingColumnType,
			"Changing a column's type rewrites the table and blocks reads and writes.",
			"Add a new column with the new type, backfill it, then drop the old column.",
			linter.TextRange{Start: n.Offset(), End: n.EndOffset()},
		))
	}
}
