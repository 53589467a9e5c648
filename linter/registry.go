package linter

import (
	"fmt"

	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/internal/green"
)

// RuleContext is what each rule analyzer receives: the parsed file (both
// the typed overlay and the raw red tree, since several rules walk
// GENERIC_BODY subtrees the AST overlay doesn't type), the active
// settings, and a Report sink. Grounded on
// original_source/crates/squawk_linter/src/lib.rs's rule functions, which
// take &Linter and the parse result and push onto self.errors directly;
// Report plays that role here without giving rules write access to the
// rest of the Linter's state.
type RuleContext struct {
	File     *ast.SourceFile
	Syntax   *green.SyntaxNode
	Settings Settings

	report func(Violation)
}

// Report records one violation.
func (rc *RuleContext) Report(v Violation) { rc.report(v) }

// RuleFunc is the analyzer every rule registers: a pure function of
// (context) -> () that reports zero or more violations through rc.Report,
// matching spec.md §4.7's "every rule is a pure function (linter, parse)
// -> ()".
type RuleFunc func(rc *RuleContext)

var registry = map[Rule]RuleFunc{}

// Register associates a rule code with its analyzer. Called from each
// rules/*.go file's init(), the way database/sql drivers register
// themselves — this keeps the linter package itself free of a direct
// import of linter/rules, which would otherwise cycle back to linter.
func Register(r Rule, fn RuleFunc) {
	if _, dup := registry[r]; dup {
		panic(fmt.Sprintf("linter: rule %s already registered", r))
	}
	registry[r] = fn
}
