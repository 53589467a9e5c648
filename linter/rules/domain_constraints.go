// ban-create-domain-with-constraint and
// ban-alter-domain-with-add-constraint, grounded on original_source's
// rules of the same names: a domain constraint is enforced against every
// column of that domain everywhere in the database, and adding one
// validates all of them under lock with no NOT VALID escape hatch.

package rules

import (
	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/linter"
	"github.com/pgsentry/pgsentry/syntax"
)

func init() {
	linter.Register(linter.RuleBanCreateDomainWithConstraint, banCreateDomainWithConstraint)
	linter.Register(linter.RuleBanAlterDomainWithAddConstraint, banAlterDomainWithAddConstraint)
}

func banCreateDomainWithConstraint(rc *linter.RuleContext) {
	for _, s := range rc.File.Statements() {
		if s.Kind() != syntax.CREATE_DOMAIN_STMT {
			continue
		}
		syn := s.Syntax()
		if syn.FirstChildOfKind(syntax.CHECK_CONSTRAINT) == nil &&
			syn.FirstChildOfKind(syntax.NOT_NULL_CONSTRAINT) == nil {
			continue
		}
		rc.Report(violation(
			linter.RuleBanCreateDomainWithConstraint,
			"A domain constraint applies to every column using the domain and cannot be validated lazily.",
			"Use a plain type and per-column `CHECK` constraints instead.",
			rangeOf(s),
		))
	}
}

func banAlterDomainWithAddConstraint(rc *linter.RuleContext) {
	for _, s := range rc.File.Statements() {
		if s.Kind() != syntax.ALTER_DOMAIN_STMT {
			continue
		}
		stmt := ast.NewAlterDomainStmt(s.Syntax())
		if !stmt.AddsConstraint() {
			continue
		}
		rc.Report(violation(
			linter.RuleBanAlterDomainWithAddConstraint,
			"Adding a domain constraint validates every column using the domain while holding locks across tables.",
			"Use per-column `CHECK` constraints added `NOT VALID` instead.",
			rangeOf(stmt),
		))
	}
}
