// Package linter is the rule-driver half of the tool: Linter holds the
// enabled rule set and settings, and Lint runs every enabled rule's
// analyzer over a parsed file, then filters the result through any
// `-- squawk-ignore` directives found in the source (spec.md §4.6, §4.8).
//
// Grounded on original_source/crates/squawk_linter/src/lib.rs's Linter
// struct and its with_all_rules/without_rules/from constructors and
// lint() method, adapted from a monolithic match-on-rules dispatch to a
// registry populated by linter/rules' init() functions (the database/sql
// driver-registration idiom), so this package never imports linter/rules
// and the two can't cycle.
package linter

import (
	"sort"

	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/parse"
)

// Linter holds the rule set and settings for one Lint call. It carries no
// state between calls: Lint is a pure function of its arguments and the
// receiver's configuration (spec.md §5: "No global mutable state").
type Linter struct {
	enabled  map[Rule]bool
	settings Settings
}

// WithAllRules enables every rule except the reserved RuleUnusedIgnore.
func WithAllRules() *Linter {
	return From(AllRules())
}

// WithoutRules enables every rule except those named in exclude.
func WithoutRules(exclude []Rule) *Linter {
	excluded := make(map[Rule]bool, len(exclude))
	for _, r := range exclude {
		excluded[r] = true
	}
	var kept []Rule
	for _, r := range AllRules() {
		if !excluded[r] {
			kept = append(kept, r)
		}
	}
	return From(kept)
}

// From enables exactly the rules listed, in whatever set the caller
// chooses — including RuleUnusedIgnore, which WithAllRules and
// WithoutRules never include by default.
func From(rules []Rule) *Linter {
	l := &Linter{enabled: make(map[Rule]bool, len(rules)), settings: DefaultSettings()}
	for _, r := range rules {
		l.enabled[r] = true
	}
	return l
}

// Settings returns the linter's current settings.
func (l *Linter) Settings() Settings { return l.settings }

// SetSettings replaces the linter's settings.
func (l *Linter) SetSettings(s Settings) { l.settings = s }

// Enabled reports whether r is in this linter's enabled set.
func (l *Linter) Enabled(r Rule) bool { return l.enabled[r] }

// Lint runs every enabled rule over p, resolves ignore directives found
// in text, filters suppressed violations, and returns the rest sorted by
// where they occur in the source (spec.md §4.6 steps 1-6).
func (l *Linter) Lint(p parse.Parse[*ast.SourceFile], text string) []Violation {
	var violations []Violation
	report := func(v Violation) { violations = append(violations, v) }

	rc := &RuleContext{
		File:     p.Tree(),
		Syntax:   p.SyntaxNode(),
		Settings: l.settings,
		report:   report,
	}
	for r := Rule(0); r < ruleCount; r++ {
		if r == RuleUnusedIgnore || !l.enabled[r] {
			continue
		}
		fn, ok := registry[r]
		if !ok {
			continue
		}
		fn(rc)
	}

	for _, e := range p.Errors {
		violations = append(violations, Violation{
			Code:    RuleSyntaxError,
			Level:   LevelError,
			Message: e.Message,
			Range:   TextRange{Start: e.Pos, End: e.Pos},
		})
	}

	directives := scanIgnores(p.Tree(), text)
	idx := newIgnoreIndex(directives)

	kept := violations[:0]
	for _, v := range violations {
		if idx.Contains(v.Range, v.Code) {
			continue
		}
		kept = append(kept, v)
	}
	violations = kept

	if l.enabled[RuleUnusedIgnore] {
		for _, d := range idx.Unused() {
			violations = append(violations, Violation{
				Code:    RuleUnusedIgnore,
				Message: "this ignore directive never suppressed a violation",
				Range:   d.Range,
			})
		}
	}

	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].Range.Start < violations[j].Range.Start
	})
	return violations
}
