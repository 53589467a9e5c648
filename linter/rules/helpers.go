// Package rules implements every lint rule spec.md §4.7 names. Each file
// registers its analyzer with linter.Register from an init() function, so
// importing this package for its side effects (e.g. from a cmd/ main)
// activates every rule; the linter package itself never imports this one,
// avoiding an import cycle while keeping spec.md's two-package split
// (linter driver vs. linter/rules).
package rules

import (
	"sort"
	"strings"

	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/internal/green"
	"github.com/pgsentry/pgsentry/linter"
	"github.com/pgsentry/pgsentry/syntax"
)

// tablesCreatedInInput walks statements in source order and returns the
// set of table names created by a CREATE TABLE inside a transaction,
// matching spec.md §4.7's "tables-created-in-input" shared helper —
// grounded on original_source/linter/src/rules.rs's
// tables_created_in_transaction, generalized to the AST overlay's
// Statements()/ast.Node rather than a typed RootStmt slice.
//
// A CREATE TABLE outside any transaction is not collected: the helper
// exists to exempt statements elsewhere in the same transaction as a
// just-created table, which only makes sense once that table has been
// created and is still uncommitted.
func tablesCreatedInInput(f *ast.SourceFile) map[string]bool {
	created := map[string]bool{}
	inTxn := false
	for _, s := range f.Statements() {
		switch s.Kind() {
		case syntax.BEGIN_STMT:
			inTxn = true
		case syntax.COMMIT_STMT, syntax.ROLLBACK_STMT:
			inTxn = false
		case syntax.CREATE_TABLE_STMT:
			if inTxn {
				stmt := ast.NewCreateTableStmt(s.Syntax())
				created[stmt.TableName()] = true
			}
		}
	}
	return created
}

// constraintState is the constraint-pair tracker's per-name state
// (spec.md §4.7: "record DROP CONSTRAINT name -> Dropped, on subsequent
// ADD CONSTRAINT name -> Added move it out of Dropped; VALIDATE
// CONSTRAINT name is silently accepted if name is in the tracker").
type constraintState int

const (
	constraintDropped constraintState = iota
	constraintAdded
)

// constraintTracker records the dropped/re-added lifecycle of named
// constraints across an input's statements, used by rules that need to
// recognize the "drop and recreate with NOT VALID, then validate"
// migration pattern as safe.
type constraintTracker map[string]constraintState

func newConstraintTracker() constraintTracker { return constraintTracker{} }

func (t constraintTracker) drop(name string)   { t[trimQuotes(name)] = constraintDropped }
func (t constraintTracker) add(name string)    { t[trimQuotes(name)] = constraintAdded }
func (t constraintTracker) tracked(name string) bool {
	_, ok := t[trimQuotes(name)]
	return ok
}

// droppedNotReAdded reports whether name was dropped earlier in the input
// and has not been re-added yet — the window in which a following ADD
// CONSTRAINT of the same name is the safe drop-and-recreate pattern.
func (t constraintTracker) droppedNotReAdded(name string) bool {
	state, ok := t[trimQuotes(name)]
	return ok && state == constraintDropped
}

func trimQuotes(s string) string {
	return strings.Trim(s, `"`)
}

// volatileDefaultFns is the set of commonly used volatile-returning
// function names that keep an ADD COLUMN ... DEFAULT unsafe from pg11 on
// (before pg11 every default is flagged) and make it ineligible as a
// "non-volatile default" for adding-required-field.
// PostgreSQL has no general way to ask an arbitrary expression whether it
// is volatile without consulting the catalog, so this is a denylist of
// the functions migrations actually reach for rather than a full volatility
// analysis — the same scope original_source's rule tests exercise (literal
// constants are treated as non-volatile, now()/random()-style calls are
// not).
var volatileDefaultFns = map[string]bool{
	"now": true, "current_timestamp": true, "clock_timestamp": true,
	"random": true, "gen_random_uuid": true, "uuid_generate_v4": true,
	"nextval": true, "statement_timestamp": true, "transaction_timestamp": true,
}

// isVolatileDefault inspects a DEFAULT constraint's expression text for a
// call to one of volatileDefaultFns. It is a textual approximation (one of
// these names followed by '(', see callsFunction), not a semantic one.
func isVolatileDefault(exprText string) bool {
	for name := range volatileDefaultFns {
		if callsFunction(exprText, name) {
			return true
		}
	}
	return false
}

// callsFunction reports whether text contains name immediately followed
// by optional whitespace and '(' — a cheap call-site detector sufficient
// for the handful of functions volatileDefaultFns lists, since none of
// them collide with a longer identifier's suffix in practice.
func callsFunction(text, name string) bool {
	lower := strings.ToLower(text)
	idx := 0
	for {
		i := strings.Index(lower[idx:], name)
		if i < 0 {
			return false
		}
		pos := idx + i
		before := pos == 0 || !isIdentByte(lower[pos-1])
		after := pos + len(name)
		rest := strings.TrimLeft(lower[after:], " \t\n")
		if before && strings.HasPrefix(rest, "(") {
			return true
		}
		idx = pos + len(name)
	}
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// violation builds the message/help pair shape most rules report
// (original_source's ViolationMessage Note/Help pair); rules needing a Fix
// construct the linter.Violation literal themselves.
func violation(code linter.Rule, message, help string, rng linter.TextRange) linter.Violation {
	return linter.Violation{Code: code, Message: message, Help: help, Range: rng}
}

// normalizeTypeName lowercases a TYPE_NAME node's text and collapses its
// interior whitespace to single spaces, so "CHARACTER   VARYING(100)"
// compares as "character varying(100)".
func normalizeTypeName(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// baseTypeName strips a normalized type name's length/precision suffix and
// array brackets: "varchar(100)" -> "varchar", "numeric(10, 2)[]" ->
// "numeric".
func baseTypeName(normalized string) string {
	if i := strings.IndexAny(normalized, "(["); i >= 0 {
		normalized = normalized[:i]
	}
	return strings.TrimSpace(normalized)
}

// typeNameSites returns, sorted by offset, every TYPE_NAME node that is a
// direct child of a COLUMN_DEF or ALTER_COLUMN_TYPE_OPTION — the two places
// a column acquires a type. The owning nodes are not returned. The
// column-type family of rules (prefer-bigint-over-int, ban-char-field, ...)
// all iterate these.
func typeNameSites(f *ast.SourceFile) []*green.SyntaxNode {
	var out []*green.SyntaxNode
	for _, owner := range []syntax.Kind{syntax.COLUMN_DEF, syntax.ALTER_COLUMN_TYPE_OPTION} {
		for _, n := range ast.FindAll(f.Syntax(), owner) {
			if tn := n.FirstChildOfKind(syntax.TYPE_NAME); tn != nil {
				out = append(out, tn)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Offset() < out[j].Offset() })
	return out
}

// checkNotNullColumn inspects a CHECK constraint node and, when its
// predicate has exactly the shape `col IS NOT NULL`, returns the column
// name (quote-trimmed, lowercase-folded). The predicate text between the
// constraint's parentheses is matched lexically rather than via the
// expression tree; the four-token shape leaves no room for ambiguity.
func checkNotNullColumn(constraint *green.SyntaxNode) (string, bool) {
	text := constraint.Text()
	open := strings.IndexByte(text, '(')
	closing := strings.LastIndexByte(text, ')')
	if open < 0 || closing <= open {
		return "", false
	}
	fields := strings.Fields(text[open+1 : closing])
	if len(fields) != 4 {
		return "", false
	}
	if !strings.EqualFold(fields[1], "is") || !strings.EqualFold(fields[2], "not") ||
		!strings.EqualFold(fields[3], "null") {
		return "", false
	}
	col := trimQuotes(fields[0])
	if strings.HasPrefix(fields[0], `"`) {
		return col, true
	}
	return strings.ToLower(col), true
}

// firstStmtOffset returns the byte offset of the first non-trivia token in
// the file — where require-timeout-settings' fix inserts its SET
// statements, keeping any leading comment block above the insertion.
func firstStmtOffset(file *green.SyntaxNode) int {
	off := file.EndOffset()
	var walk func(n *green.SyntaxNode) bool
	walk = func(n *green.SyntaxNode) bool {
		for _, c := range n.Children() {
			if c.Token != nil {
				if !c.Token.Kind().IsTrivia() {
					off = c.Token.Offset()
					return true
				}
				continue
			}
			if walk(c.Node) {
				return true
			}
		}
		return false
	}
	walk(file)
	if off == file.EndOffset() && file.Offset() == 0 {
		return 0
	}
	return off
}

// insertEdit builds an insertion Edit at a single point.
func insertEdit(at int, text string) linter.Edit {
	return linter.Edit{Range: linter.TextRange{Start: at, End: at}, Text: &text}
}

// ranged is satisfied by ast.Node and every typed wrapper that embeds it.
type ranged interface {
	TextRange() (int, int)
}

// rangeOf converts an AST node's (start, end) pair to linter.TextRange.
func rangeOf(n ranged) linter.TextRange {
	start, end := n.TextRange()
	return linter.TextRange{Start: start, End: end}
}
