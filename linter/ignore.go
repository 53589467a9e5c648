package linter

import (
	"strings"

	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/internal/green"
	"github.com/pgsentry/pgsentry/syntax"
)

// ignoreScope is the <scope> token of a `-- squawk-ignore <scope> <rules>`
// comment (spec.md §4.8).
type ignoreScope int

const (
	scopeFile ignoreScope = iota
	scopeNextStatement
	scopeSameLine
)

var scopeNames = map[string]ignoreScope{
	"file":           scopeFile,
	"next-statement": scopeNextStatement,
	"same-line":      scopeSameLine,
	"line":           scopeSameLine,
}

// ignoreDirective is one resolved `-- squawk-ignore` comment: the byte
// range it suppresses violations over, and the set of rule codes it
// covers (All set means "*").
type ignoreDirective struct {
	Range TextRange
	Rules map[Rule]bool
	All   bool
	used  bool
}

// covers reports whether the directive applies to rule r.
func (d *ignoreDirective) covers(r Rule) bool {
	if d.All {
		return true
	}
	return d.Rules[r]
}

const ignorePrefix = "squawk-ignore"

// scanIgnores walks every comment token in the file (trivia is not part of
// the AST overlay's node tree, so this walks the raw green tree directly)
// and resolves each `-- squawk-ignore` directive found to a concrete byte
// range, per spec.md §4.8's three scopes.
func scanIgnores(file *ast.SourceFile, text string) []*ignoreDirective {
	stmts := file.Statements()
	var out []*ignoreDirective
	walkTokens(file.Syntax(), func(t *green.SyntaxToken) {
		if t.Kind() != syntax.COMMENT {
			return
		}
		d := parseIgnoreComment(t, text, stmts)
		if d != nil {
			out = append(out, d)
		}
	})
	return out
}

func walkTokens(n *green.SyntaxNode, visit func(*green.SyntaxToken)) {
	for _, c := range n.Children() {
		switch {
		case c.Token != nil:
			visit(c.Token)
		case c.Node != nil:
			walkTokens(c.Node, visit)
		}
	}
}

func parseIgnoreComment(t *green.SyntaxToken, text string, stmts []ast.Node) *ignoreDirective {
	body := strings.TrimLeft(t.Text(), "-/* \t")
	body = strings.TrimSuffix(body, "*/")
	body = strings.TrimRight(body, " \t")
	if !strings.HasPrefix(body, ignorePrefix) {
		return nil
	}
	fields := strings.Fields(body[len(ignorePrefix):])
	if len(fields) < 2 {
		return nil
	}
	scope, ok := scopeNames[fields[0]]
	if !ok {
		return nil
	}
	d := &ignoreDirective{Rules: map[Rule]bool{}}
	for _, name := range strings.Split(fields[1], ",") {
		name = strings.TrimSpace(name)
		if name == "*" {
			d.All = true
			continue
		}
		if r, ok := ParseRule(name); ok {
			d.Rules[r] = true
		}
	}

	start, end := t.TextRange()
	switch scope {
	case scopeFile:
		d.Range = TextRange{Start: 0, End: len(text)}
	case scopeNextStatement:
		d.Range = nextStatementRange(end, stmts)
	case scopeSameLine:
		d.Range = sameLineRange(start, text)
	}
	return d
}

// nextStatementRange returns the text range of the first top-level
// statement extending past pos (the directive comment's end), or an empty
// range past EOF if the directive is the last thing in the file (so it can
// never suppress anything — the unused-ignore rule would flag it). The
// comparison is against the statement's end, not its start, so a directive
// written inside a statement's text applies to that statement; a directive
// between statements sits in the file's trivia, and the next statement's
// range starts after it.
func nextStatementRange(pos int, stmts []ast.Node) TextRange {
	for _, s := range stmts {
		start, end := s.TextRange()
		if end > pos {
			return TextRange{Start: start, End: end}
		}
	}
	return TextRange{Start: pos, End: pos}
}

// sameLineRange returns the [start, end) of the source line containing
// byte offset pos.
func sameLineRange(pos int, text string) TextRange {
	start := strings.LastIndexByte(text[:pos], '\n') + 1
	end := strings.IndexByte(text[pos:], '\n')
	if end < 0 {
		end = len(text)
	} else {
		end += pos
	}
	return TextRange{Start: start, End: end}
}
