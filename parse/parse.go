// Package parse is the entry point that ties the lexer, the keyword
// classifier, the event-driven parser, and the tree builder together:
// Text(src) returns the lossless syntax tree plus the typed ast.SourceFile
// and any syntax errors accumulated along the way.
package parse

import (
	"github.com/pgsentry/pgsentry/ast"
	"github.com/pgsentry/pgsentry/internal/green"
	"github.com/pgsentry/pgsentry/internal/lexedstr"
	"github.com/pgsentry/pgsentry/internal/parser"
)

// Parse is the result of parsing one source text: the green tree root, a
// red-tree view of it, the typed AST root, and any syntax errors
// encountered along the way. Generic over the AST root type so the same
// shape could in principle parse a standalone expression or fragment; this
// repository only ever instantiates Parse[*ast.SourceFile].
type Parse[T any] struct {
	Green  *green.Node
	Errors []green.SyntaxError
	tree   T
}

// SyntaxNode returns the red-tree root.
func (p Parse[T]) SyntaxNode() *green.SyntaxNode { return green.NewRoot(p.Green) }

// Tree returns the typed AST root.
func (p Parse[T]) Tree() T { return p.tree }

// Dump renders the green tree as an indented debug listing (repr-quoted
// token text, byte ranges per node) — the shape the teacher's
// sqltest/querydump.go produces for fixture-based tests.
func (p Parse[T]) Dump() string { return green.Dump(p.Green) }

// TokenDump lexes src and renders each token as `KIND@start..end "text"`,
// one per line — the token-level counterpart of Parse.Dump, for callers
// outside this module (the internal lexedstr package is not importable
// from them).
func TokenDump(src string) string {
	return lexedstr.Build(src).TokenDump()
}

// Text parses src into a full Parse[*ast.SourceFile]. It never fails: a
// malformed input still produces a best-effort, fully lossless tree plus a
// non-empty Errors list (spec.md §3's "parsing never fails" contract).
func Text(src string) Parse[*ast.SourceFile] {
	ls := lexedstr.Build(src)
	in := parser.NewInput(ls)
	events := parser.ParseSourceFile(in)
	root, errs := green.Build(events, in, src)
	for _, le := range ls.Errors() {
		start, _ := ls.Range(le.TokenIndex)
		errs = append(errs, green.SyntaxError{Message: le.Message, Pos: start})
	}
	return Parse[*ast.SourceFile]{
		Green:  root,
		Errors: errs,
		tree:   ast.NewSourceFile(green.NewRoot(root)),
	}
}
