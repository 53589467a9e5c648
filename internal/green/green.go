// Package green implements the immutable, structurally-shared green tree
// and the red (SyntaxNode/SyntaxToken) view over it — the lossless CST at
// the center of this repository.
//
// The teacher has no analog for this architecture (sqlparser/pgsql is a
// single-pass cursor parser with no persisted tree), so the node/token
// split and the red-tree's lazy parent-pointer view are grounded on
// original_source/crates/squawk_parser's event-driven rowan-style tree,
// re-expressed with explicit Go structs instead of Rust enums and an
// arena allocator.
package green

import (
	"fmt"
	"strings"

	"github.com/alecthomas/repr"

	"github.com/pgsentry/pgsentry/syntax"
)

// Element is either a *Node or a *Token; the green tree's children slice
// holds a mix of both.
type Element interface {
	Kind() syntax.Kind
	Len() int
	isElement()
}

// Token is a leaf: a kind and its verbatim source text. Tokens are never
// mutated after construction.
type Token struct {
	kind syntax.Kind
	text string
}

// NewToken builds a green token. text is copied verbatim from the input;
// the concatenation of every token's text in source order must reproduce
// the input exactly.
func NewToken(kind syntax.Kind, text string) *Token {
	return &Token{kind: kind, text: text}
}

func (t *Token) Kind() syntax.Kind { return t.kind }
func (t *Token) Len() int          { return len(t.text) }
func (t *Token) Text() string      { return t.text }
func (*Token) isElement()          {}

// Node is an immutable, structurally-shared interior tree node. It carries
// no text of its own; its length is the sum of its children's lengths.
type Node struct {
	kind     syntax.Kind
	children []Element
	length   int
}

// NewNode builds a green node from kind and an ordered list of children.
func NewNode(kind syntax.Kind, children []Element) *Node {
	n := &Node{kind: kind, children: children}
	for _, c := range children {
		n.length += c.Len()
	}
	return n
}

func (n *Node) Kind() syntax.Kind    { return n.kind }
func (n *Node) Len() int             { return n.length }
func (n *Node) Children() []Element  { return n.children }
func (*Node) isElement()             {}

// SyntaxNode is a red-tree view over a green Node: it adds a parent
// pointer and an absolute byte offset, both computed lazily at
// construction time rather than stored in the green tree. Two SyntaxNodes
// compare equal (via Is) iff they wrap the same green node at the same
// offset.
type SyntaxNode struct {
	green  *Node
	parent *SyntaxNode
	offset int
}

// NewRoot wraps a green root as a SyntaxNode with no parent at offset 0.
func NewRoot(green *Node) *SyntaxNode {
	return &SyntaxNode{green: green, offset: 0}
}

func (n *SyntaxNode) Kind() syntax.Kind { return n.green.Kind() }
func (n *SyntaxNode) Green() *Node      { return n.green }
func (n *SyntaxNode) Parent() *SyntaxNode { return n.parent }
func (n *SyntaxNode) Offset() int       { return n.offset }
func (n *SyntaxNode) EndOffset() int    { return n.offset + n.green.Len() }

// TextRange returns the node's absolute [start, end) byte range.
func (n *SyntaxNode) TextRange() (int, int) { return n.offset, n.EndOffset() }

// Is reports whether n and other wrap the same green node at the same
// offset.
func (n *SyntaxNode) Is(other *SyntaxNode) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.green == other.green && n.offset == other.offset
}

// SyntaxElement is either a *SyntaxNode or a *SyntaxToken, returned while
// walking a SyntaxNode's children.
type SyntaxElement struct {
	Node  *SyntaxNode
	Token *SyntaxToken
}

func (e SyntaxElement) Kind() syntax.Kind {
	if e.Node != nil {
		return e.Node.Kind()
	}
	return e.Token.Kind()
}

// Children returns the direct children as red views, constructed lazily
// and not cached — callers that need to walk repeatedly should hold onto
// the returned slice themselves.
func (n *SyntaxNode) Children() []SyntaxElement {
	out := make([]SyntaxElement, 0, len(n.green.children))
	off := n.offset
	for _, c := range n.green.children {
		switch v := c.(type) {
		case *Node:
			out = append(out, SyntaxElement{Node: &SyntaxNode{green: v, parent: n, offset: off}})
		case *Token:
			out = append(out, SyntaxElement{Token: &SyntaxToken{green: v, parent: n, offset: off}})
		}
		off += c.Len()
	}
	return out
}

// ChildNodes returns only the Node children, skipping tokens (and skipping
// trivia automatically, since trivia is always represented as tokens).
func (n *SyntaxNode) ChildNodes() []*SyntaxNode {
	var out []*SyntaxNode
	for _, c := range n.Children() {
		if c.Node != nil {
			out = append(out, c.Node)
		}
	}
	return out
}

// FirstChildOfKind returns the first direct child node with the given
// kind, or nil.
func (n *SyntaxNode) FirstChildOfKind(k syntax.Kind) *SyntaxNode {
	for _, c := range n.ChildNodes() {
		if c.Kind() == k {
			return c
		}
	}
	return nil
}

// ChildrenOfKind returns every direct child node with the given kind.
func (n *SyntaxNode) ChildrenOfKind(k syntax.Kind) []*SyntaxNode {
	var out []*SyntaxNode
	for _, c := range n.ChildNodes() {
		if c.Kind() == k {
			out = append(out, c)
		}
	}
	return out
}

// Token returns the first direct child token with the given kind, or nil.
// Used by AST overlay accessors for fixed keyword tokens.
func (n *SyntaxNode) Token(k syntax.Kind) *SyntaxToken {
	for _, c := range n.Children() {
		if c.Token != nil && c.Token.Kind() == k {
			return c.Token
		}
	}
	return nil
}

// Text returns the node's full verbatim source text (including interior
// trivia).
func (n *SyntaxNode) Text() string {
	var b strings.Builder
	writeText(&b, n.green)
	return b.String()
}

func writeText(b *strings.Builder, e Element) {
	switch v := e.(type) {
	case *Token:
		b.WriteString(v.text)
	case *Node:
		for _, c := range v.children {
			writeText(b, c)
		}
	}
}

// SyntaxToken is a red-tree view over a green Token.
type SyntaxToken struct {
	green  *Token
	parent *SyntaxNode
	offset int
}

func (t *SyntaxToken) Kind() syntax.Kind     { return t.green.Kind() }
func (t *SyntaxToken) Text() string          { return t.green.Text() }
func (t *SyntaxToken) Parent() *SyntaxNode   { return t.parent }
func (t *SyntaxToken) Offset() int           { return t.offset }
func (t *SyntaxToken) EndOffset() int        { return t.offset + t.green.Len() }
func (t *SyntaxToken) TextRange() (int, int) { return t.offset, t.EndOffset() }

// Dump renders the green tree as an indented debug listing: one line per
// node (kind and byte range) and one line per token (kind and
// Go-syntax-quoted text), in the manner of the teacher's
// sqltest/querydump.go use of repr.String to quote values for test fixture
// output.
func Dump(root Element) string {
	var b strings.Builder
	dump(&b, root, 0, 0)
	return b.String()
}

func dump(b *strings.Builder, e Element, depth, offset int) int {
	indent := strings.Repeat("  ", depth)
	switch v := e.(type) {
	case *Node:
		fmt.Fprintf(b, "%s%s@%d..%d\n", indent, v.Kind(), offset, offset+v.Len())
		off := offset
		for _, c := range v.children {
			off = dump(b, c, depth+1, off)
		}
		return offset + v.Len()
	case *Token:
		fmt.Fprintf(b, "%s%s@%d..%d %s\n", indent, v.Kind(), offset, offset+v.Len(), repr.String(v.Text()))
		return offset + v.Len()
	}
	return offset
}
