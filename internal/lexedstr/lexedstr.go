// Package lexedstr turns the raw lexer.Token stream into an indexable
// buffer with keyword resolution and at-token syntax errors, the way the
// teacher's sqlparser/pgsql/scanner.go:classifyIdentifier step turns a raw
// identifier into either a ReservedWordToken or an UnquotedIdentifierToken
// — generalized here from a single lookahead classification into a
// whole-buffer pass over every identifier token.
package lexedstr

import (
	"fmt"
	"strings"

	"github.com/pgsentry/pgsentry/internal/lexer"
	"github.com/pgsentry/pgsentry/syntax"
)

// LexError is a diagnostic attached to a specific token index.
type LexError struct {
	TokenIndex int
	Message    string
}

// LexedStr is an indexable token buffer: kind and absolute byte start per
// token, plus a trailing EOF sentinel carrying the total byte length, and
// the list of lexical errors discovered while building it.
type LexedStr struct {
	kinds  []syntax.Kind
	starts []int
	joint  []bool // joint[i]: no trivia between raw token i and i+1
	errs   []LexError
	text   string
}

// Build lexes text and classifies every identifier against the keyword
// table, producing at-token errors for malformed literals.
func Build(text string) *LexedStr {
	raw := lexer.Lex(text)
	ls := &LexedStr{text: text}
	ls.kinds = make([]syntax.Kind, 0, len(raw))
	ls.starts = make([]int, 0, len(raw))
	ls.joint = make([]bool, 0, len(raw))

	pos := 0
	for i, t := range raw {
		kind := t.Kind
		switch kind {
		case syntax.IDENT, syntax.UNKNOWN_PREFIX:
			word := strings.ToLower(text[pos : pos+t.Len])
			if kw, ok := syntax.LookupKeyword(word); ok {
				kind = kw
			} else {
				kind = syntax.IDENT
			}
			if t.Kind == syntax.UNKNOWN_PREFIX {
				ls.errs = append(ls.errs, LexError{TokenIndex: i, Message: "unknown string type prefix"})
			}
		}

		switch t.Kind {
		case syntax.STRING, syntax.ESC_STRING, syntax.UNICODE_ESC_STRING, syntax.BYTE_STRING,
			syntax.BIT_STRING, syntax.DOLLAR_QUOTED_STRING, syntax.QUOTED_IDENT, syntax.COMMENT:
			if !t.Terminated {
				ls.errs = append(ls.errs, LexError{TokenIndex: i, Message: unterminatedMessage(t.Kind)})
			}
		}
		if t.EmptyInt {
			ls.errs = append(ls.errs, LexError{TokenIndex: i, Message: "digit expected after radix prefix"})
		}
		if t.EmptyExponent {
			ls.errs = append(ls.errs, LexError{TokenIndex: i, Message: "digit expected after exponent marker"})
		}
		if kind == syntax.NON_UTF8_ERROR {
			ls.errs = append(ls.errs, LexError{TokenIndex: i, Message: "invalid UTF-8 byte sequence"})
		}

		ls.kinds = append(ls.kinds, kind)
		ls.starts = append(ls.starts, pos)

		ls.joint = append(ls.joint, nextIsNotTrivia(raw, i))

		pos += t.Len
	}
	return ls
}

// nextIsNotTrivia reports whether raw[i] is immediately followed by a
// non-trivia token (or is the last token), i.e. whether it is "joint" with
// whatever comes next.
func nextIsNotTrivia(raw []lexer.Token, i int) bool {
	if i+1 >= len(raw) {
		return true
	}
	return !raw[i+1].Kind.IsTrivia()
}

func unterminatedMessage(k syntax.Kind) string {
	switch k {
	case syntax.STRING, syntax.ESC_STRING, syntax.UNICODE_ESC_STRING, syntax.BYTE_STRING, syntax.BIT_STRING:
		return "unterminated string literal"
	case syntax.DOLLAR_QUOTED_STRING:
		return "unterminated dollar-quoted string"
	case syntax.QUOTED_IDENT:
		return "unterminated quoted identifier"
	case syntax.COMMENT:
		return "unterminated block comment"
	default:
		return "unterminated token"
	}
}

// Len returns the number of tokens, including the trailing EOF sentinel.
func (ls *LexedStr) Len() int { return len(ls.kinds) }

// Kind returns the syntax kind at index i.
func (ls *LexedStr) Kind(i int) syntax.Kind { return ls.kinds[i] }

// Start returns the absolute byte offset of token i. For the EOF sentinel
// this equals len(text).
func (ls *LexedStr) Start(i int) int { return ls.starts[i] }

// Range returns the half-open byte range [start, end) of token i.
func (ls *LexedStr) Range(i int) (int, int) {
	start := ls.starts[i]
	if i+1 < len(ls.starts) {
		return start, ls.starts[i+1]
	}
	return start, len(ls.text)
}

// Text returns the verbatim source text of token i.
func (ls *LexedStr) Text(i int) string {
	start, end := ls.Range(i)
	return ls.text[start:end]
}

// IsJoint reports whether no trivia separates token i from token i+1 —
// the adjacency predicate composite-operator recognition in the parser
// relies on.
func (ls *LexedStr) IsJoint(i int) bool {
	if i < 0 || i >= len(ls.joint) {
		return false
	}
	return ls.joint[i]
}

// Errors returns the lexical error list, one per malformed token.
func (ls *LexedStr) Errors() []LexError { return ls.errs }

// TokenDump renders every token (EOF sentinel included) as
// `KIND@start..end "text"`, one per line — the token-level debug format
// consumed alongside the green tree's Dump.
func (ls *LexedStr) TokenDump() string {
	var b strings.Builder
	for i := 0; i < ls.Len(); i++ {
		start, end := ls.Range(i)
		fmt.Fprintf(&b, "%s@%d..%d %q\n", ls.Kind(i), start, end, ls.Text(i))
	}
	return b.String()
}
