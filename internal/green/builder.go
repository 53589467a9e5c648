package green

import (
	"strings"

	"github.com/pgsentry/pgsentry/internal/parser"
	"github.com/pgsentry/pgsentry/syntax"
)

// SyntaxError is a diagnostic recorded while replaying the parser's Event
// stream; it is not part of the tree itself (spec.md §4.4 keeps syntax
// errors as a side list on Parse[T] rather than ERROR_NODE markers, except
// where the parser explicitly wraps a bad token via ErrRecover).
type SyntaxError struct {
	Message string
	Pos     int
}

// frame is one not-yet-finished node under construction.
type frame struct {
	kind     syntax.Kind
	children []Element
}

// Build replays a Parser's flat Event stream into the green tree. in and
// text must be the same Input/source the events were produced from.
//
// The two awkward bits of the replay, both grounded on
// original_source/crates/squawk_parser's sink.rs: resolving
// ForwardParent chains (the "precede" retroactive-reparenting trick) before
// pushing frames, and gluing composite tokens' raw spans — including any
// interior trivia for keyword composites like IS NOT that tolerate
// whitespace between their pieces — into one verbatim Token.
func Build(events []parser.Event, in *parser.Input, text string) (*Node, []SyntaxError) {
	ls := in.LexedStr()
	b := &builder{events: events, in: in, ls: ls, text: text}
	processed := make([]bool, len(events))

	for i := range events {
		if processed[i] {
			continue
		}
		switch events[i].Kind {
		case parser.EvStart:
			b.startChain(processed, i)
		case parser.EvToken:
			b.token(events[i])
		case parser.EvFinish:
			b.finish(i == len(events)-1)
		case parser.EvError:
			b.error(events[i].Msg)
		case parser.EvFloatSplit:
			b.floatSplit()
		}
	}
	return b.root, b.errs
}

type builder struct {
	events []parser.Event
	in     *parser.Input
	ls     interface {
		Len() int
		Kind(int) syntax.Kind
		Range(int) (int, int)
	}
	text string

	nonTriviaPos int // next non-trivia token index to consume
	rawCursor    int // next raw LexedStr index not yet attached to the tree

	stack []*frame
	root  *Node
	errs  []SyntaxError
}

// startChain resolves i's forward-parent chain (if any) in one pass,
// marking every visited Start event processed, then pushes the resulting
// frames outermost-first. A TOMBSTONE kind (an abandoned marker precede()'d
// over, or simply never completed because Abandon spliced its children to
// the parent) pushes no frame.
func (b *builder) startChain(processed []bool, i int) {
	// Trivia pending before this node's first token belongs to the node
	// currently open, not the one about to start: a comment between two
	// statements is the file's, not the next statement's, so statement
	// text ranges begin at their first real token. At the root Start the
	// stack is empty and the trivia stays pending for the first token.
	if len(b.stack) > 0 && b.nonTriviaPos < b.in.Len() {
		b.consumeLeadingTrivia(b.in.RawIndex(b.nonTriviaPos))
	}

	var kinds []syntax.Kind
	idx := i
	for {
		processed[idx] = true
		kinds = append(kinds, b.events[idx].NodeKind)
		fp := b.events[idx].ForwardParent
		if fp == 0 {
			break
		}
		idx = fp - 1
	}
	for j := len(kinds) - 1; j >= 0; j-- {
		if kinds[j] == syntax.TOMBSTONE {
			continue
		}
		b.stack = append(b.stack, &frame{kind: kinds[j]})
	}
}

func (b *builder) top() *frame { return b.stack[len(b.stack)-1] }

func (b *builder) appendChild(e Element) {
	if len(b.stack) == 0 {
		return
	}
	top := b.top()
	top.children = append(top.children, e)
}

// consumeLeadingTrivia attaches every trivia raw token from rawCursor up to
// (excluding) upTo as an individual child token of the currently open
// frame.
func (b *builder) consumeLeadingTrivia(upTo int) {
	for b.rawCursor < upTo {
		b.appendChild(NewToken(b.ls.Kind(b.rawCursor), b.rawText(b.rawCursor, b.rawCursor)))
		b.rawCursor++
	}
}

func (b *builder) rawText(startRaw, endRaw int) string {
	s, _ := b.ls.Range(startRaw)
	_, e := b.ls.Range(endRaw)
	return b.text[s:e]
}

func (b *builder) token(ev parser.Event) {
	startRaw := b.in.RawIndex(b.nonTriviaPos)
	endRaw := b.in.RawIndex(b.nonTriviaPos + ev.NRaw - 1)

	b.consumeLeadingTrivia(startRaw)
	b.appendChild(NewToken(ev.TokenKind, b.rawText(startRaw, endRaw)))

	b.rawCursor = endRaw + 1
	b.nonTriviaPos += ev.NRaw
}

func (b *builder) finish(isLast bool) {
	if isLast {
		// Trivia after the final real token has no following token to
		// attach before, so it attaches to the closing of the enclosing
		// (root, since SOURCE_FILE's Finish is always the stream's last
		// event) node instead.
		b.consumeLeadingTrivia(b.ls.Len() - 1)
	}
	f := b.top()
	b.stack = b.stack[:len(b.stack)-1]
	node := NewNode(f.kind, f.children)
	if len(b.stack) == 0 {
		b.root = node
		return
	}
	b.appendChild(node)
}

func (b *builder) error(msg string) {
	i := b.nonTriviaPos
	if i >= b.in.Len() {
		i = b.in.Len() - 1
	}
	pos, _ := b.ls.Range(b.in.RawIndex(i))
	b.errs = append(b.errs, SyntaxError{Message: msg, Pos: pos})
}

// floatSplit implements the `a.0.1`-style tuple-field-access split
// (spec.md §4.3): it rewrites the most recently emitted FLOAT_NUMBER token
// into INT_NUMBER DOT [INT_NUMBER] pieces. PostgreSQL's lexer never
// produces the ambiguity this exists to resolve (qualified names are
// always NAME DOT NAME, never NAME DOT FLOAT_NUMBER), so no grammar rule in
// this repository currently emits EvFloatSplit; it is kept for structural
// fidelity with the event stream's design.
func (b *builder) floatSplit() {
	if len(b.stack) == 0 {
		return
	}
	f := b.top()
	n := len(f.children)
	if n == 0 {
		return
	}
	last, ok := f.children[n-1].(*Token)
	if !ok || last.Kind() != syntax.FLOAT_NUMBER {
		return
	}
	dot := strings.IndexByte(last.Text(), '.')
	if dot < 0 {
		return
	}
	before, after := last.Text()[:dot], last.Text()[dot+1:]
	replaced := append([]Element{}, f.children[:n-1]...)
	replaced = append(replaced, NewToken(syntax.INT_NUMBER, before), NewToken(syntax.DOT, "."))
	if after != "" {
		replaced = append(replaced, NewToken(syntax.INT_NUMBER, after))
	}
	f.children = replaced
}
