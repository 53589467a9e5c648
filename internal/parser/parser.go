package parser

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/pgsentry/pgsentry/syntax"
)

// stepLimit bounds the number of nth() lookaheads in a single parse. It is
// the parser's only infinite-loop protection; exceeding it panics.
const stepLimit = 10_000_000

var trace = newTraceLogger()

func newTraceLogger() *logrus.Logger {
	l := logrus.New()
	if os.Getenv("PGSENTRY_DEBUG") == "" {
		l.SetOutput(os.Stderr)
		l.SetLevel(logrus.PanicLevel) // effectively silent
		return l
	}
	l.SetLevel(logrus.TraceLevel)
	return l
}

// Parser builds the Event stream for one input. It never constructs a
// tree; Finish returns the Events for internal/green to replay.
type Parser struct {
	in     *Input
	pos    int // index into in's non-trivia token sequence
	events []Event
	steps  int
	open   int // count of markers started but not yet completed/abandoned
}

// New creates a Parser positioned at the start of in.
func New(in *Input) *Parser {
	return &Parser{in: in}
}

// Marker refers to a not-yet-completed Start event. It must be completed
// or abandoned before being dropped; forgetting to do so is a hard
// programmer error, detected at Finish.
type Marker struct {
	p   *Parser
	pos int // index into p.events of the Start event
	done bool
}

// CompletedMarker refers to a finished subtree and supports precede(),
// the forward-parent ("red/green marker") trick for retroactively wrapping
// an already-completed node in a new parent.
type CompletedMarker struct {
	p   *Parser
	pos int // index into p.events of the Start event
}

// Start opens a new subtree. Its kind is TOMBSTONE until Complete fills it
// in, so callers may Start before knowing the final node kind (needed by
// precede()).
func (p *Parser) Start() *Marker {
	p.open++
	idx := len(p.events)
	p.events = append(p.events, Event{Kind: EvStart, NodeKind: syntax.TOMBSTONE})
	return &Marker{p: p, pos: idx}
}

// Complete finishes the marker's subtree as kind and returns a
// CompletedMarker that can be preceded by a later-opened parent.
func (m *Marker) Complete(kind syntax.Kind) CompletedMarker {
	if m.done {
		panic("parser: marker completed twice")
	}
	m.done = true
	m.p.open--
	m.p.events[m.pos].NodeKind = kind
	m.p.events = append(m.p.events, Event{Kind: EvFinish})
	return CompletedMarker{p: m.p, pos: m.pos}
}

// Abandon discards the marker: if nothing was emitted since Start, the
// Start event is removed from the stream; otherwise it is left as a
// TOMBSTONE the tree builder skips, so the children emitted in the
// meantime are spliced to the parent.
func (m *Marker) Abandon() {
	if m.done {
		panic("parser: marker completed twice")
	}
	m.done = true
	m.p.open--
	if m.pos == len(m.p.events)-1 {
		m.p.events = m.p.events[:m.pos]
	}
}

// Precede opens a new marker that will wrap cm's already-completed subtree
// once the new marker is itself completed. Implemented by recording a
// forward_parent link on cm's Start event, resolved by the tree builder's
// first pass.
func (cm CompletedMarker) Precede() *Marker {
	p := cm.p
	p.open++
	idx := len(p.events)
	p.events = append(p.events, Event{Kind: EvStart, NodeKind: syntax.TOMBSTONE})
	p.events[cm.pos].ForwardParent = idx + 1
	return &Marker{p: p, pos: idx}
}

// Events returns the finished event stream. Panics if any marker is still
// open — the "dropped Marker" programmer-invariant violation.
func (p *Parser) Events() []Event {
	if p.open != 0 {
		panic(fmt.Sprintf("parser: %d marker(s) dropped without Complete/Abandon", p.open))
	}
	return p.events
}

// --- lookahead ---------------------------------------------------------

// nth returns the kind of the n-th non-trivia token from the current
// position, counting the step-guard.
func (p *Parser) nth(n int) syntax.Kind {
	p.steps++
	if p.steps > stepLimit {
		panic("parser: step limit exceeded, suspected infinite loop")
	}
	k := p.in.Kind(p.pos + n)
	trace.WithFields(logrus.Fields{"pos": p.pos + n, "kind": k}).Trace("nth")
	return k
}

func (p *Parser) joint(n int) bool {
	return p.in.IsJoint(p.pos + n)
}

// At reports whether the current position starts kind k, resolving
// composite (synthesized) kinds via their adjacency rule.
func (p *Parser) At(k syntax.Kind) bool {
	if w, ok := compositeWidth(k); ok {
		return p.atComposite(k, w)
	}
	return p.nth(0) == k
}

// AtEOF reports whether the parser has consumed all non-trivia input.
func (p *Parser) AtEOF() bool { return p.nth(0) == syntax.EOF }

// --- token consumption --------------------------------------------------

// Bump consumes the current token as a single raw token of the given
// kind (normally equal to the underlying kind, but callers may remap e.g.
// a contextual keyword used as an identifier).
func (p *Parser) Bump(kind syntax.Kind) {
	p.events = append(p.events, Event{Kind: EvToken, TokenKind: kind, NRaw: 1})
	p.pos++
}

// BumpAny consumes the current token verbatim, whatever kind it is.
func (p *Parser) BumpAny() {
	p.Bump(p.nth(0))
}

// BumpComposite consumes a recognized composite kind, advancing past
// however many raw tokens it spans.
func (p *Parser) BumpComposite(kind syntax.Kind) {
	w, ok := compositeWidth(kind)
	if !ok {
		panic("parser: BumpComposite on non-composite kind")
	}
	p.events = append(p.events, Event{Kind: EvToken, TokenKind: kind, NRaw: w})
	p.pos += w
}

// Eat consumes the current token if it is (or resolves to, for
// composites) kind k and reports whether it did.
func (p *Parser) Eat(k syntax.Kind) bool {
	if !p.At(k) {
		return false
	}
	switch {
	case k == syntax.CUSTOM_OP:
		p.BumpCustomOp()
	default:
		if _, ok := compositeWidth(k); ok {
			p.BumpComposite(k)
		} else {
			p.Bump(k)
		}
	}
	return true
}

// EatAny consumes the first of kinds present at the current position and
// reports whether any matched — the one-of-several-alternatives shape the
// grammar uses for keyword noise words (WORK/TRANSACTION, ASC/DESC, ...).
func (p *Parser) EatAny(kinds ...syntax.Kind) bool {
	for _, k := range kinds {
		if p.Eat(k) {
			return true
		}
	}
	return false
}

// Expect behaves like Eat but emits a syntax error if the token is absent.
func (p *Parser) Expect(k syntax.Kind) bool {
	if p.Eat(k) {
		return true
	}
	p.Error(fmt.Sprintf("expected %s", k))
	return false
}

// Error emits a syntax error attached at the current position without
// consuming any token.
func (p *Parser) Error(msg string) {
	p.events = append(p.events, Event{Kind: EvError, Msg: msg})
}

// FloatSplit emits a FloatSplitHack event for the `a.0.1` field-access
// chain case (spec.md §4.3's "forward-parent example").
func (p *Parser) FloatSplit(endsInDot bool) {
	p.events = append(p.events, Event{Kind: EvFloatSplit, EndsInDot: endsInDot})
}

// ErrRecover emits an error and, if the current token is not in
// recoverySet, wraps it in an ERROR_NODE and consumes it.
func (p *Parser) ErrRecover(msg string, recoverySet map[syntax.Kind]bool) {
	if p.AtEOF() || recoverySet[p.nth(0)] {
		p.Error(msg)
		return
	}
	m := p.Start()
	p.Error(msg)
	p.BumpAny()
	m.Complete(syntax.ERROR_NODE)
}

// --- composite (synthesized) token recognition --------------------------

// compositeWidth reports, for a synthesized composite kind, how many raw
// tokens wide it nominally spans for Bump purposes (used by BumpComposite
// to advance p.pos; the actual atComposite check may examine a different
// number of lookahead slots for keyword composites that tolerate trivia).
func compositeWidth(k syntax.Kind) (int, bool) {
	switch k {
	case syntax.COLON2, syntax.COLONEQ, syntax.FAT_ARROW, syntax.NEQ, syntax.NEQB, syntax.LTEQ, syntax.GTEQ:
		return 2, true
	case syntax.IS_NOT, syntax.NOT_LIKE, syntax.NOT_ILIKE, syntax.NOT_IN, syntax.NOT_BETWEEN, syntax.SIMILAR_TO:
		return 2, true
	case syntax.NOT_SIMILAR_TO:
		return 3, true
	case syntax.IS_DISTINCT_FROM:
		return 3, true
	case syntax.IS_NOT_DISTINCT_FROM:
		return 4, true
	case syntax.AT_TIME_ZONE:
		return 3, true
	case syntax.CUSTOM_OP:
		return 1, true // width resolved dynamically in atComposite/BumpCustomOp
	}
	return 0, false
}

var operatorCharKinds = map[syntax.Kind]bool{
	syntax.PLUS: true, syntax.MINUS: true, syntax.STAR: true, syntax.SLASH: true,
	syntax.PERCENT: true, syntax.CARET: true, syntax.LT: true, syntax.GT: true,
	syntax.EQ: true, syntax.AMP: true, syntax.PIPE: true, syntax.BANG: true,
	syntax.TILDE: true, syntax.QUESTION: true, syntax.AT_SIGN: true, syntax.HASH: true,
}

func (p *Parser) atComposite(k syntax.Kind, w int) bool {
	switch k {
	case syntax.COLON2:
		return p.nth(0) == syntax.COLON && p.joint(0) && p.nth(1) == syntax.COLON
	case syntax.COLONEQ:
		return p.nth(0) == syntax.COLON && p.joint(0) && p.nth(1) == syntax.EQ
	case syntax.FAT_ARROW:
		return p.nth(0) == syntax.EQ && p.joint(0) && p.nth(1) == syntax.GT
	case syntax.NEQ:
		return p.nth(0) == syntax.LT && p.joint(0) && p.nth(1) == syntax.GT
	case syntax.NEQB:
		return p.nth(0) == syntax.BANG && p.joint(0) && p.nth(1) == syntax.EQ
	case syntax.LTEQ:
		return p.nth(0) == syntax.LT && p.joint(0) && p.nth(1) == syntax.EQ
	case syntax.GTEQ:
		return p.nth(0) == syntax.GT && p.joint(0) && p.nth(1) == syntax.EQ
	case syntax.IS_NOT:
		return p.nth(0) == syntax.IS_KW && p.nth(1) == syntax.NOT_KW
	case syntax.IS_DISTINCT_FROM:
		return p.nth(0) == syntax.IS_KW && p.nth(1) == syntax.DISTINCT_KW && p.nth(2) == syntax.FROM_KW
	case syntax.IS_NOT_DISTINCT_FROM:
		return p.nth(0) == syntax.IS_KW && p.nth(1) == syntax.NOT_KW && p.nth(2) == syntax.DISTINCT_KW && p.nth(3) == syntax.FROM_KW
	case syntax.NOT_LIKE:
		return p.nth(0) == syntax.NOT_KW && p.nth(1) == syntax.LIKE_KW
	case syntax.NOT_ILIKE:
		return p.nth(0) == syntax.NOT_KW && p.nth(1) == syntax.ILIKE_KW
	case syntax.NOT_IN:
		return p.nth(0) == syntax.NOT_KW && p.nth(1) == syntax.IN_KW
	case syntax.NOT_BETWEEN:
		return p.nth(0) == syntax.NOT_KW && p.nth(1) == syntax.BETWEEN_KW
	case syntax.SIMILAR_TO:
		return p.nth(0) == syntax.SIMILAR_KW && p.nth(1) == syntax.TO_KW
	case syntax.NOT_SIMILAR_TO:
		return p.nth(0) == syntax.NOT_KW && p.nth(1) == syntax.SIMILAR_KW && p.nth(2) == syntax.TO_KW
	case syntax.AT_TIME_ZONE:
		return p.nth(0) == syntax.AT_KW && p.nth(1) == syntax.TIME_KW && p.nth(2) == syntax.ZONE_KW
	case syntax.CUSTOM_OP:
		return operatorCharKinds[p.nth(0)]
	}
	_ = w
	return false
}

// BumpCustomOp greedily consumes a run of adjacent (joint) operator
// characters as one CUSTOM_OP token.
func (p *Parser) BumpCustomOp() {
	n := 1 // nth(0) is already known to be an operator char by atComposite
	for operatorCharKinds[p.nth(n)] && p.joint(n-1) {
		n++
	}
	p.events = append(p.events, Event{Kind: EvToken, TokenKind: syntax.CUSTOM_OP, NRaw: n})
	p.pos += n
}
