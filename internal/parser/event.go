// Package parser is the event-driven recursive-descent parser. It never
// builds a tree directly; it emits a flat Event stream that
// internal/green's tree builder later replays into the green tree. This
// architecture has no analog in the teacher (sqlparser/pgsql is a
// single-pass cursor parser that builds its DOM directly) — it is
// grounded on original_source/crates/squawk_parser's Event/Marker design,
// expressed with explicit Go structs instead of Rust enums and an arena.
//
// The statement-level recovery loop (skip to the next statement boundary
// while tracking parenthesis and dollar-quote depth) generalizes the
// teacher's sqlparser/pgsql_document.go:parseCreateBody skip loop from a
// one-off body-copy routine into the parser's general error-recovery
// mechanism.
package parser

import "github.com/pgsentry/pgsentry/syntax"

// EventKind discriminates the event stream's four (plus one) event types.
type EventKind uint8

const (
	EvStart EventKind = iota
	EvToken
	EvFinish
	EvError
	EvFloatSplit
)

// Event is one entry in the flat stream the parser emits. Only the fields
// relevant to Kind are populated; the rest are zero.
type Event struct {
	Kind EventKind

	// EvStart: NodeKind may be syntax.TOMBSTONE if not yet known (an
	// abandoned marker) or if it will be filled in later by complete.
	// ForwardParent, when nonzero, is 1+the index of the Start event that
	// should become this event's parent once replayed (the "precede"
	// trick); 0 means no forward parent.
	NodeKind      syntax.Kind
	ForwardParent int

	// EvToken: TokenKind is the (possibly synthesized composite) kind to
	// assign the consumed raw tokens; NRaw is how many raw input tokens to
	// consume and glue into this token's text.
	TokenKind syntax.Kind
	NRaw      int

	// EvError.
	Msg string

	// EvFloatSplit.
	EndsInDot bool
}
