package parser

import (
	"github.com/pgsentry/pgsentry/internal/lexedstr"
	"github.com/pgsentry/pgsentry/syntax"
)

// Input is the trivia-free view over a LexedStr the parser consumes:
// spec.md §4.4's "input adapter". Trivia tokens are skipped for lookahead
// purposes but replayed into the tree by the builder so the result stays
// lossless.
type Input struct {
	ls        *lexedstr.LexedStr
	nonTrivia []int // raw LexedStr indices, in order, of every non-trivia token
}

// NewInput builds the trivia-free view over ls.
func NewInput(ls *lexedstr.LexedStr) *Input {
	in := &Input{ls: ls}
	for i := 0; i < ls.Len(); i++ {
		if !ls.Kind(i).IsTrivia() {
			in.nonTrivia = append(in.nonTrivia, i)
		}
	}
	return in
}

// Len returns the number of non-trivia tokens, including the trailing EOF.
func (in *Input) Len() int { return len(in.nonTrivia) }

// Kind returns the syntax kind of the i-th non-trivia token, or EOF if i is
// out of range.
func (in *Input) Kind(i int) syntax.Kind {
	if i < 0 || i >= len(in.nonTrivia) {
		return syntax.EOF
	}
	return in.ls.Kind(in.nonTrivia[i])
}

// Text returns the verbatim text of the i-th non-trivia token.
func (in *Input) Text(i int) string {
	if i < 0 || i >= len(in.nonTrivia) {
		return ""
	}
	return in.ls.Text(in.nonTrivia[i])
}

// RawIndex maps a non-trivia token index back to its LexedStr raw index.
func (in *Input) RawIndex(i int) int { return in.nonTrivia[i] }

// IsJoint reports whether no trivia separates non-trivia token i from
// non-trivia token i+1.
func (in *Input) IsJoint(i int) bool {
	if i < 0 || i >= len(in.nonTrivia) {
		return false
	}
	return in.ls.IsJoint(in.nonTrivia[i])
}

// LexedStr exposes the underlying buffer for the tree builder, which needs
// raw (trivia-inclusive) token kinds and text to replay everything
// losslessly.
func (in *Input) LexedStr() *lexedstr.LexedStr { return in.ls }
