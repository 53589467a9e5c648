package lexedstr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgsentry/pgsentry/syntax"
)

func TestBuild_KeywordCaseInsensitive(t *testing.T) {
	ls := Build("SELECT select SeLeCt sElEcT")
	var kws int
	for i := 0; i < ls.Len(); i++ {
		if ls.Kind(i) == syntax.SELECT_KW {
			kws++
		}
	}
	assert.Equal(t, 4, kws)
}

func TestBuild_NonKeywordStaysIdent(t *testing.T) {
	ls := Build("my_table")
	require.Equal(t, 2, ls.Len()) // ident + EOF sentinel
	assert.Equal(t, syntax.IDENT, ls.Kind(0))
	assert.Equal(t, "my_table", ls.Text(0))
}

func TestBuild_EOFSentinelCarriesTotalLength(t *testing.T) {
	input := "SELECT 1;"
	ls := Build(input)
	last := ls.Len() - 1
	assert.Equal(t, syntax.EOF, ls.Kind(last))
	assert.Equal(t, len(input), ls.Start(last))
}

func TestBuild_Ranges(t *testing.T) {
	ls := Build("ab cd")
	require.Equal(t, 4, ls.Len()) // ident, ws, ident, EOF
	s, e := ls.Range(0)
	assert.Equal(t, 0, s)
	assert.Equal(t, 2, e)
	s, e = ls.Range(2)
	assert.Equal(t, 3, s)
	assert.Equal(t, 5, e)
	assert.Equal(t, "cd", ls.Text(2))
}

func TestBuild_JointPredicate(t *testing.T) {
	// "a.b" is three joint tokens; "a . b" has trivia between each pair.
	joined := Build("a.b")
	assert.True(t, joined.IsJoint(0))
	assert.True(t, joined.IsJoint(1))

	spaced := Build("a . b")
	assert.False(t, spaced.IsJoint(0))
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"unterminated string", "'abc", "unterminated string literal"},
		{"unterminated dollar quote", "$$abc", "unterminated dollar-quoted string"},
		{"unterminated quoted ident", `"abc`, "unterminated quoted identifier"},
		{"unterminated block comment", "/* abc", "unterminated block comment"},
		{"empty radix", "0x", "digit expected after radix prefix"},
		{"empty exponent", "2e", "digit expected after exponent marker"},
		{"unknown prefix", "n'x'", "unknown string type prefix"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := Build(tt.input)
			require.NotEmpty(t, ls.Errors())
			assert.Equal(t, tt.message, ls.Errors()[0].Message)
		})
	}
}

func TestBuild_CleanInputHasNoErrors(t *testing.T) {
	ls := Build("SELECT 'ok', $$fine$$, 0x1F, 1e9 FROM t; -- done")
	assert.Empty(t, ls.Errors())
}
