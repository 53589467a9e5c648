package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgsentry/pgsentry/syntax"
)

func TestLex_BasicTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected syntax.Kind
	}{
		{"left paren", "(", syntax.L_PAREN},
		{"right paren", ")", syntax.R_PAREN},
		{"comma", ",", syntax.COMMA},
		{"semicolon", ";", syntax.SEMICOLON},
		{"dot", ".", syntax.DOT},
		{"identifier", "foo", syntax.IDENT},
		{"quoted identifier", `"Foo Bar"`, syntax.QUOTED_IDENT},
		{"integer", "42", syntax.INT_NUMBER},
		{"float", "4.2", syntax.FLOAT_NUMBER},
		{"leading dot float", ".5", syntax.FLOAT_NUMBER},
		{"string", "'abc'", syntax.STRING},
		{"escape string", "E'a\\nb'", syntax.ESC_STRING},
		{"bit string", "B'0101'", syntax.BIT_STRING},
		{"hex string", "X'CAFE'", syntax.BYTE_STRING},
		{"unicode string", `U&'d\0061t'`, syntax.UNICODE_ESC_STRING},
		{"unicode ident", `U&"d\0061t"`, syntax.UNICODE_ESC_STRING},
		{"param", "$3", syntax.PARAM},
		{"dollar quote", "$$body$$", syntax.DOLLAR_QUOTED_STRING},
		{"tagged dollar quote", "$fn$ select 1 $fn$", syntax.DOLLAR_QUOTED_STRING},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := Lex(tt.input)
			require.NotEmpty(t, toks)
			assert.Equal(t, tt.expected, toks[0].Kind)
			assert.Equal(t, len(tt.input), toks[0].Len, "token should span the whole input")
		})
	}
}

func TestLex_LosslessLengths(t *testing.T) {
	inputs := []string{
		"SELECT * FROM t WHERE a <= 3 AND b <> 'x';",
		"create index concurrently if not exists i on t (c);",
		"-- comment\n/* block /* nested */ done */ SELECT 1",
		"$tag$ not closed",
		"'unterminated",
		"ALTER TABLE \"t\" ADD COLUMN \"f\" integer NOT NULL;",
		"",
	}
	for _, input := range inputs {
		toks := Lex(input)
		total := 0
		for _, tok := range toks {
			total += tok.Len
		}
		assert.Equal(t, len(input), total, "token lengths must cover %q exactly", input)
		require.NotEmpty(t, toks)
		assert.Equal(t, syntax.EOF, toks[len(toks)-1].Kind)
		assert.Zero(t, toks[len(toks)-1].Len)
	}
}

func TestLex_EmptyInput(t *testing.T) {
	toks := Lex("")
	require.Len(t, toks, 1)
	assert.Equal(t, syntax.EOF, toks[0].Kind)
}

func TestLex_NestedBlockComment(t *testing.T) {
	input := "/* a /* b /* c */ */ */"
	toks := Lex(input)
	require.NotEmpty(t, toks)
	assert.Equal(t, syntax.COMMENT, toks[0].Kind)
	assert.Equal(t, len(input), toks[0].Len)
	assert.True(t, toks[0].Terminated)
}

func TestLex_UnterminatedBlockComment(t *testing.T) {
	toks := Lex("/* never closed")
	require.NotEmpty(t, toks)
	assert.Equal(t, syntax.COMMENT, toks[0].Kind)
	assert.False(t, toks[0].Terminated)
}

func TestLex_UnterminatedString(t *testing.T) {
	toks := Lex("'runs to eof")
	require.NotEmpty(t, toks)
	assert.Equal(t, syntax.STRING, toks[0].Kind)
	assert.False(t, toks[0].Terminated)
}

func TestLex_StringQuoteEscape(t *testing.T) {
	input := "'it''s'"
	toks := Lex(input)
	require.NotEmpty(t, toks)
	assert.Equal(t, syntax.STRING, toks[0].Kind)
	assert.Equal(t, len(input), toks[0].Len)
	assert.True(t, toks[0].Terminated)
}

func TestLex_DollarQuoteUnterminated(t *testing.T) {
	toks := Lex("$body$ no closing tag")
	require.NotEmpty(t, toks)
	assert.Equal(t, syntax.DOLLAR_QUOTED_STRING, toks[0].Kind)
	assert.False(t, toks[0].Terminated)
}

func TestLex_DollarQuoteWrongTagRunsToEOF(t *testing.T) {
	toks := Lex("$a$ body $b$")
	require.NotEmpty(t, toks)
	assert.Equal(t, syntax.DOLLAR_QUOTED_STRING, toks[0].Kind)
	assert.False(t, toks[0].Terminated)
}

func TestLex_NumberFlags(t *testing.T) {
	t.Run("radix prefixes", func(t *testing.T) {
		for _, input := range []string{"0b1010", "0o777", "0xDEAD"} {
			toks := Lex(input)
			require.NotEmpty(t, toks)
			assert.Equal(t, syntax.INT_NUMBER, toks[0].Kind, input)
			assert.False(t, toks[0].EmptyInt, input)
			assert.Equal(t, len(input), toks[0].Len, input)
		}
	})
	t.Run("empty radix", func(t *testing.T) {
		toks := Lex("0x")
		require.NotEmpty(t, toks)
		assert.Equal(t, syntax.INT_NUMBER, toks[0].Kind)
		assert.True(t, toks[0].EmptyInt)
	})
	t.Run("empty exponent", func(t *testing.T) {
		toks := Lex("1e")
		require.NotEmpty(t, toks)
		assert.Equal(t, syntax.FLOAT_NUMBER, toks[0].Kind)
		assert.True(t, toks[0].EmptyExponent)
	})
	t.Run("underscore separators", func(t *testing.T) {
		toks := Lex("1_000_000")
		require.NotEmpty(t, toks)
		assert.Equal(t, syntax.INT_NUMBER, toks[0].Kind)
		assert.Equal(t, len("1_000_000"), toks[0].Len)
	})
	t.Run("full float", func(t *testing.T) {
		toks := Lex("6.02e+23")
		require.NotEmpty(t, toks)
		assert.Equal(t, syntax.FLOAT_NUMBER, toks[0].Kind)
		assert.Equal(t, len("6.02e+23"), toks[0].Len)
		assert.False(t, toks[0].EmptyExponent)
	})
}

func TestLex_UnknownPrefix(t *testing.T) {
	toks := Lex("n'abc'")
	require.NotEmpty(t, toks)
	assert.Equal(t, syntax.UNKNOWN_PREFIX, toks[0].Kind)
	assert.Equal(t, 1, toks[0].Len)
}

func TestLex_EscapePrefixCaseInsensitive(t *testing.T) {
	for _, input := range []string{"e'x'", "E'x'", "b'1'", "B'1'", "x'ff'", "X'ff'"} {
		toks := Lex(input)
		require.NotEmpty(t, toks, input)
		assert.NotEqual(t, syntax.IDENT, toks[0].Kind, input)
		assert.Equal(t, len(input), toks[0].Len, input)
	}
}

func TestLex_LineCommentStopsAtNewline(t *testing.T) {
	toks := Lex("-- note\nfoo")
	require.True(t, len(toks) >= 3)
	assert.Equal(t, syntax.COMMENT, toks[0].Kind)
	assert.Equal(t, len("-- note"), toks[0].Len)
	assert.Equal(t, syntax.WHITESPACE, toks[1].Kind)
	assert.Equal(t, syntax.IDENT, toks[2].Kind)
}

func TestLex_OperatorsSplitSingleChars(t *testing.T) {
	// The lexer emits one token per operator character; composite operators
	// like <= are the parser's business, so "< =" and "<=" both come out as
	// LT then EQ here.
	for _, input := range []string{"<=", "< ="} {
		toks := Lex(input)
		var kinds []syntax.Kind
		for _, tok := range toks {
			if tok.Kind != syntax.WHITESPACE && tok.Kind != syntax.EOF {
				kinds = append(kinds, tok.Kind)
			}
		}
		assert.Equal(t, []syntax.Kind{syntax.LT, syntax.EQ}, kinds, input)
	}
}

func TestLex_LongInputNoPanic(t *testing.T) {
	input := strings.Repeat("SELECT 1; ", 1000)
	toks := Lex(input)
	total := 0
	for _, tok := range toks {
		total += tok.Len
	}
	assert.Equal(t, len(input), total)
}
