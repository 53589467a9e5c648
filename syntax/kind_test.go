package syntax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKeyword(t *testing.T) {
	k, ok := LookupKeyword("select")
	require.True(t, ok)
	assert.Equal(t, SELECT_KW, k)
	assert.True(t, k.IsKeyword())
	assert.Equal(t, "select", k.String())

	_, ok = LookupKeyword("not_a_keyword")
	assert.False(t, ok)
}

func TestKeywordTableSorted(t *testing.T) {
	for i := 1; i < len(keywordList); i++ {
		assert.True(t, keywordList[i-1] < keywordList[i], "keyword list must be strictly sorted at %d", i)
	}
}

func TestKeywordKindsFitLayout(t *testing.T) {
	// The whole enum must fit in 16 bits; keywords start at 1024 and must
	// not collide with anything above them.
	assert.Less(t, len(keywordList), 1024)
	last := keywordKindBase + Kind(len(keywordList)) - 1
	assert.Less(t, uint16(last), uint16(1<<15))
}

func TestKeywordsAreLowercase(t *testing.T) {
	for _, w := range keywordList {
		assert.Equal(t, strings.ToLower(w), w)
	}
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, WHITESPACE.IsTrivia())
	assert.True(t, COMMENT.IsTrivia())
	assert.False(t, IDENT.IsTrivia())

	assert.True(t, IDENT.IsToken())
	assert.True(t, LTEQ.IsToken())
	assert.True(t, SELECT_KW.IsToken())
	assert.False(t, SELECT_STMT.IsToken())
	assert.False(t, SOURCE_FILE.IsToken())

	assert.False(t, IDENT.IsKeyword())
	assert.False(t, SELECT_STMT.IsKeyword())
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "SOURCE_FILE", SOURCE_FILE.String())
	assert.Equal(t, "LTEQ", LTEQ.String())
	assert.Equal(t, "TOMBSTONE", TOMBSTONE.String())
}

func TestCategoryAndBareLabel(t *testing.T) {
	assert.Equal(t, CategoryReserved, SELECT_KW.Category())
	assert.Equal(t, CategoryUnreserved, ADD_KW.Category())
	assert.Panics(t, func() { IDENT.Category() })

	assert.True(t, ADD_KW.CanBareLabel())
	assert.False(t, AS_KW.CanBareLabel())
}
