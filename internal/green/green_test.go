package green

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgsentry/pgsentry/syntax"
)

func sampleTree() *Node {
	// SELECT_STMT( "SELECT" WS LITERAL("1") )
	lit := NewNode(syntax.LITERAL, []Element{NewToken(syntax.INT_NUMBER, "1")})
	return NewNode(syntax.SELECT_STMT, []Element{
		NewToken(syntax.SELECT_KW, "SELECT"),
		NewToken(syntax.WHITESPACE, " "),
		lit,
	})
}

func TestNodeLengthIsSumOfChildren(t *testing.T) {
	root := sampleTree()
	assert.Equal(t, len("SELECT 1"), root.Len())
}

func TestRedTreeOffsets(t *testing.T) {
	root := NewRoot(sampleTree())
	assert.Equal(t, 0, root.Offset())
	assert.Equal(t, 8, root.EndOffset())

	kids := root.Children()
	require.Len(t, kids, 3)
	assert.Equal(t, 0, kids[0].Token.Offset())
	assert.Equal(t, 6, kids[0].Token.EndOffset())
	assert.Equal(t, 6, kids[1].Token.Offset())

	lit := kids[2].Node
	require.NotNil(t, lit)
	assert.Equal(t, 7, lit.Offset())
	assert.Equal(t, 8, lit.EndOffset())
	assert.True(t, lit.Parent().Is(root))
}

func TestRedTreeEquality(t *testing.T) {
	green := sampleTree()
	a := NewRoot(green)
	b := NewRoot(green)
	assert.True(t, a.Is(b), "same green node at same offset")

	other := NewRoot(sampleTree())
	assert.False(t, a.Is(other), "structurally equal but distinct green nodes differ")
}

func TestTextReassembles(t *testing.T) {
	root := NewRoot(sampleTree())
	assert.Equal(t, "SELECT 1", root.Text())
}

func TestAccessors(t *testing.T) {
	root := NewRoot(sampleTree())
	assert.Nil(t, root.FirstChildOfKind(syntax.BIN_EXPR))
	require.NotNil(t, root.FirstChildOfKind(syntax.LITERAL))
	assert.Len(t, root.ChildrenOfKind(syntax.LITERAL), 1)
	require.NotNil(t, root.Token(syntax.SELECT_KW))
	assert.Equal(t, "SELECT", root.Token(syntax.SELECT_KW).Text())
	assert.Nil(t, root.Token(syntax.COMMA))
}

func TestDump(t *testing.T) {
	out := Dump(sampleTree())
	assert.Contains(t, out, "SELECT_STMT@0..8")
	assert.Contains(t, out, "LITERAL@7..8")
	assert.Contains(t, out, `"1"`)
}
