package linter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineIndex(t *testing.T) {
	idx := NewLineIndex("ab\ncd\n\nxyz")
	tests := []struct {
		offset, line, col int
	}{
		{0, 1, 0},
		{1, 1, 1},
		{2, 1, 2}, // the newline itself belongs to line 1
		{3, 2, 0},
		{5, 2, 2},
		{6, 3, 0},
		{7, 4, 0},
		{9, 4, 2},
	}
	for _, tt := range tests {
		line, col := idx.LineCol(tt.offset)
		assert.Equal(t, tt.line, line, "offset %d line", tt.offset)
		assert.Equal(t, tt.col, col, "offset %d col", tt.offset)
	}
}

func TestToWire(t *testing.T) {
	text := "SELECT 1;\nDROP TABLE t;"
	idx := NewLineIndex(text)
	v := Violation{
		Code:    RuleBanDropTable,
		Message: "dropping",
		Help:    "don't",
		Range:   TextRange{Start: 10, End: 23},
	}
	w := ToWire("migration.sql", idx, v)
	assert.Equal(t, "migration.sql", w.File)
	assert.Equal(t, 2, w.Line)
	assert.Equal(t, 0, w.Column)
	assert.Equal(t, "warning", w.Level)
	assert.Equal(t, "ban-drop-table", w.RuleName)
	assert.Equal(t, "dropping", w.Message)
	assert.Equal(t, "don't", w.Help)
}

func TestToWireFix(t *testing.T) {
	idx := NewLineIndex("line one\nline two\n")
	text := "COMMIT;\n"
	f := &Fix{
		Title: "Add COMMIT",
		Edits: []Edit{
			{Range: TextRange{Start: 9, End: 9}, Text: &text},
			{Range: TextRange{Start: 0, End: 4}}, // nil Text means deletion
		},
	}
	w := ToWireFix(idx, f)
	require.NotNil(t, w)
	assert.Equal(t, "Add COMMIT", w.Title)
	require.Len(t, w.Edits, 2)
	assert.Equal(t, 1, w.Edits[0].Range.Start.Line)
	assert.Equal(t, 0, w.Edits[0].Range.Start.Character)
	assert.Equal(t, "COMMIT;\n", w.Edits[0].NewText)
	assert.Equal(t, "", w.Edits[1].NewText)

	assert.Nil(t, ToWireFix(idx, nil))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "error", LevelError.String())
}
