package linter

// LineIndex maps a byte offset to a 1-based line / 0-based column pair by
// scanning the source once for newline positions (spec.md §6: "text_range
// is not serialized in JSON; it is used only internally to compute
// line/column via a line index built by scanning the source for \n
// positions").
type LineIndex struct {
	// lineStarts[i] is the byte offset the (i+1)-th line starts at;
	// lineStarts[0] is always 0.
	lineStarts []int
}

// NewLineIndex builds a LineIndex over text.
func NewLineIndex(text string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{lineStarts: starts}
}

// LineCol converts a byte offset to a (1-based line, 0-based column)
// pair.
func (idx *LineIndex) LineCol(offset int) (line, col int) {
	lo, hi := 0, len(idx.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if idx.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1, offset - idx.lineStarts[lo]
}

// WireViolation is the JSON shape a Violation serializes to (spec.md §6).
type WireViolation struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Level    string `json:"level"`
	Message  string `json:"message"`
	Help     string `json:"help,omitempty"`
	RuleName string `json:"rule_name"`
}

// ToWire converts v to its JSON wire shape, resolving v's byte offset
// through idx.
func ToWire(file string, idx *LineIndex, v Violation) WireViolation {
	line, col := idx.LineCol(v.Range.Start)
	return WireViolation{
		File:     file,
		Line:     line,
		Column:   col,
		Level:    v.Level.String(),
		Message:  v.Message,
		Help:     v.Help,
		RuleName: v.Code.String(),
	}
}

// WirePosition is an LSP-style zero-based (line, character) position.
type WirePosition struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// WireRange is an LSP-style range: both endpoints zero-based.
type WireRange struct {
	Start WirePosition `json:"start"`
	End   WirePosition `json:"end"`
}

// WireTextEdit is one LSP TextEdit.
type WireTextEdit struct {
	Range   WireRange `json:"range"`
	NewText string    `json:"newText"`
}

// WireFix is an LSP-oriented code action: a title plus the edits it
// applies (spec.md §6: "Each Edit becomes a text-document edit with range
// = text_range and newText = text.or(\"\")").
type WireFix struct {
	Title string         `json:"title"`
	Edits []WireTextEdit `json:"edits"`
}

// ToWireFix converts f to its LSP-oriented wire shape.
func ToWireFix(idx *LineIndex, f *Fix) *WireFix {
	if f == nil {
		return nil
	}
	wf := &WireFix{Title: f.Title, Edits: make([]WireTextEdit, len(f.Edits))}
	for i, e := range f.Edits {
		startLine, startCol := idx.LineCol(e.Range.Start)
		endLine, endCol := idx.LineCol(e.Range.End)
		text := ""
		if e.Text != nil {
			text = *e.Text
		}
		wf.Edits[i] = WireTextEdit{
			Range: WireRange{
				Start: WirePosition{Line: startLine - 1, Character: startCol},
				End:   WirePosition{Line: endLine - 1, Character: endCol},
			},
			NewText: text,
		}
	}
	return wf
}
