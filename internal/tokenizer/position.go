package tokenizer

import (
	"fmt"
	"strings"
)

// tabDisplayWidth is the fixed column width tabs expand to in rendered
// pointers.
const tabDisplayWidth = 4

// Position is a lazily computed view over (source, offset): the 1-based
// line number, the containing line, and the column within it. Each piece is
// memoized on first access since source scanning is O(n).
type Position struct {
	source string
	offset int

	line     int // 0 = not yet computed
	lineText string
	lineOff  int
	haveLine bool
}

// NewPosition creates a position view for the given source offset.
func NewPosition(source string, offset int) *Position {
	return &Position{source: source, offset: offset}
}

// Offset returns the byte offset in the source.
func (p *Position) Offset() int { return p.offset }

// LineNumber returns the 1-based number of the line containing the offset.
func (p *Position) LineNumber() int {
	if p.line == 0 {
		p.line = strings.Count(p.source[:p.offset], "\n") + 1
	}
	return p.line
}

// Line returns the text of the containing line, without its newline.
func (p *Position) Line() string {
	p.computeLine()
	return p.lineText
}

// Column returns the byte offset within the containing line.
func (p *Position) Column() int {
	p.computeLine()
	return p.lineOff
}

func (p *Position) computeLine() {
	if p.haveLine {
		return
	}
	left := strings.LastIndex(p.source[:p.offset], "\n") + 1
	right := strings.Index(p.source[p.offset:], "\n")
	if right < 0 {
		right = len(p.source)
	} else {
		right += p.offset
	}
	p.lineText = p.source[left:right]
	p.lineOff = p.offset - left
	p.haveLine = true
}

// Render produces the two-line diagnostic pointer: the source line with
// tabs expanded to a fixed width, then a caret under the offset. The caret
// column accounts for the "line:column: " prefix and the expanded width of
// every tab before the offset in that line.
func (p *Position) Render() string {
	line := p.Line()
	col := p.Column()
	marker := fmt.Sprintf("%d:%d: ", p.LineNumber(), col)

	expanded := strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabDisplayWidth))
	tabsBefore := strings.Count(line[:col], "\t")
	caret := len(marker) + col + tabsBefore*(tabDisplayWidth-1)

	return marker + expanded + "\n" + strings.Repeat(" ", caret) + "^"
}
