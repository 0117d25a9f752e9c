package processor

import (
	"regexp"

	"retok/internal/token"
)

var newLinePattern = regexp.MustCompile(`^\r?\n`)

// NewLine recognizes an optional carriage return followed by a line feed
// and emits an end-of-line token.
type NewLine struct{}

// NewNewLine creates a newline processor.
func NewNewLine() *NewLine { return &NewLine{} }

func (p *NewLine) Process(content string, offset int) ([]Step, error) {
	loc := newLinePattern.FindStringIndex(content[offset:])
	if loc == nil {
		return nil, nil
	}
	return emit(token.NewEndOfLine(), loc[1]), nil
}
