package processor

import (
	"regexp"

	"retok/internal/token"
)

// ClassicScope recognizes C-style scope delimiters. The start and end
// characters are configurable independently.
type ClassicScope struct {
	re *regexp.Regexp
}

// NewClassicScope creates a scope processor for the given delimiter pair,
// e.g. '{' and '}'.
func NewClassicScope(start, end rune) *ClassicScope {
	pattern := "^(?:(" + regexp.QuoteMeta(string(start)) + ")|(" + regexp.QuoteMeta(string(end)) + "))"
	return &ClassicScope{re: regexp.MustCompile(pattern)}
}

func (p *ClassicScope) Process(content string, offset int) ([]Step, error) {
	m := p.re.FindStringSubmatchIndex(content[offset:])
	if m == nil {
		return nil, nil
	}
	tok := token.NewScopeEnd()
	if m[2] >= 0 {
		tok = token.NewScopeStart()
	}
	return emit(tok, m[1]), nil
}
