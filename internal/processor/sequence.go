package processor

import (
	"regexp"

	"retok/internal/token"
)

// Sequence recognizes literal or regex fragments and emits a token carrying
// the matched text verbatim, with no semantic typing.
type Sequence struct {
	patterns []string
	re       *regexp.Regexp
}

// NewSequence creates a sequence processor from an ordered list of
// fragments. Earlier fragments win ties.
func NewSequence(fragments ...string) *Sequence {
	p := &Sequence{patterns: fragments}
	p.re = compileAlternation(p.patterns)
	return p
}

// Or merges two sequence processors into one alternation, left operand
// patterns first.
func (p *Sequence) Or(other *Sequence) *Sequence {
	merged := &Sequence{patterns: concatPatterns(p.patterns, other.patterns)}
	merged.re = compileAlternation(merged.patterns)
	return merged
}

func (p *Sequence) Process(content string, offset int) ([]Step, error) {
	loc := p.re.FindStringIndex(content[offset:])
	if loc == nil || loc[1] == 0 {
		return nil, nil
	}
	return emit(token.NewSequence(content[offset:offset+loc[1]]), loc[1]), nil
}

// NewOperator recognizes the arithmetic operators + - * / = in bare,
// doubled, and assign forms (e.g. "+", "++", "+="). RE2 has no
// backreferences, so the forms are spelled out per symbol, longest first.
func NewOperator() *Sequence {
	return NewSequence(`\+[+=]?|-[-=]?|\*[*=]?|/[/=]?|==?`)
}

// NewIdent recognizes identifiers: a letter or underscore followed by word
// characters.
func NewIdent() *Sequence {
	return NewSequence(`[A-Za-z_]\w*`)
}
