package processor

import (
	"regexp"
	"strings"
)

// Consuming greedily eats one or more characters from a configured set
// without emitting a token. Used for inter-token whitespace.
type Consuming struct {
	patterns []string
	re       *regexp.Regexp
}

// NewConsuming creates a consuming processor for the given character set.
// The set is spliced into a regex character class verbatim, so regex
// metacharacters must be escaped by the caller.
func NewConsuming(chars string) *Consuming {
	p := &Consuming{patterns: []string{"[" + chars + "]+"}}
	p.re = compileAlternation(p.patterns)
	return p
}

// Or merges two consuming processors into one whose character classes are
// alternated, left operand first.
func (p *Consuming) Or(other *Consuming) *Consuming {
	merged := &Consuming{patterns: concatPatterns(p.patterns, other.patterns)}
	merged.re = compileAlternation(merged.patterns)
	return merged
}

func (p *Consuming) Process(content string, offset int) ([]Step, error) {
	loc := p.re.FindStringIndex(content[offset:])
	if loc == nil || loc[1] == 0 {
		return nil, nil
	}
	return skip(loc[1]), nil
}

// compileAlternation anchors the joined alternatives at the match offset.
// Alternation order is preserved: with leftmost-first semantics the first
// listed pattern wins ties, so merge order stays deterministic.
func compileAlternation(patterns []string) *regexp.Regexp {
	return regexp.MustCompile("^(?:" + strings.Join(patterns, "|") + ")")
}

func concatPatterns(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
