package processor

import (
	"maps"
	"regexp"
	"strings"

	"retok/internal/diag"
	"retok/internal/token"
)

// ValuePattern pairs one regex alternative with the semantic type its
// capture converts to. A pattern without parentheses is wrapped in a
// capturing group; a pattern with its own groups must contain exactly one
// capturing group, whose capture becomes the conversion input.
type ValuePattern struct {
	Pattern string
	Type    token.ValueType
}

// Value recognizes typed literals via an alternation of sub-patterns and
// emits value tokens with converted payloads. The group index of the fired
// alternative selects the semantic type; conversion defaults to the type's
// own parse-from-text behavior unless a custom converter is registered.
type Value struct {
	patterns []string
	types    []token.ValueType
	convs    map[token.ValueType]token.Converter
	re       *regexp.Regexp
}

// NewValue creates a value processor from an ordered list of alternatives.
// Earlier alternatives win ties. Patterns must be valid RE2.
func NewValue(alts ...ValuePattern) *Value {
	p := &Value{
		patterns: make([]string, 0, len(alts)),
		types:    make([]token.ValueType, 0, len(alts)),
		convs:    make(map[token.ValueType]token.Converter),
	}
	for _, alt := range alts {
		expr := alt.Pattern
		if !strings.Contains(expr, "(") {
			expr = "(" + expr + ")"
		}
		p.patterns = append(p.patterns, expr)
		p.types = append(p.types, alt.Type)
	}
	p.re = compileAlternation(p.patterns)
	return p
}

// WithConverter registers a custom text-to-value conversion for a type and
// returns the processor for chaining.
func (p *Value) WithConverter(vt token.ValueType, conv token.Converter) *Value {
	p.convs[vt] = conv
	return p
}

// Or merges two value processors: the alternation is the union of both
// operands' patterns, left operand first, and the group-to-type table is
// concatenated in the same order. The right operand's custom converters
// override on type collisions.
func (p *Value) Or(other *Value) *Value {
	merged := &Value{
		patterns: concatPatterns(p.patterns, other.patterns),
		types:    append(append(make([]token.ValueType, 0, len(p.types)+len(other.types)), p.types...), other.types...),
		convs:    maps.Clone(p.convs),
	}
	maps.Copy(merged.convs, other.convs)
	merged.re = compileAlternation(merged.patterns)
	return merged
}

func (p *Value) Process(content string, offset int) ([]Step, error) {
	m := p.re.FindStringSubmatchIndex(content[offset:])
	if m == nil || m[1] == 0 {
		return nil, nil
	}
	group := firedGroup(m)
	if group == 0 || group > len(p.types) {
		return nil, nil
	}
	vt := p.types[group-1]
	captured := content[offset+m[2*group] : offset+m[2*group+1]]

	conv, ok := p.convs[vt]
	if !ok {
		conv = token.DefaultConverter(vt)
	}
	v, err := conv(captured)
	if err != nil {
		return nil, diag.Errorf(diag.LexUnexpectedInput, "cannot convert %q to %s: %v", captured, vt, err)
	}
	return emit(token.NewValue(vt, v), m[1]), nil
}

// firedGroup returns the index of the capturing group that matched. Only
// one alternative fires per match, and every alternative carries exactly
// one group.
func firedGroup(m []int) int {
	for g := 1; g*2+1 < len(m); g++ {
		if m[2*g] >= 0 {
			return g
		}
	}
	return 0
}

// NewNumber recognizes numeric literals. The decimal-point form is listed
// first so "34.5" converts as a float while a bare "12" stays an integer.
func NewNumber() *Value {
	return NewValue(
		ValuePattern{Pattern: `-?\d*\.\d+`, Type: token.TypeFloat},
		ValuePattern{Pattern: `-?\d+`, Type: token.TypeInt},
	)
}

// NewQuotedString recognizes single- or double-quoted strings, non-greedy,
// allowing escaped matching quotes inside. The emitted value is the inner
// text without the quotes.
func NewQuotedString() *Value {
	return NewValue(
		ValuePattern{Pattern: `"((?:\\"|[^"])*?)"`, Type: token.TypeString},
		ValuePattern{Pattern: `'((?:\\'|[^'])*?)'`, Type: token.TypeString},
	)
}

// NewBoolean recognizes "true"/"false" with an optional leading capital.
// No built-in parser matches this vocabulary, so conversion is an explicit
// lowercase comparison.
func NewBoolean() *Value {
	return NewValue(
		ValuePattern{Pattern: `[Tt]rue|[Ff]alse`, Type: token.TypeBool},
	).WithConverter(token.TypeBool, func(text string) (any, error) {
		return strings.ToLower(text) == "true", nil
	})
}
