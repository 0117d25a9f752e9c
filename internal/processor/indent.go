package processor

import (
	"regexp"

	"retok/internal/diag"
	"retok/internal/token"
)

// indentUnit is the indentation character kind in use.
type indentUnit uint8

const (
	unitNone indentUnit = iota // not yet determined
	unitTab
	unitSpace
)

func (u indentUnit) String() string {
	switch u {
	case unitTab:
		return "tabs"
	case unitSpace:
		return "spaces"
	}
	return "unset"
}

// Anchored one position before the current offset: a newline followed by a
// run of tabs, a run of spaces, or a single non-whitespace character.
var indentPattern = regexp.MustCompile(`^\n(?:(\t+)|( +)|([^\t ]))`)

// IndentScope converts changes in leading-whitespace depth into nested
// scope-start/scope-end tokens. The indentation unit (tab or space) and the
// required width are inferred from the first indent seen; later lines must
// keep the unit and change depth only in exact multiples of that width.
//
// The processor is stateful across one tokenization pass and must not be
// reused for another input; construct a fresh instance instead.
type IndentScope struct {
	allowMixed bool
	level      int
	unit       indentUnit
	divider    int
}

// NewIndentScope creates an indentation scope processor. With allowMixed,
// a line that keeps the current depth releases the unit lock so the next
// depth-changing line may re-establish either unit kind.
func NewIndentScope(allowMixed bool) *IndentScope {
	return &IndentScope{allowMixed: allowMixed}
}

func (p *IndentScope) Process(content string, offset int) ([]Step, error) {
	if offset == 0 {
		// No position before the anchor to hold the newline.
		return nil, nil
	}
	m := indentPattern.FindStringSubmatchIndex(content[offset-1:])
	if m == nil {
		return nil, nil
	}

	// Characters of the matched run past the newline.
	newLevel := m[1] - 1

	switch {
	case m[6] >= 0:
		// Non-whitespace right after the newline: depth zero.
		newLevel = 0
	case p.unit == unitNone:
		p.unit = unitSpace
		if m[2] >= 0 {
			p.unit = unitTab
		}
		p.divider = newLevel
	default:
		matched := unitSpace
		if m[2] >= 0 {
			matched = unitTab
		}
		if matched != p.unit {
			return nil, diag.Errorf(diag.LexMixedIndent,
				"mixed indent: %s after %s", matched, p.unit)
		}
	}

	if newLevel != p.level {
		difference := p.level - newLevel
		if difference < 0 {
			difference = -difference
		}
		if difference%p.divider != 0 {
			return nil, diag.Errorf(diag.LexIndentStep,
				"invalid indent multiple, expected a multiple of %d", p.divider)
		}

		// Each step carries the new depth as its consumed marker, so a
		// dedent eats the remaining indent run and a dedent to column
		// zero consumes nothing.
		steps := make([]Step, difference/p.divider)
		for i := range steps {
			tok := token.NewScopeEnd()
			if newLevel > p.level {
				tok = token.NewScopeStart()
			}
			steps[i] = Step{Tok: &tok, Consumed: newLevel}
		}
		p.level = newLevel
		return steps, nil
	}

	if newLevel != 0 {
		if p.allowMixed {
			p.unit = unitNone
		}
		return skip(newLevel), nil
	}

	return nil, nil
}

// Finalize closes every scope still open at end of input, one scope-end
// per unit of remaining depth.
func (p *IndentScope) Finalize() []token.Token {
	if p.level <= 0 {
		return nil
	}
	toks := make([]token.Token, p.level)
	for i := range toks {
		toks[i] = token.NewScopeEnd()
	}
	return toks
}
