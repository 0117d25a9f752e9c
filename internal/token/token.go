package token

import "fmt"

// Token represents a single lexical unit. Text is set for Comment and
// Sequence tokens; Type and Value are set for Value tokens.
type Token struct {
	Kind  Kind
	Text  string
	Type  ValueType
	Value any
}

// IsEndOfLine reports whether the token ends a line. EOF counts: it is a
// sub-kind of EndOfLine.
func (t Token) IsEndOfLine() bool {
	return t.Kind == EndOfLine || t.Kind == EOF
}

// IsScope reports whether the token opens or closes a scope.
func (t Token) IsScope() bool {
	return t.Kind == ScopeStart || t.Kind == ScopeEnd
}

// String returns a compact human-readable form, used by tests and the
// pretty token listing.
func (t Token) String() string {
	switch t.Kind {
	case Comment, Sequence:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	case Value:
		return fmt.Sprintf("%s(%s:%v)", t.Kind, t.Type, t.Value)
	default:
		return t.Kind.String()
	}
}

// NewEndOfLine returns an end-of-line token.
func NewEndOfLine() Token { return Token{Kind: EndOfLine} }

// NewEOF returns the terminal end-of-file token.
func NewEOF() Token { return Token{Kind: EOF} }

// NewScopeStart returns a scope-start token.
func NewScopeStart() Token { return Token{Kind: ScopeStart} }

// NewScopeEnd returns a scope-end token.
func NewScopeEnd() Token { return Token{Kind: ScopeEnd} }

// NewComment returns a comment token carrying the text after the marker.
func NewComment(text string) Token { return Token{Kind: Comment, Text: text} }

// NewValue returns a value token carrying a converted literal.
func NewValue(vt ValueType, v any) Token { return Token{Kind: Value, Type: vt, Value: v} }

// NewSequence returns a sequence token carrying the matched text verbatim.
func NewSequence(text string) Token { return Token{Kind: Sequence, Text: text} }
