package token

import "fmt"

// Kind represents the category of a token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EndOfLine marks the end of a line.
	EndOfLine
	// EOF marks the end of the input. It is a sub-kind of EndOfLine.
	EOF
	// ScopeStart marks the start of a nested scope.
	ScopeStart
	// ScopeEnd marks the end of a nested scope.
	ScopeEnd
	// Comment carries the text of a comment, marker excluded.
	Comment
	// Value carries a typed, converted literal value.
	Value
	// Sequence carries a raw matched text sequence.
	Sequence
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case EndOfLine:
		return "eol"
	case EOF:
		return "eof"
	case ScopeStart:
		return "scope-start"
	case ScopeEnd:
		return "scope-end"
	case Comment:
		return "comment"
	case Value:
		return "value"
	case Sequence:
		return "sequence"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}
