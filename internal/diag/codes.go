package diag

import "fmt"

// Code is a compact, stable identifier for a class of diagnostics.
type Code uint16

const (
	// UnknownCode is the zero value; never emit it on purpose.
	UnknownCode Code = 0

	// Lexical errors raised during tokenization.
	LexUnexpectedInput Code = 1001
	LexMixedIndent     Code = 1002
	LexIndentStep      Code = 1003

	// State errors: API misuse by the embedding caller.
	StateNoSource Code = 1401

	// IO errors from the driver layer.
	IOLoadFile Code = 1501

	// Configuration errors from manifest loading.
	ConfigParse     Code = 1601
	ConfigProcessor Code = 1602
)

// ID returns the short stable identifier used in rendered output,
// e.g. "LEX1001".
func (c Code) ID() string {
	switch {
	case c >= 1001 && c < 1400:
		return fmt.Sprintf("LEX%04d", uint16(c))
	case c >= 1401 && c < 1500:
		return fmt.Sprintf("STATE%04d", uint16(c))
	case c >= 1501 && c < 1600:
		return fmt.Sprintf("IO%04d", uint16(c))
	case c >= 1601 && c < 1700:
		return fmt.Sprintf("CFG%04d", uint16(c))
	default:
		return fmt.Sprintf("DIAG%04d", uint16(c))
	}
}

// String returns a human-readable name for the code.
func (c Code) String() string {
	switch c {
	case LexUnexpectedInput:
		return "unexpected input"
	case LexMixedIndent:
		return "mixed indent"
	case LexIndentStep:
		return "invalid indent multiple"
	case StateNoSource:
		return "no retained source"
	case IOLoadFile:
		return "file load failed"
	case ConfigParse:
		return "config parse failed"
	case ConfigProcessor:
		return "unknown processor"
	default:
		return "unknown"
	}
}
