package processor

import (
	"retok/internal/token"
)

// Step is a single emission from a processor: an optional token plus the
// number of bytes consumed from the anchor offset. A nil Tok with a
// positive Consumed means "skip this input silently".
type Step struct {
	Tok      *token.Token
	Consumed int
}

// Processor recognizes one lexical category anchored at an offset.
type Processor interface {
	Process(content string, offset int) ([]Step, error)
}

// Finalizer is implemented by processors that emit trailing tokens once the
// input is exhausted, e.g. closing still-open indentation scopes.
type Finalizer interface {
	Finalize() []token.Token
}

// emit builds the common single-token step list.
func emit(tok token.Token, consumed int) []Step {
	return []Step{{Tok: &tok, Consumed: consumed}}
}

// skip builds a single tokenless step consuming the given length.
func skip(consumed int) []Step {
	return []Step{{Consumed: consumed}}
}
