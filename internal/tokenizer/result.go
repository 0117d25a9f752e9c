package tokenizer

import (
	"retok/internal/diag"
	"retok/internal/token"
)

// Result owns the source text and the ordered token sequence produced from
// it. Positions are keyed by emission order: structurally identical tokens
// emitted at different offsets map to distinct positions, so the mapping is
// a parallel offsets slice rather than anything value-keyed.
type Result struct {
	source   string
	retained bool
	tokens   []token.Token
	offsets  []int
}

func newResult(source string) *Result {
	return &Result{source: source, retained: true}
}

// add appends a token and records its starting offset atomically.
func (r *Result) add(tok token.Token, offset int) {
	r.tokens = append(r.tokens, tok)
	r.offsets = append(r.offsets, offset)
}

// Source returns the processed text, or "" after StripSource.
func (r *Result) Source() string { return r.source }

// Tokens returns the ordered token sequence.
// Do not modify the returned slice: it aliases the result's storage.
func (r *Result) Tokens() []token.Token { return r.tokens }

// Len returns the number of emitted tokens, terminal EOF included.
func (r *Result) Len() int { return len(r.tokens) }

// Offset returns the starting offset of the i-th token.
func (r *Result) Offset(i int) (int, bool) {
	if i < 0 || i >= len(r.offsets) {
		return 0, false
	}
	return r.offsets[i], true
}

// Pos returns the position view for the i-th token, or nil for an index
// outside the emitted sequence. Requesting a position after StripSource is
// a caller error: diagnostics require the original text.
func (r *Result) Pos(i int) (*Position, error) {
	if !r.retained {
		return nil, diag.Errorf(diag.StateNoSource,
			"token position requested, but the result retains no source text")
	}
	if i < 0 || i >= len(r.offsets) {
		return nil, nil
	}
	return NewPosition(r.source, r.offsets[i]), nil
}

// StripSource discards the retained source text to free memory. Position
// lookups fail afterwards; the token sequence stays available.
func (r *Result) StripSource() {
	r.source = ""
	r.retained = false
}
