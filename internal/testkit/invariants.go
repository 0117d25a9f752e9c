// Package testkit holds invariant checkers shared by tests.
package testkit

import (
	"fmt"

	"retok/internal/token"
	"retok/internal/tokenizer"
)

// CheckResultInvariants runs the structural invariants every successful
// tokenization result must satisfy:
//  1. the sequence is non-empty and terminated by exactly one EOF token
//  2. every token has exactly one offset entry, within source bounds
//  3. offsets never decrease along the emission order
func CheckResultInvariants(res *tokenizer.Result) error {
	if res == nil {
		return fmt.Errorf("nil result")
	}
	n := res.Len()
	if n == 0 {
		return fmt.Errorf("empty token sequence")
	}

	toks := res.Tokens()
	if last := toks[n-1]; last.Kind != token.EOF {
		return fmt.Errorf("last token is %s, want eof", last.Kind)
	}
	for i, tok := range toks[:n-1] {
		if tok.Kind == token.EOF {
			return fmt.Errorf("interior eof token at index %d", i)
		}
	}

	prev := 0
	for i := 0; i < n; i++ {
		off, ok := res.Offset(i)
		if !ok {
			return fmt.Errorf("missing offset for token %d", i)
		}
		if off < 0 || off > len(res.Source()) {
			return fmt.Errorf("offset %d of token %d outside source bounds", off, i)
		}
		if off < prev {
			return fmt.Errorf("offset %d of token %d decreases below %d", off, i, prev)
		}
		prev = off
	}
	return nil
}
