// Package tokfmt renders token streams for human and machine consumption.
// Record is the shared serialization unit: the pretty, JSON, and msgpack
// writers all consume it, and the driver's token cache stores it.
package tokfmt

import (
	"fmt"

	"fortio.org/safecast"

	"retok/internal/token"
	"retok/internal/tokenizer"
)

// Record is one token with its resolved position, flattened for output.
type Record struct {
	Kind   string `json:"kind" msgpack:"kind"`
	Text   string `json:"text,omitempty" msgpack:"text"`
	Type   string `json:"type,omitempty" msgpack:"type"`
	Value  any    `json:"value,omitempty" msgpack:"value"`
	Offset uint32 `json:"offset" msgpack:"offset"`
	Line   uint32 `json:"line" msgpack:"line"`
	Col    uint32 `json:"col" msgpack:"col"`
}

// Records flattens a tokenizer result. The result must still retain its
// source text, since positions are resolved here.
func Records(res *tokenizer.Result) ([]Record, error) {
	out := make([]Record, 0, res.Len())
	for i, tok := range res.Tokens() {
		pos, err := res.Pos(i)
		if err != nil {
			return nil, err
		}

		offset, err := safecast.Conv[uint32](pos.Offset())
		if err != nil {
			return nil, fmt.Errorf("token offset overflow: %w", err)
		}
		line, err := safecast.Conv[uint32](pos.LineNumber())
		if err != nil {
			return nil, fmt.Errorf("line number overflow: %w", err)
		}
		col, err := safecast.Conv[uint32](pos.Column())
		if err != nil {
			return nil, fmt.Errorf("column overflow: %w", err)
		}

		rec := Record{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Offset: offset,
			Line:   line,
			Col:    col,
		}
		if tok.Kind == token.Value {
			rec.Type = tok.Type.String()
			rec.Value = tok.Value
		}
		out = append(out, rec)
	}
	return out, nil
}
