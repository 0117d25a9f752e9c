// Package token defines the closed set of lexical token kinds produced by
// the tokenizer.
// Invariants:
//   - Tokens are plain immutable values; construct once, never mutate.
//   - Tokens carry no positional data. Positions are tracked by the
//     tokenizer result, keyed by emission order, because two structurally
//     identical tokens emitted at different offsets must map to distinct
//     positions.
//   - EOF is a sub-kind of EndOfLine: IsEndOfLine reports true for both.
package token
