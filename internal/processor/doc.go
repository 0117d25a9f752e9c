// Package processor implements the pluggable recognizers the tokenizer
// drives. Each processor owns one lexical category and attempts to consume
// a unit anchored exactly at the given offset (never a search).
//
// The capability contract is Process(content, offset) -> ([]Step, error):
//   - nil steps, nil error: no match, the tokenizer tries the next processor.
//   - non-empty steps: each Step pairs an optional token with a consumed
//     length. A nil token with positive consumed length skips input
//     silently. Multiple steps let one contiguous span emit several tokens,
//     e.g. a multi-level dedent.
//   - non-nil error: a semantic failure such as mixed indentation; the
//     tokenizer aborts the pass.
//
// Stateless processors are pure functions of (content, offset). The
// indentation processor carries per-pass state and must not be reused
// across inputs; build a fresh pipeline per input.
package processor
