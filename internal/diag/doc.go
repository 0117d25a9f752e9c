// Package diag defines the diagnostic model shared by the tokenizer and the
// CLI layers.
//
// Diagnostic is the central record: a Severity, a stable numeric Code, a
// message, and an optional pre-rendered source pointer. Producers emit coded
// *Error values; the tokenizer attaches the pointer on the way out, and the
// driver aggregates per-file diagnostics into a Bag for deterministic output.
//
// The package performs no formatting or IO beyond the pointer text it is
// handed. Rendering lives in internal/tokfmt and the CLI.
package diag
