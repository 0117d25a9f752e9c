// Package tokenizer drives an ordered list of processors over an input and
// accumulates the produced tokens with their source offsets.
//
// Each round the current offset is offered to the processors in priority
// order; the first match applies its steps and the scan restarts from the
// highest-priority processor. Priority order is the mechanism that resolves
// ambiguity (comment marker vs. operator character): first match wins, no
// backtracking across processors within a round.
//
// A Tokenizer instance and its processors are single-pass, single-owner:
// tokenization is one synchronous computation, and stateful processors
// (notably the indentation processor) must not be reused across inputs.
package tokenizer
