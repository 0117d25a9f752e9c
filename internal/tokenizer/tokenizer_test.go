package tokenizer_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"retok/internal/diag"
	"retok/internal/processor"
	"retok/internal/testkit"
	"retok/internal/token"
	"retok/internal/tokenizer"
)

func mustTokenize(t *testing.T, src string, procs ...processor.Processor) *tokenizer.Result {
	t.Helper()
	res, err := tokenizer.New(procs...).Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	if err := testkit.CheckResultInvariants(res); err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	return res
}

func kinds(res *tokenizer.Result) []token.Kind {
	out := make([]token.Kind, 0, res.Len())
	for _, tok := range res.Tokens() {
		out = append(out, tok.Kind)
	}
	return out
}

func offsets(t *testing.T, res *tokenizer.Result) []int {
	t.Helper()
	out := make([]int, 0, res.Len())
	for i := 0; i < res.Len(); i++ {
		off, ok := res.Offset(i)
		if !ok {
			t.Fatalf("missing offset for token %d", i)
		}
		out = append(out, off)
	}
	return out
}

func TestNumbersAndNewlines(t *testing.T) {
	res := mustTokenize(t, "12\n34.5\n", processor.NewNumber(), processor.NewNewLine())

	want := []token.Token{
		token.NewValue(token.TypeInt, int64(12)),
		token.NewEndOfLine(),
		token.NewValue(token.TypeFloat, float64(34.5)),
		token.NewEndOfLine(),
		token.NewEOF(),
	}
	if !reflect.DeepEqual(res.Tokens(), want) {
		t.Fatalf("tokens = %v, want %v", res.Tokens(), want)
	}
	if got, wantOff := offsets(t, res), []int{0, 2, 3, 7, 8}; !reflect.DeepEqual(got, wantOff) {
		t.Fatalf("offsets = %v, want %v", got, wantOff)
	}
}

func TestIndentScopes(t *testing.T) {
	src := "a\n  b\n    c\n  d\n"
	res := mustTokenize(t, src,
		processor.NewIndentScope(false),
		processor.NewNewLine(),
		processor.NewIdent(),
	)

	want := []token.Kind{
		token.Sequence, token.EndOfLine, // a
		token.ScopeStart, token.Sequence, token.EndOfLine, // b
		token.ScopeStart, token.Sequence, token.EndOfLine, // c
		token.ScopeEnd, token.Sequence, token.EndOfLine, // d
		token.ScopeEnd, token.ScopeEnd, // closed at end of input
		token.EOF,
	}
	if got := kinds(res); !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}

	// Scope tokens sit at the offset where their round started; the two
	// trailing scope-ends come from the finalizer at end of input.
	var scopeOffsets []int
	for i, tok := range res.Tokens() {
		if tok.IsScope() {
			off, _ := res.Offset(i)
			scopeOffsets = append(scopeOffsets, off)
		}
	}
	if want := []int{2, 6, 12, 16, 16}; !reflect.DeepEqual(scopeOffsets, want) {
		t.Fatalf("scope offsets = %v, want %v", scopeOffsets, want)
	}
}

func TestMixedIndentFails(t *testing.T) {
	src := "a\n\tb\n    c\n"
	_, err := tokenizer.New(
		processor.NewIndentScope(false),
		processor.NewNewLine(),
		processor.NewIdent(),
	).Tokenize(src)
	if err == nil {
		t.Fatal("expected a mixed indent error")
	}
	if code := diag.CodeOf(err); code != diag.LexMixedIndent {
		t.Fatalf("code = %v, want LexMixedIndent", code)
	}

	var e *diag.Error
	if !errors.As(err, &e) {
		t.Fatalf("error %T does not carry a diagnostic code", err)
	}
	if !strings.HasPrefix(e.Pointer, "3:0: ") {
		t.Fatalf("pointer = %q, want prefix %q", e.Pointer, "3:0: ")
	}
}

func TestIndentJumpPastEndOfInput(t *testing.T) {
	// A multi-level indent jump consumes the new depth once per opened
	// scope, which can claim more input than the source holds. The loop
	// must surface that as an ordinary tokenization failure.
	src := "a\n  b\n      c"
	_, err := tokenizer.New(
		processor.NewIndentScope(false),
		processor.NewNewLine(),
		processor.NewIdent(),
	).Tokenize(src)
	if err == nil {
		t.Fatal("expected a tokenization error")
	}

	var e *diag.Error
	if !errors.As(err, &e) {
		t.Fatalf("error %T does not carry a diagnostic code", err)
	}
	if e.Code != diag.LexUnexpectedInput {
		t.Fatalf("code = %v, want LexUnexpectedInput", e.Code)
	}
	if !strings.HasPrefix(e.Pointer, "3:7: ") {
		t.Fatalf("pointer = %q, want prefix %q", e.Pointer, "3:7: ")
	}
}

func TestAdjacentQuotedStrings(t *testing.T) {
	res := mustTokenize(t, "'it''s'", processor.NewQuotedString())

	want := []token.Token{
		token.NewValue(token.TypeString, "it"),
		token.NewValue(token.TypeString, "s"),
		token.NewEOF(),
	}
	if !reflect.DeepEqual(res.Tokens(), want) {
		t.Fatalf("tokens = %v, want %v", res.Tokens(), want)
	}
	if got, wantOff := offsets(t, res), []int{0, 4, 7}; !reflect.DeepEqual(got, wantOff) {
		t.Fatalf("offsets = %v, want %v", got, wantOff)
	}
}

func TestUnexpectedInput(t *testing.T) {
	_, err := tokenizer.New(processor.NewNumber(), processor.NewNewLine()).Tokenize("12#")
	if err == nil {
		t.Fatal("expected a tokenization error")
	}

	var e *diag.Error
	if !errors.As(err, &e) {
		t.Fatalf("error %T does not carry a diagnostic code", err)
	}
	if e.Code != diag.LexUnexpectedInput {
		t.Fatalf("code = %v, want LexUnexpectedInput", e.Code)
	}
	if want := "1:2: 12#\n       ^"; e.Pointer != want {
		t.Fatalf("pointer = %q, want %q", e.Pointer, want)
	}
}

func TestProcessorPriority(t *testing.T) {
	// '/' is both the comment marker and an operator character here, so the
	// pipeline order decides what "//x" means.
	res := mustTokenize(t, "//x", processor.NewComment('/'), processor.NewOperator())
	want := []token.Token{token.NewComment("/x"), token.NewEOF()}
	if !reflect.DeepEqual(res.Tokens(), want) {
		t.Fatalf("tokens = %v, want %v", res.Tokens(), want)
	}

	_, err := tokenizer.New(processor.NewOperator(), processor.NewComment('/')).Tokenize("//x")
	if code := diag.CodeOf(err); code != diag.LexUnexpectedInput {
		t.Fatalf("code = %v, want LexUnexpectedInput", code)
	}
}

func TestDeterminism(t *testing.T) {
	src := "a\n  b = 1\n  c = 'x'\n"
	run := func() *tokenizer.Result {
		return mustTokenize(t, src,
			processor.NewIndentScope(false),
			processor.NewNewLine(),
			processor.NewNumber().Or(processor.NewQuotedString()),
			processor.NewOperator(),
			processor.NewIdent(),
			processor.NewConsuming(" "),
		)
	}

	first, second := run(), run()
	if !reflect.DeepEqual(first.Tokens(), second.Tokens()) {
		t.Fatal("token sequences differ between identical runs")
	}
	if !reflect.DeepEqual(offsets(t, first), offsets(t, second)) {
		t.Fatal("offset sequences differ between identical runs")
	}
}

func TestEmptyInput(t *testing.T) {
	res := mustTokenize(t, "", processor.NewNumber(), processor.NewNewLine())
	if res.Len() != 1 || res.Tokens()[0].Kind != token.EOF {
		t.Fatalf("tokens = %v, want a lone eof", res.Tokens())
	}
}

func TestResultPositions(t *testing.T) {
	res := mustTokenize(t, "12\n34\n", processor.NewNumber(), processor.NewNewLine())

	pos, err := res.Pos(2)
	if err != nil {
		t.Fatalf("Pos: %v", err)
	}
	if pos.LineNumber() != 2 || pos.Column() != 0 || pos.Line() != "34" {
		t.Fatalf("got %d:%d on %q, want 2:0 on %q", pos.LineNumber(), pos.Column(), pos.Line(), "34")
	}

	// Out of range is not an error, just absence.
	pos, err = res.Pos(99)
	if pos != nil || err != nil {
		t.Fatalf("got %v, %v, want nil, nil", pos, err)
	}
}

func TestStripSource(t *testing.T) {
	res := mustTokenize(t, "12", processor.NewNumber())
	if _, err := res.Pos(0); err != nil {
		t.Fatalf("Pos before strip: %v", err)
	}

	res.StripSource()
	if res.Source() != "" {
		t.Fatalf("source = %q, want empty", res.Source())
	}
	if res.Len() != 2 {
		t.Fatalf("len = %d, want 2", res.Len())
	}

	_, err := res.Pos(0)
	if code := diag.CodeOf(err); code != diag.StateNoSource {
		t.Fatalf("code = %v, want StateNoSource", code)
	}
}
