package diag_test

import (
	"errors"
	"fmt"
	"testing"

	"retok/internal/diag"
)

func TestCodeID(t *testing.T) {
	tests := []struct {
		code diag.Code
		want string
	}{
		{diag.LexUnexpectedInput, "LEX1001"},
		{diag.LexMixedIndent, "LEX1002"},
		{diag.LexIndentStep, "LEX1003"},
		{diag.StateNoSource, "STATE1401"},
		{diag.IOLoadFile, "IO1501"},
		{diag.ConfigParse, "CFG1601"},
		{diag.ConfigProcessor, "CFG1602"},
		{diag.UnknownCode, "DIAG0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("%d.ID() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestCodeOf(t *testing.T) {
	err := diag.Errorf(diag.LexMixedIndent, "mixed indent")
	if got := diag.CodeOf(err); got != diag.LexMixedIndent {
		t.Fatalf("code = %v, want LexMixedIndent", got)
	}

	wrapped := fmt.Errorf("while tokenizing: %w", err)
	if got := diag.CodeOf(wrapped); got != diag.LexMixedIndent {
		t.Fatalf("wrapped code = %v, want LexMixedIndent", got)
	}

	if got := diag.CodeOf(errors.New("plain")); got != diag.UnknownCode {
		t.Fatalf("plain code = %v, want UnknownCode", got)
	}
}

func TestErrorRendering(t *testing.T) {
	err := &diag.Error{Code: diag.LexUnexpectedInput, Message: "boom"}
	if err.Error() != "boom" {
		t.Fatalf("got %q, want %q", err.Error(), "boom")
	}

	err.Pointer = "1:0: x\n     ^"
	if want := "boom\n1:0: x\n     ^"; err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestDescribe(t *testing.T) {
	d := diag.Describe(diag.Errorf(diag.ConfigParse, "bad toml"))
	if d.Severity != diag.SevError || d.Code != diag.ConfigParse || d.Message != "bad toml" {
		t.Fatalf("diagnostic = %+v", d)
	}

	d = diag.Describe(errors.New("plain"))
	if d.Code != diag.UnknownCode || d.Message != "plain" {
		t.Fatalf("diagnostic = %+v", d)
	}
}

func TestBagLimit(t *testing.T) {
	bag := diag.NewBag(2)
	for i := 0; i < 2; i++ {
		if !bag.Add(diag.Diagnostic{Severity: diag.SevWarning, Message: "w"}) {
			t.Fatalf("add %d rejected below the limit", i)
		}
	}
	if bag.Add(diag.Diagnostic{Severity: diag.SevError, Message: "dropped"}) {
		t.Fatal("add above the limit accepted")
	}
	if bag.Len() != 2 {
		t.Fatalf("len = %d, want 2", bag.Len())
	}
	if bag.HasErrors() {
		t.Fatal("warnings alone must not count as errors")
	}
}

func TestBagLargeLimit(t *testing.T) {
	// Limits above 16 bits must hold as given, not wrap.
	bag := diag.NewBag(1 << 16)
	for i := 0; i < 3; i++ {
		if !bag.Add(diag.Diagnostic{Severity: diag.SevError, Message: "e"}) {
			t.Fatalf("add %d rejected far below the limit", i)
		}
	}
	if bag.Len() != 3 {
		t.Fatalf("len = %d, want 3", bag.Len())
	}
}

func TestBagSort(t *testing.T) {
	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{Severity: diag.SevWarning, Code: diag.LexMixedIndent, Message: "b"})
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.LexIndentStep, Message: "c"})
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.LexUnexpectedInput, Message: "a"})
	bag.Sort()

	items := bag.Items()
	if items[0].Code != diag.LexUnexpectedInput || items[1].Code != diag.LexIndentStep {
		t.Fatalf("errors not ordered by code: %+v", items)
	}
	if items[2].Severity != diag.SevWarning {
		t.Fatalf("warning not sorted last: %+v", items)
	}
}
