package tokenizer_test

import (
	"strings"
	"testing"

	"retok/internal/tokenizer"
)

func TestPositionBasics(t *testing.T) {
	pos := tokenizer.NewPosition("ab\ncd\nef", 4)
	if pos.Offset() != 4 {
		t.Fatalf("offset = %d, want 4", pos.Offset())
	}
	if pos.LineNumber() != 2 {
		t.Fatalf("line = %d, want 2", pos.LineNumber())
	}
	if pos.Line() != "cd" {
		t.Fatalf("line text = %q, want %q", pos.Line(), "cd")
	}
	if pos.Column() != 1 {
		t.Fatalf("column = %d, want 1", pos.Column())
	}
}

func TestPositionLastLine(t *testing.T) {
	// No trailing newline: the line runs to the end of the source.
	pos := tokenizer.NewPosition("ab\ncd", 5)
	if pos.LineNumber() != 2 || pos.Line() != "cd" || pos.Column() != 2 {
		t.Fatalf("got %d:%d on %q, want 2:2 on %q", pos.LineNumber(), pos.Column(), pos.Line(), "cd")
	}
}

func TestPositionRender(t *testing.T) {
	pos := tokenizer.NewPosition("a\nb", 2)
	if want := "2:0: b\n     ^"; pos.Render() != want {
		t.Fatalf("render = %q, want %q", pos.Render(), want)
	}
}

func TestPositionRenderExpandsTabs(t *testing.T) {
	// A tab before the offset widens to four columns, so the caret shifts
	// by three extra columns per tab.
	pos := tokenizer.NewPosition("\tx = 1\n", 1)
	want := "1:1:     x = 1\n" + strings.Repeat(" ", 9) + "^"
	if pos.Render() != want {
		t.Fatalf("render = %q, want %q", pos.Render(), want)
	}

	// Tabs after the offset expand in the shown line but do not move the
	// caret.
	pos = tokenizer.NewPosition("x\ty", 0)
	want = "1:0: x    y\n     ^"
	if pos.Render() != want {
		t.Fatalf("render = %q, want %q", pos.Render(), want)
	}
}
