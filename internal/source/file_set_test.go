package source_test

import (
	"bytes"
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"retok/internal/source"
)

func TestAddVirtual(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("stdin", []byte("1 + 2"))

	file := fs.Get(id)
	if file.Flags&source.FileVirtual == 0 {
		t.Fatal("virtual flag not set")
	}
	if want := sha256.Sum256([]byte("1 + 2")); file.Hash != want {
		t.Fatal("content hash mismatch")
	}
	if fs.Len() != 1 {
		t.Fatalf("len = %d, want 1", fs.Len())
	}
}

func TestLoadStripsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.rtk")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFhi"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	file := fs.Get(id)
	if !bytes.Equal(file.Content, []byte("hi")) {
		t.Fatalf("content = %q, want %q", file.Content, "hi")
	}
	if file.Flags&source.FileHadBOM == 0 {
		t.Fatal("BOM flag not set")
	}
}

func TestGetByPathNormalizes(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("a//b/../b/x.rtk", []byte("1"))

	file, ok := fs.GetByPath("a/b/x.rtk")
	if !ok {
		t.Fatal("normalized path not found")
	}
	if file.Path != "a/b/x.rtk" {
		t.Fatalf("path = %q, want %q", file.Path, "a/b/x.rtk")
	}
}

func TestAddShadowsByPath(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("x.rtk", []byte("old"))
	latest := fs.AddVirtual("x.rtk", []byte("new"))

	file, ok := fs.GetByPath("x.rtk")
	if !ok || file.ID != latest {
		t.Fatalf("got id %v, want %v", file.ID, latest)
	}
	if fs.Len() != 2 {
		t.Fatalf("len = %d, want 2", fs.Len())
	}
}
