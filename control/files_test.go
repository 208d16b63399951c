package control

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeControl(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestParseFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeControl(t, dir, "a", "Source: aa\n")
	b := writeControl(t, dir, "b", "Source: bb\n\nPackage: bb-bin\n")

	docs, err := ParseFiles(context.Background(), nil, a, b)
	if err != nil {
		t.Fatalf("ParseFiles failed: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}

	// Results keep the input order.
	if f := docs[0].Sections()[0].Find("Source"); f == nil || f.First().Text != "aa" {
		t.Error("first document mismatch")
	}
	if got := len(docs[1].Sections()); got != 2 {
		t.Errorf("expected 2 sections in second document, got %d", got)
	}
}

func TestParseFilesMissing(t *testing.T) {
	dir := t.TempDir()
	a := writeControl(t, dir, "a", "Source: aa\n")

	_, err := ParseFiles(context.Background(), nil, a, filepath.Join(dir, "missing"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseFilesEmpty(t *testing.T) {
	docs, err := ParseFiles(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if docs != nil {
		t.Errorf("expected nil result for no paths, got %v", docs)
	}
}
