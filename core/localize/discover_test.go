package localize

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFixture(t *testing.T, root string, rel string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte("<html></html>"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverDocuments_NonRecursive(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "index.html")
	writeFixture(t, root, "About.HTML")
	writeFixture(t, root, "style.css")
	writeFixture(t, root, "notes.txt")
	writeFixture(t, root, "sub/page.html")

	docs, err := DiscoverDocuments(root, false, false)
	if err != nil {
		t.Fatalf("DiscoverDocuments() error = %v", err)
	}

	want := []string{"About.HTML", "index.html"}
	if !reflect.DeepEqual(docs, want) {
		t.Errorf("DiscoverDocuments() = %v, want %v", docs, want)
	}
}

func TestDiscoverDocuments_Recursive(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "index.html")
	writeFixture(t, root, "sub/page.html")
	writeFixture(t, root, "sub/deeper/leaf.html")
	writeFixture(t, root, "sub/readme.md")

	docs, err := DiscoverDocuments(root, true, false)
	if err != nil {
		t.Fatalf("DiscoverDocuments() error = %v", err)
	}

	want := []string{
		"index.html",
		filepath.Join("sub", "deeper", "leaf.html"),
		filepath.Join("sub", "page.html"),
	}
	if !reflect.DeepEqual(docs, want) {
		t.Errorf("DiscoverDocuments() = %v, want %v", docs, want)
	}
}

func TestDiscoverDocuments_IncludeCSS(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "index.html")
	writeFixture(t, root, "style.css")

	docs, err := DiscoverDocuments(root, false, true)
	if err != nil {
		t.Fatalf("DiscoverDocuments() error = %v", err)
	}

	want := []string{"index.html", "style.css"}
	if !reflect.DeepEqual(docs, want) {
		t.Errorf("DiscoverDocuments() = %v, want %v", docs, want)
	}
}

func TestDiscoverDocuments_EmptyRoot(t *testing.T) {
	docs, err := DiscoverDocuments(t.TempDir(), true, true)
	if err != nil {
		t.Fatalf("DiscoverDocuments() error = %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("DiscoverDocuments() = %v, want no documents", docs)
	}
}

func TestDiscoverDocuments_MissingRoot(t *testing.T) {
	_, err := DiscoverDocuments(filepath.Join(t.TempDir(), "missing"), false, false)
	if err == nil {
		t.Error("DiscoverDocuments() error = nil, want error for missing root")
	}
}
