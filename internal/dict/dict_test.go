package dict

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadWords(t *testing.T) {
	in := "CAT\n\n  CATS  \n\nDOG\n"
	words, err := ReadWords(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadWords: %v", err)
	}
	want := []string{"CAT", "CATS", "DOG"}
	if len(words) != len(want) {
		t.Fatalf("got %d words, want %d: %v", len(words), len(want), words)
	}
	for i, w := range want {
		if words[i] != w {
			t.Fatalf("words[%d] = %q, want %q", i, words[i], w)
		}
	}
}

func TestLoadMemoizesBySource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("CAT\nCATS\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := Load(path)
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	b, err := Load(path)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if a != b {
		t.Fatal("loading the same source twice should return the same trie")
	}
	if !a.IsWord("CAT") {
		t.Fatal("loaded trie should contain CAT")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing word list")
	}
}

func TestNormalizeLines(t *testing.T) {
	got := normalizeLines("CAT\n\n  CATS  \n\nDOG\n")
	want := []string{"CAT", "CATS", "DOG"}
	if len(got) != len(want) {
		t.Fatalf("got %d words, want %d: %v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("words[%d] = %q, want %q", i, got[i], w)
		}
	}
}

func TestDefault(t *testing.T) {
	tr := Default()
	if tr == nil {
		t.Fatal("default trie should exist")
	}
	if tr != Default() {
		t.Fatal("default trie should be built once")
	}
	if !tr.IsWord("CAT") {
		t.Fatal("embedded list should contain CAT")
	}
}
