package board

import (
	"math/rand"
	"strings"
	"testing"
)

func testFaces() [][]string {
	return [][]string{
		{"C", "A", "T", "S"},
		{"D", "E", "F", "G"},
		{"H", "I", "J", "K"},
		{"L", "M", "N", "O"},
	}
}

func TestNewBoard(t *testing.T) {
	b, err := New(testFaces())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := b.Face(0); got != "C" {
		t.Fatalf("Face(0) = %q, want C", got)
	}
	if got := b.Cell(5); got.Row != 1 || got.Col != 1 || got.Face != "E" {
		t.Fatalf("Cell(5) = %+v, want (1,1) E", got)
	}
	if got := b.Letters(); got != "CATSDEFGHIJKLMNO" {
		t.Fatalf("Letters() = %q", got)
	}
}

func TestCellsRowMajor(t *testing.T) {
	b, err := New(testFaces())
	if err != nil {
		t.Fatal(err)
	}

	cells := b.Cells()
	if len(cells) != NumCells {
		t.Fatalf("Cells() returned %d cells, want %d", len(cells), NumCells)
	}
	for i, c := range cells {
		if c.Index() != i {
			t.Fatalf("cell %d has Index() %d", i, c.Index())
		}
		if c.Face != b.Face(i) {
			t.Fatalf("cell %d face %q differs from Face(%d) %q", i, c.Face, i, b.Face(i))
		}
	}
	if g := b.Graph(); g.Len() != len(cells) {
		t.Fatalf("Graph.Len() = %d, want %d", g.Len(), len(cells))
	}
}

func TestNewBoardRejectsBadShape(t *testing.T) {
	tests := []struct {
		name  string
		faces [][]string
	}{
		{"too few rows", testFaces()[:3]},
		{"short row", func() [][]string {
			f := testFaces()
			f[2] = f[2][:3]
			return f
		}()},
		{"empty face", func() [][]string {
			f := testFaces()
			f[1][1] = " "
			return f
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.faces); err == nil {
				t.Fatal("expected a configuration error")
			}
		})
	}
}

func TestTileFaceIsFixed(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	faces := [6]string{"A", "B", "C", "D", "E", "F"}
	tile := NewTile(faces, rng)

	if tile.Face == "" {
		t.Fatal("tile face should be resolved at construction")
	}
	var found bool
	for _, f := range faces {
		if f == tile.Face {
			found = true
		}
	}
	if !found {
		t.Fatalf("resolved face %q is not one of the die faces", tile.Face)
	}
}

func TestRandomBoardDeterministicBySeed(t *testing.T) {
	a, err := Random("classic", rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	b, err := Random("classic", rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	if a.Letters() != b.Letters() {
		t.Fatal("same seed should produce the same board")
	}
}

func TestRandomBoardUnknownTileSet(t *testing.T) {
	if _, err := Random("bogus", rand.New(rand.NewSource(1))); err == nil {
		t.Fatal("expected error for unknown tile set")
	}
}

func TestBoardString(t *testing.T) {
	b, err := New(testFaces())
	if err != nil {
		t.Fatal(err)
	}
	s := b.String()
	lines := strings.Split(s, "\n")
	if len(lines) != Size {
		t.Fatalf("String() has %d lines, want %d", len(lines), Size)
	}
	if !strings.HasPrefix(lines[0], "C ") {
		t.Fatalf("unexpected first row: %q", lines[0])
	}
}
