// internal/board/board.go
//
// The 4x4 Boggle board. A board owns 16 cells, each with one resolved
// face, plus the adjacency graph over them. Boards are immutable once
// constructed; cell identity is positional.

package board

import (
	"fmt"
	"math/rand"
	"strings"
)

const (
	// Size is the board edge length.
	Size = 4
	// NumCells is the total cell count.
	NumCells = Size * Size
)

// Cell is one board position with its resolved face.
type Cell struct {
	Row, Col int
	Face     string
}

// Index returns the cell's position in row-major order.
func (c Cell) Index() int { return c.Row*Size + c.Col }

// Board is an immutable 4x4 arrangement of faces with its adjacency graph.
type Board struct {
	cells [NumCells]Cell
	graph *Graph
}

// New builds a board from an already-resolved 4x4 face arrangement.
// Returns a configuration error if the shape is not exactly 4x4 or any
// face is empty.
func New(faces [][]string) (*Board, error) {
	if len(faces) != Size {
		return nil, fmt.Errorf("board must have %d rows, got %d", Size, len(faces))
	}
	b := &Board{graph: newGraph()}
	for r, row := range faces {
		if len(row) != Size {
			return nil, fmt.Errorf("board row %d must have %d faces, got %d", r, Size, len(row))
		}
		for c, f := range row {
			if strings.TrimSpace(f) == "" {
				return nil, fmt.Errorf("board cell (%d,%d) has an empty face", r, c)
			}
			b.cells[r*Size+c] = Cell{Row: r, Col: c, Face: f}
		}
	}
	return b, nil
}

// Random rolls a fresh board from the named tile set: the 16 dice are
// shuffled across positions and each die resolves to a single face.
func Random(tileSet string, rng *rand.Rand) (*Board, error) {
	set, err := TileSet(tileSet)
	if err != nil {
		return nil, err
	}
	rng.Shuffle(len(set), func(i, j int) { set[i], set[j] = set[j], set[i] })

	faces := make([][]string, Size)
	for r := 0; r < Size; r++ {
		faces[r] = make([]string, Size)
		for c := 0; c < Size; c++ {
			faces[r][c] = NewTile(set[r*Size+c], rng).Face
		}
	}
	return New(faces)
}

// Cell returns the cell at index i (row-major).
func (b *Board) Cell(i int) Cell { return b.cells[i] }

// Cells returns all 16 cells in row-major order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, NumCells)
	copy(out, b.cells[:])
	return out
}

// Face returns the face of the cell at index i.
func (b *Board) Face(i int) string { return b.cells[i].Face }

// Graph returns the board's adjacency graph.
func (b *Board) Graph() *Graph { return b.graph }

// Letters returns the 16 faces concatenated in row-major order.
func (b *Board) Letters() string {
	var sb strings.Builder
	for _, c := range b.cells {
		sb.WriteString(c.Face)
	}
	return sb.String()
}

// String renders the board as four rows of faces padded to two columns.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(fmt.Sprintf("%-2s", b.cells[r*Size+c].Face))
		}
	}
	return sb.String()
}
